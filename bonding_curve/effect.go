package bonding_curve

import (
	solanago "github.com/gagliardetto/solana-go"
)

// Effects are explicit requests to the host's external collaborators (the
// funds-transfer primitive and the token ledger). The processor never moves
// lamports or token units itself; it returns the ordered request list and
// the host applies it only after the instruction as a whole has succeeded.
// A failed instruction returns no effects at all.
type Effect interface {
	effect()
}

// CreateAccount asks the host to allocate a new program-owned record account.
type CreateAccount struct {
	Funder     solanago.PublicKey
	NewAccount solanago.PublicKey
	Owner      solanago.PublicKey
	Space      uint64
}

// CreateTokenAccount asks the token ledger for an associated token account.
type CreateTokenAccount struct {
	Funder       solanago.PublicKey
	Wallet       solanago.PublicKey
	Mint         solanago.PublicKey
	TokenAccount solanago.PublicKey
}

// TransferLamports moves native currency between two accounts.
type TransferLamports struct {
	From     solanago.PublicKey
	To       solanago.PublicKey
	Lamports uint64
}

// MintTokens mints token base units to a destination token account, signed
// by the curve PDA as mint authority.
type MintTokens struct {
	Mint        solanago.PublicKey
	Destination solanago.PublicKey
	Authority   solanago.PublicKey
	Amount      uint64
}

// BurnTokens burns token base units from a holder's token account.
type BurnTokens struct {
	Mint   solanago.PublicKey
	Source solanago.PublicKey
	Owner  solanago.PublicKey
	Amount uint64
}

// CreateMetadata asks the metadata program to register name/URI for a mint.
type CreateMetadata struct {
	Metadata  solanago.PublicKey
	Mint      solanago.PublicKey
	Authority solanago.PublicKey
	Payer     solanago.PublicKey
	Name      string
	URI       string
}

func (CreateAccount) effect()      {}
func (CreateTokenAccount) effect() {}
func (TransferLamports) effect()   {}
func (MintTokens) effect()         {}
func (BurnTokens) effect()         {}
func (CreateMetadata) effect()     {}
