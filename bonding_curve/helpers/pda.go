package helpers

import (
	solanago "github.com/gagliardetto/solana-go"
)

var seed = struct {
	BondingCurve []byte
	Treasury     []byte
	TradingStats []byte
	UserProfile  []byte
	Metadata     []byte
}{
	BondingCurve: []byte("x_token"),
	Treasury:     []byte("treasury"),
	TradingStats: []byte("trading_stats"),
	UserProfile:  []byte("user_profile"),
	Metadata:     []byte("metadata"),
}

// DeriveBondingCurveAddress derives the curve record PDA for a mint.
func DeriveBondingCurveAddress(mint solanago.PublicKey) (solanago.PublicKey, uint8) {
	pub, bump, _ := solanago.FindProgramAddress([][]byte{seed.BondingCurve, mint.Bytes()}, ProgramID)
	return pub, bump
}

// DeriveTreasuryAddress derives the per-mint treasury PDA holding the curve reserve.
func DeriveTreasuryAddress(mint solanago.PublicKey) (solanago.PublicKey, uint8) {
	pub, bump, _ := solanago.FindProgramAddress([][]byte{seed.Treasury, mint.Bytes()}, ProgramID)
	return pub, bump
}

// DeriveTradingStatsAddress derives a trader's stats record PDA.
func DeriveTradingStatsAddress(owner solanago.PublicKey) (solanago.PublicKey, uint8) {
	pub, bump, _ := solanago.FindProgramAddress([][]byte{seed.TradingStats, owner.Bytes()}, ProgramID)
	return pub, bump
}

// DeriveUserProfileAddress derives a wallet's profile record PDA.
func DeriveUserProfileAddress(owner solanago.PublicKey) (solanago.PublicKey, uint8) {
	pub, bump, _ := solanago.FindProgramAddress([][]byte{seed.UserProfile, owner.Bytes()}, ProgramID)
	return pub, bump
}

// DeriveMetadataAddress derives the Metaplex metadata PDA for a mint.
func DeriveMetadataAddress(mint solanago.PublicKey) (solanago.PublicKey, uint8) {
	pub, bump, _ := solanago.FindProgramAddress(
		[][]byte{seed.Metadata, MetaplexProgramID.Bytes(), mint.Bytes()},
		MetaplexProgramID,
	)
	return pub, bump
}
