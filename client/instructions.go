// Package client builds transactions against the bonding curve program. The
// builders mirror the on-chain wire formats and account orders exactly, so a
// built instruction decodes back to the same parameters.
package client

import (
	"encoding/binary"
	"fmt"

	"github.com/gagliardetto/solana-go"

	bondingcurve "github.com/krazyTry/xtoken-go/bonding_curve"
	"github.com/krazyTry/xtoken-go/bonding_curve/helpers"
	"github.com/krazyTry/xtoken-go/bonding_curve/shared"
)

// InitializeParams configures a token launch.
type InitializeParams struct {
	Decimals       uint8
	CurveType      shared.CurveType
	FeeBasisPoints uint16
	BasePrice      uint64
	Slope          uint64
	MaxSupply      uint64
	FeeRecipient   solana.PublicKey

	// Optional pre-buy executed inside Initialize.
	InitialBuyAmount uint64
	InitialMaxSol    uint64

	Username  string
	TokenName string
	TokenURI  string
}

func appendU64(data []byte, v uint64) []byte {
	var raw [8]byte
	binary.LittleEndian.PutUint64(raw[:], v)
	return append(data, raw[:]...)
}

func appendLenPrefixed(data []byte, v string, max int) ([]byte, error) {
	if len(v) > max {
		return nil, fmt.Errorf("field is %d bytes, maximum %d", len(v), max)
	}
	data = append(data, uint8(len(v)))
	return append(data, v...), nil
}

// InitializeInstruction builds the Initialize instruction. The extended
// payload form is used only when a pre-buy or metadata field is set.
func InitializeInstruction(
	authority solana.PublicKey,
	payer solana.PublicKey,
	mint solana.PublicKey,
	params *InitializeParams,
) (solana.Instruction, error) {
	data := []byte{byte(bondingcurve.InstructionInitialize)}
	data = append(data, params.Decimals, byte(params.CurveType))

	var raw16 [2]byte
	binary.LittleEndian.PutUint16(raw16[:], params.FeeBasisPoints)
	data = append(data, raw16[:]...)
	data = append(data, 0, 0, 0, 0) // reserved padding

	data = appendU64(data, params.BasePrice)
	data = appendU64(data, params.Slope)
	data = appendU64(data, params.MaxSupply)
	data = append(data, params.FeeRecipient[:]...)

	if params.InitialBuyAmount > 0 || params.Username != "" || params.TokenName != "" || params.TokenURI != "" {
		data = appendU64(data, params.InitialBuyAmount)
		data = appendU64(data, params.InitialMaxSol)

		var err error
		if data, err = appendLenPrefixed(data, params.Username, shared.MaxUsernameLen); err != nil {
			return nil, err
		}
		if data, err = appendLenPrefixed(data, params.TokenName, shared.MaxTokenNameLen); err != nil {
			return nil, err
		}
		if data, err = appendLenPrefixed(data, params.TokenURI, shared.MaxTokenURILen); err != nil {
			return nil, err
		}
	}

	bondingCurve, _ := helpers.DeriveBondingCurveAddress(mint)
	treasury, _ := helpers.DeriveTreasuryAddress(mint)
	metadata, _ := helpers.DeriveMetadataAddress(mint)
	authorityTokenAccount, _, err := solana.FindAssociatedTokenAddress(authority, mint)
	if err != nil {
		return nil, err
	}

	insAccounts := []*solana.AccountMeta{
		{PublicKey: authority, IsSigner: true, IsWritable: true},
		{PublicKey: bondingCurve, IsSigner: false, IsWritable: true},
		{PublicKey: mint, IsSigner: false, IsWritable: true},
		{PublicKey: treasury, IsSigner: false, IsWritable: true},
		{PublicKey: authorityTokenAccount, IsSigner: false, IsWritable: true},
		{PublicKey: payer, IsSigner: true, IsWritable: true},
		{PublicKey: solana.SystemProgramID, IsSigner: false, IsWritable: false},
		{PublicKey: solana.TokenProgramID, IsSigner: false, IsWritable: false},
		{PublicKey: solana.SPLAssociatedTokenAccountProgramID, IsSigner: false, IsWritable: false},
		{PublicKey: solana.SysVarRentPubkey, IsSigner: false, IsWritable: false},
		{PublicKey: params.FeeRecipient, IsSigner: false, IsWritable: true},
		{PublicKey: metadata, IsSigner: false, IsWritable: true},
		{PublicKey: helpers.MetaplexProgramID, IsSigner: false, IsWritable: false},
	}

	return solana.NewInstruction(helpers.ProgramID, insAccounts, data), nil
}

// BuyTokensInstruction builds a BuyTokens instruction. maxSolAmount caps cost
// plus fee.
func BuyTokensInstruction(
	buyer solana.PublicKey,
	mint solana.PublicKey,
	feeRecipient solana.PublicKey,
	tokenAmount uint64,
	maxSolAmount uint64,
) (solana.Instruction, error) {
	data := []byte{byte(bondingcurve.InstructionBuyTokens)}
	data = appendU64(data, tokenAmount)
	data = appendU64(data, maxSolAmount)

	bondingCurve, _ := helpers.DeriveBondingCurveAddress(mint)
	treasury, _ := helpers.DeriveTreasuryAddress(mint)
	tradingStats, _ := helpers.DeriveTradingStatsAddress(buyer)
	buyerTokenAccount, _, err := solana.FindAssociatedTokenAddress(buyer, mint)
	if err != nil {
		return nil, err
	}

	insAccounts := []*solana.AccountMeta{
		{PublicKey: buyer, IsSigner: true, IsWritable: true},
		{PublicKey: bondingCurve, IsSigner: false, IsWritable: true},
		{PublicKey: mint, IsSigner: false, IsWritable: true},
		{PublicKey: buyerTokenAccount, IsSigner: false, IsWritable: true},
		{PublicKey: treasury, IsSigner: false, IsWritable: true},
		{PublicKey: feeRecipient, IsSigner: false, IsWritable: true},
		{PublicKey: tradingStats, IsSigner: false, IsWritable: true},
		{PublicKey: solana.SystemProgramID, IsSigner: false, IsWritable: false},
		{PublicKey: solana.TokenProgramID, IsSigner: false, IsWritable: false},
		{PublicKey: solana.SPLAssociatedTokenAccountProgramID, IsSigner: false, IsWritable: false},
	}

	return solana.NewInstruction(helpers.ProgramID, insAccounts, data), nil
}

// SellTokensInstruction builds a SellTokens instruction. minSolAmount floors
// proceeds minus fee.
func SellTokensInstruction(
	seller solana.PublicKey,
	mint solana.PublicKey,
	feeRecipient solana.PublicKey,
	tokenAmount uint64,
	minSolAmount uint64,
) (solana.Instruction, error) {
	data := []byte{byte(bondingcurve.InstructionSellTokens)}
	data = appendU64(data, tokenAmount)
	data = appendU64(data, minSolAmount)

	bondingCurve, _ := helpers.DeriveBondingCurveAddress(mint)
	treasury, _ := helpers.DeriveTreasuryAddress(mint)
	tradingStats, _ := helpers.DeriveTradingStatsAddress(seller)
	sellerTokenAccount, _, err := solana.FindAssociatedTokenAddress(seller, mint)
	if err != nil {
		return nil, err
	}

	insAccounts := []*solana.AccountMeta{
		{PublicKey: seller, IsSigner: true, IsWritable: true},
		{PublicKey: bondingCurve, IsSigner: false, IsWritable: true},
		{PublicKey: mint, IsSigner: false, IsWritable: true},
		{PublicKey: sellerTokenAccount, IsSigner: false, IsWritable: true},
		{PublicKey: treasury, IsSigner: false, IsWritable: true},
		{PublicKey: feeRecipient, IsSigner: false, IsWritable: true},
		{PublicKey: tradingStats, IsSigner: false, IsWritable: true},
		{PublicKey: solana.SystemProgramID, IsSigner: false, IsWritable: false},
		{PublicKey: solana.TokenProgramID, IsSigner: false, IsWritable: false},
	}

	return solana.NewInstruction(helpers.ProgramID, insAccounts, data), nil
}

// UpdateProfileInstruction builds an UpdateProfile instruction. Both fields
// are replaced on-chain, so pass the full desired profile every time.
func UpdateProfileInstruction(
	user solana.PublicKey,
	username string,
	bio string,
) (solana.Instruction, error) {
	if len(username) == 0 || len(username) > shared.MaxUsernameLen {
		return nil, fmt.Errorf("username is %d bytes, want within [1, %d]", len(username), shared.MaxUsernameLen)
	}
	if len(bio) > shared.MaxBioLen {
		return nil, fmt.Errorf("bio is %d bytes, maximum %d", len(bio), shared.MaxBioLen)
	}

	data := []byte{byte(bondingcurve.InstructionUpdateProfile)}
	data = append(data, uint8(len(username)), uint8(len(bio)), 0, 0)

	var usernameRaw [shared.MaxUsernameLen]byte
	copy(usernameRaw[:], username)
	data = append(data, usernameRaw[:]...)

	var bioRaw [shared.MaxBioLen]byte
	copy(bioRaw[:], bio)
	data = append(data, bioRaw[:]...)

	userProfile, _ := helpers.DeriveUserProfileAddress(user)

	insAccounts := []*solana.AccountMeta{
		{PublicKey: userProfile, IsSigner: false, IsWritable: true},
		{PublicKey: user, IsSigner: true, IsWritable: true},
		{PublicKey: solana.SystemProgramID, IsSigner: false, IsWritable: false},
	}

	return solana.NewInstruction(helpers.ProgramID, insAccounts, data), nil
}

// GetLeaderboardInstruction builds the on-chain leaderboard query.
func GetLeaderboardInstruction(limit, offset uint8) (solana.Instruction, error) {
	if limit < 1 || int(limit) > shared.MaxLeaderboardLimit {
		return nil, fmt.Errorf("limit %d out of range [1, %d]", limit, shared.MaxLeaderboardLimit)
	}

	data := []byte{byte(bondingcurve.InstructionGetLeaderboard), limit, offset}
	return solana.NewInstruction(helpers.ProgramID, nil, data), nil
}
