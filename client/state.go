package client

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/krazyTry/xtoken-go/bonding_curve/helpers"
	"github.com/krazyTry/xtoken-go/bonding_curve/shared"
	solanago "github.com/krazyTry/xtoken-go/solana"
)

// GetBondingCurve fetches and decodes the curve record for a mint.
func GetBondingCurve(ctx context.Context, rpcClient *rpc.Client, mint solana.PublicKey) (*shared.BondingCurve, error) {
	address, _ := helpers.DeriveBondingCurveAddress(mint)

	out, err := solanago.GetAccountInfo(ctx, rpcClient, address)
	if err != nil {
		return nil, fmt.Errorf("failed to get bonding curve %s: %w", address, err)
	}

	curve := &shared.BondingCurve{}
	if err = curve.Unmarshal(out.Value.Data.GetBinary()); err != nil {
		return nil, err
	}
	return curve, nil
}

// GetTradingStats fetches a trader's stats record. Returns rpc.ErrNotFound
// when the trader has never traded.
func GetTradingStats(ctx context.Context, rpcClient *rpc.Client, owner solana.PublicKey) (*shared.TradingStats, error) {
	address, _ := helpers.DeriveTradingStatsAddress(owner)

	out, err := solanago.GetAccountInfo(ctx, rpcClient, address)
	if err != nil {
		return nil, err
	}

	stats := &shared.TradingStats{}
	if err = stats.Unmarshal(out.Value.Data.GetBinary()); err != nil {
		return nil, err
	}
	return stats, nil
}

// GetUserProfile fetches a user's profile record.
func GetUserProfile(ctx context.Context, rpcClient *rpc.Client, owner solana.PublicKey) (*shared.UserProfile, error) {
	address, _ := helpers.DeriveUserProfileAddress(owner)

	out, err := solanago.GetAccountInfo(ctx, rpcClient, address)
	if err != nil {
		return nil, err
	}

	profile := &shared.UserProfile{}
	if err = profile.Unmarshal(out.Value.Data.GetBinary()); err != nil {
		return nil, err
	}
	return profile, nil
}
