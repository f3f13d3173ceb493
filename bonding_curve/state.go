package bonding_curve

import (
	"fmt"

	solanago "github.com/gagliardetto/solana-go"

	"github.com/krazyTry/xtoken-go/bonding_curve/helpers"
	"github.com/krazyTry/xtoken-go/bonding_curve/shared"
)

// loadBondingCurve decodes and validates the curve record backing a trade.
// The account must be program owned, initialized and derived from the mint.
func loadBondingCurve(curveAccount *Account, mint solanago.PublicKey) (*shared.BondingCurve, error) {
	if curveAccount.DataIsEmpty() {
		return nil, fmt.Errorf("%w: bonding curve %s", ErrAccountNotInitialized, curveAccount.Key)
	}
	if err := validateProgramOwned(curveAccount); err != nil {
		return nil, err
	}

	curve := &shared.BondingCurve{}
	if err := curve.Unmarshal(curveAccount.Data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAccountData, err)
	}
	if !curve.Initialized {
		return nil, fmt.Errorf("%w: bonding curve %s", ErrAccountNotInitialized, curveAccount.Key)
	}
	if !curve.Mint.Equals(mint) {
		return nil, fmt.Errorf("%w: curve mint %s does not match %s", ErrInvalidAccountData, curve.Mint, mint)
	}

	expected, _ := helpers.DeriveBondingCurveAddress(mint)
	if err := validateAddress(curveAccount, expected); err != nil {
		return nil, err
	}
	return curve, nil
}

// loadTradingStats returns the trader's stats record, creating a fresh one
// when the account has never been written. The second return reports whether
// the account must be created by the host.
func loadTradingStats(statsAccount *Account, owner solanago.PublicKey) (*shared.TradingStats, bool, error) {
	expected, _ := helpers.DeriveTradingStatsAddress(owner)
	if err := validateAddress(statsAccount, expected); err != nil {
		return nil, false, err
	}

	if statsAccount.DataIsEmpty() {
		return &shared.TradingStats{Owner: owner}, true, nil
	}

	if err := validateProgramOwned(statsAccount); err != nil {
		return nil, false, err
	}
	stats := &shared.TradingStats{}
	if err := stats.Unmarshal(statsAccount.Data); err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrInvalidAccountData, err)
	}
	if !stats.Owner.Equals(owner) {
		return nil, false, fmt.Errorf("%w: trading stats owned by %s, expected %s", ErrInvalidAccountData, stats.Owner, owner)
	}
	return stats, false, nil
}

func commitTradingStats(statsAccount *Account, stats *shared.TradingStats) error {
	data, err := stats.Marshal()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAccountData, err)
	}
	statsAccount.Data = data
	statsAccount.Owner = helpers.ProgramID
	return nil
}

func commitBondingCurve(curveAccount *Account, curve *shared.BondingCurve) error {
	data, err := curve.Marshal()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAccountData, err)
	}
	curveAccount.Data = data
	return nil
}
