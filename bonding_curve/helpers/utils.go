package helpers

import (
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/krazyTry/xtoken-go/bonding_curve/shared"
)

// ConvertToLamports converts a human SOL amount ("1.5") to lamports.
func ConvertToLamports(amount string) (*big.Int, error) {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, err
	}
	value = value.Mul(decimal.New(1, 9))
	return FromDecimalToBig(value), nil
}

// ConvertToTokenUnits converts a human token amount to base units at the
// given mint decimals.
func ConvertToTokenUnits(amount string, tokenDecimal int32) (*big.Int, error) {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, err
	}
	value = value.Mul(decimal.New(1, tokenDecimal))
	return FromDecimalToBig(value), nil
}

func FromDecimalToBig(value decimal.Decimal) *big.Int {
	return value.Truncate(0).BigInt()
}

// FromLamports renders lamports as a SOL decimal for display.
func FromLamports(lamports uint64) decimal.Decimal {
	return decimal.NewFromUint64(lamports).Div(decimal.New(1, 9))
}

// FromPrice renders a 1e9 fixed-point per-token price as a SOL decimal.
func FromPrice(price uint64) decimal.Decimal {
	return decimal.NewFromUint64(price).Div(decimal.NewFromInt(shared.PriceScale))
}
