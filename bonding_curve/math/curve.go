package math

import (
	"errors"
	"math/big"

	"github.com/krazyTry/xtoken-go/bonding_curve/shared"
)

var ErrUnknownCurve = errors.New("curve type must be linear, exponential or logarithmic")

var (
	scale = big.NewInt(shared.PriceScale)
	// ln(2) at 1e9 fixed point.
	ln2Scaled = big.NewInt(693_147_180)
)

// PriceAt computes the spot price per whole token (1e9 fixed point) at the
// given supply in token base units. All three shapes are evaluated in pure
// integer arithmetic so the result is bit-identical across re-executions.
func PriceAt(curveType shared.CurveType, basePrice, slope, supply uint64) (uint64, error) {
	switch curveType {
	case shared.CurveTypeLinear:
		return linearPrice(basePrice, slope, supply)
	case shared.CurveTypeExponential:
		return exponentialPrice(basePrice, slope, supply)
	case shared.CurveTypeLogarithmic:
		return logarithmicPrice(basePrice, slope, supply)
	}
	return 0, ErrUnknownCurve
}

// CostToBuy prices a buy of amount base units starting from supply.
//
// Pricing policy (the single source of truth for trade pricing): the spot
// price is evaluated once at the pre-trade supply and applied to the whole
// batch. Cost is rounded up so rounding always favors the reserve.
func CostToBuy(curveType shared.CurveType, basePrice, slope, supply, amount uint64) (cost, newSupply uint64, err error) {
	newSupply, err = AddU64(supply, amount)
	if err != nil {
		return 0, 0, err
	}
	price, err := PriceAt(curveType, basePrice, slope, supply)
	if err != nil {
		return 0, 0, err
	}
	total, err := MulDiv(new(big.Int).SetUint64(price), new(big.Int).SetUint64(amount), scale, shared.RoundingUp)
	if err != nil {
		return 0, 0, err
	}
	cost, err = ToU64(total)
	if err != nil {
		return 0, 0, err
	}
	return cost, newSupply, nil
}

// ProceedsFromSell prices a sell of amount base units starting from supply.
// The spot price is evaluated at the post-trade supply, which is the same
// curve point a buy of that amount from newSupply would use, and proceeds are
// rounded down. Together with CostToBuy's round-up this guarantees the
// reserve can never be drained by rounding.
func ProceedsFromSell(curveType shared.CurveType, basePrice, slope, supply, amount uint64) (proceeds, newSupply uint64, err error) {
	newSupply, err = SubU64(supply, amount)
	if err != nil {
		return 0, 0, err
	}
	price, err := PriceAt(curveType, basePrice, slope, newSupply)
	if err != nil {
		return 0, 0, err
	}
	total, err := MulDiv(new(big.Int).SetUint64(price), new(big.Int).SetUint64(amount), scale, shared.RoundingDown)
	if err != nil {
		return 0, 0, err
	}
	proceeds, err = ToU64(total)
	if err != nil {
		return 0, 0, err
	}
	return proceeds, newSupply, nil
}

// linear: price = basePrice + slope * supply / 1e9
func linearPrice(basePrice, slope, supply uint64) (uint64, error) {
	term, err := MulDiv(new(big.Int).SetUint64(slope), new(big.Int).SetUint64(supply), scale, shared.RoundingDown)
	if err != nil {
		return 0, err
	}
	return ToU64(Add(new(big.Int).SetUint64(basePrice), term))
}

// exponential: price = basePrice * (1 + slope/1e9)^supply, evaluated by
// square-and-multiply in 1e9 fixed point. Every intermediate is checked
// against the 64-bit range; a supply large enough to overflow fails with
// ErrOverflow instead of saturating.
func exponentialPrice(basePrice, slope, supply uint64) (uint64, error) {
	factor, err := AddU64(shared.PriceScale, slope)
	if err != nil {
		return 0, err
	}

	result := new(big.Int).Set(scale)
	cur := new(big.Int).SetUint64(factor)
	exp := supply
	for exp != 0 {
		if exp&1 == 1 {
			result.Mul(result, cur)
			result.Div(result, scale)
			if result.Cmp(maxU64) > 0 {
				return 0, ErrOverflow
			}
		}
		exp >>= 1
		if exp == 0 {
			break
		}
		cur.Mul(cur, cur)
		cur.Div(cur, scale)
		if cur.Cmp(maxU64) > 0 {
			return 0, ErrOverflow
		}
	}

	price, err := MulDiv(new(big.Int).SetUint64(basePrice), result, scale, shared.RoundingDown)
	if err != nil {
		return 0, err
	}
	return ToU64(price)
}

// logarithmic: price = basePrice * ln(1 + slope*supply/1000).
// The logarithm is a fixed-point approximation built from the argument's
// bit length (integer part of log2) plus 32 fractional bits obtained by
// repeated squaring, then rescaled by ln(2). No platform float is involved.
func logarithmicPrice(basePrice, slope, supply uint64) (uint64, error) {
	arg, err := MulDiv(new(big.Int).SetUint64(slope), new(big.Int).SetUint64(supply), big.NewInt(1000), shared.RoundingDown)
	if err != nil {
		return 0, err
	}
	arg.Add(arg, big.NewInt(1))
	if arg.Cmp(big.NewInt(1)) == 0 {
		// ln(1) == 0
		return 0, nil
	}

	ln := lnFixed(arg)
	price, err := MulDiv(new(big.Int).SetUint64(basePrice), ln, scale, shared.RoundingDown)
	if err != nil {
		return 0, err
	}
	return ToU64(price)
}

// lnFixed returns ln(x) at 1e9 fixed point for integer x >= 2.
func lnFixed(x *big.Int) *big.Int {
	n := x.BitLen() - 1

	// Normalize to Q32 in [1, 2), then extract 32 fractional bits of log2
	// by squaring: each squaring shifts the next bit of the fraction into
	// the integer position.
	y := new(big.Int).Lsh(x, 32)
	y.Rsh(y, uint(n))
	frac := new(big.Int)
	one := big.NewInt(1)
	for i := 0; i < 32; i++ {
		y.Mul(y, y)
		y.Rsh(y, 32)
		frac.Lsh(frac, 1)
		if y.BitLen() >= 34 { // y >= 2 in Q32
			frac.Or(frac, one)
			y.Rsh(y, 1)
		}
	}

	// log2(x) in Q32, then ln(x)*1e9 = log2(x) * ln(2)*1e9 >> 32.
	log2 := new(big.Int).Lsh(big.NewInt(int64(n)), 32)
	log2.Add(log2, frac)
	log2.Mul(log2, ln2Scaled)
	return log2.Rsh(log2, 32)
}
