package math

import (
	"errors"
	"math/big"

	"github.com/krazyTry/xtoken-go/bonding_curve/shared"
)

var ErrFeeBasisPoints = errors.New("fee basis points exceed 10000")

var maxBasisPoint = big.NewInt(shared.MaxBasisPoint)

// Fee computes the protocol fee: floor(amount * bps / 10000). The
// multiplication runs on big.Int so the 128-bit intermediate can never
// overflow; the result always fits uint64 because bps <= 10000.
func Fee(amount uint64, bps uint16) (uint64, error) {
	if bps > shared.MaxBasisPoint {
		return 0, ErrFeeBasisPoints
	}
	fee, err := MulDiv(new(big.Int).SetUint64(amount), big.NewInt(int64(bps)), maxBasisPoint, shared.RoundingDown)
	if err != nil {
		return 0, err
	}
	return ToU64(fee)
}
