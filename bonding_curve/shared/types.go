package shared

const (
	// PriceScale is the fixed-point scale for basePrice, slope and all
	// per-unit prices (1e9, lamports per whole token).
	PriceScale = 1_000_000_000

	MaxBasisPoint = 10_000

	MaxUsernameLen  = 32
	MaxBioLen       = 200
	MaxTokenNameLen = 32
	MaxTokenURILen  = 200

	// MaxReserveLamports caps the SOL a single curve treasury may hold.
	MaxReserveLamports = 84_000_000_000

	MaxLeaderboardLimit = 100

	MaxTokenDecimals = 9
)

type CurveType uint8

const (
	CurveTypeLinear      CurveType = 0
	CurveTypeExponential CurveType = 1
	CurveTypeLogarithmic CurveType = 2
)

// Valid reports whether the tag is one of the three supported curve shapes.
func (c CurveType) Valid() bool {
	switch c {
	case CurveTypeLinear, CurveTypeExponential, CurveTypeLogarithmic:
		return true
	}
	return false
}

func (c CurveType) String() string {
	switch c {
	case CurveTypeLinear:
		return "linear"
	case CurveTypeExponential:
		return "exponential"
	case CurveTypeLogarithmic:
		return "logarithmic"
	}
	return "invalid"
}

type Rounding uint8

const (
	RoundingUp   Rounding = 0
	RoundingDown Rounding = 1
)
