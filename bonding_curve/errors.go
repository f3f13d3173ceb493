package bonding_curve

import (
	"errors"

	"github.com/krazyTry/xtoken-go/bonding_curve/math"
)

// Every failure path surfaces one of these sentinels, detected before any
// record is mutated or any side-effect request is issued.

// Validation errors: malformed payloads, wrong account roles, address
// derivation mismatches.
var (
	ErrInvalidInstructionData   = errors.New("invalid instruction data")
	ErrNotEnoughAccounts        = errors.New("not enough account keys")
	ErrMissingRequiredSignature = errors.New("missing required signature")
	ErrAccountNotWritable       = errors.New("account is not writable")
	ErrInvalidAccountOwner      = errors.New("account owned by unexpected program")
	ErrInvalidAccountData       = errors.New("invalid account data")
	ErrInvalidSeeds             = errors.New("supplied address does not match derived address")
	ErrInvalidCurveType         = errors.New("invalid curve type")
	ErrInvalidLeaderboardLimit  = errors.New("leaderboard limit must be between 1 and 100")
)

// State errors: the record exists in a state the transition cannot apply to.
var (
	ErrAccountAlreadyInitialized = errors.New("account already initialized")
	ErrAccountNotInitialized     = errors.New("account not initialized")
	ErrSupplyExceeded            = errors.New("purchase would exceed maximum supply")
	ErrInsufficientFunds         = errors.New("insufficient funds")
	ErrInsufficientReserve       = errors.New("insufficient reserve")
	ErrInsufficientTokenBalance  = errors.New("insufficient token balance")
	ErrReserveCapExceeded        = errors.New("reserve would exceed hard cap")
)

// Economic errors: the trade itself is rejected on its terms.
var (
	ErrSlippageExceeded       = errors.New("slippage tolerance exceeded")
	ErrInvalidFeeBasisPoints  = errors.New("fee basis points out of range")
	ErrInvalidTokenAmount     = errors.New("token amount must be greater than zero")
	ErrInvalidCurveParameters = errors.New("invalid curve parameters")
)

// Category buckets errors for callers that route on failure class rather
// than exact sentinel.
type Category uint8

const (
	CategoryUnknown Category = iota
	CategoryValidation
	CategoryState
	CategoryEconomic
	CategoryArithmetic
)

func (c Category) String() string {
	switch c {
	case CategoryValidation:
		return "validation"
	case CategoryState:
		return "state"
	case CategoryEconomic:
		return "economic"
	case CategoryArithmetic:
		return "arithmetic"
	}
	return "unknown"
}

var categories = map[Category][]error{
	CategoryValidation: {
		ErrInvalidInstructionData, ErrNotEnoughAccounts, ErrMissingRequiredSignature,
		ErrAccountNotWritable, ErrInvalidAccountOwner, ErrInvalidAccountData,
		ErrInvalidSeeds, ErrInvalidCurveType, ErrInvalidLeaderboardLimit,
	},
	CategoryState: {
		ErrAccountAlreadyInitialized, ErrAccountNotInitialized, ErrSupplyExceeded,
		ErrInsufficientFunds, ErrInsufficientReserve, ErrInsufficientTokenBalance,
		ErrReserveCapExceeded,
	},
	CategoryEconomic: {
		ErrSlippageExceeded, ErrInvalidFeeBasisPoints, ErrInvalidTokenAmount,
		ErrInvalidCurveParameters, math.ErrFeeBasisPoints,
	},
	CategoryArithmetic: {
		math.ErrOverflow,
	},
}

// CategoryOf maps an error returned by Process to its taxonomy bucket.
func CategoryOf(err error) Category {
	for cat, sentinels := range categories {
		for _, sentinel := range sentinels {
			if errors.Is(err, sentinel) {
				return cat
			}
		}
	}
	return CategoryUnknown
}
