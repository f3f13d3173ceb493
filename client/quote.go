package client

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/krazyTry/xtoken-go/bonding_curve/helpers"
	"github.com/krazyTry/xtoken-go/bonding_curve/math"
	"github.com/krazyTry/xtoken-go/bonding_curve/shared"
)

// BuyQuote prices a purchase against the current curve state.
type BuyQuote struct {
	TokenAmount uint64
	Cost        uint64
	Fee         uint64
	Total       uint64

	// Total plus slippage allowance, for BuyTokensInstruction.
	MaxSolAmount uint64

	TotalSOL decimal.Decimal
}

// SellQuote prices a sale against the current curve state.
type SellQuote struct {
	TokenAmount uint64
	Proceeds    uint64
	Fee         uint64
	Net         uint64

	// Net minus slippage allowance, for SellTokensInstruction.
	MinSolAmount uint64

	NetSOL decimal.Decimal
}

func slippageCeiling(amount uint64, slippageBps uint16) (uint64, error) {
	v, err := math.MulDiv(
		new(big.Int).SetUint64(amount),
		big.NewInt(int64(shared.MaxBasisPoint)+int64(slippageBps)),
		big.NewInt(int64(shared.MaxBasisPoint)),
		shared.RoundingUp,
	)
	if err != nil {
		return 0, err
	}
	return math.ToU64(v)
}

func slippageFloor(amount uint64, slippageBps uint16) (uint64, error) {
	v, err := math.MulDiv(
		new(big.Int).SetUint64(amount),
		big.NewInt(int64(shared.MaxBasisPoint)-int64(slippageBps)),
		big.NewInt(int64(shared.MaxBasisPoint)),
		shared.RoundingDown,
	)
	if err != nil {
		return 0, err
	}
	return math.ToU64(v)
}

// QuoteBuy computes cost, fee and the slippage-padded payment cap for buying
// tokenAmount at the curve's current supply.
func QuoteBuy(curve *shared.BondingCurve, tokenAmount uint64, slippageBps uint16) (*BuyQuote, error) {
	if slippageBps > shared.MaxBasisPoint {
		return nil, fmt.Errorf("slippage %d exceeds %d bps", slippageBps, shared.MaxBasisPoint)
	}

	cost, newSupply, err := math.CostToBuy(curve.CurveType, curve.BasePrice, curve.Slope, curve.CurrentSupply, tokenAmount)
	if err != nil {
		return nil, err
	}
	if newSupply > curve.MaxSupply {
		return nil, fmt.Errorf("buying %d would exceed max supply %d", tokenAmount, curve.MaxSupply)
	}

	fee, err := math.Fee(cost, curve.FeeBasisPoints)
	if err != nil {
		return nil, err
	}
	total, err := math.AddU64(cost, fee)
	if err != nil {
		return nil, err
	}
	maxSol, err := slippageCeiling(total, slippageBps)
	if err != nil {
		return nil, err
	}

	return &BuyQuote{
		TokenAmount:  tokenAmount,
		Cost:         cost,
		Fee:          fee,
		Total:        total,
		MaxSolAmount: maxSol,
		TotalSOL:     helpers.FromLamports(total),
	}, nil
}

// QuoteSell computes proceeds, fee and the slippage-padded payout floor for
// selling tokenAmount at the curve's current supply.
func QuoteSell(curve *shared.BondingCurve, tokenAmount uint64, slippageBps uint16) (*SellQuote, error) {
	if slippageBps > shared.MaxBasisPoint {
		return nil, fmt.Errorf("slippage %d exceeds %d bps", slippageBps, shared.MaxBasisPoint)
	}
	if tokenAmount > curve.CurrentSupply {
		return nil, fmt.Errorf("selling %d exceeds circulating supply %d", tokenAmount, curve.CurrentSupply)
	}

	proceeds, _, err := math.ProceedsFromSell(curve.CurveType, curve.BasePrice, curve.Slope, curve.CurrentSupply, tokenAmount)
	if err != nil {
		return nil, err
	}

	fee, err := math.Fee(proceeds, curve.FeeBasisPoints)
	if err != nil {
		return nil, err
	}
	net, err := math.SubU64(proceeds, fee)
	if err != nil {
		return nil, err
	}
	minSol, err := slippageFloor(net, slippageBps)
	if err != nil {
		return nil, err
	}

	return &SellQuote{
		TokenAmount:  tokenAmount,
		Proceeds:     proceeds,
		Fee:          fee,
		Net:          net,
		MinSolAmount: minSol,
		NetSOL:       helpers.FromLamports(net),
	}, nil
}
