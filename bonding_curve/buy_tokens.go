package bonding_curve

import (
	"fmt"

	"github.com/krazyTry/xtoken-go/bonding_curve/helpers"
	"github.com/krazyTry/xtoken-go/bonding_curve/math"
	"github.com/krazyTry/xtoken-go/bonding_curve/shared"
)

type buyTokensAccounts struct {
	Buyer             *Account
	BondingCurve      *Account
	Mint              *Account
	BuyerTokenAccount *Account
	Treasury          *Account
	FeeRecipient      *Account
	TradingStats      *Account
}

func buyTokensAccountsFrom(accounts []*Account) (*buyTokensAccounts, error) {
	if err := expectAccounts(accounts, 10); err != nil {
		return nil, err
	}
	return &buyTokensAccounts{
		Buyer:             accounts[0],
		BondingCurve:      accounts[1],
		Mint:              accounts[2],
		BuyerTokenAccount: accounts[3],
		Treasury:          accounts[4],
		FeeRecipient:      accounts[5],
		TradingStats:      accounts[6],
	}, nil
}

// buyTokens prices a purchase at the pre-trade supply, collects cost plus fee
// from the buyer and mints the tokens to the buyer's token account.
func (p *Processor) buyTokens(accounts []*Account, payload []byte, now int64) ([]Effect, error) {
	params, err := decodeBuyTokensParams(payload)
	if err != nil {
		return nil, err
	}
	if params.TokenAmount == 0 {
		return nil, fmt.Errorf("%w: token amount must be positive", ErrInvalidTokenAmount)
	}

	acc, err := buyTokensAccountsFrom(accounts)
	if err != nil {
		return nil, err
	}
	if err = validateSigner(acc.Buyer); err != nil {
		return nil, err
	}
	if err = validateWritable(acc.BondingCurve); err != nil {
		return nil, err
	}
	if err = validateWritable(acc.Treasury); err != nil {
		return nil, err
	}

	curve, err := loadBondingCurve(acc.BondingCurve, acc.Mint.Key)
	if err != nil {
		return nil, err
	}
	if err = validateAddress(acc.Treasury, curve.Treasury); err != nil {
		return nil, err
	}
	if !acc.FeeRecipient.Key.Equals(curve.FeeRecipient) {
		return nil, fmt.Errorf("%w: fee recipient mismatch", ErrInvalidAccountData)
	}

	newSupply, err := math.AddU64(curve.CurrentSupply, params.TokenAmount)
	if err != nil {
		return nil, err
	}
	if newSupply > curve.MaxSupply {
		return nil, fmt.Errorf("%w: %d exceeds max supply %d", ErrSupplyExceeded, newSupply, curve.MaxSupply)
	}

	cost, _, err := math.CostToBuy(curve.CurveType, curve.BasePrice, curve.Slope, curve.CurrentSupply, params.TokenAmount)
	if err != nil {
		return nil, err
	}
	fee, err := math.Fee(cost, curve.FeeBasisPoints)
	if err != nil {
		return nil, err
	}
	total, err := math.AddU64(cost, fee)
	if err != nil {
		return nil, err
	}
	if total > params.MaxSolAmount {
		return nil, fmt.Errorf("%w: cost %d exceeds limit %d", ErrSlippageExceeded, total, params.MaxSolAmount)
	}

	newReserve, err := math.AddU64(curve.ReserveBalance, cost)
	if err != nil {
		return nil, err
	}
	if newReserve > shared.MaxReserveLamports {
		return nil, fmt.Errorf("%w: reserve %d over cap %d", ErrReserveCapExceeded, newReserve, shared.MaxReserveLamports)
	}
	if acc.Buyer.Lamports < total {
		return nil, fmt.Errorf("%w: buyer has %d lamports, needs %d", ErrInsufficientFunds, acc.Buyer.Lamports, total)
	}

	stats, createStats, err := loadTradingStats(acc.TradingStats, acc.Buyer.Key)
	if err != nil {
		return nil, err
	}
	if stats.TotalBought, err = math.AddU64(stats.TotalBought, params.TokenAmount); err != nil {
		return nil, err
	}
	if stats.BuyCount, err = math.AddU32(stats.BuyCount, 1); err != nil {
		return nil, err
	}
	stats.LastTradeTimestamp = now

	var effects []Effect
	if createStats {
		effects = append(effects, &CreateAccount{
			Funder:     acc.Buyer.Key,
			NewAccount: acc.TradingStats.Key,
			Owner:      helpers.ProgramID,
			Space:      shared.TradingStatsSize,
		})
	}
	if acc.BuyerTokenAccount.DataIsEmpty() {
		effects = append(effects, &CreateTokenAccount{
			Funder:       acc.Buyer.Key,
			Wallet:       acc.Buyer.Key,
			Mint:         acc.Mint.Key,
			TokenAccount: acc.BuyerTokenAccount.Key,
		})
	}
	effects = append(effects, &TransferLamports{
		From:     acc.Buyer.Key,
		To:       curve.Treasury,
		Lamports: cost,
	})
	if fee > 0 {
		effects = append(effects, &TransferLamports{
			From:     acc.Buyer.Key,
			To:       curve.FeeRecipient,
			Lamports: fee,
		})
	}
	effects = append(effects, &MintTokens{
		Mint:        acc.Mint.Key,
		Destination: acc.BuyerTokenAccount.Key,
		Authority:   acc.BondingCurve.Key,
		Amount:      params.TokenAmount,
	})

	curve.CurrentSupply = newSupply
	curve.ReserveBalance = newReserve
	if err = commitBondingCurve(acc.BondingCurve, curve); err != nil {
		return nil, err
	}
	if err = commitTradingStats(acc.TradingStats, stats); err != nil {
		return nil, err
	}
	return effects, nil
}
