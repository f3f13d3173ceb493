package bonding_curve

import (
	"fmt"

	"github.com/krazyTry/xtoken-go/bonding_curve/helpers"
	"github.com/krazyTry/xtoken-go/bonding_curve/math"
	"github.com/krazyTry/xtoken-go/bonding_curve/shared"
	xsolana "github.com/krazyTry/xtoken-go/solana"
)

type sellTokensAccounts struct {
	Seller             *Account
	BondingCurve       *Account
	Mint               *Account
	SellerTokenAccount *Account
	Treasury           *Account
	FeeRecipient       *Account
	TradingStats       *Account
}

func sellTokensAccountsFrom(accounts []*Account) (*sellTokensAccounts, error) {
	if err := expectAccounts(accounts, 9); err != nil {
		return nil, err
	}
	return &sellTokensAccounts{
		Seller:             accounts[0],
		BondingCurve:       accounts[1],
		Mint:               accounts[2],
		SellerTokenAccount: accounts[3],
		Treasury:           accounts[4],
		FeeRecipient:       accounts[5],
		TradingStats:       accounts[6],
	}, nil
}

// sellTokens prices a sale at the post-trade supply, burns the seller's
// tokens and pays out proceeds minus fee from the treasury.
func (p *Processor) sellTokens(accounts []*Account, payload []byte, now int64) ([]Effect, error) {
	params, err := decodeSellTokensParams(payload)
	if err != nil {
		return nil, err
	}
	if params.TokenAmount == 0 {
		return nil, fmt.Errorf("%w: token amount must be positive", ErrInvalidTokenAmount)
	}

	acc, err := sellTokensAccountsFrom(accounts)
	if err != nil {
		return nil, err
	}
	if err = validateSigner(acc.Seller); err != nil {
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

	if params.TokenAmount > curve.CurrentSupply {
		return nil, fmt.Errorf("%w: amount %d exceeds circulating supply %d", ErrInsufficientTokenBalance, params.TokenAmount, curve.CurrentSupply)
	}

	if acc.SellerTokenAccount.DataIsEmpty() {
		return nil, fmt.Errorf("%w: seller token account is empty", ErrInsufficientTokenBalance)
	}
	tokenAccount, err := new(xsolana.AccountLayout).Decode(acc.SellerTokenAccount.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAccountData, err)
	}
	if !tokenAccount.Mint.Equals(acc.Mint.Key) {
		return nil, fmt.Errorf("%w: token account mint mismatch", ErrInvalidAccountData)
	}
	if !tokenAccount.Owner.Equals(acc.Seller.Key) {
		return nil, fmt.Errorf("%w: token account not owned by seller", ErrInvalidAccountData)
	}
	if tokenAccount.Amount < params.TokenAmount {
		return nil, fmt.Errorf("%w: seller holds %d, selling %d", ErrInsufficientTokenBalance, tokenAccount.Amount, params.TokenAmount)
	}

	proceeds, newSupply, err := math.ProceedsFromSell(curve.CurveType, curve.BasePrice, curve.Slope, curve.CurrentSupply, params.TokenAmount)
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
	if net < params.MinSolAmount {
		return nil, fmt.Errorf("%w: proceeds %d below limit %d", ErrSlippageExceeded, net, params.MinSolAmount)
	}
	if proceeds > curve.ReserveBalance {
		return nil, fmt.Errorf("%w: reserve %d cannot cover %d", ErrInsufficientReserve, curve.ReserveBalance, proceeds)
	}
	if acc.Treasury.Lamports < proceeds {
		return nil, fmt.Errorf("%w: treasury holds %d lamports, needs %d", ErrInsufficientReserve, acc.Treasury.Lamports, proceeds)
	}
	newReserve, err := math.SubU64(curve.ReserveBalance, proceeds)
	if err != nil {
		return nil, err
	}

	stats, createStats, err := loadTradingStats(acc.TradingStats, acc.Seller.Key)
	if err != nil {
		return nil, err
	}
	if stats.TotalSold, err = math.AddU64(stats.TotalSold, params.TokenAmount); err != nil {
		return nil, err
	}
	if stats.SellCount, err = math.AddU32(stats.SellCount, 1); err != nil {
		return nil, err
	}
	stats.LastTradeTimestamp = now

	var effects []Effect
	if createStats {
		effects = append(effects, &CreateAccount{
			Funder:     acc.Seller.Key,
			NewAccount: acc.TradingStats.Key,
			Owner:      helpers.ProgramID,
			Space:      shared.TradingStatsSize,
		})
	}
	effects = append(effects, &BurnTokens{
		Mint:   acc.Mint.Key,
		Source: acc.SellerTokenAccount.Key,
		Owner:  acc.Seller.Key,
		Amount: params.TokenAmount,
	})
	if net > 0 {
		effects = append(effects, &TransferLamports{
			From:     curve.Treasury,
			To:       acc.Seller.Key,
			Lamports: net,
		})
	}
	if fee > 0 {
		effects = append(effects, &TransferLamports{
			From:     curve.Treasury,
			To:       curve.FeeRecipient,
			Lamports: fee,
		})
	}

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
