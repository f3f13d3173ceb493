package bonding_curve

import (
	"fmt"

	solanago "github.com/gagliardetto/solana-go"

	"github.com/krazyTry/xtoken-go/bonding_curve/helpers"
	"github.com/krazyTry/xtoken-go/bonding_curve/math"
	"github.com/krazyTry/xtoken-go/bonding_curve/shared"
)

type initializeAccounts struct {
	Authority             *Account
	BondingCurve          *Account
	Mint                  *Account
	Treasury              *Account
	AuthorityTokenAccount *Account
	Payer                 *Account
	FeeRecipient          *Account
	Metadata              *Account
}

func initializeAccountsFrom(accounts []*Account) (*initializeAccounts, error) {
	if err := expectAccounts(accounts, 13); err != nil {
		return nil, err
	}
	return &initializeAccounts{
		Authority:             accounts[0],
		BondingCurve:          accounts[1],
		Mint:                  accounts[2],
		Treasury:              accounts[3],
		AuthorityTokenAccount: accounts[4],
		Payer:                 accounts[5],
		FeeRecipient:          accounts[10],
		Metadata:              accounts[11],
	}, nil
}

// initialize creates the bonding curve and treasury accounts for a mint,
// optionally writing token metadata and executing an initial buy on behalf of
// the authority.
func (p *Processor) initialize(accounts []*Account, payload []byte) ([]Effect, error) {
	params, err := decodeInitializeParams(payload)
	if err != nil {
		return nil, err
	}

	acc, err := initializeAccountsFrom(accounts)
	if err != nil {
		return nil, err
	}
	if err = validateSigner(acc.Authority); err != nil {
		return nil, err
	}
	if err = validateSigner(acc.Payer); err != nil {
		return nil, err
	}
	if err = validateWritable(acc.BondingCurve); err != nil {
		return nil, err
	}
	if err = validateWritable(acc.Treasury); err != nil {
		return nil, err
	}

	if !params.CurveType.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCurveType, uint8(params.CurveType))
	}
	if params.BasePrice == 0 {
		return nil, fmt.Errorf("%w: base price must be positive", ErrInvalidCurveParameters)
	}
	if params.MaxSupply == 0 {
		return nil, fmt.Errorf("%w: max supply must be positive", ErrInvalidCurveParameters)
	}
	if params.Decimals > shared.MaxTokenDecimals {
		return nil, fmt.Errorf("%w: decimals %d exceeds %d", ErrInvalidCurveParameters, params.Decimals, shared.MaxTokenDecimals)
	}
	if params.FeeBasisPoints > shared.MaxBasisPoint {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFeeBasisPoints, params.FeeBasisPoints)
	}

	curveAddress, curveBump := helpers.DeriveBondingCurveAddress(acc.Mint.Key)
	if err = validateAddress(acc.BondingCurve, curveAddress); err != nil {
		return nil, err
	}
	treasuryAddress, _ := helpers.DeriveTreasuryAddress(acc.Mint.Key)
	if err = validateAddress(acc.Treasury, treasuryAddress); err != nil {
		return nil, err
	}
	if !acc.FeeRecipient.Key.Equals(params.FeeRecipient) {
		return nil, fmt.Errorf("%w: fee recipient mismatch", ErrInvalidAccountData)
	}

	if !acc.BondingCurve.DataIsEmpty() {
		existing := &shared.BondingCurve{}
		if err = existing.Unmarshal(acc.BondingCurve.Data); err == nil && existing.Initialized {
			return nil, fmt.Errorf("%w: bonding curve %s", ErrAccountAlreadyInitialized, curveAddress)
		}
		return nil, fmt.Errorf("%w: bonding curve account holds unexpected data", ErrInvalidAccountData)
	}

	curve := &shared.BondingCurve{
		Authority:      acc.Authority.Key,
		Mint:           acc.Mint.Key,
		Treasury:       treasuryAddress,
		FeeRecipient:   params.FeeRecipient,
		CurveType:      params.CurveType,
		BasePrice:      params.BasePrice,
		Slope:          params.Slope,
		MaxSupply:      params.MaxSupply,
		FeeBasisPoints: params.FeeBasisPoints,
		Bump:           curveBump,
		Initialized:    true,
	}

	effects := []Effect{
		&CreateAccount{
			Funder:     acc.Payer.Key,
			NewAccount: curveAddress,
			Owner:      helpers.ProgramID,
			Space:      shared.BondingCurveSize,
		},
		&CreateAccount{
			Funder:     acc.Payer.Key,
			NewAccount: treasuryAddress,
			Owner:      solanago.SystemProgramID,
			Space:      0,
		},
	}

	if len(params.TokenName) > 0 || len(params.TokenURI) > 0 {
		metadataAddress, _ := helpers.DeriveMetadataAddress(acc.Mint.Key)
		if err = validateAddress(acc.Metadata, metadataAddress); err != nil {
			return nil, err
		}
		effects = append(effects, &CreateMetadata{
			Metadata:  metadataAddress,
			Mint:      acc.Mint.Key,
			Authority: curveAddress,
			Payer:     acc.Payer.Key,
			Name:      string(params.TokenName),
			URI:       string(params.TokenURI),
		})
	}

	if params.InitialBuyAmount > 0 {
		buyEffects, err := p.initialBuy(acc, curve, params)
		if err != nil {
			return nil, err
		}
		effects = append(effects, buyEffects...)
	}

	data, err := curve.Marshal()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAccountData, err)
	}
	acc.BondingCurve.Data = data
	acc.BondingCurve.Owner = helpers.ProgramID

	return effects, nil
}

// initialBuy prices an authority purchase at launch. It mutates only the
// in-memory curve record, which the caller serializes after all checks pass.
func (p *Processor) initialBuy(acc *initializeAccounts, curve *shared.BondingCurve, params *InitializeParams) ([]Effect, error) {
	cost, newSupply, err := math.CostToBuy(curve.CurveType, curve.BasePrice, curve.Slope, 0, params.InitialBuyAmount)
	if err != nil {
		return nil, err
	}
	if newSupply > curve.MaxSupply {
		return nil, fmt.Errorf("%w: %d exceeds max supply %d", ErrSupplyExceeded, newSupply, curve.MaxSupply)
	}

	fee, err := math.Fee(cost, curve.FeeBasisPoints)
	if err != nil {
		return nil, err
	}
	total, err := math.AddU64(cost, fee)
	if err != nil {
		return nil, err
	}
	if total > params.InitialMaxSol {
		return nil, fmt.Errorf("%w: cost %d exceeds limit %d", ErrSlippageExceeded, total, params.InitialMaxSol)
	}
	if cost > shared.MaxReserveLamports {
		return nil, fmt.Errorf("%w: reserve %d over cap %d", ErrReserveCapExceeded, cost, shared.MaxReserveLamports)
	}
	if acc.Payer.Lamports < total {
		return nil, fmt.Errorf("%w: payer has %d lamports, needs %d", ErrInsufficientFunds, acc.Payer.Lamports, total)
	}

	var effects []Effect
	if acc.AuthorityTokenAccount.DataIsEmpty() {
		effects = append(effects, &CreateTokenAccount{
			Funder:       acc.Payer.Key,
			Wallet:       acc.Authority.Key,
			Mint:         acc.Mint.Key,
			TokenAccount: acc.AuthorityTokenAccount.Key,
		})
	}
	effects = append(effects, &TransferLamports{
		From:     acc.Payer.Key,
		To:       curve.Treasury,
		Lamports: cost,
	})
	if fee > 0 {
		effects = append(effects, &TransferLamports{
			From:     acc.Payer.Key,
			To:       curve.FeeRecipient,
			Lamports: fee,
		})
	}
	effects = append(effects, &MintTokens{
		Mint:        acc.Mint.Key,
		Destination: acc.AuthorityTokenAccount.Key,
		Authority:   acc.BondingCurve.Key,
		Amount:      params.InitialBuyAmount,
	})

	curve.CurrentSupply = newSupply
	curve.ReserveBalance = cost
	return effects, nil
}
