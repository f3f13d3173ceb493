package bonding_curve_test

import (
	"encoding/binary"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bondingcurve "github.com/krazyTry/xtoken-go/bonding_curve"
	"github.com/krazyTry/xtoken-go/bonding_curve/helpers"
	"github.com/krazyTry/xtoken-go/bonding_curve/shared"
	"github.com/krazyTry/xtoken-go/client"
)

const (
	oneToken = uint64(shared.PriceScale)
	oneSOL   = uint64(1_000_000_000)
	testTime = int64(1_700_000_000)
)

// accountsFor materializes in-memory accounts matching a built instruction's
// metas, so a builder and the processor are exercised against the same
// account order.
func accountsFor(ix solana.Instruction) []*bondingcurve.Account {
	metas := ix.Accounts()
	accounts := make([]*bondingcurve.Account, len(metas))
	for i, meta := range metas {
		accounts[i] = &bondingcurve.Account{
			Key:      meta.PublicKey,
			Signer:   meta.IsSigner,
			Writable: meta.IsWritable,
		}
	}
	return accounts
}

func mustData(t *testing.T, ix solana.Instruction) []byte {
	t.Helper()
	data, err := ix.Data()
	require.NoError(t, err)
	return data
}

// splTokenAccountData hand-encodes the 165-byte SPL token account layout.
func splTokenAccountData(mint, owner solana.PublicKey, amount uint64) []byte {
	data := make([]byte, 165)
	copy(data[0:32], mint[:])
	copy(data[32:64], owner[:])
	binary.LittleEndian.PutUint64(data[64:72], amount)
	data[108] = 1 // initialized
	return data
}

func defaultInitializeParams(feeRecipient solana.PublicKey) *client.InitializeParams {
	return &client.InitializeParams{
		Decimals:       9,
		CurveType:      shared.CurveTypeLinear,
		FeeBasisPoints: 250,
		BasePrice:      oneSOL,
		Slope:          oneSOL,
		MaxSupply:      1000 * oneToken,
		FeeRecipient:   feeRecipient,
	}
}

type curveFixture struct {
	processor *bondingcurve.Processor

	authority    solana.PublicKey
	feeRecipient solana.PublicKey
	mint         solana.PublicKey

	curveAddress solana.PublicKey
	treasury     solana.PublicKey
}

func newCurveFixture(t *testing.T) *curveFixture {
	t.Helper()
	f := &curveFixture{
		processor:    bondingcurve.NewProcessor(nil),
		authority:    solana.NewWallet().PublicKey(),
		feeRecipient: solana.NewWallet().PublicKey(),
		mint:         solana.NewWallet().PublicKey(),
	}
	f.curveAddress, _ = helpers.DeriveBondingCurveAddress(f.mint)
	f.treasury, _ = helpers.DeriveTreasuryAddress(f.mint)
	return f
}

// curveRecord marshals an initialized curve into account data.
func (f *curveFixture) curveRecord(t *testing.T, curveType shared.CurveType, currentSupply, reserve uint64) []byte {
	t.Helper()
	_, bump := helpers.DeriveBondingCurveAddress(f.mint)
	curve := &shared.BondingCurve{
		Authority:      f.authority,
		Mint:           f.mint,
		Treasury:       f.treasury,
		FeeRecipient:   f.feeRecipient,
		CurveType:      curveType,
		BasePrice:      oneSOL,
		Slope:          oneSOL,
		MaxSupply:      1000 * oneToken,
		CurrentSupply:  currentSupply,
		ReserveBalance: reserve,
		FeeBasisPoints: 250,
		Bump:           bump,
		Initialized:    true,
	}
	data, err := curve.Marshal()
	require.NoError(t, err)
	return data
}

func decodeCurve(t *testing.T, account *bondingcurve.Account) *shared.BondingCurve {
	t.Helper()
	curve := &shared.BondingCurve{}
	require.NoError(t, curve.Unmarshal(account.Data))
	return curve
}

func decodeStats(t *testing.T, account *bondingcurve.Account) *shared.TradingStats {
	t.Helper()
	stats := &shared.TradingStats{}
	require.NoError(t, stats.Unmarshal(account.Data))
	return stats
}

// --- Initialize ---

func TestInitialize_CreatesCurveAndTreasury(t *testing.T) {
	f := newCurveFixture(t)
	payer := solana.NewWallet().PublicKey()

	ix, err := client.InitializeInstruction(f.authority, payer, f.mint, defaultInitializeParams(f.feeRecipient))
	require.NoError(t, err)

	accounts := accountsFor(ix)
	effects, err := f.processor.Process(accounts, mustData(t, ix), testTime)
	require.NoError(t, err)

	require.Len(t, effects, 2)
	createCurve, ok := effects[0].(*bondingcurve.CreateAccount)
	require.True(t, ok)
	assert.Equal(t, f.curveAddress, createCurve.NewAccount)
	assert.Equal(t, helpers.ProgramID, createCurve.Owner)
	assert.Equal(t, uint64(shared.BondingCurveSize), createCurve.Space)

	createTreasury, ok := effects[1].(*bondingcurve.CreateAccount)
	require.True(t, ok)
	assert.Equal(t, f.treasury, createTreasury.NewAccount)
	assert.Equal(t, solana.SystemProgramID, createTreasury.Owner)

	curve := decodeCurve(t, accounts[1])
	assert.True(t, curve.Initialized)
	assert.Equal(t, f.authority, curve.Authority)
	assert.Equal(t, f.mint, curve.Mint)
	assert.Equal(t, f.treasury, curve.Treasury)
	assert.Equal(t, f.feeRecipient, curve.FeeRecipient)
	assert.Equal(t, oneSOL, curve.BasePrice)
	assert.Equal(t, uint64(0), curve.CurrentSupply)
	assert.Equal(t, uint64(0), curve.ReserveBalance)
}

func TestInitialize_WithMetadataAndPreBuy(t *testing.T) {
	f := newCurveFixture(t)
	payer := solana.NewWallet().PublicKey()

	params := defaultInitializeParams(f.feeRecipient)
	params.TokenName = "X Token"
	params.TokenURI = "https://example.com/x.json"
	params.InitialBuyAmount = oneToken
	params.InitialMaxSol = 10 * oneSOL

	ix, err := client.InitializeInstruction(f.authority, payer, f.mint, params)
	require.NoError(t, err)

	accounts := accountsFor(ix)
	accounts[5].Lamports = 100 * oneSOL // payer
	effects, err := f.processor.Process(accounts, mustData(t, ix), testTime)
	require.NoError(t, err)

	var (
		metadata *bondingcurve.CreateMetadata
		mintEff  *bondingcurve.MintTokens
		ataEff   *bondingcurve.CreateTokenAccount
		transfer *bondingcurve.TransferLamports
	)
	for _, effect := range effects {
		switch e := effect.(type) {
		case *bondingcurve.CreateMetadata:
			metadata = e
		case *bondingcurve.MintTokens:
			mintEff = e
		case *bondingcurve.CreateTokenAccount:
			ataEff = e
		case *bondingcurve.TransferLamports:
			if transfer == nil {
				transfer = e
			}
		}
	}

	require.NotNil(t, metadata)
	assert.Equal(t, "X Token", metadata.Name)
	assert.Equal(t, "https://example.com/x.json", metadata.URI)
	assert.Equal(t, f.curveAddress, metadata.Authority)

	require.NotNil(t, ataEff)
	require.NotNil(t, transfer)
	// first token on a linear curve costs the base price
	assert.Equal(t, oneSOL, transfer.Lamports)
	assert.Equal(t, f.treasury, transfer.To)

	require.NotNil(t, mintEff)
	assert.Equal(t, oneToken, mintEff.Amount)
	assert.Equal(t, f.curveAddress, mintEff.Authority)

	curve := decodeCurve(t, accounts[1])
	assert.Equal(t, oneToken, curve.CurrentSupply)
	assert.Equal(t, oneSOL, curve.ReserveBalance)
}

func TestInitialize_RejectsInvalidParams(t *testing.T) {
	f := newCurveFixture(t)
	payer := solana.NewWallet().PublicKey()

	tests := []struct {
		name   string
		mutate func(*client.InitializeParams)
		want   error
	}{
		{"zero base price", func(p *client.InitializeParams) { p.BasePrice = 0 }, bondingcurve.ErrInvalidCurveParameters},
		{"zero max supply", func(p *client.InitializeParams) { p.MaxSupply = 0 }, bondingcurve.ErrInvalidCurveParameters},
		{"decimals too large", func(p *client.InitializeParams) { p.Decimals = 10 }, bondingcurve.ErrInvalidCurveParameters},
		{"unknown curve", func(p *client.InitializeParams) { p.CurveType = shared.CurveType(7) }, bondingcurve.ErrInvalidCurveType},
		{"fee too high", func(p *client.InitializeParams) { p.FeeBasisPoints = 10_001 }, bondingcurve.ErrInvalidFeeBasisPoints},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := defaultInitializeParams(f.feeRecipient)
			tt.mutate(params)

			ix, err := client.InitializeInstruction(f.authority, payer, f.mint, params)
			require.NoError(t, err)

			accounts := accountsFor(ix)
			effects, err := f.processor.Process(accounts, mustData(t, ix), testTime)
			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, effects)
			assert.Empty(t, accounts[1].Data, "failed initialize must not write the curve account")
		})
	}
}

func TestInitialize_RejectsMissingSigner(t *testing.T) {
	f := newCurveFixture(t)
	payer := solana.NewWallet().PublicKey()

	ix, err := client.InitializeInstruction(f.authority, payer, f.mint, defaultInitializeParams(f.feeRecipient))
	require.NoError(t, err)

	accounts := accountsFor(ix)
	accounts[0].Signer = false
	_, err = f.processor.Process(accounts, mustData(t, ix), testTime)
	assert.ErrorIs(t, err, bondingcurve.ErrMissingRequiredSignature)
}

func TestInitialize_RejectsDoubleInit(t *testing.T) {
	f := newCurveFixture(t)
	payer := solana.NewWallet().PublicKey()

	ix, err := client.InitializeInstruction(f.authority, payer, f.mint, defaultInitializeParams(f.feeRecipient))
	require.NoError(t, err)

	accounts := accountsFor(ix)
	accounts[1].Data = f.curveRecord(t, shared.CurveTypeLinear, 0, 0)
	accounts[1].Owner = helpers.ProgramID

	_, err = f.processor.Process(accounts, mustData(t, ix), testTime)
	assert.ErrorIs(t, err, bondingcurve.ErrAccountAlreadyInitialized)
}

// --- BuyTokens ---

func buySetup(t *testing.T, f *curveFixture, buyer solana.PublicKey, tokenAmount, maxSol, buyerLamports uint64) (solana.Instruction, []*bondingcurve.Account) {
	t.Helper()
	ix, err := client.BuyTokensInstruction(buyer, f.mint, f.feeRecipient, tokenAmount, maxSol)
	require.NoError(t, err)

	accounts := accountsFor(ix)
	accounts[0].Lamports = buyerLamports
	accounts[1].Data = f.curveRecord(t, shared.CurveTypeLinear, 0, 0)
	accounts[1].Owner = helpers.ProgramID
	return ix, accounts
}

func TestBuyTokens_FirstPurchase(t *testing.T) {
	f := newCurveFixture(t)
	buyer := solana.NewWallet().PublicKey()

	ix, accounts := buySetup(t, f, buyer, oneToken, 2*oneSOL, 10*oneSOL)
	effects, err := f.processor.Process(accounts, mustData(t, ix), testTime)
	require.NoError(t, err)

	// stats create, ATA create, cost transfer, fee transfer, mint
	require.Len(t, effects, 5)

	createStats, ok := effects[0].(*bondingcurve.CreateAccount)
	require.True(t, ok)
	statsAddress, _ := helpers.DeriveTradingStatsAddress(buyer)
	assert.Equal(t, statsAddress, createStats.NewAccount)

	_, ok = effects[1].(*bondingcurve.CreateTokenAccount)
	require.True(t, ok)

	costTransfer, ok := effects[2].(*bondingcurve.TransferLamports)
	require.True(t, ok)
	assert.Equal(t, oneSOL, costTransfer.Lamports)
	assert.Equal(t, f.treasury, costTransfer.To)

	feeTransfer, ok := effects[3].(*bondingcurve.TransferLamports)
	require.True(t, ok)
	assert.Equal(t, uint64(25_000_000), feeTransfer.Lamports) // 250 bps of 1 SOL
	assert.Equal(t, f.feeRecipient, feeTransfer.To)

	mintEff, ok := effects[4].(*bondingcurve.MintTokens)
	require.True(t, ok)
	assert.Equal(t, oneToken, mintEff.Amount)

	curve := decodeCurve(t, accounts[1])
	assert.Equal(t, oneToken, curve.CurrentSupply)
	assert.Equal(t, oneSOL, curve.ReserveBalance)

	stats := decodeStats(t, accounts[6])
	assert.Equal(t, buyer, stats.Owner)
	assert.Equal(t, oneToken, stats.TotalBought)
	assert.Equal(t, uint32(1), stats.BuyCount)
	assert.Equal(t, testTime, stats.LastTradeTimestamp)
}

func TestBuyTokens_SlippageExceeded(t *testing.T) {
	f := newCurveFixture(t)
	buyer := solana.NewWallet().PublicKey()

	// total is cost + fee = 1.025 SOL, cap it below that
	ix, accounts := buySetup(t, f, buyer, oneToken, oneSOL, 10*oneSOL)
	before := append([]byte(nil), accounts[1].Data...)

	effects, err := f.processor.Process(accounts, mustData(t, ix), testTime)
	assert.ErrorIs(t, err, bondingcurve.ErrSlippageExceeded)
	assert.Empty(t, effects)
	assert.Equal(t, before, accounts[1].Data, "failed buy must not mutate the curve record")
	assert.Empty(t, accounts[6].Data, "failed buy must not write trading stats")
}

func TestBuyTokens_SupplyExceeded(t *testing.T) {
	f := newCurveFixture(t)
	buyer := solana.NewWallet().PublicKey()

	ix, accounts := buySetup(t, f, buyer, 1001*oneToken, 1<<62, 1<<62)
	_, err := f.processor.Process(accounts, mustData(t, ix), testTime)
	assert.ErrorIs(t, err, bondingcurve.ErrSupplyExceeded)
}

func TestBuyTokens_InsufficientFunds(t *testing.T) {
	f := newCurveFixture(t)
	buyer := solana.NewWallet().PublicKey()

	ix, accounts := buySetup(t, f, buyer, oneToken, 2*oneSOL, oneSOL/2)
	_, err := f.processor.Process(accounts, mustData(t, ix), testTime)
	assert.ErrorIs(t, err, bondingcurve.ErrInsufficientFunds)
}

func TestBuyTokens_ZeroAmount(t *testing.T) {
	f := newCurveFixture(t)
	buyer := solana.NewWallet().PublicKey()

	ix, accounts := buySetup(t, f, buyer, 1, oneSOL, oneSOL)
	data := mustData(t, ix)
	binary.LittleEndian.PutUint64(data[1:9], 0)

	_, err := f.processor.Process(accounts, data, testTime)
	assert.ErrorIs(t, err, bondingcurve.ErrInvalidTokenAmount)
}

func TestBuyTokens_UninitializedCurve(t *testing.T) {
	f := newCurveFixture(t)
	buyer := solana.NewWallet().PublicKey()

	ix, err := client.BuyTokensInstruction(buyer, f.mint, f.feeRecipient, oneToken, 2*oneSOL)
	require.NoError(t, err)

	accounts := accountsFor(ix)
	_, err = f.processor.Process(accounts, mustData(t, ix), testTime)
	assert.ErrorIs(t, err, bondingcurve.ErrAccountNotInitialized)
}

func TestBuyTokens_NotEnoughAccounts(t *testing.T) {
	f := newCurveFixture(t)
	buyer := solana.NewWallet().PublicKey()

	ix, accounts := buySetup(t, f, buyer, oneToken, 2*oneSOL, 10*oneSOL)
	_, err := f.processor.Process(accounts[:5], mustData(t, ix), testTime)
	assert.ErrorIs(t, err, bondingcurve.ErrNotEnoughAccounts)
}

// --- SellTokens ---

func sellSetup(t *testing.T, f *curveFixture, seller solana.PublicKey, holdings, tokenAmount, minSol uint64) (solana.Instruction, []*bondingcurve.Account) {
	t.Helper()
	ix, err := client.SellTokensInstruction(seller, f.mint, f.feeRecipient, tokenAmount, minSol)
	require.NoError(t, err)

	accounts := accountsFor(ix)
	// curve state after two whole tokens were bought for 1 + 2 SOL
	accounts[1].Data = f.curveRecord(t, shared.CurveTypeLinear, 2*oneToken, 3*oneSOL)
	accounts[1].Owner = helpers.ProgramID
	accounts[3].Data = splTokenAccountData(f.mint, seller, holdings)
	accounts[4].Lamports = 3 * oneSOL
	return ix, accounts
}

func TestSellTokens_PaysNetProceeds(t *testing.T) {
	f := newCurveFixture(t)
	seller := solana.NewWallet().PublicKey()

	ix, accounts := sellSetup(t, f, seller, 2*oneToken, oneToken, 0)
	effects, err := f.processor.Process(accounts, mustData(t, ix), testTime)
	require.NoError(t, err)

	// stats create, burn, payout, fee
	require.Len(t, effects, 4)

	burn, ok := effects[1].(*bondingcurve.BurnTokens)
	require.True(t, ok)
	assert.Equal(t, oneToken, burn.Amount)
	assert.Equal(t, seller, burn.Owner)

	// selling back to supply 1e9 prices the token at 2 SOL; 250 bps fee
	payout, ok := effects[2].(*bondingcurve.TransferLamports)
	require.True(t, ok)
	assert.Equal(t, 2*oneSOL-50_000_000, payout.Lamports)
	assert.Equal(t, seller, payout.To)

	feeTransfer, ok := effects[3].(*bondingcurve.TransferLamports)
	require.True(t, ok)
	assert.Equal(t, uint64(50_000_000), feeTransfer.Lamports)
	assert.Equal(t, f.feeRecipient, feeTransfer.To)

	curve := decodeCurve(t, accounts[1])
	assert.Equal(t, oneToken, curve.CurrentSupply)
	assert.Equal(t, oneSOL, curve.ReserveBalance)

	stats := decodeStats(t, accounts[6])
	assert.Equal(t, oneToken, stats.TotalSold)
	assert.Equal(t, uint32(1), stats.SellCount)
}

func TestSellTokens_InsufficientHoldings(t *testing.T) {
	f := newCurveFixture(t)
	seller := solana.NewWallet().PublicKey()

	ix, accounts := sellSetup(t, f, seller, oneToken/2, oneToken, 0)
	before := append([]byte(nil), accounts[1].Data...)

	effects, err := f.processor.Process(accounts, mustData(t, ix), testTime)
	assert.ErrorIs(t, err, bondingcurve.ErrInsufficientTokenBalance)
	assert.Empty(t, effects)
	assert.Equal(t, before, accounts[1].Data)
}

func TestSellTokens_MoreThanCirculating(t *testing.T) {
	f := newCurveFixture(t)
	seller := solana.NewWallet().PublicKey()

	ix, accounts := sellSetup(t, f, seller, 10*oneToken, 3*oneToken, 0)
	_, err := f.processor.Process(accounts, mustData(t, ix), testTime)
	assert.ErrorIs(t, err, bondingcurve.ErrInsufficientTokenBalance)
}

func TestSellTokens_SlippageExceeded(t *testing.T) {
	f := newCurveFixture(t)
	seller := solana.NewWallet().PublicKey()

	// net proceeds are 1.95 SOL, demand more
	ix, accounts := sellSetup(t, f, seller, 2*oneToken, oneToken, 2*oneSOL)
	_, err := f.processor.Process(accounts, mustData(t, ix), testTime)
	assert.ErrorIs(t, err, bondingcurve.ErrSlippageExceeded)
}

func TestSellTokens_InsufficientReserve(t *testing.T) {
	f := newCurveFixture(t)
	seller := solana.NewWallet().PublicKey()

	ix, accounts := sellSetup(t, f, seller, 2*oneToken, oneToken, 0)
	// rewrite the curve with a drained reserve
	accounts[1].Data = f.curveRecord(t, shared.CurveTypeLinear, 2*oneToken, oneSOL)

	_, err := f.processor.Process(accounts, mustData(t, ix), testTime)
	assert.ErrorIs(t, err, bondingcurve.ErrInsufficientReserve)
}

func TestSellTokens_WrongMintTokenAccount(t *testing.T) {
	f := newCurveFixture(t)
	seller := solana.NewWallet().PublicKey()

	ix, accounts := sellSetup(t, f, seller, 2*oneToken, oneToken, 0)
	accounts[3].Data = splTokenAccountData(solana.NewWallet().PublicKey(), seller, 2*oneToken)

	_, err := f.processor.Process(accounts, mustData(t, ix), testTime)
	assert.ErrorIs(t, err, bondingcurve.ErrInvalidAccountData)
}

// --- UpdateProfile ---

func TestUpdateProfile_CreateThenOverwrite(t *testing.T) {
	f := newCurveFixture(t)
	user := solana.NewWallet().PublicKey()

	ix, err := client.UpdateProfileInstruction(user, "satoshi", "launching tokens")
	require.NoError(t, err)

	accounts := accountsFor(ix)
	effects, err := f.processor.Process(accounts, mustData(t, ix), testTime)
	require.NoError(t, err)
	require.Len(t, effects, 1)
	_, ok := effects[0].(*bondingcurve.CreateAccount)
	require.True(t, ok)

	profile := &shared.UserProfile{}
	require.NoError(t, profile.Unmarshal(accounts[0].Data))
	assert.Equal(t, user, profile.Owner)
	assert.Equal(t, "satoshi", profile.Username())
	assert.Equal(t, "launching tokens", profile.Bio())

	// second update overwrites in place, no create effect
	ix, err = client.UpdateProfileInstruction(user, "finney", "")
	require.NoError(t, err)

	again := accountsFor(ix)
	again[0].Data = accounts[0].Data
	again[0].Owner = helpers.ProgramID

	effects, err = f.processor.Process(again, mustData(t, ix), testTime)
	require.NoError(t, err)
	assert.Empty(t, effects)

	require.NoError(t, profile.Unmarshal(again[0].Data))
	assert.Equal(t, "finney", profile.Username())
	assert.Equal(t, "", profile.Bio())
}

func TestUpdateProfile_WrongPDA(t *testing.T) {
	f := newCurveFixture(t)
	user := solana.NewWallet().PublicKey()

	ix, err := client.UpdateProfileInstruction(user, "satoshi", "")
	require.NoError(t, err)

	accounts := accountsFor(ix)
	accounts[0].Key = solana.NewWallet().PublicKey()

	_, err = f.processor.Process(accounts, mustData(t, ix), testTime)
	assert.ErrorIs(t, err, bondingcurve.ErrInvalidSeeds)
}

func TestUpdateProfile_ForeignProfileRejected(t *testing.T) {
	f := newCurveFixture(t)
	user := solana.NewWallet().PublicKey()
	other := solana.NewWallet().PublicKey()

	ix, err := client.UpdateProfileInstruction(user, "mallory", "")
	require.NoError(t, err)

	foreign := &shared.UserProfile{Owner: other}
	foreign.SetProfile([]byte("alice"), nil)
	data, err := foreign.Marshal()
	require.NoError(t, err)

	accounts := accountsFor(ix)
	accounts[0].Data = data
	accounts[0].Owner = helpers.ProgramID

	_, err = f.processor.Process(accounts, mustData(t, ix), testTime)
	assert.ErrorIs(t, err, bondingcurve.ErrInvalidAccountData)
}

// --- GetLeaderboard / dispatch ---

func TestGetLeaderboard_ValidatesLimit(t *testing.T) {
	f := newCurveFixture(t)

	ix, err := client.GetLeaderboardInstruction(10, 0)
	require.NoError(t, err)

	effects, err := f.processor.Process(nil, mustData(t, ix), testTime)
	require.NoError(t, err)
	assert.Empty(t, effects)

	// limit 0 and limit 101 are rejected at decode time
	_, err = f.processor.Process(nil, []byte{4, 0, 0}, testTime)
	assert.ErrorIs(t, err, bondingcurve.ErrInvalidLeaderboardLimit)
	_, err = f.processor.Process(nil, []byte{4, 101, 0}, testTime)
	assert.ErrorIs(t, err, bondingcurve.ErrInvalidLeaderboardLimit)
}

func TestProcess_RejectsBadInstructionData(t *testing.T) {
	f := newCurveFixture(t)

	_, err := f.processor.Process(nil, nil, testTime)
	assert.ErrorIs(t, err, bondingcurve.ErrInvalidInstructionData)

	_, err = f.processor.Process(nil, []byte{99}, testTime)
	assert.ErrorIs(t, err, bondingcurve.ErrInvalidInstructionData)

	// truncated buy payload
	_, err = f.processor.Process(nil, []byte{1, 1, 2, 3}, testTime)
	assert.ErrorIs(t, err, bondingcurve.ErrInvalidInstructionData)
}

func TestCategoryOf_Classification(t *testing.T) {
	assert.Equal(t, bondingcurve.CategoryValidation, bondingcurve.CategoryOf(bondingcurve.ErrInvalidSeeds))
	assert.Equal(t, bondingcurve.CategoryState, bondingcurve.CategoryOf(bondingcurve.ErrSupplyExceeded))
	assert.Equal(t, bondingcurve.CategoryEconomic, bondingcurve.CategoryOf(bondingcurve.ErrSlippageExceeded))
}
