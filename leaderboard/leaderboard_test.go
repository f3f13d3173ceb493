package leaderboard

import (
	"math"
	"testing"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krazyTry/xtoken-go/bonding_curve/shared"
)

func stats(owner solanago.PublicKey, bought, sold uint64, lastTrade int64) *shared.TradingStats {
	return &shared.TradingStats{
		Owner:              owner,
		TotalBought:        bought,
		TotalSold:          sold,
		LastTradeTimestamp: lastTrade,
	}
}

func TestRank_OrdersByVolume(t *testing.T) {
	a := solanago.NewWallet().PublicKey()
	b := solanago.NewWallet().PublicKey()
	c := solanago.NewWallet().PublicKey()

	entries := Rank([]*shared.TradingStats{
		stats(a, 100, 0, 1),
		stats(b, 400, 100, 2),
		stats(c, 150, 100, 3),
	}, 10, 0)

	require.Len(t, entries, 3)
	assert.Equal(t, b, entries[0].Owner)
	assert.Equal(t, c, entries[1].Owner)
	assert.Equal(t, a, entries[2].Owner)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, 3, entries[2].Rank)
}

func TestRank_TieBreaksToEarlierTrade(t *testing.T) {
	early := solanago.NewWallet().PublicKey()
	late := solanago.NewWallet().PublicKey()

	entries := Rank([]*shared.TradingStats{
		stats(late, 100, 0, 500),
		stats(early, 100, 0, 100),
	}, 10, 0)

	require.Len(t, entries, 2)
	assert.Equal(t, early, entries[0].Owner)
	assert.Equal(t, late, entries[1].Owner)
}

func TestRank_DeterministicForAnyInputOrder(t *testing.T) {
	a := solanago.NewWallet().PublicKey()
	b := solanago.NewWallet().PublicKey()
	list := []*shared.TradingStats{
		stats(a, 100, 0, 7),
		stats(b, 100, 0, 7),
	}
	reversed := []*shared.TradingStats{list[1], list[0]}

	first := Rank(list, 10, 0)
	second := Rank(reversed, 10, 0)
	require.Len(t, first, 2)
	assert.Equal(t, first[0].Owner, second[0].Owner)
	assert.Equal(t, first[1].Owner, second[1].Owner)
}

func TestRank_VolumeSurvivesU64Overflow(t *testing.T) {
	whale := solanago.NewWallet().PublicKey()
	minnow := solanago.NewWallet().PublicKey()

	entries := Rank([]*shared.TradingStats{
		stats(minnow, math.MaxUint64, 0, 1),
		stats(whale, math.MaxUint64, math.MaxUint64, 2),
	}, 10, 0)

	require.Len(t, entries, 2)
	assert.Equal(t, whale, entries[0].Owner)
}

func TestRank_LimitAndOffset(t *testing.T) {
	var list []*shared.TradingStats
	for i := uint64(1); i <= 5; i++ {
		list = append(list, stats(solanago.NewWallet().PublicKey(), i*100, 0, int64(i)))
	}

	page := Rank(list, 2, 1)
	require.Len(t, page, 2)
	assert.Equal(t, 2, page[0].Rank)
	assert.Equal(t, uint64(400), page[0].TotalBought)
	assert.Equal(t, 3, page[1].Rank)
	assert.Equal(t, uint64(300), page[1].TotalBought)

	assert.Empty(t, Rank(list, 2, 10), "offset past the end yields no entries")
	assert.Len(t, Rank(list, 100, 0), 5)
}

func TestRank_EmptyInput(t *testing.T) {
	assert.Empty(t, Rank(nil, 10, 0))
}
