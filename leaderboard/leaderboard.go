// Package leaderboard ranks traders by volume over their trading stats
// records. Ranking is a read-side aggregation: it scans program accounts over
// RPC and never touches curve state.
package leaderboard

import (
	"bytes"
	"math/bits"
	"sort"

	solanago "github.com/gagliardetto/solana-go"

	"github.com/krazyTry/xtoken-go/bonding_curve/shared"
)

// Entry is one ranked trader.
type Entry struct {
	Rank               int
	Owner              solanago.PublicKey
	TotalBought        uint64
	TotalSold          uint64
	BuyCount           uint32
	SellCount          uint32
	LastTradeTimestamp int64
}

// volume is TotalBought + TotalSold, carried as a 128-bit pair so two maxed
// u64 counters still compare correctly.
type volume struct {
	hi uint64
	lo uint64
}

func volumeOf(stats *shared.TradingStats) volume {
	lo, carry := bits.Add64(stats.TotalBought, stats.TotalSold, 0)
	return volume{hi: carry, lo: lo}
}

func (v volume) less(other volume) bool {
	if v.hi != other.hi {
		return v.hi < other.hi
	}
	return v.lo < other.lo
}

// Rank orders stats by descending trade volume and applies offset and limit.
// Ties break to the earlier last trade, then to the lower owner key, so the
// ordering is deterministic for any input order.
func Rank(stats []*shared.TradingStats, limit, offset int) []Entry {
	sorted := make([]*shared.TradingStats, len(stats))
	copy(sorted, stats)

	sort.SliceStable(sorted, func(i, j int) bool {
		vi, vj := volumeOf(sorted[i]), volumeOf(sorted[j])
		if vi != vj {
			return vj.less(vi)
		}
		if sorted[i].LastTradeTimestamp != sorted[j].LastTradeTimestamp {
			return sorted[i].LastTradeTimestamp < sorted[j].LastTradeTimestamp
		}
		return bytes.Compare(sorted[i].Owner[:], sorted[j].Owner[:]) < 0
	})

	if offset < 0 {
		offset = 0
	}
	if offset >= len(sorted) {
		return nil
	}
	sorted = sorted[offset:]
	if limit > 0 && limit < len(sorted) {
		sorted = sorted[:limit]
	}

	entries := make([]Entry, len(sorted))
	for i, s := range sorted {
		entries[i] = Entry{
			Rank:               offset + i + 1,
			Owner:              s.Owner,
			TotalBought:        s.TotalBought,
			TotalSold:          s.TotalSold,
			BuyCount:           s.BuyCount,
			SellCount:          s.SellCount,
			LastTradeTimestamp: s.LastTradeTimestamp,
		}
	}
	return entries
}
