package helpers

import (
	solanago "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/krazyTry/xtoken-go/bonding_curve/shared"
)

// Filter narrows a program account scan to records referencing one owner key.
type Filter struct {
	Owner  solanago.PublicKey
	Offset uint64
}

// TradingStatsAccountFilter returns GetProgramAccounts options matching
// trading stats records. The records carry no discriminator, so matching is
// by exact data size, optionally plus an owner memcmp at offset 0.
func TradingStatsAccountFilter(filter *Filter) *rpc.GetProgramAccountsOpts {
	filters := []rpc.RPCFilter{
		{DataSize: shared.TradingStatsSize},
	}
	if filter != nil {
		filters = append(filters, rpc.RPCFilter{
			Memcmp: &rpc.RPCFilterMemcmp{
				Offset: filter.Offset,
				Bytes:  filter.Owner[:],
			},
		})
	}
	return &rpc.GetProgramAccountsOpts{
		Encoding: solanago.EncodingBase64,
		Filters:  filters,
	}
}

// UserProfileAccountFilter matches profile records the same way.
func UserProfileAccountFilter(filter *Filter) *rpc.GetProgramAccountsOpts {
	filters := []rpc.RPCFilter{
		{DataSize: shared.UserProfileSize},
	}
	if filter != nil {
		filters = append(filters, rpc.RPCFilter{
			Memcmp: &rpc.RPCFilterMemcmp{
				Offset: filter.Offset,
				Bytes:  filter.Owner[:],
			},
		})
	}
	return &rpc.GetProgramAccountsOpts{
		Encoding: solanago.EncodingBase64,
		Filters:  filters,
	}
}
