package leaderboard

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"

	"github.com/krazyTry/xtoken-go/bonding_curve/helpers"
	"github.com/krazyTry/xtoken-go/bonding_curve/shared"
)

// Client aggregates trading stats accounts over RPC.
type Client struct {
	rpcClient *rpc.Client
	logger    *zap.Logger
}

func NewClient(rpcClient *rpc.Client, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{rpcClient: rpcClient, logger: logger}
}

// FetchStats scans every trading stats account of the program.
func (c *Client) FetchStats(ctx context.Context) ([]*shared.TradingStats, error) {
	opt := helpers.TradingStatsAccountFilter(nil)

	outs, err := c.rpcClient.GetProgramAccountsWithOpts(ctx, helpers.ProgramID, opt)
	if err != nil {
		if err == rpc.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}

	var list []*shared.TradingStats
	for _, out := range outs {
		stats := &shared.TradingStats{}
		if err := stats.Unmarshal(out.Account.Data.GetBinary()); err != nil {
			c.logger.Warn("skipping undecodable trading stats account",
				zap.Stringer("account", out.Pubkey),
				zap.Error(err),
			)
			continue
		}
		list = append(list, stats)
	}

	c.logger.Debug("fetched trading stats", zap.Int("accounts", len(list)))
	return list, nil
}

// GetLeaderboard returns up to limit ranked traders starting at offset.
// Bounds follow the on-chain query: limit must be within 1..100.
func (c *Client) GetLeaderboard(ctx context.Context, limit, offset int) ([]Entry, error) {
	if limit < 1 || limit > shared.MaxLeaderboardLimit {
		return nil, fmt.Errorf("leaderboard limit %d out of range [1, %d]", limit, shared.MaxLeaderboardLimit)
	}

	stats, err := c.FetchStats(ctx)
	if err != nil {
		return nil, err
	}
	return Rank(stats, limit, offset), nil
}
