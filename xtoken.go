package xtoken

import (
	bondingcurve "github.com/krazyTry/xtoken-go/bonding_curve"
	"github.com/krazyTry/xtoken-go/leaderboard"
)

// NewProcessor creates a bonding curve instruction processor.
//
// Example:
//
// processor := NewProcessor(logger)
//
// effects, _ := processor.Process(accounts, instructionData, time.Now().Unix())
var NewProcessor = bondingcurve.NewProcessor

// NewLeaderboardClient creates an RPC-backed leaderboard aggregator.
//
// Example:
//
// board, _ := NewLeaderboardClient(rpcClient, logger)
//
// entries, _ := board.GetLeaderboard(ctx, 10, 0)
var NewLeaderboardClient = leaderboard.NewClient
