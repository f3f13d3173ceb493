package bonding_curve

import "go.uber.org/zap"

// getLeaderboard validates the query bounds and emits no effects. Ranking is
// performed off-path over trading stats accounts, see the leaderboard
// package.
func (p *Processor) getLeaderboard(accounts []*Account, payload []byte) ([]Effect, error) {
	params, err := decodeGetLeaderboardParams(payload)
	if err != nil {
		return nil, err
	}

	p.logger.Debug("leaderboard query",
		zap.Uint8("limit", params.Limit),
		zap.Uint8("offset", params.Offset),
	)
	return nil, nil
}
