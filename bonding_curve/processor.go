package bonding_curve

import (
	"fmt"

	"go.uber.org/zap"
)

// Processor executes bonding curve instructions against in-memory account
// state. It is a pure state machine: the host supplies the accounts, the raw
// instruction payload and the clock, and receives back a list of effects to
// apply. On any error no account is mutated and no effects are returned.
type Processor struct {
	logger *zap.Logger
}

func NewProcessor(logger *zap.Logger) *Processor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Processor{logger: logger}
}

// Process dispatches one instruction. The first byte of data selects the
// instruction, the remainder is its payload.
func (p *Processor) Process(accounts []*Account, data []byte, now int64) ([]Effect, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty instruction data", ErrInvalidInstructionData)
	}

	instruction, err := parseInstruction(data[0])
	if err != nil {
		return nil, err
	}
	payload := data[1:]

	p.logger.Debug("processing instruction",
		zap.Stringer("instruction", instruction),
		zap.Int("accounts", len(accounts)),
		zap.Int("payload", len(payload)),
	)

	var effects []Effect
	switch instruction {
	case InstructionInitialize:
		effects, err = p.initialize(accounts, payload)
	case InstructionBuyTokens:
		effects, err = p.buyTokens(accounts, payload, now)
	case InstructionSellTokens:
		effects, err = p.sellTokens(accounts, payload, now)
	case InstructionUpdateProfile:
		effects, err = p.updateProfile(accounts, payload)
	case InstructionGetLeaderboard:
		effects, err = p.getLeaderboard(accounts, payload)
	}
	if err != nil {
		p.logger.Debug("instruction failed",
			zap.Stringer("instruction", instruction),
			zap.Stringer("category", CategoryOf(err)),
			zap.Error(err),
		)
		return nil, err
	}
	return effects, nil
}
