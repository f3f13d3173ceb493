package bonding_curve

import (
	"fmt"

	binary "github.com/gagliardetto/binary"
	solanago "github.com/gagliardetto/solana-go"

	"github.com/krazyTry/xtoken-go/bonding_curve/shared"
)

// Instruction is the 1-byte discriminator leading every payload.
type Instruction uint8

const (
	InstructionInitialize     Instruction = 0
	InstructionBuyTokens      Instruction = 1
	InstructionSellTokens     Instruction = 2
	InstructionUpdateProfile  Instruction = 3
	InstructionGetLeaderboard Instruction = 4
)

func (i Instruction) String() string {
	switch i {
	case InstructionInitialize:
		return "Initialize"
	case InstructionBuyTokens:
		return "BuyTokens"
	case InstructionSellTokens:
		return "SellTokens"
	case InstructionUpdateProfile:
		return "UpdateProfile"
	case InstructionGetLeaderboard:
		return "GetLeaderboard"
	}
	return "Unknown"
}

func parseInstruction(value uint8) (Instruction, error) {
	switch Instruction(value) {
	case InstructionInitialize, InstructionBuyTokens, InstructionSellTokens,
		InstructionUpdateProfile, InstructionGetLeaderboard:
		return Instruction(value), nil
	}
	return 0, fmt.Errorf("%w: unknown discriminator %d", ErrInvalidInstructionData, value)
}

// InitializeParams is the Initialize payload. The base form is 64 bytes; the
// extended form appends an initial pre-buy (amount + max payment guard) and
// length-prefixed username / token name / token URI byte arrays.
type InitializeParams struct {
	Decimals       uint8
	CurveType      shared.CurveType
	FeeBasisPoints uint16
	BasePrice      uint64
	Slope          uint64
	MaxSupply      uint64
	FeeRecipient   solanago.PublicKey

	InitialBuyAmount uint64
	InitialMaxSol    uint64
	Username         []byte
	TokenName        []byte
	TokenURI         []byte
}

const (
	initializeBaseLen = 64
	initializeExtLen  = 16
)

func decodeInitializeParams(data []byte) (*InitializeParams, error) {
	if len(data) < initializeBaseLen {
		return nil, fmt.Errorf("%w: initialize payload is %d bytes, want at least %d", ErrInvalidInstructionData, len(data), initializeBaseLen)
	}

	dec := binary.NewBinDecoder(data)
	params := new(InitializeParams)

	var err error
	if params.Decimals, err = dec.ReadUint8(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInstructionData, err)
	}
	curveType, err := dec.ReadUint8()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInstructionData, err)
	}
	params.CurveType = shared.CurveType(curveType)
	if params.FeeBasisPoints, err = dec.ReadUint16(binary.LE); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInstructionData, err)
	}
	// reserved padding
	if _, err = dec.ReadUint32(binary.LE); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInstructionData, err)
	}
	if params.BasePrice, err = dec.ReadUint64(binary.LE); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInstructionData, err)
	}
	if params.Slope, err = dec.ReadUint64(binary.LE); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInstructionData, err)
	}
	if params.MaxSupply, err = dec.ReadUint64(binary.LE); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInstructionData, err)
	}
	recipient, err := dec.ReadNBytes(32)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInstructionData, err)
	}
	params.FeeRecipient = solanago.PublicKeyFromBytes(recipient)

	if dec.Remaining() == 0 {
		return params, nil
	}

	if dec.Remaining() < initializeExtLen {
		return nil, fmt.Errorf("%w: truncated initialize extension", ErrInvalidInstructionData)
	}
	if params.InitialBuyAmount, err = dec.ReadUint64(binary.LE); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInstructionData, err)
	}
	if params.InitialMaxSol, err = dec.ReadUint64(binary.LE); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInstructionData, err)
	}

	fields := []struct {
		max int
		out *[]byte
	}{
		{shared.MaxUsernameLen, &params.Username},
		{shared.MaxTokenNameLen, &params.TokenName},
		{shared.MaxTokenURILen, &params.TokenURI},
	}
	for _, field := range fields {
		if dec.Remaining() == 0 {
			break
		}
		raw, err := readLenPrefixed(dec, field.max)
		if err != nil {
			return nil, err
		}
		*field.out = raw
	}
	if dec.Remaining() != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes after initialize payload", ErrInvalidInstructionData, dec.Remaining())
	}
	return params, nil
}

func readLenPrefixed(dec *binary.Decoder, max int) ([]byte, error) {
	n, err := dec.ReadUint8()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInstructionData, err)
	}
	if int(n) > max {
		return nil, fmt.Errorf("%w: length prefix %d exceeds maximum %d", ErrInvalidInstructionData, n, max)
	}
	if dec.Remaining() < int(n) {
		return nil, fmt.Errorf("%w: truncated byte array", ErrInvalidInstructionData)
	}
	return dec.ReadNBytes(int(n))
}

// BuyTokensParams is the 16-byte BuyTokens payload.
type BuyTokensParams struct {
	TokenAmount  uint64
	MaxSolAmount uint64
}

func decodeBuyTokensParams(data []byte) (*BuyTokensParams, error) {
	if len(data) != 16 {
		return nil, fmt.Errorf("%w: buy payload is %d bytes, want 16", ErrInvalidInstructionData, len(data))
	}
	params := new(BuyTokensParams)
	if err := binary.NewBinDecoder(data).Decode(params); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInstructionData, err)
	}
	return params, nil
}

// SellTokensParams is the 16-byte SellTokens payload.
type SellTokensParams struct {
	TokenAmount  uint64
	MinSolAmount uint64
}

func decodeSellTokensParams(data []byte) (*SellTokensParams, error) {
	if len(data) != 16 {
		return nil, fmt.Errorf("%w: sell payload is %d bytes, want 16", ErrInvalidInstructionData, len(data))
	}
	params := new(SellTokensParams)
	if err := binary.NewBinDecoder(data).Decode(params); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInstructionData, err)
	}
	return params, nil
}

// UpdateProfileParams is the 236-byte UpdateProfile payload: two length
// bytes, u16 padding, then fixed username and bio arrays.
type UpdateProfileParams struct {
	UsernameLen uint8
	BioLen      uint8
	Username    []byte
	Bio         []byte
}

const updateProfileLen = 2 + 2 + shared.MaxUsernameLen + shared.MaxBioLen

func decodeUpdateProfileParams(data []byte) (*UpdateProfileParams, error) {
	if len(data) != updateProfileLen {
		return nil, fmt.Errorf("%w: profile payload is %d bytes, want %d", ErrInvalidInstructionData, len(data), updateProfileLen)
	}

	dec := binary.NewBinDecoder(data)
	params := new(UpdateProfileParams)

	var err error
	if params.UsernameLen, err = dec.ReadUint8(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInstructionData, err)
	}
	if params.BioLen, err = dec.ReadUint8(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInstructionData, err)
	}
	if _, err = dec.ReadUint16(binary.LE); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInstructionData, err)
	}
	if params.Username, err = dec.ReadNBytes(shared.MaxUsernameLen); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInstructionData, err)
	}
	if params.Bio, err = dec.ReadNBytes(shared.MaxBioLen); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInstructionData, err)
	}
	return params, nil
}

// GetLeaderboardParams is the 2-byte GetLeaderboard payload.
type GetLeaderboardParams struct {
	Limit  uint8
	Offset uint8
}

func decodeGetLeaderboardParams(data []byte) (*GetLeaderboardParams, error) {
	if len(data) != 2 {
		return nil, fmt.Errorf("%w: leaderboard payload is %d bytes, want 2", ErrInvalidInstructionData, len(data))
	}
	params := &GetLeaderboardParams{Limit: data[0], Offset: data[1]}
	if params.Limit == 0 || params.Limit > shared.MaxLeaderboardLimit {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLeaderboardLimit, params.Limit)
	}
	return params, nil
}
