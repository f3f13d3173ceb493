package shared

import (
	"bytes"
	"fmt"

	binary "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

// Persisted record sizes in bytes. The layouts are fixed little-endian and
// must stay byte-compatible with the on-chain program.
const (
	BondingCurveSize = 173
	TradingStatsSize = 64
	UserProfileSize  = 266
)

// BondingCurve is the per-mint curve record. Created once by Initialize,
// mutated only by buys and sells.
type BondingCurve struct {
	Authority      solana.PublicKey
	Mint           solana.PublicKey
	Treasury       solana.PublicKey
	FeeRecipient   solana.PublicKey
	CurveType      CurveType
	BasePrice      uint64
	Slope          uint64
	MaxSupply      uint64
	CurrentSupply  uint64
	ReserveBalance uint64
	FeeBasisPoints uint16
	Bump           uint8
	Initialized    bool
}

func (b *BondingCurve) Unmarshal(data []byte) error {
	if len(data) != BondingCurveSize {
		return fmt.Errorf("bonding curve record must be %d bytes, got %d", BondingCurveSize, len(data))
	}
	return binary.NewBinDecoder(data).Decode(b)
}

func (b *BondingCurve) Marshal() ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := binary.NewBinEncoder(buf).Encode(b); err != nil {
		return nil, err
	}
	if buf.Len() != BondingCurveSize {
		return nil, fmt.Errorf("encoded bonding curve record is %d bytes, want %d", buf.Len(), BondingCurveSize)
	}
	return buf.Bytes(), nil
}

// TradingStats is the per-trader record, one per wallet. Created lazily on
// the first buy or sell. All counters are monotonically non-decreasing.
type TradingStats struct {
	Owner              solana.PublicKey
	TotalBought        uint64
	TotalSold          uint64
	BuyCount           uint32
	SellCount          uint32
	LastTradeTimestamp int64
}

func (s *TradingStats) Unmarshal(data []byte) error {
	if len(data) != TradingStatsSize {
		return fmt.Errorf("trading stats record must be %d bytes, got %d", TradingStatsSize, len(data))
	}
	return binary.NewBinDecoder(data).Decode(s)
}

func (s *TradingStats) Marshal() ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := binary.NewBinEncoder(buf).Encode(s); err != nil {
		return nil, err
	}
	if buf.Len() != TradingStatsSize {
		return nil, fmt.Errorf("encoded trading stats record is %d bytes, want %d", buf.Len(), TradingStatsSize)
	}
	return buf.Bytes(), nil
}

// UserProfile is the per-wallet profile record, independent of any curve.
type UserProfile struct {
	Owner       solana.PublicKey
	UsernameLen uint8
	BioLen      uint8
	UsernameRaw [MaxUsernameLen]byte
	BioRaw      [MaxBioLen]byte
}

func (p *UserProfile) Unmarshal(data []byte) error {
	if len(data) != UserProfileSize {
		return fmt.Errorf("user profile record must be %d bytes, got %d", UserProfileSize, len(data))
	}
	return binary.NewBinDecoder(data).Decode(p)
}

func (p *UserProfile) Marshal() ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := binary.NewBinEncoder(buf).Encode(p); err != nil {
		return nil, err
	}
	if buf.Len() != UserProfileSize {
		return nil, fmt.Errorf("encoded user profile record is %d bytes, want %d", buf.Len(), UserProfileSize)
	}
	return buf.Bytes(), nil
}

func (p *UserProfile) Username() string {
	n := int(p.UsernameLen)
	if n > MaxUsernameLen {
		return ""
	}
	return string(p.UsernameRaw[:n])
}

func (p *UserProfile) Bio() string {
	n := int(p.BioLen)
	if n > MaxBioLen {
		return ""
	}
	return string(p.BioRaw[:n])
}

// SetProfile overwrites username and bio. Length validation happens in the
// instruction handler before this is called.
func (p *UserProfile) SetProfile(username, bio []byte) {
	p.UsernameLen = uint8(len(username))
	p.BioLen = uint8(len(bio))
	p.UsernameRaw = [MaxUsernameLen]byte{}
	copy(p.UsernameRaw[:], username)
	p.BioRaw = [MaxBioLen]byte{}
	copy(p.BioRaw[:], bio)
}
