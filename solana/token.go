package solana

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/token"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/tidwall/gjson"
)

// Token represents a Solana token with mint information and owner
type Token struct {
	token.Mint
	// Owner account of the token
	Owner solana.PublicKey
}

// TokenLayout provides methods for decoding token data
type TokenLayout struct {
}

func (l *TokenLayout) Decode(data []byte) (*Token, error) {
	mint := token.Mint{}

	if err := mint.Decode(data); err != nil {
		return nil, err
	}
	return &Token{Mint: mint}, nil
}

// GetToken fetches and decodes a mint account.
func GetToken(ctx context.Context, rpcClient *rpc.Client, mint solana.PublicKey) (*Token, error) {
	out, err := GetAccountInfo(ctx, rpcClient, mint)
	if err != nil {
		return nil, fmt.Errorf("failed to get mint %s: %w", mint, err)
	}

	t, err := new(TokenLayout).Decode(out.Value.Data.GetBinary())
	if err != nil {
		return nil, err
	}
	t.Owner = out.Value.Owner
	return t, nil
}

// GetMintBalance returns the wallet's balance of one mint, summed over its
// token accounts.
func GetMintBalance(ctx context.Context, rpcClient *rpc.Client, wallet, mint solana.PublicKey) (uint64, error) {
	resp, err := rpcClient.GetTokenAccountsByOwner(ctx, wallet, &rpc.GetTokenAccountsConfig{
		Mint: &mint,
	}, &rpc.GetTokenAccountsOpts{
		Encoding:   solana.EncodingJSONParsed,
		Commitment: rpc.CommitmentFinalized,
	})
	if err != nil {
		return 0, err
	}

	var balance uint64
	for _, v := range resp.Value {
		balance += gjson.GetBytes(v.Account.Data.GetRawJSON(), "parsed.info.tokenAmount.amount").Uint()
	}
	return balance, nil
}
