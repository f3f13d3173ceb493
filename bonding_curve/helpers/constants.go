package helpers

import (
	solanago "github.com/gagliardetto/solana-go"
)

var (
	// ProgramID is the x_token bonding curve program address.
	ProgramID = solanago.MustPublicKeyFromBase58("7utv7LmctA7qFDHnKKdHAXuUV2WWSG49a4QaYythRZNZ")

	// MetaplexProgramID is the token metadata program used for the optional
	// mint metadata created during Initialize.
	MetaplexProgramID = solanago.MustPublicKeyFromBase58("metaqbxxUerdq28cj1RbAWkYQm3ybzjb6a8bt518x1s")
)
