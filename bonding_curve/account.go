package bonding_curve

import (
	"fmt"

	solanago "github.com/gagliardetto/solana-go"

	"github.com/krazyTry/xtoken-go/bonding_curve/helpers"
)

// Account is the host-supplied view of one record for the duration of a
// single invocation. The host guarantees exclusive access: no two
// instructions touching the same account ever run concurrently, so the
// processor mutates Data and nothing else without locking.
type Account struct {
	Key      solanago.PublicKey
	Owner    solanago.PublicKey
	Lamports uint64
	Data     []byte
	Signer   bool
	Writable bool
}

func (a *Account) DataIsEmpty() bool {
	return len(a.Data) == 0
}

func expectAccounts(accounts []*Account, n int) error {
	if len(accounts) < n {
		return fmt.Errorf("%w: want %d, got %d", ErrNotEnoughAccounts, n, len(accounts))
	}
	return nil
}

func validateSigner(account *Account) error {
	if !account.Signer {
		return fmt.Errorf("%w: %s", ErrMissingRequiredSignature, account.Key)
	}
	return nil
}

func validateWritable(account *Account) error {
	if !account.Writable {
		return fmt.Errorf("%w: %s", ErrAccountNotWritable, account.Key)
	}
	return nil
}

func validateProgramOwned(account *Account) error {
	if !account.Owner.Equals(helpers.ProgramID) {
		return fmt.Errorf("%w: %s owned by %s", ErrInvalidAccountOwner, account.Key, account.Owner)
	}
	return nil
}

// validateAddress rejects any supplied account whose key does not match the
// address recomputed from known seeds. Callers never get to choose record
// addresses.
func validateAddress(account *Account, expected solanago.PublicKey) error {
	if !account.Key.Equals(expected) {
		return fmt.Errorf("%w: got %s, derived %s", ErrInvalidSeeds, account.Key, expected)
	}
	return nil
}
