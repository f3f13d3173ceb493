package bonding_curve

import (
	"fmt"

	"github.com/krazyTry/xtoken-go/bonding_curve/helpers"
	"github.com/krazyTry/xtoken-go/bonding_curve/shared"
)

type updateProfileAccounts struct {
	UserProfile *Account
	User        *Account
}

func updateProfileAccountsFrom(accounts []*Account) (*updateProfileAccounts, error) {
	if err := expectAccounts(accounts, 3); err != nil {
		return nil, err
	}
	return &updateProfileAccounts{
		UserProfile: accounts[0],
		User:        accounts[1],
	}, nil
}

// updateProfile creates or overwrites the signer's profile record. Both
// fields are replaced on every call, there is no partial update.
func (p *Processor) updateProfile(accounts []*Account, payload []byte) ([]Effect, error) {
	params, err := decodeUpdateProfileParams(payload)
	if err != nil {
		return nil, err
	}

	if params.UsernameLen == 0 || int(params.UsernameLen) > shared.MaxUsernameLen {
		return nil, fmt.Errorf("%w: username length %d out of range [1, %d]", ErrInvalidInstructionData, params.UsernameLen, shared.MaxUsernameLen)
	}
	if int(params.BioLen) > shared.MaxBioLen {
		return nil, fmt.Errorf("%w: bio length %d exceeds %d", ErrInvalidInstructionData, params.BioLen, shared.MaxBioLen)
	}

	acc, err := updateProfileAccountsFrom(accounts)
	if err != nil {
		return nil, err
	}
	if err = validateSigner(acc.User); err != nil {
		return nil, err
	}
	if err = validateWritable(acc.UserProfile); err != nil {
		return nil, err
	}

	profileAddress, _ := helpers.DeriveUserProfileAddress(acc.User.Key)
	if err = validateAddress(acc.UserProfile, profileAddress); err != nil {
		return nil, err
	}

	var effects []Effect
	profile := &shared.UserProfile{}
	if acc.UserProfile.DataIsEmpty() {
		effects = append(effects, &CreateAccount{
			Funder:     acc.User.Key,
			NewAccount: profileAddress,
			Owner:      helpers.ProgramID,
			Space:      shared.UserProfileSize,
		})
	} else {
		if err = validateProgramOwned(acc.UserProfile); err != nil {
			return nil, err
		}
		if err = profile.Unmarshal(acc.UserProfile.Data); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAccountData, err)
		}
		if !profile.Owner.Equals(acc.User.Key) {
			return nil, fmt.Errorf("%w: profile owned by %s", ErrInvalidAccountData, profile.Owner)
		}
	}

	profile.Owner = acc.User.Key
	profile.SetProfile(params.Username[:params.UsernameLen], params.Bio[:params.BioLen])

	data, err := profile.Marshal()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAccountData, err)
	}
	acc.UserProfile.Data = data
	acc.UserProfile.Owner = helpers.ProgramID

	return effects, nil
}
