package solana

import (
	bin "encoding/binary"

	binary "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	associatedtokenaccount "github.com/gagliardetto/solana-go/programs/associated-token-account"
	"github.com/gagliardetto/solana-go/programs/system"
)

var (
	ataInstructionTypeID      = binary.NoTypeIDDefaultID
	transferInstructionTypeID = binary.TypeIDFromUint32(system.Instruction_Transfer, bin.LittleEndian)
)

// MergeInstructions deduplicates a composed instruction list. Repeated ATA
// creates for the same wallet and mint are dropped, and system transfers with
// the same funding and recipient accounts are folded into one.
func MergeInstructions(oldInstructions []solana.Instruction) []solana.Instruction {
	var (
		ataCreateInstructions []*associatedtokenaccount.Create
		transferInstructions  []*system.Transfer

		newInstructions []solana.Instruction
	)

	for _, v := range oldInstructions {
		switch inst := v.(type) {
		case *associatedtokenaccount.Instruction:
			if inst.TypeID != ataInstructionTypeID {
				newInstructions = append(newInstructions, v)
				break
			}

			ataCreate, ok := inst.Impl.(associatedtokenaccount.Create)
			if !ok {
				newInstructions = append(newInstructions, v)
				break
			}

			// deduplicate
			bSave := false
			for _, instruction := range ataCreateInstructions {
				if ataCreate.Mint != instruction.Mint ||
					ataCreate.Payer != instruction.Payer ||
					ataCreate.Wallet != instruction.Wallet {
					continue
				}

				bSave = true
				break
			}

			if !bSave {
				ataCreateInstructions = append(ataCreateInstructions, &ataCreate)
				newInstructions = append(newInstructions, v)
			}
		case *system.Instruction:
			if inst.TypeID != transferInstructionTypeID {
				newInstructions = append(newInstructions, v)
				break
			}

			transfer, ok := inst.Impl.(system.Transfer)
			if !ok {
				newInstructions = append(newInstructions, v)
				break
			}

			bSave := false
			for _, instruction := range transferInstructions {
				if transfer.GetFundingAccount().PublicKey != instruction.GetFundingAccount().PublicKey ||
					transfer.GetRecipientAccount().PublicKey != instruction.GetRecipientAccount().PublicKey {
					continue
				}

				bSave = true
				// add lamports to first
				*instruction.Lamports += *transfer.Lamports
				break
			}
			if !bSave {
				transferInstructions = append(transferInstructions, &transfer)
				newInstructions = append(newInstructions, v)
			}
		default:
			newInstructions = append(newInstructions, v)
		}
	}

	return newInstructions
}
