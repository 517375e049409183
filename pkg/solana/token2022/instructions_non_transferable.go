package token2022

import (
	"github.com/code-payments/token-extensions/pkg/solana/binary"
	"github.com/code-payments/token-extensions/pkg/solana/cpi"
)

type InitializeNonTransferableMintInstructionArgs struct{}

func (a *InitializeNonTransferableMintInstructionArgs) Instruction() Instruction {
	return InstructionInitializeNonTransferableMint
}

func (a *InitializeNonTransferableMintInstructionArgs) Encode() ([]byte, error) {
	return newInstructionEncoder(1, InstructionInitializeNonTransferableMint).Bytes()
}

func (a *InitializeNonTransferableMintInstructionArgs) unmarshal(_ *binary.Decoder) error {
	return nil
}

// NewInitializeNonTransferableMintInstruction makes tokens of an
// uninitialized mint non-transferable.
//
// Accounts:
//  0. [writable] mint
func NewInitializeNonTransferableMintInstruction(accounts *MintInstructionAccounts) (*cpi.Call, error) {
	return newMintCall(accounts, &InitializeNonTransferableMintInstructionArgs{})
}
