package token2022

import (
	"crypto/ed25519"

	"github.com/code-payments/token-extensions/pkg/solana/binary"
	"github.com/code-payments/token-extensions/pkg/solana/cpi"
)

const (
	InitializePermanentDelegateInstructionArgsSize = (1 + // discriminator
		32) // delegate
)

type InitializePermanentDelegateInstructionArgs struct {
	Delegate ed25519.PublicKey
}

func (a *InitializePermanentDelegateInstructionArgs) Instruction() Instruction {
	return InstructionInitializePermanentDelegate
}

func (a *InitializePermanentDelegateInstructionArgs) Encode() ([]byte, error) {
	e := newInstructionEncoder(InitializePermanentDelegateInstructionArgsSize, InstructionInitializePermanentDelegate)
	e.PutKey(a.Delegate)
	return e.Bytes()
}

func (a *InitializePermanentDelegateInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	a.Delegate, err = d.GetKey()
	return err
}

// NewInitializePermanentDelegateInstruction sets a delegate with unlimited
// authority over every token account of an uninitialized mint.
//
// Accounts:
//  0. [writable] mint
func NewInitializePermanentDelegateInstruction(
	accounts *MintInstructionAccounts,
	args *InitializePermanentDelegateInstructionArgs,
) (*cpi.Call, error) {
	return newMintCall(accounts, args)
}
