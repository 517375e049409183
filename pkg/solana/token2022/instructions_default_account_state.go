package token2022

import (
	"github.com/pkg/errors"

	"github.com/code-payments/token-extensions/pkg/solana/binary"
	"github.com/code-payments/token-extensions/pkg/solana/cpi"
)

const (
	DefaultAccountStateInstructionArgsSize = (2 + // discriminators
		1) // state
)

func newDefaultAccountStateInstructionData(sub DefaultAccountStateInstruction) (InstructionData, bool) {
	switch sub {
	case DefaultAccountStateInstructionInitialize:
		return &InitializeDefaultAccountStateInstructionArgs{}, true
	case DefaultAccountStateInstructionUpdate:
		return &UpdateDefaultAccountStateInstructionArgs{}, true
	default:
		return nil, false
	}
}

func encodeDefaultAccountState(sub DefaultAccountStateInstruction, state AccountState) ([]byte, error) {
	if state > AccountStateFrozen {
		return nil, errors.Wrapf(ErrInvalidAccountState, "state %d", state)
	}

	e := newInstructionEncoder(DefaultAccountStateInstructionArgsSize, InstructionDefaultAccountStateExtension, uint8(sub))
	e.PutUint8(uint8(state))
	return e.Bytes()
}

func decodeAccountState(d *binary.Decoder) (AccountState, error) {
	v, err := d.GetUint8()
	if err != nil {
		return 0, err
	}

	if AccountState(v) > AccountStateFrozen {
		return 0, errors.Wrapf(ErrInvalidAccountState, "state %d", v)
	}
	return AccountState(v), nil
}

type InitializeDefaultAccountStateInstructionArgs struct {
	State AccountState
}

func (a *InitializeDefaultAccountStateInstructionArgs) Instruction() Instruction {
	return InstructionDefaultAccountStateExtension
}

func (a *InitializeDefaultAccountStateInstructionArgs) Encode() ([]byte, error) {
	return encodeDefaultAccountState(DefaultAccountStateInstructionInitialize, a.State)
}

func (a *InitializeDefaultAccountStateInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	a.State, err = decodeAccountState(d)
	return err
}

// NewInitializeDefaultAccountStateInstruction sets the state new token
// accounts of an uninitialized mint start in.
//
// Accounts:
//  0. [writable] mint
func NewInitializeDefaultAccountStateInstruction(
	accounts *MintInstructionAccounts,
	args *InitializeDefaultAccountStateInstructionArgs,
) (*cpi.Call, error) {
	return newMintCall(accounts, args)
}

type UpdateDefaultAccountStateInstructionArgs struct {
	State AccountState
}

func (a *UpdateDefaultAccountStateInstructionArgs) Instruction() Instruction {
	return InstructionDefaultAccountStateExtension
}

func (a *UpdateDefaultAccountStateInstructionArgs) Encode() ([]byte, error) {
	return encodeDefaultAccountState(DefaultAccountStateInstructionUpdate, a.State)
}

func (a *UpdateDefaultAccountStateInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	a.State, err = decodeAccountState(d)
	return err
}

// NewUpdateDefaultAccountStateInstruction changes the default state of new
// token accounts. The authority is the mint's freeze authority.
//
// Accounts:
//  0. [writable] mint
//  1. [signer] freeze authority, or [] multisig authority followed by its signers
func NewUpdateDefaultAccountStateInstruction(
	accounts *MintAuthorityInstructionAccounts,
	args *UpdateDefaultAccountStateInstructionArgs,
) (*cpi.Call, error) {
	return newMintAuthorityCall(accounts, args)
}
