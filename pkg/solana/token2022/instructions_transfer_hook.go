package token2022

import (
	"crypto/ed25519"

	"github.com/code-payments/token-extensions/pkg/solana/binary"
	"github.com/code-payments/token-extensions/pkg/solana/cpi"
)

const (
	InitializeTransferHookInstructionArgsSize = (2 + // discriminators
		32 + // authority
		32) // program_id

	UpdateTransferHookInstructionArgsSize = (2 + // discriminators
		32) // program_id
)

func newTransferHookInstructionData(sub TransferHookInstruction) (InstructionData, bool) {
	switch sub {
	case TransferHookInstructionInitialize:
		return &InitializeTransferHookInstructionArgs{}, true
	case TransferHookInstructionUpdate:
		return &UpdateTransferHookInstructionArgs{}, true
	default:
		return nil, false
	}
}

type InitializeTransferHookInstructionArgs struct {
	Authority ed25519.PublicKey
	ProgramID ed25519.PublicKey
}

func (a *InitializeTransferHookInstructionArgs) Instruction() Instruction {
	return InstructionTransferHookExtension
}

func (a *InitializeTransferHookInstructionArgs) Encode() ([]byte, error) {
	e := newInstructionEncoder(
		InitializeTransferHookInstructionArgsSize,
		InstructionTransferHookExtension,
		uint8(TransferHookInstructionInitialize),
	)
	e.PutOptionalKey(a.Authority, binary.ZeroFill)
	e.PutOptionalKey(a.ProgramID, binary.ZeroFill)
	return e.Bytes()
}

func (a *InitializeTransferHookInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if a.Authority, err = d.GetOptionalKey(binary.ZeroFill); err != nil {
		return err
	}
	a.ProgramID, err = d.GetOptionalKey(binary.ZeroFill)
	return err
}

// NewInitializeTransferHookInstruction initializes the transfer hook
// extension on an uninitialized mint.
//
// Accounts:
//  0. [writable] mint
func NewInitializeTransferHookInstruction(
	accounts *MintInstructionAccounts,
	args *InitializeTransferHookInstructionArgs,
) (*cpi.Call, error) {
	return newMintCall(accounts, args)
}

type UpdateTransferHookInstructionArgs struct {
	ProgramID ed25519.PublicKey
}

func (a *UpdateTransferHookInstructionArgs) Instruction() Instruction {
	return InstructionTransferHookExtension
}

func (a *UpdateTransferHookInstructionArgs) Encode() ([]byte, error) {
	e := newInstructionEncoder(
		UpdateTransferHookInstructionArgsSize,
		InstructionTransferHookExtension,
		uint8(TransferHookInstructionUpdate),
	)
	e.PutOptionalKey(a.ProgramID, binary.ZeroFill)
	return e.Bytes()
}

func (a *UpdateTransferHookInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	a.ProgramID, err = d.GetOptionalKey(binary.ZeroFill)
	return err
}

// NewUpdateTransferHookInstruction sets the hook program of the mint. A nil
// program id disables the hook.
//
// Accounts:
//  0. [writable] mint
//  1. [signer] transfer hook authority, or [] multisig authority followed by its signers
func NewUpdateTransferHookInstruction(
	accounts *MintAuthorityInstructionAccounts,
	args *UpdateTransferHookInstructionArgs,
) (*cpi.Call, error) {
	return newMintAuthorityCall(accounts, args)
}
