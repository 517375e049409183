package token2022

import (
	"github.com/code-payments/token-extensions/pkg/solana/binary"
	"github.com/code-payments/token-extensions/pkg/solana/cpi"
)

func newCpiGuardInstructionData(sub CpiGuardInstruction) (InstructionData, bool) {
	switch sub {
	case CpiGuardInstructionEnable:
		return &EnableCpiGuardInstructionArgs{}, true
	case CpiGuardInstructionDisable:
		return &DisableCpiGuardInstructionArgs{}, true
	default:
		return nil, false
	}
}

type EnableCpiGuardInstructionArgs struct{}

func (a *EnableCpiGuardInstructionArgs) Instruction() Instruction {
	return InstructionCpiGuardExtension
}

func (a *EnableCpiGuardInstructionArgs) Encode() ([]byte, error) {
	return newInstructionEncoder(2, InstructionCpiGuardExtension, uint8(CpiGuardInstructionEnable)).Bytes()
}

func (a *EnableCpiGuardInstructionArgs) unmarshal(_ *binary.Decoder) error {
	return nil
}

// NewEnableCpiGuardInstruction locks privileged token operations on the
// account from within cross-program calls.
//
// Accounts:
//  0. [writable] account
//  1. [signer] owner, or [] multisig owner followed by its signers
func NewEnableCpiGuardInstruction(accounts *OwnerInstructionAccounts) (*cpi.Call, error) {
	return newOwnerCall(accounts, &EnableCpiGuardInstructionArgs{})
}

type DisableCpiGuardInstructionArgs struct{}

func (a *DisableCpiGuardInstructionArgs) Instruction() Instruction {
	return InstructionCpiGuardExtension
}

func (a *DisableCpiGuardInstructionArgs) Encode() ([]byte, error) {
	return newInstructionEncoder(2, InstructionCpiGuardExtension, uint8(CpiGuardInstructionDisable)).Bytes()
}

func (a *DisableCpiGuardInstructionArgs) unmarshal(_ *binary.Decoder) error {
	return nil
}

// NewDisableCpiGuardInstruction lifts the CPI guard.
//
// Accounts:
//  0. [writable] account
//  1. [signer] owner, or [] multisig owner followed by its signers
func NewDisableCpiGuardInstruction(accounts *OwnerInstructionAccounts) (*cpi.Call, error) {
	return newOwnerCall(accounts, &DisableCpiGuardInstructionArgs{})
}
