package token2022

import (
	"github.com/code-payments/token-extensions/pkg/solana/binary"
	"github.com/code-payments/token-extensions/pkg/solana/cpi"
)

func newMemoTransferInstructionData(sub RequiredMemoTransfersInstruction) (InstructionData, bool) {
	switch sub {
	case RequiredMemoTransfersInstructionEnable:
		return &EnableRequiredMemoTransfersInstructionArgs{}, true
	case RequiredMemoTransfersInstructionDisable:
		return &DisableRequiredMemoTransfersInstructionArgs{}, true
	default:
		return nil, false
	}
}

type EnableRequiredMemoTransfersInstructionArgs struct{}

func (a *EnableRequiredMemoTransfersInstructionArgs) Instruction() Instruction {
	return InstructionMemoTransferExtension
}

func (a *EnableRequiredMemoTransfersInstructionArgs) Encode() ([]byte, error) {
	return newInstructionEncoder(2, InstructionMemoTransferExtension, uint8(RequiredMemoTransfersInstructionEnable)).Bytes()
}

func (a *EnableRequiredMemoTransfersInstructionArgs) unmarshal(_ *binary.Decoder) error {
	return nil
}

// NewEnableRequiredMemoTransfersInstruction requires memos on incoming
// transfers to the token account.
//
// Accounts:
//  0. [writable] account
//  1. [signer] owner, or [] multisig owner followed by its signers
func NewEnableRequiredMemoTransfersInstruction(accounts *OwnerInstructionAccounts) (*cpi.Call, error) {
	return newOwnerCall(accounts, &EnableRequiredMemoTransfersInstructionArgs{})
}

type DisableRequiredMemoTransfersInstructionArgs struct{}

func (a *DisableRequiredMemoTransfersInstructionArgs) Instruction() Instruction {
	return InstructionMemoTransferExtension
}

func (a *DisableRequiredMemoTransfersInstructionArgs) Encode() ([]byte, error) {
	return newInstructionEncoder(2, InstructionMemoTransferExtension, uint8(RequiredMemoTransfersInstructionDisable)).Bytes()
}

func (a *DisableRequiredMemoTransfersInstructionArgs) unmarshal(_ *binary.Decoder) error {
	return nil
}

// NewDisableRequiredMemoTransfersInstruction stops requiring memos on
// incoming transfers.
//
// Accounts:
//  0. [writable] account
//  1. [signer] owner, or [] multisig owner followed by its signers
func NewDisableRequiredMemoTransfersInstruction(accounts *OwnerInstructionAccounts) (*cpi.Call, error) {
	return newOwnerCall(accounts, &DisableRequiredMemoTransfersInstructionArgs{})
}
