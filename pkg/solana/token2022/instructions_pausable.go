package token2022

import (
	"crypto/ed25519"

	"github.com/code-payments/token-extensions/pkg/solana/binary"
	"github.com/code-payments/token-extensions/pkg/solana/cpi"
)

const (
	InitializePausableConfigInstructionArgsSize = (2 + // discriminators
		32) // authority
)

func newPausableInstructionData(sub PausableInstruction) (InstructionData, bool) {
	switch sub {
	case PausableInstructionInitialize:
		return &InitializePausableConfigInstructionArgs{}, true
	case PausableInstructionPause:
		return &PauseInstructionArgs{}, true
	case PausableInstructionResume:
		return &ResumeInstructionArgs{}, true
	default:
		return nil, false
	}
}

type InitializePausableConfigInstructionArgs struct {
	Authority ed25519.PublicKey
}

func (a *InitializePausableConfigInstructionArgs) Instruction() Instruction {
	return InstructionPausableExtension
}

func (a *InitializePausableConfigInstructionArgs) Encode() ([]byte, error) {
	e := newInstructionEncoder(
		InitializePausableConfigInstructionArgsSize,
		InstructionPausableExtension,
		uint8(PausableInstructionInitialize),
	)
	e.PutKey(a.Authority)
	return e.Bytes()
}

func (a *InitializePausableConfigInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	a.Authority, err = d.GetKey()
	return err
}

// NewInitializePausableConfigInstruction initializes the pausable extension
// on an uninitialized mint.
//
// Accounts:
//  0. [writable] mint
func NewInitializePausableConfigInstruction(
	accounts *MintInstructionAccounts,
	args *InitializePausableConfigInstructionArgs,
) (*cpi.Call, error) {
	return newMintCall(accounts, args)
}

type PauseInstructionArgs struct{}

func (a *PauseInstructionArgs) Instruction() Instruction {
	return InstructionPausableExtension
}

func (a *PauseInstructionArgs) Encode() ([]byte, error) {
	return newInstructionEncoder(2, InstructionPausableExtension, uint8(PausableInstructionPause)).Bytes()
}

func (a *PauseInstructionArgs) unmarshal(_ *binary.Decoder) error {
	return nil
}

// NewPauseInstruction pauses minting, burning, and transferring for the
// mint.
//
// Accounts:
//  0. [writable] mint
//  1. [signer] pause authority, or [] multisig authority followed by its signers
func NewPauseInstruction(accounts *MintAuthorityInstructionAccounts) (*cpi.Call, error) {
	return newMintAuthorityCall(accounts, &PauseInstructionArgs{})
}

type ResumeInstructionArgs struct{}

func (a *ResumeInstructionArgs) Instruction() Instruction {
	return InstructionPausableExtension
}

func (a *ResumeInstructionArgs) Encode() ([]byte, error) {
	return newInstructionEncoder(2, InstructionPausableExtension, uint8(PausableInstructionResume)).Bytes()
}

func (a *ResumeInstructionArgs) unmarshal(_ *binary.Decoder) error {
	return nil
}

// NewResumeInstruction resumes a paused mint.
//
// Accounts:
//  0. [writable] mint
//  1. [signer] pause authority, or [] multisig authority followed by its signers
func NewResumeInstruction(accounts *MintAuthorityInstructionAccounts) (*cpi.Call, error) {
	return newMintAuthorityCall(accounts, &ResumeInstructionArgs{})
}
