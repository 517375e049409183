package token2022

import (
	"crypto/ed25519"

	"github.com/code-payments/token-extensions/pkg/solana/binary"
	"github.com/code-payments/token-extensions/pkg/solana/cpi"
)

const (
	InitializeScaledUiAmountInstructionArgsSize = (2 + // discriminators
		32 + // authority
		8) // multiplier

	UpdateMultiplierInstructionArgsSize = (2 + // discriminators
		8 + // multiplier
		8) // effective_timestamp
)

func newScaledUiAmountInstructionData(sub ScaledUiAmountInstruction) (InstructionData, bool) {
	switch sub {
	case ScaledUiAmountInstructionInitialize:
		return &InitializeScaledUiAmountInstructionArgs{}, true
	case ScaledUiAmountInstructionUpdateMultiplier:
		return &UpdateMultiplierInstructionArgs{}, true
	default:
		return nil, false
	}
}

type InitializeScaledUiAmountInstructionArgs struct {
	Authority  ed25519.PublicKey
	Multiplier float64
}

func (a *InitializeScaledUiAmountInstructionArgs) Instruction() Instruction {
	return InstructionScaledUiAmountExtension
}

func (a *InitializeScaledUiAmountInstructionArgs) Encode() ([]byte, error) {
	e := newInstructionEncoder(
		InitializeScaledUiAmountInstructionArgsSize,
		InstructionScaledUiAmountExtension,
		uint8(ScaledUiAmountInstructionInitialize),
	)
	e.PutOptionalKey(a.Authority, binary.ZeroFill)
	e.PutFloat64(a.Multiplier)
	return e.Bytes()
}

func (a *InitializeScaledUiAmountInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if a.Authority, err = d.GetOptionalKey(binary.ZeroFill); err != nil {
		return err
	}
	a.Multiplier, err = d.GetFloat64()
	return err
}

// NewInitializeScaledUiAmountInstruction initializes the scaled UI amount
// extension on an uninitialized mint.
//
// Accounts:
//  0. [writable] mint
func NewInitializeScaledUiAmountInstruction(
	accounts *MintInstructionAccounts,
	args *InitializeScaledUiAmountInstructionArgs,
) (*cpi.Call, error) {
	return newMintCall(accounts, args)
}

type UpdateMultiplierInstructionArgs struct {
	Multiplier float64
	// Unix seconds; a past timestamp applies the multiplier immediately
	EffectiveTimestamp int64
}

func (a *UpdateMultiplierInstructionArgs) Instruction() Instruction {
	return InstructionScaledUiAmountExtension
}

func (a *UpdateMultiplierInstructionArgs) Encode() ([]byte, error) {
	e := newInstructionEncoder(
		UpdateMultiplierInstructionArgsSize,
		InstructionScaledUiAmountExtension,
		uint8(ScaledUiAmountInstructionUpdateMultiplier),
	)
	e.PutFloat64(a.Multiplier)
	e.PutInt64(a.EffectiveTimestamp)
	return e.Bytes()
}

func (a *UpdateMultiplierInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if a.Multiplier, err = d.GetFloat64(); err != nil {
		return err
	}
	a.EffectiveTimestamp, err = d.GetInt64()
	return err
}

// NewUpdateMultiplierInstruction schedules a new UI amount multiplier.
//
// Accounts:
//  0. [writable] mint
//  1. [signer] multiplier authority, or [] multisig authority followed by its signers
func NewUpdateMultiplierInstruction(
	accounts *MintAuthorityInstructionAccounts,
	args *UpdateMultiplierInstructionArgs,
) (*cpi.Call, error) {
	return newMintAuthorityCall(accounts, args)
}
