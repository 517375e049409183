package token2022

import (
	"crypto/ed25519"

	"github.com/code-payments/token-extensions/pkg/solana/binary"
	"github.com/code-payments/token-extensions/pkg/solana/cpi"
)

const (
	InitializeInterestBearingMintInstructionArgsSize = (2 + // discriminators
		32 + // rate_authority
		2) // rate

	UpdateInterestRateInstructionArgsSize = (2 + // discriminators
		2) // rate
)

func newInterestBearingMintInstructionData(sub InterestBearingMintInstruction) (InstructionData, bool) {
	switch sub {
	case InterestBearingMintInstructionInitialize:
		return &InitializeInterestBearingMintInstructionArgs{}, true
	case InterestBearingMintInstructionUpdateRate:
		return &UpdateInterestRateInstructionArgs{}, true
	default:
		return nil, false
	}
}

type InitializeInterestBearingMintInstructionArgs struct {
	RateAuthority ed25519.PublicKey
	// Basis points
	Rate int16
}

func (a *InitializeInterestBearingMintInstructionArgs) Instruction() Instruction {
	return InstructionInterestBearingMintExtension
}

func (a *InitializeInterestBearingMintInstructionArgs) Encode() ([]byte, error) {
	e := newInstructionEncoder(
		InitializeInterestBearingMintInstructionArgsSize,
		InstructionInterestBearingMintExtension,
		uint8(InterestBearingMintInstructionInitialize),
	)
	e.PutOptionalKey(a.RateAuthority, binary.ZeroFill)
	e.PutInt16(a.Rate)
	return e.Bytes()
}

func (a *InitializeInterestBearingMintInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if a.RateAuthority, err = d.GetOptionalKey(binary.ZeroFill); err != nil {
		return err
	}
	a.Rate, err = d.GetInt16()
	return err
}

// NewInitializeInterestBearingMintInstruction initializes the interest
// bearing extension on an uninitialized mint.
//
// Accounts:
//  0. [writable] mint
func NewInitializeInterestBearingMintInstruction(
	accounts *MintInstructionAccounts,
	args *InitializeInterestBearingMintInstructionArgs,
) (*cpi.Call, error) {
	return newMintCall(accounts, args)
}

type UpdateInterestRateInstructionArgs struct {
	// Basis points
	Rate int16
}

func (a *UpdateInterestRateInstructionArgs) Instruction() Instruction {
	return InstructionInterestBearingMintExtension
}

func (a *UpdateInterestRateInstructionArgs) Encode() ([]byte, error) {
	e := newInstructionEncoder(
		UpdateInterestRateInstructionArgsSize,
		InstructionInterestBearingMintExtension,
		uint8(InterestBearingMintInstructionUpdateRate),
	)
	e.PutInt16(a.Rate)
	return e.Bytes()
}

func (a *UpdateInterestRateInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	a.Rate, err = d.GetInt16()
	return err
}

// NewUpdateInterestRateInstruction sets a new interest rate.
//
// Accounts:
//  0. [writable] mint
//  1. [signer] rate authority, or [] multisig authority followed by its signers
func NewUpdateInterestRateInstruction(
	accounts *MintAuthorityInstructionAccounts,
	args *UpdateInterestRateInstructionArgs,
) (*cpi.Call, error) {
	return newMintAuthorityCall(accounts, args)
}
