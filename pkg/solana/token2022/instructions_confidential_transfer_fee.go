package token2022

import (
	"crypto/ed25519"

	"github.com/code-payments/token-extensions/pkg/solana/binary"
	"github.com/code-payments/token-extensions/pkg/solana/cpi"
)

const (
	InitializeConfidentialTransferFeeConfigInstructionArgsSize = (2 + // discriminators
		32 + // authority
		32) // withdraw_withheld_authority_elgamal_pubkey
)

func newConfidentialTransferFeeInstructionData(sub ConfidentialTransferFeeInstruction) (InstructionData, bool) {
	switch sub {
	case ConfidentialTransferFeeInstructionInitializeConfig:
		return &InitializeConfidentialTransferFeeConfigInstructionArgs{}, true
	default:
		return nil, false
	}
}

type InitializeConfidentialTransferFeeConfigInstructionArgs struct {
	Authority                              ed25519.PublicKey
	WithdrawWithheldAuthorityElGamalPubkey [32]byte
}

func (a *InitializeConfidentialTransferFeeConfigInstructionArgs) Instruction() Instruction {
	return InstructionConfidentialTransferFeeExtension
}

func (a *InitializeConfidentialTransferFeeConfigInstructionArgs) Encode() ([]byte, error) {
	e := newInstructionEncoder(
		InitializeConfidentialTransferFeeConfigInstructionArgsSize,
		InstructionConfidentialTransferFeeExtension,
		uint8(ConfidentialTransferFeeInstructionInitializeConfig),
	)
	e.PutOptionalKey(a.Authority, binary.ZeroFill)
	e.PutBytes(a.WithdrawWithheldAuthorityElGamalPubkey[:])
	return e.Bytes()
}

func (a *InitializeConfidentialTransferFeeConfigInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if a.Authority, err = d.GetOptionalKey(binary.ZeroFill); err != nil {
		return err
	}

	pubkey, err := d.GetBytes(len(a.WithdrawWithheldAuthorityElGamalPubkey))
	if err != nil {
		return err
	}
	copy(a.WithdrawWithheldAuthorityElGamalPubkey[:], pubkey)
	return nil
}

// NewInitializeConfidentialTransferFeeConfigInstruction initializes the
// confidential transfer fee extension on an uninitialized mint.
//
// Accounts:
//  0. [writable] mint
func NewInitializeConfidentialTransferFeeConfigInstruction(
	accounts *MintInstructionAccounts,
	args *InitializeConfidentialTransferFeeConfigInstructionArgs,
) (*cpi.Call, error) {
	return newMintCall(accounts, args)
}
