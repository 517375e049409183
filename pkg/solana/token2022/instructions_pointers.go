package token2022

import (
	"crypto/ed25519"

	"github.com/code-payments/token-extensions/pkg/solana/binary"
	"github.com/code-payments/token-extensions/pkg/solana/cpi"
)

// The metadata, group, and group member pointer extensions share one
// instruction layout. Both addresses are zero-fill optional keys.
const (
	InitializePointerInstructionArgsSize = (2 + // discriminators
		32 + // authority
		32) // address

	UpdatePointerInstructionArgsSize = (2 + // discriminators
		32) // address
)

func encodeInitializePointer(ix Instruction, authority, address ed25519.PublicKey) ([]byte, error) {
	e := newInstructionEncoder(InitializePointerInstructionArgsSize, ix, uint8(PointerInstructionInitialize))
	e.PutOptionalKey(authority, binary.ZeroFill)
	e.PutOptionalKey(address, binary.ZeroFill)
	return e.Bytes()
}

func decodeInitializePointer(d *binary.Decoder) (authority, address ed25519.PublicKey, err error) {
	if authority, err = d.GetOptionalKey(binary.ZeroFill); err != nil {
		return nil, nil, err
	}
	if address, err = d.GetOptionalKey(binary.ZeroFill); err != nil {
		return nil, nil, err
	}
	return authority, address, nil
}

func encodeUpdatePointer(ix Instruction, address ed25519.PublicKey) ([]byte, error) {
	e := newInstructionEncoder(UpdatePointerInstructionArgsSize, ix, uint8(PointerInstructionUpdate))
	e.PutOptionalKey(address, binary.ZeroFill)
	return e.Bytes()
}

func newMetadataPointerInstructionData(sub PointerInstruction) (InstructionData, bool) {
	switch sub {
	case PointerInstructionInitialize:
		return &InitializeMetadataPointerInstructionArgs{}, true
	case PointerInstructionUpdate:
		return &UpdateMetadataPointerInstructionArgs{}, true
	default:
		return nil, false
	}
}

type InitializeMetadataPointerInstructionArgs struct {
	Authority       ed25519.PublicKey
	MetadataAddress ed25519.PublicKey
}

func (a *InitializeMetadataPointerInstructionArgs) Instruction() Instruction {
	return InstructionMetadataPointerExtension
}

func (a *InitializeMetadataPointerInstructionArgs) Encode() ([]byte, error) {
	return encodeInitializePointer(a.Instruction(), a.Authority, a.MetadataAddress)
}

func (a *InitializeMetadataPointerInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	a.Authority, a.MetadataAddress, err = decodeInitializePointer(d)
	return err
}

// NewInitializeMetadataPointerInstruction initializes the metadata pointer
// extension on an uninitialized mint.
//
// Accounts:
//  0. [writable] mint
func NewInitializeMetadataPointerInstruction(
	accounts *MintInstructionAccounts,
	args *InitializeMetadataPointerInstructionArgs,
) (*cpi.Call, error) {
	return newMintCall(accounts, args)
}

type UpdateMetadataPointerInstructionArgs struct {
	MetadataAddress ed25519.PublicKey
}

func (a *UpdateMetadataPointerInstructionArgs) Instruction() Instruction {
	return InstructionMetadataPointerExtension
}

func (a *UpdateMetadataPointerInstructionArgs) Encode() ([]byte, error) {
	return encodeUpdatePointer(a.Instruction(), a.MetadataAddress)
}

func (a *UpdateMetadataPointerInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	a.MetadataAddress, err = d.GetOptionalKey(binary.ZeroFill)
	return err
}

// NewUpdateMetadataPointerInstruction points the mint at a new metadata
// address. A nil address clears the pointer.
//
// Accounts:
//  0. [writable] mint
//  1. [signer] pointer authority, or [] multisig authority followed by its signers
func NewUpdateMetadataPointerInstruction(
	accounts *MintAuthorityInstructionAccounts,
	args *UpdateMetadataPointerInstructionArgs,
) (*cpi.Call, error) {
	return newMintAuthorityCall(accounts, args)
}

func newGroupPointerInstructionData(sub PointerInstruction) (InstructionData, bool) {
	switch sub {
	case PointerInstructionInitialize:
		return &InitializeGroupPointerInstructionArgs{}, true
	case PointerInstructionUpdate:
		return &UpdateGroupPointerInstructionArgs{}, true
	default:
		return nil, false
	}
}

type InitializeGroupPointerInstructionArgs struct {
	Authority    ed25519.PublicKey
	GroupAddress ed25519.PublicKey
}

func (a *InitializeGroupPointerInstructionArgs) Instruction() Instruction {
	return InstructionGroupPointerExtension
}

func (a *InitializeGroupPointerInstructionArgs) Encode() ([]byte, error) {
	return encodeInitializePointer(a.Instruction(), a.Authority, a.GroupAddress)
}

func (a *InitializeGroupPointerInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	a.Authority, a.GroupAddress, err = decodeInitializePointer(d)
	return err
}

// NewInitializeGroupPointerInstruction initializes the group pointer
// extension on an uninitialized mint.
//
// Accounts:
//  0. [writable] mint
func NewInitializeGroupPointerInstruction(
	accounts *MintInstructionAccounts,
	args *InitializeGroupPointerInstructionArgs,
) (*cpi.Call, error) {
	return newMintCall(accounts, args)
}

type UpdateGroupPointerInstructionArgs struct {
	GroupAddress ed25519.PublicKey
}

func (a *UpdateGroupPointerInstructionArgs) Instruction() Instruction {
	return InstructionGroupPointerExtension
}

func (a *UpdateGroupPointerInstructionArgs) Encode() ([]byte, error) {
	return encodeUpdatePointer(a.Instruction(), a.GroupAddress)
}

func (a *UpdateGroupPointerInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	a.GroupAddress, err = d.GetOptionalKey(binary.ZeroFill)
	return err
}

// NewUpdateGroupPointerInstruction points the mint at a new group address.
//
// Accounts:
//  0. [writable] mint
//  1. [signer] pointer authority, or [] multisig authority followed by its signers
func NewUpdateGroupPointerInstruction(
	accounts *MintAuthorityInstructionAccounts,
	args *UpdateGroupPointerInstructionArgs,
) (*cpi.Call, error) {
	return newMintAuthorityCall(accounts, args)
}

func newGroupMemberPointerInstructionData(sub PointerInstruction) (InstructionData, bool) {
	switch sub {
	case PointerInstructionInitialize:
		return &InitializeGroupMemberPointerInstructionArgs{}, true
	case PointerInstructionUpdate:
		return &UpdateGroupMemberPointerInstructionArgs{}, true
	default:
		return nil, false
	}
}

type InitializeGroupMemberPointerInstructionArgs struct {
	Authority     ed25519.PublicKey
	MemberAddress ed25519.PublicKey
}

func (a *InitializeGroupMemberPointerInstructionArgs) Instruction() Instruction {
	return InstructionGroupMemberPointerExtension
}

func (a *InitializeGroupMemberPointerInstructionArgs) Encode() ([]byte, error) {
	return encodeInitializePointer(a.Instruction(), a.Authority, a.MemberAddress)
}

func (a *InitializeGroupMemberPointerInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	a.Authority, a.MemberAddress, err = decodeInitializePointer(d)
	return err
}

// NewInitializeGroupMemberPointerInstruction initializes the group member
// pointer extension on an uninitialized mint.
//
// Accounts:
//  0. [writable] mint
func NewInitializeGroupMemberPointerInstruction(
	accounts *MintInstructionAccounts,
	args *InitializeGroupMemberPointerInstructionArgs,
) (*cpi.Call, error) {
	return newMintCall(accounts, args)
}

type UpdateGroupMemberPointerInstructionArgs struct {
	MemberAddress ed25519.PublicKey
}

func (a *UpdateGroupMemberPointerInstructionArgs) Instruction() Instruction {
	return InstructionGroupMemberPointerExtension
}

func (a *UpdateGroupMemberPointerInstructionArgs) Encode() ([]byte, error) {
	return encodeUpdatePointer(a.Instruction(), a.MemberAddress)
}

func (a *UpdateGroupMemberPointerInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	a.MemberAddress, err = d.GetOptionalKey(binary.ZeroFill)
	return err
}

// NewUpdateGroupMemberPointerInstruction points the mint at a new group
// member address.
//
// Accounts:
//  0. [writable] mint
//  1. [signer] pointer authority, or [] multisig authority followed by its signers
func NewUpdateGroupMemberPointerInstruction(
	accounts *MintAuthorityInstructionAccounts,
	args *UpdateGroupMemberPointerInstructionArgs,
) (*cpi.Call, error) {
	return newMintAuthorityCall(accounts, args)
}
