package token2022

import (
	"crypto/ed25519"

	"github.com/code-payments/token-extensions/pkg/solana"
	"github.com/code-payments/token-extensions/pkg/solana/binary"
)

// pointer is the shared layout of the metadata, group, and group member
// pointer extensions.
type pointer struct {
	authority ed25519.PublicKey
	address   ed25519.PublicKey
}

func (p *pointer) unmarshal(t ExtensionType, data []byte) error {
	d, err := newExtensionDecoder(t, data)
	if err != nil {
		return err
	}

	if p.authority, err = d.GetOptionalKey(binary.ZeroFill); err != nil {
		return invalidExtension(t, err)
	}
	if p.address, err = d.GetOptionalKey(binary.ZeroFill); err != nil {
		return invalidExtension(t, err)
	}
	return nil
}

type MetadataPointer struct {
	Authority       ed25519.PublicKey
	MetadataAddress ed25519.PublicKey
}

func (p *MetadataPointer) ExtensionType() ExtensionType {
	return ExtensionTypeMetadataPointer
}

func (p *MetadataPointer) Unmarshal(data []byte) error {
	var raw pointer
	if err := raw.unmarshal(p.ExtensionType(), data); err != nil {
		return err
	}

	p.Authority, p.MetadataAddress = raw.authority, raw.address
	return nil
}

func MetadataPointerFromAccount(info *solana.AccountInfo) (*MetadataPointer, error) {
	return ExtensionFromAccount[MetadataPointer](info)
}

type GroupPointer struct {
	Authority    ed25519.PublicKey
	GroupAddress ed25519.PublicKey
}

func (p *GroupPointer) ExtensionType() ExtensionType {
	return ExtensionTypeGroupPointer
}

func (p *GroupPointer) Unmarshal(data []byte) error {
	var raw pointer
	if err := raw.unmarshal(p.ExtensionType(), data); err != nil {
		return err
	}

	p.Authority, p.GroupAddress = raw.authority, raw.address
	return nil
}

func GroupPointerFromAccount(info *solana.AccountInfo) (*GroupPointer, error) {
	return ExtensionFromAccount[GroupPointer](info)
}

type GroupMemberPointer struct {
	Authority     ed25519.PublicKey
	MemberAddress ed25519.PublicKey
}

func (p *GroupMemberPointer) ExtensionType() ExtensionType {
	return ExtensionTypeGroupMemberPointer
}

func (p *GroupMemberPointer) Unmarshal(data []byte) error {
	var raw pointer
	if err := raw.unmarshal(p.ExtensionType(), data); err != nil {
		return err
	}

	p.Authority, p.MemberAddress = raw.authority, raw.address
	return nil
}

func GroupMemberPointerFromAccount(info *solana.AccountInfo) (*GroupMemberPointer, error) {
	return ExtensionFromAccount[GroupMemberPointer](info)
}
