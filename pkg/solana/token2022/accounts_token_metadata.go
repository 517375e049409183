package token2022

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/code-payments/token-extensions/pkg/solana"
	"github.com/code-payments/token-extensions/pkg/solana/binary"
)

// TokenMetadata is the variable length metadata stored in the mint when the
// mint is its own metadata account.
type TokenMetadata struct {
	UpdateAuthority    ed25519.PublicKey
	Mint               ed25519.PublicKey
	Name               string
	Symbol             string
	URI                string
	AdditionalMetadata [][2]string
}

func (m *TokenMetadata) ExtensionType() ExtensionType {
	return ExtensionTypeTokenMetadata
}

func (m *TokenMetadata) Unmarshal(data []byte) error {
	d, err := newExtensionDecoder(m.ExtensionType(), data)
	if err != nil {
		return err
	}

	if m.UpdateAuthority, err = d.GetOptionalKey(binary.ZeroFill); err != nil {
		return invalidExtension(m.ExtensionType(), err)
	}
	if m.Mint, err = d.GetKey(); err != nil {
		return invalidExtension(m.ExtensionType(), err)
	}
	if m.Name, err = getBorshString(d); err != nil {
		return invalidExtension(m.ExtensionType(), err)
	}
	if m.Symbol, err = getBorshString(d); err != nil {
		return invalidExtension(m.ExtensionType(), err)
	}
	if m.URI, err = getBorshString(d); err != nil {
		return invalidExtension(m.ExtensionType(), err)
	}

	count, err := d.GetUint32()
	if err != nil {
		return invalidExtension(m.ExtensionType(), err)
	}

	// Each pair needs at least two length prefixes.
	if int64(count)*8 > int64(d.Remaining()) {
		return invalidExtension(m.ExtensionType(), errors.Errorf("%d metadata pairs exceed remaining %d bytes", count, d.Remaining()))
	}

	m.AdditionalMetadata = make([][2]string, 0, count)
	for i := uint32(0); i < count; i++ {
		var pair [2]string
		if pair[0], err = getBorshString(d); err != nil {
			return invalidExtension(m.ExtensionType(), err)
		}
		if pair[1], err = getBorshString(d); err != nil {
			return invalidExtension(m.ExtensionType(), err)
		}
		m.AdditionalMetadata = append(m.AdditionalMetadata, pair)
	}

	if err := d.Finish(); err != nil {
		return invalidExtension(m.ExtensionType(), err)
	}
	return nil
}

// Get returns the value of an additional metadata key.
func (m *TokenMetadata) Get(key string) (string, bool) {
	for _, pair := range m.AdditionalMetadata {
		if pair[0] == key {
			return pair[1], true
		}
	}
	return "", false
}

func TokenMetadataFromAccount(info *solana.AccountInfo) (*TokenMetadata, error) {
	return ExtensionFromAccount[TokenMetadata](info)
}

type TokenGroup struct {
	UpdateAuthority ed25519.PublicKey
	Mint            ed25519.PublicKey
	Size            uint64
	MaxSize         uint64
}

func (g *TokenGroup) ExtensionType() ExtensionType {
	return ExtensionTypeTokenGroup
}

func (g *TokenGroup) Unmarshal(data []byte) error {
	d, err := newExtensionDecoder(g.ExtensionType(), data)
	if err != nil {
		return err
	}

	if g.UpdateAuthority, err = d.GetOptionalKey(binary.ZeroFill); err != nil {
		return invalidExtension(g.ExtensionType(), err)
	}
	if g.Mint, err = d.GetKey(); err != nil {
		return invalidExtension(g.ExtensionType(), err)
	}
	if g.Size, err = d.GetUint64(); err != nil {
		return invalidExtension(g.ExtensionType(), err)
	}
	if g.MaxSize, err = d.GetUint64(); err != nil {
		return invalidExtension(g.ExtensionType(), err)
	}
	return nil
}

func TokenGroupFromAccount(info *solana.AccountInfo) (*TokenGroup, error) {
	return ExtensionFromAccount[TokenGroup](info)
}

type TokenGroupMember struct {
	Mint         ed25519.PublicKey
	Group        ed25519.PublicKey
	MemberNumber uint64
}

func (m *TokenGroupMember) ExtensionType() ExtensionType {
	return ExtensionTypeTokenGroupMember
}

func (m *TokenGroupMember) Unmarshal(data []byte) error {
	d, err := newExtensionDecoder(m.ExtensionType(), data)
	if err != nil {
		return err
	}

	if m.Mint, err = d.GetKey(); err != nil {
		return invalidExtension(m.ExtensionType(), err)
	}
	if m.Group, err = d.GetKey(); err != nil {
		return invalidExtension(m.ExtensionType(), err)
	}
	if m.MemberNumber, err = d.GetUint64(); err != nil {
		return invalidExtension(m.ExtensionType(), err)
	}
	return nil
}

func TokenGroupMemberFromAccount(info *solana.AccountInfo) (*TokenGroupMember, error) {
	return ExtensionFromAccount[TokenGroupMember](info)
}
