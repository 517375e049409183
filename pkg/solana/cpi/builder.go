package cpi

import (
	"bytes"
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/code-payments/token-extensions/pkg/solana"
)

const (
	// MaxCPIAccounts is the most accounts a single cross-program call may
	// reference.
	MaxCPIAccounts = 64

	// MaxMultisigSigners is the most signers a multisig authority may have.
	MaxMultisigSigners = 11
)

// CheckAuthority validates the account counts of a call with fixed leading
// accounts, a possibly multisig authority backed by signers, and trailing
// variable-arity accounts. It returns the total account count.
func CheckAuthority(fixed int, signers []*solana.AccountInfo, trailing int) (int, error) {
	if fixed < 0 || trailing < 0 {
		return 0, errors.Wrap(solana.ErrInvalidArgument, "negative account count")
	}

	if len(signers) > MaxMultisigSigners {
		return 0, errors.Wrapf(solana.ErrInvalidArgument, "%d signers exceeds maximum of %d", len(signers), MaxMultisigSigners)
	}

	total := fixed + len(signers) + trailing
	if total > MaxCPIAccounts {
		return 0, errors.Wrapf(solana.ErrInvalidArgument, "%d accounts exceeds maximum of %d", total, MaxCPIAccounts)
	}

	return total, nil
}

// CheckArity validates that the declared count of a variable-arity operation
// matches the supplied account list.
func CheckArity(declared int, accounts []*solana.AccountInfo) error {
	if declared != len(accounts) {
		return errors.Wrapf(solana.ErrInvalidArgument, "declared %d accounts but got %d", declared, len(accounts))
	}
	return nil
}

// Builder assembles the account descriptors and account references of a
// call. Both lists grow in lock step and never exceed the capacity declared
// at construction. The first failure is sticky.
type Builder struct {
	capacity int
	metas    []solana.AccountMeta
	infos    []*solana.AccountInfo
	err      error
}

// NewBuilder returns a Builder for exactly capacity accounts.
func NewBuilder(capacity int) (*Builder, error) {
	if capacity < 0 || capacity > MaxCPIAccounts {
		return nil, errors.Wrapf(solana.ErrInvalidArgument, "capacity %d outside [0, %d]", capacity, MaxCPIAccounts)
	}

	return &Builder{
		capacity: capacity,
		metas:    make([]solana.AccountMeta, 0, capacity),
		infos:    make([]*solana.AccountInfo, 0, capacity),
	}, nil
}

// NewAuthorityBuilder runs CheckAuthority and returns a Builder sized to the
// result, so nothing is populated for a call that would be rejected.
func NewAuthorityBuilder(fixed int, signers []*solana.AccountInfo, trailing int) (*Builder, error) {
	total, err := CheckAuthority(fixed, signers, trailing)
	if err != nil {
		return nil, err
	}
	return NewBuilder(total)
}

// Add appends a descriptor and its account reference. The reference must be
// for the same address as the descriptor.
func (b *Builder) Add(meta solana.AccountMeta, info *solana.AccountInfo) *Builder {
	if b.err != nil {
		return b
	}

	switch {
	case info == nil:
		b.err = errors.Wrapf(solana.ErrNotEnoughAccountKeys, "missing account at position %d", len(b.metas))
	case !bytes.Equal(meta.PublicKey, info.Key):
		b.err = errors.Wrapf(solana.ErrInvalidArgument, "descriptor and account differ at position %d", len(b.metas))
	case len(b.metas) >= b.capacity:
		b.err = errors.Wrapf(solana.ErrInvalidArgument, "exceeded capacity of %d accounts", b.capacity)
	default:
		b.metas = append(b.metas, meta)
		b.infos = append(b.infos, info)
	}

	return b
}

func (b *Builder) AddWritable(info *solana.AccountInfo) *Builder {
	return b.Add(solana.Writable(keyOf(info)), info)
}

func (b *Builder) AddReadonly(info *solana.AccountInfo) *Builder {
	return b.Add(solana.Readonly(keyOf(info)), info)
}

func (b *Builder) AddReadonlySigner(info *solana.AccountInfo) *Builder {
	return b.Add(solana.ReadonlySigner(keyOf(info)), info)
}

// AddAuthority appends an authority. With no signers the authority signs
// directly. Otherwise the authority is a multisig account, added readonly,
// followed by each of its signers.
func (b *Builder) AddAuthority(authority *solana.AccountInfo, signers []*solana.AccountInfo) *Builder {
	if b.err != nil {
		return b
	}

	if len(signers) > MaxMultisigSigners {
		b.err = errors.Wrapf(solana.ErrInvalidArgument, "%d signers exceeds maximum of %d", len(signers), MaxMultisigSigners)
		return b
	}

	if len(signers) == 0 {
		return b.AddReadonlySigner(authority)
	}

	b.AddReadonly(authority)
	for _, signer := range signers {
		b.AddReadonlySigner(signer)
	}
	return b
}

// AddAllWritable appends each account as writable.
func (b *Builder) AddAllWritable(infos []*solana.AccountInfo) *Builder {
	for _, info := range infos {
		b.AddWritable(info)
	}
	return b
}

// Len returns the number of accounts added so far.
func (b *Builder) Len() int {
	return len(b.metas)
}

// Build returns the descriptor and reference lists. It fails if any add
// failed or if fewer accounts than declared were added.
func (b *Builder) Build() ([]solana.AccountMeta, []*solana.AccountInfo, error) {
	if b.err != nil {
		return nil, nil, b.err
	}

	if len(b.metas) != b.capacity {
		return nil, nil, errors.Wrapf(solana.ErrNotEnoughAccountKeys, "declared %d accounts but added %d", b.capacity, len(b.metas))
	}

	return b.metas, b.infos, nil
}

func keyOf(info *solana.AccountInfo) ed25519.PublicKey {
	if info == nil {
		return nil
	}
	return info.Key
}
