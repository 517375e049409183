package token2022

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/code-payments/token-extensions/pkg/solana"
	"github.com/code-payments/token-extensions/pkg/solana/binary"
)

// Base state layouts are shared with the original token program.
//
// Reference: https://github.com/solana-labs/solana-program-library/blob/11b1e3eefdd4e523768d63f7c70a7aa391ea0d02/token/program/src/state.rs

// Mint is the base state of a mint, preceding any extensions.
type Mint struct {
	// Optional authority used to mint new tokens.
	MintAuthority ed25519.PublicKey
	// Total supply of tokens.
	Supply uint64
	// Number of base 10 digits to the right of the decimal place.
	Decimals uint8
	IsInitialized bool
	// Optional authority to freeze token accounts.
	FreezeAuthority ed25519.PublicKey
}

// Unmarshal decodes the base mint state from the start of data. Extended
// mints are accepted; only the first MintSize bytes are read.
func (m *Mint) Unmarshal(data []byte) error {
	if len(data) < MintSize {
		return errors.Wrapf(solana.ErrInvalidAccountData, "mint requires %d bytes, got %d", MintSize, len(data))
	}

	d := binary.NewDecoder(data[:MintSize])

	var err error
	if m.MintAuthority, err = getCOptionKey(d); err != nil {
		return errors.Wrap(err, "invalid mint authority")
	}
	if m.Supply, err = d.GetUint64(); err != nil {
		return err
	}
	if m.Decimals, err = d.GetUint8(); err != nil {
		return err
	}
	if m.IsInitialized, err = d.GetBool(); err != nil {
		return err
	}
	if m.FreezeAuthority, err = getCOptionKey(d); err != nil {
		return errors.Wrap(err, "invalid freeze authority")
	}
	return d.Finish()
}

// Account is the base state of a token account, preceding any extensions.
type Account struct {
	// The mint associated with this account
	Mint ed25519.PublicKey
	// The owner of this account.
	Owner ed25519.PublicKey
	// The amount of tokens this account holds.
	Amount uint64
	// If set, then the 'DelegatedAmount' represents the amount
	// authorized by the delegate.
	Delegate ed25519.PublicKey
	State    AccountState
	// If set, this is a native token, and the value logs the rent-exempt
	// reserve.
	IsNative *uint64
	// The amount delegated
	DelegatedAmount uint64
	// Optional authority to close the account.
	CloseAuthority ed25519.PublicKey
}

// Unmarshal decodes the base account state from the start of data. Extended
// accounts are accepted; only the first AccountSize bytes are read.
func (a *Account) Unmarshal(data []byte) error {
	if len(data) < AccountSize {
		return errors.Wrapf(solana.ErrInvalidAccountData, "account requires %d bytes, got %d", AccountSize, len(data))
	}

	d := binary.NewDecoder(data[:AccountSize])

	var err error
	if a.Mint, err = d.GetKey(); err != nil {
		return err
	}
	if a.Owner, err = d.GetKey(); err != nil {
		return err
	}
	if a.Amount, err = d.GetUint64(); err != nil {
		return err
	}
	if a.Delegate, err = getCOptionKey(d); err != nil {
		return errors.Wrap(err, "invalid delegate")
	}

	state, err := d.GetUint8()
	if err != nil {
		return err
	}
	if AccountState(state) > AccountStateFrozen {
		return errors.Wrapf(ErrInvalidAccountState, "state %d", state)
	}
	a.State = AccountState(state)

	if a.IsNative, err = getCOptionUint64(d); err != nil {
		return errors.Wrap(err, "invalid native reserve")
	}
	if a.DelegatedAmount, err = d.GetUint64(); err != nil {
		return err
	}
	if a.CloseAuthority, err = getCOptionKey(d); err != nil {
		return errors.Wrap(err, "invalid close authority")
	}
	return d.Finish()
}

// getCOptionKey reads a u32 tagged optional key. The key bytes are always
// present; they are ignored when the tag is zero.
func getCOptionKey(d *binary.Decoder) (ed25519.PublicKey, error) {
	present, err := getCOptionTag(d)
	if err != nil {
		return nil, err
	}

	key, err := d.GetKey()
	if err != nil || !present {
		return nil, err
	}
	return key, nil
}

func getCOptionUint64(d *binary.Decoder) (*uint64, error) {
	present, err := getCOptionTag(d)
	if err != nil {
		return nil, err
	}

	v, err := d.GetUint64()
	if err != nil || !present {
		return nil, err
	}
	return &v, nil
}

func getCOptionTag(d *binary.Decoder) (bool, error) {
	tag, err := d.GetUint32()
	if err != nil {
		return false, err
	}

	switch tag {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, errors.Wrapf(binary.ErrInvalidOptionFlag, "flag %d", tag)
	}
}
