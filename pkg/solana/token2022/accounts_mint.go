package token2022

import (
	"crypto/ed25519"

	"github.com/code-payments/token-extensions/pkg/solana"
	"github.com/code-payments/token-extensions/pkg/solana/binary"
)

type MintCloseAuthority struct {
	CloseAuthority ed25519.PublicKey
}

func (a *MintCloseAuthority) ExtensionType() ExtensionType {
	return ExtensionTypeMintCloseAuthority
}

func (a *MintCloseAuthority) Unmarshal(data []byte) error {
	d, err := newExtensionDecoder(a.ExtensionType(), data)
	if err != nil {
		return err
	}

	if a.CloseAuthority, err = d.GetOptionalKey(binary.ZeroFill); err != nil {
		return invalidExtension(a.ExtensionType(), err)
	}
	return nil
}

func MintCloseAuthorityFromAccount(info *solana.AccountInfo) (*MintCloseAuthority, error) {
	return ExtensionFromAccount[MintCloseAuthority](info)
}

// DefaultAccountState is the state new token accounts of the mint start in.
type DefaultAccountState struct {
	State AccountState
}

func (s *DefaultAccountState) ExtensionType() ExtensionType {
	return ExtensionTypeDefaultAccountState
}

func (s *DefaultAccountState) Unmarshal(data []byte) error {
	d, err := newExtensionDecoder(s.ExtensionType(), data)
	if err != nil {
		return err
	}

	v, err := d.GetUint8()
	if err != nil {
		return invalidExtension(s.ExtensionType(), err)
	}
	if AccountState(v) > AccountStateFrozen {
		return invalidExtension(s.ExtensionType(), ErrInvalidAccountState)
	}

	s.State = AccountState(v)
	return nil
}

func DefaultAccountStateFromAccount(info *solana.AccountInfo) (*DefaultAccountState, error) {
	return ExtensionFromAccount[DefaultAccountState](info)
}

type PermanentDelegate struct {
	Delegate ed25519.PublicKey
}

func (p *PermanentDelegate) ExtensionType() ExtensionType {
	return ExtensionTypePermanentDelegate
}

func (p *PermanentDelegate) Unmarshal(data []byte) error {
	d, err := newExtensionDecoder(p.ExtensionType(), data)
	if err != nil {
		return err
	}

	if p.Delegate, err = d.GetOptionalKey(binary.ZeroFill); err != nil {
		return invalidExtension(p.ExtensionType(), err)
	}
	return nil
}

func PermanentDelegateFromAccount(info *solana.AccountInfo) (*PermanentDelegate, error) {
	return ExtensionFromAccount[PermanentDelegate](info)
}

// InterestBearingConfig tracks the interest rate history of a mint. Rates
// are in basis points; timestamps are unix seconds.
type InterestBearingConfig struct {
	RateAuthority           ed25519.PublicKey
	InitializationTimestamp int64
	PreUpdateAverageRate    int16
	LastUpdateTimestamp     int64
	CurrentRate             int16
}

func (c *InterestBearingConfig) ExtensionType() ExtensionType {
	return ExtensionTypeInterestBearingConfig
}

func (c *InterestBearingConfig) Unmarshal(data []byte) error {
	d, err := newExtensionDecoder(c.ExtensionType(), data)
	if err != nil {
		return err
	}

	if c.RateAuthority, err = d.GetOptionalKey(binary.ZeroFill); err != nil {
		return invalidExtension(c.ExtensionType(), err)
	}
	if c.InitializationTimestamp, err = d.GetInt64(); err != nil {
		return invalidExtension(c.ExtensionType(), err)
	}
	if c.PreUpdateAverageRate, err = d.GetInt16(); err != nil {
		return invalidExtension(c.ExtensionType(), err)
	}
	if c.LastUpdateTimestamp, err = d.GetInt64(); err != nil {
		return invalidExtension(c.ExtensionType(), err)
	}
	if c.CurrentRate, err = d.GetInt16(); err != nil {
		return invalidExtension(c.ExtensionType(), err)
	}
	return nil
}

func InterestBearingConfigFromAccount(info *solana.AccountInfo) (*InterestBearingConfig, error) {
	return ExtensionFromAccount[InterestBearingConfig](info)
}

type TransferHook struct {
	Authority ed25519.PublicKey
	ProgramID ed25519.PublicKey
}

func (h *TransferHook) ExtensionType() ExtensionType {
	return ExtensionTypeTransferHook
}

func (h *TransferHook) Unmarshal(data []byte) error {
	d, err := newExtensionDecoder(h.ExtensionType(), data)
	if err != nil {
		return err
	}

	if h.Authority, err = d.GetOptionalKey(binary.ZeroFill); err != nil {
		return invalidExtension(h.ExtensionType(), err)
	}
	if h.ProgramID, err = d.GetOptionalKey(binary.ZeroFill); err != nil {
		return invalidExtension(h.ExtensionType(), err)
	}
	return nil
}

func TransferHookFromAccount(info *solana.AccountInfo) (*TransferHook, error) {
	return ExtensionFromAccount[TransferHook](info)
}

// ConfidentialTransferFeeConfig holds the encrypted withheld fee state of a
// mint. The ElGamal values are opaque.
type ConfidentialTransferFeeConfig struct {
	Authority                              ed25519.PublicKey
	WithdrawWithheldAuthorityElGamalPubkey [32]byte
	HarvestToMintEnabled                   bool
	WithheldAmount                         [64]byte
}

func (c *ConfidentialTransferFeeConfig) ExtensionType() ExtensionType {
	return ExtensionTypeConfidentialTransferFeeConfig
}

func (c *ConfidentialTransferFeeConfig) Unmarshal(data []byte) error {
	d, err := newExtensionDecoder(c.ExtensionType(), data)
	if err != nil {
		return err
	}

	if c.Authority, err = d.GetOptionalKey(binary.ZeroFill); err != nil {
		return invalidExtension(c.ExtensionType(), err)
	}

	pubkey, err := d.GetBytes(len(c.WithdrawWithheldAuthorityElGamalPubkey))
	if err != nil {
		return invalidExtension(c.ExtensionType(), err)
	}
	copy(c.WithdrawWithheldAuthorityElGamalPubkey[:], pubkey)

	if c.HarvestToMintEnabled, err = d.GetBool(); err != nil {
		return invalidExtension(c.ExtensionType(), err)
	}

	withheld, err := d.GetBytes(len(c.WithheldAmount))
	if err != nil {
		return invalidExtension(c.ExtensionType(), err)
	}
	copy(c.WithheldAmount[:], withheld)
	return nil
}

func ConfidentialTransferFeeConfigFromAccount(info *solana.AccountInfo) (*ConfidentialTransferFeeConfig, error) {
	return ExtensionFromAccount[ConfidentialTransferFeeConfig](info)
}

// ScaledUiAmountConfig scales the UI amount of a mint by a multiplier that
// may be scheduled to change at a future timestamp.
type ScaledUiAmountConfig struct {
	Authority                       ed25519.PublicKey
	Multiplier                      float64
	NewMultiplierEffectiveTimestamp int64
	NewMultiplier                   float64
}

func (c *ScaledUiAmountConfig) ExtensionType() ExtensionType {
	return ExtensionTypeScaledUiAmount
}

func (c *ScaledUiAmountConfig) Unmarshal(data []byte) error {
	d, err := newExtensionDecoder(c.ExtensionType(), data)
	if err != nil {
		return err
	}

	if c.Authority, err = d.GetOptionalKey(binary.ZeroFill); err != nil {
		return invalidExtension(c.ExtensionType(), err)
	}
	if c.Multiplier, err = d.GetFloat64(); err != nil {
		return invalidExtension(c.ExtensionType(), err)
	}
	if c.NewMultiplierEffectiveTimestamp, err = d.GetInt64(); err != nil {
		return invalidExtension(c.ExtensionType(), err)
	}
	if c.NewMultiplier, err = d.GetFloat64(); err != nil {
		return invalidExtension(c.ExtensionType(), err)
	}
	return nil
}

// GetMultiplier returns the multiplier in effect at the unix timestamp.
func (c *ScaledUiAmountConfig) GetMultiplier(unixTimestamp int64) float64 {
	if unixTimestamp >= c.NewMultiplierEffectiveTimestamp {
		return c.NewMultiplier
	}
	return c.Multiplier
}

func ScaledUiAmountConfigFromAccount(info *solana.AccountInfo) (*ScaledUiAmountConfig, error) {
	return ExtensionFromAccount[ScaledUiAmountConfig](info)
}

type PausableConfig struct {
	Authority ed25519.PublicKey
	Paused    bool
}

func (c *PausableConfig) ExtensionType() ExtensionType {
	return ExtensionTypePausable
}

func (c *PausableConfig) Unmarshal(data []byte) error {
	d, err := newExtensionDecoder(c.ExtensionType(), data)
	if err != nil {
		return err
	}

	if c.Authority, err = d.GetOptionalKey(binary.ZeroFill); err != nil {
		return invalidExtension(c.ExtensionType(), err)
	}
	if c.Paused, err = d.GetBool(); err != nil {
		return invalidExtension(c.ExtensionType(), err)
	}
	return nil
}

func PausableConfigFromAccount(info *solana.AccountInfo) (*PausableConfig, error) {
	return ExtensionFromAccount[PausableConfig](info)
}
