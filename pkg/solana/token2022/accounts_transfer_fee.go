package token2022

import (
	"crypto/ed25519"
	"math/bits"

	"github.com/code-payments/token-extensions/pkg/solana"
	"github.com/code-payments/token-extensions/pkg/solana/binary"
)

// MaxFeeBasisPoints is one hundred percent.
const MaxFeeBasisPoints = 10_000

// TransferFee is one epoch-scheduled fee setting.
type TransferFee struct {
	// First epoch where the fee takes effect
	Epoch uint64
	// Maximum fee assessed on transfers, in token base units
	MaximumFee uint64
	// Fee assessed on transfers, in basis points of the amount
	TransferFeeBasisPoints uint16
}

// CalculateFee returns the fee for transferring amount, rounded up and
// capped at MaximumFee.
func (f TransferFee) CalculateFee(amount uint64) uint64 {
	if f.TransferFeeBasisPoints == 0 || amount == 0 {
		return 0
	}

	hi, lo := bits.Mul64(amount, uint64(f.TransferFeeBasisPoints))
	lo, carry := bits.Add64(lo, MaxFeeBasisPoints-1, 0)
	hi += carry
	if hi >= MaxFeeBasisPoints {
		return f.MaximumFee
	}

	fee, _ := bits.Div64(hi, lo, MaxFeeBasisPoints)
	if fee > f.MaximumFee {
		return f.MaximumFee
	}
	return fee
}

func (f *TransferFee) unmarshal(d *binary.Decoder) (err error) {
	if f.Epoch, err = d.GetUint64(); err != nil {
		return err
	}
	if f.MaximumFee, err = d.GetUint64(); err != nil {
		return err
	}
	f.TransferFeeBasisPoints, err = d.GetUint16()
	return err
}

// TransferFeeConfig is the mint side state of the transfer fee extension.
type TransferFeeConfig struct {
	TransferFeeConfigAuthority ed25519.PublicKey
	WithdrawWithheldAuthority  ed25519.PublicKey
	// Withheld fees harvested to the mint
	WithheldAmount   uint64
	OlderTransferFee TransferFee
	NewerTransferFee TransferFee
}

func (c *TransferFeeConfig) ExtensionType() ExtensionType {
	return ExtensionTypeTransferFeeConfig
}

func (c *TransferFeeConfig) Unmarshal(data []byte) error {
	d, err := newExtensionDecoder(c.ExtensionType(), data)
	if err != nil {
		return err
	}

	if c.TransferFeeConfigAuthority, err = d.GetOptionalKey(binary.ZeroFill); err != nil {
		return invalidExtension(c.ExtensionType(), err)
	}
	if c.WithdrawWithheldAuthority, err = d.GetOptionalKey(binary.ZeroFill); err != nil {
		return invalidExtension(c.ExtensionType(), err)
	}
	if c.WithheldAmount, err = d.GetUint64(); err != nil {
		return invalidExtension(c.ExtensionType(), err)
	}
	if err = c.OlderTransferFee.unmarshal(d); err != nil {
		return invalidExtension(c.ExtensionType(), err)
	}
	if err = c.NewerTransferFee.unmarshal(d); err != nil {
		return invalidExtension(c.ExtensionType(), err)
	}
	return nil
}

// GetEpochFee returns the fee in effect at epoch.
func (c *TransferFeeConfig) GetEpochFee(epoch uint64) TransferFee {
	if epoch >= c.NewerTransferFee.Epoch {
		return c.NewerTransferFee
	}
	return c.OlderTransferFee
}

func TransferFeeConfigFromAccount(info *solana.AccountInfo) (*TransferFeeConfig, error) {
	return ExtensionFromAccount[TransferFeeConfig](info)
}

// TransferFeeAmount is the account side state of the transfer fee extension.
type TransferFeeAmount struct {
	WithheldAmount uint64
}

func (a *TransferFeeAmount) ExtensionType() ExtensionType {
	return ExtensionTypeTransferFeeAmount
}

func (a *TransferFeeAmount) Unmarshal(data []byte) error {
	d, err := newExtensionDecoder(a.ExtensionType(), data)
	if err != nil {
		return err
	}

	if a.WithheldAmount, err = d.GetUint64(); err != nil {
		return invalidExtension(a.ExtensionType(), err)
	}
	return nil
}

func TransferFeeAmountFromAccount(info *solana.AccountInfo) (*TransferFeeAmount, error) {
	return ExtensionFromAccount[TransferFeeAmount](info)
}
