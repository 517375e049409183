package binary

import (
	"crypto/ed25519"
	"math"

	bin "github.com/gagliardetto/binary"
	"github.com/pkg/errors"
)

var (
	ErrInvalidOptionFlag = errors.New("invalid option flag")
	ErrTrailingBytes     = errors.New("trailing bytes")
)

// Decoder is the read-side counterpart of Encoder. All reads are bounds
// checked by the underlying bin.Decoder.
type Decoder struct {
	dec *bin.Decoder
}

func NewDecoder(data []byte) *Decoder {
	return &Decoder{
		dec: bin.NewBinDecoder(data),
	}
}

func (d *Decoder) GetUint8() (uint8, error) {
	v, err := d.dec.ReadByte()
	if err != nil {
		return 0, errors.Wrap(err, "failed to read uint8")
	}
	return v, nil
}

func (d *Decoder) GetBool() (bool, error) {
	v, err := d.GetUint8()
	if err != nil {
		return false, err
	}

	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, errors.Errorf("invalid bool value %d", v)
	}
}

func (d *Decoder) GetUint16() (uint16, error) {
	v, err := d.dec.ReadUint16(bin.LE)
	if err != nil {
		return 0, errors.Wrap(err, "failed to read uint16")
	}
	return v, nil
}

func (d *Decoder) GetInt16() (int16, error) {
	v, err := d.GetUint16()
	return int16(v), err
}

func (d *Decoder) GetUint32() (uint32, error) {
	v, err := d.dec.ReadUint32(bin.LE)
	if err != nil {
		return 0, errors.Wrap(err, "failed to read uint32")
	}
	return v, nil
}

func (d *Decoder) GetUint64() (uint64, error) {
	v, err := d.dec.ReadUint64(bin.LE)
	if err != nil {
		return 0, errors.Wrap(err, "failed to read uint64")
	}
	return v, nil
}

func (d *Decoder) GetInt64() (int64, error) {
	v, err := d.GetUint64()
	return int64(v), err
}

func (d *Decoder) GetFloat64() (float64, error) {
	v, err := d.GetUint64()
	return math.Float64frombits(v), err
}

// GetBytes returns a copy of the next n bytes.
func (d *Decoder) GetBytes(n int) ([]byte, error) {
	raw, err := d.dec.ReadNBytes(n)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %d bytes", n)
	}

	out := make([]byte, n)
	copy(out, raw)
	return out, nil
}

func (d *Decoder) GetKey() (ed25519.PublicKey, error) {
	raw, err := d.GetBytes(ed25519.PublicKeySize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read key")
	}
	return raw, nil
}

// GetOptionalKey reads a key written with PutOptionalKey under the same
// convention. Absent keys are returned as nil.
func (d *Decoder) GetOptionalKey(enc OptionalKeyEncoding) (ed25519.PublicKey, error) {
	switch enc {
	case PresenceFlag:
		flag, err := d.GetUint8()
		if err != nil {
			return nil, errors.Wrap(err, "failed to read option flag")
		}

		switch flag {
		case 0:
			return nil, nil
		case 1:
			return d.GetKey()
		default:
			return nil, errors.Wrapf(ErrInvalidOptionFlag, "flag %d", flag)
		}
	default:
		key, err := d.GetKey()
		if err != nil {
			return nil, err
		}

		if IsZeroKey(key) {
			return nil, nil
		}
		return key, nil
	}
}

// Remaining returns the number of unread bytes.
func (d *Decoder) Remaining() int {
	return d.dec.Remaining()
}

// Finish returns an error if any bytes remain unread.
func (d *Decoder) Finish() error {
	if n := d.dec.Remaining(); n != 0 {
		return errors.Wrapf(ErrTrailingBytes, "%d unread", n)
	}
	return nil
}
