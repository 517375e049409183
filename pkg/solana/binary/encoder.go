package binary

import (
	"crypto/ed25519"
	"encoding/binary"
	"math"

	"github.com/pkg/errors"
)

var (
	ErrBufferOverflow   = errors.New("buffer overflow")
	ErrInvalidKeyLength = errors.New("invalid key length")
)

// Encoder writes little-endian fields into a fixed capacity buffer through
// an advancing cursor. Every write is bounds checked. The first failure is
// sticky: later writes are dropped and Bytes returns the error.
type Encoder struct {
	buf    []byte
	offset int
	err    error
}

// NewEncoder returns an Encoder over a zeroed buffer of the given capacity.
func NewEncoder(capacity int) *Encoder {
	if capacity < 0 {
		capacity = 0
	}

	return &Encoder{
		buf: make([]byte, capacity),
	}
}

func (e *Encoder) reserve(n int) []byte {
	if e.err != nil {
		return nil
	}

	if n > len(e.buf)-e.offset {
		e.err = errors.Wrapf(ErrBufferOverflow, "writing %d bytes at offset %d exceeds capacity %d", n, e.offset, len(e.buf))
		return nil
	}

	dst := e.buf[e.offset : e.offset+n]
	e.offset += n
	return dst
}

// PutUint8 writes a single byte.
func (e *Encoder) PutUint8(v uint8) int {
	dst := e.reserve(1)
	if dst == nil {
		return 0
	}

	dst[0] = v
	return 1
}

// PutBool writes a boolean as a single byte.
func (e *Encoder) PutBool(v bool) int {
	if v {
		return e.PutUint8(1)
	}
	return e.PutUint8(0)
}

func (e *Encoder) PutUint16(v uint16) int {
	dst := e.reserve(2)
	if dst == nil {
		return 0
	}

	binary.LittleEndian.PutUint16(dst, v)
	return 2
}

func (e *Encoder) PutInt16(v int16) int {
	return e.PutUint16(uint16(v))
}

func (e *Encoder) PutUint32(v uint32) int {
	dst := e.reserve(4)
	if dst == nil {
		return 0
	}

	binary.LittleEndian.PutUint32(dst, v)
	return 4
}

func (e *Encoder) PutUint64(v uint64) int {
	dst := e.reserve(8)
	if dst == nil {
		return 0
	}

	binary.LittleEndian.PutUint64(dst, v)
	return 8
}

func (e *Encoder) PutInt64(v int64) int {
	return e.PutUint64(uint64(v))
}

func (e *Encoder) PutFloat64(v float64) int {
	return e.PutUint64(math.Float64bits(v))
}

// PutBytes writes raw bytes.
func (e *Encoder) PutBytes(v []byte) int {
	dst := e.reserve(len(v))
	if dst == nil {
		return 0
	}

	return copy(dst, v)
}

// PutKey writes a 32 byte address.
func (e *Encoder) PutKey(key ed25519.PublicKey) int {
	if e.err == nil && len(key) != ed25519.PublicKeySize {
		e.err = errors.Wrapf(ErrInvalidKeyLength, "got %d bytes", len(key))
		return 0
	}

	return e.PutBytes(key)
}

// PutOptionalKey writes key using the provided convention. An empty key is
// absent under both conventions. Under ZeroFill the all-zero key is also
// absent; under PresenceFlag it is written as present.
func (e *Encoder) PutOptionalKey(key ed25519.PublicKey, enc OptionalKeyEncoding) int {
	if e.err == nil && len(key) > 0 && len(key) != ed25519.PublicKeySize {
		e.err = errors.Wrapf(ErrInvalidKeyLength, "got %d bytes", len(key))
		return 0
	}

	present := len(key) > 0
	if enc == ZeroFill {
		present = !IsZeroKey(key)
	}

	// Reserve the full width up front so a partial option is never written.
	dst := e.reserve(enc.Size(present))
	if dst == nil {
		return 0
	}

	switch enc {
	case PresenceFlag:
		if present {
			dst[0] = 1
			copy(dst[1:], key)
		}
	default:
		if present {
			copy(dst, key)
		}
	}

	return len(dst)
}

// Offset returns the number of bytes written so far.
func (e *Encoder) Offset() int {
	return e.offset
}

// Capacity returns the size of the underlying buffer.
func (e *Encoder) Capacity() int {
	return len(e.buf)
}

// Err returns the first write failure, if any.
func (e *Encoder) Err() error {
	return e.err
}

// Bytes returns the written prefix of the buffer.
func (e *Encoder) Bytes() ([]byte, error) {
	if e.err != nil {
		return nil, e.err
	}

	return e.buf[:e.offset:e.offset], nil
}
