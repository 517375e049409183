package binary

import (
	"crypto/ed25519"
)

// OptionalKeyEncoding is the wire convention used to serialize an address
// that may be absent. An instruction layout commits to exactly one.
type OptionalKeyEncoding uint8

const (
	// PresenceFlag writes a single zero byte when the key is absent, and a
	// one byte followed by the 32 key bytes when present. The all-zero key is
	// a present value.
	PresenceFlag OptionalKeyEncoding = iota

	// ZeroFill always writes 32 bytes. The all-zero address is reserved to
	// mean absent.
	ZeroFill
)

// Size returns the encoded size of an optional key.
func (e OptionalKeyEncoding) Size(present bool) int {
	switch e {
	case PresenceFlag:
		if present {
			return 1 + ed25519.PublicKeySize
		}
		return 1
	default:
		return ed25519.PublicKeySize
	}
}

// MaxSize returns the worst case encoded size of an optional key.
func (e OptionalKeyEncoding) MaxSize() int {
	return e.Size(true)
}

func (e OptionalKeyEncoding) String() string {
	switch e {
	case PresenceFlag:
		return "presence-flag"
	case ZeroFill:
		return "zero-fill"
	default:
		return "unknown"
	}
}

// IsZeroKey reports whether key is nil or the all-zero address.
func IsZeroKey(key ed25519.PublicKey) bool {
	for _, b := range key {
		if b != 0 {
			return false
		}
	}
	return true
}
