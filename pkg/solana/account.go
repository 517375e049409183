package solana

import (
	"bytes"
	"crypto/ed25519"

	"github.com/mr-tron/base58"
)

// AccountInfo is the live handle to an account passed into a program
// invocation. The Data buffer is owned by the host; callers in this module
// only read it.
type AccountInfo struct {
	Key        ed25519.PublicKey
	Owner      ed25519.PublicKey
	Lamports   uint64
	Data       []byte
	IsSigner   bool
	IsWritable bool
	Executable bool
}

// IsOwnedBy reports whether the account is owned by the provided program.
func (a *AccountInfo) IsOwnedBy(program ed25519.PublicKey) bool {
	return bytes.Equal(a.Owner, program)
}

// String returns the base58 form of the account address.
func (a *AccountInfo) String() string {
	return base58.Encode(a.Key)
}
