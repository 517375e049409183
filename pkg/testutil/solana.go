package testutil

import (
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/code-payments/token-extensions/pkg/solana"
)

func GenerateSolanaKeypair(t *testing.T) ed25519.PrivateKey {
	_, p, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	return p
}

func GenerateSolanaKeys(t *testing.T, n int) []ed25519.PublicKey {
	keys := make([]ed25519.PublicKey, n)
	for i := 0; i < n; i++ {
		p, _, err := ed25519.GenerateKey(nil)
		require.NoError(t, err)
		keys[i] = p
	}
	return keys
}

// NewAccountInfo returns a writable, non-signing account owned by owner.
func NewAccountInfo(t *testing.T, owner ed25519.PublicKey, data []byte) *solana.AccountInfo {
	return &solana.AccountInfo{
		Key:        GenerateSolanaKeys(t, 1)[0],
		Owner:      owner,
		Data:       data,
		IsWritable: true,
	}
}

// NewSignerInfo returns a readonly account that signed the transaction.
func NewSignerInfo(t *testing.T) *solana.AccountInfo {
	return &solana.AccountInfo{
		Key:      GenerateSolanaKeys(t, 1)[0],
		IsSigner: true,
	}
}

// NewSignerInfos returns n signing accounts.
func NewSignerInfos(t *testing.T, n int) []*solana.AccountInfo {
	infos := make([]*solana.AccountInfo, n)
	for i := range infos {
		infos[i] = NewSignerInfo(t)
	}
	return infos
}
