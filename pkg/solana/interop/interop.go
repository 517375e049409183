// Package interop converts between this module's instruction types and
// github.com/gagliardetto/solana-go, so the same builders can feed client
// side transactions.
package interop

import (
	"crypto/ed25519"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"

	"github.com/code-payments/token-extensions/pkg/solana"
)

var ErrInvalidPublicKey = errors.New("invalid public key")

// ToPublicKey converts an ed25519 key to its solana-go form.
func ToPublicKey(key ed25519.PublicKey) (solanago.PublicKey, error) {
	if len(key) != ed25519.PublicKeySize {
		return solanago.PublicKey{}, errors.Wrapf(ErrInvalidPublicKey, "got %d bytes", len(key))
	}
	return solanago.PublicKeyFromBytes(key), nil
}

// FromPublicKey converts a solana-go key to an ed25519 key. The result does
// not alias key.
func FromPublicKey(key solanago.PublicKey) ed25519.PublicKey {
	out := make(ed25519.PublicKey, ed25519.PublicKeySize)
	copy(out, key[:])
	return out
}

// ToGenericInstruction converts ix for use with solana-go transaction
// builders.
func ToGenericInstruction(ix solana.Instruction) (*solanago.GenericInstruction, error) {
	program, err := ToPublicKey(ix.Program)
	if err != nil {
		return nil, errors.Wrap(err, "invalid program")
	}

	accounts := make(solanago.AccountMetaSlice, len(ix.Accounts))
	for i, meta := range ix.Accounts {
		key, err := ToPublicKey(meta.PublicKey)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid account at position %d", i)
		}

		accounts[i] = &solanago.AccountMeta{
			PublicKey:  key,
			IsWritable: meta.IsWritable,
			IsSigner:   meta.IsSigner,
		}
	}

	data := make([]byte, len(ix.Data))
	copy(data, ix.Data)

	return solanago.NewInstruction(program, accounts, data), nil
}

// FromInstruction converts any solana-go instruction.
func FromInstruction(ix solanago.Instruction) (solana.Instruction, error) {
	data, err := ix.Data()
	if err != nil {
		return solana.Instruction{}, errors.Wrap(err, "failed to get instruction data")
	}

	accounts := make([]solana.AccountMeta, 0, len(ix.Accounts()))
	for i, meta := range ix.Accounts() {
		if meta == nil {
			return solana.Instruction{}, errors.Errorf("nil account at position %d", i)
		}

		accounts = append(accounts, solana.AccountMeta{
			PublicKey:  FromPublicKey(meta.PublicKey),
			IsSigner:   meta.IsSigner,
			IsWritable: meta.IsWritable,
		})
	}

	return solana.NewInstruction(FromPublicKey(ix.ProgramID()), data, accounts...), nil
}
