package solana

import (
	"bytes"
	"crypto/ed25519"
	"errors"
)

var (
	ErrIncorrectProgram     = errors.New("incorrect program")
	ErrIncorrectInstruction = errors.New("incorrect instruction")
)

// AccountMeta describes the role of one account in an instruction: its
// address, and whether the callee may write to it or expects its signature.
type AccountMeta struct {
	PublicKey  ed25519.PublicKey
	IsSigner   bool
	IsWritable bool
}

// NewAccountMeta creates a new AccountMeta representing a writable
// account.
func NewAccountMeta(pub ed25519.PublicKey, isSigner bool) AccountMeta {
	return AccountMeta{
		PublicKey:  pub,
		IsSigner:   isSigner,
		IsWritable: true,
	}
}

// NewReadonlyAccountMeta creates a new AccountMeta representing a readonly
// account.
func NewReadonlyAccountMeta(pub ed25519.PublicKey, isSigner bool) AccountMeta {
	return AccountMeta{
		PublicKey:  pub,
		IsSigner:   isSigner,
		IsWritable: false,
	}
}

// Writable is shorthand for a writable, non-signing account.
func Writable(pub ed25519.PublicKey) AccountMeta {
	return NewAccountMeta(pub, false)
}

// WritableSigner is shorthand for a writable, signing account.
func WritableSigner(pub ed25519.PublicKey) AccountMeta {
	return NewAccountMeta(pub, true)
}

// Readonly is shorthand for a readonly, non-signing account.
func Readonly(pub ed25519.PublicKey) AccountMeta {
	return NewReadonlyAccountMeta(pub, false)
}

// ReadonlySigner is shorthand for a readonly, signing account.
func ReadonlySigner(pub ed25519.PublicKey) AccountMeta {
	return NewReadonlyAccountMeta(pub, true)
}

// Equal reports whether two metas describe the same account with the same
// flags.
func (m AccountMeta) Equal(other AccountMeta) bool {
	return bytes.Equal(m.PublicKey, other.PublicKey) &&
		m.IsSigner == other.IsSigner &&
		m.IsWritable == other.IsWritable
}

// Instruction represents a transaction instruction.
type Instruction struct {
	Program  ed25519.PublicKey
	Accounts []AccountMeta
	Data     []byte
}

// NewInstruction creates a new instruction.
func NewInstruction(program ed25519.PublicKey, data []byte, accounts ...AccountMeta) Instruction {
	return Instruction{
		Program:  program,
		Data:     data,
		Accounts: accounts,
	}
}
