package cpi

import (
	"context"
	"crypto/ed25519"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/code-payments/token-extensions/pkg/solana"
)

// Signer is the seed list of one program derived address the calling
// program signs for, including its bump seed.
type Signer [][]byte

// Invoker is the host's cross-program call capability. A call blocks until
// the invoked program returns.
type Invoker interface {
	InvokeSigned(ctx context.Context, ix solana.Instruction, accounts []*solana.AccountInfo, signers []Signer) error
}

// Call is an encoded instruction together with the account references that
// back its descriptors, position for position.
type Call struct {
	Instruction solana.Instruction
	Accounts    []*solana.AccountInfo
}

// NewCall assembles a Call from instruction data and a Builder.
func NewCall(program ed25519.PublicKey, data []byte, b *Builder) (*Call, error) {
	metas, infos, err := b.Build()
	if err != nil {
		return nil, err
	}

	return &Call{
		Instruction: solana.NewInstruction(program, data, metas...),
		Accounts:    infos,
	}, nil
}

// Invoke performs the call with no program derived signers.
func (c *Call) Invoke(ctx context.Context, invoker Invoker) error {
	return InvokeSigned(ctx, invoker, c.Instruction, c.Accounts)
}

// InvokeSigned performs the call, signing for the provided program derived
// addresses.
func (c *Call) InvokeSigned(ctx context.Context, invoker Invoker, signers ...Signer) error {
	return InvokeSigned(ctx, invoker, c.Instruction, c.Accounts, signers...)
}

// Invoke is InvokeSigned with no program derived signers.
func Invoke(ctx context.Context, invoker Invoker, ix solana.Instruction, accounts []*solana.AccountInfo) error {
	return InvokeSigned(ctx, invoker, ix, accounts)
}

// InvokeSigned hands the instruction to invoker. The descriptor and reference
// lists must be parallel. A downstream error is returned unchanged.
func InvokeSigned(ctx context.Context, invoker Invoker, ix solana.Instruction, accounts []*solana.AccountInfo, signers ...Signer) error {
	log := logrus.StandardLogger().WithFields(logrus.Fields{
		"type":     "solana/cpi",
		"program":  base58.Encode(ix.Program),
		"accounts": len(ix.Accounts),
		"data_len": len(ix.Data),
	})

	if len(ix.Accounts) != len(accounts) {
		return errors.Wrapf(solana.ErrInvalidArgument, "%d descriptors but %d accounts", len(ix.Accounts), len(accounts))
	}

	if len(ix.Accounts) > MaxCPIAccounts {
		return errors.Wrapf(solana.ErrInvalidArgument, "%d accounts exceeds maximum of %d", len(ix.Accounts), MaxCPIAccounts)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	log.WithField("signers", len(signers)).Debug("invoking program")

	err := invoker.InvokeSigned(ctx, ix, accounts, signers)
	if err != nil {
		log.WithError(err).Warn("program invocation failed")
		return err
	}

	return nil
}
