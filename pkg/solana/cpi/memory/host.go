package memory

import (
	"context"
	"crypto/ed25519"
	"sync"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/code-payments/token-extensions/pkg/solana"
	"github.com/code-payments/token-extensions/pkg/solana/cpi"
)

// Handler executes an invoked program against the accounts of a call.
type Handler func(ctx context.Context, ix solana.Instruction, accounts []*solana.AccountInfo) error

// Invocation is a call admitted by the Host.
type Invocation struct {
	Instruction solana.Instruction
	Accounts    []*solana.AccountInfo
	Signers     []cpi.Signer
}

// Host is an in memory cpi.Invoker used for testing. It applies the
// runtime's admission rules for descriptor privileges and program derived
// signers, records every admitted call, and dispatches it to the handler
// registered for the program, if any.
type Host struct {
	log    *logrus.Entry
	conf   *conf
	caller ed25519.PublicKey

	mu          sync.Mutex
	handlers    map[string]Handler
	invocations []Invocation
	inducedErr  error
}

// NewHost returns a Host for calls made by the caller program.
func NewHost(caller ed25519.PublicKey, configProvider ConfigProvider) *Host {
	return &Host{
		log:      logrus.StandardLogger().WithField("type", "solana/cpi/memory"),
		conf:     configProvider(),
		caller:   caller,
		handlers: make(map[string]Handler),
	}
}

// RegisterProgram sets the handler invoked for program.
func (h *Host) RegisterProgram(program ed25519.PublicKey, handler Handler) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.handlers[base58.Encode(program)] = handler
}

// InduceError makes every subsequent admitted call fail with err, as if the
// invoked program had rejected it. A nil err clears it.
func (h *Host) InduceError(err error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.inducedErr = err
}

// Invocations returns the admitted calls in order.
func (h *Host) Invocations() []Invocation {
	h.mu.Lock()
	defer h.mu.Unlock()

	cloned := make([]Invocation, len(h.invocations))
	copy(cloned, h.invocations)
	return cloned
}

// Reset clears recorded invocations and any induced error.
func (h *Host) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.invocations = nil
	h.inducedErr = nil
}

// InvokeSigned implements cpi.Invoker.InvokeSigned
func (h *Host) InvokeSigned(ctx context.Context, ix solana.Instruction, accounts []*solana.AccountInfo, signers []cpi.Signer) error {
	log := h.log.WithFields(logrus.Fields{
		"method":  "InvokeSigned",
		"program": base58.Encode(ix.Program),
	})

	if err := ctx.Err(); err != nil {
		return err
	}

	h.mu.Lock()
	index := len(h.invocations)
	handler := h.handlers[base58.Encode(ix.Program)]
	inducedErr := h.inducedErr
	h.mu.Unlock()

	if err := h.admit(ctx, log, ix, accounts, signers); err != nil {
		log.WithError(err).Info("call rejected by host")
		return solana.InstructionError{Index: index, Err: err}
	}

	h.mu.Lock()
	h.invocations = append(h.invocations, Invocation{
		Instruction: ix,
		Accounts:    append([]*solana.AccountInfo(nil), accounts...),
		Signers:     append([]cpi.Signer(nil), signers...),
	})
	h.mu.Unlock()

	if inducedErr != nil {
		return inducedErr
	}

	if handler == nil {
		log.Trace("no handler registered, call recorded only")
		return nil
	}
	return handler(ctx, ix, accounts)
}

func (h *Host) admit(ctx context.Context, log *logrus.Entry, ix solana.Instruction, accounts []*solana.AccountInfo, signers []cpi.Signer) error {
	maxAccounts := h.conf.maxAccounts.Get(ctx)
	if int64(len(ix.Accounts)) > maxAccounts {
		return errors.Wrapf(solana.ErrInvalidArgument, "%d accounts exceeds host maximum of %d", len(ix.Accounts), maxAccounts)
	}

	signed := make(map[string]struct{})
	for _, seeds := range signers {
		pda, err := solana.CreateProgramAddress(h.caller, seeds...)
		if err != nil {
			return errors.Wrap(solana.ErrInvalidSeeds, err.Error())
		}
		signed[base58.Encode(pda)] = struct{}{}
	}

	byKey := make(map[string]*solana.AccountInfo, len(accounts))
	for _, info := range accounts {
		if info != nil {
			byKey[base58.Encode(info.Key)] = info
		}
	}

	strictSigners := h.conf.strictSigners.Get(ctx)
	for i, meta := range ix.Accounts {
		key := base58.Encode(meta.PublicKey)

		info, ok := byKey[key]
		if !ok {
			return errors.Wrapf(solana.ErrMissingAccount, "account %s at position %d", key, i)
		}

		if meta.IsWritable && !info.IsWritable {
			return errors.Wrapf(solana.ErrPrivilegeEscalation, "account %s is not writable", key)
		}

		if !meta.IsSigner || info.IsSigner {
			continue
		}

		if _, ok := signed[key]; ok {
			continue
		}

		if strictSigners {
			return errors.Wrapf(solana.ErrPrivilegeEscalation, "account %s did not sign", key)
		}
		log.WithField("account", key).Warn("unsigned signer admitted with strict signer checks disabled")
	}

	return nil
}
