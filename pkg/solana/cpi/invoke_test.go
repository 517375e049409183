package cpi

import (
	"context"
	"crypto/ed25519"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-payments/token-extensions/pkg/solana"
	"github.com/code-payments/token-extensions/pkg/testutil"
)

type recordingInvoker struct {
	calls   int
	ix      solana.Instruction
	signers []Signer
	err     error
}

func (r *recordingInvoker) InvokeSigned(_ context.Context, ix solana.Instruction, _ []*solana.AccountInfo, signers []Signer) error {
	r.calls++
	r.ix = ix
	r.signers = signers
	return r.err
}

func newTestCall(t *testing.T) *Call {
	program := testutil.GenerateSolanaKeys(t, 1)[0]
	mint := testutil.NewAccountInfo(t, program, nil)
	authority := testutil.NewSignerInfo(t)

	b, err := NewAuthorityBuilder(2, nil, 0)
	require.NoError(t, err)
	b.AddWritable(mint).AddAuthority(authority, nil)

	call, err := NewCall(program, []byte{44, 1}, b)
	require.NoError(t, err)
	return call
}

func TestCall_Invoke(t *testing.T) {
	call := newTestCall(t)
	invoker := &recordingInvoker{}

	require.NoError(t, call.Invoke(context.Background(), invoker))
	assert.Equal(t, 1, invoker.calls)
	assert.Equal(t, call.Instruction, invoker.ix)
	assert.Empty(t, invoker.signers)

	seeds := Signer{[]byte("authority"), {254}}
	require.NoError(t, call.InvokeSigned(context.Background(), invoker, seeds))
	assert.Equal(t, 2, invoker.calls)
	assert.Equal(t, []Signer{seeds}, invoker.signers)
}

func TestCall_DownstreamErrorUnchanged(t *testing.T) {
	call := newTestCall(t)
	expected := solana.CustomError(67)
	invoker := &recordingInvoker{err: expected}

	err := call.Invoke(context.Background(), invoker)
	assert.Equal(t, expected, err)
	assert.Equal(t, 1, invoker.calls)
}

func TestInvoke_NotParallel(t *testing.T) {
	call := newTestCall(t)
	invoker := &recordingInvoker{}

	err := Invoke(context.Background(), invoker, call.Instruction, call.Accounts[:1])
	assert.True(t, errors.Is(err, solana.ErrInvalidArgument))
	assert.Equal(t, 0, invoker.calls)
}

func TestInvoke_TooManyAccounts(t *testing.T) {
	keys := testutil.GenerateSolanaKeys(t, MaxCPIAccounts+1)
	metas := make([]solana.AccountMeta, len(keys))
	infos := make([]*solana.AccountInfo, len(keys))
	for i, key := range keys {
		metas[i] = solana.Writable(key)
		infos[i] = &solana.AccountInfo{Key: key, IsWritable: true}
	}

	invoker := &recordingInvoker{}
	ix := solana.NewInstruction(ed25519.PublicKey(keys[0]), nil, metas...)
	err := Invoke(context.Background(), invoker, ix, infos)
	assert.True(t, errors.Is(err, solana.ErrInvalidArgument))
	assert.Equal(t, 0, invoker.calls)
}

func TestInvoke_CancelledContext(t *testing.T) {
	call := newTestCall(t)
	invoker := &recordingInvoker{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := call.Invoke(ctx, invoker)
	assert.Equal(t, context.Canceled, err)
	assert.Equal(t, 0, invoker.calls)
}
