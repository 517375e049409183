package memory

import (
	"context"
	"crypto/ed25519"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-payments/token-extensions/pkg/solana"
	"github.com/code-payments/token-extensions/pkg/solana/cpi"
	"github.com/code-payments/token-extensions/pkg/testutil"
)

type testEnv struct {
	ctx       context.Context
	caller    ed25519.PublicKey
	program   ed25519.PublicKey
	host      *Host
	mint      *solana.AccountInfo
	authority *solana.AccountInfo
}

func setup(t *testing.T, overrides *testOverrides) testEnv {
	keys := testutil.GenerateSolanaKeys(t, 2)
	env := testEnv{
		ctx:       context.Background(),
		caller:    keys[0],
		program:   keys[1],
		mint:      testutil.NewAccountInfo(t, keys[1], nil),
		authority: testutil.NewSignerInfo(t),
	}
	env.host = NewHost(env.caller, withManualTestOverrides(overrides))
	return env
}

func defaultOverrides() *testOverrides {
	return &testOverrides{
		maxAccounts:   cpi.MaxCPIAccounts,
		strictSigners: true,
	}
}

func (e testEnv) call(t *testing.T, authority *solana.AccountInfo, signers []*solana.AccountInfo) *cpi.Call {
	b, err := cpi.NewAuthorityBuilder(2, signers, 0)
	require.NoError(t, err)
	b.AddWritable(e.mint).AddAuthority(authority, signers)

	call, err := cpi.NewCall(e.program, []byte{44, 1}, b)
	require.NoError(t, err)
	return call
}

func TestHost_RecordsAndDispatches(t *testing.T) {
	env := setup(t, defaultOverrides())

	var handled int
	env.host.RegisterProgram(env.program, func(_ context.Context, ix solana.Instruction, accounts []*solana.AccountInfo) error {
		handled++
		assert.Equal(t, []byte{44, 1}, ix.Data)
		assert.Len(t, accounts, 2)
		return nil
	})

	call := env.call(t, env.authority, nil)
	require.NoError(t, call.Invoke(env.ctx, env.host))
	assert.Equal(t, 1, handled)

	invocations := env.host.Invocations()
	require.Len(t, invocations, 1)
	assert.Equal(t, call.Instruction, invocations[0].Instruction)
	assert.Equal(t, call.Accounts, invocations[0].Accounts)

	env.host.Reset()
	assert.Empty(t, env.host.Invocations())
}

func TestHost_HandlerErrorUnchanged(t *testing.T) {
	env := setup(t, defaultOverrides())

	expected := solana.CustomError(0x43)
	env.host.RegisterProgram(env.program, func(context.Context, solana.Instruction, []*solana.AccountInfo) error {
		return expected
	})

	err := env.call(t, env.authority, nil).Invoke(env.ctx, env.host)
	assert.Equal(t, expected, err)
}

func TestHost_InducedError(t *testing.T) {
	env := setup(t, defaultOverrides())

	env.host.InduceError(solana.ErrInvalidAccountData)
	err := env.call(t, env.authority, nil).Invoke(env.ctx, env.host)
	assert.Equal(t, solana.ErrInvalidAccountData, err)
	assert.Len(t, env.host.Invocations(), 1)

	env.host.InduceError(nil)
	assert.NoError(t, env.call(t, env.authority, nil).Invoke(env.ctx, env.host))
}

func TestHost_MissingSignature(t *testing.T) {
	env := setup(t, defaultOverrides())

	unsigned := testutil.NewAccountInfo(t, nil, nil)
	err := env.call(t, unsigned, nil).Invoke(env.ctx, env.host)
	require.Error(t, err)
	assert.True(t, errors.Is(err, solana.ErrPrivilegeEscalation))

	var ixErr solana.InstructionError
	require.True(t, errors.As(err, &ixErr))
	assert.Equal(t, 0, ixErr.Index)
	assert.Equal(t, solana.InstructionErrorPrivilegeEscalation, ixErr.ErrorKey())
	assert.Empty(t, env.host.Invocations())
}

func TestHost_LenientSigners(t *testing.T) {
	overrides := defaultOverrides()
	overrides.strictSigners = false
	env := setup(t, overrides)

	unsigned := testutil.NewAccountInfo(t, nil, nil)
	assert.NoError(t, env.call(t, unsigned, nil).Invoke(env.ctx, env.host))
}

func TestHost_ReadonlyAccount(t *testing.T) {
	env := setup(t, defaultOverrides())

	env.mint.IsWritable = false
	err := env.call(t, env.authority, nil).Invoke(env.ctx, env.host)
	assert.True(t, errors.Is(err, solana.ErrPrivilegeEscalation))
}

func TestHost_MissingAccount(t *testing.T) {
	env := setup(t, defaultOverrides())

	call := env.call(t, env.authority, nil)
	err := cpi.InvokeSigned(env.ctx, env.host, call.Instruction, []*solana.AccountInfo{call.Accounts[0], testutil.NewSignerInfo(t)})
	assert.True(t, errors.Is(err, solana.ErrMissingAccount))
}

func TestHost_ProgramDerivedSigner(t *testing.T) {
	env := setup(t, defaultOverrides())

	seeds := [][]byte{[]byte("pause"), env.mint.Key}
	pda, bump, err := solana.FindProgramAddressAndBump(env.caller, seeds...)
	require.NoError(t, err)

	authority := &solana.AccountInfo{Key: pda, Owner: env.caller}
	call := env.call(t, authority, nil)

	err = call.Invoke(env.ctx, env.host)
	assert.True(t, errors.Is(err, solana.ErrPrivilegeEscalation))

	signer := cpi.Signer(append(seeds, []byte{bump}))
	require.NoError(t, call.InvokeSigned(env.ctx, env.host, signer))

	invocations := env.host.Invocations()
	require.Len(t, invocations, 1)
	assert.Equal(t, []cpi.Signer{signer}, invocations[0].Signers)

	wrongBump := cpi.Signer(append(seeds, []byte{bump - 1}))
	err = call.InvokeSigned(env.ctx, env.host, wrongBump)
	assert.Error(t, err)
}

func TestHost_InvalidSeeds(t *testing.T) {
	env := setup(t, defaultOverrides())

	err := env.call(t, env.authority, nil).InvokeSigned(env.ctx, env.host, cpi.Signer{make([]byte, solana.MaxSeedLength+1)})
	assert.True(t, errors.Is(err, solana.ErrInvalidSeeds))
}

func TestHost_MaxAccounts(t *testing.T) {
	overrides := defaultOverrides()
	overrides.maxAccounts = 3
	env := setup(t, overrides)

	signers := testutil.NewSignerInfos(t, 2)
	authority := testutil.NewAccountInfo(t, nil, nil)
	err := env.call(t, authority, signers).Invoke(env.ctx, env.host)
	assert.True(t, errors.Is(err, solana.ErrInvalidArgument))

	signers = signers[:1]
	assert.NoError(t, env.call(t, authority, signers).Invoke(env.ctx, env.host))
}
