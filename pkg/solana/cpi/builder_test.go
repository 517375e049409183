package cpi

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-payments/token-extensions/pkg/solana"
	"github.com/code-payments/token-extensions/pkg/testutil"
)

func TestBuilder_SingleAuthority(t *testing.T) {
	mint := testutil.NewAccountInfo(t, nil, nil)
	authority := testutil.NewSignerInfo(t)

	b, err := NewAuthorityBuilder(2, nil, 0)
	require.NoError(t, err)

	metas, infos, err := b.AddWritable(mint).AddAuthority(authority, nil).Build()
	require.NoError(t, err)

	require.Len(t, metas, 2)
	require.Len(t, infos, 2)
	assert.Equal(t, solana.Writable(mint.Key), metas[0])
	assert.Equal(t, solana.ReadonlySigner(authority.Key), metas[1])
	assert.Equal(t, mint, infos[0])
	assert.Equal(t, authority, infos[1])
}

func TestBuilder_Multisig(t *testing.T) {
	mint := testutil.NewAccountInfo(t, nil, nil)
	authority := testutil.NewAccountInfo(t, nil, nil)
	signers := testutil.NewSignerInfos(t, 3)
	trailing := []*solana.AccountInfo{
		testutil.NewAccountInfo(t, nil, nil),
		testutil.NewAccountInfo(t, nil, nil),
	}

	b, err := NewAuthorityBuilder(2, signers, len(trailing))
	require.NoError(t, err)

	metas, infos, err := b.AddWritable(mint).AddAuthority(authority, signers).AddAllWritable(trailing).Build()
	require.NoError(t, err)

	require.Len(t, metas, 7)
	require.Len(t, infos, 7)
	assert.Equal(t, solana.Writable(mint.Key), metas[0])
	assert.Equal(t, solana.Readonly(authority.Key), metas[1])
	for i, signer := range signers {
		assert.Equal(t, solana.ReadonlySigner(signer.Key), metas[2+i])
	}
	assert.Equal(t, solana.Writable(trailing[0].Key), metas[5])
	assert.Equal(t, solana.Writable(trailing[1].Key), metas[6])

	for i := range metas {
		assert.EqualValues(t, metas[i].PublicKey, infos[i].Key)
	}
}

func TestCheckAuthority_SignerBound(t *testing.T) {
	total, err := CheckAuthority(2, testutil.NewSignerInfos(t, MaxMultisigSigners), 0)
	require.NoError(t, err)
	assert.Equal(t, 2+MaxMultisigSigners, total)

	_, err = CheckAuthority(2, testutil.NewSignerInfos(t, MaxMultisigSigners+1), 0)
	assert.True(t, errors.Is(err, solana.ErrInvalidArgument))

	_, err = NewAuthorityBuilder(2, testutil.NewSignerInfos(t, MaxMultisigSigners+1), 0)
	assert.True(t, errors.Is(err, solana.ErrInvalidArgument))
}

func TestCheckAuthority_AccountBound(t *testing.T) {
	signers := testutil.NewSignerInfos(t, MaxMultisigSigners)

	total, err := CheckAuthority(3, signers, MaxCPIAccounts-3-len(signers))
	require.NoError(t, err)
	assert.Equal(t, MaxCPIAccounts, total)

	_, err = CheckAuthority(3, signers, MaxCPIAccounts-3-len(signers)+1)
	assert.True(t, errors.Is(err, solana.ErrInvalidArgument))

	_, err = CheckAuthority(-1, nil, 0)
	assert.True(t, errors.Is(err, solana.ErrInvalidArgument))
}

func TestCheckArity(t *testing.T) {
	accounts := []*solana.AccountInfo{
		testutil.NewAccountInfo(t, nil, nil),
		testutil.NewAccountInfo(t, nil, nil),
	}

	assert.NoError(t, CheckArity(2, accounts))
	assert.True(t, errors.Is(CheckArity(3, accounts), solana.ErrInvalidArgument))
	assert.True(t, errors.Is(CheckArity(1, accounts), solana.ErrInvalidArgument))
	assert.NoError(t, CheckArity(0, nil))
}

func TestBuilder_Capacity(t *testing.T) {
	_, err := NewBuilder(MaxCPIAccounts + 1)
	assert.True(t, errors.Is(err, solana.ErrInvalidArgument))

	_, err = NewBuilder(-1)
	assert.True(t, errors.Is(err, solana.ErrInvalidArgument))

	b, err := NewBuilder(1)
	require.NoError(t, err)

	b.AddWritable(testutil.NewAccountInfo(t, nil, nil))
	b.AddWritable(testutil.NewAccountInfo(t, nil, nil))
	assert.Equal(t, 1, b.Len())

	metas, infos, err := b.Build()
	assert.True(t, errors.Is(err, solana.ErrInvalidArgument))
	assert.Nil(t, metas)
	assert.Nil(t, infos)
}

func TestBuilder_Underfilled(t *testing.T) {
	b, err := NewBuilder(2)
	require.NoError(t, err)

	_, _, err = b.AddWritable(testutil.NewAccountInfo(t, nil, nil)).Build()
	assert.True(t, errors.Is(err, solana.ErrNotEnoughAccountKeys))
}

func TestBuilder_Mismatch(t *testing.T) {
	b, err := NewBuilder(2)
	require.NoError(t, err)

	a := testutil.NewAccountInfo(t, nil, nil)
	other := testutil.NewAccountInfo(t, nil, nil)
	b.Add(solana.Writable(a.Key), other)
	_, _, err = b.Build()
	assert.True(t, errors.Is(err, solana.ErrInvalidArgument))

	b, err = NewBuilder(1)
	require.NoError(t, err)
	_, _, err = b.AddWritable(nil).Build()
	assert.True(t, errors.Is(err, solana.ErrNotEnoughAccountKeys))
}

func TestBuilder_AddAuthorityTooManySigners(t *testing.T) {
	b, err := NewBuilder(MaxCPIAccounts)
	require.NoError(t, err)

	b.AddAuthority(testutil.NewAccountInfo(t, nil, nil), testutil.NewSignerInfos(t, MaxMultisigSigners+1))
	assert.Equal(t, 0, b.Len())

	_, _, err = b.Build()
	assert.True(t, errors.Is(err, solana.ErrInvalidArgument))
}
