package interop

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-payments/token-extensions/pkg/solana"
	"github.com/code-payments/token-extensions/pkg/solana/token2022"
	"github.com/code-payments/token-extensions/pkg/testutil"
)

func TestGenericInstruction_RoundTrip(t *testing.T) {
	mint := testutil.NewAccountInfo(t, token2022.ProgramKey, nil)
	authority := testutil.NewAccountInfo(t, nil, nil)
	signers := testutil.NewSignerInfos(t, 2)

	call, err := token2022.NewSetTransferFeeInstruction(&token2022.MintAuthorityInstructionAccounts{
		Mint:      mint,
		Authority: authority,
		Signers:   signers,
	}, &token2022.SetTransferFeeInstructionArgs{
		TransferFeeBasisPoints: 150,
		MaximumFee:             1_000_000,
	})
	require.NoError(t, err)

	generic, err := ToGenericInstruction(call.Instruction)
	require.NoError(t, err)

	assert.EqualValues(t, token2022.ProgramKey, generic.ProgramID().Bytes())
	data, err := generic.Data()
	require.NoError(t, err)
	assert.Equal(t, call.Instruction.Data, data)

	require.Len(t, generic.Accounts(), 4)
	assert.True(t, generic.Accounts()[0].IsWritable)
	assert.False(t, generic.Accounts()[0].IsSigner)
	assert.False(t, generic.Accounts()[1].IsSigner)
	assert.True(t, generic.Accounts()[2].IsSigner)
	assert.False(t, generic.Accounts()[3].IsWritable)

	actual, err := FromInstruction(generic)
	require.NoError(t, err)
	assert.EqualValues(t, call.Instruction.Program, actual.Program)
	assert.Equal(t, call.Instruction.Data, actual.Data)
	require.Len(t, actual.Accounts, len(call.Instruction.Accounts))
	for i := range actual.Accounts {
		assert.True(t, call.Instruction.Accounts[i].Equal(actual.Accounts[i]))
	}

	decoded, err := token2022.DecodeInstruction(actual)
	require.NoError(t, err)
	assert.Equal(t, &token2022.SetTransferFeeInstructionArgs{TransferFeeBasisPoints: 150, MaximumFee: 1_000_000}, decoded)
}

func TestToGenericInstruction_InvalidKey(t *testing.T) {
	ix := solana.NewInstruction(token2022.ProgramKey, nil, solana.Writable(make([]byte, 31)))
	_, err := ToGenericInstruction(ix)
	assert.True(t, errors.Is(err, ErrInvalidPublicKey))

	_, err = ToGenericInstruction(solana.NewInstruction(nil, nil))
	assert.True(t, errors.Is(err, ErrInvalidPublicKey))
}

func TestPublicKey_RoundTrip(t *testing.T) {
	key := testutil.GenerateSolanaKeys(t, 1)[0]

	converted, err := ToPublicKey(key)
	require.NoError(t, err)
	assert.Equal(t, key, FromPublicKey(converted))
}
