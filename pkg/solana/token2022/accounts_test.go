package token2022

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-payments/token-extensions/pkg/solana"
	"github.com/code-payments/token-extensions/pkg/solana/binary"
	"github.com/code-payments/token-extensions/pkg/testutil"
)

func encodeTransferFeeConfig(t *testing.T, config *TransferFeeConfig) []byte {
	e := binary.NewEncoder(108)
	e.PutOptionalKey(config.TransferFeeConfigAuthority, binary.ZeroFill)
	e.PutOptionalKey(config.WithdrawWithheldAuthority, binary.ZeroFill)
	e.PutUint64(config.WithheldAmount)
	for _, fee := range []TransferFee{config.OlderTransferFee, config.NewerTransferFee} {
		e.PutUint64(fee.Epoch)
		e.PutUint64(fee.MaximumFee)
		e.PutUint16(fee.TransferFeeBasisPoints)
	}

	data, err := e.Bytes()
	require.NoError(t, err)
	require.Len(t, data, 108)
	return data
}

func TestTransferFeeConfigFromAccount(t *testing.T) {
	keys := testutil.GenerateSolanaKeys(t, 1)
	expected := &TransferFeeConfig{
		TransferFeeConfigAuthority: keys[0],
		WithheldAmount:             1234,
		OlderTransferFee:           TransferFee{Epoch: 10, MaximumFee: 5_000, TransferFeeBasisPoints: 50},
		NewerTransferFee:           TransferFee{Epoch: 12, MaximumFee: 1_000_000, TransferFeeBasisPoints: 150},
	}

	info := newMintInfo(t,
		tlvEntry{uint16(ExtensionTypeMintCloseAuthority), filled(32, 1)},
		tlvEntry{uint16(ExtensionTypeTransferFeeConfig), encodeTransferFeeConfig(t, expected)},
	)

	actual, err := TransferFeeConfigFromAccount(info)
	require.NoError(t, err)
	assert.EqualValues(t, expected.TransferFeeConfigAuthority, actual.TransferFeeConfigAuthority)
	assert.Nil(t, actual.WithdrawWithheldAuthority)
	assert.Equal(t, expected.WithheldAmount, actual.WithheldAmount)
	assert.Equal(t, expected.OlderTransferFee, actual.OlderTransferFee)
	assert.Equal(t, expected.NewerTransferFee, actual.NewerTransferFee)

	assert.Equal(t, expected.OlderTransferFee, actual.GetEpochFee(11))
	assert.Equal(t, expected.NewerTransferFee, actual.GetEpochFee(12))
}

func TestExtensionFromAccount_Errors(t *testing.T) {
	payload := encodeTransferFeeConfig(t, &TransferFeeConfig{})

	_, err := TransferFeeConfigFromAccount(nil)
	assert.ErrorIs(t, err, solana.ErrNotEnoughAccountKeys)

	foreign := testutil.NewAccountInfo(t, testutil.GenerateSolanaKeys(t, 1)[0], newMintData(
		tlvEntry{uint16(ExtensionTypeTransferFeeConfig), payload},
	))
	_, err = TransferFeeConfigFromAccount(foreign)
	assert.True(t, errors.Is(err, solana.ErrInvalidAccountOwner))

	// A mint extension on a token account is rejected even if present
	wrongBase := testutil.NewAccountInfo(t, ProgramKey, newTokenAccountData(
		tlvEntry{uint16(ExtensionTypeTransferFeeConfig), payload},
	))
	_, err = TransferFeeConfigFromAccount(wrongBase)
	assert.True(t, errors.Is(err, solana.ErrInvalidAccountData))

	missing := newMintInfo(t)
	_, err = TransferFeeConfigFromAccount(missing)
	assert.True(t, errors.Is(err, solana.ErrInvalidAccountData))

	baseOnly := testutil.NewAccountInfo(t, ProgramKey, make([]byte, MintSize))
	_, err = TransferFeeConfigFromAccount(baseOnly)
	assert.True(t, errors.Is(err, solana.ErrInvalidAccountData))
}

func TestExtensionFromProgramAccount(t *testing.T) {
	program := testutil.GenerateSolanaKeys(t, 1)[0]
	delegate := testutil.GenerateSolanaKeys(t, 1)[0]

	info := testutil.NewAccountInfo(t, program, newMintData(
		tlvEntry{uint16(ExtensionTypePermanentDelegate), delegate},
	))

	_, err := PermanentDelegateFromAccount(info)
	assert.True(t, errors.Is(err, solana.ErrInvalidAccountOwner))

	actual, err := ExtensionFromProgramAccount[PermanentDelegate](program, info)
	require.NoError(t, err)
	assert.EqualValues(t, delegate, actual.Delegate)

	var state PermanentDelegate
	require.NoError(t, UnmarshalExtensionFromProgramAccount(program, info, &state))
	assert.EqualValues(t, delegate, state.Delegate)

	// An empty program means the default deployment
	err = UnmarshalExtensionFromProgramAccount(nil, info, &state)
	assert.True(t, errors.Is(err, solana.ErrInvalidAccountOwner))
}

func TestTransferFee_CalculateFee(t *testing.T) {
	fee := TransferFee{MaximumFee: 5_000, TransferFeeBasisPoints: 100}

	assert.EqualValues(t, 0, fee.CalculateFee(0))
	assert.EqualValues(t, 1, fee.CalculateFee(1))
	assert.EqualValues(t, 1, fee.CalculateFee(100))
	assert.EqualValues(t, 2, fee.CalculateFee(101))
	assert.EqualValues(t, 100, fee.CalculateFee(10_000))
	assert.EqualValues(t, 5_000, fee.CalculateFee(1_000_000))
	assert.EqualValues(t, 5_000, fee.CalculateFee(math.MaxUint64))

	assert.EqualValues(t, 0, TransferFee{MaximumFee: 10}.CalculateFee(1_000))

	uncapped := TransferFee{MaximumFee: math.MaxUint64, TransferFeeBasisPoints: MaxFeeBasisPoints}
	assert.EqualValues(t, uint64(math.MaxUint64), uncapped.CalculateFee(math.MaxUint64))
}

func TestTokenAccountExtensions(t *testing.T) {
	info := testutil.NewAccountInfo(t, ProgramKey, newTokenAccountData(
		tlvEntry{uint16(ExtensionTypeTransferFeeAmount), []byte{0x10, 0x27, 0, 0, 0, 0, 0, 0}},
		tlvEntry{uint16(ExtensionTypeMemoTransfer), []byte{1}},
		tlvEntry{uint16(ExtensionTypeCpiGuard), []byte{0}},
		tlvEntry{uint16(ExtensionTypeTransferHookAccount), []byte{1}},
	))

	amount, err := TransferFeeAmountFromAccount(info)
	require.NoError(t, err)
	assert.EqualValues(t, 10_000, amount.WithheldAmount)

	memo, err := MemoTransferFromAccount(info)
	require.NoError(t, err)
	assert.True(t, memo.RequireIncomingTransferMemos)

	guard, err := CpiGuardFromAccount(info)
	require.NoError(t, err)
	assert.False(t, guard.LockCpi)

	hook, err := TransferHookAccountFromAccount(info)
	require.NoError(t, err)
	assert.True(t, hook.Transferring)
}

func TestMemoTransfer_InvalidBool(t *testing.T) {
	info := testutil.NewAccountInfo(t, ProgramKey, newTokenAccountData(
		tlvEntry{uint16(ExtensionTypeMemoTransfer), []byte{2}},
	))

	_, err := MemoTransferFromAccount(info)
	assert.True(t, errors.Is(err, solana.ErrInvalidAccountData))
}

func TestMintExtensions(t *testing.T) {
	keys := testutil.GenerateSolanaKeys(t, 4)

	interest := binary.NewEncoder(52)
	interest.PutKey(keys[0])
	interest.PutInt64(1_700_000_000)
	interest.PutInt16(-25)
	interest.PutInt64(1_700_100_000)
	interest.PutInt16(300)
	interestData, err := interest.Bytes()
	require.NoError(t, err)

	scaled := binary.NewEncoder(56)
	scaled.PutOptionalKey(nil, binary.ZeroFill)
	scaled.PutFloat64(1.5)
	scaled.PutInt64(1_800_000_000)
	scaled.PutFloat64(2.25)
	scaledData, err := scaled.Bytes()
	require.NoError(t, err)

	info := newMintInfo(t,
		tlvEntry{uint16(ExtensionTypeMintCloseAuthority), make([]byte, 32)},
		tlvEntry{uint16(ExtensionTypeDefaultAccountState), []byte{byte(AccountStateFrozen)}},
		tlvEntry{uint16(ExtensionTypePermanentDelegate), keys[1]},
		tlvEntry{uint16(ExtensionTypeInterestBearingConfig), interestData},
		tlvEntry{uint16(ExtensionTypeTransferHook), append(append([]byte{}, keys[2]...), keys[3]...)},
		tlvEntry{uint16(ExtensionTypeScaledUiAmount), scaledData},
		tlvEntry{uint16(ExtensionTypePausable), append(append([]byte{}, keys[0]...), 1)},
		tlvEntry{uint16(ExtensionTypeConfidentialTransferFeeConfig), append(filled(32, 0), append(filled(32, 9), append([]byte{1}, filled(64, 8)...)...)...)},
	)

	closeAuthority, err := MintCloseAuthorityFromAccount(info)
	require.NoError(t, err)
	assert.Nil(t, closeAuthority.CloseAuthority)

	state, err := DefaultAccountStateFromAccount(info)
	require.NoError(t, err)
	assert.Equal(t, AccountStateFrozen, state.State)

	delegate, err := PermanentDelegateFromAccount(info)
	require.NoError(t, err)
	assert.EqualValues(t, keys[1], delegate.Delegate)

	config, err := InterestBearingConfigFromAccount(info)
	require.NoError(t, err)
	assert.EqualValues(t, keys[0], config.RateAuthority)
	assert.EqualValues(t, 1_700_000_000, config.InitializationTimestamp)
	assert.EqualValues(t, -25, config.PreUpdateAverageRate)
	assert.EqualValues(t, 1_700_100_000, config.LastUpdateTimestamp)
	assert.EqualValues(t, 300, config.CurrentRate)

	hook, err := TransferHookFromAccount(info)
	require.NoError(t, err)
	assert.EqualValues(t, keys[2], hook.Authority)
	assert.EqualValues(t, keys[3], hook.ProgramID)

	ui, err := ScaledUiAmountConfigFromAccount(info)
	require.NoError(t, err)
	assert.Nil(t, ui.Authority)
	assert.Equal(t, 1.5, ui.GetMultiplier(1_799_999_999))
	assert.Equal(t, 2.25, ui.GetMultiplier(1_800_000_000))

	pausable, err := PausableConfigFromAccount(info)
	require.NoError(t, err)
	assert.EqualValues(t, keys[0], pausable.Authority)
	assert.True(t, pausable.Paused)

	fee, err := ConfidentialTransferFeeConfigFromAccount(info)
	require.NoError(t, err)
	assert.Nil(t, fee.Authority)
	assert.Equal(t, byte(9), fee.WithdrawWithheldAuthorityElGamalPubkey[31])
	assert.True(t, fee.HarvestToMintEnabled)
	assert.Equal(t, byte(8), fee.WithheldAmount[0])
}

func TestDefaultAccountState_Invalid(t *testing.T) {
	info := newMintInfo(t, tlvEntry{uint16(ExtensionTypeDefaultAccountState), []byte{3}})

	_, err := DefaultAccountStateFromAccount(info)
	assert.True(t, errors.Is(err, solana.ErrInvalidAccountData))
}

func TestPointerExtensions(t *testing.T) {
	keys := testutil.GenerateSolanaKeys(t, 2)
	payload := append(append([]byte{}, keys[0]...), keys[1]...)

	info := newMintInfo(t,
		tlvEntry{uint16(ExtensionTypeMetadataPointer), payload},
		tlvEntry{uint16(ExtensionTypeGroupPointer), append(filled(32, 0), keys[1]...)},
		tlvEntry{uint16(ExtensionTypeGroupMemberPointer), append(append([]byte{}, keys[0]...), filled(32, 0)...)},
	)

	metadata, err := MetadataPointerFromAccount(info)
	require.NoError(t, err)
	assert.EqualValues(t, keys[0], metadata.Authority)
	assert.EqualValues(t, keys[1], metadata.MetadataAddress)

	group, err := GroupPointerFromAccount(info)
	require.NoError(t, err)
	assert.Nil(t, group.Authority)
	assert.EqualValues(t, keys[1], group.GroupAddress)

	member, err := GroupMemberPointerFromAccount(info)
	require.NoError(t, err)
	assert.EqualValues(t, keys[0], member.Authority)
	assert.Nil(t, member.MemberAddress)
}

func encodeTokenMetadata(t *testing.T, metadata *TokenMetadata) []byte {
	size := 64 + 4 + len(metadata.Name) + 4 + len(metadata.Symbol) + 4 + len(metadata.URI) + 4
	for _, pair := range metadata.AdditionalMetadata {
		size += 8 + len(pair[0]) + len(pair[1])
	}

	e := binary.NewEncoder(size)
	putString := func(s string) {
		e.PutUint32(uint32(len(s)))
		e.PutBytes([]byte(s))
	}

	e.PutOptionalKey(metadata.UpdateAuthority, binary.ZeroFill)
	e.PutKey(metadata.Mint)
	putString(metadata.Name)
	putString(metadata.Symbol)
	putString(metadata.URI)
	e.PutUint32(uint32(len(metadata.AdditionalMetadata)))
	for _, pair := range metadata.AdditionalMetadata {
		putString(pair[0])
		putString(pair[1])
	}

	data, err := e.Bytes()
	require.NoError(t, err)
	return data
}

func TestTokenMetadataFromAccount(t *testing.T) {
	keys := testutil.GenerateSolanaKeys(t, 2)
	expected := &TokenMetadata{
		UpdateAuthority: keys[0],
		Mint:            keys[1],
		Name:            "Code",
		Symbol:          "CODE",
		URI:             "https://example.com/code.json",
		AdditionalMetadata: [][2]string{
			{"website", "https://example.com"},
			{"version", "2"},
		},
	}

	info := newMintInfo(t, tlvEntry{uint16(ExtensionTypeTokenMetadata), encodeTokenMetadata(t, expected)})

	actual, err := TokenMetadataFromAccount(info)
	require.NoError(t, err)
	assert.EqualValues(t, expected.UpdateAuthority, actual.UpdateAuthority)
	assert.EqualValues(t, expected.Mint, actual.Mint)
	assert.Equal(t, expected.Name, actual.Name)
	assert.Equal(t, expected.Symbol, actual.Symbol)
	assert.Equal(t, expected.URI, actual.URI)
	assert.Equal(t, expected.AdditionalMetadata, actual.AdditionalMetadata)

	version, ok := actual.Get("version")
	assert.True(t, ok)
	assert.Equal(t, "2", version)
	_, ok = actual.Get("missing")
	assert.False(t, ok)
}

func TestTokenMetadata_Corrupt(t *testing.T) {
	valid := encodeTokenMetadata(t, &TokenMetadata{
		Mint: testutil.GenerateSolanaKeys(t, 1)[0],
		Name: "name",
	})

	var metadata TokenMetadata
	require.NoError(t, metadata.Unmarshal(valid))

	for i := 0; i < len(valid); i++ {
		assert.Error(t, metadata.Unmarshal(valid[:i]))
	}
	assert.Error(t, metadata.Unmarshal(append(valid, 0)))

	// Huge string length
	corrupt := append([]byte{}, valid...)
	corrupt[64], corrupt[65], corrupt[66], corrupt[67] = 0xff, 0xff, 0xff, 0xff
	err := metadata.Unmarshal(corrupt)
	assert.True(t, errors.Is(err, solana.ErrInvalidAccountData))
}

func TestTokenGroupExtensions(t *testing.T) {
	keys := testutil.GenerateSolanaKeys(t, 3)

	group := binary.NewEncoder(80)
	group.PutKey(keys[0])
	group.PutKey(keys[1])
	group.PutUint64(3)
	group.PutUint64(10)
	groupData, err := group.Bytes()
	require.NoError(t, err)

	member := binary.NewEncoder(72)
	member.PutKey(keys[2])
	member.PutKey(keys[1])
	member.PutUint64(3)
	memberData, err := member.Bytes()
	require.NoError(t, err)

	info := newMintInfo(t,
		tlvEntry{uint16(ExtensionTypeTokenGroup), groupData},
		tlvEntry{uint16(ExtensionTypeTokenGroupMember), memberData},
	)

	actualGroup, err := TokenGroupFromAccount(info)
	require.NoError(t, err)
	assert.EqualValues(t, keys[0], actualGroup.UpdateAuthority)
	assert.EqualValues(t, keys[1], actualGroup.Mint)
	assert.EqualValues(t, 3, actualGroup.Size)
	assert.EqualValues(t, 10, actualGroup.MaxSize)

	actualMember, err := TokenGroupMemberFromAccount(info)
	require.NoError(t, err)
	assert.EqualValues(t, keys[2], actualMember.Mint)
	assert.EqualValues(t, keys[1], actualMember.Group)
	assert.EqualValues(t, 3, actualMember.MemberNumber)
}

func TestUnmarshal_WrongLength(t *testing.T) {
	var pausable PausableConfig
	err := pausable.Unmarshal(filled(32, 1))
	assert.True(t, errors.Is(err, solana.ErrInvalidAccountData))

	var amount TransferFeeAmount
	err = amount.Unmarshal(filled(9, 1))
	assert.True(t, errors.Is(err, solana.ErrInvalidAccountData))
}

func TestNewExtensionState(t *testing.T) {
	for v := uint16(0); v <= uint16(ExtensionTypePausableAccount); v++ {
		state, ok := NewExtensionState(ExtensionType(v))
		if !ok {
			continue
		}

		assert.Equal(t, ExtensionType(v), state.ExtensionType())
		info, _ := GetExtensionInfo(ExtensionType(v))
		assert.NotEqual(t, 0, info.Length)
	}

	_, ok := NewExtensionState(ExtensionTypeImmutableOwner)
	assert.False(t, ok)
}
