package token2022

import (
	"encoding/binary"
	"encoding/hex"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-payments/token-extensions/pkg/solana"
	solanabinary "github.com/code-payments/token-extensions/pkg/solana/binary"
)

func TestAccount_Unmarshal(t *testing.T) {
	data, err := hex.DecodeString("118a08c9d4cc46c576282e0daf050bbdb04f03313e35e5db3f3def69fa1eeec42b15a9cd4bef2cd809e464570d2a6cbd9bcc64e32ea4ebbcf748757bbb3dd5bd000084e2506ce67c000000000000000000000000000000000000000000000000000000000000000000000000010000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000")
	require.NoError(t, err)

	mint, err := base58.Decode("2BU1Xgyzqixhjaq9Pa5cNsaa1gSejLeNtDaDRv29qoZm")
	require.NoError(t, err)

	var a Account
	require.NoError(t, a.Unmarshal(data))
	assert.Equal(t, mint, []byte(a.Mint))
	assert.Equal(t, uint64(9e13*1e5), a.Amount)
	assert.Equal(t, AccountStateInitialized, a.State)
	assert.Nil(t, a.Delegate)
	assert.Nil(t, a.IsNative)
	assert.Nil(t, a.CloseAuthority)

	// Extensions following the base state are ignored.
	extended := append(append([]byte{}, data...), byte(AccountTypeAccount))
	extended = append(extended, encodeTLV(tlvEntry{t: uint16(ExtensionTypeCpiGuard), payload: []byte{1}})...)

	var fromExtended Account
	require.NoError(t, fromExtended.Unmarshal(extended))
	assert.Equal(t, a, fromExtended)
}

func TestAccount_UnmarshalOptionals(t *testing.T) {
	data := make([]byte, AccountSize)
	copy(data[0:], filled(32, 1))
	copy(data[32:], filled(32, 2))
	binary.LittleEndian.PutUint64(data[64:], 10)
	binary.LittleEndian.PutUint32(data[72:], 1)
	copy(data[76:], filled(32, 3))
	data[108] = byte(AccountStateFrozen)
	binary.LittleEndian.PutUint32(data[109:], 1)
	binary.LittleEndian.PutUint64(data[113:], 2039280)
	binary.LittleEndian.PutUint64(data[121:], 5)
	binary.LittleEndian.PutUint32(data[129:], 1)
	copy(data[133:], filled(32, 4))

	var a Account
	require.NoError(t, a.Unmarshal(data))
	assert.Equal(t, filled(32, 3), []byte(a.Delegate))
	assert.Equal(t, AccountStateFrozen, a.State)
	require.NotNil(t, a.IsNative)
	assert.Equal(t, uint64(2039280), *a.IsNative)
	assert.Equal(t, uint64(5), a.DelegatedAmount)
	assert.Equal(t, filled(32, 4), []byte(a.CloseAuthority))
}

func TestAccount_UnmarshalInvalid(t *testing.T) {
	var a Account
	assert.ErrorIs(t, a.Unmarshal(make([]byte, AccountSize-1)), solana.ErrInvalidAccountData)

	data := make([]byte, AccountSize)
	data[108] = 3
	assert.ErrorIs(t, a.Unmarshal(data), ErrInvalidAccountState)

	data = make([]byte, AccountSize)
	binary.LittleEndian.PutUint32(data[72:], 2)
	assert.ErrorIs(t, a.Unmarshal(data), solanabinary.ErrInvalidOptionFlag)
}

func TestMint_Unmarshal(t *testing.T) {
	data := make([]byte, MintSize)
	binary.LittleEndian.PutUint32(data[0:], 1)
	copy(data[4:], filled(32, 7))
	binary.LittleEndian.PutUint64(data[36:], 1_000_000)
	data[44] = 6
	data[45] = 1

	var m Mint
	require.NoError(t, m.Unmarshal(data))
	assert.Equal(t, filled(32, 7), []byte(m.MintAuthority))
	assert.Equal(t, uint64(1_000_000), m.Supply)
	assert.Equal(t, uint8(6), m.Decimals)
	assert.True(t, m.IsInitialized)
	assert.Nil(t, m.FreezeAuthority)

	// An extended mint carries padding, the account type, and the TLV region.
	extended := newMintData(tlvEntry{t: uint16(ExtensionTypeNonTransferable)})
	copy(extended, data)

	var fromExtended Mint
	require.NoError(t, fromExtended.Unmarshal(extended))
	assert.Equal(t, m, fromExtended)

	var short Mint
	assert.ErrorIs(t, short.Unmarshal(data[:MintSize-1]), solana.ErrInvalidAccountData)
}
