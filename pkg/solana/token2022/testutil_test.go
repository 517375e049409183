package token2022

import (
	"encoding/binary"
	"testing"

	"github.com/code-payments/token-extensions/pkg/solana"
	"github.com/code-payments/token-extensions/pkg/testutil"
)

type tlvEntry struct {
	t       uint16
	payload []byte
}

func encodeTLV(entries ...tlvEntry) []byte {
	var out []byte
	for _, entry := range entries {
		var header [4]byte
		binary.LittleEndian.PutUint16(header[:], entry.t)
		binary.LittleEndian.PutUint16(header[2:], uint16(len(entry.payload)))
		out = append(out, header[:]...)
		out = append(out, entry.payload...)
	}
	return out
}

func newExtendedData(accountType AccountType, entries ...tlvEntry) []byte {
	data := make([]byte, AccountSize+1)
	data[accountTypeOffset] = byte(accountType)
	return append(data, encodeTLV(entries...)...)
}

func newMintData(entries ...tlvEntry) []byte {
	return newExtendedData(AccountTypeMint, entries...)
}

func newTokenAccountData(entries ...tlvEntry) []byte {
	return newExtendedData(AccountTypeAccount, entries...)
}

func newMintInfo(t *testing.T, entries ...tlvEntry) *solana.AccountInfo {
	return testutil.NewAccountInfo(t, ProgramKey, newMintData(entries...))
}

func filled(n int, b byte) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}
	return out
}
