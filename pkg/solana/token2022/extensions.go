package token2022

import (
	"encoding/binary"
)

// GetAccountType returns the account type byte of an extended account. Base
// only accounts, and multisig accounts, have no account type.
func GetAccountType(data []byte) (AccountType, bool) {
	if len(data) <= accountTypeOffset || len(data) == MultisigSize {
		return AccountTypeUninitialized, false
	}

	t := AccountType(data[accountTypeOffset])
	switch t {
	case AccountTypeMint, AccountTypeAccount:
		return t, true
	default:
		return AccountTypeUninitialized, false
	}
}

// GetExtensionBytes locates the payload of extension t in the account data.
// Fixed size extensions only match when the header length equals the
// registered size. Variable length extensions return the raw payload.
//
// The result aliases data. Missing, truncated, or malformed regions report
// false rather than an error.
func GetExtensionBytes(data []byte, t ExtensionType) ([]byte, bool) {
	info, ok := GetExtensionInfo(t)
	if !ok || t == ExtensionTypeUninitialized {
		return nil, false
	}

	var value []byte
	var found bool
	walkExtensions(data, tlvStart(info.BaseState), func(raw uint16, payload []byte) bool {
		if ExtensionType(raw) != t {
			return true
		}

		if !info.IsVariable() && len(payload) != info.Length {
			return true
		}

		value, found = payload, true
		return false
	})

	return value, found
}

// GetExtensionTypes returns the registered extension types present in the
// account data, in TLV order. Unregistered types are skipped.
func GetExtensionTypes(data []byte) []ExtensionType {
	var types []ExtensionType
	walkExtensions(data, AccountSize+1, func(raw uint16, _ []byte) bool {
		if t, ok := ExtensionTypeFromUint16(raw); ok {
			types = append(types, t)
		}
		return true
	})
	return types
}

// HasExtension reports whether extension t is present with a valid length.
func HasExtension(data []byte, t ExtensionType) bool {
	_, ok := GetExtensionBytes(data, t)
	return ok
}

// walkExtensions visits each well formed TLV entry starting at offset start
// until fn returns false. The walk ends at the end of data, at an
// Uninitialized header, or at the first header that is truncated or whose
// length overruns data.
func walkExtensions(data []byte, start int, fn func(t uint16, payload []byte) bool) {
	if len(data) <= start || len(data) == MultisigSize {
		return
	}

	region := data[start:]
	for offset := 0; len(region)-offset >= tlvHeaderSize; {
		t := binary.LittleEndian.Uint16(region[offset:])
		length := int(binary.LittleEndian.Uint16(region[offset+2:]))
		if ExtensionType(t) == ExtensionTypeUninitialized {
			return
		}

		valueStart := offset + tlvHeaderSize
		if length > len(region)-valueStart {
			return
		}

		if !fn(t, region[valueStart:valueStart+length:valueStart+length]) {
			return
		}

		offset = valueStart + length
	}
}
