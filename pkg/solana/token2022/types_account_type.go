package token2022

// Reference: https://github.com/solana-program/token-2022/blob/main/program/src/extension/mod.rs
const (
	MintSize     = 82
	AccountSize  = 165
	MultisigSize = 355

	// MintPadding pads a mint to AccountSize so the account type byte sits
	// at the same offset for both base kinds.
	MintPadding = AccountSize - MintSize

	accountTypeOffset = AccountSize
	tlvHeaderSize     = 4
)

// AccountType is the byte that follows the base state of an extended mint
// or token account.
type AccountType uint8

const (
	AccountTypeUninitialized AccountType = iota
	AccountTypeMint
	AccountTypeAccount
)

func (t AccountType) String() string {
	switch t {
	case AccountTypeMint:
		return "mint"
	case AccountTypeAccount:
		return "account"
	default:
		return "uninitialized"
	}
}

// supports reports whether extensions of base may live on this account type.
func (t AccountType) supports(base BaseState) bool {
	switch base {
	case BaseStateMint:
		return t == AccountTypeMint
	case BaseStateAccount:
		return t == AccountTypeAccount
	default:
		return t == AccountTypeMint || t == AccountTypeAccount
	}
}

// AccountState is the state of a token account, as set on new accounts by
// the DefaultAccountState extension.
type AccountState uint8

const (
	AccountStateUninitialized AccountState = iota
	AccountStateInitialized
	AccountStateFrozen
)

func (s AccountState) String() string {
	switch s {
	case AccountStateInitialized:
		return "initialized"
	case AccountStateFrozen:
		return "frozen"
	default:
		return "uninitialized"
	}
}

// tlvStart returns the offset of the TLV region for an extension attached to
// base. Mints are padded to the account size, so both kinds share it.
func tlvStart(base BaseState) int {
	switch base {
	case BaseStateMint:
		return MintSize + MintPadding + 1
	default:
		return AccountSize + 1
	}
}
