package token2022

import (
	"crypto/ed25519"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"

	"github.com/code-payments/token-extensions/pkg/solana"
	"github.com/code-payments/token-extensions/pkg/solana/binary"
)

var ErrInvalidAccountState = errors.New("invalid account state")

// ExtensionState is the decoded payload of a fixed or variable length
// extension.
type ExtensionState interface {
	ExtensionType() ExtensionType
	Unmarshal(data []byte) error
}

type extensionStatePtr[T any] interface {
	*T
	ExtensionState
}

// ExtensionFromAccount decodes extension state T from a Token-2022 owned
// account. It fails with solana.ErrInvalidAccountOwner for accounts owned
// by another program, and with solana.ErrInvalidAccountData when the account
// type does not carry T, the extension is absent, or its payload is corrupt.
func ExtensionFromAccount[T any, PT extensionStatePtr[T]](info *solana.AccountInfo) (*T, error) {
	return ExtensionFromProgramAccount[T, PT](ProgramKey, info)
}

// ExtensionFromProgramAccount is ExtensionFromAccount for accounts owned by
// a Token-2022 deployment at program. An empty program means ProgramKey.
func ExtensionFromProgramAccount[T any, PT extensionStatePtr[T]](program ed25519.PublicKey, info *solana.AccountInfo) (*T, error) {
	var state T
	if err := UnmarshalExtensionFromProgramAccount(program, info, PT(&state)); err != nil {
		return nil, err
	}
	return &state, nil
}

// UnmarshalExtensionFromAccount decodes state from info. See
// ExtensionFromAccount.
func UnmarshalExtensionFromAccount(info *solana.AccountInfo, state ExtensionState) error {
	return UnmarshalExtensionFromProgramAccount(ProgramKey, info, state)
}

// UnmarshalExtensionFromProgramAccount decodes state from info, which must
// be owned by program. An empty program means ProgramKey.
func UnmarshalExtensionFromProgramAccount(program ed25519.PublicKey, info *solana.AccountInfo, state ExtensionState) error {
	if info == nil {
		return solana.ErrNotEnoughAccountKeys
	}

	if !info.IsOwnedBy(programOrDefault(program)) {
		return errors.Wrapf(solana.ErrInvalidAccountOwner, "account %s owned by %s", info.String(), base58.Encode(info.Owner))
	}

	ext, ok := GetExtensionInfo(state.ExtensionType())
	if !ok {
		return errors.Wrapf(solana.ErrInvalidArgument, "unregistered extension %s", state.ExtensionType())
	}

	accountType, ok := GetAccountType(info.Data)
	if !ok || !accountType.supports(ext.BaseState) {
		return errors.Wrapf(solana.ErrInvalidAccountData, "%s extension not supported by %s account", ext.Name, accountType)
	}

	raw, ok := GetExtensionBytes(info.Data, ext.Type)
	if !ok {
		return errors.Wrapf(solana.ErrInvalidAccountData, "%s extension not found", ext.Name)
	}

	return state.Unmarshal(raw)
}

// newExtensionDecoder checks the payload length of a fixed size extension.
func newExtensionDecoder(t ExtensionType, data []byte) (*binary.Decoder, error) {
	info, ok := GetExtensionInfo(t)
	if !ok {
		return nil, errors.Wrapf(solana.ErrInvalidAccountData, "unregistered extension %s", t)
	}

	if !info.IsVariable() && len(data) != info.Length {
		return nil, errors.Wrapf(solana.ErrInvalidAccountData, "%s extension is %d bytes, expected %d", info.Name, len(data), info.Length)
	}

	return binary.NewDecoder(data), nil
}

// invalidExtension wraps a decode failure as solana.ErrInvalidAccountData.
func invalidExtension(t ExtensionType, err error) error {
	return errors.Wrapf(solana.ErrInvalidAccountData, "invalid %s extension: %v", t, err)
}

func getBorshString(d *binary.Decoder) (string, error) {
	length, err := d.GetUint32()
	if err != nil {
		return "", err
	}

	if int64(length) > int64(d.Remaining()) {
		return "", errors.Errorf("string length %d exceeds remaining %d bytes", length, d.Remaining())
	}

	raw, err := d.GetBytes(int(length))
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// NewExtensionState returns an empty typed view for t, or false when no view
// exists for the extension.
func NewExtensionState(t ExtensionType) (ExtensionState, bool) {
	switch t {
	case ExtensionTypeTransferFeeConfig:
		return &TransferFeeConfig{}, true
	case ExtensionTypeTransferFeeAmount:
		return &TransferFeeAmount{}, true
	case ExtensionTypeMintCloseAuthority:
		return &MintCloseAuthority{}, true
	case ExtensionTypeDefaultAccountState:
		return &DefaultAccountState{}, true
	case ExtensionTypeMemoTransfer:
		return &MemoTransfer{}, true
	case ExtensionTypeInterestBearingConfig:
		return &InterestBearingConfig{}, true
	case ExtensionTypeCpiGuard:
		return &CpiGuard{}, true
	case ExtensionTypePermanentDelegate:
		return &PermanentDelegate{}, true
	case ExtensionTypeTransferHook:
		return &TransferHook{}, true
	case ExtensionTypeTransferHookAccount:
		return &TransferHookAccount{}, true
	case ExtensionTypeConfidentialTransferFeeConfig:
		return &ConfidentialTransferFeeConfig{}, true
	case ExtensionTypeMetadataPointer:
		return &MetadataPointer{}, true
	case ExtensionTypeTokenMetadata:
		return &TokenMetadata{}, true
	case ExtensionTypeGroupPointer:
		return &GroupPointer{}, true
	case ExtensionTypeTokenGroup:
		return &TokenGroup{}, true
	case ExtensionTypeGroupMemberPointer:
		return &GroupMemberPointer{}, true
	case ExtensionTypeTokenGroupMember:
		return &TokenGroupMember{}, true
	case ExtensionTypeScaledUiAmount:
		return &ScaledUiAmountConfig{}, true
	case ExtensionTypePausable:
		return &PausableConfig{}, true
	default:
		return nil, false
	}
}
