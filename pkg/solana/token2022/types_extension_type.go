package token2022

import (
	"fmt"
)

// ExtensionType identifies an extension in the TLV region of a mint or
// token account.
type ExtensionType uint16

const (
	ExtensionTypeUninitialized ExtensionType = iota
	ExtensionTypeTransferFeeConfig
	ExtensionTypeTransferFeeAmount
	ExtensionTypeMintCloseAuthority
	ExtensionTypeConfidentialTransferMint
	ExtensionTypeConfidentialTransferAccount
	ExtensionTypeDefaultAccountState
	ExtensionTypeImmutableOwner
	ExtensionTypeMemoTransfer
	ExtensionTypeNonTransferable
	ExtensionTypeInterestBearingConfig
	ExtensionTypeCpiGuard
	ExtensionTypePermanentDelegate
	ExtensionTypeNonTransferableAccount
	ExtensionTypeTransferHook
	ExtensionTypeTransferHookAccount
	ExtensionTypeConfidentialTransferFeeConfig
	ExtensionTypeConfidentialTransferFeeAmount
	ExtensionTypeMetadataPointer
	ExtensionTypeTokenMetadata
	ExtensionTypeGroupPointer
	ExtensionTypeTokenGroup
	ExtensionTypeGroupMemberPointer
	ExtensionTypeTokenGroupMember
	ExtensionTypeConfidentialMintBurn
	ExtensionTypeScaledUiAmount
	ExtensionTypePausable
	ExtensionTypePausableAccount
)

// BaseState is the kind of base account an extension attaches to.
type BaseState uint8

const (
	BaseStateAny BaseState = iota
	BaseStateMint
	BaseStateAccount
)

func (s BaseState) String() string {
	switch s {
	case BaseStateMint:
		return "mint"
	case BaseStateAccount:
		return "account"
	default:
		return "any"
	}
}

// VariableLength is the ExtensionInfo.Length of extensions whose payload
// size is not fixed.
const VariableLength = -1

// ExtensionInfo describes a registered extension type.
type ExtensionInfo struct {
	Type      ExtensionType
	Name      string
	Length    int
	BaseState BaseState
}

// IsVariable reports whether the extension has no fixed payload size.
func (i ExtensionInfo) IsVariable() bool {
	return i.Length == VariableLength
}

// Payload sizes follow the Token-2022 Pod layouts.
var extensionRegistry = map[ExtensionType]ExtensionInfo{
	ExtensionTypeUninitialized:                 {ExtensionTypeUninitialized, "Uninitialized", VariableLength, BaseStateAny},
	ExtensionTypeTransferFeeConfig:             {ExtensionTypeTransferFeeConfig, "TransferFeeConfig", 108, BaseStateMint},
	ExtensionTypeTransferFeeAmount:             {ExtensionTypeTransferFeeAmount, "TransferFeeAmount", 8, BaseStateAccount},
	ExtensionTypeMintCloseAuthority:            {ExtensionTypeMintCloseAuthority, "MintCloseAuthority", 32, BaseStateMint},
	ExtensionTypeConfidentialTransferMint:      {ExtensionTypeConfidentialTransferMint, "ConfidentialTransferMint", 65, BaseStateMint},
	ExtensionTypeConfidentialTransferAccount:   {ExtensionTypeConfidentialTransferAccount, "ConfidentialTransferAccount", 295, BaseStateAccount},
	ExtensionTypeDefaultAccountState:           {ExtensionTypeDefaultAccountState, "DefaultAccountState", 1, BaseStateMint},
	ExtensionTypeImmutableOwner:                {ExtensionTypeImmutableOwner, "ImmutableOwner", 0, BaseStateAccount},
	ExtensionTypeMemoTransfer:                  {ExtensionTypeMemoTransfer, "MemoTransfer", 1, BaseStateAccount},
	ExtensionTypeNonTransferable:               {ExtensionTypeNonTransferable, "NonTransferable", 0, BaseStateMint},
	ExtensionTypeInterestBearingConfig:         {ExtensionTypeInterestBearingConfig, "InterestBearingConfig", 52, BaseStateMint},
	ExtensionTypeCpiGuard:                      {ExtensionTypeCpiGuard, "CpiGuard", 1, BaseStateAccount},
	ExtensionTypePermanentDelegate:             {ExtensionTypePermanentDelegate, "PermanentDelegate", 32, BaseStateMint},
	ExtensionTypeNonTransferableAccount:        {ExtensionTypeNonTransferableAccount, "NonTransferableAccount", 0, BaseStateAccount},
	ExtensionTypeTransferHook:                  {ExtensionTypeTransferHook, "TransferHook", 64, BaseStateMint},
	ExtensionTypeTransferHookAccount:           {ExtensionTypeTransferHookAccount, "TransferHookAccount", 1, BaseStateAccount},
	ExtensionTypeConfidentialTransferFeeConfig: {ExtensionTypeConfidentialTransferFeeConfig, "ConfidentialTransferFeeConfig", 129, BaseStateMint},
	ExtensionTypeConfidentialTransferFeeAmount: {ExtensionTypeConfidentialTransferFeeAmount, "ConfidentialTransferFeeAmount", 64, BaseStateAccount},
	ExtensionTypeMetadataPointer:               {ExtensionTypeMetadataPointer, "MetadataPointer", 64, BaseStateMint},
	ExtensionTypeTokenMetadata:                 {ExtensionTypeTokenMetadata, "TokenMetadata", VariableLength, BaseStateMint},
	ExtensionTypeGroupPointer:                  {ExtensionTypeGroupPointer, "GroupPointer", 64, BaseStateMint},
	ExtensionTypeTokenGroup:                    {ExtensionTypeTokenGroup, "TokenGroup", 80, BaseStateMint},
	ExtensionTypeGroupMemberPointer:            {ExtensionTypeGroupMemberPointer, "GroupMemberPointer", 64, BaseStateMint},
	ExtensionTypeTokenGroupMember:              {ExtensionTypeTokenGroupMember, "TokenGroupMember", 72, BaseStateMint},
	ExtensionTypeConfidentialMintBurn:          {ExtensionTypeConfidentialMintBurn, "ConfidentialMintBurn", 196, BaseStateMint},
	ExtensionTypeScaledUiAmount:                {ExtensionTypeScaledUiAmount, "ScaledUiAmount", 56, BaseStateMint},
	ExtensionTypePausable:                      {ExtensionTypePausable, "Pausable", 33, BaseStateMint},
	ExtensionTypePausableAccount:               {ExtensionTypePausableAccount, "PausableAccount", 0, BaseStateAccount},
}

// GetExtensionInfo returns the registry entry for t.
func GetExtensionInfo(t ExtensionType) (ExtensionInfo, bool) {
	info, ok := extensionRegistry[t]
	return info, ok
}

// ExtensionTypeFromUint16 returns the extension type for a raw TLV type
// value, or false if it is not registered.
func ExtensionTypeFromUint16(v uint16) (ExtensionType, bool) {
	t := ExtensionType(v)
	if _, ok := extensionRegistry[t]; !ok {
		return 0, false
	}
	return t, true
}

func (t ExtensionType) String() string {
	if info, ok := extensionRegistry[t]; ok {
		return info.Name
	}
	return fmt.Sprintf("ExtensionType(%d)", uint16(t))
}
