package token2022

import (
	"context"
	"crypto/ed25519"

	"github.com/mr-tron/base58"

	"github.com/code-payments/token-extensions/pkg/config/env"
	"github.com/code-payments/token-extensions/pkg/solana"
	"github.com/code-payments/token-extensions/pkg/solana/cpi"
)

// ProgramKey is the address of the Token-2022 program.
//
// Current key: TokenzQdBNbLqP5VEhdkAS6EPFLC1PHnBqCXEpPxuEb
var ProgramKey = mustBase58Decode("TokenzQdBNbLqP5VEhdkAS6EPFLC1PHnBqCXEpPxuEb")

const (
	ProgramKeyConfigEnvName = "TOKEN_2022_PROGRAM_ID"

	// MaxMultisigSigners is the most signers a multisig authority may have.
	MaxMultisigSigners = cpi.MaxMultisigSigners
)

// LoadProgramKey returns the program key from the environment, falling back
// to ProgramKey when unset or invalid.
func LoadProgramKey(ctx context.Context) ed25519.PublicKey {
	return env.NewPublicKeyConfig(ProgramKeyConfigEnvName, ProgramKey).Get(ctx)
}

func programOrDefault(program ed25519.PublicKey) ed25519.PublicKey {
	if len(program) == 0 {
		return ProgramKey
	}
	return program
}

// Instruction is the leading discriminator of a Token-2022 instruction.
type Instruction uint8

const (
	InstructionInitializeMintCloseAuthority     Instruction = 25
	InstructionTransferFeeExtension             Instruction = 26
	InstructionDefaultAccountStateExtension     Instruction = 28
	InstructionMemoTransferExtension            Instruction = 30
	InstructionInitializeNonTransferableMint    Instruction = 32
	InstructionInterestBearingMintExtension     Instruction = 33
	InstructionCpiGuardExtension                Instruction = 34
	InstructionInitializePermanentDelegate      Instruction = 35
	InstructionTransferHookExtension            Instruction = 36
	InstructionConfidentialTransferFeeExtension Instruction = 37
	InstructionMetadataPointerExtension         Instruction = 39
	InstructionGroupPointerExtension            Instruction = 40
	InstructionGroupMemberPointerExtension      Instruction = 41
	InstructionScaledUiAmountExtension          Instruction = 43
	InstructionPausableExtension                Instruction = 44
)

// hasSubInstruction reports whether the instruction carries a second
// discriminator byte.
func (i Instruction) hasSubInstruction() bool {
	switch i {
	case InstructionInitializeMintCloseAuthority,
		InstructionInitializeNonTransferableMint,
		InstructionInitializePermanentDelegate:
		return false
	default:
		return true
	}
}

type TransferFeeInstruction uint8

const (
	TransferFeeInstructionInitializeTransferFeeConfig TransferFeeInstruction = iota
	TransferFeeInstructionTransferCheckedWithFee
	TransferFeeInstructionWithdrawWithheldTokensFromMint
	TransferFeeInstructionWithdrawWithheldTokensFromAccounts
	TransferFeeInstructionHarvestWithheldTokensToMint
	TransferFeeInstructionSetTransferFee
)

type DefaultAccountStateInstruction uint8

const (
	DefaultAccountStateInstructionInitialize DefaultAccountStateInstruction = iota
	DefaultAccountStateInstructionUpdate
)

type RequiredMemoTransfersInstruction uint8

const (
	RequiredMemoTransfersInstructionEnable RequiredMemoTransfersInstruction = iota
	RequiredMemoTransfersInstructionDisable
)

type InterestBearingMintInstruction uint8

const (
	InterestBearingMintInstructionInitialize InterestBearingMintInstruction = iota
	InterestBearingMintInstructionUpdateRate
)

type CpiGuardInstruction uint8

const (
	CpiGuardInstructionEnable CpiGuardInstruction = iota
	CpiGuardInstructionDisable
)

type TransferHookInstruction uint8

const (
	TransferHookInstructionInitialize TransferHookInstruction = iota
	TransferHookInstructionUpdate
)

type ConfidentialTransferFeeInstruction uint8

const (
	ConfidentialTransferFeeInstructionInitializeConfig ConfidentialTransferFeeInstruction = iota
)

// PointerInstruction is shared by the metadata, group, and group member
// pointer extensions.
type PointerInstruction uint8

const (
	PointerInstructionInitialize PointerInstruction = iota
	PointerInstructionUpdate
)

type ScaledUiAmountInstruction uint8

const (
	ScaledUiAmountInstructionInitialize ScaledUiAmountInstruction = iota
	ScaledUiAmountInstructionUpdateMultiplier
)

type PausableInstruction uint8

const (
	PausableInstructionInitialize PausableInstruction = iota
	PausableInstructionPause
	PausableInstructionResume
)

const (
	// nolint:varcheck,deadcode,unused
	ErrorNotRentExempt solana.CustomError = iota
	// nolint:varcheck,deadcode,unused
	ErrorInsufficientFunds
	// nolint:varcheck,deadcode,unused
	ErrorInvalidMint
	// nolint:varcheck,deadcode,unused
	ErrorMintMismatch
	// nolint:varcheck,deadcode,unused
	ErrorOwnerMismatch
	// nolint:varcheck,deadcode,unused
	ErrorFixedSupply
	// nolint:varcheck,deadcode,unused
	ErrorAlreadyInUse
	// nolint:varcheck,deadcode,unused
	ErrorInvalidNumberOfProvidedSigners
	// nolint:varcheck,deadcode,unused
	ErrorInvalidNumberOfRequiredSigners
	// nolint:varcheck,deadcode,unused
	ErrorUninitializedState
	// nolint:varcheck,deadcode,unused
	ErrorNativeNotSupported
	// nolint:varcheck,deadcode,unused
	ErrorNonNativeHasBalance
	// nolint:varcheck,deadcode,unused
	ErrorInvalidInstruction
	// nolint:varcheck,deadcode,unused
	ErrorInvalidState
	// nolint:varcheck,deadcode,unused
	ErrorOverflow
	// nolint:varcheck,deadcode,unused
	ErrorAuthorityTypeNotSupported
	// nolint:varcheck,deadcode,unused
	ErrorMintCannotFreeze
	// nolint:varcheck,deadcode,unused
	ErrorAccountFrozen
	// nolint:varcheck,deadcode,unused
	ErrorMintDecimalsMismatch
	// nolint:varcheck,deadcode,unused
	ErrorNonNativeNotSupported
	// nolint:varcheck,deadcode,unused
	ErrorExtensionTypeMismatch
	// nolint:varcheck,deadcode,unused
	ErrorExtensionBaseMismatch
	// nolint:varcheck,deadcode,unused
	ErrorExtensionAlreadyInitialized
)

func mustBase58Decode(value string) ed25519.PublicKey {
	decoded, err := base58.Decode(value)
	if err != nil {
		panic(err)
	}
	return decoded
}
