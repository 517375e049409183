package token2022

import (
	"bytes"
	"crypto/ed25519"
	"fmt"

	"github.com/pkg/errors"

	"github.com/code-payments/token-extensions/pkg/solana"
	"github.com/code-payments/token-extensions/pkg/solana/binary"
	"github.com/code-payments/token-extensions/pkg/solana/cpi"
)

// InstructionData is the typed argument set of one Token-2022 extension
// instruction. Encode produces the exact instruction data, discriminators
// included.
type InstructionData interface {
	Instruction() Instruction
	Encode() ([]byte, error)

	unmarshal(d *binary.Decoder) error
}

// MintInstructionAccounts is used by instructions that only touch the mint,
// such as every extension initializer.
type MintInstructionAccounts struct {
	Mint *solana.AccountInfo

	// Defaults to ProgramKey when empty
	TokenProgram ed25519.PublicKey
}

// MintAuthorityInstructionAccounts is used by instructions that update mint
// extension state under an authority. Signers is set when Authority is a
// multisig account.
type MintAuthorityInstructionAccounts struct {
	Mint      *solana.AccountInfo
	Authority *solana.AccountInfo
	Signers   []*solana.AccountInfo

	// Defaults to ProgramKey when empty
	TokenProgram ed25519.PublicKey
}

// OwnerInstructionAccounts is used by instructions that configure a token
// account under its owner.
type OwnerInstructionAccounts struct {
	Account *solana.AccountInfo
	Owner   *solana.AccountInfo
	Signers []*solana.AccountInfo

	// Defaults to ProgramKey when empty
	TokenProgram ed25519.PublicKey
}

func newInstructionEncoder(size int, ix Instruction, sub ...uint8) *binary.Encoder {
	e := binary.NewEncoder(size)
	e.PutUint8(uint8(ix))
	for _, s := range sub {
		e.PutUint8(s)
	}
	return e
}

func newCall(program ed25519.PublicKey, args InstructionData, b *cpi.Builder) (*cpi.Call, error) {
	data, err := args.Encode()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode %s instruction", args.Instruction())
	}

	return cpi.NewCall(programOrDefault(program), data, b)
}

func newMintCall(accounts *MintInstructionAccounts, args InstructionData) (*cpi.Call, error) {
	b, err := cpi.NewBuilder(1)
	if err != nil {
		return nil, err
	}

	b.AddWritable(accounts.Mint)
	return newCall(accounts.TokenProgram, args, b)
}

func newMintAuthorityCall(accounts *MintAuthorityInstructionAccounts, args InstructionData) (*cpi.Call, error) {
	b, err := cpi.NewAuthorityBuilder(2, accounts.Signers, 0)
	if err != nil {
		return nil, err
	}

	b.AddWritable(accounts.Mint).AddAuthority(accounts.Authority, accounts.Signers)
	return newCall(accounts.TokenProgram, args, b)
}

func newOwnerCall(accounts *OwnerInstructionAccounts, args InstructionData) (*cpi.Call, error) {
	b, err := cpi.NewAuthorityBuilder(2, accounts.Signers, 0)
	if err != nil {
		return nil, err
	}

	b.AddWritable(accounts.Account).AddAuthority(accounts.Owner, accounts.Signers)
	return newCall(accounts.TokenProgram, args, b)
}

// UnmarshalInstructionData decodes Token-2022 extension instruction data.
// Unknown discriminators, short data, and trailing bytes fail with
// solana.ErrInvalidInstructionData.
func UnmarshalInstructionData(data []byte) (InstructionData, error) {
	d := binary.NewDecoder(data)

	tag, err := d.GetUint8()
	if err != nil {
		return nil, errors.Wrap(solana.ErrInvalidInstructionData, "missing instruction discriminator")
	}
	ix := Instruction(tag)

	var sub uint8
	if ix.hasSubInstruction() {
		if sub, err = d.GetUint8(); err != nil {
			return nil, errors.Wrapf(solana.ErrInvalidInstructionData, "missing %s sub-instruction discriminator", ix)
		}
	}

	args, ok := newInstructionData(ix, sub)
	if !ok {
		return nil, errors.Wrapf(solana.ErrInvalidInstructionData, "unsupported instruction %d/%d", tag, sub)
	}

	if err := args.unmarshal(d); err != nil {
		return nil, errors.Wrapf(solana.ErrInvalidInstructionData, "invalid %s data: %v", ix, err)
	}

	if err := d.Finish(); err != nil {
		return nil, errors.Wrapf(solana.ErrInvalidInstructionData, "invalid %s data: %v", ix, err)
	}

	return args, nil
}

// DecodeInstruction decodes the data of an instruction addressed to the
// Token-2022 program.
func DecodeInstruction(ix solana.Instruction) (InstructionData, error) {
	return DecodeProgramInstruction(ProgramKey, ix)
}

// DecodeProgramInstruction decodes the data of an instruction addressed to
// program, a Token-2022 deployment at a non-default address. An empty
// program means ProgramKey.
func DecodeProgramInstruction(program ed25519.PublicKey, ix solana.Instruction) (InstructionData, error) {
	if !bytes.Equal(ix.Program, programOrDefault(program)) {
		return nil, solana.ErrIncorrectProgram
	}
	return UnmarshalInstructionData(ix.Data)
}

func newInstructionData(ix Instruction, sub uint8) (InstructionData, bool) {
	switch ix {
	case InstructionInitializeMintCloseAuthority:
		return &InitializeMintCloseAuthorityInstructionArgs{}, true
	case InstructionTransferFeeExtension:
		return newTransferFeeInstructionData(TransferFeeInstruction(sub))
	case InstructionDefaultAccountStateExtension:
		return newDefaultAccountStateInstructionData(DefaultAccountStateInstruction(sub))
	case InstructionMemoTransferExtension:
		return newMemoTransferInstructionData(RequiredMemoTransfersInstruction(sub))
	case InstructionInitializeNonTransferableMint:
		return &InitializeNonTransferableMintInstructionArgs{}, true
	case InstructionInterestBearingMintExtension:
		return newInterestBearingMintInstructionData(InterestBearingMintInstruction(sub))
	case InstructionCpiGuardExtension:
		return newCpiGuardInstructionData(CpiGuardInstruction(sub))
	case InstructionInitializePermanentDelegate:
		return &InitializePermanentDelegateInstructionArgs{}, true
	case InstructionTransferHookExtension:
		return newTransferHookInstructionData(TransferHookInstruction(sub))
	case InstructionConfidentialTransferFeeExtension:
		return newConfidentialTransferFeeInstructionData(ConfidentialTransferFeeInstruction(sub))
	case InstructionMetadataPointerExtension:
		return newMetadataPointerInstructionData(PointerInstruction(sub))
	case InstructionGroupPointerExtension:
		return newGroupPointerInstructionData(PointerInstruction(sub))
	case InstructionGroupMemberPointerExtension:
		return newGroupMemberPointerInstructionData(PointerInstruction(sub))
	case InstructionScaledUiAmountExtension:
		return newScaledUiAmountInstructionData(ScaledUiAmountInstruction(sub))
	case InstructionPausableExtension:
		return newPausableInstructionData(PausableInstruction(sub))
	default:
		return nil, false
	}
}

func (i Instruction) String() string {
	switch i {
	case InstructionInitializeMintCloseAuthority:
		return "InitializeMintCloseAuthority"
	case InstructionTransferFeeExtension:
		return "TransferFeeExtension"
	case InstructionDefaultAccountStateExtension:
		return "DefaultAccountStateExtension"
	case InstructionMemoTransferExtension:
		return "MemoTransferExtension"
	case InstructionInitializeNonTransferableMint:
		return "InitializeNonTransferableMint"
	case InstructionInterestBearingMintExtension:
		return "InterestBearingMintExtension"
	case InstructionCpiGuardExtension:
		return "CpiGuardExtension"
	case InstructionInitializePermanentDelegate:
		return "InitializePermanentDelegate"
	case InstructionTransferHookExtension:
		return "TransferHookExtension"
	case InstructionConfidentialTransferFeeExtension:
		return "ConfidentialTransferFeeExtension"
	case InstructionMetadataPointerExtension:
		return "MetadataPointerExtension"
	case InstructionGroupPointerExtension:
		return "GroupPointerExtension"
	case InstructionGroupMemberPointerExtension:
		return "GroupMemberPointerExtension"
	case InstructionScaledUiAmountExtension:
		return "ScaledUiAmountExtension"
	case InstructionPausableExtension:
		return "PausableExtension"
	default:
		return fmt.Sprintf("Instruction(%d)", uint8(i))
	}
}
