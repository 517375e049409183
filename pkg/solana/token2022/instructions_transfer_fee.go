package token2022

import (
	"crypto/ed25519"

	"github.com/code-payments/token-extensions/pkg/solana"
	"github.com/code-payments/token-extensions/pkg/solana/binary"
	"github.com/code-payments/token-extensions/pkg/solana/cpi"
)

const (
	InitializeTransferFeeConfigInstructionArgsMaxSize = (2 + // discriminators
		33 + // transfer_fee_config_authority
		33 + // withdraw_withheld_authority
		2 + // transfer_fee_basis_points
		8) // maximum_fee

	TransferCheckedWithFeeInstructionArgsSize = (2 + // discriminators
		8 + // amount
		1 + // decimals
		8) // fee

	WithdrawWithheldTokensFromAccountsInstructionArgsSize = (2 + // discriminators
		1) // num_token_accounts

	SetTransferFeeInstructionArgsSize = (2 + // discriminators
		2 + // transfer_fee_basis_points
		8) // maximum_fee
)

func newTransferFeeInstructionData(sub TransferFeeInstruction) (InstructionData, bool) {
	switch sub {
	case TransferFeeInstructionInitializeTransferFeeConfig:
		return &InitializeTransferFeeConfigInstructionArgs{}, true
	case TransferFeeInstructionTransferCheckedWithFee:
		return &TransferCheckedWithFeeInstructionArgs{}, true
	case TransferFeeInstructionWithdrawWithheldTokensFromMint:
		return &WithdrawWithheldTokensFromMintInstructionArgs{}, true
	case TransferFeeInstructionWithdrawWithheldTokensFromAccounts:
		return &WithdrawWithheldTokensFromAccountsInstructionArgs{}, true
	case TransferFeeInstructionHarvestWithheldTokensToMint:
		return &HarvestWithheldTokensToMintInstructionArgs{}, true
	case TransferFeeInstructionSetTransferFee:
		return &SetTransferFeeInstructionArgs{}, true
	default:
		return nil, false
	}
}

type InitializeTransferFeeConfigInstructionArgs struct {
	TransferFeeConfigAuthority ed25519.PublicKey
	WithdrawWithheldAuthority  ed25519.PublicKey
	TransferFeeBasisPoints     uint16
	MaximumFee                 uint64
}

func (a *InitializeTransferFeeConfigInstructionArgs) Instruction() Instruction {
	return InstructionTransferFeeExtension
}

func (a *InitializeTransferFeeConfigInstructionArgs) Encode() ([]byte, error) {
	e := newInstructionEncoder(
		InitializeTransferFeeConfigInstructionArgsMaxSize,
		InstructionTransferFeeExtension,
		uint8(TransferFeeInstructionInitializeTransferFeeConfig),
	)
	e.PutOptionalKey(a.TransferFeeConfigAuthority, binary.PresenceFlag)
	e.PutOptionalKey(a.WithdrawWithheldAuthority, binary.PresenceFlag)
	e.PutUint16(a.TransferFeeBasisPoints)
	e.PutUint64(a.MaximumFee)
	return e.Bytes()
}

func (a *InitializeTransferFeeConfigInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if a.TransferFeeConfigAuthority, err = d.GetOptionalKey(binary.PresenceFlag); err != nil {
		return err
	}
	if a.WithdrawWithheldAuthority, err = d.GetOptionalKey(binary.PresenceFlag); err != nil {
		return err
	}
	if a.TransferFeeBasisPoints, err = d.GetUint16(); err != nil {
		return err
	}
	a.MaximumFee, err = d.GetUint64()
	return err
}

// NewInitializeTransferFeeConfigInstruction initializes the transfer fee
// extension on an uninitialized mint.
//
// Accounts:
//  0. [writable] mint
func NewInitializeTransferFeeConfigInstruction(
	accounts *MintInstructionAccounts,
	args *InitializeTransferFeeConfigInstructionArgs,
) (*cpi.Call, error) {
	return newMintCall(accounts, args)
}

type TransferCheckedWithFeeInstructionAccounts struct {
	Source      *solana.AccountInfo
	Mint        *solana.AccountInfo
	Destination *solana.AccountInfo
	Authority   *solana.AccountInfo
	Signers     []*solana.AccountInfo

	// Defaults to ProgramKey when empty
	TokenProgram ed25519.PublicKey
}

type TransferCheckedWithFeeInstructionArgs struct {
	Amount   uint64
	Decimals uint8
	Fee      uint64
}

func (a *TransferCheckedWithFeeInstructionArgs) Instruction() Instruction {
	return InstructionTransferFeeExtension
}

func (a *TransferCheckedWithFeeInstructionArgs) Encode() ([]byte, error) {
	e := newInstructionEncoder(
		TransferCheckedWithFeeInstructionArgsSize,
		InstructionTransferFeeExtension,
		uint8(TransferFeeInstructionTransferCheckedWithFee),
	)
	e.PutUint64(a.Amount)
	e.PutUint8(a.Decimals)
	e.PutUint64(a.Fee)
	return e.Bytes()
}

func (a *TransferCheckedWithFeeInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if a.Amount, err = d.GetUint64(); err != nil {
		return err
	}
	if a.Decimals, err = d.GetUint8(); err != nil {
		return err
	}
	a.Fee, err = d.GetUint64()
	return err
}

// NewTransferCheckedWithFeeInstruction transfers tokens, asserting the
// expected fee.
//
// Accounts:
//  0. [writable] source
//  1. [] mint
//  2. [writable] destination
//  3. [signer] authority, or [] multisig authority followed by its signers
func NewTransferCheckedWithFeeInstruction(
	accounts *TransferCheckedWithFeeInstructionAccounts,
	args *TransferCheckedWithFeeInstructionArgs,
) (*cpi.Call, error) {
	b, err := cpi.NewAuthorityBuilder(4, accounts.Signers, 0)
	if err != nil {
		return nil, err
	}

	b.AddWritable(accounts.Source).
		AddReadonly(accounts.Mint).
		AddWritable(accounts.Destination).
		AddAuthority(accounts.Authority, accounts.Signers)

	return newCall(accounts.TokenProgram, args, b)
}

type WithdrawWithheldTokensFromMintInstructionAccounts struct {
	Mint        *solana.AccountInfo
	Destination *solana.AccountInfo
	Authority   *solana.AccountInfo
	Signers     []*solana.AccountInfo

	// Defaults to ProgramKey when empty
	TokenProgram ed25519.PublicKey
}

type WithdrawWithheldTokensFromMintInstructionArgs struct{}

func (a *WithdrawWithheldTokensFromMintInstructionArgs) Instruction() Instruction {
	return InstructionTransferFeeExtension
}

func (a *WithdrawWithheldTokensFromMintInstructionArgs) Encode() ([]byte, error) {
	return newInstructionEncoder(
		2,
		InstructionTransferFeeExtension,
		uint8(TransferFeeInstructionWithdrawWithheldTokensFromMint),
	).Bytes()
}

func (a *WithdrawWithheldTokensFromMintInstructionArgs) unmarshal(_ *binary.Decoder) error {
	return nil
}

// NewWithdrawWithheldTokensFromMintInstruction moves fees harvested to the
// mint into a destination account.
//
// Accounts:
//  0. [writable] mint
//  1. [writable] destination
//  2. [signer] withdraw withheld authority, or [] multisig authority followed by its signers
func NewWithdrawWithheldTokensFromMintInstruction(
	accounts *WithdrawWithheldTokensFromMintInstructionAccounts,
) (*cpi.Call, error) {
	b, err := cpi.NewAuthorityBuilder(3, accounts.Signers, 0)
	if err != nil {
		return nil, err
	}

	b.AddWritable(accounts.Mint).
		AddWritable(accounts.Destination).
		AddAuthority(accounts.Authority, accounts.Signers)

	return newCall(accounts.TokenProgram, &WithdrawWithheldTokensFromMintInstructionArgs{}, b)
}

type WithdrawWithheldTokensFromAccountsInstructionAccounts struct {
	Mint        *solana.AccountInfo
	Destination *solana.AccountInfo
	Authority   *solana.AccountInfo
	Signers     []*solana.AccountInfo
	Sources     []*solana.AccountInfo

	// Defaults to ProgramKey when empty
	TokenProgram ed25519.PublicKey
}

type WithdrawWithheldTokensFromAccountsInstructionArgs struct {
	NumTokenAccounts uint8
}

func (a *WithdrawWithheldTokensFromAccountsInstructionArgs) Instruction() Instruction {
	return InstructionTransferFeeExtension
}

func (a *WithdrawWithheldTokensFromAccountsInstructionArgs) Encode() ([]byte, error) {
	e := newInstructionEncoder(
		WithdrawWithheldTokensFromAccountsInstructionArgsSize,
		InstructionTransferFeeExtension,
		uint8(TransferFeeInstructionWithdrawWithheldTokensFromAccounts),
	)
	e.PutUint8(a.NumTokenAccounts)
	return e.Bytes()
}

func (a *WithdrawWithheldTokensFromAccountsInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	a.NumTokenAccounts, err = d.GetUint8()
	return err
}

// NewWithdrawWithheldTokensFromAccountsInstruction moves fees withheld in
// the source accounts into a destination account. NumTokenAccounts must
// match the number of sources.
//
// Accounts:
//  0. [] mint
//  1. [writable] destination
//  2. [signer] withdraw withheld authority, or [] multisig authority followed by its signers
//  3. ..3+N [writable] sources
func NewWithdrawWithheldTokensFromAccountsInstruction(
	accounts *WithdrawWithheldTokensFromAccountsInstructionAccounts,
	args *WithdrawWithheldTokensFromAccountsInstructionArgs,
) (*cpi.Call, error) {
	if err := cpi.CheckArity(int(args.NumTokenAccounts), accounts.Sources); err != nil {
		return nil, err
	}

	b, err := cpi.NewAuthorityBuilder(3, accounts.Signers, len(accounts.Sources))
	if err != nil {
		return nil, err
	}

	b.AddReadonly(accounts.Mint).
		AddWritable(accounts.Destination).
		AddAuthority(accounts.Authority, accounts.Signers).
		AddAllWritable(accounts.Sources)

	return newCall(accounts.TokenProgram, args, b)
}

type HarvestWithheldTokensToMintInstructionAccounts struct {
	Mint    *solana.AccountInfo
	Sources []*solana.AccountInfo

	// Defaults to ProgramKey when empty
	TokenProgram ed25519.PublicKey
}

type HarvestWithheldTokensToMintInstructionArgs struct{}

func (a *HarvestWithheldTokensToMintInstructionArgs) Instruction() Instruction {
	return InstructionTransferFeeExtension
}

func (a *HarvestWithheldTokensToMintInstructionArgs) Encode() ([]byte, error) {
	return newInstructionEncoder(
		2,
		InstructionTransferFeeExtension,
		uint8(TransferFeeInstructionHarvestWithheldTokensToMint),
	).Bytes()
}

func (a *HarvestWithheldTokensToMintInstructionArgs) unmarshal(_ *binary.Decoder) error {
	return nil
}

// NewHarvestWithheldTokensToMintInstruction moves fees withheld in the
// source accounts to the mint. It is permissionless.
//
// Accounts:
//  0. [writable] mint
//  1. ..1+N [writable] sources
func NewHarvestWithheldTokensToMintInstruction(
	accounts *HarvestWithheldTokensToMintInstructionAccounts,
) (*cpi.Call, error) {
	b, err := cpi.NewAuthorityBuilder(1, nil, len(accounts.Sources))
	if err != nil {
		return nil, err
	}

	b.AddWritable(accounts.Mint).AddAllWritable(accounts.Sources)

	return newCall(accounts.TokenProgram, &HarvestWithheldTokensToMintInstructionArgs{}, b)
}

type SetTransferFeeInstructionArgs struct {
	TransferFeeBasisPoints uint16
	MaximumFee             uint64
}

func (a *SetTransferFeeInstructionArgs) Instruction() Instruction {
	return InstructionTransferFeeExtension
}

func (a *SetTransferFeeInstructionArgs) Encode() ([]byte, error) {
	e := newInstructionEncoder(
		SetTransferFeeInstructionArgsSize,
		InstructionTransferFeeExtension,
		uint8(TransferFeeInstructionSetTransferFee),
	)
	e.PutUint16(a.TransferFeeBasisPoints)
	e.PutUint64(a.MaximumFee)
	return e.Bytes()
}

func (a *SetTransferFeeInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if a.TransferFeeBasisPoints, err = d.GetUint16(); err != nil {
		return err
	}
	a.MaximumFee, err = d.GetUint64()
	return err
}

// NewSetTransferFeeInstruction schedules a new transfer fee, taking effect
// two epochs after the current one.
//
// Accounts:
//  0. [writable] mint
//  1. [signer] transfer fee config authority, or [] multisig authority followed by its signers
func NewSetTransferFeeInstruction(
	accounts *MintAuthorityInstructionAccounts,
	args *SetTransferFeeInstructionArgs,
) (*cpi.Call, error) {
	return newMintAuthorityCall(accounts, args)
}
