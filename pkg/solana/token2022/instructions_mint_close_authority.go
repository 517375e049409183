package token2022

import (
	"crypto/ed25519"

	"github.com/code-payments/token-extensions/pkg/solana/binary"
	"github.com/code-payments/token-extensions/pkg/solana/cpi"
)

const (
	InitializeMintCloseAuthorityInstructionArgsMaxSize = (1 + // discriminator
		33) // close_authority
)

type InitializeMintCloseAuthorityInstructionArgs struct {
	CloseAuthority ed25519.PublicKey
}

func (a *InitializeMintCloseAuthorityInstructionArgs) Instruction() Instruction {
	return InstructionInitializeMintCloseAuthority
}

func (a *InitializeMintCloseAuthorityInstructionArgs) Encode() ([]byte, error) {
	e := newInstructionEncoder(InitializeMintCloseAuthorityInstructionArgsMaxSize, InstructionInitializeMintCloseAuthority)
	e.PutOptionalKey(a.CloseAuthority, binary.PresenceFlag)
	return e.Bytes()
}

func (a *InitializeMintCloseAuthorityInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	a.CloseAuthority, err = d.GetOptionalKey(binary.PresenceFlag)
	return err
}

// NewInitializeMintCloseAuthorityInstruction sets the authority allowed to
// close the mint once its supply is zero.
//
// Accounts:
//  0. [writable] mint
func NewInitializeMintCloseAuthorityInstruction(
	accounts *MintInstructionAccounts,
	args *InitializeMintCloseAuthorityInstructionArgs,
) (*cpi.Call, error) {
	return newMintCall(accounts, args)
}
