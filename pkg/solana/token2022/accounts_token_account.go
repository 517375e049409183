package token2022

import (
	"github.com/code-payments/token-extensions/pkg/solana"
)

// MemoTransfer requires memos on incoming transfers to a token account.
type MemoTransfer struct {
	RequireIncomingTransferMemos bool
}

func (m *MemoTransfer) ExtensionType() ExtensionType {
	return ExtensionTypeMemoTransfer
}

func (m *MemoTransfer) Unmarshal(data []byte) error {
	d, err := newExtensionDecoder(m.ExtensionType(), data)
	if err != nil {
		return err
	}

	if m.RequireIncomingTransferMemos, err = d.GetBool(); err != nil {
		return invalidExtension(m.ExtensionType(), err)
	}
	return nil
}

func MemoTransferFromAccount(info *solana.AccountInfo) (*MemoTransfer, error) {
	return ExtensionFromAccount[MemoTransfer](info)
}

// CpiGuard restricts what a program may do with a token account during a
// cross-program call.
type CpiGuard struct {
	LockCpi bool
}

func (g *CpiGuard) ExtensionType() ExtensionType {
	return ExtensionTypeCpiGuard
}

func (g *CpiGuard) Unmarshal(data []byte) error {
	d, err := newExtensionDecoder(g.ExtensionType(), data)
	if err != nil {
		return err
	}

	if g.LockCpi, err = d.GetBool(); err != nil {
		return invalidExtension(g.ExtensionType(), err)
	}
	return nil
}

func CpiGuardFromAccount(info *solana.AccountInfo) (*CpiGuard, error) {
	return ExtensionFromAccount[CpiGuard](info)
}

type TransferHookAccount struct {
	Transferring bool
}

func (a *TransferHookAccount) ExtensionType() ExtensionType {
	return ExtensionTypeTransferHookAccount
}

func (a *TransferHookAccount) Unmarshal(data []byte) error {
	d, err := newExtensionDecoder(a.ExtensionType(), data)
	if err != nil {
		return err
	}

	if a.Transferring, err = d.GetBool(); err != nil {
		return invalidExtension(a.ExtensionType(), err)
	}
	return nil
}

func TransferHookAccountFromAccount(info *solana.AccountInfo) (*TransferHookAccount, error) {
	return ExtensionFromAccount[TransferHookAccount](info)
}
