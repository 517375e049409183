package main

import (
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"io"
	"strings"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"

	"github.com/code-payments/token-extensions/pkg/solana"
)

type accountOutput struct {
	PublicKey  string `json:"pubkey"`
	IsSigner   bool   `json:"is_signer"`
	IsWritable bool   `json:"is_writable"`
}

type instructionOutput struct {
	Program  string          `json:"program"`
	Data     string          `json:"data"`
	Accounts []accountOutput `json:"accounts"`
}

func newInstructionOutput(ix solana.Instruction) instructionOutput {
	out := instructionOutput{
		Program:  base58.Encode(ix.Program),
		Data:     hex.EncodeToString(ix.Data),
		Accounts: make([]accountOutput, len(ix.Accounts)),
	}
	for i, meta := range ix.Accounts {
		out.Accounts[i] = accountOutput{
			PublicKey:  base58.Encode(meta.PublicKey),
			IsSigner:   meta.IsSigner,
			IsWritable: meta.IsWritable,
		}
	}
	return out
}

func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// decodeInput decodes raw input in the provided encoding: raw, hex, base64,
// or base58.
func decodeInput(raw []byte, encoding string) ([]byte, error) {
	text := strings.TrimSpace(string(raw))

	switch strings.ToLower(encoding) {
	case "raw":
		return raw, nil
	case "hex":
		return hex.DecodeString(text)
	case "base64":
		return base64.StdEncoding.DecodeString(text)
	case "base58":
		return base58.Decode(text)
	default:
		return nil, errors.Errorf("unsupported encoding %q", encoding)
	}
}
