package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/code-payments/token-extensions/pkg/solana/token2022"
)

type extensionOutput struct {
	Type   uint16      `json:"type"`
	Name   string      `json:"name"`
	Length int         `json:"length"`
	State  interface{} `json:"state,omitempty"`
}

type scanOutput struct {
	AccountType string             `json:"account_type"`
	Size        int                `json:"size"`
	Mint        *token2022.Mint    `json:"mint,omitempty"`
	Account     *token2022.Account `json:"account,omitempty"`
	Extensions  []extensionOutput  `json:"extensions"`
}

func newScanCmd() *cobra.Command {
	var encoding string

	cmd := &cobra.Command{
		Use:   "scan <file|->",
		Short: "List the extensions present in a dump of account data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var raw []byte
			var err error
			if args[0] == "-" {
				raw, err = io.ReadAll(cmd.InOrStdin())
			} else {
				raw, err = os.ReadFile(args[0])
			}
			if err != nil {
				return errors.Wrap(err, "failed to read account data")
			}

			data, err := decodeInput(raw, encoding)
			if err != nil {
				return errors.Wrap(err, "failed to decode account data")
			}

			return writeJSON(cmd.OutOrStdout(), scanAccount(data))
		},
	}

	cmd.Flags().StringVar(&encoding, "encoding", "raw", "input encoding: raw, hex, base64, or base58")
	return cmd
}

func scanAccount(data []byte) scanOutput {
	log := logrus.StandardLogger().WithField("type", "cmd/token2022ix")

	out := scanOutput{
		AccountType: "base",
		Size:        len(data),
		Extensions:  []extensionOutput{},
	}

	accountType, ok := token2022.GetAccountType(data)
	if ok {
		out.AccountType = accountType.String()
	}

	switch {
	case accountType == token2022.AccountTypeMint || len(data) == token2022.MintSize:
		var mint token2022.Mint
		if err := mint.Unmarshal(data); err != nil {
			log.WithError(err).Warn("failed to decode base mint state")
		} else {
			out.Mint = &mint
		}
	case accountType == token2022.AccountTypeAccount || len(data) == token2022.AccountSize:
		var account token2022.Account
		if err := account.Unmarshal(data); err != nil {
			log.WithError(err).Warn("failed to decode base account state")
		} else {
			out.Account = &account
		}
	}

	if !ok {
		return out
	}

	for _, extensionType := range token2022.GetExtensionTypes(data) {
		info, _ := token2022.GetExtensionInfo(extensionType)
		entry := extensionOutput{
			Type: uint16(extensionType),
			Name: info.Name,
		}

		payload, ok := token2022.GetExtensionBytes(data, extensionType)
		if !ok {
			log.WithField("extension", info.Name).Warn("extension has an unexpected length")
			out.Extensions = append(out.Extensions, entry)
			continue
		}
		entry.Length = len(payload)

		if state, ok := token2022.NewExtensionState(extensionType); ok {
			if err := state.Unmarshal(payload); err != nil {
				log.WithError(err).WithField("extension", info.Name).Warn("failed to decode extension")
			} else {
				entry.State = state
			}
		}

		out.Extensions = append(out.Extensions, entry)
	}

	return out
}
