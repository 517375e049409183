package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/code-payments/token-extensions/pkg/solana/token2022"
)

type decodeOutput struct {
	Instruction string      `json:"instruction"`
	Variant     string      `json:"variant"`
	Args        interface{} `json:"args"`
}

func newDecodeCmd() *cobra.Command {
	var encoding string

	cmd := &cobra.Command{
		Use:   "decode <data>",
		Short: "Decode extension instruction data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := decodeInput([]byte(args[0]), encoding)
			if err != nil {
				return err
			}

			decoded, err := token2022.UnmarshalInstructionData(data)
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), decodeOutput{
				Instruction: decoded.Instruction().String(),
				Variant:     fmt.Sprintf("%T", decoded),
				Args:        decoded,
			})
		},
	}

	cmd.Flags().StringVar(&encoding, "encoding", "hex", "input encoding: hex, base64, or base58")
	return cmd
}
