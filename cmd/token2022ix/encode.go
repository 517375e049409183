package main

import (
	"crypto/ed25519"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/code-payments/token-extensions/pkg/solana"
	"github.com/code-payments/token-extensions/pkg/solana/cpi"
	"github.com/code-payments/token-extensions/pkg/solana/token2022"
)

func newEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode an extension instruction and print its data and accounts",
	}

	cmd.AddCommand(
		newMintAuthorityCmd("set-transfer-fee", "Schedule a new transfer fee", func(cmd *cobra.Command, accounts *token2022.MintAuthorityInstructionAccounts) (*cpi.Call, error) {
			bps, _ := cmd.Flags().GetUint16("bps")
			maxFee, _ := cmd.Flags().GetUint64("max-fee")
			return token2022.NewSetTransferFeeInstruction(accounts, &token2022.SetTransferFeeInstructionArgs{
				TransferFeeBasisPoints: bps,
				MaximumFee:             maxFee,
			})
		}, func(cmd *cobra.Command) {
			cmd.Flags().Uint16("bps", 0, "transfer fee in basis points")
			cmd.Flags().Uint64("max-fee", 0, "maximum fee in base units")
		}),
		newMintAuthorityCmd("pause", "Pause a mint", func(_ *cobra.Command, accounts *token2022.MintAuthorityInstructionAccounts) (*cpi.Call, error) {
			return token2022.NewPauseInstruction(accounts)
		}, nil),
		newMintAuthorityCmd("resume", "Resume a paused mint", func(_ *cobra.Command, accounts *token2022.MintAuthorityInstructionAccounts) (*cpi.Call, error) {
			return token2022.NewResumeInstruction(accounts)
		}, nil),
		newMintAuthorityCmd("update-metadata-pointer", "Point a mint at new metadata", func(cmd *cobra.Command, accounts *token2022.MintAuthorityInstructionAccounts) (*cpi.Call, error) {
			address, err := optionalKeyFlag(cmd, "address")
			if err != nil {
				return nil, err
			}
			return token2022.NewUpdateMetadataPointerInstruction(accounts, &token2022.UpdateMetadataPointerInstructionArgs{MetadataAddress: address})
		}, addressFlag),
		newMintAuthorityCmd("update-group-pointer", "Point a mint at a new group", func(cmd *cobra.Command, accounts *token2022.MintAuthorityInstructionAccounts) (*cpi.Call, error) {
			address, err := optionalKeyFlag(cmd, "address")
			if err != nil {
				return nil, err
			}
			return token2022.NewUpdateGroupPointerInstruction(accounts, &token2022.UpdateGroupPointerInstructionArgs{GroupAddress: address})
		}, addressFlag),
		newMintAuthorityCmd("update-group-member-pointer", "Point a mint at a new group member", func(cmd *cobra.Command, accounts *token2022.MintAuthorityInstructionAccounts) (*cpi.Call, error) {
			address, err := optionalKeyFlag(cmd, "address")
			if err != nil {
				return nil, err
			}
			return token2022.NewUpdateGroupMemberPointerInstruction(accounts, &token2022.UpdateGroupMemberPointerInstructionArgs{MemberAddress: address})
		}, addressFlag),
		newMintAuthorityCmd("update-transfer-hook", "Set the transfer hook program of a mint", func(cmd *cobra.Command, accounts *token2022.MintAuthorityInstructionAccounts) (*cpi.Call, error) {
			program, err := optionalKeyFlag(cmd, "hook-program")
			if err != nil {
				return nil, err
			}
			return token2022.NewUpdateTransferHookInstruction(accounts, &token2022.UpdateTransferHookInstructionArgs{ProgramID: program})
		}, func(cmd *cobra.Command) {
			cmd.Flags().String("hook-program", "", "hook program id, empty to disable")
		}),
		newWithdrawFromAccountsCmd(),
		newHarvestCmd(),
	)
	return cmd
}

func addressFlag(cmd *cobra.Command) {
	cmd.Flags().String("address", "", "new address, empty to clear")
}

type mintAuthorityBuilder func(cmd *cobra.Command, accounts *token2022.MintAuthorityInstructionAccounts) (*cpi.Call, error)

func newMintAuthorityCmd(use, short string, build mintAuthorityBuilder, flags func(*cobra.Command)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mint, err := accountFlag(cmd, "mint", false)
			if err != nil {
				return err
			}
			authority, signers, err := authorityFlags(cmd)
			if err != nil {
				return err
			}

			call, err := build(cmd, &token2022.MintAuthorityInstructionAccounts{
				Mint:         mint,
				Authority:    authority,
				Signers:      signers,
				TokenProgram: programKey(cmd),
			})
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), newInstructionOutput(call.Instruction))
		},
	}

	cmd.Flags().String("mint", "", "mint address")
	addAuthorityFlags(cmd)
	if flags != nil {
		flags(cmd)
	}
	_ = cmd.MarkFlagRequired("mint")
	return cmd
}

func newWithdrawFromAccountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw-withheld-from-accounts",
		Short: "Withdraw fees withheld in token accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mint, err := accountFlag(cmd, "mint", false)
			if err != nil {
				return err
			}
			destination, err := accountFlag(cmd, "destination", false)
			if err != nil {
				return err
			}
			authority, signers, err := authorityFlags(cmd)
			if err != nil {
				return err
			}
			sources, err := accountsFlag(cmd, "sources", false)
			if err != nil {
				return err
			}
			if len(sources) > 255 {
				return errors.Wrapf(solana.ErrInvalidArgument, "%d sources", len(sources))
			}

			call, err := token2022.NewWithdrawWithheldTokensFromAccountsInstruction(
				&token2022.WithdrawWithheldTokensFromAccountsInstructionAccounts{
					Mint:         mint,
					Destination:  destination,
					Authority:    authority,
					Signers:      signers,
					Sources:      sources,
					TokenProgram: programKey(cmd),
				},
				&token2022.WithdrawWithheldTokensFromAccountsInstructionArgs{
					NumTokenAccounts: uint8(len(sources)),
				},
			)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), newInstructionOutput(call.Instruction))
		},
	}

	cmd.Flags().String("mint", "", "mint address")
	cmd.Flags().String("destination", "", "destination token account")
	cmd.Flags().StringSlice("sources", nil, "token accounts to withdraw from")
	addAuthorityFlags(cmd)
	_ = cmd.MarkFlagRequired("mint")
	_ = cmd.MarkFlagRequired("destination")
	return cmd
}

func newHarvestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "harvest-withheld-to-mint",
		Short: "Harvest fees withheld in token accounts to the mint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mint, err := accountFlag(cmd, "mint", false)
			if err != nil {
				return err
			}
			sources, err := accountsFlag(cmd, "sources", false)
			if err != nil {
				return err
			}

			call, err := token2022.NewHarvestWithheldTokensToMintInstruction(&token2022.HarvestWithheldTokensToMintInstructionAccounts{
				Mint:         mint,
				Sources:      sources,
				TokenProgram: programKey(cmd),
			})
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), newInstructionOutput(call.Instruction))
		},
	}

	cmd.Flags().String("mint", "", "mint address")
	cmd.Flags().StringSlice("sources", nil, "token accounts to harvest from")
	_ = cmd.MarkFlagRequired("mint")
	return cmd
}

func addAuthorityFlags(cmd *cobra.Command) {
	cmd.Flags().String("authority", "", "authority address, or the multisig account when --signers is set")
	cmd.Flags().StringSlice("signers", nil, "multisig signer addresses")
	_ = cmd.MarkFlagRequired("authority")
}

func authorityFlags(cmd *cobra.Command) (*solana.AccountInfo, []*solana.AccountInfo, error) {
	signers, err := accountsFlag(cmd, "signers", true)
	if err != nil {
		return nil, nil, err
	}

	authority, err := accountFlag(cmd, "authority", len(signers) == 0)
	if err != nil {
		return nil, nil, err
	}
	return authority, signers, nil
}

func accountFlag(cmd *cobra.Command, name string, isSigner bool) (*solana.AccountInfo, error) {
	value, _ := cmd.Flags().GetString(name)
	key, err := parseKey(value)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid --%s", name)
	}

	return &solana.AccountInfo{
		Key:      key,
		IsSigner: isSigner,
	}, nil
}

func accountsFlag(cmd *cobra.Command, name string, isSigner bool) ([]*solana.AccountInfo, error) {
	values, _ := cmd.Flags().GetStringSlice(name)

	infos := make([]*solana.AccountInfo, len(values))
	for i, value := range values {
		key, err := parseKey(value)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid --%s entry %d", name, i)
		}
		infos[i] = &solana.AccountInfo{
			Key:      key,
			IsSigner: isSigner,
		}
	}
	return infos, nil
}

func optionalKeyFlag(cmd *cobra.Command, name string) (ed25519.PublicKey, error) {
	value, _ := cmd.Flags().GetString(name)
	if len(value) == 0 {
		return nil, nil
	}

	key, err := parseKey(value)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid --%s", name)
	}
	return key, nil
}

func parseKey(value string) (ed25519.PublicKey, error) {
	decoded, err := base58.Decode(value)
	if err != nil {
		return nil, err
	}

	if len(decoded) != ed25519.PublicKeySize {
		return nil, errors.Errorf("expected %d bytes, got %d", ed25519.PublicKeySize, len(decoded))
	}
	return decoded, nil
}

func programKey(cmd *cobra.Command) ed25519.PublicKey {
	program := token2022.LoadProgramKey(cmd.Context())
	logrus.StandardLogger().WithFields(logrus.Fields{
		"type":    "cmd/token2022ix",
		"program": base58.Encode(program),
	}).Debug("using token program")
	return program
}
