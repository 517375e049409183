package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	cobra.CheckErr(newRootCmd().ExecuteContext(ctx))
}

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "token2022ix",
		Short:         "Encode, decode, and inspect Token-2022 extension instructions and accounts",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			config, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			configureLogger(config)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "configuration file path")

	cmd.AddCommand(
		newEncodeCmd(),
		newDecodeCmd(),
		newScanCmd(),
	)
	return cmd
}
