package memory

import (
	"github.com/code-payments/token-extensions/pkg/config"
	"github.com/code-payments/token-extensions/pkg/config/env"
	memory_config "github.com/code-payments/token-extensions/pkg/config/memory"
	"github.com/code-payments/token-extensions/pkg/config/wrapper"
	"github.com/code-payments/token-extensions/pkg/solana/cpi"
)

const (
	envConfigPrefix = "CPI_"

	MaxAccountsConfigEnvName = envConfigPrefix + "MAX_ACCOUNTS"
	defaultMaxAccounts       = cpi.MaxCPIAccounts

	StrictSignersConfigEnvName = envConfigPrefix + "STRICT_SIGNERS"
	defaultStrictSigners       = true
)

type conf struct {
	maxAccounts   config.Int64
	strictSigners config.Bool
}

// ConfigProvider defines how config values are pulled
type ConfigProvider func() *conf

// WithEnvConfigs returns configuration pulled from environment variables
func WithEnvConfigs() ConfigProvider {
	return func() *conf {
		return &conf{
			maxAccounts:   env.NewInt64Config(MaxAccountsConfigEnvName, defaultMaxAccounts),
			strictSigners: env.NewBoolConfig(StrictSignersConfigEnvName, defaultStrictSigners),
		}
	}
}

type testOverrides struct {
	maxAccounts   int64
	strictSigners bool
}

func withManualTestOverrides(overrides *testOverrides) ConfigProvider {
	return func() *conf {
		return &conf{
			maxAccounts:   wrapper.NewInt64Config(memory_config.NewConfig(overrides.maxAccounts), defaultMaxAccounts),
			strictSigners: wrapper.NewBoolConfig(memory_config.NewConfig(overrides.strictSigners), defaultStrictSigners),
		}
	}
}
