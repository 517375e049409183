package config

import (
	"context"
	"crypto/ed25519"

	"github.com/pkg/errors"
)

var (
	// ErrNoValue indicates no value was set for the config
	ErrNoValue = errors.New("config: no value set")

	// ErrShutdown indicates the use of a Config after calling Shutdown
	ErrShutdown = errors.New("config: shutdown")
)

// Config is an interface for getting a configuration value
type Config interface {
	// Get returns the latest config value
	Get(ctx context.Context) (interface{}, error)

	// Shutdown signals the config to stop all underlying resources
	Shutdown()
}

// NoopConfig is a config that does not yield any values.
var NoopConfig = &noopConfig{}

type noopConfig struct{}

func (*noopConfig) Get(_ context.Context) (interface{}, error) {
	return nil, ErrNoValue
}

func (*noopConfig) Shutdown() {
}

// Typed is a config.Config whose value has been converted to T.
type Typed[T any] interface {
	// Get returns the latest value, falling back to the last known value on error
	Get(ctx context.Context) T

	// GetSafe returns the latest value and any error encountered fetching it
	GetSafe(ctx context.Context) (T, error)

	Shutdown()
}

// Bool provides a boolean typed config.Config.
type Bool = Typed[bool]

// Int64 provides an int64 typed config.Config.
type Int64 = Typed[int64]

// String provides a string typed config.Config.
type String = Typed[string]

// PublicKey provides an ed25519.PublicKey typed config.Config. Text sources
// are base58 encoded.
type PublicKey = Typed[ed25519.PublicKey]
