package config

import (
	"encoding/hex"
	"errors"
	"fmt"
)

var (
	ErrMissingDSN        = errors.New("storage DSN must be set")
	ErrMissingPrivateKey = errors.New("identity private key must be set")
	ErrInvalidPrivateKey = errors.New("identity private key must be 64 hex-encoded bytes")
	ErrMissingServers    = errors.New("at least one community server must be configured")
)

// validate checks the merged config and fills in scheduling defaults.
func (c *Config) validate() error {
	if c.Storage.DSN == "" {
		return ErrMissingDSN
	}
	if c.Identity.PrivateKeyHex == "" {
		return ErrMissingPrivateKey
	}
	raw, err := hex.DecodeString(c.Identity.PrivateKeyHex)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
	}
	if len(raw) != 64 {
		return fmt.Errorf("%w: got %d bytes", ErrInvalidPrivateKey, len(raw))
	}
	if len(c.Poller.Servers) == 0 {
		return ErrMissingServers
	}

	if c.Poller.Interval <= 0 {
		c.Poller.Interval = defaultPollInterval
	}
	if c.Poller.RequestTimeout <= 0 {
		c.Poller.RequestTimeout = defaultRequestTimeout
	}

	return nil
}
