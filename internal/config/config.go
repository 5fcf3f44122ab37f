// Package config assembles the poller configuration from environment
// variables, command-line flags, and an optional JSON file. Sources are
// merged in that order of precedence with mergo, mirroring the layering the
// rest of the stack expects: an explicitly set value is never overwritten by
// a later, lower-priority source.
package config

import (
	"time"
)

// Config is the top-level configuration for the sogsync poller.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type Config struct {
	// Identity holds the local user's long-term key material.
	Identity Identity `envPrefix:"IDENTITY_"`

	// Storage holds the local database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Poller holds poll scheduling and transport timeouts.
	Poller Poller `envPrefix:"POLLER_"`

	// JSONFilePath is the optional path to a JSON configuration file, merged
	// on top of env and flag values.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG" json:"-"`
}

// Identity holds the local user's signing key.
type Identity struct {
	// PrivateKeyHex is the 64-byte Ed25519 private key, hex encoded. The
	// public half determines the user's real identity on every server.
	// Env: IDENTITY_PRIVATE_KEY
	PrivateKeyHex string `env:"PRIVATE_KEY" json:"private_key"`
}

// Storage holds local persistence settings.
type Storage struct {
	// DSN is the sqlite database path, or ":memory:" for an ephemeral store.
	// Env: STORAGE_DSN
	DSN string `env:"DSN" json:"dsn"`
}

// Poller holds scheduling settings for the background poll job.
type Poller struct {
	// Servers is the list of community server base URLs to poll.
	// Env: POLLER_SERVERS (comma separated)
	Servers []string `env:"SERVERS" json:"servers"`

	// Interval is the delay between poll cycles for one server (e.g. "30s").
	// Env: POLLER_INTERVAL
	Interval time.Duration `env:"INTERVAL" json:"interval"`

	// RequestTimeout bounds a single batch poll HTTP request.
	// Env: POLLER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" json:"request_timeout"`
}

// GetConfig builds the merged configuration from all sources.
func GetConfig() (*Config, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
