package config

import (
	"flag"
	"os"
	"strings"
	"time"
)

// parseFlags reads the command-line flags into a partial [Config]. Flags left
// at their zero value do not shadow env or JSON values during the merge.
func parseFlags() *Config {
	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)

	cfg := &Config{}
	var servers string
	fs.StringVar(&cfg.Storage.DSN, "d", "", "path to the local sqlite database")
	fs.StringVar(&cfg.Identity.PrivateKeyHex, "k", "", "hex-encoded ed25519 private key")
	fs.StringVar(&servers, "s", "", "comma-separated community server base URLs")
	fs.DurationVar(&cfg.Poller.Interval, "i", 0, "poll interval, e.g. 30s")
	fs.DurationVar(&cfg.Poller.RequestTimeout, "t", 0, "batch request timeout")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "path to a JSON config file")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "path to a JSON config file")

	// flag errors are reported, not fatal: remaining sources may still
	// produce a valid config
	_ = fs.Parse(os.Args[1:])

	if servers != "" {
		cfg.Poller.Servers = strings.Split(servers, ",")
	}

	return cfg
}

// Defaults applied after the merge when no source set a value.
const (
	defaultPollInterval   = 30 * time.Second
	defaultRequestTimeout = 2 * time.Minute
)
