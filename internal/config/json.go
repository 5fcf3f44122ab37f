package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// parseJSON loads a partial [Config] from a JSON file.
func parseJSON(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading json config %s: %w", path, err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error decoding json config %s: %w", path, err)
	}

	return cfg, nil
}
