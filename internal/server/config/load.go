package config

import (
	"fmt"

	"github.com/yndnr/mudb-go/internal/infra/confloader"
)

// Load builds the server configuration from defaults, the optional YAML
// file at path, MUDB_* environment variables and flag overrides (dotted
// keys), in increasing order of precedence, and verifies the result.
func Load(path string, overrides map[string]any) (*ServerConfig, error) {
	cfg := Default()

	loader := confloader.NewLoader(
		confloader.WithConfigFile(path),
		confloader.WithOverrides(overrides),
	)
	if err := loader.Load(cfg); err != nil {
		return nil, err
	}

	if err := Verify(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
