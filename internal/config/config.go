package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/AndrewAltimit/sleeper-detect/internal/discovery"
	"github.com/AndrewAltimit/sleeper-detect/internal/pipeline"
	"github.com/AndrewAltimit/sleeper-detect/internal/probe"
)

// #region config
// Config is the process-level configuration shared by the commands. Values
// come from package defaults, overridden by an optional YAML file; commands
// layer env vars on top of that.
type Config struct {
	IntrospectAddr string `yaml:"introspect_addr"`
	DBPath         string `yaml:"db_path"`
	LogLevel       string `yaml:"log_level"`
	LogFile        string `yaml:"log_file"`

	Probe     probe.Config     `yaml:"probe"`
	Discovery discovery.Config `yaml:"discovery"`
	Pipeline  pipeline.Config  `yaml:"pipeline"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		IntrospectAddr: "localhost:50051",
		DBPath:         "probes.db",
		LogLevel:       "info",
		Probe:          probe.DefaultConfig(),
		Discovery:      discovery.DefaultConfig(),
		Pipeline:       pipeline.DefaultConfig(),
	}
}

// #endregion config

// #region load
// Load reads the YAML file at path over the defaults. An empty path returns
// the defaults unchanged; a missing file is an error, since an explicitly
// configured path that does not exist usually means a typo.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// #endregion load
