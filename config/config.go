package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/starrtours/pricingcal/core/metrics"
	"github.com/starrtours/pricingcal/infra/store"
)

type Config struct {
	Inputs  InputsConfig   `json:"inputs"`
	Output  OutputConfig   `json:"output"`
	Store   store.Config   `json:"store"`
	Metrics metrics.Config `json:"metrics"`
}

// Load reads the configuration file, applies PC_-prefixed environment
// overrides, fills defaults and validates every section.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides, e.g. PC_INPUTS__YEAR=2026.
	if err := k.Load(env.Provider("PC_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "pc_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Inputs.SetDefaults()
	cfg.Output.SetDefaults()
	cfg.Store.SetDefaults()
	cfg.Metrics.SetDefaults()
	if err := cfg.Inputs.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Output.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Metrics.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
