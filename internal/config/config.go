// Package config loads the small YAML configuration file the CLI
// entrypoint (cmd/solidity-ir) uses to describe a compilation unit
// set: where source roots live and which compiler version range each
// one was built against. This is ambient scaffolding around the core
// (SPEC_FULL.md §1/§2), grounded on the pack's only complete-repo YAML
// config consumers (signadot-tony-format, robert-at-pretension-io-
// learn_vhdl/internal/config) for the "small struct + yaml.Unmarshal"
// shape, not on either repo's specific fields.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CompilationUnit names one CU's source root and the solc version
// range it was compiled with, per spec.md §3's CU descriptor.
type CompilationUnit struct {
	Name            string `yaml:"name"`
	Root            string `yaml:"root"`
	SolidityVersion string `yaml:"solidityVersion"`
	StandardJSON    string `yaml:"standardJson"`
}

// Config is the top-level shape of a solidity-ir config file.
type Config struct {
	PoolSize          int               `yaml:"poolSize"`
	CompilationUnits  []CompilationUnit `yaml:"compilationUnits"`
	LogLevel          string            `yaml:"logLevel"`
}

// Default returns a Config with conservative defaults. Load decodes
// the file on top of it, so keys the file omits keep these values.
func Default() *Config {
	return &Config{
		PoolSize: 0, // 0 selects pool.DefaultAntsPoolSize
		LogLevel: "info",
	}
}

// Load reads and strictly decodes a YAML config file at path. Unknown
// keys are rejected (yaml.v3's KnownFields), matching the
// forbid-extra-fields posture §4.1 specifies for the compiler JSON —
// applied here to the ambient config surface too, for the same
// "typo in a field name shouldn't silently no-op" reason.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	cfg := Default()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	return cfg, nil
}
