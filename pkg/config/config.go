// Package config provides configuration and catalog loading for methodreg.
package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"github.com/azint/methodreg/internal"
)

//go:embed methods.yaml
var defaultMethodsYAML []byte

//go:embed schema.json
var schemaJSON []byte

// Parsed at init time - failure here means corrupted embedded files.
var (
	defaultMethods []MethodDef
	configSchema   *jsonschema.Schema
)

func init() {
	var methodsFile MethodsFile
	defaultMethods = internal.Must(methodsFile, yaml.Unmarshal(defaultMethodsYAML, &methodsFile)).Methods

	schemaDoc := internal.Must(jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON)))
	compiler := jsonschema.NewCompiler()
	internal.Must(struct{}{}, compiler.AddResource("schema.json", schemaDoc))
	configSchema = internal.Must(compiler.Compile("schema.json"))
}

// DefaultMethods returns a copy of the built-in catalog.
func DefaultMethods() []MethodDef {
	result := make([]MethodDef, len(defaultMethods))
	copy(result, defaultMethods)
	return result
}

// LoadConfig loads a configuration file. The format is chosen by extension:
// .yaml/.yml and .toml are validated against the JSON Schema, .hcl is
// checked by its block structure.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg *Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		cfg, err = parseYAML(data)
	case ".toml":
		cfg, err = parseTOML(data)
	case ".hcl":
		cfg, err = parseHCL(path, data)
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}
	if err != nil {
		return nil, err
	}

	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func parseYAML(data []byte) (*Config, error) {
	// Parse YAML to generic interface for schema validation
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := validateSchema(raw); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

func parseTOML(data []byte) (*Config, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if raw == nil {
		raw = map[string]any{}
	}
	if err := validateSchema(raw); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	// go-toml cannot decode an array of tables into Methods, so the simple
	// form goes through a mirror struct.
	if _, ok := raw["methods"].([]any); ok {
		var list tomlListConfig
		if err := toml.Unmarshal(data, &list); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
		return list.config(), nil
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// tomlListConfig is Config with the simple methods form.
type tomlListConfig struct {
	Methods           []MethodDef `toml:"methods"`
	LegacyFallthrough bool        `toml:"legacy_fallthrough"`
	Log               Log         `toml:"log"`
	Server            Server      `toml:"server"`
}

func (c *tomlListConfig) config() *Config {
	return &Config{
		Methods:           Methods{Custom: c.Methods},
		LegacyFallthrough: c.LegacyFallthrough,
		Log:               c.Log,
		Server:            c.Server,
	}
}

// validateSchema validates data against the embedded JSON Schema.
func validateSchema(data any) error {
	if data == nil {
		data = map[string]any{}
	}
	return configSchema.Validate(data)
}

// Validate checks the settings the schema cannot express for every format.
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error (got %q)", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("log.format must be json or console (got %q)", c.Log.Format)
	}
	for i, m := range c.Methods.Custom {
		if m.Dim != 1 && m.Dim != 2 {
			return fmt.Errorf("methods[%d]: dim must be 1 or 2 (got %d)", i, m.Dim)
		}
		if m.Split == "" || m.Algo == "" || m.Impl == "" {
			return fmt.Errorf("methods[%d]: split, algo and impl are required", i)
		}
		if len(m.Target) != 0 && len(m.Target) != 2 {
			return fmt.Errorf("methods[%d]: target must be [platform, device]", i)
		}
	}
	return nil
}
