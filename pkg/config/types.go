package config

import (
	"fmt"
	"maps"

	"gopkg.in/yaml.v3"

	"github.com/azint/methodreg/pkg/method"
)

// MethodDef declares one integration method in a catalog file.
type MethodDef struct {
	Dim   int    `yaml:"dim" toml:"dim" json:"dim"`
	Split string `yaml:"split" toml:"split" json:"split"`
	Algo  string `yaml:"algo" toml:"algo" json:"algo"`
	Impl  string `yaml:"impl" toml:"impl" json:"impl"`
	// Target is [platform, device]; empty when device agnostic.
	Target     []int  `yaml:"target,omitempty" toml:"target,omitempty" json:"target,omitempty"`
	TargetName string `yaml:"target_name,omitempty" toml:"target_name,omitempty" json:"target_name,omitempty"`
	Legacy     string `yaml:"legacy,omitempty" toml:"legacy,omitempty" json:"legacy,omitempty"`
	// Handler is the symbolic name of the implementing routine.
	Handler string         `yaml:"handler,omitempty" toml:"handler,omitempty" json:"handler,omitempty"`
	Extra   map[string]any `yaml:"extra,omitempty" toml:"extra,omitempty" json:"extra,omitempty"`
}

// Descriptor converts d into a method.Descriptor ready for registration.
func (d MethodDef) Descriptor() method.Descriptor {
	desc := method.Descriptor{
		Dim:        d.Dim,
		Split:      d.Split,
		Algo:       d.Algo,
		Impl:       d.Impl,
		TargetName: d.TargetName,
		Legacy:     d.Legacy,
		Extra:      maps.Clone(d.Extra),
	}
	if len(d.Target) == 2 {
		desc.Target = method.NewTarget(d.Target[0], d.Target[1])
	}
	if d.Handler != "" {
		desc.Handler = d.Handler
	}
	return desc
}

// MethodsFile represents the structure of methods.yaml.
type MethodsFile struct {
	Methods []MethodDef `yaml:"methods"`
}

// Methods can be a simple array of MethodDef or an object with custom/default fields.
// Simple form: methods: []
// Extended form: methods: { custom: [], default: true }
type Methods struct {
	// Custom are user-defined methods, registered after the defaults
	Custom []MethodDef `toml:"custom"`
	// Default indicates whether to include the built-in catalog (default: true)
	Default *bool `toml:"default"`
}

// UseDefault returns whether the built-in catalog should be registered.
func (m *Methods) UseDefault() bool {
	if m.Default == nil {
		return true
	}
	return *m.Default
}

// UnmarshalYAML accepts either an array (simple form) or an object with
// "custom" and "default" fields.
func (m *Methods) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var arr []MethodDef
		if err := value.Decode(&arr); err != nil {
			return err // unreachable via LoadConfig: schema validation catches malformed arrays first
		}
		m.Custom = arr
		return nil
	case yaml.MappingNode:
		var obj struct {
			Custom  []MethodDef `yaml:"custom"`
			Default *bool       `yaml:"default"`
		}
		if err := value.Decode(&obj); err != nil {
			return err // unreachable via LoadConfig: schema validation catches malformed objects first
		}
		m.Custom = obj.Custom
		m.Default = obj.Default
		return nil
	default:
		return fmt.Errorf("methods must be an array or an object with 'custom' and 'default' fields")
	}
}

// MarshalYAML implements custom marshaling for Methods.
func (m Methods) MarshalYAML() (any, error) {
	if m.Default != nil {
		return map[string]any{
			"custom":  m.Custom,
			"default": *m.Default,
		}, nil
	}
	return m.Custom, nil
}

// Log configures logging.
type Log struct {
	// Level is one of debug, info, warn, error
	Level string `yaml:"level" toml:"level" json:"level,omitempty"`
	// Format is json or console
	Format string `yaml:"format" toml:"format" json:"format,omitempty"`
	// File, if set, receives a rotated copy of the log
	File string `yaml:"file" toml:"file" json:"file,omitempty"`
}

// Server configures the HTTP catalog.
type Server struct {
	Address string `yaml:"address" toml:"address" json:"address,omitempty"`
}

// Config represents the user configuration file.
type Config struct {
	// Methods defines the catalog (custom methods and default toggle)
	Methods Methods `yaml:"methods" toml:"methods" json:"methods,omitempty"`
	// LegacyFallthrough makes unmatched legacy names select every method of the dimension
	LegacyFallthrough bool `yaml:"legacy_fallthrough" toml:"legacy_fallthrough" json:"legacy_fallthrough,omitempty"`
	// Log configures logging
	Log Log `yaml:"log" toml:"log" json:"log,omitempty"`
	// Server configures the HTTP catalog
	Server Server `yaml:"server" toml:"server" json:"server,omitempty"`
}

// SetDefaults sets default values for optional fields.
func (c *Config) SetDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "json"
	}
	if c.Server.Address == "" {
		c.Server.Address = ":8080"
	}
}

// Default returns a configuration with the built-in catalog and no custom methods.
func Default() *Config {
	cfg := &Config{}
	cfg.SetDefaults()
	return cfg
}
