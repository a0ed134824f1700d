package config

import (
	"github.com/azint/methodreg/pkg/method"
)

// NewRegistry creates a method registry populated from cfg: the built-in
// catalog first (unless disabled), then the custom methods, so a custom
// method with the same key replaces the built-in one.
// opts are applied after the options derived from cfg.
func NewRegistry(cfg *Config, opts ...method.Option) *method.Registry {
	all := append([]method.Option{method.WithLegacyFallthrough(cfg.LegacyFallthrough)}, opts...)
	r := method.NewRegistry(all...)
	if cfg.Methods.UseDefault() {
		for _, m := range defaultMethods {
			r.Register(m.Descriptor())
		}
	}
	for _, m := range cfg.Methods.Custom {
		r.Register(m.Descriptor())
	}
	return r
}
