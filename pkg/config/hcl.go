package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclsimple"
)

// HCL mirror of Config. Blocks replace the YAML lists:
//
//	defaults = true
//	method {
//	  dim    = 1
//	  split  = "full"
//	  algo   = "csr"
//	  impl   = "opencl"
//	  target = [0, 1]
//	}
type hclFile struct {
	Defaults          *bool       `hcl:"defaults,optional"`
	LegacyFallthrough bool        `hcl:"legacy_fallthrough,optional"`
	Methods           []hclMethod `hcl:"method,block"`
	Log               *hclLog     `hcl:"log,block"`
	Server            *hclServer  `hcl:"server,block"`
}

type hclMethod struct {
	Dim        int               `hcl:"dim"`
	Split      string            `hcl:"split"`
	Algo       string            `hcl:"algo"`
	Impl       string            `hcl:"impl"`
	Target     []int             `hcl:"target,optional"`
	TargetName string            `hcl:"target_name,optional"`
	Legacy     string            `hcl:"legacy,optional"`
	Handler    string            `hcl:"handler,optional"`
	Extra      map[string]string `hcl:"extra,optional"`
}

type hclLog struct {
	Level  string `hcl:"level,optional"`
	Format string `hcl:"format,optional"`
	File   string `hcl:"file,optional"`
}

type hclServer struct {
	Address string `hcl:"address,optional"`
}

func parseHCL(filename string, data []byte) (*Config, error) {
	var f hclFile
	if err := hclsimple.Decode(filename, data, nil, &f); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg := &Config{
		Methods:           Methods{Default: f.Defaults},
		LegacyFallthrough: f.LegacyFallthrough,
	}
	for _, m := range f.Methods {
		def := MethodDef{
			Dim:        m.Dim,
			Split:      m.Split,
			Algo:       m.Algo,
			Impl:       m.Impl,
			Target:     m.Target,
			TargetName: m.TargetName,
			Legacy:     m.Legacy,
			Handler:    m.Handler,
		}
		if len(m.Extra) > 0 {
			def.Extra = make(map[string]any, len(m.Extra))
			for k, v := range m.Extra {
				def.Extra[k] = v
			}
		}
		cfg.Methods.Custom = append(cfg.Methods.Custom, def)
	}
	if f.Log != nil {
		cfg.Log = Log{Level: f.Log.Level, Format: f.Log.Format, File: f.Log.File}
	}
	if f.Server != nil {
		cfg.Server.Address = f.Server.Address
	}
	return cfg, nil
}
