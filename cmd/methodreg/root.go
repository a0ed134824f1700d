package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/azint/methodreg/pkg/config"
	"github.com/azint/methodreg/pkg/method"
	"github.com/azint/methodreg/pkg/methodfx"
)

type rootFlags struct {
	configFile string
	noDefaults bool
	logLevel   string
	logFormat  string
	logFile    string
}

func newRootCmd() *cobra.Command {
	f := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "methodreg",
		Short: "Azimuthal integration method registry",
		Long: `methodreg keeps the catalog of azimuthal integration methods, keyed by
dimension, pixel splitting, algorithm and implementation, and selects
methods by partial description or by legacy name.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&f.configFile, "config", "c", "", "configuration file (.yaml, .yml, .toml or .hcl)")
	pf.BoolVar(&f.noDefaults, "no-defaults", false, "do not register the built-in catalog")
	pf.StringVar(&f.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVar(&f.logFormat, "log-format", "", "log format (json, console)")
	pf.StringVar(&f.logFile, "log-file", "", "also write logs to this rotated file")

	cmd.AddCommand(
		newListCmd(f),
		newSelectCmd(f),
		newLegacyCmd(f),
		newParseCmd(f),
		newServeCmd(f),
		newVersionCmd(),
	)
	return cmd
}

// moduleOptions turns the persistent flags into methodfx options. Flags
// override the configuration file only when they were given.
func (f *rootFlags) moduleOptions(cmd *cobra.Command) []methodfx.Option {
	opts := []methodfx.Option{methodfx.WithLogOutput(cmd.ErrOrStderr())}
	if f.configFile != "" {
		opts = append(opts, methodfx.WithConfigFile(f.configFile))
	}
	opts = append(opts, methodfx.WithOverride(func(c *config.Config) {
		if f.noDefaults {
			off := false
			c.Methods.Default = &off
		}
		if f.logLevel != "" {
			c.Log.Level = f.logLevel
		}
		if f.logFormat != "" {
			c.Log.Format = f.logFormat
		}
		if f.logFile != "" {
			c.Log.File = f.logFile
		}
	}))
	return opts
}

// withRegistry builds the registry from the flags and calls fn with it.
func (f *rootFlags) withRegistry(cmd *cobra.Command, fn func(*method.Registry) error) error {
	var reg *method.Registry
	app := fx.New(
		methodfx.Module(f.moduleOptions(cmd)...),
		methodfx.EventLogger,
		fx.Populate(&reg),
	)
	if err := app.Err(); err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}

	ctx := cmd.Context()
	if err := app.Start(ctx); err != nil {
		return err
	}
	defer func() { _ = app.Stop(ctx) }()

	return fn(reg)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "methodreg version %s\n", Version)
		},
	}
}
