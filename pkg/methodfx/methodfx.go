// Package methodfx wires a method registry, its configuration, logging and
// metrics into an fx application.
//
//	app := fx.New(
//		methodfx.Module(methodfx.WithConfigFile("methodreg.yaml")),
//		fx.Invoke(func(r *method.Registry) { ... }),
//	)
package methodfx

import (
	"context"
	"io"
	"os"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/azint/methodreg/internal/logging"
	"github.com/azint/methodreg/internal/metrics"
	"github.com/azint/methodreg/pkg/config"
	"github.com/azint/methodreg/pkg/method"
)

type options struct {
	path      string
	cfg       *config.Config
	logOut    io.Writer
	overrides []func(*config.Config)
}

// Option configures Module.
type Option func(*options)

// WithConfigFile loads the configuration from path.
func WithConfigFile(path string) Option { return func(o *options) { o.path = path } }

// WithConfig uses cfg instead of a file. It takes precedence over WithConfigFile.
func WithConfig(cfg *config.Config) Option { return func(o *options) { o.cfg = cfg } }

// WithLogOutput sends log entries to w instead of stderr.
func WithLogOutput(w io.Writer) Option { return func(o *options) { o.logOut = w } }

// WithOverride applies fn to the loaded configuration, e.g. for command-line flags.
func WithOverride(fn func(*config.Config)) Option {
	return func(o *options) { o.overrides = append(o.overrides, fn) }
}

// Module provides *config.Config, *zap.Logger, *metrics.Collector and
// *method.Registry.
func Module(opts ...Option) fx.Option {
	o := options{logOut: os.Stderr}
	for _, opt := range opts {
		opt(&o)
	}
	return fx.Module("methodreg",
		fx.Provide(
			func() (*config.Config, error) { return loadConfig(o) },
			func(cfg *config.Config) (*zap.Logger, error) { return logging.New(cfg.Log, o.logOut) },
			func() (*metrics.Collector, error) { return metrics.NewCollector(nil) },
			provideRegistry,
		),
		fx.Invoke(registerSync),
	)
}

// EventLogger routes fx's own events to the provided logger at debug level.
var EventLogger = fx.WithLogger(func(l *zap.Logger) fxevent.Logger {
	zl := &fxevent.ZapLogger{Logger: l.Named("fx")}
	zl.UseLogLevel(zap.DebugLevel)
	return zl
})

func loadConfig(o options) (*config.Config, error) {
	var cfg *config.Config
	switch {
	case o.cfg != nil:
		c := *o.cfg
		cfg = &c
	case o.path != "":
		loaded, err := config.LoadConfig(o.path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	default:
		cfg = config.Default()
	}
	for _, fn := range o.overrides {
		fn(cfg)
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func provideRegistry(cfg *config.Config, logger *zap.Logger, col *metrics.Collector) *method.Registry {
	r := config.NewRegistry(cfg,
		method.WithLogger(logger.Named("registry")),
		method.WithObserver(col),
	)
	logger.Debug("method registry ready",
		zap.Int("methods", r.Len()),
		zap.Bool("defaults", cfg.Methods.UseDefault()),
		zap.Bool("legacy_fallthrough", cfg.LegacyFallthrough),
	)
	return r
}

func registerSync(lc fx.Lifecycle, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			// Sync reports EINVAL for stderr on most terminals.
			_ = logger.Sync()
			return nil
		},
	})
}
