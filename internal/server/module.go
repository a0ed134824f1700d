package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/azint/methodreg/pkg/config"
)

// Module serves the catalog on cfg.Server.Address for the lifetime of the
// fx application. It requires the values provided by methodfx.Module.
var Module = fx.Module("server",
	fx.Provide(fx.Annotate(NewRouter, fx.ResultTags(`name:"catalog"`))),
	fx.Invoke(registerHooks),
)

type serverDeps struct {
	fx.In
	Config  *config.Config
	Logger  *zap.Logger
	Handler http.Handler `name:"catalog"`
}

func registerHooks(lc fx.Lifecycle, d serverDeps) {
	srv := &http.Server{
		Addr:              d.Config.Server.Address,
		Handler:           d.Handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	logger := d.Logger.Named("server")

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Info("server starting", zap.String("addr", ln.Addr().String()))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("server stopping")
			return srv.Shutdown(ctx)
		},
	})
}
