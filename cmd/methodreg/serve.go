package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/azint/methodreg/internal/server"
	"github.com/azint/methodreg/pkg/config"
	"github.com/azint/methodreg/pkg/methodfx"
)

func newServeCmd(f *rootFlags) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the method catalog over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := f.moduleOptions(cmd)
			if addr != "" {
				opts = append(opts, methodfx.WithOverride(func(c *config.Config) { c.Server.Address = addr }))
			}
			app := fx.New(
				methodfx.Module(opts...),
				methodfx.EventLogger,
				server.Module,
			)
			if err := app.Err(); err != nil {
				return fmt.Errorf("failed to build server: %w", err)
			}

			ctx := cmd.Context()
			if err := app.Start(ctx); err != nil {
				return err
			}

			select {
			case <-app.Wait():
			case <-ctx.Done():
			}

			stopCtx, cancel := context.WithTimeout(context.Background(), app.StopTimeout())
			defer cancel()
			return app.Stop(stopCtx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, \":8080\")")
	return cmd
}
