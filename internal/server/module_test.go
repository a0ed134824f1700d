package server_test

import (
	"bytes"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/azint/methodreg/internal/server"
	"github.com/azint/methodreg/pkg/config"
	"github.com/azint/methodreg/pkg/methodfx"
)

func withAddress(addr string) methodfx.Option {
	return methodfx.WithOverride(func(c *config.Config) { c.Server.Address = addr })
}

func TestModule_Lifecycle(t *testing.T) {
	var logs bytes.Buffer
	app := fxtest.New(t,
		methodfx.Module(withAddress("127.0.0.1:0"), methodfx.WithLogOutput(&logs)),
		server.Module,
	)
	app.RequireStart()
	app.RequireStop()

	assert.Contains(t, logs.String(), `"msg":"server starting"`)
	assert.Contains(t, logs.String(), `"msg":"server stopping"`)
}

func TestModule_AddressInUse(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	app := fx.New(
		methodfx.Module(withAddress(ln.Addr().String()), methodfx.WithLogOutput(&bytes.Buffer{})),
		server.Module,
		fx.NopLogger,
	)
	require.NoError(t, app.Err())
	assert.Error(t, app.Start(t.Context()))
}
