package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/azint/methodreg/pkg/config"
)

func TestNew(t *testing.T) {
	tests := map[string]struct {
		cfg       config.Log
		wantDebug bool
		check     func(t *testing.T, out string)
	}{
		"json at info": {
			cfg: config.Log{Level: "info", Format: "json"},
			check: func(t *testing.T, out string) {
				var entry map[string]any
				if err := json.Unmarshal([]byte(strings.TrimSpace(out)), &entry); err != nil {
					t.Fatalf("output is not JSON: %v\n%s", err, out)
				}
				if entry["msg"] != "registered" || entry["level"] != "info" {
					t.Errorf("entry = %v", entry)
				}
			},
		},
		"console at debug": {
			cfg:       config.Log{Level: "debug", Format: "console"},
			wantDebug: true,
			check: func(t *testing.T, out string) {
				if !strings.Contains(out, "INFO\tregistered") {
					t.Errorf("console output = %q", out)
				}
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := New(tt.cfg, &buf)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			logger.Debug("debugging")
			logger.Info("registered")
			_ = logger.Sync()

			out := buf.String()
			if got := strings.Contains(out, "debugging"); got != tt.wantDebug {
				t.Errorf("debug entry written = %v, want %v", got, tt.wantDebug)
			}
			tt.check(t, out)
		})
	}
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log", "methodreg.log")

	var buf bytes.Buffer
	logger, err := New(config.Log{Level: "warn", Format: "console", File: path}, &buf)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Info("dropped")
	logger.Warn("unknown legacy method")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"unknown legacy method"`) {
		t.Errorf("log file = %q", data)
	}
	if strings.Contains(string(data), "dropped") {
		t.Errorf("log file contains entry below level: %q", data)
	}
}

func TestNew_Errors(t *testing.T) {
	tests := map[string]config.Log{
		"bad level":  {Level: "verbose", Format: "json"},
		"bad format": {Level: "info", Format: "xml"},
	}

	for name, cfg := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := New(cfg, nil); err == nil {
				t.Error("New() error = nil, want error")
			}
		})
	}
}
