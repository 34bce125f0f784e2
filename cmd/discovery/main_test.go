package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeHTTPConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `log_level: error
discovery:
  backend: http
  decision_sink: http
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestExecute_ReportsErrors(t *testing.T) {
	cfgPath := writeHTTPConfig(t)

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{
			name:    "invalid radius",
			args:    []string{"radius", "set", "abc", "--user", "1"},
			wantErr: "radius out of range",
		},
		{
			name:    "missing user flag",
			args:    []string{"reset-declined"},
			wantErr: `required flag(s) "user" not set`,
		},
		{
			name:    "unknown command",
			args:    []string{"swipe"},
			wantErr: "unknown command",
		},
		{
			name:    "missing config file",
			args:    []string{"liked", "--user", "1", "--config", filepath.Join(t.TempDir(), "absent.yaml")},
			wantErr: "read config file",
		},
		{
			name:    "radius without postgres",
			args:    []string{"radius", "get", "--user", "1", "--config", cfgPath},
			wantErr: errNoSettingsStore.Error(),
		},
		{
			name:    "liked without postgres",
			args:    []string{"liked", "--user", "1", "--config", cfgPath},
			wantErr: errNoSwipeStore.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer

			code := execute(context.Background(), tt.args, &stderr)

			assert.Equal(t, 1, code)

			var entry struct {
				Level string `json:"level"`
				Msg   string `json:"msg"`
				Error string `json:"error"`
			}
			lines := bytes.Split(bytes.TrimSpace(stderr.Bytes()), []byte("\n"))
			require.NotEmpty(t, lines)
			require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
			assert.Equal(t, "ERROR", entry.Level)
			assert.Equal(t, "command failed", entry.Msg)
			assert.Contains(t, entry.Error, tt.wantErr)
		})
	}
}

func TestExecute_HelpSucceeds(t *testing.T) {
	var stderr bytes.Buffer

	code := execute(context.Background(), []string{"liked", "--help"}, &stderr)

	assert.Equal(t, 0, code)
	assert.NotContains(t, stderr.String(), "command failed")
}
