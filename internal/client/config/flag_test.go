package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"cmd", "-a", "127.0.0.1:9090", "-cb", "0.0.0.0:7000", "-i", "10", "-d", "x.db"},
			expected: &Config{
				ServerEndpointAddr: "127.0.0.1:9090",
				CallbackAddr:       "0.0.0.0:7000",
				HeartbeatInterval:  10 * time.Second,
				DatabaseDSN:        "x.db",
			},
		},
		{
			name:     "foreign flags ignored",
			args:     []string{"cmd", "-z", "1", "-i", "5"},
			expected: &Config{HeartbeatInterval: 5 * time.Second},
		},
		{name: "incorrect heartbeat interval", args: []string{"cmd", "-i", "abc"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			config := &Config{}
			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config) })
				return
			}
			require.NotPanics(t, func() { parseFlags(config) })
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}
