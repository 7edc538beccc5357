package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()

	assert.True(t, c.Interpret.IsParallel())
	assert.Empty(t, c.Interpret.EnabledYogas)
	assert.Equal(t, DefaultLogFormat, c.Log.Format)
	assert.Equal(t, DefaultAddr, c.Server.Addr)
	assert.Equal(t, DefaultReadHeaderTimeout, c.Server.ReadHeaderTimeout)
	assert.EqualValues(t, DefaultMaxBodyBytes, c.Server.MaxBodyBytes)
	assert.Equal(t, DefaultOutputFormat, c.Output.Format)
	assert.NoError(t, c.Validate())
}

func TestParse(t *testing.T) {
	data := []byte(`
interpret:
  parallel: false
  enabledYogas: [Gaja Kesari Yoga, Kala Sarpa Dosha]
log:
  format: json
  debug: true
server:
  addr: 127.0.0.1:9000
  readHeaderTimeout: 2s
output:
  format: yaml
`)

	c, err := Parse(data)
	require.NoError(t, err)

	assert.False(t, c.Interpret.IsParallel())
	assert.Equal(t, []string{"Gaja Kesari Yoga", "Kala Sarpa Dosha"}, c.Interpret.EnabledYogas)
	assert.Equal(t, "json", c.Log.Format)
	assert.True(t, c.Log.Debug)
	assert.Equal(t, "127.0.0.1:9000", c.Server.Addr)
	assert.Equal(t, 2*time.Second, c.Server.ReadHeaderTimeout)
	assert.EqualValues(t, DefaultMaxBodyBytes, c.Server.MaxBodyBytes)
	assert.Equal(t, "yaml", c.Output.Format)
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{name: "bad yaml", data: "interpret: [", want: "failed to parse config YAML"},
		{name: "bad log format", data: "log: {format: xml}", want: `Config.Log.Format: failed "oneof" rule`},
		{name: "bad output format", data: "output: {format: pdf}", want: `Config.Output.Format`},
		{name: "small body", data: "server: {maxBodyBytes: 10}", want: `failed "min" rule`},
		{name: "empty yoga name", data: "interpret: {enabledYogas: ['']}", want: `failed "required" rule`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestWriteAndLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	c := Default()
	c.Interpret.EnabledYogas = []string{"Hamsa Yoga"}

	require.NoError(t, WriteFile(c, path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, c, loaded)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestLoadEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: {addr: ':9000'}\noutput: {format: yaml}\n"), 0o644))

	t.Setenv("CHART_INTERPRETER_ADDR", "127.0.0.1:7000")
	t.Setenv("CHART_INTERPRETER_PARALLEL", "false")
	t.Setenv("CHART_INTERPRETER_YOGAS", "Hamsa Yoga,Sasha Yoga")
	t.Setenv("CHART_INTERPRETER_RATE_LIMIT", "5")

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:7000", c.Server.Addr)
	assert.False(t, c.Interpret.IsParallel())
	assert.Equal(t, []string{"Hamsa Yoga", "Sasha Yoga"}, c.Interpret.EnabledYogas)
	assert.InDelta(t, 5.0, c.Server.RateLimit, 1e-9)
	assert.Equal(t, DefaultRateBurst, c.Server.RateBurst)
	assert.Equal(t, "yaml", c.Output.Format)
}

func TestLoadWithoutFile(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		want  string
	}{
		{name: "unparsable burst", key: "CHART_INTERPRETER_RATE_BURST", value: "many", want: "parse env"},
		{name: "bad log format", key: "CHART_INTERPRETER_LOG_FORMAT", value: "xml", want: `Config.Log.Format: failed "oneof" rule`},
		{name: "negative rate", key: "CHART_INTERPRETER_RATE_LIMIT", value: "-1", want: `failed "gte" rule`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load("")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")
}
