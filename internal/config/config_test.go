package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5*time.Second, cfg.Verify.Timeout)
	assert.Equal(t, 2, cfg.Verify.Retries)
	assert.Equal(t, 500*time.Millisecond, cfg.Verify.RetryDelay)
	assert.True(t, cfg.Verify.RequireDNS)
	assert.True(t, cfg.Verify.RequireHTTP)

	assert.Equal(t, 1, cfg.Pipeline.Workers)
	assert.True(t, cfg.Pipeline.GuessFallback)
	assert.False(t, cfg.Pipeline.EnableOSINT)

	assert.False(t, cfg.Scanner.Enabled)
	assert.Equal(t, "wpscan", cfg.Scanner.Binary)
	assert.Equal(t, 30*time.Second, cfg.Scanner.Timeout)

	assert.False(t, cfg.Assessor.Enabled)
	assert.Equal(t, ".", cfg.Output.Dir)
	assert.Equal(t, "business_data", cfg.Output.DataDir)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PROSPECT_OUTPUT_DIR", "/tmp/reports")
	t.Setenv("PROSPECT_DATA_DIR", "/tmp/data")
	t.Setenv("PROSPECT_ASSESSOR_COMMAND", "assess-prospect")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/reports", cfg.Output.Dir)
	assert.Equal(t, "/tmp/data", cfg.Output.DataDir)
	assert.Equal(t, "assess-prospect", cfg.Assessor.Command)
	assert.True(t, cfg.Assessor.Enabled)
}
