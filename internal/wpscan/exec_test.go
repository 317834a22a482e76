package wpscan

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopScanner(t *testing.T) {
	report, err := Noop{}.Scan(context.Background(), "https://example.com")
	assert.Nil(t, report)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestParseScanOutput(t *testing.T) {
	t.Run("version and plugins", func(t *testing.T) {
		data := []byte(`{
			"version": {"number": "4.9.8"},
			"plugins": {
				"contact-form-7": {
					"version": {"number": "5.1.6"},
					"vulnerabilities": [{"title": "a"}, {"title": "b"}]
				},
				"akismet": {
					"version": {"number": "4.1"},
					"vulnerabilities": []
				}
			}
		}`)

		report, err := parseScanOutput(data)
		require.NoError(t, err)

		assert.Equal(t, "4.9.8", report.Version)
		assert.ElementsMatch(t, []string{"contact-form-7", "akismet"}, report.Plugins)
		require.Len(t, report.VulnerablePlugins, 1)
		assert.Equal(t, "contact-form-7", report.VulnerablePlugins[0].Name)
		assert.Equal(t, "5.1.6", report.VulnerablePlugins[0].Version)
		assert.Equal(t, 2, report.VulnerablePlugins[0].Vulnerabilities)
	})

	t.Run("vulnerable plugin without detected version", func(t *testing.T) {
		data := []byte(`{"plugins": {"revslider": {"vulnerabilities": [{"title": "a"}]}}}`)

		report, err := parseScanOutput(data)
		require.NoError(t, err)
		require.Len(t, report.VulnerablePlugins, 1)
		assert.Equal(t, "Unknown", report.VulnerablePlugins[0].Version)
	})

	t.Run("empty scan", func(t *testing.T) {
		report, err := parseScanOutput([]byte(`{}`))
		require.NoError(t, err)
		assert.Empty(t, report.Version)
		assert.Empty(t, report.Plugins)
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := parseScanOutput([]byte("Scan aborted"))
		assert.Error(t, err)
	})
}
