// Package wpscan wraps an external WordPress vulnerability scanner behind a
// capability interface. The pipeline works without the binary installed: the
// no-op implementation reports nothing and detection falls back to body
// heuristics alone.
package wpscan

import (
	"context"
	"errors"

	"github.com/amosroger91/AI-Marketing-Agent/internal/core"
)

// ErrUnavailable is returned when no scanner is wired in or the scan could
// not run. Callers treat it like any other scan failure: ignore it.
var ErrUnavailable = errors.New("wpscan: scanner unavailable")

// Report is the subset of scanner output the pipeline consumes.
type Report struct {
	Version           string
	Plugins           []string
	VulnerablePlugins []core.VulnerablePlugin
}

// Scanner enumerates plugins and known vulnerabilities for a WordPress site.
type Scanner interface {
	Scan(ctx context.Context, target string) (*Report, error)
}

// Noop is the default Scanner used when no external binary is configured.
type Noop struct{}

func (Noop) Scan(ctx context.Context, target string) (*Report, error) {
	return nil, ErrUnavailable
}
