package wpscan

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"time"

	"go.uber.org/zap"

	"github.com/amosroger91/AI-Marketing-Agent/internal/core"
)

const defaultScanTimeout = 30 * time.Second

// ExecScanner shells out to the wpscan binary with JSON output. Any failure
// mode of the binary (missing, timeout, non-zero exit, bad JSON) surfaces as
// an error the caller is expected to swallow.
type ExecScanner struct {
	binary  string
	timeout time.Duration
	logger  *zap.Logger
}

func NewExecScanner(binary string, timeout time.Duration, logger *zap.Logger) *ExecScanner {
	if binary == "" {
		binary = "wpscan"
	}
	if timeout <= 0 {
		timeout = defaultScanTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExecScanner{binary: binary, timeout: timeout, logger: logger}
}

type wpscanOutput struct {
	Version *struct {
		Number string `json:"number"`
	} `json:"version"`
	Plugins map[string]struct {
		Version *struct {
			Number string `json:"number"`
		} `json:"version"`
		Vulnerabilities []json.RawMessage `json:"vulnerabilities"`
	} `json:"plugins"`
}

func (s *ExecScanner) Scan(ctx context.Context, target string) (*Report, error) {
	scanCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cmd := exec.CommandContext(scanCtx, s.binary,
		"--url", target,
		"--enumerate", "vp,ap",
		"--plugins-detection", "aggressive",
		"--format", "json",
		"--no-banner",
		"--disable-tls-checks",
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		s.logger.Debug("wpscan run failed",
			zap.String("target", target),
			zap.String("stderr", stderr.String()),
			zap.Error(err),
		)
		return nil, fmt.Errorf("wpscan: %w", err)
	}

	return parseScanOutput(stdout.Bytes())
}

func parseScanOutput(data []byte) (*Report, error) {
	var out wpscanOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("wpscan: decode output: %w", err)
	}

	report := &Report{}
	if out.Version != nil {
		report.Version = out.Version.Number
	}
	for name, plugin := range out.Plugins {
		report.Plugins = append(report.Plugins, name)
		if len(plugin.Vulnerabilities) == 0 {
			continue
		}
		version := "Unknown"
		if plugin.Version != nil && plugin.Version.Number != "" {
			version = plugin.Version.Number
		}
		report.VulnerablePlugins = append(report.VulnerablePlugins, core.VulnerablePlugin{
			Name:            name,
			Version:         version,
			Vulnerabilities: len(plugin.Vulnerabilities),
		})
	}
	return report, nil
}
