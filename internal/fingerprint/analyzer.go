// Package fingerprint inspects live sites for server software, CMS, and
// security-header characteristics. Detectors swallow their own failures and
// return zero-value data, so a flaky site can never abort a batch.
package fingerprint

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/amosroger91/AI-Marketing-Agent/internal/core"
	"github.com/amosroger91/AI-Marketing-Agent/internal/wpscan"
)

const (
	userAgent        = "ProspectPipeline/1.0"
	maxBodyReadBytes = 2 * 1024 * 1024
)

type Detector struct {
	client  *http.Client
	scanner wpscan.Scanner
	logger  *zap.Logger
}

func NewDetector(scanner wpscan.Scanner, logger *zap.Logger) *Detector {
	if scanner == nil {
		scanner = wpscan.Noop{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Detector{
		client: &http.Client{
			Timeout: 5 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				return nil
			},
		},
		scanner: scanner,
		logger:  logger,
	}
}

// AnalyzeTechStack composes the three detectors into one TechStack. None of
// the sub-detectors can fail the call.
func (d *Detector) AnalyzeTechStack(ctx context.Context, target string) *core.TechStack {
	return &core.TechStack{
		Server:        d.DetectServerInfo(ctx, target),
		WordPress:     d.DetectWordPress(ctx, target),
		OtherCMS:      d.DetectOtherCMS(ctx, target),
		ScanTimestamp: time.Now(),
	}
}

func (d *Detector) fetchBody(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyReadBytes))
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func normalizeURL(target string) string {
	if strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://") {
		return target
	}
	return "http://" + target
}
