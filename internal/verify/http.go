package verify

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type httpProbe struct {
	OK     bool
	Status int
	// Server holds the Server response header on success, or an error
	// description on failure.
	Server string
}

func newProbeClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			// The probe tests liveness, not security, so certificate
			// problems must not fail otherwise-live sites.
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= 10 {
				return fmt.Errorf("stopped after 10 redirects")
			}
			return nil
		},
	}
}

// DomainRespondsToHTTP probes https then http with a HEAD request, retrying
// timeouts up to the configured retry count per scheme. First success wins
// and is cached for the lifetime of the Verifier.
func (v *Verifier) DomainRespondsToHTTP(ctx context.Context, domain string) (bool, int, string) {
	if domain == "" {
		return false, 0, "Empty domain"
	}

	cacheKey := "http_check:" + domain
	v.mu.Lock()
	if probe, ok := v.cache[cacheKey]; ok {
		v.mu.Unlock()
		return probe.OK, probe.Status, probe.Server
	}
	v.mu.Unlock()

	probe := v.probeDomain(ctx, domain)

	v.mu.Lock()
	v.cache[cacheKey] = probe
	v.mu.Unlock()

	return probe.OK, probe.Status, probe.Server
}

func (v *Verifier) probeDomain(ctx context.Context, domain string) httpProbe {
	urlsToTry := []string{
		"https://" + domain,
		"http://" + domain,
	}

	for _, url := range urlsToTry {
		for attempt := 0; attempt < v.retries; attempt++ {
			if v.limiter != nil {
				if err := v.limiter.Wait(ctx); err != nil {
					return httpProbe{Server: "No HTTP response"}
				}
			}

			resp, err := v.headRequest(ctx, url)
			if err == nil {
				server := resp.Header.Get("Server")
				if server == "" {
					server = "Unknown"
				}
				resp.Body.Close()
				return httpProbe{OK: true, Status: resp.StatusCode, Server: server}
			}

			if isTimeout(err) {
				v.logger.Debug("HTTP probe timed out",
					zap.String("url", url),
					zap.Int("attempt", attempt+1),
				)
				if attempt < v.retries-1 {
					time.Sleep(v.retryDelay)
				}
				continue
			}

			// Connection-level failure: no point retrying the same
			// scheme, move on to the next URL.
			v.logger.Debug("HTTP probe failed",
				zap.String("url", url),
				zap.Error(err),
			)
			break
		}
	}

	return httpProbe{Server: "No HTTP response"}
}

func (v *Verifier) headRequest(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	return v.client.Do(req)
}

func isTimeout(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}
