package fingerprint

import (
	"context"
	"net/http"
	"regexp"
	"strings"

	"github.com/amosroger91/AI-Marketing-Agent/internal/core"
)

var apacheVersion = regexp.MustCompile(`Apache/(\d+\.\d+)`)

// The presence of these headers is a proxy for how much security attention
// the site gets.
var securityHeaderNames = []string{
	"Strict-Transport-Security",
	"Content-Security-Policy",
	"X-Content-Type-Options",
	"X-Frame-Options",
	"X-XSS-Protection",
}

// DetectServerInfo reads server identity and security posture from response
// headers. Any request failure yields empty defaults; fingerprinting is
// silent and non-fatal.
func (d *Detector) DetectServerInfo(ctx context.Context, target string) core.ServerInfo {
	info := core.ServerInfo{SecurityHeaders: map[string]string{}}

	resp, err := d.headRequest(ctx, normalizeURL(target))
	if err != nil {
		return info
	}
	defer resp.Body.Close()

	if server := resp.Header.Get("Server"); server != "" {
		info.Server = server
		if strings.Contains(server, "Apache") {
			if match := apacheVersion.FindStringSubmatch(server); match != nil {
				info.Version = match[1]
				// Apache 2.2 went end-of-life years ago.
				if strings.HasPrefix(match[1], "2.2") {
					info.Outdated = true
				}
			}
		}
	}

	if poweredBy := resp.Header.Get("X-Powered-By"); poweredBy != "" {
		info.PoweredBy = poweredBy
		if strings.Contains(poweredBy, "PHP") {
			info.Framework = "PHP"
		}
	}

	for _, name := range securityHeaderNames {
		if value := resp.Header.Get(name); value != "" {
			info.SecurityHeaders[name] = value
		}
	}

	return info
}

func (d *Detector) headRequest(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	return d.client.Do(req)
}
