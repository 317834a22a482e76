package verify

import (
	"net/url"
	"strings"
)

// DomainFromURL extracts the bare host from a free-form website string. The
// input may be a full URL, a scheme-relative URL, or a bare domain. Returns
// empty string when nothing usable can be extracted; callers must treat that
// as "cannot verify".
func DomainFromURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") && !strings.HasPrefix(raw, "//") {
		raw = "http://" + raw
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return ""
	}

	host := parsed.Host
	if host == "" {
		host = parsed.Path
	}
	return strings.TrimSuffix(host, "/")
}
