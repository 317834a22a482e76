package verify

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"
)

func newResolver(timeout time.Duration) *net.Resolver {
	return &net.Resolver{
		PreferGo: true,
		Dial: func(ctx context.Context, network, address string) (net.Conn, error) {
			d := net.Dialer{Timeout: timeout}
			return d.DialContext(ctx, network, address)
		},
	}
}

// DomainHasDNS checks that the domain resolves. On success the second value
// is the first resolved IP; on failure it is a short error description.
func (v *Verifier) DomainHasDNS(ctx context.Context, domain string) (bool, string) {
	if domain == "" {
		return false, "Empty domain"
	}

	lookupCtx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	ips, err := v.resolver.LookupHost(lookupCtx, domain)
	if err != nil {
		var dnsErr *net.DNSError
		if errors.As(err, &dnsErr) {
			return false, "DNS resolution failed"
		}
		return false, fmt.Sprintf("DNS error: %v", err)
	}
	if len(ips) == 0 {
		return false, "DNS resolution failed"
	}

	return true, ips[0]
}
