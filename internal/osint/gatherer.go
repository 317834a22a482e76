// Package osint gathers supporting intelligence for a verified domain:
// WHOIS registration data and enumerated DNS records. Everything here is
// best-effort; a gather that finds nothing is a valid outcome, never an
// error the pipeline has to handle.
package osint

import (
	"context"
	"time"

	"github.com/miekg/dns"
	"go.uber.org/zap"
)

const defaultResolverAddr = "8.8.8.8:53"

// Findings is whatever could be collected for one domain.
type Findings struct {
	Domain string      `json:"domain"`
	WHOIS  *WHOISInfo  `json:"whois,omitempty"`
	DNS    *DNSRecords `json:"dns,omitempty"`
}

// Count reports how many discrete data points were found. A higher count
// means a more credible company; the assessor path uses it as an input.
func (f Findings) Count() int {
	count := f.DNS.recordCount()
	if f.WHOIS != nil {
		if f.WHOIS.Registrar != "" {
			count++
		}
		if f.WHOIS.Registrant != "" {
			count++
		}
		count += len(f.WHOIS.Nameservers)
		if f.WHOIS.Created != nil {
			count++
		}
		if f.WHOIS.Expires != nil {
			count++
		}
	}
	return count
}

type Gatherer struct {
	dnsClient    *dns.Client
	resolverAddr string
	logger       *zap.Logger
}

func NewGatherer(timeout time.Duration, logger *zap.Logger) *Gatherer {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gatherer{
		dnsClient:    &dns.Client{Timeout: timeout},
		resolverAddr: defaultResolverAddr,
		logger:       logger,
	}
}

// Gather collects WHOIS and DNS intelligence for a domain. Individual
// lookups that fail are logged and skipped.
func (g *Gatherer) Gather(ctx context.Context, domain string) Findings {
	findings := Findings{Domain: domain}
	if domain == "" {
		return findings
	}

	if whoisInfo, err := g.lookupWHOIS(domain); err == nil {
		findings.WHOIS = whoisInfo
	} else {
		g.logger.Debug("WHOIS lookup skipped", zap.String("domain", domain), zap.Error(err))
	}

	select {
	case <-ctx.Done():
		return findings
	default:
	}

	if records := g.enumerateDNS(domain); records.recordCount() > 0 {
		findings.DNS = records
	}

	return findings
}
