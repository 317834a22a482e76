package osint

import (
	"fmt"
	"strings"
	"time"

	"github.com/likexian/whois"
	whoisparser "github.com/likexian/whois-parser"
)

// WHOISInfo is the registrant-side view of a domain.
type WHOISInfo struct {
	Registrar   string     `json:"registrar,omitempty"`
	Registrant  string     `json:"registrant,omitempty"`
	Nameservers []string   `json:"nameservers,omitempty"`
	Created     *time.Time `json:"created,omitempty"`
	Expires     *time.Time `json:"expires,omitempty"`
}

func (g *Gatherer) lookupWHOIS(domain string) (*WHOISInfo, error) {
	raw, err := whois.Whois(domain)
	if err != nil {
		return nil, fmt.Errorf("whois lookup failed: %w", err)
	}

	parsed, err := whoisparser.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("whois parse failed: %w", err)
	}

	info := &WHOISInfo{}
	if parsed.Registrar != nil {
		info.Registrar = parsed.Registrar.Name
	}
	if parsed.Registrant != nil {
		info.Registrant = parsed.Registrant.Name
	}
	if parsed.Domain != nil {
		for _, ns := range parsed.Domain.NameServers {
			info.Nameservers = append(info.Nameservers, strings.ToLower(ns))
		}
		if parsed.Domain.CreatedDate != "" {
			if t, err := parseWhoisDate(parsed.Domain.CreatedDate); err == nil {
				info.Created = &t
			}
		}
		if parsed.Domain.ExpirationDate != "" {
			if t, err := parseWhoisDate(parsed.Domain.ExpirationDate); err == nil {
				info.Expires = &t
			}
		}
	}

	return info, nil
}

func parseWhoisDate(dateStr string) (time.Time, error) {
	formats := []string{
		time.RFC3339,
		"2006-01-02T15:04:05Z",
		"2006-01-02 15:04:05",
		"2006-01-02",
		"02-Jan-2006",
		"2006.01.02 15:04:05",
		"2006/01/02",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}
