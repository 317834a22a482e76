package osint

import (
	"fmt"
	"strings"

	"github.com/miekg/dns"
)

// DNSRecords is the enumerated record set for a domain.
type DNSRecords struct {
	A     []string `json:"a_records,omitempty"`
	AAAA  []string `json:"aaaa_records,omitempty"`
	MX    []string `json:"mx_records,omitempty"`
	TXT   []string `json:"txt_records,omitempty"`
	NS    []string `json:"ns_records,omitempty"`
	CNAME string   `json:"cname_record,omitempty"`
}

func (r *DNSRecords) recordCount() int {
	if r == nil {
		return 0
	}
	count := len(r.A) + len(r.AAAA) + len(r.MX) + len(r.TXT) + len(r.NS)
	if r.CNAME != "" {
		count++
	}
	return count
}

func (g *Gatherer) enumerateDNS(domain string) *DNSRecords {
	records := &DNSRecords{}

	for _, qtype := range []uint16{dns.TypeA, dns.TypeAAAA, dns.TypeMX, dns.TypeTXT, dns.TypeNS, dns.TypeCNAME} {
		answers, err := g.query(domain, qtype)
		if err != nil {
			continue
		}
		for _, ans := range answers {
			switch rr := ans.(type) {
			case *dns.A:
				records.A = append(records.A, rr.A.String())
			case *dns.AAAA:
				records.AAAA = append(records.AAAA, rr.AAAA.String())
			case *dns.MX:
				records.MX = append(records.MX, fmt.Sprintf("%d %s", rr.Preference, strings.TrimSuffix(rr.Mx, ".")))
			case *dns.TXT:
				records.TXT = append(records.TXT, strings.Join(rr.Txt, " "))
			case *dns.NS:
				records.NS = append(records.NS, strings.TrimSuffix(rr.Ns, "."))
			case *dns.CNAME:
				records.CNAME = strings.TrimSuffix(rr.Target, ".")
			}
		}
	}

	return records
}

func (g *Gatherer) query(domain string, qtype uint16) ([]dns.RR, error) {
	m := new(dns.Msg)
	m.SetQuestion(dns.Fqdn(domain), qtype)

	r, _, err := g.dnsClient.Exchange(m, g.resolverAddr)
	if err != nil {
		return nil, fmt.Errorf("DNS query failed: %w", err)
	}
	if r.Rcode != dns.RcodeSuccess {
		return nil, fmt.Errorf("DNS query failed with code: %s", dns.RcodeToString[r.Rcode])
	}
	return r.Answer, nil
}
