package core

// VerificationResult is the outcome of verifying one candidate domain.
// Verified is only set when every required check passed; verification stops
// recording detail at the first failed check, leaving Error set.
type VerificationResult struct {
	Verified     bool   `json:"verified"`
	Domain       string `json:"domain"`
	DNSValid     bool   `json:"dns_valid"`
	DNSIP        string `json:"dns_ip,omitempty"`
	HTTPResponds bool   `json:"http_responds"`
	HTTPStatus   int    `json:"http_status,omitempty"`
	Server       string `json:"server,omitempty"`
	Error        string `json:"error,omitempty"`
}
