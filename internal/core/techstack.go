package core

import "time"

// ServerInfo holds what the HTTP response headers reveal about the server.
type ServerInfo struct {
	Server          string            `json:"server,omitempty"`
	Version         string            `json:"version,omitempty"`
	Outdated        bool              `json:"outdated"`
	Framework       string            `json:"framework,omitempty"`
	PoweredBy       string            `json:"powered_by,omitempty"`
	SecurityHeaders map[string]string `json:"security_headers"`
}

// VulnerablePlugin is one plugin flagged by the vulnerability scanner.
type VulnerablePlugin struct {
	Name            string `json:"name"`
	Version         string `json:"version"`
	Vulnerabilities int    `json:"vulnerabilities"`
}

// WordPressInfo holds WordPress detection results. Plugin and vulnerability
// data is only populated when an external scanner is wired in.
type WordPressInfo struct {
	IsWordPress       bool               `json:"is_wordpress"`
	Version           string             `json:"version,omitempty"`
	Plugins           []string           `json:"plugins"`
	VulnerablePlugins []VulnerablePlugin `json:"vulnerable_plugins"`
	Themes            []string           `json:"themes"`
	Vulnerabilities   int                `json:"vulnerabilities"`
	OutdatedCore      bool               `json:"outdated_core"`
}

// CMSInfo holds non-WordPress CMS detection results.
type CMSInfo struct {
	Type     string `json:"cms_type,omitempty"`
	Version  string `json:"version,omitempty"`
	Outdated bool   `json:"outdated"`
}

// TechStack is the full fingerprint of one verified site. It is never
// mutated after the analyzer returns it.
type TechStack struct {
	Server        ServerInfo    `json:"server"`
	WordPress     WordPressInfo `json:"wordpress"`
	OtherCMS      CMSInfo       `json:"other_cms"`
	ScanTimestamp time.Time     `json:"scan_timestamp"`
}

// SalesSignals is a derived view over a TechStack: which opportunity
// indicators fired, their summed score contribution, and readable
// pain points. The sum is not capped here.
type SalesSignals struct {
	HasOutdatedServer    bool     `json:"has_outdated_server"`
	HasOutdatedCMS       bool     `json:"has_outdated_cms"`
	HasVulnerablePlugins bool     `json:"has_vulnerable_plugins"`
	HasPoorSecurity      bool     `json:"has_poor_security"`
	OpportunityScore     int      `json:"opportunity_score"`
	PainPoints           []string `json:"pain_points"`
}
