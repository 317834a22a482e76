package core

import "time"

type Recommendation string

const (
	RecommendContact Recommendation = "CONTACT"
	RecommendMaybe   Recommendation = "MAYBE"
	RecommendExclude Recommendation = "EXCLUDE"
)

// ScoredProspect is the final output entity for one business: the input
// record plus verification, fingerprint, signal, and scoring data. Created
// once per business per run and handed to the report writers as-is.
type ScoredProspect struct {
	ID             string             `json:"id"`
	Business       BusinessRecord     `json:"business"`
	Verification   VerificationResult `json:"verification"`
	TechStack      *TechStack         `json:"tech_stack,omitempty"`
	Signals        *SalesSignals      `json:"signals,omitempty"`
	Score          int                `json:"score"`
	Recommendation Recommendation     `json:"recommendation"`
	Reasons        []string           `json:"reasons"`
	ScoredAt       time.Time          `json:"scored_at"`
}

// SecurityHeaderCount reports how many of the tracked security headers the
// site returned, for report columns that need it without re-deriving.
func (p *ScoredProspect) SecurityHeaderCount() int {
	if p.TechStack == nil {
		return 0
	}
	return len(p.TechStack.Server.SecurityHeaders)
}

// HasWordPress reports whether the fingerprint detected WordPress.
func (p *ScoredProspect) HasWordPress() bool {
	return p.TechStack != nil && p.TechStack.WordPress.IsWordPress
}

// ServerDetected returns the detected server header, or empty.
func (p *ScoredProspect) ServerDetected() string {
	if p.TechStack == nil {
		return ""
	}
	return p.TechStack.Server.Server
}
