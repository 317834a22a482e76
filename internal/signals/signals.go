// Package signals derives sales-opportunity indicators from a tech-stack
// fingerprint.
package signals

import (
	"fmt"

	"github.com/amosroger91/AI-Marketing-Agent/internal/core"
)

// Fixed contribution of each triggered rule. The sum is deliberately not
// capped here; the scorer clamps the final result.
const (
	outdatedServerPoints    = 15
	outdatedCorePoints      = 20
	vulnerablePluginsPoints = 25
	poorSecurityPoints      = 10

	minSecurityHeaders = 3
)

// Extract is a pure function from TechStack to SalesSignals. Each triggered
// rule adds its points and one readable pain point.
func Extract(stack *core.TechStack) core.SalesSignals {
	sig := core.SalesSignals{PainPoints: []string{}}
	if stack == nil {
		return sig
	}

	if stack.Server.Outdated {
		sig.HasOutdatedServer = true
		sig.PainPoints = append(sig.PainPoints, "Outdated server software - security risk")
		sig.OpportunityScore += outdatedServerPoints
	}

	if stack.WordPress.IsWordPress {
		if stack.WordPress.OutdatedCore {
			sig.HasOutdatedCMS = true
			sig.PainPoints = append(sig.PainPoints,
				fmt.Sprintf("Outdated WordPress %s - needs upgrade", stack.WordPress.Version))
			sig.OpportunityScore += outdatedCorePoints
		}

		if len(stack.WordPress.VulnerablePlugins) > 0 {
			sig.HasVulnerablePlugins = true
			sig.PainPoints = append(sig.PainPoints,
				fmt.Sprintf("%d vulnerable plugins detected", len(stack.WordPress.VulnerablePlugins)))
			sig.OpportunityScore += vulnerablePluginsPoints
		}
	}

	if len(stack.Server.SecurityHeaders) < minSecurityHeaders {
		sig.HasPoorSecurity = true
		sig.PainPoints = append(sig.PainPoints, "Missing critical security headers")
		sig.OpportunityScore += poorSecurityPoints
	}

	return sig
}
