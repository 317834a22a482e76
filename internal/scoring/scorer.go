// Package scoring turns a fingerprinted business into a 0-100 sales-fit
// score and a CONTACT/MAYBE/EXCLUDE recommendation.
package scoring

import (
	"fmt"
	"strings"

	"github.com/amosroger91/AI-Marketing-Agent/internal/core"
)

const (
	baseScore = 50
	maxScore  = 100

	contactThreshold = 70
	maybeThreshold   = 50
)

type Scorer struct {
	excludeKeywords []string
}

// NewScorer builds a scorer with the given exclusion keyword list; nil falls
// back to the defaults.
func NewScorer(excludeKeywords []string) *Scorer {
	if excludeKeywords == nil {
		excludeKeywords = DefaultExcludeKeywords()
	}
	return &Scorer{excludeKeywords: excludeKeywords}
}

// Score runs the deterministic rule-based scoring. An exclusion keyword
// match in the business name is an absolute short-circuit regardless of
// tech-stack content. Identical inputs always produce identical output.
func (s *Scorer) Score(name string, stack *core.TechStack, sig core.SalesSignals) (int, core.Recommendation, []string) {
	if keyword, matched := s.matchExclusion(name); matched {
		return 0, core.RecommendExclude, []string{fmt.Sprintf("Matches exclusion keyword: %s", keyword)}
	}

	score := baseScore
	var reasons []string

	if stack != nil {
		if stack.WordPress.IsWordPress {
			score += 20
			reasons = append(reasons, "WordPress detected")
		}

		if stack.Server.Server != "" {
			score += 15
			reasons = append(reasons, fmt.Sprintf("Server detected: %s", stack.Server.Server))
		}

		if count := len(stack.WordPress.VulnerablePlugins); count > 0 {
			score += 25
			reasons = append(reasons, fmt.Sprintf("%d vulnerable plugins", count))
		}

		if stack.WordPress.OutdatedCore {
			score += 15
			reasons = append(reasons, "Outdated WordPress core")
		}

		if len(stack.Server.SecurityHeaders) == 0 {
			score += 10
			reasons = append(reasons, "Missing security headers")
		}
	}

	if score > maxScore {
		score = maxScore
	}

	return score, recommend(score), reasons
}

func (s *Scorer) matchExclusion(name string) (string, bool) {
	lower := strings.ToLower(name)
	for _, keyword := range s.excludeKeywords {
		if strings.Contains(lower, keyword) {
			return keyword, true
		}
	}
	return "", false
}

func recommend(score int) core.Recommendation {
	switch {
	case score >= contactThreshold:
		return core.RecommendContact
	case score >= maybeThreshold:
		return core.RecommendMaybe
	default:
		return core.RecommendExclude
	}
}
