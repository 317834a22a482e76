package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/amosroger91/AI-Marketing-Agent/internal/core"
)

// Summary aggregates one pipeline run for the operator.
type Summary struct {
	Total    int
	Verified int
	Contact  int
	Maybe    int
	Exclude  int
	// TopContacts holds CONTACT prospects sorted by score descending,
	// at most ten.
	TopContacts []core.ScoredProspect
}

const topContactLimit = 10

func BuildSummary(prospects []core.ScoredProspect) Summary {
	s := Summary{Total: len(prospects)}

	var contacts []core.ScoredProspect
	for _, p := range prospects {
		if p.Verification.Verified {
			s.Verified++
		}
		switch p.Recommendation {
		case core.RecommendContact:
			s.Contact++
			contacts = append(contacts, p)
		case core.RecommendMaybe:
			s.Maybe++
		default:
			s.Exclude++
		}
	}

	sort.SliceStable(contacts, func(i, j int) bool {
		return contacts[i].Score > contacts[j].Score
	})
	if len(contacts) > topContactLimit {
		contacts = contacts[:topContactLimit]
	}
	s.TopContacts = contacts

	return s
}

// WriteSummary renders a run summary in the execution-log style.
func WriteSummary(w io.Writer, s Summary) error {
	lines := []string{
		"Final Statistics:",
		fmt.Sprintf("  Total businesses processed: %d", s.Total),
		fmt.Sprintf("  Domain verification passed: %d", s.Verified),
		fmt.Sprintf("  CONTACT (70+): %d", s.Contact),
		fmt.Sprintf("  MAYBE (50-69): %d", s.Maybe),
		fmt.Sprintf("  EXCLUDE (<50): %d", s.Exclude),
	}

	if len(s.TopContacts) > 0 {
		lines = append(lines, "", "Top CONTACT Prospects:")
		for i, p := range s.TopContacts {
			lines = append(lines, fmt.Sprintf("  #%d - %s: Score %d (%s)",
				i+1, p.Business.Name, p.Score, p.Recommendation))
		}
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
