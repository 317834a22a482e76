package pipeline

import "strings"

var guessTLDs = []string{"com", "net", "org", "biz"}

// GuessCandidates generates candidate domains for a business with no
// working website: the name with spaces removed, with spaces hyphenated,
// and the first word alone, each tried against com/net/org/biz in that
// fixed order. Pattern-major, TLD-minor; callers stop at the first
// candidate that verifies.
func GuessCandidates(name string) []string {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return nil
	}

	words := strings.Fields(lower)
	patterns := []string{
		sanitizePattern(strings.Join(words, "")),
		sanitizePattern(strings.Join(words, "-")),
	}
	if len(words) > 0 {
		patterns = append(patterns, sanitizePattern(words[0]))
	}

	seen := make(map[string]bool)
	var candidates []string
	for _, pattern := range patterns {
		if pattern == "" || seen[pattern] {
			continue
		}
		seen[pattern] = true
		for _, tld := range guessTLDs {
			candidates = append(candidates, pattern+"."+tld)
		}
	}
	return candidates
}

// sanitizePattern keeps only characters that can appear in a hostname
// label, so "Joe's Cafe" guesses joescafe.com rather than joe'scafe.com.
func sanitizePattern(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	return strings.Trim(b.String(), "-")
}
