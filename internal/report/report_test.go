package report

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amosroger91/AI-Marketing-Agent/internal/core"
)

func scoredProspect(name string, score int, rec core.Recommendation, verified bool) core.ScoredProspect {
	return core.ScoredProspect{
		ID:       "test-" + name,
		Business: core.BusinessRecord{Name: name, Address: "123 Main St", Phone: "479-555-0101", Website: "https://example.com"},
		Verification: core.VerificationResult{
			Verified: verified,
			Domain:   "example.com",
		},
		Score:          score,
		Recommendation: rec,
	}
}

func TestWriteCSVRows(t *testing.T) {
	p := scoredProspect("Riverside Bakery", 95, core.RecommendContact, true)
	p.TechStack = &core.TechStack{
		Server:    core.ServerInfo{Server: "Apache/2.2.3", SecurityHeaders: map[string]string{"X-Frame-Options": "DENY"}},
		WordPress: core.WordPressInfo{IsWordPress: true},
	}
	bare := scoredProspect("Ghost Town Antiques", 0, core.RecommendExclude, false)

	var buf bytes.Buffer
	require.NoError(t, writeCSV(&buf, []core.ScoredProspect{p, bare}))

	rows, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, columns, rows[0])
	assert.Equal(t, []string{
		"Riverside Bakery", "123 Main St", "479-555-0101", "479-555-0101",
		"https://example.com", "example.com",
		"95", "CONTACT", "Yes", "Apache/2.2.3", "1",
	}, rows[1])

	// No tech stack: WordPress "No", server "None", zero headers.
	assert.Equal(t, "No", rows[2][8])
	assert.Equal(t, "None", rows[2][9])
	assert.Equal(t, "0", rows[2][10])
}

func TestBuildSummary(t *testing.T) {
	var prospects []core.ScoredProspect
	for i, score := range []int{72, 95, 88, 60, 30} {
		rec := core.RecommendExclude
		switch {
		case score >= 70:
			rec = core.RecommendContact
		case score >= 50:
			rec = core.RecommendMaybe
		}
		prospects = append(prospects, scoredProspect(string(rune('A'+i)), score, rec, score >= 50))
	}

	s := BuildSummary(prospects)

	assert.Equal(t, 5, s.Total)
	assert.Equal(t, 4, s.Verified)
	assert.Equal(t, 3, s.Contact)
	assert.Equal(t, 1, s.Maybe)
	assert.Equal(t, 1, s.Exclude)

	require.Len(t, s.TopContacts, 3)
	assert.Equal(t, 95, s.TopContacts[0].Score)
	assert.Equal(t, 88, s.TopContacts[1].Score)
	assert.Equal(t, 72, s.TopContacts[2].Score)
}

func TestBuildSummary_TopContactsCapped(t *testing.T) {
	var prospects []core.ScoredProspect
	for i := 0; i < 15; i++ {
		prospects = append(prospects, scoredProspect("x", 70+i, core.RecommendContact, true))
	}

	s := BuildSummary(prospects)

	require.Len(t, s.TopContacts, 10)
	assert.Equal(t, 84, s.TopContacts[0].Score)
}

func TestWriteSummary(t *testing.T) {
	s := Summary{
		Total:    10,
		Verified: 6,
		Contact:  2,
		Maybe:    3,
		Exclude:  5,
		TopContacts: []core.ScoredProspect{
			scoredProspect("Riverside Bakery", 95, core.RecommendContact, true),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, s))
	out := buf.String()

	assert.Contains(t, out, "Total businesses processed: 10")
	assert.Contains(t, out, "Domain verification passed: 6")
	assert.Contains(t, out, "CONTACT (70+): 2")
	assert.Contains(t, out, "MAYBE (50-69): 3")
	assert.Contains(t, out, "EXCLUDE (<50): 5")
	assert.Contains(t, out, "#1 - Riverside Bakery: Score 95 (CONTACT)")
}
