package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuessCandidates(t *testing.T) {
	t.Run("pattern-major TLD-minor order", func(t *testing.T) {
		got := GuessCandidates("Joe's Cafe")

		want := []string{
			"joescafe.com", "joescafe.net", "joescafe.org", "joescafe.biz",
			"joes-cafe.com", "joes-cafe.net", "joes-cafe.org", "joes-cafe.biz",
			"joes.com", "joes.net", "joes.org", "joes.biz",
		}
		assert.Equal(t, want, got)
	})

	t.Run("single word deduplicates patterns", func(t *testing.T) {
		got := GuessCandidates("Walmart")
		assert.Equal(t, []string{"walmart.com", "walmart.net", "walmart.org", "walmart.biz"}, got)
	})

	t.Run("punctuation stripped from hostname labels", func(t *testing.T) {
		got := GuessCandidates("Bob & Sons, Inc.")
		assert.Contains(t, got, "bobsonsinc.com")
		for _, candidate := range got {
			assert.NotContains(t, candidate, "&")
			assert.NotContains(t, candidate, ",")
		}
	})

	t.Run("empty name yields nothing", func(t *testing.T) {
		assert.Nil(t, GuessCandidates(""))
		assert.Nil(t, GuessCandidates("   "))
	})
}
