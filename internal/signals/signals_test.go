package signals

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amosroger91/AI-Marketing-Agent/internal/core"
)

func stackWithHeaders(n int) *core.TechStack {
	headers := map[string]string{}
	names := []string{"Strict-Transport-Security", "Content-Security-Policy", "X-Frame-Options", "X-Content-Type-Options"}
	for i := 0; i < n; i++ {
		headers[names[i]] = "set"
	}
	return &core.TechStack{Server: core.ServerInfo{SecurityHeaders: headers}}
}

func TestExtract_NilStack(t *testing.T) {
	sig := Extract(nil)
	assert.Zero(t, sig.OpportunityScore)
	assert.Empty(t, sig.PainPoints)
	assert.False(t, sig.HasPoorSecurity)
}

func TestExtract_IndividualRules(t *testing.T) {
	t.Run("outdated server", func(t *testing.T) {
		stack := stackWithHeaders(3)
		stack.Server.Outdated = true
		sig := Extract(stack)
		assert.True(t, sig.HasOutdatedServer)
		assert.Equal(t, 15, sig.OpportunityScore)
		assert.Contains(t, sig.PainPoints, "Outdated server software - security risk")
	})

	t.Run("outdated wordpress core", func(t *testing.T) {
		stack := stackWithHeaders(3)
		stack.WordPress = core.WordPressInfo{IsWordPress: true, Version: "4.9.8", OutdatedCore: true}
		sig := Extract(stack)
		assert.True(t, sig.HasOutdatedCMS)
		assert.Equal(t, 20, sig.OpportunityScore)
		assert.Contains(t, sig.PainPoints, "Outdated WordPress 4.9.8 - needs upgrade")
	})

	t.Run("vulnerable plugins", func(t *testing.T) {
		stack := stackWithHeaders(3)
		stack.WordPress = core.WordPressInfo{
			IsWordPress: true,
			VulnerablePlugins: []core.VulnerablePlugin{
				{Name: "contact-form-7"}, {Name: "revslider"},
			},
		}
		sig := Extract(stack)
		assert.True(t, sig.HasVulnerablePlugins)
		assert.Equal(t, 25, sig.OpportunityScore)
		assert.Contains(t, sig.PainPoints, "2 vulnerable plugins detected")
	})

	t.Run("missing security headers", func(t *testing.T) {
		sig := Extract(stackWithHeaders(2))
		assert.True(t, sig.HasPoorSecurity)
		assert.Equal(t, 10, sig.OpportunityScore)
		assert.Contains(t, sig.PainPoints, "Missing critical security headers")
	})

	t.Run("three headers is enough", func(t *testing.T) {
		sig := Extract(stackWithHeaders(3))
		assert.False(t, sig.HasPoorSecurity)
		assert.Zero(t, sig.OpportunityScore)
	})

	t.Run("wordpress rules need wordpress detected", func(t *testing.T) {
		stack := stackWithHeaders(3)
		stack.WordPress = core.WordPressInfo{
			OutdatedCore:      true,
			VulnerablePlugins: []core.VulnerablePlugin{{Name: "x"}},
		}
		sig := Extract(stack)
		assert.False(t, sig.HasOutdatedCMS)
		assert.False(t, sig.HasVulnerablePlugins)
		assert.Zero(t, sig.OpportunityScore)
	})
}

func TestExtract_SumIsUncapped(t *testing.T) {
	stack := &core.TechStack{
		Server: core.ServerInfo{Outdated: true, SecurityHeaders: map[string]string{}},
		WordPress: core.WordPressInfo{
			IsWordPress:       true,
			Version:           "4.2",
			OutdatedCore:      true,
			VulnerablePlugins: []core.VulnerablePlugin{{Name: "x"}},
		},
	}
	sig := Extract(stack)
	assert.Equal(t, 70, sig.OpportunityScore)
	assert.Len(t, sig.PainPoints, 4)
}
