package verify

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDomainHasDNS(t *testing.T) {
	v := NewVerifier(Options{Timeout: 2 * time.Second, Retries: 1, RetryDelay: time.Millisecond, RequireDNS: true}, nil)

	t.Run("empty domain", func(t *testing.T) {
		ok, info := v.DomainHasDNS(context.Background(), "")
		assert.False(t, ok)
		assert.Equal(t, "Empty domain", info)
	})

	t.Run("IP literal resolves to itself", func(t *testing.T) {
		ok, info := v.DomainHasDNS(context.Background(), "127.0.0.1")
		assert.True(t, ok)
		assert.Equal(t, "127.0.0.1", info)
	})

	t.Run("unresolvable name", func(t *testing.T) {
		ok, info := v.DomainHasDNS(context.Background(), "name.invalid")
		assert.False(t, ok)
		assert.NotEmpty(t, info)
	})
}
