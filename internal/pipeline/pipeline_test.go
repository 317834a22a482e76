package pipeline

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amosroger91/AI-Marketing-Agent/internal/core"
	"github.com/amosroger91/AI-Marketing-Agent/internal/fingerprint"
	"github.com/amosroger91/AI-Marketing-Agent/internal/scoring"
	"github.com/amosroger91/AI-Marketing-Agent/internal/verify"
)

func testVerifier(t *testing.T) *verify.Verifier {
	t.Helper()
	return verify.NewVerifier(verify.Options{
		Timeout:     2 * time.Second,
		Retries:     1,
		RetryDelay:  10 * time.Millisecond,
		RequireHTTP: true,
	}, nil)
}

func testPipeline(t *testing.T, cfg Config) *Pipeline {
	t.Helper()
	return New(cfg, Deps{
		Verifier: testVerifier(t),
		Detector: fingerprint.NewDetector(nil, nil),
		Scorer:   scoring.NewScorer(nil),
	})
}

// wordpressSite serves a minimal outdated WordPress site: Apache 2.2
// headers, wp-content markers in the body, and no security headers.
func wordpressSite(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Server", "Apache/2.2.3")
		if strings.Contains(r.URL.Path, "wp-includes/version.php") {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`<html><head><link href="/wp-content/themes/x/style.css"></head><body>hi</body></html>`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRun_VerifiedBusinessIsFingerprintedAndScored(t *testing.T) {
	srv := wordpressSite(t)
	p := testPipeline(t, Config{Workers: 1})

	results := p.Run(context.Background(), []core.BusinessRecord{
		{Name: "Riverside Bakery", Website: srv.URL},
	})

	require.Len(t, results, 1)
	got := results[0]

	require.True(t, got.Verification.Verified)
	require.NotNil(t, got.TechStack)
	assert.True(t, got.TechStack.WordPress.IsWordPress)
	assert.True(t, got.TechStack.Server.Outdated)

	// base 50 + WordPress 20 + server header 15 + no security headers 10
	assert.Equal(t, 95, got.Score)
	assert.Equal(t, core.RecommendContact, got.Recommendation)
	assert.NotEmpty(t, got.ID)
	require.NotNil(t, got.Signals)
	assert.True(t, got.Signals.HasOutdatedServer)
}

func TestRun_UnverifiedBusinessBecomesExcludeProspect(t *testing.T) {
	p := testPipeline(t, Config{Workers: 1})

	results := p.Run(context.Background(), []core.BusinessRecord{
		{Name: "Ghost Town Antiques"},
	})

	require.Len(t, results, 1)
	got := results[0]
	assert.False(t, got.Verification.Verified)
	assert.Equal(t, core.RecommendExclude, got.Recommendation)
	require.NotEmpty(t, got.Reasons)
	assert.Equal(t, "Could not verify domain for Ghost Town Antiques", got.Reasons[0])
	assert.Nil(t, got.TechStack)
}

func TestRun_PreservesInputOrderAcrossWorkers(t *testing.T) {
	srv := wordpressSite(t)
	p := testPipeline(t, Config{Workers: 4})

	businesses := []core.BusinessRecord{
		{Name: "Alpha"},
		{Name: "Bravo", Website: srv.URL},
		{Name: "Charlie"},
		{Name: "Delta", Website: srv.URL},
		{Name: "Echo"},
	}

	results := p.Run(context.Background(), businesses)

	require.Len(t, results, len(businesses))
	for i, b := range businesses {
		assert.Equal(t, b.Name, results[i].Business.Name)
	}
	assert.True(t, results[1].Verification.Verified)
	assert.False(t, results[2].Verification.Verified)
}

func TestRun_CancelledContextStillReturnsOneProspectPerInput(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := testPipeline(t, Config{Workers: 2})
	businesses := []core.BusinessRecord{{Name: "One"}, {Name: "Two"}, {Name: "Three"}}

	results := p.Run(ctx, businesses)

	require.Len(t, results, len(businesses))
	for _, got := range results {
		assert.NotEmpty(t, got.ID)
		assert.Equal(t, core.RecommendExclude, got.Recommendation)
		assert.NotEmpty(t, got.Reasons)
	}
}

func TestVerifyBusiness_WebsiteFailurePropagates(t *testing.T) {
	srv := wordpressSite(t)
	p := testPipeline(t, Config{Workers: 1})

	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	deadURL := dead.URL
	dead.Close()

	result := p.verifyBusiness(context.Background(), core.BusinessRecord{
		Name:    "No Such Shop",
		Website: deadURL,
	})
	assert.False(t, result.Verified)
	assert.Equal(t, "No HTTP response", result.Error)

	// A working website wins immediately, no guessing needed.
	result = p.verifyBusiness(context.Background(), core.BusinessRecord{
		Name:    "Working Shop",
		Website: srv.URL,
	})
	assert.True(t, result.Verified)
}

func TestVerifyBusiness_GuessFallbackHonorsCancellation(t *testing.T) {
	p := testPipeline(t, Config{Workers: 1, GuessFallback: true})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// The cancelled context stops the candidate loop before any probe,
	// and with no website there is no first failure to report either.
	result := p.verifyBusiness(ctx, core.BusinessRecord{Name: "Joe's Cafe"})
	assert.False(t, result.Verified)
	assert.Equal(t, "Could not verify domain for Joe's Cafe", result.Error)
}

func TestLocationFromAddress(t *testing.T) {
	tests := []struct {
		address  string
		expected string
	}{
		{"123 Main St, Fort Smith, AR 72901", "Fort Smith, AR 72901"},
		{"Fort Smith", "Fort Smith"},
		{"", ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.expected, locationFromAddress(tc.address))
	}
}
