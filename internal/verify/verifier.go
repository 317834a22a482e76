package verify

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/amosroger91/AI-Marketing-Agent/internal/core"
)

const userAgent = "ProspectPipeline/1.0"

// Options configures a Verifier. The zero value is not usable; start from
// DefaultOptions.
type Options struct {
	Timeout     time.Duration // per-request budget
	Retries     int           // attempts per scheme
	RetryDelay  time.Duration // pause after a timeout before retrying
	RequireDNS  bool
	RequireHTTP bool
	RateLimit   rate.Limit // HTTP probes per second, 0 disables limiting
}

func DefaultOptions() Options {
	return Options{
		Timeout:     5 * time.Second,
		Retries:     2,
		RetryDelay:  500 * time.Millisecond,
		RequireDNS:  true,
		RequireHTTP: true,
	}
}

// Verifier checks DNS resolution and HTTP liveness for candidate domains.
// HTTP probe results are cached by domain for the lifetime of the instance,
// and the cache is safe for concurrent use, so repeated verification of the
// same domain is idempotent and issues no second request.
type Verifier struct {
	opts       Options
	timeout    time.Duration
	retries    int
	retryDelay time.Duration

	client   *http.Client
	resolver *net.Resolver
	limiter  *rate.Limiter
	logger   *zap.Logger

	mu    sync.Mutex
	cache map[string]httpProbe
}

func NewVerifier(opts Options, logger *zap.Logger) *Verifier {
	if opts.Timeout <= 0 {
		opts.Timeout = 5 * time.Second
	}
	if opts.Retries <= 0 {
		opts.Retries = 2
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = 500 * time.Millisecond
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	v := &Verifier{
		opts:       opts,
		timeout:    opts.Timeout,
		retries:    opts.Retries,
		retryDelay: opts.RetryDelay,
		client:     newProbeClient(opts.Timeout),
		resolver:   newResolver(opts.Timeout),
		logger:     logger,
		cache:      make(map[string]httpProbe),
	}
	if opts.RateLimit > 0 {
		v.limiter = rate.NewLimiter(opts.RateLimit, 1)
	}
	return v
}

// VerifyDomain runs the required checks against a candidate domain string.
// It never returns an error: failures are reported on the result, and the
// first failed check stops further processing.
func (v *Verifier) VerifyDomain(ctx context.Context, candidate string) core.VerificationResult {
	result := core.VerificationResult{Domain: candidate}

	if candidate == "" {
		result.Error = "Empty domain"
		return result
	}

	domain := DomainFromURL(candidate)
	if domain == "" {
		result.Error = "Invalid domain format"
		return result
	}
	result.Domain = domain

	if v.opts.RequireDNS {
		ok, info := v.DomainHasDNS(ctx, domain)
		result.DNSValid = ok
		if !ok {
			result.Error = info
			return result
		}
		result.DNSIP = info
	}

	if v.opts.RequireHTTP {
		ok, status, server := v.DomainRespondsToHTTP(ctx, domain)
		result.HTTPResponds = ok
		if !ok {
			result.Error = server
			return result
		}
		result.HTTPStatus = status
		result.Server = server
		result.Verified = true
	}

	return result
}

// VerifyMultiple verifies each non-empty candidate and returns only the
// verified subset.
func (v *Verifier) VerifyMultiple(ctx context.Context, candidates []string) []core.VerificationResult {
	var verified []core.VerificationResult
	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		result := v.VerifyDomain(ctx, candidate)
		if result.Verified {
			verified = append(verified, result)
		}
	}
	return verified
}
