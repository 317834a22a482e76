// Package pipeline drives businesses through verification, fingerprinting,
// signal extraction, and scoring. Nothing in here returns an error for a
// single bad record: failures become unverified EXCLUDE prospects and the
// batch keeps moving.
package pipeline

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/amosroger91/AI-Marketing-Agent/internal/core"
	"github.com/amosroger91/AI-Marketing-Agent/internal/fingerprint"
	"github.com/amosroger91/AI-Marketing-Agent/internal/metrics"
	"github.com/amosroger91/AI-Marketing-Agent/internal/osint"
	"github.com/amosroger91/AI-Marketing-Agent/internal/scoring"
	"github.com/amosroger91/AI-Marketing-Agent/internal/signals"
	"github.com/amosroger91/AI-Marketing-Agent/internal/verify"
)

type Config struct {
	// Workers sizes the I/O-bound pool; 1 reproduces strictly sequential
	// processing.
	Workers       int
	GuessFallback bool
	EnableOSINT   bool
}

// Deps wires the pipeline's collaborators. Assessor, Gatherer, and Metrics
// are optional.
type Deps struct {
	Verifier *verify.Verifier
	Detector *fingerprint.Detector
	Scorer   *scoring.Scorer
	Assessor scoring.Assessor
	Gatherer *osint.Gatherer
	Metrics  *metrics.Collector
	Logger   *zap.Logger
}

type Pipeline struct {
	cfg      Config
	verifier *verify.Verifier
	detector *fingerprint.Detector
	scorer   *scoring.Scorer
	assessor scoring.Assessor
	gatherer *osint.Gatherer
	metrics  *metrics.Collector
	logger   *zap.Logger
}

func New(cfg Config, deps Deps) *Pipeline {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		cfg:      cfg,
		verifier: deps.Verifier,
		detector: deps.Detector,
		scorer:   deps.Scorer,
		assessor: deps.Assessor,
		gatherer: deps.Gatherer,
		metrics:  deps.Metrics,
		logger:   logger,
	}
}

// Run processes every business and returns one prospect per input, in input
// order regardless of worker interleaving.
func (p *Pipeline) Run(ctx context.Context, businesses []core.BusinessRecord) []core.ScoredProspect {
	results := make([]core.ScoredProspect, len(businesses))

	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < p.cfg.Workers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			logger := p.logger.With(zap.Int("worker_id", workerID))
			for idx := range jobs {
				results[idx] = p.processBusiness(ctx, logger, businesses[idx])
			}
		}(w)
	}

	for i := range businesses {
		select {
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			// Unprocessed entries still get an explanatory record.
			for j := range results {
				if results[j].ID == "" {
					results[j] = p.cancelledProspect(businesses[j])
				}
			}
			return results
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	return results
}

func (p *Pipeline) processBusiness(ctx context.Context, logger *zap.Logger, business core.BusinessRecord) core.ScoredProspect {
	start := time.Now()

	verification := p.verifyBusiness(ctx, business)
	if p.metrics != nil {
		p.metrics.RecordVerification(verification.Verified, time.Since(start))
	}

	prospect := core.ScoredProspect{
		ID:           uuid.NewString(),
		Business:     business,
		Verification: verification,
		ScoredAt:     time.Now(),
	}

	if !verification.Verified {
		reason := verification.Error
		if reason == "" {
			reason = fmt.Sprintf("Could not verify domain for %s", business.Name)
		}
		prospect.Recommendation = core.RecommendExclude
		prospect.Reasons = []string{reason}
		if p.metrics != nil {
			p.metrics.RecordProspect(string(prospect.Recommendation))
		}
		logger.Debug("business not verified",
			zap.String("business", business.Name),
			zap.String("reason", reason),
		)
		return prospect
	}

	fpStart := time.Now()
	stack := p.detector.AnalyzeTechStack(ctx, verification.Domain)
	if p.metrics != nil {
		p.metrics.RecordFingerprint(time.Since(fpStart))
	}

	sig := signals.Extract(stack)
	prospect.TechStack = stack
	prospect.Signals = &sig

	prospect.Score, prospect.Recommendation, prospect.Reasons = p.scoreProspect(ctx, business, verification.Domain, stack, sig)
	if p.metrics != nil {
		p.metrics.RecordProspect(string(prospect.Recommendation))
	}

	logger.Debug("business scored",
		zap.String("business", business.Name),
		zap.String("domain", verification.Domain),
		zap.Int("score", prospect.Score),
		zap.String("recommendation", string(prospect.Recommendation)),
		zap.Duration("duration", time.Since(start)),
	)
	return prospect
}

// verifyBusiness tries the provided website first, then the guess patterns.
// Search stops at the first candidate that verifies.
func (p *Pipeline) verifyBusiness(ctx context.Context, business core.BusinessRecord) core.VerificationResult {
	var firstFailure *core.VerificationResult

	if business.Website != "" {
		result := p.verifier.VerifyDomain(ctx, business.Website)
		if result.Verified {
			return result
		}
		firstFailure = &result
	}

	if p.cfg.GuessFallback {
		for _, candidate := range GuessCandidates(business.Name) {
			if ctx.Err() != nil {
				break
			}
			if p.metrics != nil {
				p.metrics.RecordGuessAttempt()
			}
			result := p.verifier.VerifyDomain(ctx, candidate)
			if result.Verified {
				return result
			}
		}
	}

	if firstFailure != nil {
		return *firstFailure
	}
	return core.VerificationResult{
		Error: fmt.Sprintf("Could not verify domain for %s", business.Name),
	}
}

func (p *Pipeline) scoreProspect(ctx context.Context, business core.BusinessRecord, domain string, stack *core.TechStack, sig core.SalesSignals) (int, core.Recommendation, []string) {
	if p.assessor == nil {
		return p.scorer.Score(business.Name, stack, sig)
	}

	findingCount := 0
	if p.cfg.EnableOSINT && p.gatherer != nil {
		findingCount = p.gatherer.Gather(ctx, domain).Count()
	}

	return p.scorer.ScoreWithAssessor(ctx, p.assessor, scoring.AssessRequest{
		Company:       business.Name,
		Location:      locationFromAddress(business.Address),
		Domain:        domain,
		OSINTFindings: findingCount,
		TechStack:     stack,
		Signals:       sig,
	})
}

func (p *Pipeline) cancelledProspect(business core.BusinessRecord) core.ScoredProspect {
	return core.ScoredProspect{
		ID:             uuid.NewString(),
		Business:       business,
		Recommendation: core.RecommendExclude,
		Reasons:        []string{"Run cancelled before processing"},
		ScoredAt:       time.Now(),
	}
}

// locationFromAddress pulls the city/state portion after the street part of
// a free-text address.
func locationFromAddress(address string) string {
	_, rest, found := strings.Cut(address, ",")
	if !found {
		return strings.TrimSpace(address)
	}
	return strings.TrimSpace(rest)
}
