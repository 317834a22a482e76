package scoring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/amosroger91/AI-Marketing-Agent/internal/core"
)

// AssessRequest is the context handed to an external assessor.
type AssessRequest struct {
	Company       string            `json:"company"`
	Location      string            `json:"location"`
	Domain        string            `json:"domain"`
	OSINTFindings int               `json:"osint_findings"`
	TechStack     *core.TechStack   `json:"tech_stack"`
	Signals       core.SalesSignals `json:"sales_signals"`
}

// Assessment is what an assessor returns.
type Assessment struct {
	Score          int                 `json:"score"`
	Recommendation core.Recommendation `json:"recommendation"`
	Reasons        []string            `json:"reasons"`
}

// Assessor is an optional external path for judging sales fit, typically an
// LLM behind a command-line tool. Its failure must never surface to callers
// of ScoreWithAssessor; the deterministic scorer is the fallback.
type Assessor interface {
	Assess(ctx context.Context, req AssessRequest) (*Assessment, error)
}

// ScoreWithAssessor prefers the assessor's judgment but falls back to the
// deterministic Score on any failure. The exclusion keyword check remains an
// absolute short-circuit either way.
func (s *Scorer) ScoreWithAssessor(ctx context.Context, assessor Assessor, req AssessRequest) (int, core.Recommendation, []string) {
	if keyword, matched := s.matchExclusion(req.Company); matched {
		return 0, core.RecommendExclude, []string{fmt.Sprintf("Matches exclusion keyword: %s", keyword)}
	}

	if assessor != nil {
		if assessment, err := assessor.Assess(ctx, req); err == nil && assessment != nil {
			return assessment.Score, assessment.Recommendation, assessment.Reasons
		}
	}

	return s.Score(req.Company, req.TechStack, req.Signals)
}

// ExecAssessor pipes the request as JSON into an external command and
// extracts a JSON assessment from its stdout.
type ExecAssessor struct {
	command string
	timeout time.Duration
	logger  *zap.Logger
}

func NewExecAssessor(command string, timeout time.Duration, logger *zap.Logger) *ExecAssessor {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExecAssessor{command: command, timeout: timeout, logger: logger}
}

func (a *ExecAssessor) Assess(ctx context.Context, req AssessRequest) (*Assessment, error) {
	input, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("assessor: encode request: %w", err)
	}

	runCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, a.command)
	cmd.Stdin = bytes.NewReader(input)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		a.logger.Debug("assessor command failed", zap.String("command", a.command), zap.Error(err))
		return nil, fmt.Errorf("assessor: %w", err)
	}

	assessment, err := extractAssessment(stdout.String())
	if err != nil {
		return nil, err
	}
	return assessment, nil
}

// extractAssessment pulls the first JSON object out of free-form command
// output; assessor tools tend to wrap their JSON in prose.
func extractAssessment(output string) (*Assessment, error) {
	start := strings.Index(output, "{")
	end := strings.LastIndex(output, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("assessor: no JSON object in output")
	}

	var assessment Assessment
	if err := json.Unmarshal([]byte(output[start:end+1]), &assessment); err != nil {
		return nil, fmt.Errorf("assessor: decode output: %w", err)
	}

	switch assessment.Recommendation {
	case core.RecommendContact, core.RecommendMaybe, core.RecommendExclude:
	default:
		return nil, fmt.Errorf("assessor: unknown recommendation %q", assessment.Recommendation)
	}
	return &assessment, nil
}
