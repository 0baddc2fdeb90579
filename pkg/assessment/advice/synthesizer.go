package advice

import (
	"context"
	"encoding/json"
	"log"
	"regexp"
	"strings"
	"time"

	"riskiq-be/pkg/assessment/report"
	"riskiq-be/pkg/llm"
	"riskiq-be/pkg/rag/prompt"
	"riskiq-be/pkg/store"
)

// Synthesizer turns scored answers plus retrieved context into narrative
// advice via the LLM. Synthesis can degrade (the model may time out or emit
// garbage) but it never fails the assessment: the scored table is always
// returned, with the Degraded marker and raw output preserved when the
// narrative step broke down.
type Synthesizer struct {
	llmProvider llm.LLMProvider
	timeout     time.Duration
	maxRetries  int
	logger      *log.Logger
}

func NewSynthesizer(llmProvider llm.LLMProvider, timeout time.Duration, maxRetries int, logger *log.Logger) *Synthesizer {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	if maxRetries < 0 {
		maxRetries = 0
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Synthesizer{
		llmProvider: llmProvider,
		timeout:     timeout,
		maxRetries:  maxRetries,
		logger:      logger,
	}
}

// modelAdvice is the JSON shape the prompt instructs the model to return.
type modelAdvice struct {
	Recommendations []string          `json:"recommendations"`
	Resources       []report.Resource `json:"resources"`
	Insights        []string          `json:"insights"`
}

// Synthesize builds the advice prompt, invokes the model under a bounded
// timeout (retrying once on timeout or empty response) and parses the reply.
// The returned result is always usable.
func (s *Synthesizer) Synthesize(
	ctx context.Context,
	profile *store.CompanyProfile,
	rows []report.RiskTableRow,
	overallScore float64,
	retrievedContext string,
) *report.AssessmentResult {

	result := &report.AssessmentResult{
		OverallScore: overallScore,
		RiskLevel:    report.LevelFor(overallScore),
		RiskTable:    rows,
	}

	promptText := prompt.NewAdviceBuilder(profile, rows, overallScore, result.RiskLevel, retrievedContext).Build()

	raw, err := s.callWithRetry(ctx, promptText)
	if err != nil || strings.TrimSpace(raw) == "" {
		s.logger.Printf("[ADVICE] Model call failed after retries: %v", err)
		result.Degraded = true
		result.RawModelOutput = raw
		return result
	}

	parsed, ok := parseAdvice(raw)
	if !ok {
		s.logger.Printf("[ADVICE] Could not parse model output (%d chars), returning degraded result", len(raw))
		result.Degraded = true
		result.RawModelOutput = raw
		return result
	}

	result.Recommendations = parsed.Recommendations
	result.Resources = parsed.Resources
	result.Insights = parsed.Insights
	return result
}

func (s *Synthesizer) callWithRetry(ctx context.Context, promptText string) (string, error) {
	var raw string
	var err error

	for attempt := 0; attempt <= s.maxRetries; attempt++ {
		if ctx.Err() != nil {
			// Caller abandoned the request; do not await another attempt.
			return raw, ctx.Err()
		}

		attemptCtx, cancel := context.WithTimeout(ctx, s.timeout)
		raw, err = s.llmProvider.Generate(attemptCtx, promptText, llm.WithTemperature(0.2))
		cancel()

		if err == nil && strings.TrimSpace(raw) != "" {
			return raw, nil
		}
		s.logger.Printf("[ADVICE] Attempt %d failed: err=%v, empty=%v", attempt+1, err, strings.TrimSpace(raw) == "")
	}
	return raw, err
}

var jsonObjectPattern = regexp.MustCompile(`\{[\s\S]*\}`)

// parseAdvice tries strict unmarshal first, then a best-effort extraction of
// the first JSON object embedded in surrounding prose.
func parseAdvice(raw string) (*modelAdvice, bool) {
	var advice modelAdvice
	if err := json.Unmarshal([]byte(raw), &advice); err == nil && !advice.empty() {
		return &advice, true
	}

	if match := jsonObjectPattern.FindString(raw); match != "" {
		if err := json.Unmarshal([]byte(match), &advice); err == nil && !advice.empty() {
			return &advice, true
		}
	}
	return nil, false
}

func (a *modelAdvice) empty() bool {
	return len(a.Recommendations) == 0 && len(a.Resources) == 0 && len(a.Insights) == 0
}
