package advice

import (
	"context"
	"errors"
	"testing"
	"time"

	"riskiq-be/pkg/assessment/report"
	"riskiq-be/pkg/llm"
	"riskiq-be/pkg/store"
)

// fakeLLM returns canned responses, one per call, and counts invocations.
type fakeLLM struct {
	responses []string
	errs      []error
	calls     int
}

func (f *fakeLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return f.Generate(ctx, "", options...)
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	i := f.calls
	f.calls++
	var res string
	var err error
	if i < len(f.responses) {
		res = f.responses[i]
	}
	if i < len(f.errs) {
		err = f.errs[i]
	}
	return res, err
}

func testRows() []report.RiskTableRow {
	return []report.RiskTableRow{
		{CategoryId: "data_protection", CategoryName: "Data Protection", Score: 7, MaxScore: 10, Weight: 0.5},
		{CategoryId: "access_control", CategoryName: "Access Control", Score: 4, MaxScore: 10, Weight: 0.5},
	}
}

func synthProfile() *store.CompanyProfile {
	return &store.CompanyProfile{
		Industry:             "Finance",
		Size:                 "SME",
		TechAdoption:         "moderate",
		SecurityControls:     "MFA",
		RiskPosture:          "balanced",
		EmergingTechnologies: []string{"AI"},
	}
}

const validAdviceJSON = `{
	"recommendations": ["Adopt an AI governance policy"],
	"resources": [{"title": "NIST AI RMF", "url": "https://www.nist.gov/itl/ai-risk-management-framework"}],
	"insights": ["Access control lags behind data protection"]
}`

func TestSynthesizeParsesCleanJSON(t *testing.T) {
	provider := &fakeLLM{responses: []string{validAdviceJSON}}
	s := NewSynthesizer(provider, time.Second, 1, nil)

	result := s.Synthesize(context.Background(), synthProfile(), testRows(), 55, "some context")

	if result.Degraded {
		t.Fatalf("unexpected degraded result, raw: %q", result.RawModelOutput)
	}
	if len(result.Recommendations) != 1 || len(result.Resources) != 1 || len(result.Insights) != 1 {
		t.Errorf("parsed advice incomplete: %+v", result)
	}
	if result.RiskLevel != report.LevelAtRisk {
		t.Errorf("RiskLevel = %q, want %q", result.RiskLevel, report.LevelAtRisk)
	}
	if provider.calls != 1 {
		t.Errorf("provider called %d times, want 1", provider.calls)
	}
}

func TestSynthesizeExtractsJSONFromProse(t *testing.T) {
	provider := &fakeLLM{responses: []string{
		"Sure! Here is the assessment you asked for:\n\n" + validAdviceJSON + "\n\nLet me know if you need anything else.",
	}}
	s := NewSynthesizer(provider, time.Second, 1, nil)

	result := s.Synthesize(context.Background(), synthProfile(), testRows(), 55, "")

	if result.Degraded {
		t.Fatalf("unexpected degraded result, raw: %q", result.RawModelOutput)
	}
	if len(result.Recommendations) != 1 {
		t.Errorf("Recommendations = %v", result.Recommendations)
	}
}

func TestSynthesizeRetriesOnceOnEmptyResponse(t *testing.T) {
	provider := &fakeLLM{responses: []string{"", validAdviceJSON}}
	s := NewSynthesizer(provider, time.Second, 1, nil)

	result := s.Synthesize(context.Background(), synthProfile(), testRows(), 55, "")

	if result.Degraded {
		t.Fatal("expected retry to recover")
	}
	if provider.calls != 2 {
		t.Errorf("provider called %d times, want 2", provider.calls)
	}
}

func TestSynthesizeDegradesAfterRepeatedFailure(t *testing.T) {
	provider := &fakeLLM{
		responses: []string{"", ""},
		errs:      []error{errors.New("timeout"), errors.New("timeout")},
	}
	s := NewSynthesizer(provider, time.Second, 1, nil)

	result := s.Synthesize(context.Background(), synthProfile(), testRows(), 25, "")

	if !result.Degraded {
		t.Fatal("expected degraded result")
	}
	if len(result.RiskTable) != 2 {
		t.Errorf("degraded result lost the risk table: %d rows", len(result.RiskTable))
	}
	if result.OverallScore != 25 || result.RiskLevel != report.LevelCritical {
		t.Errorf("degraded result lost the score: %f / %s", result.OverallScore, result.RiskLevel)
	}
	if provider.calls != 2 {
		t.Errorf("provider called %d times, want 2 (initial + one retry)", provider.calls)
	}
}

func TestSynthesizeDegradesOnGarbageOutput(t *testing.T) {
	provider := &fakeLLM{responses: []string{"I cannot help with that."}}
	s := NewSynthesizer(provider, time.Second, 0, nil)

	result := s.Synthesize(context.Background(), synthProfile(), testRows(), 80, "")

	if !result.Degraded {
		t.Fatal("expected degraded result for unparseable output")
	}
	if result.RawModelOutput != "I cannot help with that." {
		t.Errorf("RawModelOutput = %q", result.RawModelOutput)
	}
}

func TestSynthesizeStopsWhenCallerCancels(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	provider := &fakeLLM{responses: []string{validAdviceJSON}}
	s := NewSynthesizer(provider, time.Second, 5, nil)

	result := s.Synthesize(ctx, synthProfile(), testRows(), 50, "")

	if !result.Degraded {
		t.Fatal("expected degraded result on cancelled context")
	}
	if provider.calls != 0 {
		t.Errorf("provider called %d times after cancellation, want 0", provider.calls)
	}
}

func TestParseAdvice(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		wantOk bool
	}{
		{"strict json", validAdviceJSON, true},
		{"embedded json", "prefix " + validAdviceJSON + " suffix", true},
		{"empty object", "{}", false},
		{"not json", "plain refusal text", false},
		{"empty string", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := parseAdvice(tt.raw)
			if ok != tt.wantOk {
				t.Errorf("parseAdvice ok = %v, want %v", ok, tt.wantOk)
			}
		})
	}
}
