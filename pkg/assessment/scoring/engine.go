package scoring

import (
	"fmt"
	"strings"
	"unicode"

	"riskiq-be/pkg/assessment/report"
	"riskiq-be/pkg/catalog"
)

// Engine scores free-text answers against category scoring focuses. The
// heuristic is deliberately simple but bounded, deterministic and monotonic:
// a richer answer with more relevant signals never scores lower than a vaguer
// one under the same rules.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// controlVocabulary lists terms that signal concrete security controls
// independent of category.
var controlVocabulary = []string{
	"encrypt", "mfa", "audit", "policy", "monitor", "test", "train",
	"review", "backup", "segment", "patch", "least privilege", "logging",
	"iso 27001", "nist", "soc 2", "firewall", "tls", "aes",
}

// Score evaluates an answer against the category's scoring focus and returns
// a value in [0, maxScore] plus an explanation of what was (not) found.
func (e *Engine) Score(cat catalog.RiskCategory, answer string, maxScore float64) (float64, string) {
	text := strings.ToLower(strings.TrimSpace(answer))
	words := strings.Fields(text)

	// Substance tier: longer answers carry more detail. Non-decreasing in
	// answer length by construction.
	var substance float64
	switch n := len(words); {
	case n == 0:
		substance = 0
	case n < 5:
		substance = 1
	case n < 20:
		substance = 3
	case n < 60:
		substance = 4
	default:
		substance = 5
	}

	// Signal count: distinct focus/control terms present in the answer. The
	// focus text is comma-separated prose, so terms are cut on anything that
	// is not a letter or digit.
	focusTerms := strings.FieldsFunc(strings.ToLower(cat.ScoringFocus), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	var matched []string
	seen := make(map[string]bool)
	for _, term := range append(focusTerms, controlVocabulary...) {
		if len(term) < 3 || seen[term] {
			continue
		}
		if strings.Contains(text, term) {
			matched = append(matched, term)
			seen[term] = true
		}
	}
	signals := float64(len(matched))
	if signals > 5 {
		signals = 5
	}

	score := substance + signals
	if score > maxScore {
		score = maxScore
	}
	if score < 0 {
		score = 0
	}

	var explanation string
	switch {
	case len(words) == 0:
		explanation = "No answer provided."
	case len(matched) == 0:
		explanation = "Answer contains no recognizable controls for this category."
	default:
		explanation = fmt.Sprintf("Answer references %d relevant control(s): %s.",
			len(matched), strings.Join(matched, ", "))
	}
	return score, explanation
}

// Aggregate computes the overall weighted score on a 0..100 scale. Weights
// are re-normalized when the catalog is misconfigured rather than letting the
// result drift out of range, and the final value is clamped either way.
func (e *Engine) Aggregate(rows []report.RiskTableRow) float64 {
	if len(rows) == 0 {
		return 0
	}

	var totalWeight float64
	for _, row := range rows {
		totalWeight += row.Weight
	}
	if totalWeight <= 0 {
		return 0
	}

	var sum float64
	for _, row := range rows {
		if row.MaxScore <= 0 {
			continue
		}
		sum += (row.Score / row.MaxScore) * (row.Weight / totalWeight)
	}

	overall := sum * 100
	if overall < 0 {
		return 0
	}
	if overall > 100 {
		return 100
	}
	return overall
}
