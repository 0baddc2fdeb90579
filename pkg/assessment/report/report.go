package report

// RiskTableRow is the scored outcome for a single category.
type RiskTableRow struct {
	CategoryId   string  `json:"category_id"`
	CategoryName string  `json:"category_name"`
	Definition   string  `json:"definition"`
	Score        float64 `json:"score"`
	MaxScore     float64 `json:"max_score"`
	Weight       float64 `json:"weight"`
	Explanation  string  `json:"explanation"`
}

// Resource is a title + URL pair pointing at follow-up material.
type Resource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// AssessmentResult is the full outcome of one assessment run. When the
// narrative synthesis step fails, Degraded is set and RawModelOutput keeps
// whatever the model produced; the scored table is always populated.
type AssessmentResult struct {
	OverallScore    float64        `json:"overall_score"`
	RiskLevel       string         `json:"risk_level"`
	RiskTable       []RiskTableRow `json:"risk_table"`
	Recommendations []string       `json:"recommendations"`
	Resources       []Resource     `json:"resources"`
	Insights        []string       `json:"insights"`
	Degraded        bool           `json:"degraded"`
	RawModelOutput  string         `json:"raw_model_output,omitempty"`
}

const (
	LevelCritical = "Critical"
	LevelAtRisk   = "At Risk"
	LevelLow      = "Low Risk"
)

// LevelFor bands an overall score into a risk level.
func LevelFor(score float64) string {
	switch {
	case score <= 30:
		return LevelCritical
	case score <= 60:
		return LevelAtRisk
	default:
		return LevelLow
	}
}
