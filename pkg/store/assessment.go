package store

// CompanyProfile is the intake snapshot an assessment is generated from.
// It is immutable once handed to the question generator.
type CompanyProfile struct {
	Name                 string   `json:"name,omitempty"`
	Industry             string   `json:"industry"`
	Size                 string   `json:"size"`
	TechAdoption         string   `json:"tech_adoption"`
	SecurityControls     string   `json:"security_controls"`
	RiskPosture          string   `json:"risk_posture"`
	EmergingTechnologies []string `json:"emerging_technologies"`
}

// RiskQuestion is one generated question, owned by exactly one catalog
// category.
type RiskQuestion struct {
	Id         string `json:"id"`
	Question   string `json:"question"`
	CategoryId string `json:"category_id"`
	HelperText string `json:"helper_text,omitempty"`
	MaxScore   int    `json:"max_score"`
}

// RiskAnswer is the free-text answer to a previously issued question.
type RiskAnswer struct {
	QuestionId string `json:"question_id"`
	Answer     string `json:"answer"`
}
