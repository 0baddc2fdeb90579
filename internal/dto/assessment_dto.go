package dto

type InitializeAssessmentRequest struct {
	Name                 string   `json:"name"`
	Industry             string   `json:"industry" validate:"required"`
	Size                 string   `json:"size" validate:"required"`
	TechAdoption         string   `json:"tech_adoption" validate:"required"`
	SecurityControls     string   `json:"security_controls" validate:"required"`
	RiskPosture          string   `json:"risk_posture" validate:"required"`
	EmergingTechnologies []string `json:"emerging_technologies" validate:"required,min=1,dive,required"`
}

type RiskQuestionDTO struct {
	Id         string `json:"id"`
	Question   string `json:"question"`
	CategoryId string `json:"category_id"`
	HelperText string `json:"helper_text,omitempty"`
	MaxScore   int    `json:"max_score"`
}

type InitializeAssessmentResponse struct {
	SessionId string            `json:"session_id"`
	Questions []RiskQuestionDTO `json:"questions"`
}

type RiskAnswerDTO struct {
	QuestionId string `json:"question_id" validate:"required"`
	Answer     string `json:"answer" validate:"required"`
}

type SubmitAnswersRequest struct {
	SessionId string          `json:"session_id" validate:"required"`
	Answers   []RiskAnswerDTO `json:"answers" validate:"required,min=1,dive"`
}

type RiskTableRowDTO struct {
	CategoryId   string  `json:"category_id"`
	CategoryName string  `json:"category_name"`
	Score        float64 `json:"score"`
	MaxScore     float64 `json:"max_score"`
	Weight       float64 `json:"weight"`
	Explanation  string  `json:"explanation"`
}

type ResourceDTO struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type AssessmentResultResponse struct {
	SessionId       string            `json:"session_id"`
	OverallScore    float64           `json:"overall_score"`
	RiskLevel       string            `json:"risk_level"`
	RiskTable       []RiskTableRowDTO `json:"risk_table"`
	Recommendations []string          `json:"recommendations"`
	Resources       []ResourceDTO     `json:"resources"`
	Insights        []string          `json:"insights"`
	Degraded        bool              `json:"degraded"`
	RawModelOutput  string            `json:"raw_model_output,omitempty"`
}

type HealthResponse struct {
	IndexState       string `json:"index_state"`
	Ready            bool   `json:"ready"`
	DocumentsIndexed int64  `json:"documents_indexed"`
	ChunksIndexed    int64  `json:"chunks_indexed"`
}
