package store

import "riskiq-be/pkg/assessment/report"

// Session is the in-memory state for one assessment conversation. It is
// created on profile submission, mutated across the two request boundaries
// and discarded once results are delivered. Never persisted.
type Session struct {
	Id    string `json:"id"`
	State string `json:"state"`

	// Set only while State == StateError, so a retry can resume the step
	// that failed instead of restarting the session.
	OriginState string `json:"origin_state,omitempty"`
	FailedStep  string `json:"failed_step,omitempty"`

	Profile   *CompanyProfile   `json:"profile"`
	Questions []RiskQuestion    `json:"questions"`
	Answers   map[string]string `json:"answers"` // question id -> answer text

	Result *report.AssessmentResult `json:"result,omitempty"`
}

const (
	StateGreeting            = "GREETING"
	StateCollectingProfile   = "COLLECTING_PROFILE"
	StateAwaitingQuestions   = "AWAITING_QUESTIONS"
	StateAskingRiskQuestions = "ASKING_RISK_QUESTIONS"
	StateSubmitting          = "SUBMITTING"
	StateShowingResults      = "SHOWING_RESULTS"
	StateError               = "ERROR"
)

// IssuedQuestion reports whether the given question id belongs to this
// session's issued set.
func (s *Session) IssuedQuestion(questionId string) bool {
	for _, q := range s.Questions {
		if q.Id == questionId {
			return true
		}
	}
	return false
}

// FullyAnswered reports whether every issued question has a recorded answer.
func (s *Session) FullyAnswered() bool {
	if len(s.Questions) == 0 {
		return false
	}
	for _, q := range s.Questions {
		if _, ok := s.Answers[q.Id]; !ok {
			return false
		}
	}
	return true
}
