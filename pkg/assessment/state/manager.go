package state

import (
	"errors"
	"fmt"
	"log"

	"riskiq-be/pkg/assessment/report"
	"riskiq-be/pkg/store"
)

// ErrInvalidTransition is returned when a session is asked to advance from a
// state it is not in. ShowingResults is terminal; nothing advances from it.
var ErrInvalidTransition = errors.New("invalid session state transition")

// Manager owns the conversation state machine:
//
//	Greeting -> CollectingProfile -> AwaitingQuestions ->
//	AskingRiskQuestions -> Submitting -> ShowingResults
//
// ErrorState is reachable from every non-terminal state and remembers where
// it came from, so a retry re-attempts the failed step instead of restarting
// the session.
type Manager struct {
	logger *log.Logger
}

func NewManager(logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.Default()
	}
	return &Manager{logger: logger}
}

// StartSession creates a fresh session. Greeting advances to
// CollectingProfile automatically, no external input required.
func (m *Manager) StartSession(id string) *store.Session {
	session := &store.Session{
		Id:      id,
		State:   store.StateGreeting,
		Answers: make(map[string]string),
	}
	session.State = store.StateCollectingProfile
	m.logger.Printf("[STATE] Session %s: GREETING -> COLLECTING_PROFILE", id)
	return session
}

// SubmitProfile stores the completed profile and moves to AwaitingQuestions.
func (m *Manager) SubmitProfile(session *store.Session, profile *store.CompanyProfile) error {
	if err := m.require(session, store.StateCollectingProfile); err != nil {
		return err
	}
	session.Profile = profile
	session.State = store.StateAwaitingQuestions
	m.logger.Printf("[STATE] Session %s: COLLECTING_PROFILE -> AWAITING_QUESTIONS", session.Id)
	return nil
}

// QuestionsIssued records the generated question set. An empty set is a
// generation failure and lands the session in ErrorState.
func (m *Manager) QuestionsIssued(session *store.Session, questions []store.RiskQuestion) error {
	if err := m.require(session, store.StateAwaitingQuestions); err != nil {
		return err
	}
	if len(questions) == 0 {
		m.ToError(session, "question_generation")
		return fmt.Errorf("question generation returned an empty set")
	}
	session.Questions = questions
	session.State = store.StateAskingRiskQuestions
	m.logger.Printf("[STATE] Session %s: AWAITING_QUESTIONS -> ASKING_RISK_QUESTIONS (%d questions)",
		session.Id, len(questions))
	return nil
}

// RecordAnswer stores one answer. Answers may arrive in any order, but every
// id must belong to the issued set.
func (m *Manager) RecordAnswer(session *store.Session, answer store.RiskAnswer) error {
	if err := m.require(session, store.StateAskingRiskQuestions); err != nil {
		return err
	}
	if !session.IssuedQuestion(answer.QuestionId) {
		return fmt.Errorf("answer references unknown question id %s", answer.QuestionId)
	}
	session.Answers[answer.QuestionId] = answer.Answer
	return nil
}

// BeginSubmission advances to Submitting once full coverage is reached.
func (m *Manager) BeginSubmission(session *store.Session) error {
	if err := m.require(session, store.StateAskingRiskQuestions); err != nil {
		return err
	}
	if !session.FullyAnswered() {
		return fmt.Errorf("submission requires an answer for every issued question (%d/%d answered)",
			len(session.Answers), len(session.Questions))
	}
	session.State = store.StateSubmitting
	m.logger.Printf("[STATE] Session %s: ASKING_RISK_QUESTIONS -> SUBMITTING", session.Id)
	return nil
}

// CompleteWithResult finishes the session. ShowingResults is terminal.
func (m *Manager) CompleteWithResult(session *store.Session, result *report.AssessmentResult) error {
	if err := m.require(session, store.StateSubmitting); err != nil {
		return err
	}
	session.Result = result
	session.State = store.StateShowingResults
	m.logger.Printf("[STATE] Session %s: SUBMITTING -> SHOWING_RESULTS (score %.1f, degraded=%v)",
		session.Id, result.OverallScore, result.Degraded)
	return nil
}

// ToError moves the session to ErrorState, remembering the originating state
// and which step failed. Calling it while already in ErrorState keeps the
// original origin.
func (m *Manager) ToError(session *store.Session, failedStep string) {
	if session.State == store.StateShowingResults {
		return // terminal, nothing to fail
	}
	if session.State != store.StateError {
		session.OriginState = session.State
	}
	session.State = store.StateError
	session.FailedStep = failedStep
	m.logger.Printf("[STATE] Session %s: -> ERROR (origin=%s, step=%s)",
		session.Id, session.OriginState, failedStep)
}

// Retry leaves ErrorState by restoring the originating state, so the caller
// re-attempts the failed step.
func (m *Manager) Retry(session *store.Session) (string, error) {
	if session.State != store.StateError {
		return "", fmt.Errorf("%w: retry from %s", ErrInvalidTransition, session.State)
	}
	restored := session.OriginState
	session.State = restored
	session.OriginState = ""
	session.FailedStep = ""
	m.logger.Printf("[STATE] Session %s: ERROR -> %s (retry)", session.Id, restored)
	return restored, nil
}

func (m *Manager) require(session *store.Session, expected string) error {
	if session.State != expected {
		return fmt.Errorf("%w: session %s is in %s, expected %s",
			ErrInvalidTransition, session.Id, session.State, expected)
	}
	return nil
}
