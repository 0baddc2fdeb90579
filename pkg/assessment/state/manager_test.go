package state

import (
	"errors"
	"testing"

	"riskiq-be/pkg/assessment/report"
	"riskiq-be/pkg/store"
)

func testQuestions() []store.RiskQuestion {
	return []store.RiskQuestion{
		{Id: "q1", CategoryId: "data_protection", Question: "How?", MaxScore: 10},
		{Id: "q2", CategoryId: "access_control", Question: "How?", MaxScore: 10},
	}
}

func advanceToAsking(t *testing.T, m *Manager) *store.Session {
	t.Helper()
	session := m.StartSession("s-1")
	if err := m.SubmitProfile(session, &store.CompanyProfile{Industry: "Finance"}); err != nil {
		t.Fatal(err)
	}
	if err := m.QuestionsIssued(session, testQuestions()); err != nil {
		t.Fatal(err)
	}
	return session
}

func TestHappyPath(t *testing.T) {
	m := NewManager(nil)

	session := m.StartSession("s-1")
	if session.State != store.StateCollectingProfile {
		t.Fatalf("after start: state = %s, want COLLECTING_PROFILE", session.State)
	}

	if err := m.SubmitProfile(session, &store.CompanyProfile{Industry: "Finance"}); err != nil {
		t.Fatal(err)
	}
	if session.State != store.StateAwaitingQuestions {
		t.Fatalf("state = %s, want AWAITING_QUESTIONS", session.State)
	}

	if err := m.QuestionsIssued(session, testQuestions()); err != nil {
		t.Fatal(err)
	}
	if session.State != store.StateAskingRiskQuestions {
		t.Fatalf("state = %s, want ASKING_RISK_QUESTIONS", session.State)
	}

	if err := m.RecordAnswer(session, store.RiskAnswer{QuestionId: "q1", Answer: "answer one"}); err != nil {
		t.Fatal(err)
	}
	if err := m.RecordAnswer(session, store.RiskAnswer{QuestionId: "q2", Answer: "answer two"}); err != nil {
		t.Fatal(err)
	}

	if err := m.BeginSubmission(session); err != nil {
		t.Fatal(err)
	}
	if session.State != store.StateSubmitting {
		t.Fatalf("state = %s, want SUBMITTING", session.State)
	}

	if err := m.CompleteWithResult(session, &report.AssessmentResult{OverallScore: 70}); err != nil {
		t.Fatal(err)
	}
	if session.State != store.StateShowingResults {
		t.Fatalf("state = %s, want SHOWING_RESULTS", session.State)
	}
}

func TestQuestionsIssuedEmptySetIsError(t *testing.T) {
	m := NewManager(nil)
	session := m.StartSession("s-1")
	if err := m.SubmitProfile(session, &store.CompanyProfile{}); err != nil {
		t.Fatal(err)
	}

	if err := m.QuestionsIssued(session, nil); err == nil {
		t.Fatal("expected error for empty question set")
	}
	if session.State != store.StateError {
		t.Errorf("state = %s, want ERROR", session.State)
	}
	if session.FailedStep != "question_generation" {
		t.Errorf("FailedStep = %q", session.FailedStep)
	}
}

func TestRecordAnswerRejectsUnknownId(t *testing.T) {
	m := NewManager(nil)
	session := advanceToAsking(t, m)

	if err := m.RecordAnswer(session, store.RiskAnswer{QuestionId: "not-issued", Answer: "text"}); err == nil {
		t.Error("expected error for unknown question id")
	}
}

func TestRecordAnswerOverwriteIsAllowed(t *testing.T) {
	m := NewManager(nil)
	session := advanceToAsking(t, m)

	if err := m.RecordAnswer(session, store.RiskAnswer{QuestionId: "q1", Answer: "first"}); err != nil {
		t.Fatal(err)
	}
	if err := m.RecordAnswer(session, store.RiskAnswer{QuestionId: "q1", Answer: "revised"}); err != nil {
		t.Fatal(err)
	}
	if session.Answers["q1"] != "revised" {
		t.Errorf("answer = %q, want revised", session.Answers["q1"])
	}
}

func TestBeginSubmissionRequiresFullCoverage(t *testing.T) {
	m := NewManager(nil)
	session := advanceToAsking(t, m)

	if err := m.RecordAnswer(session, store.RiskAnswer{QuestionId: "q1", Answer: "only one"}); err != nil {
		t.Fatal(err)
	}
	if err := m.BeginSubmission(session); err == nil {
		t.Error("expected error with unanswered questions remaining")
	}
	if session.State != store.StateAskingRiskQuestions {
		t.Errorf("state = %s, must not advance", session.State)
	}
}

func TestErrorAndRetryRestoresOrigin(t *testing.T) {
	m := NewManager(nil)
	session := advanceToAsking(t, m)
	_ = m.RecordAnswer(session, store.RiskAnswer{QuestionId: "q1", Answer: "a"})
	_ = m.RecordAnswer(session, store.RiskAnswer{QuestionId: "q2", Answer: "b"})
	if err := m.BeginSubmission(session); err != nil {
		t.Fatal(err)
	}

	m.ToError(session, "retrieval")
	if session.State != store.StateError {
		t.Fatalf("state = %s, want ERROR", session.State)
	}
	if session.OriginState != store.StateSubmitting {
		t.Errorf("OriginState = %s, want SUBMITTING", session.OriginState)
	}

	// A second failure while already errored must not clobber the origin.
	m.ToError(session, "retrieval")
	if session.OriginState != store.StateSubmitting {
		t.Errorf("OriginState after double error = %s", session.OriginState)
	}

	restored, err := m.Retry(session)
	if err != nil {
		t.Fatal(err)
	}
	if restored != store.StateSubmitting || session.State != store.StateSubmitting {
		t.Errorf("retry restored %s / %s, want SUBMITTING", restored, session.State)
	}
	if session.OriginState != "" || session.FailedStep != "" {
		t.Error("retry must clear error bookkeeping")
	}
}

func TestRetryOutsideErrorState(t *testing.T) {
	m := NewManager(nil)
	session := advanceToAsking(t, m)

	if _, err := m.Retry(session); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("err = %v, want ErrInvalidTransition", err)
	}
}

func TestShowingResultsIsTerminal(t *testing.T) {
	m := NewManager(nil)
	session := advanceToAsking(t, m)
	_ = m.RecordAnswer(session, store.RiskAnswer{QuestionId: "q1", Answer: "a"})
	_ = m.RecordAnswer(session, store.RiskAnswer{QuestionId: "q2", Answer: "b"})
	_ = m.BeginSubmission(session)
	if err := m.CompleteWithResult(session, &report.AssessmentResult{}); err != nil {
		t.Fatal(err)
	}

	m.ToError(session, "anything")
	if session.State != store.StateShowingResults {
		t.Errorf("terminal state mutated to %s", session.State)
	}

	if err := m.BeginSubmission(session); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("err = %v, want ErrInvalidTransition", err)
	}
}

func TestInvalidTransitions(t *testing.T) {
	m := NewManager(nil)

	session := m.StartSession("s-1")
	// Answers before any questions were issued.
	if err := m.RecordAnswer(session, store.RiskAnswer{QuestionId: "q1", Answer: "a"}); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("err = %v, want ErrInvalidTransition", err)
	}
	// Completing straight from profile collection.
	if err := m.CompleteWithResult(session, &report.AssessmentResult{}); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("err = %v, want ErrInvalidTransition", err)
	}
}
