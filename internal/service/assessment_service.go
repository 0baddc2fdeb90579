package service

import (
	"context"
	"errors"
	"strings"

	"riskiq-be/internal/apperror"
	"riskiq-be/internal/dto"
	"riskiq-be/internal/repository/memory"
	"riskiq-be/pkg/assessment/advice"
	"riskiq-be/pkg/assessment/question"
	"riskiq-be/pkg/assessment/report"
	"riskiq-be/pkg/assessment/scoring"
	"riskiq-be/pkg/assessment/state"
	"riskiq-be/pkg/catalog"
	"riskiq-be/pkg/corpus"
	"riskiq-be/pkg/rag/retriever"
	"riskiq-be/pkg/store"

	"github.com/google/uuid"
)

// IndexStatus is the readiness view of the corpus index the service needs.
type IndexStatus interface {
	Ready() bool
	State() corpus.State
}

// IngestStats exposes ingestion progress counters for the health surface.
type IngestStats interface {
	DocumentsIndexed() int64
	ChunksIndexed() int64
}

// IAssessmentService defines the assessment orchestration interface
type IAssessmentService interface {
	InitializeAssessment(ctx context.Context, req *dto.InitializeAssessmentRequest) (*dto.InitializeAssessmentResponse, error)
	SubmitAnswers(ctx context.Context, req *dto.SubmitAnswersRequest) (*dto.AssessmentResultResponse, error)
	Health() *dto.HealthResponse
}

// assessmentService coordinates the domain components across the two request
// boundaries. Session state is the only thing it mutates, and each session is
// owned exclusively by the caller that created it.
type assessmentService struct {
	index        IndexStatus
	ingestStats  IngestStats
	retriever    *retriever.Retriever
	generator    *question.Generator
	scorer       *scoring.Engine
	synthesizer  *advice.Synthesizer
	stateManager *state.Manager
	sessionRepo  *memory.SessionRepository
	catalog      *catalog.Catalog
}

func NewAssessmentService(
	index IndexStatus,
	ingestStats IngestStats,
	ragRetriever *retriever.Retriever,
	generator *question.Generator,
	scorer *scoring.Engine,
	synthesizer *advice.Synthesizer,
	stateManager *state.Manager,
	sessionRepo *memory.SessionRepository,
	cat *catalog.Catalog,
) IAssessmentService {
	return &assessmentService{
		index:        index,
		ingestStats:  ingestStats,
		retriever:    ragRetriever,
		generator:    generator,
		scorer:       scorer,
		synthesizer:  synthesizer,
		stateManager: stateManager,
		sessionRepo:  sessionRepo,
		catalog:      cat,
	}
}

func (s *assessmentService) InitializeAssessment(ctx context.Context, req *dto.InitializeAssessmentRequest) (*dto.InitializeAssessmentResponse, error) {
	if !s.index.Ready() {
		return nil, apperror.NewServiceNotReady("risk corpus is still ingesting, retry shortly")
	}

	profile := &store.CompanyProfile{
		Name:                 req.Name,
		Industry:             req.Industry,
		Size:                 req.Size,
		TechAdoption:         req.TechAdoption,
		SecurityControls:     req.SecurityControls,
		RiskPosture:          req.RiskPosture,
		EmergingTechnologies: req.EmergingTechnologies,
	}

	session := s.stateManager.StartSession(uuid.NewString())
	if err := s.stateManager.SubmitProfile(session, profile); err != nil {
		return nil, apperror.NewInternal("session bootstrap failed", err)
	}

	questions, err := s.generator.Generate(profile)
	if err != nil {
		if errors.Is(err, question.ErrInvalidProfile) {
			return nil, apperror.NewValidation(err.Error())
		}
		return nil, apperror.NewInternal("question generation failed", err)
	}

	if err := s.stateManager.QuestionsIssued(session, questions); err != nil {
		// Empty set already moved the session to ErrorState; the session was
		// never handed out, so drop it.
		return nil, apperror.NewInternal("question generation failed", err)
	}

	s.sessionRepo.Save(session)

	res := &dto.InitializeAssessmentResponse{
		SessionId: session.Id,
		Questions: make([]dto.RiskQuestionDTO, len(questions)),
	}
	for i, q := range questions {
		res.Questions[i] = dto.RiskQuestionDTO{
			Id:         q.Id,
			Question:   q.Question,
			CategoryId: q.CategoryId,
			HelperText: q.HelperText,
			MaxScore:   q.MaxScore,
		}
	}
	return res, nil
}

func (s *assessmentService) SubmitAnswers(ctx context.Context, req *dto.SubmitAnswersRequest) (*dto.AssessmentResultResponse, error) {
	session, found := s.sessionRepo.Get(req.SessionId)
	if !found {
		return nil, apperror.NewValidation("unknown or expired session")
	}

	// An errored session resumes at the step that failed.
	if session.State == store.StateError {
		if _, err := s.stateManager.Retry(session); err != nil {
			return nil, apperror.NewInternal("session retry failed", err)
		}
	}

	switch session.State {
	case store.StateAskingRiskQuestions:
		for _, a := range req.Answers {
			answer := store.RiskAnswer{QuestionId: a.QuestionId, Answer: a.Answer}
			if err := s.stateManager.RecordAnswer(session, answer); err != nil {
				return nil, apperror.NewValidation(err.Error())
			}
		}
		if err := s.stateManager.BeginSubmission(session); err != nil {
			return nil, apperror.NewValidation(err.Error())
		}
	case store.StateSubmitting:
		// Retry after a downstream failure: answers are already recorded.
	case store.StateShowingResults:
		return nil, apperror.NewValidation("session already completed")
	default:
		return nil, apperror.NewValidation("session is not accepting answers yet")
	}
	s.sessionRepo.Save(session)

	// 1. Score every category. This step never fails.
	rows := s.scoreAnswers(session)
	overall := s.scorer.Aggregate(rows)

	// 2. Retrieve supporting context from the corpus.
	retrievedContext, err := s.retrieveContext(ctx, session)
	if err != nil {
		s.stateManager.ToError(session, "retrieval")
		s.sessionRepo.Save(session)
		if errors.Is(err, corpus.ErrIndexNotReady) {
			return nil, apperror.NewServiceNotReady("risk corpus is not ready, retry shortly")
		}
		return nil, apperror.NewRetrieval("risk corpus unavailable", err)
	}

	// 3. Synthesize advice. Degrades instead of failing.
	result := s.synthesizer.Synthesize(ctx, session.Profile, rows, overall, retrievedContext)

	if ctx.Err() != nil {
		// Caller abandoned the request mid-flight; keep the session
		// retryable at this step.
		s.stateManager.ToError(session, "advice_synthesis")
		s.sessionRepo.Save(session)
		return nil, apperror.NewInternal("request cancelled during advice synthesis", ctx.Err())
	}

	if err := s.stateManager.CompleteWithResult(session, result); err != nil {
		return nil, apperror.NewInternal("session completion failed", err)
	}

	// Results delivered; the session is done and its state has no further use.
	s.sessionRepo.Delete(session.Id)

	return mapResult(session.Id, result), nil
}

func (s *assessmentService) Health() *dto.HealthResponse {
	return &dto.HealthResponse{
		IndexState:       s.index.State().String(),
		Ready:            s.index.Ready(),
		DocumentsIndexed: s.ingestStats.DocumentsIndexed(),
		ChunksIndexed:    s.ingestStats.ChunksIndexed(),
	}
}

func (s *assessmentService) scoreAnswers(session *store.Session) []report.RiskTableRow {
	rows := make([]report.RiskTableRow, 0, len(session.Questions))
	for _, q := range session.Questions {
		cat := s.catalog.ByID(q.CategoryId)
		if cat == nil {
			continue // cannot happen with a validated catalog
		}
		score, explanation := s.scorer.Score(*cat, session.Answers[q.Id], float64(q.MaxScore))
		rows = append(rows, report.RiskTableRow{
			CategoryId:   cat.Id,
			CategoryName: cat.Name,
			Definition:   cat.Definition,
			Score:        score,
			MaxScore:     float64(q.MaxScore),
			Weight:       cat.Weight,
			Explanation:  explanation,
		})
	}
	return rows
}

func (s *assessmentService) retrieveContext(ctx context.Context, session *store.Session) (string, error) {
	profileText := strings.Join([]string{
		session.Profile.Industry,
		session.Profile.Size,
		session.Profile.TechAdoption,
		strings.Join(session.Profile.EmergingTechnologies, " "),
	}, " ")

	answers := make([]string, 0, len(session.Questions))
	for _, q := range session.Questions {
		answers = append(answers, session.Answers[q.Id])
	}

	return s.retriever.Retrieve(ctx, profileText, strings.Join(answers, "\n"))
}

func mapResult(sessionId string, result *report.AssessmentResult) *dto.AssessmentResultResponse {
	res := &dto.AssessmentResultResponse{
		SessionId:       sessionId,
		OverallScore:    result.OverallScore,
		RiskLevel:       result.RiskLevel,
		RiskTable:       make([]dto.RiskTableRowDTO, len(result.RiskTable)),
		Recommendations: result.Recommendations,
		Insights:        result.Insights,
		Degraded:        result.Degraded,
		RawModelOutput:  result.RawModelOutput,
	}
	for i, row := range result.RiskTable {
		res.RiskTable[i] = dto.RiskTableRowDTO{
			CategoryId:   row.CategoryId,
			CategoryName: row.CategoryName,
			Score:        row.Score,
			MaxScore:     row.MaxScore,
			Weight:       row.Weight,
			Explanation:  row.Explanation,
		}
	}
	for _, r := range result.Resources {
		res.Resources = append(res.Resources, dto.ResourceDTO{Title: r.Title, URL: r.URL})
	}
	return res
}
