package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kina-health/kina/errors"
	"github.com/kina-health/kina/internal/domain/entities"
	"github.com/kina-health/kina/internal/usecase/analysis"
	"github.com/kina-health/kina/internal/usecase/scoring"
	"github.com/kina-health/kina/pkg/validator"
)

// stubService implements analysis.Service with overridable functions
type stubService struct {
	analyzeText   func(ctx context.Context, req analysis.AnalyzeTextRequest) (*analysis.TextAnalysis, error)
	getAssessment func(ctx context.Context, id uuid.UUID) (*entities.Assessment, *scoring.Result, error)
}

func (s *stubService) AnalyzeText(ctx context.Context, req analysis.AnalyzeTextRequest) (*analysis.TextAnalysis, error) {
	return s.analyzeText(ctx, req)
}

func (s *stubService) SubmitRecording(context.Context, analysis.SubmitRecordingRequest) (*entities.Recording, *entities.AnalysisJob, error) {
	return nil, nil, errors.ErrInternal(nil)
}

func (s *stubService) GetRecordingStatus(context.Context, uuid.UUID) (*entities.Recording, *entities.AnalysisJob, error) {
	return nil, nil, errors.ErrInternal(nil)
}

func (s *stubService) GetAssessment(ctx context.Context, id uuid.UUID) (*entities.Assessment, *scoring.Result, error) {
	return s.getAssessment(ctx, id)
}

func (s *stubService) ListAssessments(context.Context, int, int) ([]*entities.Assessment, error) {
	return nil, nil
}

func (s *stubService) HandleAssemblyAIWebhook(context.Context, []byte, string) error {
	return nil
}

func (s *stubService) StartWorkerPool(context.Context) {}
func (s *stubService) StopWorkerPool()                 {}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	return e
}

func TestAnalyzeTextEndpoint(t *testing.T) {
	svc := &stubService{
		analyzeText: func(_ context.Context, req analysis.AnalyzeTextRequest) (*analysis.TextAnalysis, error) {
			assert.Equal(t, "I walked to the market because the weather was nice.", req.Text)
			assert.Equal(t, 30.0, req.DurationSeconds)
			return &analysis.TextAnalysis{
				AssessmentID: uuid.New(),
				Result:       &scoring.Result{Overall: 86, RiskTier: scoring.RiskLow},
			}, nil
		},
	}
	ctrl := NewAnalysisController(svc, nil)

	e := newTestEcho()
	body := `{"text":"I walked to the market because the weather was nice.","duration_seconds":30,"language":"en"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/analyses", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, ctrl.AnalyzeText(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"overall":86`)
	assert.Contains(t, rec.Body.String(), `"risk_tier":"low"`)
}

func TestAnalyzeTextRejectsMissingText(t *testing.T) {
	ctrl := NewAnalysisController(&stubService{}, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/v1/analyses", strings.NewReader(`{"duration_seconds":30}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, ctrl.AnalyzeText(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyzeTextRejectsInvalidInput(t *testing.T) {
	svc := &stubService{
		analyzeText: func(context.Context, analysis.AnalyzeTextRequest) (*analysis.TextAnalysis, error) {
			return nil, scoring.ErrInvalidInput
		},
	}
	ctrl := NewAnalysisController(svc, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/v1/analyses", strings.NewReader(`{"text":"hi","duration_seconds":1}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, ctrl.AnalyzeText(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetAssessmentNotFound(t *testing.T) {
	svc := &stubService{
		getAssessment: func(context.Context, uuid.UUID) (*entities.Assessment, *scoring.Result, error) {
			return nil, nil, errors.ErrNotFound("Assessment")
		},
	}
	ctrl := NewAnalysisController(svc, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(uuid.NewString())

	require.NoError(t, ctrl.GetAssessment(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetAssessmentInvalidID(t *testing.T) {
	ctrl := NewAnalysisController(&stubService{}, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, ctrl.GetAssessment(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
