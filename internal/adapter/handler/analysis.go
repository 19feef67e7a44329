package handler

import (
	stdErrors "errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/kina-health/kina/errors"
	"github.com/kina-health/kina/internal/adapter/dto"
	"github.com/kina-health/kina/internal/adapter/presenter"
	"github.com/kina-health/kina/internal/usecase/analysis"
	"github.com/kina-health/kina/internal/usecase/scoring"
)

// AnalysisController handles the synchronous analysis endpoints
type AnalysisController struct {
	svc    analysis.Service
	logger *zap.Logger
}

// NewAnalysisController creates a new analysis controller
func NewAnalysisController(svc analysis.Service, logger *zap.Logger) *AnalysisController {
	return &AnalysisController{svc: svc, logger: logger}
}

// AnalyzeText scores a transcript synchronously
// @Summary      Analyze transcript text
// @Description  Scores a transcript's lexical diversity, fluency, complexity and emotional expression and returns the overall assessment
// @Tags         Analyses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      dto.AnalyzeTextRequest  true  "Transcript and recording duration"
// @Success      200      {object}  map[string]interface{}  "Assessment result"
// @Failure      400      {object}  map[string]interface{}  "Invalid payload"
// @Failure      401      {object}  map[string]interface{}  "Not authenticated"
// @Router       /analyses [post]
func (ac *AnalysisController) AnalyzeText(c echo.Context) error {
	var req dto.AnalyzeTextRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(ac.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(ac.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	outcome, err := ac.svc.AnalyzeText(c.Request().Context(), analysis.AnalyzeTextRequest{
		Text:            req.Text,
		DurationSeconds: req.DurationSeconds,
		Language:        req.Language,
	})
	if err != nil {
		if scoringInvalid(err) {
			return HandleError(ac.logger, c, errors.ErrInvalidArgument(err.Error()))
		}
		return HandleError(ac.logger, c, err)
	}

	return HandleSuccess(ac.logger, c, dto.AnalysisResponse{
		AssessmentID: outcome.AssessmentID,
		Cached:       outcome.Cached,
		Result:       outcome.Result,
	})
}

// ListAssessments lists stored assessments
// @Summary      List assessments
// @Description  Returns stored assessments, newest first
// @Tags         Analyses
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query     int  false  "Page size (max 100)"
// @Param        offset  query     int  false  "Offset"
// @Success      200     {object}  map[string]interface{}  "Assessment summaries"
// @Router       /analyses [get]
func (ac *AnalysisController) ListAssessments(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	assessments, err := ac.svc.ListAssessments(c.Request().Context(), limit, offset)
	if err != nil {
		return HandleError(ac.logger, c, err)
	}

	summaries := make([]dto.AssessmentSummary, 0, len(assessments))
	for _, a := range assessments {
		summaries = append(summaries, dto.NewAssessmentSummary(a))
	}
	return HandleSuccess(ac.logger, c, summaries)
}

// GetAssessment returns one stored assessment
// @Summary      Get assessment
// @Description  Returns a stored assessment with its full scoring result
// @Tags         Analyses
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Assessment ID (UUID)"
// @Success      200  {object}  map[string]interface{}  "Assessment"
// @Failure      404  {object}  map[string]interface{}  "Assessment not found"
// @Router       /analyses/{id} [get]
func (ac *AnalysisController) GetAssessment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(ac.logger, c, errors.ErrInvalidArgument("invalid assessment ID"))
	}

	assessment, result, err := ac.svc.GetAssessment(c.Request().Context(), id)
	if err != nil {
		return HandleError(ac.logger, c, err)
	}

	return HandleSuccess(ac.logger, c, dto.AnalysisResponse{
		AssessmentID: assessment.ID,
		Result:       result,
	})
}

// GetAssessmentReport renders an assessment as a plain-text report
// @Summary      Get assessment report
// @Description  Renders the assessment as a human-readable plain-text report
// @Tags         Analyses
// @Produce      plain
// @Security     BearerAuth
// @Param        id   path      string  true  "Assessment ID (UUID)"
// @Success      200  {string}  string  "Report"
// @Failure      404  {object}  map[string]interface{}  "Assessment not found"
// @Router       /analyses/{id}/report [get]
func (ac *AnalysisController) GetAssessmentReport(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(ac.logger, c, errors.ErrInvalidArgument("invalid assessment ID"))
	}

	_, result, err := ac.svc.GetAssessment(c.Request().Context(), id)
	if err != nil {
		return HandleError(ac.logger, c, err)
	}

	return c.String(http.StatusOK, presenter.Report(result))
}

func scoringInvalid(err error) bool {
	return stdErrors.Is(err, scoring.ErrInvalidInput)
}
