package handler

import (
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/kina-health/kina/errors"
	"github.com/kina-health/kina/internal/adapter/dto"
	"github.com/kina-health/kina/internal/usecase/analysis"
)

// allowedAudioTypes are the upload content types accepted for analysis
var allowedAudioTypes = map[string]bool{
	"audio/wav":   true,
	"audio/wave":  true,
	"audio/mpeg":  true,
	"audio/mp4":   true,
	"audio/ogg":   true,
	"audio/webm":  true,
	"audio/flac":  true,
	"audio/x-m4a": true,
}

// RecordingController handles recording upload and status endpoints
type RecordingController struct {
	svc    analysis.Service
	logger *zap.Logger
}

// NewRecordingController creates a new recording controller
func NewRecordingController(svc analysis.Service, logger *zap.Logger) *RecordingController {
	return &RecordingController{svc: svc, logger: logger}
}

// SubmitRecording uploads an audio file and enqueues its analysis
// @Summary      Submit recording
// @Description  Uploads a speech recording and starts the asynchronous transcription and scoring pipeline
// @Tags         Recordings
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        audio     formData  file    true   "Audio file"
// @Param        language  formData  string  false  "Language code (e.g. en, defaults to auto detection)"
// @Success      201       {object}  map[string]interface{}  "Recording accepted"
// @Failure      400       {object}  map[string]interface{}  "Missing audio file"
// @Failure      415       {object}  map[string]interface{}  "Unsupported content type"
// @Router       /recordings [post]
func (rc *RecordingController) SubmitRecording(c echo.Context) error {
	file, err := c.FormFile("audio")
	if err != nil {
		return HandleError(rc.logger, c, errors.ErrMissingAudioFile())
	}

	contentType := file.Header.Get("Content-Type")
	if contentType != "" && !allowedAudioTypes[strings.ToLower(contentType)] {
		return HandleError(rc.logger, c, errors.ErrUnsupportedContentType(contentType))
	}

	src, err := file.Open()
	if err != nil {
		return HandleError(rc.logger, c, errors.ErrInternal(err))
	}
	defer src.Close()

	recording, job, err := rc.svc.SubmitRecording(c.Request().Context(), analysis.SubmitRecordingRequest{
		FileName:    file.Filename,
		ContentType: contentType,
		Size:        file.Size,
		Language:    c.FormValue("language"),
		Audio:       src,
	})
	if err != nil {
		return HandleError(rc.logger, c, err)
	}

	return HandleCreated(rc.logger, c, dto.NewRecordingResponse(recording, job))
}

// GetRecording returns a recording with its pipeline status
// @Summary      Get recording status
// @Description  Returns a recording together with its latest analysis job
// @Tags         Recordings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Recording ID (UUID)"
// @Success      200  {object}  map[string]interface{}  "Recording"
// @Failure      404  {object}  map[string]interface{}  "Recording not found"
// @Router       /recordings/{id} [get]
func (rc *RecordingController) GetRecording(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(rc.logger, c, errors.ErrInvalidArgument("invalid recording ID"))
	}

	recording, job, err := rc.svc.GetRecordingStatus(c.Request().Context(), id)
	if err != nil {
		return HandleError(rc.logger, c, err)
	}

	return HandleSuccess(rc.logger, c, dto.NewRecordingResponse(recording, job))
}
