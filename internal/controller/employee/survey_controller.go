package employee

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hoangnm/air-platform/internal/apperr"
	"github.com/hoangnm/air-platform/internal/dto"
	"github.com/hoangnm/air-platform/internal/middleware"
	"github.com/hoangnm/air-platform/internal/service"
	"github.com/rs/zerolog/log"
)

type SurveyController struct {
	surveyService   service.SurveyService
	followUpService service.FollowUpService
}

func NewSurveyController(surveyService service.SurveyService, followUpService service.FollowUpService) *SurveyController {
	return &SurveyController{surveyService: surveyService, followUpService: followUpService}
}

// StartOrResume godoc
// @Summary Start or resume the caller's survey
// @Description Initializes the question sequence from the active catalog on first call, then returns the next unanswered question with progress. Idempotent.
// @Tags Employee - Survey
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SurveyStateDTO
// @Failure 400 {object} dto.ErrorResponse "No company association or empty catalog"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /survey/start [post]
func (c *SurveyController) StartOrResume(ctx *gin.Context) {
	ident, ok := middleware.IdentityFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Unauthorized"})
		return
	}

	state, err := c.surveyService.StartOrResume(ident)
	if err != nil {
		log.Error().Err(err).Str("employeeID", ident.UserID).Msg("StartOrResume: service error")
		ctx.JSON(apperr.HTTPStatus(err), dto.ErrorResponse{Message: apperr.Message(err)})
		return
	}
	ctx.JSON(http.StatusOK, state)
}

// SubmitAnswer godoc
// @Summary Submit an answer to a question instance
// @Description Records the caller's answer. Resubmitting for the same instance overwrites the previous answer.
// @Tags Employee - Survey
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param answer body dto.SubmitAnswerDTO true "Question instance ID and answer text"
// @Success 200 {object} dto.SubmitAnswerResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Empty or oversized answer"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Question instance belongs to another employee"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /survey/answer [post]
func (c *SurveyController) SubmitAnswer(ctx *gin.Context) {
	ident, ok := middleware.IdentityFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Unauthorized"})
		return
	}

	var req dto.SubmitAnswerDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitAnswer: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	answer, err := c.surveyService.RecordAnswer(ident, req)
	if err != nil {
		log.Error().Err(err).Str("employeeID", ident.UserID).Str("instanceID", req.QuestionInstanceID.String()).Msg("SubmitAnswer: service error")
		ctx.JSON(apperr.HTTPStatus(err), dto.ErrorResponse{Message: apperr.Message(err)})
		return
	}
	ctx.JSON(http.StatusOK, dto.SubmitAnswerResponseDTO{Answer: *answer})
}

// RequestFollowUp godoc
// @Summary Request an adaptive follow-up question
// @Description Asks the AI whether the given answer warrants one probing follow-up. Returns hasFollowUp=false when the answer is complete or the AI is unavailable.
// @Tags Employee - Survey
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param followup body dto.FollowUpRequestDTO true "Parent question instance, original question text, the employee's answer, and its ordinal"
// @Success 200 {object} dto.FollowUpResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid payload or unknown question instance"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Question instance belongs to another employee"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /survey/follow-up [post]
func (c *SurveyController) RequestFollowUp(ctx *gin.Context) {
	ident, ok := middleware.IdentityFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Unauthorized"})
		return
	}

	var req dto.FollowUpRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("RequestFollowUp: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.followUpService.MaybeGenerateFollowUp(ctx.Request.Context(), ident, req)
	if err != nil {
		log.Error().Err(err).Str("employeeID", ident.UserID).Msg("RequestFollowUp: service error")
		ctx.JSON(apperr.HTTPStatus(err), dto.ErrorResponse{Message: apperr.Message(err)})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
