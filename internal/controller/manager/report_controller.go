package manager

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hoangnm/air-platform/internal/apperr"
	"github.com/hoangnm/air-platform/internal/dto"
	"github.com/hoangnm/air-platform/internal/middleware"
	"github.com/hoangnm/air-platform/internal/service"
	"github.com/rs/zerolog/log"
)

type ReportController struct {
	reportService service.ReportService
}

func NewReportController(reportService service.ReportService) *ReportController {
	return &ReportController{reportService: reportService}
}

// GenerateReport godoc
// @Summary (Manager) Generate an AI readiness report for the company
// @Description Aggregates all survey responses for the caller's company, scores each readiness dimension with the AI, and persists a shareable report.
// @Tags Manager - Reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param options body dto.GenerateReportDTO false "Generation options"
// @Success 201 {object} dto.GenerateReportResponseDTO
// @Failure 400 {object} dto.ErrorResponse "No survey responses to report on"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Caller is not a manager"
// @Failure 500 {object} dto.ErrorResponse "AI unavailable or returned an unusable payload"
// @Router /reports [post]
func (c *ReportController) GenerateReport(ctx *gin.Context) {
	ident, ok := middleware.IdentityFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Unauthorized"})
		return
	}

	var req dto.GenerateReportDTO
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			log.Warn().Err(err).Msg("GenerateReport: failed to bind JSON")
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
			return
		}
	}
	includeAll := true
	if req.IncludeAllEmployees != nil {
		includeAll = *req.IncludeAllEmployees
	}

	resp, err := c.reportService.Generate(ctx.Request.Context(), ident, includeAll)
	if err != nil {
		log.Error().Err(err).Str("managerID", ident.UserID).Str("companyID", ident.CompanyID).Msg("GenerateReport: service error")
		ctx.JSON(apperr.HTTPStatus(err), dto.ErrorResponse{Message: apperr.Message(err)})
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetSharedReport godoc
// @Summary Fetch a shared report by slug
// @Description Public read-only view of a generated report. No authentication required.
// @Tags Manager - Reports
// @Produce json
// @Param slug path string true "Share slug"
// @Success 200 {object} dto.SharedReportResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Report not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reports/share/{slug} [get]
func (c *ReportController) GetSharedReport(ctx *gin.Context) {
	slug := ctx.Param("slug")

	resp, err := c.reportService.GetShared(slug)
	if err != nil {
		log.Warn().Err(err).Str("slug", slug).Msg("GetSharedReport: lookup failed")
		ctx.JSON(apperr.HTTPStatus(err), dto.ErrorResponse{Message: apperr.Message(err)})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
