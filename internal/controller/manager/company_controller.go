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

type CompanyController struct {
	companyService service.CompanyService
}

func NewCompanyController(companyService service.CompanyService) *CompanyController {
	return &CompanyController{companyService: companyService}
}

// RegisterCompany godoc
// @Summary Register a new company
// @Description Creates the company, generates an invite code, and assigns the caller as its manager.
// @Tags Manager - Company
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param company body dto.RegisterCompanyDTO true "Company name and email domain"
// @Success 201 {object} dto.RegisterCompanyResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid name or domain"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 409 {object} dto.ErrorResponse "Domain already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /companies [post]
func (c *CompanyController) RegisterCompany(ctx *gin.Context) {
	ident, ok := middleware.IdentityFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Unauthorized"})
		return
	}

	var req dto.RegisterCompanyDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("RegisterCompany: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.companyService.Register(ident, req)
	if err != nil {
		log.Error().Err(err).Str("userID", ident.UserID).Msg("RegisterCompany: service error")
		ctx.JSON(apperr.HTTPStatus(err), dto.ErrorResponse{Message: apperr.Message(err)})
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// JoinCompany godoc
// @Summary Join a company via invite code
// @Description Associates the caller with the company behind the invite code as an employee. The caller's email domain must match the company domain.
// @Tags Manager - Company
// @Produce json
// @Security BearerAuth
// @Param invite_code path string true "Invite code, e.g. INV-A1B2C3"
// @Success 200 {object} dto.JoinCompanyResponseDTO
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Email domain does not match the company"
// @Failure 404 {object} dto.ErrorResponse "Invalid invite code"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /companies/join/{invite_code} [post]
func (c *CompanyController) JoinCompany(ctx *gin.Context) {
	ident, ok := middleware.IdentityFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Unauthorized"})
		return
	}

	resp, err := c.companyService.Join(ident, ctx.Param("invite_code"))
	if err != nil {
		log.Warn().Err(err).Str("userID", ident.UserID).Msg("JoinCompany: service error")
		ctx.JSON(apperr.HTTPStatus(err), dto.ErrorResponse{Message: apperr.Message(err)})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// ListEmployees godoc
// @Summary (Manager) List employees and their survey progress
// @Description Returns each employee of the caller's company with answered/total counts and a derived completion status.
// @Tags Manager - Company
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.EmployeeProgressDTO
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Caller is not a manager"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /companies/employees [get]
func (c *CompanyController) ListEmployees(ctx *gin.Context) {
	ident, ok := middleware.IdentityFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Unauthorized"})
		return
	}

	employees, err := c.companyService.ListEmployeeProgress(ident)
	if err != nil {
		log.Error().Err(err).Str("managerID", ident.UserID).Msg("ListEmployees: service error")
		ctx.JSON(apperr.HTTPStatus(err), dto.ErrorResponse{Message: apperr.Message(err)})
		return
	}
	ctx.JSON(http.StatusOK, employees)
}

// RemindEmployee godoc
// @Summary (Manager) Send a survey reminder email to an employee
// @Tags Manager - Company
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param reminder body dto.RemindEmployeeDTO true "Employee to remind"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Caller is not a manager"
// @Failure 404 {object} dto.ErrorResponse "Employee not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /companies/employees/remind [post]
func (c *CompanyController) RemindEmployee(ctx *gin.Context) {
	ident, ok := middleware.IdentityFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Unauthorized"})
		return
	}

	var req dto.RemindEmployeeDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("RemindEmployee: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	if err := c.companyService.RemindEmployee(ident, req.EmployeeID); err != nil {
		log.Error().Err(err).Str("managerID", ident.UserID).Str("employeeID", req.EmployeeID).Msg("RemindEmployee: service error")
		ctx.JSON(apperr.HTTPStatus(err), dto.ErrorResponse{Message: apperr.Message(err)})
		return
	}
	ctx.Status(http.StatusNoContent)
}
