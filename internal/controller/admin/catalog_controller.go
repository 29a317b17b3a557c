package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hoangnm/air-platform/internal/apperr"
	"github.com/hoangnm/air-platform/internal/dto"
	"github.com/hoangnm/air-platform/internal/service"
	"github.com/rs/zerolog/log"
)

type CatalogController struct {
	catalogService service.CatalogService
}

func NewCatalogController(catalogService service.CatalogService) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

// SeedCatalog godoc
// @Summary (Admin) Seed the survey question catalog
// @Description Creates modules and questions in bulk. Dimensions must come from the known readiness taxonomy.
// @Tags Admin - Catalog
// @Accept json
// @Produce json
// @Param catalog body dto.CatalogSeedDTO true "Modules and questions to seed"
// @Success 201 {object} dto.CatalogSeedResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Unknown dimension or malformed payload"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/questions [post]
func (c *CatalogController) SeedCatalog(ctx *gin.Context) {
	var req dto.CatalogSeedDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SeedCatalog: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.catalogService.Seed(req)
	if err != nil {
		log.Error().Err(err).Msg("SeedCatalog: service error")
		ctx.JSON(apperr.HTTPStatus(err), dto.ErrorResponse{Message: apperr.Message(err)})
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}
