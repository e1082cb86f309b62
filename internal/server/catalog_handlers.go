package server

import (
	"astrofolio/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetCatalogs handles GET /api/catalogs
// @Summary List catalogs
// @Description List all astronomical catalogs ordered by name
// @Tags catalogs
// @Produce json
// @Success 200 {array} models.Catalog
// @Router /catalogs [get]
func (s *Server) GetCatalogs(c *fiber.Ctx) error {
	catalogs, err := s.catalogService.ListCatalogs(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(catalogs)
}

// GetCatalogObjects handles GET /api/catalogs/:code/objects
// @Summary List catalog objects
// @Description List objects belonging to a catalog, paginated
// @Tags catalogs
// @Produce json
// @Param code path string true "Catalog code (e.g. M, NGC)"
// @Param limit query int false "Page size (max 100)"
// @Param offset query int false "Page offset"
// @Success 200 {array} models.AstronomicalObject
// @Failure 404 {object} models.ErrorResponse
// @Router /catalogs/{code}/objects [get]
func (s *Server) GetCatalogObjects(c *fiber.Ctx) error {
	code := c.Params("code")
	if code == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Catalog code is required"))
	}

	p := parsePagination(c, 50)
	objects, err := s.catalogService.ListObjects(c.Context(), code, p.Limit, p.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(objects)
}
