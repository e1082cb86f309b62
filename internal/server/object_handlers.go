package server

import (
	"github.com/gofiber/fiber/v2"
)

// ResolveObject handles GET /api/objects/resolve
// @Summary Resolve cross-references
// @Description Resolve a designation or common name to its object and every other designation of the same physical object
// @Tags objects
// @Produce json
// @Param q query string true "Designation or common name (e.g. M31, NGC 224, Andromeda)"
// @Success 200 {object} models.CrossReference
// @Failure 400 {object} models.ErrorResponse
// @Router /objects/resolve [get]
func (s *Server) ResolveObject(c *fiber.Ctx) error {
	result, err := s.catalogService.ResolveCrossReferences(c.Context(), c.Query("q"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(result)
}

// GetObject handles GET /api/objects/:id
// @Summary Get object
// @Tags objects
// @Produce json
// @Param id path int true "Object ID"
// @Success 200 {object} models.AstronomicalObject
// @Failure 404 {object} models.ErrorResponse
// @Router /objects/{id} [get]
func (s *Server) GetObject(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	object, err := s.catalogService.GetObject(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(object)
}
