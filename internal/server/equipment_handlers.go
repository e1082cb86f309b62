package server

import (
	"github.com/gofiber/fiber/v2"
)

// SuggestEquipment handles GET /api/equipment/suggest
// @Summary Equipment autocomplete
// @Description Suggest equipment entries matching the query by name, brand or model
// @Tags equipment
// @Produce json
// @Param q query string true "Search prefix (minimum 2 characters)"
// @Param type query string false "Equipment type (telescope, camera, mount, filter)"
// @Param limit query int false "Maximum suggestions (default 10, max 25)"
// @Success 200 {array} models.Equipment
// @Router /equipment/suggest [get]
func (s *Server) SuggestEquipment(c *fiber.Ctx) error {
	items, err := s.equipmentService.Suggest(
		c.Context(),
		c.Query("type"),
		c.Query("q"),
		c.QueryInt("limit", 0),
	)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(items)
}
