package server

import (
	"astrofolio/internal/models"
	"astrofolio/internal/repository"
	"astrofolio/internal/service"

	"github.com/gofiber/fiber/v2"
)

// parseImageFilters reads the search filter query parameters. Malformed
// numeric, date or boolean values are rejected with a 400 naming the
// offending parameter; err is errResponseWritten in that case.
func (s *Server) parseImageFilters(c *fiber.Ctx) (repository.ImageFilters, error) {
	filters := repository.ImageFilters{
		Status:        models.ImageStatus(c.Query("status")),
		Search:        c.Query("search"),
		Object:        c.Query("object"),
		ObjectType:    c.Query("object_type"),
		Catalog:       c.Query("catalog"),
		Constellation: c.Query("constellation"),
		Telescope:     c.Query("telescope"),
		TelescopeType: c.Query("telescope_type"),
		Camera:        c.Query("camera"),
		CameraType:    c.Query("camera_type"),
	}

	// Published is the only status visible without an explicit request.
	if filters.Status == "" {
		filters.Status = models.ImageStatusPublished
	}

	var err error
	if filters.MinExposure, err = queryIntPtr(c, "min_exposure"); err != nil {
		return filters, err
	}
	if filters.MaxExposure, err = queryIntPtr(c, "max_exposure"); err != nil {
		return filters, err
	}
	if filters.MinAperture, err = queryFloatPtr(c, "min_aperture"); err != nil {
		return filters, err
	}
	if filters.DateFrom, err = queryDatePtr(c, "date_from"); err != nil {
		return filters, err
	}
	if filters.DateTo, err = queryDatePtr(c, "date_to"); err != nil {
		return filters, err
	}
	if filters.Featured, err = queryBoolPtr(c, "featured"); err != nil {
		return filters, err
	}

	return filters, nil
}

// SearchImages handles GET /api/images
// @Summary Search images
// @Description Filtered, ranked image search. All filters combine with AND.
// @Tags images
// @Produce json
// @Param search query string false "Free-text search over title, description and object names"
// @Param object query string false "Object designation (exact, case-insensitive)"
// @Param object_type query string false "Object type"
// @Param catalog query string false "Catalog name or code"
// @Param constellation query string false "Constellation"
// @Param telescope query string false "Telescope (substring)"
// @Param telescope_type query string false "Telescope type"
// @Param camera query string false "Camera (substring)"
// @Param camera_type query string false "Camera type"
// @Param min_exposure query int false "Minimum total exposure seconds"
// @Param max_exposure query int false "Maximum total exposure seconds"
// @Param min_aperture query number false "Minimum aperture in mm"
// @Param date_from query string false "Acquired on or after (YYYY-MM-DD)"
// @Param date_to query string false "Acquired on or before (YYYY-MM-DD)"
// @Param featured query bool false "Featured images only"
// @Param status query string false "Image status (default published)"
// @Param sort query string false "Sort order: popular (default) or recent"
// @Param limit query int false "Page size (max 100)"
// @Param offset query int false "Page offset"
// @Success 200 {object} service.SearchResult
// @Failure 400 {object} models.ErrorResponse
// @Router /images [get]
func (s *Server) SearchImages(c *fiber.Ctx) error {
	filters, err := s.parseImageFilters(c)
	if err != nil {
		return nil
	}

	currentUserID, _ := s.optionalUserID(c)
	p := parsePagination(c, 20)

	result, err := s.imageService.SearchImages(c.Context(), service.SearchImagesInput{
		Filters:       filters,
		Sort:          c.Query("sort"),
		Limit:         p.Limit,
		Offset:        p.Offset,
		CurrentUserID: currentUserID,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(result)
}

// GetFeaturedImages handles GET /api/images/featured
// @Summary Featured images
// @Description Published images curated by admins, most liked first
// @Tags images
// @Produce json
// @Param limit query int false "Page size (max 100)"
// @Param offset query int false "Page offset"
// @Success 200 {object} service.SearchResult
// @Router /images/featured [get]
func (s *Server) GetFeaturedImages(c *fiber.Ctx) error {
	currentUserID, _ := s.optionalUserID(c)
	p := parsePagination(c, 12)
	featured := true

	result, err := s.imageService.SearchImages(c.Context(), service.SearchImagesInput{
		Filters: repository.ImageFilters{
			Status:   models.ImageStatusPublished,
			Featured: &featured,
		},
		Sort:          c.Query("sort"),
		Limit:         p.Limit,
		Offset:        p.Offset,
		CurrentUserID: currentUserID,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(result)
}

// GetRecentImages handles GET /api/images/recent
// @Summary Recent images
// @Description Published images, newest first
// @Tags images
// @Produce json
// @Param limit query int false "Page size (max 100)"
// @Param offset query int false "Page offset"
// @Success 200 {object} service.SearchResult
// @Router /images/recent [get]
func (s *Server) GetRecentImages(c *fiber.Ctx) error {
	currentUserID, _ := s.optionalUserID(c)
	p := parsePagination(c, 20)

	result, err := s.imageService.SearchImages(c.Context(), service.SearchImagesInput{
		Filters:       repository.ImageFilters{Status: models.ImageStatusPublished},
		Sort:          "recent",
		Limit:         p.Limit,
		Offset:        p.Offset,
		CurrentUserID: currentUserID,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(result)
}

// GetImage handles GET /api/images/:id
// @Summary Get image
// @Description Fetch a single image and record the view
// @Tags images
// @Produce json
// @Param id path int true "Image ID"
// @Success 200 {object} models.Image
// @Failure 404 {object} models.ErrorResponse
// @Router /images/{id} [get]
func (s *Server) GetImage(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	currentUserID, _ := s.optionalUserID(c)
	image, err := s.imageService.ViewImage(c.Context(), id, currentUserID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(image)
}

// CreateImage handles POST /api/images
// @Summary Submit image
// @Tags images
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.CreateImageInput true "Image submission"
// @Success 201 {object} models.Image
// @Failure 400 {object} models.ErrorResponse
// @Router /images [post]
func (s *Server) CreateImage(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var input service.CreateImageInput
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	image, err := s.imageService.CreateImage(c.Context(), userID, input)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(image)
}

// UpdateImage handles PUT /api/images/:id
// @Summary Update image
// @Tags images
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Image ID"
// @Param request body service.UpdateImageInput true "Fields to update"
// @Success 200 {object} models.Image
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /images/{id} [put]
func (s *Server) UpdateImage(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var input service.UpdateImageInput
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	image, err := s.imageService.UpdateImage(c.Context(), userID, id, input)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(image)
}

// DeleteImage handles DELETE /api/images/:id
// @Summary Delete image
// @Tags images
// @Security BearerAuth
// @Param id path int true "Image ID"
// @Success 204
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /images/{id} [delete]
func (s *Server) DeleteImage(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.imageService.DeleteImage(c.Context(), userID, id); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ToggleLike handles POST /api/images/:id/like
// @Summary Toggle like
// @Description Flip the caller's like on an image and return the resulting state
// @Tags images
// @Produce json
// @Security BearerAuth
// @Param id path int true "Image ID"
// @Success 200 {object} service.LikeState
// @Failure 404 {object} models.ErrorResponse
// @Router /images/{id}/like [post]
func (s *Server) ToggleLike(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	state, err := s.imageService.ToggleLike(c.Context(), userID, id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(state)
}
