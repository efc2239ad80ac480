package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/vcplatform/marketplace/internal/core/domain"
	"github.com/vcplatform/marketplace/internal/core/ports"
)

// StartupHandler handles HTTP requests for startup profiles.
type StartupHandler struct {
	service ports.StartupService
}

func NewStartupHandler(service ports.StartupService) *StartupHandler {
	return &StartupHandler{service: service}
}

// Create handles POST /api/startups.
//
// @Summary      Create the caller's startup profile
// @Tags         startups
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createStartupRequest  true  "Startup profile"
// @Success      201   {object}  domain.Startup
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/startups [post]
func (h *StartupHandler) Create(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createStartupRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	startup, err := h.service.Create(c.Request().Context(), p, toStartupDetails(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, startup)
}

// Get handles GET /api/startups/:id.
//
// @Summary      Get a startup profile
// @Tags         startups
// @Produce      json
// @Param        id   path      string  true  "Startup ID"
// @Success      200  {object}  domain.Startup
// @Failure      404  {object}  errorResponse
// @Router       /api/startups/{id} [get]
func (h *StartupHandler) Get(c echo.Context) error {
	startup, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, startup)
}

// Mine handles GET /api/startups/me.
//
// @Summary      Get the caller's startup profile
// @Tags         startups
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Startup
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/startups/me [get]
func (h *StartupHandler) Mine(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	startup, err := h.service.Mine(c.Request().Context(), p)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, startup)
}

// UpdateMine handles PUT /api/startups/me.
//
// @Summary      Update the caller's startup profile
// @Tags         startups
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateStartupRequest  true  "Fields to change"
// @Success      200   {object}  domain.Startup
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/startups/me [put]
func (h *StartupHandler) UpdateMine(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req updateStartupRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	startup, err := h.service.UpdateMine(c.Request().Context(), p, toStartupPatch(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, startup)
}

// List handles GET /api/startups.
//
// @Summary      List startup profiles
// @Tags         startups
// @Produce      json
// @Param        industry      query     []string  false  "Industries (any of)"  collectionFormat(multi)
// @Param        location      query     string    false  "Location substring, case-insensitive"
// @Param        fundingStage  query     string    false  "Exact funding stage"
// @Param        page          query     int       false  "Page number (default 1)"
// @Param        limit         query     int       false  "Page size (default 10, max 100)"
// @Success      200           {object}  startupListResponse
// @Router       /api/startups [get]
func (h *StartupHandler) List(c echo.Context) error {
	page, err := h.service.List(c.Request().Context(), ports.StartupFilter{
		Industries:   queryList(c, "industry"),
		Location:     strings.TrimSpace(c.QueryParam("location")),
		FundingStage: strings.TrimSpace(c.QueryParam("fundingStage")),
		PageRequest:  pageRequest(c),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toStartupListResponse(page))
}
