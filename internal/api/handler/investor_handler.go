package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/vcplatform/marketplace/internal/core/domain"
	"github.com/vcplatform/marketplace/internal/core/ports"
)

// InvestorHandler handles HTTP requests for investor profiles.
type InvestorHandler struct {
	service ports.InvestorService
}

func NewInvestorHandler(service ports.InvestorService) *InvestorHandler {
	return &InvestorHandler{service: service}
}

// Create handles POST /api/investors.
//
// @Summary      Create the caller's investor profile
// @Tags         investors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createInvestorRequest  true  "Investor profile"
// @Success      201   {object}  domain.Investor
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/investors [post]
func (h *InvestorHandler) Create(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createInvestorRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	investor, err := h.service.Create(c.Request().Context(), p, toInvestorDetails(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, investor)
}

// Get handles GET /api/investors/:id.
//
// @Summary      Get an investor profile
// @Tags         investors
// @Produce      json
// @Param        id   path      string  true  "Investor ID"
// @Success      200  {object}  domain.Investor
// @Failure      404  {object}  errorResponse
// @Router       /api/investors/{id} [get]
func (h *InvestorHandler) Get(c echo.Context) error {
	investor, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, investor)
}

// Mine handles GET /api/investors/me.
//
// @Summary      Get the caller's investor profile
// @Tags         investors
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Investor
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/investors/me [get]
func (h *InvestorHandler) Mine(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	investor, err := h.service.Mine(c.Request().Context(), p)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, investor)
}

// UpdateMine handles PUT /api/investors/me.
//
// @Summary      Update the caller's investor profile
// @Tags         investors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateInvestorRequest  true  "Fields to change"
// @Success      200   {object}  domain.Investor
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/investors/me [put]
func (h *InvestorHandler) UpdateMine(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req updateInvestorRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	investor, err := h.service.UpdateMine(c.Request().Context(), p, toInvestorPatch(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, investor)
}

// List handles GET /api/investors.
//
// @Summary      List investor profiles
// @Tags         investors
// @Produce      json
// @Param        investorType         query     string    false  "Exact investor type"
// @Param        preferredIndustries  query     []string  false  "Industries (any of)"  collectionFormat(multi)
// @Param        preferredStages      query     []string  false  "Funding stages (any of)"  collectionFormat(multi)
// @Param        location             query     string    false  "Location substring, case-insensitive"
// @Param        page                 query     int       false  "Page number (default 1)"
// @Param        limit                query     int       false  "Page size (default 10, max 100)"
// @Success      200                  {object}  investorListResponse
// @Router       /api/investors [get]
func (h *InvestorHandler) List(c echo.Context) error {
	page, err := h.service.List(c.Request().Context(), ports.InvestorFilter{
		InvestorType:        strings.TrimSpace(c.QueryParam("investorType")),
		PreferredIndustries: queryList(c, "preferredIndustries"),
		PreferredStages:     queryList(c, "preferredStages"),
		Location:            strings.TrimSpace(c.QueryParam("location")),
		PageRequest:         pageRequest(c),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toInvestorListResponse(page))
}
