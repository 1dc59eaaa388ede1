package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"landingcms/internal/auth"
	errs "landingcms/internal/errors"
	"landingcms/internal/service"
)

// SettingsHandler handles site settings endpoints.
type SettingsHandler struct {
	settingsService service.SettingsService
}

// NewSettingsHandler creates a new settings handler.
func NewSettingsHandler(settingsService service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// HeroBannerRequest represents the hero banner update payload.
type HeroBannerRequest struct {
	Image    string `json:"image" validate:"required"`
	Title    string `json:"title" validate:"required"`
	Subtitle string `json:"subtitle" validate:"required"`
}

// SettingValueRequest represents a single setting update payload.
// Value is a pointer so an explicit empty string is accepted.
type SettingValueRequest struct {
	Value *string `json:"value" validate:"required"`
}

// GetAll godoc
// @Summary List all settings
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} errors.Response
// @Router /settings [get]
func (h *SettingsHandler) GetAll(c echo.Context) error {
	settings, err := h.settingsService.GetAll(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, errs.OK(settings))
}

// HeroBanner godoc
// @Summary Fetch the public hero banner
// @Tags settings
// @Produce json
// @Success 200 {object} errors.Response
// @Router /settings/hero-banner [get]
func (h *SettingsHandler) HeroBanner(c echo.Context) error {
	banner, err := h.settingsService.HeroBanner(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, errs.OK(banner))
}

// UpdateHeroBanner godoc
// @Summary Update the hero banner
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body HeroBannerRequest true "Banner fields"
// @Success 200 {object} errors.Response
// @Failure 400 {object} errors.Response
// @Router /settings/hero-banner [put]
func (h *SettingsHandler) UpdateHeroBanner(c echo.Context) error {
	var req HeroBannerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errs.Fail("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errs.Fail(err.Error()))
	}

	requester := auth.CurrentIdentity(c)
	banner := service.HeroBanner{Image: req.Image, Title: req.Title, Subtitle: req.Subtitle}
	if err := h.settingsService.UpdateHeroBanner(c.Request().Context(), banner, requester.ID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, errs.OKMessage("hero banner updated"))
}

// Get godoc
// @Summary Fetch a setting by key
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Param key path string true "Setting key"
// @Success 200 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Router /settings/{key} [get]
func (h *SettingsHandler) Get(c echo.Context) error {
	setting, err := h.settingsService.Get(c.Request().Context(), c.Param("key"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, errs.OK(setting))
}

// Update godoc
// @Summary Update a setting value by key
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param key path string true "Setting key"
// @Param request body SettingValueRequest true "New value"
// @Success 200 {object} errors.Response
// @Failure 400 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Router /settings/{key} [put]
func (h *SettingsHandler) Update(c echo.Context) error {
	var req SettingValueRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errs.Fail("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errs.Fail(err.Error()))
	}

	requester := auth.CurrentIdentity(c)
	if err := h.settingsService.UpdateValue(c.Request().Context(), c.Param("key"), *req.Value, requester.ID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, errs.OKMessage("setting updated"))
}
