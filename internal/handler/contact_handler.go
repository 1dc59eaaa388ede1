package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	errs "landingcms/internal/errors"
	"landingcms/internal/service"
)

// ContactHandler handles the public contact form and its admin listing.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// ContactRequest represents a contact-form submission.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// Create godoc
// @Summary Submit a contact request
// @Tags contacts
// @Accept json
// @Produce json
// @Param request body ContactRequest true "Contact data"
// @Success 201 {object} errors.Response
// @Failure 400 {object} errors.Response
// @Router /contacts [post]
func (h *ContactHandler) Create(c echo.Context) error {
	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errs.Fail("invalid request body"))
	}

	// Field-level validation lives in the service so each rejection names
	// the offending field.
	contact, err := h.contactService.Submit(c.Request().Context(), req.Name, req.Email, req.Phone, req.Message)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, errs.OK(contact))
}

// List godoc
// @Summary List contact submissions
// @Tags contacts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} errors.Response
// @Router /contacts [get]
func (h *ContactHandler) List(c echo.Context) error {
	contacts, err := h.contactService.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, errs.OK(contacts))
}
