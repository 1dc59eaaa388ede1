package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"landingcms/internal/auth"
	errs "landingcms/internal/errors"
	"landingcms/internal/model"
	"landingcms/internal/repository"
	"landingcms/internal/service"
)

// ArticleHandler handles admin and public article endpoints.
type ArticleHandler struct {
	articleService service.ArticleService
}

// NewArticleHandler creates a new article handler.
func NewArticleHandler(articleService service.ArticleService) *ArticleHandler {
	return &ArticleHandler{articleService: articleService}
}

// ArticleRequest represents the create/update article payload.
type ArticleRequest struct {
	Title         string `json:"title" validate:"required"`
	Content       string `json:"content" validate:"required"`
	Excerpt       string `json:"excerpt"`
	FeaturedImage string `json:"featured_image"`
	Status        string `json:"status" validate:"omitempty,oneof=draft published archived"`
}

func (r ArticleRequest) input() service.ArticleInput {
	return service.ArticleInput{
		Title:         r.Title,
		Content:       r.Content,
		Excerpt:       r.Excerpt,
		FeaturedImage: r.FeaturedImage,
		Status:        r.Status,
	}
}

// List godoc
// @Summary List articles for the admin panel
// @Description Editors only see their own articles.
// @Tags articles
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param status query string false "Filter by status"
// @Param search query string false "Substring match on title or content"
// @Success 200 {object} errors.Response
// @Router /articles [get]
func (h *ArticleHandler) List(c echo.Context) error {
	requester := auth.CurrentIdentity(c)

	opts := repository.ArticleListOptions{
		Page:   queryInt(c, "page", 1),
		Limit:  queryInt(c, "limit", 10),
		Status: c.QueryParam("status"),
		Search: c.QueryParam("search"),
	}
	// Editors are scoped to their own articles.
	if requester.Role == model.RoleEditor {
		opts.AuthorID = requester.ID
	}

	result, err := h.articleService.List(c.Request().Context(), opts)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, errs.OK(result))
}

// Get godoc
// @Summary Fetch a single article
// @Tags articles
// @Produce json
// @Security BearerAuth
// @Param id path int true "Article ID"
// @Success 200 {object} errors.Response
// @Failure 403 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Router /articles/{id} [get]
func (h *ArticleHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return respondError(c, err)
	}

	article, err := h.articleService.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	requester := auth.CurrentIdentity(c)
	if requester.Role == model.RoleEditor && article.AuthorID != requester.ID {
		return respondError(c, errs.ErrForbidden)
	}
	return c.JSON(http.StatusOK, errs.OK(article))
}

// Create godoc
// @Summary Create an article
// @Tags articles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ArticleRequest true "Article data"
// @Success 201 {object} errors.Response
// @Failure 400 {object} errors.Response
// @Router /articles [post]
func (h *ArticleHandler) Create(c echo.Context) error {
	var req ArticleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errs.Fail("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errs.Fail(err.Error()))
	}

	requester := auth.CurrentIdentity(c)
	id, err := h.articleService.Create(c.Request().Context(), req.input(), requester.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, errs.OK(echo.Map{"id": id}))
}

// Update godoc
// @Summary Update an article
// @Description Editors may only update their own articles.
// @Tags articles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Article ID"
// @Param request body ArticleRequest true "Article data"
// @Success 200 {object} errors.Response
// @Failure 400 {object} errors.Response
// @Failure 403 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Router /articles/{id} [put]
func (h *ArticleHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return respondError(c, err)
	}

	var req ArticleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errs.Fail("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errs.Fail(err.Error()))
	}

	requester := auth.CurrentIdentity(c)
	if err := h.articleService.Update(c.Request().Context(), id, req.input(), requester.Role, requester.ID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, errs.OKMessage("article updated"))
}

// Delete godoc
// @Summary Delete an article
// @Description Editors may only delete their own articles.
// @Tags articles
// @Produce json
// @Security BearerAuth
// @Param id path int true "Article ID"
// @Success 200 {object} errors.Response
// @Failure 403 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Router /articles/{id} [delete]
func (h *ArticleHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return respondError(c, err)
	}

	requester := auth.CurrentIdentity(c)
	if err := h.articleService.Delete(c.Request().Context(), id, requester.Role, requester.ID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, errs.OKMessage("article deleted"))
}

// ListPublished godoc
// @Summary List published articles for the public news page
// @Tags articles
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param search query string false "Substring match on title or excerpt"
// @Success 200 {object} errors.Response
// @Router /articles/public [get]
func (h *ArticleHandler) ListPublished(c echo.Context) error {
	opts := repository.ArticleListOptions{
		Page:   queryInt(c, "page", 1),
		Limit:  queryInt(c, "limit", 12),
		Search: c.QueryParam("search"),
	}

	result, err := h.articleService.ListPublished(c.Request().Context(), opts)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, errs.OK(result))
}

// GetPublished godoc
// @Summary Fetch a published article and count the view
// @Tags articles
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Router /articles/public/{id} [get]
func (h *ArticleHandler) GetPublished(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return respondError(c, err)
	}

	article, err := h.articleService.ViewPublished(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, errs.OK(article))
}
