package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"news-backend/internal/domains/news/model"
	"news-backend/internal/domains/news/service"
	"news-backend/internal/shared/middleware"
	"news-backend/internal/shared/response"
)

// =====================================================
// NEWS HANDLER
// =====================================================

type NewsHandler struct {
	articleService service.ArticleService
}

func NewNewsHandler(articleService service.ArticleService) *NewsHandler {
	return &NewsHandler{
		articleService: articleService,
	}
}

// mapNewsError translates domain errors into (status, code).
func mapNewsError(err error) (int, string) {
	switch {
	case errors.Is(err, model.ErrArticleNotFound):
		return http.StatusNotFound, model.ErrCodeNotFound
	case errors.Is(err, model.ErrInvalidID):
		return http.StatusBadRequest, model.ErrCodeInvalidID
	case errors.Is(err, model.ErrDuplicateTitle):
		return http.StatusBadRequest, model.ErrCodeDuplicateTitle
	case errors.Is(err, model.ErrForbidden):
		return http.StatusForbidden, model.ErrCodeForbidden
	default:
		return http.StatusInternalServerError, model.ErrCodeStore
	}
}

// List returns all articles, unfiltered and unpaginated; the SPA sorts them.
// GET /api/news
func (h *NewsHandler) List(c *gin.Context) {
	articles, err := h.articleService.List(c.Request.Context())
	if err != nil {
		statusCode, errCode := mapNewsError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}
	c.JSON(http.StatusOK, articles)
}

// Get returns one article by id.
// GET /api/news/:id
func (h *NewsHandler) Get(c *gin.Context) {
	article, err := h.articleService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		statusCode, errCode := mapNewsError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}
	c.JSON(http.StatusOK, article)
}

// Create stores a new article for the authenticated user.
// POST /api/news
func (h *NewsHandler) Create(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	var req model.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, model.ErrCodeValidation, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, model.ErrCodeValidation, "Validation failed", err.Error())
		return
	}

	article, err := h.articleService.Create(c.Request.Context(), identity, req)
	if err != nil {
		statusCode, errCode := mapNewsError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}
	c.JSON(http.StatusCreated, article)
}

// Update edits the authenticated author's own article.
// PUT /api/news/:id
func (h *NewsHandler) Update(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	var req model.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, model.ErrCodeValidation, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, model.ErrCodeValidation, "Validation failed", err.Error())
		return
	}

	article, err := h.articleService.Update(c.Request.Context(), identity, c.Param("id"), req)
	if err != nil {
		statusCode, errCode := mapNewsError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}
	c.JSON(http.StatusOK, article)
}

// Delete removes the authenticated author's own article.
// DELETE /api/news/:id
func (h *NewsHandler) Delete(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	if err := h.articleService.Delete(c.Request.Context(), identity, c.Param("id")); err != nil {
		statusCode, errCode := mapNewsError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}
