package handler

import (
	"net/http"

	"gamebeats/backend/internal/store"

	"github.com/gin-gonic/gin"
)

// CreateCategory godoc
// @Summary      Create a new category
// @Tags         admin-categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body store.CreateCategoryInput true "Category Info"
// @Success      201  {object}  models.Category
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Router       /categories [post]
func (h *Handler) CreateCategory(c *gin.Context) {
	var input store.CreateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := h.store.CreateCategory(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

// GetCategories godoc
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Success      200 {array} models.Category
// @Router       /categories [get]
func (h *Handler) GetCategories(c *gin.Context) {
	categories, err := h.store.Categories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}
