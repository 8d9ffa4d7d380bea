package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fintrack/internal/models"
)

// CategoryHandler serves the static category catalog.
type CategoryHandler struct{}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// GetCategories returns the fixed category list
// @Summary     Get categories
// @Description Get the fixed list of transaction categories and the account color palette
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.Category "Categories"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /categories [get]
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories":     models.DefaultCategories,
		"account_colors": models.AccountColors,
	})
}
