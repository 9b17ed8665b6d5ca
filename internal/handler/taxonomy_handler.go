package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agorahq/agora/internal/dto"
	"github.com/agorahq/agora/internal/service"
	"github.com/agorahq/agora/pkg/response"
)

type TaxonomyHandler struct {
	service service.ForumService
}

func NewTaxonomyHandler(service service.ForumService) *TaxonomyHandler {
	return &TaxonomyHandler{service: service}
}

func (h *TaxonomyHandler) GetCategories(c *gin.Context) {
	categories, err := h.service.GetCategories(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	items := make([]dto.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		items = append(items, dto.NewCategoryResponse(category))
	}
	c.JSON(http.StatusOK, items)
}

func (h *TaxonomyHandler) GetTags(c *gin.Context) {
	tags, err := h.service.GetTags(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	items := make([]dto.TagResponse, 0, len(tags))
	for _, tag := range tags {
		items = append(items, dto.NewTagResponse(tag))
	}
	c.JSON(http.StatusOK, items)
}
