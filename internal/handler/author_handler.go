package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/agorahq/agora/internal/dto"
	"github.com/agorahq/agora/internal/service"
	"github.com/agorahq/agora/pkg/response"
	"github.com/agorahq/agora/pkg/validator"
)

type AuthorHandler struct {
	service service.ForumService
}

func NewAuthorHandler(service service.ForumService) *AuthorHandler {
	return &AuthorHandler{service: service}
}

func (h *AuthorHandler) GetAuthors(c *gin.Context) {
	limit := parseLimit(c.Query("limit"), service.DefaultAuthorsLimit)

	authors, err := h.service.GetAuthors(c.Request.Context(), limit)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	items := make([]dto.AuthorResponse, 0, len(authors))
	for _, author := range authors {
		items = append(items, dto.NewAuthorResponse(author))
	}

	c.JSON(http.StatusOK, items)
}

func (h *AuthorHandler) GetAuthor(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid author id"})
		return
	}

	author, err := h.service.GetAuthor(c.Request.Context(), id)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAuthorResponse(author))
}

func (h *AuthorHandler) CreateAuthor(c *gin.Context) {
	var req dto.CreateAuthorRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	id, err := h.service.AddAuthor(c.Request.Context(), req.Username, req.Fullname, req.Email)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"new_author_id": id})
}

func (h *AuthorHandler) UpdateAuthor(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid author id"})
		return
	}

	fields, err := formFields(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed form body"})
		return
	}

	authorID, err := h.service.EditAuthor(c.Request.Context(), id, fields)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"author_id": authorID})
}

func (h *AuthorHandler) DeleteAuthor(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid author id"})
		return
	}

	if err := h.service.DeleteAuthor(c.Request.Context(), id); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"message": "author deleted"})
}
