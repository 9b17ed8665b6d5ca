package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/agorahq/agora/internal/dto"
	"github.com/agorahq/agora/internal/service"
	"github.com/agorahq/agora/pkg/apperror"
	"github.com/agorahq/agora/pkg/response"
	"github.com/agorahq/agora/pkg/validator"
)

type IdeaHandler struct {
	service service.ForumService
}

func NewIdeaHandler(service service.ForumService) *IdeaHandler {
	return &IdeaHandler{service: service}
}

func (h *IdeaHandler) GetIdeas(c *gin.Context) {
	limit := parseLimit(c.Query("limit"), service.DefaultIdeasLimit)

	ideas, err := h.service.GetIdeas(c.Request.Context(), limit)
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	total, err := h.service.IdeaCount(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	items := make([]dto.IdeaListItem, 0, len(ideas))
	for _, idea := range ideas {
		items = append(items, dto.NewIdeaListItem(idea))
	}

	c.Header("X-Total-Count", strconv.FormatInt(total, 10))
	c.JSON(http.StatusOK, items)
}

func (h *IdeaHandler) GetIdea(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid idea id"})
		return
	}

	idea, err := h.service.GetIdea(c.Request.Context(), id)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewIdeaDetail(idea))
}

func (h *IdeaHandler) CreateIdea(c *gin.Context) {
	var req dto.CreateIdeaRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	authorID, err := uuid.Parse(req.AuthorID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid author id"})
		return
	}

	id, err := h.service.AddIdea(c.Request.Context(), req.Title, req.Idea, authorID)
	if err != nil {
		// Every creation failure on this surface is a 400, except
		// store-integrity violations and other internal failures.
		if apperror.MapErrorToStatus(err) >= http.StatusInternalServerError {
			response.ResponseError(c, err)
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"new_idea_id": id})
}

func (h *IdeaHandler) UpdateIdea(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid idea id"})
		return
	}

	fields, err := formFields(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed form body"})
		return
	}

	ideaID, err := h.service.EditIdea(c.Request.Context(), id, fields)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"idea_id": ideaID})
}

func (h *IdeaHandler) DeleteIdea(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid idea id"})
		return
	}

	if err := h.service.DeleteIdea(c.Request.Context(), id); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"message": "idea deleted"})
}
