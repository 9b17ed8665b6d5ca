package dto

import (
	"github.com/google/uuid"

	"github.com/agorahq/agora/internal/model"
)

type CategoryResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type TagResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func NewCategoryResponse(category *model.Category) CategoryResponse {
	return CategoryResponse{ID: category.ID, Name: category.Name}
}

func NewTagResponse(tag *model.Tag) TagResponse {
	return TagResponse{ID: tag.ID, Name: tag.Name}
}
