package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/agorahq/agora/internal/model"
)

type CreateAuthorRequest struct {
	Username string `form:"username" binding:"required"`
	Fullname string `form:"fullname"`
	Email    string `form:"email" binding:"omitempty,email"`
}

type AuthorResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Fullname string    `json:"fullname"`
	Email    string    `json:"email"`
	Active   bool      `json:"active"`
	Created  string    `json:"created"`
}

func NewAuthorResponse(author *model.Author) AuthorResponse {
	return AuthorResponse{
		ID:       author.ID,
		Username: author.Username,
		Fullname: author.Fullname,
		Email:    author.Email,
		Active:   author.Active,
		Created:  author.CreatedAt.Format(time.RFC3339),
	}
}
