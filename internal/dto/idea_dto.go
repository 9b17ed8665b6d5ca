package dto

import "github.com/agorahq/agora/internal/model"

type CreateIdeaRequest struct {
	Title    string `form:"title" binding:"required"`
	Idea     string `form:"idea"`
	AuthorID string `form:"author_id" binding:"required,uuid"`
}

// IdeaListItem is one element of GET /ideas: the idea plus its author byline.
type IdeaListItem struct {
	Title  string `json:"title"`
	Idea   string `json:"idea"`
	Author string `json:"author"`
}

type IdeaDetail struct {
	Title string `json:"title"`
	Idea  string `json:"idea"`
}

func NewIdeaListItem(idea *model.Idea) IdeaListItem {
	return IdeaListItem{
		Title:  idea.Title,
		Idea:   idea.Body,
		Author: idea.Author.DisplayName(),
	}
}

func NewIdeaDetail(idea *model.Idea) IdeaDetail {
	return IdeaDetail{Title: idea.Title, Idea: idea.Body}
}
