package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"github.com/agorahq/agora/internal/model"
	"github.com/agorahq/agora/internal/repository"
)

// Default list truncation per record kind when the caller supplies none.
const (
	DefaultAuthorsLimit = 5
	DefaultIdeasLimit   = 5

	NoLimit = repository.NoLimit
)

type ForumService interface {
	AuthorCount(ctx context.Context) (int64, error)
	GetAuthor(ctx context.Context, id uuid.UUID) (*model.Author, error)
	GetAuthors(ctx context.Context, limit int) ([]*model.Author, error)
	AddAuthor(ctx context.Context, username, fullname, email string) (uuid.UUID, error)
	EditAuthor(ctx context.Context, id uuid.UUID, fields map[string]string) (uuid.UUID, error)
	DeleteAuthor(ctx context.Context, id uuid.UUID) error

	IdeaCount(ctx context.Context) (int64, error)
	GetIdea(ctx context.Context, id uuid.UUID) (*model.Idea, error)
	GetIdeas(ctx context.Context, limit int) ([]*model.Idea, error)
	AddIdea(ctx context.Context, title, body string, authorID uuid.UUID) (uuid.UUID, error)
	EditIdea(ctx context.Context, id uuid.UUID, fields map[string]string) (uuid.UUID, error)
	DeleteIdea(ctx context.Context, id uuid.UUID) error

	GetCategories(ctx context.Context) ([]*model.Category, error)
	GetTags(ctx context.Context) ([]*model.Tag, error)
}

type forumService struct {
	repos     repository.Repositories
	sanitizer *bluemonday.Policy
}

func NewForumService(repos repository.Repositories) ForumService {
	return &forumService{
		repos:     repos,
		sanitizer: bluemonday.UGCPolicy(),
	}
}

func (s *forumService) GetCategories(ctx context.Context) ([]*model.Category, error) {
	return s.repos.Categories().Find(ctx, nil, NoLimit, "name")
}

func (s *forumService) GetTags(ctx context.Context) ([]*model.Tag, error) {
	return s.repos.Tags().Find(ctx, nil, NoLimit, "name")
}
