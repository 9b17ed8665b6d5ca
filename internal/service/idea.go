package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/agorahq/agora/internal/model"
	"github.com/agorahq/agora/internal/repository"
	"github.com/agorahq/agora/pkg/apperror"
)

var ideaFields = map[string]fieldSpec{
	"title":   {column: "title"},
	"idea":    {column: "idea"},
	"visible": {column: "visible", kind: booleanField},
}

func (s *forumService) IdeaCount(ctx context.Context) (int64, error) {
	return s.repos.Ideas().Count(ctx)
}

func (s *forumService) GetIdea(ctx context.Context, id uuid.UUID) (*model.Idea, error) {
	idea, err := findByID(ctx, s.repos.Ideas(), id)
	if err != nil {
		return nil, asIdeaErr(err)
	}
	return idea, nil
}

func (s *forumService) GetIdeas(ctx context.Context, limit int) ([]*model.Idea, error) {
	return s.repos.Ideas().Find(ctx, nil, limit, "")
}

func (s *forumService) AddIdea(ctx context.Context, title, body string, authorID uuid.UUID) (uuid.UUID, error) {
	if title == "" {
		return uuid.Nil, fmt.Errorf("%w: title is required", apperror.ErrInvalidInput)
	}
	body = s.sanitizer.Sanitize(body)

	var id uuid.UUID
	err := s.repos.Transaction(ctx, func(tx repository.Repositories) error {
		// the author reference must resolve before anything is written
		author, err := findByID(ctx, tx.Authors(), authorID)
		if err != nil {
			return asAuthorErr(err)
		}

		existing, err := tx.Ideas().Find(ctx, map[string]any{"title": title}, 1, "")
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			return apperror.ErrDuplicateIdea
		}

		idea := &model.Idea{Title: title, Body: body, AuthorID: author.ID}
		created, err := addRecord(ctx, tx.Ideas(), idea, map[string]any{"title": title})
		if err != nil {
			return err
		}
		id = created.ID
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (s *forumService) EditIdea(ctx context.Context, id uuid.UUID, fields map[string]string) (uuid.UUID, error) {
	if raw, ok := fields["idea"]; ok {
		sanitized := make(map[string]string, len(fields))
		for name, value := range fields {
			sanitized[name] = value
		}
		sanitized["idea"] = s.sanitizer.Sanitize(raw)
		fields = sanitized
	}

	err := s.repos.Transaction(ctx, func(tx repository.Repositories) error {
		return editRecord(ctx, tx.Ideas(), id, fields, ideaFields)
	})
	if err != nil {
		return uuid.Nil, asIdeaErr(err)
	}
	return id, nil
}

func (s *forumService) DeleteIdea(ctx context.Context, id uuid.UUID) error {
	if err := s.repos.Transaction(ctx, func(tx repository.Repositories) error {
		return deleteRecord(ctx, tx.Ideas(), id)
	}); err != nil {
		return asIdeaErr(err)
	}
	return nil
}

// asIdeaErr names a bare NotFound for the idea kind.
func asIdeaErr(err error) error {
	if errors.Is(err, apperror.ErrNotFound) && !errors.Is(err, apperror.ErrInvalidIdea) && !errors.Is(err, apperror.ErrInvalidAuthor) {
		return apperror.ErrInvalidIdea
	}
	return err
}
