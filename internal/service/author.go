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

var authorFields = map[string]fieldSpec{
	"username": {column: "username"},
	"fullname": {column: "fullname"},
	"email":    {column: "email"},
	"active":   {column: "active", kind: booleanField},
}

func (s *forumService) AuthorCount(ctx context.Context) (int64, error) {
	return s.repos.Authors().Count(ctx)
}

func (s *forumService) GetAuthor(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	author, err := findByID(ctx, s.repos.Authors(), id)
	if err != nil {
		return nil, asAuthorErr(err)
	}
	return author, nil
}

func (s *forumService) GetAuthors(ctx context.Context, limit int) ([]*model.Author, error) {
	return s.repos.Authors().Find(ctx, nil, limit, "")
}

func (s *forumService) AddAuthor(ctx context.Context, username, fullname, email string) (uuid.UUID, error) {
	if username == "" {
		return uuid.Nil, fmt.Errorf("%w: username is required", apperror.ErrInvalidInput)
	}
	if fullname == "" {
		fullname = "Anonymous"
	}

	var id uuid.UUID
	err := s.repos.Transaction(ctx, func(tx repository.Repositories) error {
		existing, err := tx.Authors().Find(ctx, map[string]any{"username": username}, 1, "")
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			return apperror.ErrDuplicateAuthor
		}

		author := &model.Author{Username: username, Fullname: fullname, Email: email}
		created, err := addRecord(ctx, tx.Authors(), author, map[string]any{"username": username})
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

func (s *forumService) EditAuthor(ctx context.Context, id uuid.UUID, fields map[string]string) (uuid.UUID, error) {
	err := s.repos.Transaction(ctx, func(tx repository.Repositories) error {
		return editRecord(ctx, tx.Authors(), id, fields, authorFields)
	})
	if err != nil {
		return uuid.Nil, asAuthorErr(err)
	}
	return id, nil
}

// DeleteAuthor removes an author and every idea it owns. The store does not
// cascade; the owned ideas go first, all inside one transaction.
func (s *forumService) DeleteAuthor(ctx context.Context, id uuid.UUID) error {
	return s.repos.Transaction(ctx, func(tx repository.Repositories) error {
		if _, err := findByID(ctx, tx.Authors(), id); err != nil {
			return asAuthorErr(err)
		}

		ideas, err := tx.Ideas().Find(ctx, map[string]any{"author_id": id}, NoLimit, "")
		if err != nil {
			return err
		}
		for _, idea := range ideas {
			if err := deleteRecord(ctx, tx.Ideas(), idea.ID); err != nil {
				return err
			}
		}

		return deleteRecord(ctx, tx.Authors(), id)
	})
}

// asAuthorErr names a bare NotFound for the author kind.
func asAuthorErr(err error) error {
	if errors.Is(err, apperror.ErrNotFound) && !errors.Is(err, apperror.ErrInvalidAuthor) {
		return apperror.ErrInvalidAuthor
	}
	return err
}
