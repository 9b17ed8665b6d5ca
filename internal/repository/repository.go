package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/agorahq/agora/internal/model"
)

// NoLimit disables result truncation on Find. A zero limit yields no rows.
const NoLimit = -1

// Store is everything the service layer needs from the record store:
// equality-filtered, ordered, limited reads, insert with generated identity,
// attribute-level update, and single-row delete.
type Store[T any] interface {
	Count(ctx context.Context) (int64, error)
	Find(ctx context.Context, filters map[string]any, limit int, orderBy string) ([]*T, error)
	Create(ctx context.Context, record *T) error
	Updates(ctx context.Context, id uuid.UUID, fields map[string]any) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Repositories bundles the per-kind stores with transaction scoping. A
// check-then-write sequence runs through Transaction so a concurrent writer
// cannot interleave between the check and the write.
type Repositories interface {
	Authors() Store[model.Author]
	Ideas() Store[model.Idea]
	Categories() Store[model.Category]
	Tags() Store[model.Tag]
	Transaction(ctx context.Context, fn func(Repositories) error) error
}

type manager struct {
	db         *gorm.DB
	authors    Store[model.Author]
	ideas      Store[model.Idea]
	categories Store[model.Category]
	tags       Store[model.Tag]
}

func NewManager(db *gorm.DB) Repositories {
	return &manager{
		db:         db,
		authors:    newGormStore[model.Author](db),
		ideas:      newGormStore[model.Idea](db, "Author"),
		categories: newGormStore[model.Category](db),
		tags:       newGormStore[model.Tag](db),
	}
}

func (m *manager) Authors() Store[model.Author]      { return m.authors }
func (m *manager) Ideas() Store[model.Idea]          { return m.ideas }
func (m *manager) Categories() Store[model.Category] { return m.categories }
func (m *manager) Tags() Store[model.Tag]            { return m.tags }

func (m *manager) Transaction(ctx context.Context, fn func(Repositories) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewManager(tx))
	})
}
