package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type gormStore[T any] struct {
	db       *gorm.DB
	preloads []string
}

func newGormStore[T any](db *gorm.DB, preloads ...string) Store[T] {
	return &gormStore[T]{db: db, preloads: preloads}
}

func (s *gormStore[T]) query(ctx context.Context) *gorm.DB {
	q := s.db.WithContext(ctx)
	for _, preload := range s.preloads {
		q = q.Preload(preload)
	}
	return q
}

func (s *gormStore[T]) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(new(T)).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (s *gormStore[T]) Find(ctx context.Context, filters map[string]any, limit int, orderBy string) ([]*T, error) {
	var records []*T

	query := s.query(ctx)
	if len(filters) > 0 {
		query = query.Where(filters)
	}
	if orderBy == "" {
		// creation order
		orderBy = "created_at"
	}

	// gorm honors the limit contract as-is: negative cancels truncation,
	// zero yields no rows.
	if err := query.Order(orderBy).Limit(limit).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (s *gormStore[T]) Create(ctx context.Context, record *T) error {
	return s.db.WithContext(ctx).Create(record).Error
}

func (s *gormStore[T]) Updates(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	return s.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(fields).Error
}

func (s *gormStore[T]) Delete(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Delete(new(T), "id = ?", id).Error
}
