package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/agorahq/agora/internal/repository"
	"github.com/agorahq/agora/pkg/apperror"
)

// Generic record primitives shared by both record kinds. Per-entity operations
// in author.go and idea.go compose these with duplicate and cascade rules.

type fieldKind int

const (
	textField fieldKind = iota
	booleanField
)

// fieldSpec declares one editable field: the external name maps to a store
// column and a value kind.
type fieldSpec struct {
	column string
	kind   fieldKind
}

func (f fieldSpec) coerce(raw string) (any, error) {
	if f.kind == booleanField {
		return strconv.ParseBool(raw)
	}
	return raw, nil
}

// findByID fetches a record by id. Zero rows is a NotFound; more than one row
// for a unique id is a store inconsistency and propagates as AmbiguousResult.
func findByID[T any](ctx context.Context, store repository.Store[T], id uuid.UUID) (*T, error) {
	records, err := store.Find(ctx, map[string]any{"id": id}, 2, "")
	if err != nil {
		return nil, err
	}
	switch len(records) {
	case 0:
		return nil, apperror.ErrNotFound
	case 1:
		return records[0], nil
	default:
		return nil, fmt.Errorf("%w: id %s", apperror.ErrAmbiguousResult, id)
	}
}

// addRecord inserts and then re-reads by the unique key to confirm the insert
// actually landed. Store error detail goes to the log, never to the caller.
func addRecord[T any](ctx context.Context, store repository.Store[T], record *T, unique map[string]any) (*T, error) {
	if err := store.Create(ctx, record); err != nil {
		logrus.WithError(err).Error("insert rejected by the store")
		return nil, apperror.ErrAddFailed
	}
	rows, err := store.Find(ctx, unique, 1, "")
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, apperror.ErrAddFailed
	}
	return rows[0], nil
}

// editRecord applies a partial update. Field names outside the declared set
// are ignored, not errors; a value the column type rejects is an EditFailed.
func editRecord[T any](ctx context.Context, store repository.Store[T], id uuid.UUID, fields map[string]string, allowed map[string]fieldSpec) error {
	if _, err := findByID(ctx, store, id); err != nil {
		return err
	}

	changes := make(map[string]any)
	for name, raw := range fields {
		spec, ok := allowed[name]
		if !ok {
			continue
		}
		value, err := spec.coerce(raw)
		if err != nil {
			return fmt.Errorf("%w: field %q", apperror.ErrEditFailed, name)
		}
		changes[spec.column] = value
	}

	if len(changes) > 0 {
		if err := store.Updates(ctx, id, changes); err != nil {
			logrus.WithError(err).Error("update rejected by the store")
			return apperror.ErrEditFailed
		}
	}

	// re-read to make sure the record is still addressable
	_, err := findByID(ctx, store, id)
	return err
}

// deleteRecord removes a record and re-reads to confirm it is gone.
func deleteRecord[T any](ctx context.Context, store repository.Store[T], id uuid.UUID) error {
	if _, err := findByID(ctx, store, id); err != nil {
		return err
	}
	if err := store.Delete(ctx, id); err != nil {
		logrus.WithError(err).Error("delete rejected by the store")
		return apperror.ErrDeleteFailed
	}

	_, err := findByID(ctx, store, id)
	switch {
	case err == nil:
		// the row survived the delete
		return apperror.ErrDeleteFailed
	case errors.Is(err, apperror.ErrNotFound):
		return nil
	default:
		return err
	}
}
