package service

import (
	"context"
	"fmt"

	"Association_Portal/internal/repository/database"
)

func findByID[T any](ctx context.Context, store *database.Store[T], resource string, id uint64, preload ...string) (*T, error) {
	m, err := store.FindByID(ctx, id, preload...)
	if err != nil {
		return nil, notFound(resource, err)
	}
	return m, nil
}

func deleteByID[T any](ctx context.Context, store *database.Store[T], resource string, id uint64) error {
	n, err := store.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete %s: %w", resource, err)
	}
	if n == 0 {
		return &NotFoundError{Resource: resource}
	}
	return nil
}

func increment[T any](ctx context.Context, store *database.Store[T], resource string, id uint64, column string) error {
	n, err := store.Increment(ctx, id, column)
	if err != nil {
		return fmt.Errorf("increment %s.%s: %w", resource, column, err)
	}
	if n == 0 {
		return &NotFoundError{Resource: resource}
	}
	return nil
}

// join takes a seat through fn and turns a rejected update into either a
// not found or a full capacity error.
func join[T any](ctx context.Context, store *database.Store[T], resource string, id uint64, fn func(context.Context, uint64) (int64, error)) error {
	n, err := fn(ctx, id)
	if err != nil {
		return fmt.Errorf("join %s: %w", resource, err)
	}
	if n > 0 {
		return nil
	}
	ok, err := store.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("find %s: %w", resource, err)
	}
	if !ok {
		return &NotFoundError{Resource: resource}
	}
	return &RuleError{Message: resource + " is at full capacity"}
}

// checkCapacity rejects a capacity below the seats already taken. Zero means
// unbounded.
func checkCapacity(max, current int) error {
	if max > 0 && max < current {
		return &RuleError{Message: fmt.Sprintf("maxParticipants cannot be less than the %d current participants", current)}
	}
	return nil
}
