package database

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Scope narrows a list query.
type Scope = func(*gorm.DB) *gorm.DB

// ListQuery describes one page of a filtered, ordered listing.
type ListQuery struct {
	Scopes  []Scope
	Order   string
	Offset  int
	Limit   int
	Preload []string
}

// Store holds the CRUD operations shared by every entity table.
type Store[T any] struct {
	DB *gorm.DB
}

func NewStore[T any](db *gorm.DB) *Store[T] {
	return &Store[T]{DB: db}
}

func (s *Store[T]) FindByID(ctx context.Context, id uint64, preload ...string) (*T, error) {
	var m T
	db := s.DB.WithContext(ctx)
	for _, p := range preload {
		db = db.Preload(p)
	}
	if err := db.First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Store[T]) Exists(ctx context.Context, id uint64) (bool, error) {
	var n int64
	err := s.DB.WithContext(ctx).Model(new(T)).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

func (s *Store[T]) Create(ctx context.Context, m *T) error {
	return s.DB.WithContext(ctx).Create(m).Error
}

// Save writes every column of m back to its row except the omitted ones.
func (s *Store[T]) Save(ctx context.Context, m *T, omit ...string) error {
	return s.DB.WithContext(ctx).Omit(append([]string{clause.Associations}, omit...)...).Save(m).Error
}

// Delete removes the row and reports how many rows were affected, zero when
// the id did not exist.
func (s *Store[T]) Delete(ctx context.Context, id uint64) (int64, error) {
	tx := s.DB.WithContext(ctx).Delete(new(T), "id = ?", id)
	return tx.RowsAffected, tx.Error
}

// List returns the requested page and the total number of matching rows.
func (s *Store[T]) List(ctx context.Context, q ListQuery) ([]T, int64, error) {
	base := func() *gorm.DB {
		return s.DB.WithContext(ctx).Model(new(T)).Scopes(q.Scopes...)
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count: %w", err)
	}

	db := base()
	for _, p := range q.Preload {
		db = db.Preload(p)
	}
	if q.Order != "" {
		db = db.Order(q.Order)
	}
	if q.Limit > 0 {
		db = db.Offset(q.Offset).Limit(q.Limit)
	}
	items := make([]T, 0)
	if err := db.Find(&items).Error; err != nil {
		return nil, 0, fmt.Errorf("find: %w", err)
	}
	return items, total, nil
}

// Increment atomically adds one to column and reports the rows affected.
func (s *Store[T]) Increment(ctx context.Context, id uint64, column string) (int64, error) {
	tx := s.DB.WithContext(ctx).Model(new(T)).
		Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + 1"))
	return tx.RowsAffected, tx.Error
}

// IncrementWithin adds one to column only while it is below limitColumn, a
// zero limit meaning unbounded. The check and the write are one statement,
// so concurrent joins can never push the count past the limit.
func (s *Store[T]) IncrementWithin(ctx context.Context, id uint64, column, limitColumn string) (int64, error) {
	tx := s.DB.WithContext(ctx).Model(new(T)).
		Where("id = ?", id).
		Where(fmt.Sprintf("(%s = 0 OR %s < %s)", limitColumn, column, limitColumn)).
		UpdateColumn(column, gorm.Expr(column+" + 1"))
	return tx.RowsAffected, tx.Error
}

// Eq matches column exactly; an empty value leaves the query untouched.
func Eq(column string, value any) Scope {
	return func(db *gorm.DB) *gorm.DB {
		if s, ok := value.(string); ok && s == "" {
			return db
		}
		return db.Where(column+" = ?", value)
	}
}

// Search matches term as a case-insensitive substring of any of columns.
func Search(term string, columns ...string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		term = strings.TrimSpace(term)
		if term == "" || len(columns) == 0 {
			return db
		}
		like := "%" + strings.ToLower(term) + "%"
		conds := make([]string, len(columns))
		args := make([]any, len(columns))
		for i, c := range columns {
			conds[i] = "LOWER(" + c + ") LIKE ?"
			args[i] = like
		}
		return db.Where("("+strings.Join(conds, " OR ")+")", args...)
	}
}

// Where wraps a raw condition as a scope.
func Where(query string, args ...any) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(query, args...)
	}
}
