package database

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"Association_Portal/internal/model"
)

type ContactRepository struct {
	*Store[model.ContactMessage]
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{Store: NewStore[model.ContactMessage](db)}
}

type ContactStats struct {
	Total      int64            `json:"total"`
	ByStatus   map[string]int64 `json:"byStatus"`
	ByCategory map[string]int64 `json:"byCategory"`
	ByPriority map[string]int64 `json:"byPriority"`
	Recent     int64            `json:"recent"`
}

type groupCount struct {
	Value string
	Count int64
}

// Stats counts messages overall, per status, category and priority, plus the
// messages received since the given instant.
func (r *ContactRepository) Stats(ctx context.Context, since time.Time) (*ContactStats, error) {
	db := r.DB.WithContext(ctx).Model(&model.ContactMessage{})
	stats := &ContactStats{}

	if err := db.Count(&stats.Total).Error; err != nil {
		return nil, fmt.Errorf("count: %w", err)
	}
	if err := r.DB.WithContext(ctx).Model(&model.ContactMessage{}).
		Where("created_at >= ?", since.UTC()).
		Count(&stats.Recent).Error; err != nil {
		return nil, fmt.Errorf("count recent: %w", err)
	}

	var err error
	if stats.ByStatus, err = r.groupBy(ctx, "status"); err != nil {
		return nil, err
	}
	if stats.ByCategory, err = r.groupBy(ctx, "category"); err != nil {
		return nil, err
	}
	if stats.ByPriority, err = r.groupBy(ctx, "priority"); err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *ContactRepository) groupBy(ctx context.Context, column string) (map[string]int64, error) {
	var rows []groupCount
	err := r.DB.WithContext(ctx).Model(&model.ContactMessage{}).
		Select(column + " AS value, COUNT(*) AS count").
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("group by %s: %w", column, err)
	}
	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.Value] = row.Count
	}
	return out, nil
}

// BulkUpdate applies the same column values to every listed message and
// reports how many rows matched. A non-nil stamp is first written to the
// listed messages that were never replied to, in the same transaction.
func (r *ContactRepository) BulkUpdate(ctx context.Context, ids []uint64, values map[string]any, stamp *model.Reply) (int64, error) {
	if len(ids) == 0 || len(values) == 0 {
		return 0, nil
	}
	var n int64
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if stamp != nil {
			err := tx.Model(&model.ContactMessage{}).
				Where("id IN ? AND replied_at IS NULL", ids).
				Updates(map[string]any{"replied_by": stamp.RepliedBy, "replied_at": stamp.RepliedAt}).Error
			if err != nil {
				return err
			}
		}
		res := tx.Model(&model.ContactMessage{}).Where("id IN ?", ids).Updates(values)
		n = res.RowsAffected
		return res.Error
	})
	return n, err
}
