package database

import (
	"context"
	"time"

	"gorm.io/gorm"

	"Association_Portal/internal/model"
)

type AdminRepository struct {
	*Store[model.Admin]
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{Store: NewStore[model.Admin](db)}
}

func (r *AdminRepository) FindByUsername(ctx context.Context, username string) (*model.Admin, error) {
	var a model.Admin
	if err := r.DB.WithContext(ctx).Where("username = ?", username).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AdminRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&model.Admin{}).Count(&n).Error
	return n, err
}

func (r *AdminRepository) ListAll(ctx context.Context) ([]model.Admin, error) {
	list := make([]model.Admin, 0)
	err := r.DB.WithContext(ctx).Order("id ASC").Find(&list).Error
	return list, err
}

func (r *AdminRepository) UpdatePassword(ctx context.Context, id uint64, hash string) error {
	return r.DB.WithContext(ctx).Model(&model.Admin{}).
		Where("id = ?", id).
		Update("password", hash).Error
}

// TouchLastLogin records a successful login without bumping updated_at.
func (r *AdminRepository) TouchLastLogin(ctx context.Context, id uint64, at time.Time) error {
	return r.DB.WithContext(ctx).Model(&model.Admin{}).
		Where("id = ?", id).
		UpdateColumn("last_login", at).Error
}
