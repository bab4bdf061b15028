package database

import (
	"context"

	"gorm.io/gorm"

	"Association_Portal/internal/model"
)

// AcademicRepository stores the single academic links row.
type AcademicRepository struct {
	DB *gorm.DB
}

func NewAcademicRepository(db *gorm.DB) *AcademicRepository {
	return &AcademicRepository{DB: db}
}

// Get returns the links row, creating an empty one on first access.
func (r *AcademicRepository) Get(ctx context.Context) (*model.AcademicLinks, error) {
	var links model.AcademicLinks
	if err := r.DB.WithContext(ctx).Order("id ASC").FirstOrCreate(&links).Error; err != nil {
		return nil, err
	}
	return &links, nil
}

func (r *AcademicRepository) Save(ctx context.Context, links *model.AcademicLinks) error {
	return r.DB.WithContext(ctx).Save(links).Error
}
