package model

import (
	"time"

	"gorm.io/datatypes"
)

const (
	ArticleDraft     = "draft"
	ArticlePublished = "published"
)

type Article struct {
	ID            uint64                      `gorm:"primaryKey" json:"id"`
	Title         string                      `gorm:"size:255;not null" json:"title"`
	Content       string                      `gorm:"type:text" json:"content"`
	Excerpt       string                      `gorm:"type:text" json:"excerpt"`
	Author        string                      `gorm:"size:128" json:"author"`
	Category      string                      `gorm:"size:64;index" json:"category"`
	Tags          datatypes.JSONSlice[string] `json:"tags"`
	FeaturedImage string                      `gorm:"size:512" json:"featuredImage"`
	Status        string                      `gorm:"size:16;index;not null" json:"status"`
	PublishedAt   *time.Time                  `gorm:"index" json:"publishedAt"`
	Views         int64                       `gorm:"not null;default:0" json:"views"`
	Likes         int64                       `gorm:"not null;default:0" json:"likes"`
	CreatedAt     time.Time                   `gorm:"index" json:"createdAt"`
	UpdatedAt     time.Time                   `json:"updatedAt"`
}

// Publish stamps PublishedAt the first time the article enters the published
// state. Later transitions never move the date.
func (a *Article) Publish(now time.Time) {
	if a.Status == ArticlePublished && a.PublishedAt == nil {
		a.PublishedAt = &now
	}
}
