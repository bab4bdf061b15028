package model

import (
	"time"

	"gorm.io/datatypes"
)

const (
	MediaImage = "image"
	MediaVideo = "video"
)

type GalleryItem struct {
	ID          uint64                      `gorm:"primaryKey" json:"id"`
	Title       string                      `gorm:"size:255;not null" json:"title"`
	Description string                      `gorm:"type:text" json:"description"`
	Type        string                      `gorm:"size:16;not null" json:"type"`
	URL         string                      `gorm:"size:512;not null" json:"url"`
	Thumbnail   string                      `gorm:"size:512" json:"thumbnail"`
	Category    string                      `gorm:"size:64;index" json:"category"`
	Tags        datatypes.JSONSlice[string] `json:"tags"`
	EventID     *uint64                     `gorm:"index" json:"eventId"`
	Event       *Event                      `gorm:"foreignKey:EventID" json:"event"`
	Views       int64                       `gorm:"not null;default:0" json:"views"`
	Likes       int64                       `gorm:"not null;default:0" json:"likes"`
	Featured    bool                        `gorm:"index" json:"featured"`
	CreatedAt   time.Time                   `gorm:"index" json:"createdAt"`
	UpdatedAt   time.Time                   `json:"updatedAt"`
}

func (GalleryItem) TableName() string {
	return "gallery_items"
}
