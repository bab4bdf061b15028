package model

import "time"

type Newsletter struct {
	ID          uint64     `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	IssueNumber string     `gorm:"size:32" json:"issueNumber"`
	PublishDate *time.Time `gorm:"index" json:"publishDate"`
	FileURL     string     `gorm:"size:512;not null" json:"fileUrl"`
	FileName    string     `gorm:"size:255;index" json:"fileName"`
	CoverImage  string     `gorm:"size:512" json:"coverImage"`
	Downloads   int64      `gorm:"not null;default:0" json:"downloads"`
	CreatedAt   time.Time  `gorm:"index" json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
