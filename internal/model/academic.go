package model

import "time"

// AcademicLinks is a singleton row holding one resource URL per level.
type AcademicLinks struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	Level100     string    `gorm:"size:512;not null;default:''" json:"level100"`
	Level200     string    `gorm:"size:512;not null;default:''" json:"level200"`
	Level300     string    `gorm:"size:512;not null;default:''" json:"level300"`
	Level400     string    `gorm:"size:512;not null;default:''" json:"level400"`
	Postgraduate string    `gorm:"size:512;not null;default:''" json:"postgraduate"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
