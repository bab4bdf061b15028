package model

import "time"

const (
	DiscussionUpcoming  = "upcoming"
	DiscussionCompleted = "completed"
	DiscussionCancelled = "cancelled"
)

type Discussion struct {
	ID                  uint64    `gorm:"primaryKey" json:"id"`
	BookID              uint64    `gorm:"index;not null" json:"bookId"`
	Book                *Book     `gorm:"foreignKey:BookID" json:"book"`
	Title               string    `gorm:"size:255" json:"title"`
	Description         string    `gorm:"type:text" json:"description"`
	Date                time.Time `gorm:"index" json:"date"`
	Time                string    `gorm:"size:32" json:"time"`
	Location            string    `gorm:"size:255" json:"location"`
	Facilitator         string    `gorm:"size:128" json:"facilitator"`
	MaxParticipants     int       `gorm:"not null;default:0" json:"maxParticipants"`
	CurrentParticipants int       `gorm:"not null;default:0" json:"currentParticipants"`
	Status              string    `gorm:"size:16;index;not null" json:"status"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}
