package model

import (
	"time"

	"gorm.io/datatypes"
)

const (
	BookCurrent   = "current"
	BookUpcoming  = "upcoming"
	BookCompleted = "completed"
)

type Review struct {
	Name    string    `json:"name"`
	Rating  int       `json:"rating"`
	Comment string    `json:"comment"`
	Date    time.Time `json:"date"`
}

type Book struct {
	ID          uint64                      `gorm:"primaryKey" json:"id"`
	Title       string                      `gorm:"size:255;not null" json:"title"`
	Author      string                      `gorm:"size:128;not null" json:"author"`
	Description string                      `gorm:"type:text" json:"description"`
	Genre       string                      `gorm:"size:64;index" json:"genre"`
	CoverImage  string                      `gorm:"size:512" json:"coverImage"`
	Status      string                      `gorm:"size:16;index;not null" json:"status"`
	StartDate   *time.Time                  `json:"startDate"`
	EndDate     *time.Time                  `json:"endDate"`
	Rating      float64                     `gorm:"not null;default:0" json:"rating"`
	Reviews     datatypes.JSONSlice[Review] `json:"reviews"`
	CreatedAt   time.Time                   `gorm:"index" json:"createdAt"`
	UpdatedAt   time.Time                   `json:"updatedAt"`
}

// AddReview appends r and recomputes Rating as the mean of all reviews.
func (b *Book) AddReview(r Review) {
	b.Reviews = append(b.Reviews, r)
	var sum int
	for _, rv := range b.Reviews {
		sum += rv.Rating
	}
	b.Rating = float64(sum) / float64(len(b.Reviews))
}
