package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvent_DeriveStatus(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		date     time.Time
		status   string
		expected string
	}{
		{name: "past date completes", date: now.AddDate(0, 0, -1), status: EventUpcoming, expected: EventCompleted},
		{name: "past date overrides cancelled", date: now.AddDate(0, 0, -1), status: EventCancelled, expected: EventCompleted},
		{name: "future date is upcoming", date: now.AddDate(0, 0, 1), status: "", expected: EventUpcoming},
		{name: "future completed resets", date: now.AddDate(0, 0, 1), status: EventCompleted, expected: EventUpcoming},
		{name: "future keeps cancelled", date: now.AddDate(0, 0, 1), status: EventCancelled, expected: EventCancelled},
		{name: "future keeps ongoing", date: now.Add(time.Hour), status: EventOngoing, expected: EventOngoing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Event{Date: tt.date, Status: tt.status}
			e.DeriveStatus(now)
			assert.Equal(t, tt.expected, e.Status)
		})
	}
}

func TestArticle_Publish(t *testing.T) {
	first := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	later := first.Add(48 * time.Hour)

	a := Article{Status: ArticleDraft}
	a.Publish(first)
	assert.Nil(t, a.PublishedAt)

	a.Status = ArticlePublished
	a.Publish(first)
	require.NotNil(t, a.PublishedAt)
	assert.Equal(t, first, *a.PublishedAt)

	a.Status = ArticleDraft
	a.Publish(later)
	a.Status = ArticlePublished
	a.Publish(later)
	assert.Equal(t, first, *a.PublishedAt)
}

func TestBook_AddReview(t *testing.T) {
	b := Book{}
	b.AddReview(Review{Name: "a", Rating: 4})
	assert.InDelta(t, 4.0, b.Rating, 1e-9)

	b.AddReview(Review{Name: "b", Rating: 5})
	assert.InDelta(t, 4.5, b.Rating, 1e-9)
	assert.Len(t, b.Reviews, 2)
}

func TestContactMessage_MarkReplied(t *testing.T) {
	first := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	m := ContactMessage{}

	assert.True(t, m.MarkReplied("Ama", first))
	assert.False(t, m.MarkReplied("Kofi", first.Add(time.Hour)))

	assert.Equal(t, "Ama", m.Reply.RepliedBy)
	require.NotNil(t, m.Reply.RepliedAt)
	assert.Equal(t, first, *m.Reply.RepliedAt)
}
