package validate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Association_Portal/internal/model"
)

func validContact() model.ContactMessage {
	return model.ContactMessage{
		Name:     "Kwame",
		Email:    "kwame@example.com",
		Subject:  "Membership",
		Message:  "How do I join?",
		Category: "membership",
		Status:   model.ContactNew,
		Priority: model.PriorityMedium,
	}
}

func TestStruct_Contact(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(m *model.ContactMessage)
		message string
	}{
		{name: "valid", mutate: func(m *model.ContactMessage) {}},
		{name: "bad email", mutate: func(m *model.ContactMessage) { m.Email = "not-an-email" }, message: "Invalid email format"},
		{name: "missing name", mutate: func(m *model.ContactMessage) { m.Name = "" }, message: "name is required"},
		{name: "unknown category", mutate: func(m *model.ContactMessage) { m.Category = "spam" }, message: "category must be one of: general, membership, events, academic, partnership, other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validContact()
			tt.mutate(&m)
			err := Struct(m)
			if tt.message == "" {
				assert.NoError(t, err)
				return
			}
			var verr *Error
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.message, verr.Message)
		})
	}
}

func TestStruct_Event(t *testing.T) {
	e := model.Event{
		Title:       "Freshers' Night",
		Description: "Welcome party",
		Location:    "Great Hall",
		Status:      model.EventUpcoming,
	}

	err := Struct(e)
	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "date", verr.Field)

	e.Date = time.Now()
	assert.NoError(t, Struct(e))

	e.MaxParticipants = -1
	require.ErrorAs(t, Struct(e), &verr)
	assert.Equal(t, "maxParticipants must be at least 0", verr.Message)
}

func TestStruct_ReviewRating(t *testing.T) {
	var verr *Error

	require.ErrorAs(t, Struct(model.Review{Name: "Esi", Rating: 6}), &verr)
	assert.Equal(t, "rating must be at most 5", verr.Message)

	require.ErrorAs(t, Struct(model.Review{Name: "Esi"}), &verr)
	assert.Equal(t, "rating is required", verr.Message)

	assert.NoError(t, Struct(model.Review{Name: "Esi", Rating: 5}))
}

func TestStruct_DiscussionIgnoresMissingBook(t *testing.T) {
	d := model.Discussion{BookID: 3, Date: time.Now(), Location: "Library", Status: model.DiscussionUpcoming}
	assert.NoError(t, Struct(d))
}

func TestFields(t *testing.T) {
	assert.Equal(t, "required,email", Fields(KindContact)["Email"])
	assert.Nil(t, Fields(Kind("unknown")))
}

func TestField(t *testing.T) {
	assert.NoError(t, Field(KindContact, "Status", "status", "resolved"))
	assert.NoError(t, Field(KindContact, "Unknown", "x", "anything"))

	err := Field(KindContact, "Priority", "priority", "urgent")
	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "priority must be one of: low, medium, high", verr.Message)
}
