package model

// All lists every persisted model, in migration order.
func All() []any {
	return []any{
		&Admin{},
		&Article{},
		&Event{},
		&GalleryItem{},
		&Book{},
		&Discussion{},
		&Newsletter{},
		&ContactMessage{},
		&AcademicLinks{},
	}
}
