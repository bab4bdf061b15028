// Package validate holds the field constraints of every persisted entity in
// one table, keyed by entity kind, and checks models against it before they
// are written.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"Association_Portal/internal/model"
)

type Kind string

const (
	KindAdmin      Kind = "admin"
	KindArticle    Kind = "article"
	KindEvent      Kind = "event"
	KindGallery    Kind = "gallery"
	KindBook       Kind = "book"
	KindReview     Kind = "review"
	KindDiscussion Kind = "discussion"
	KindNewsletter Kind = "newsletter"
	KindContact    Kind = "contact"
)

type schema struct {
	typ    any
	fields map[string]string
}

// schemas maps Go field names to validator tags.
var schemas = map[Kind]schema{
	KindAdmin: {model.Admin{}, map[string]string{
		"Username": "required,min=3,max=64",
		"Password": "required",
		"Role":     "required,oneof=admin editor",
	}},
	KindArticle: {model.Article{}, map[string]string{
		"Title":   "required,max=255",
		"Content": "required",
		"Author":  "required",
		"Status":  "required,oneof=draft published",
	}},
	KindEvent: {model.Event{}, map[string]string{
		"Title":           "required,max=255",
		"Description":     "required",
		"Date":            "required",
		"Location":        "required",
		"MaxParticipants": "min=0",
		"Status":          "required,oneof=upcoming ongoing completed cancelled",
	}},
	KindGallery: {model.GalleryItem{}, map[string]string{
		"Title": "required,max=255",
		"Type":  "required,oneof=image video",
		"URL":   "required",
	}},
	KindBook: {model.Book{}, map[string]string{
		"Title":  "required,max=255",
		"Author": "required",
		"Status": "required,oneof=current upcoming completed",
	}},
	KindReview: {model.Review{}, map[string]string{
		"Name":   "required",
		"Rating": "required,min=1,max=5",
	}},
	KindDiscussion: {model.Discussion{}, map[string]string{
		"BookID":          "required",
		"Date":            "required",
		"Location":        "required",
		"MaxParticipants": "min=0",
		"Status":          "required,oneof=upcoming completed cancelled",
	}},
	KindNewsletter: {model.Newsletter{}, map[string]string{
		"Title":   "required,max=255",
		"FileURL": "required",
	}},
	KindContact: {model.ContactMessage{}, map[string]string{
		"Name":     "required,max=128",
		"Email":    "required,email",
		"Subject":  "required,max=255",
		"Message":  "required",
		"Category": "required,oneof=general membership events academic partnership other",
		"Status":   "required,oneof=new read replied resolved",
		"Priority": "required,oneof=low medium high",
	}},
}

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())
	val.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	for _, s := range schemas {
		val.RegisterStructValidationMapRules(s.fields, s.typ)
	}
	return val
}

// Error is a failed constraint rendered for API clients.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Struct validates a model value against its registered schema and returns
// the first violation.
func Struct(m any) error {
	err := v.Struct(m)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("validate: %w", err)
	}
	fe := fieldErrs[0]
	return &Error{Field: fe.Field(), Message: message(fe.Field(), fe)}
}

// Field validates a single value against the rule kind declares for the Go
// field name. name is the client facing field name used in the message.
func Field(kind Kind, field, name string, value any) error {
	tag, ok := schemas[kind].fields[field]
	if !ok {
		return nil
	}
	err := v.Var(value, tag)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("validate: %w", err)
	}
	return &Error{Field: name, Message: message(name, fieldErrs[0])}
}

// Fields returns the constraint table of kind, mainly for documentation and
// tests.
func Fields(kind Kind) map[string]string {
	return schemas[kind].fields
}

func message(name string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return name + " is required"
	case "email":
		return "Invalid email format"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", name, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", name, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", name, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", name, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", name, fe.Param())
	default:
		return name + " is invalid"
	}
}
