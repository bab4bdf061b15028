package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"Association_Portal/internal/validate"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("invalid token")
	ErrForbidden          = errors.New("access denied")
)

// NotFoundError reports that no row exists for the requested resource.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// ValidationError is malformed or missing input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// RuleError is well-formed input rejected by a business rule, such as
// joining a full event.
type RuleError struct {
	Message string
}

func (e *RuleError) Error() string {
	return e.Message
}

func notFound(resource string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &NotFoundError{Resource: resource}
	}
	return fmt.Errorf("find %s: %w", resource, err)
}

func invalid(msg string) error {
	return &ValidationError{Message: msg}
}

func checkField(kind validate.Kind, field, name string, value any) error {
	return asValidation(validate.Field(kind, field, name, value))
}

// check runs the declarative validation rules for m.
func check(m any) error {
	return asValidation(validate.Struct(m))
}

func asValidation(err error) error {
	if err == nil {
		return nil
	}
	var verr *validate.Error
	if errors.As(err, &verr) {
		return &ValidationError{Message: verr.Message}
	}
	return err
}
