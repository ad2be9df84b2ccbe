// Package apperr defines the failure kinds shared by the stores, the services
// and the HTTP layer. Kinds are go-errors categories; HTTP status codes are
// assigned by the router only.
package apperr

import (
	goerrors "github.com/goliatone/go-errors"
)

const (
	TextInvalid      = "INVALID"
	TextConflict     = "CONFLICT"
	TextUnauthorized = "UNAUTHORIZED"
	TextNotFound     = "NOT_FOUND"
	TextStorage      = "STORAGE_ERROR"
)

// Invalid reports input that breaks a business rule.
func Invalid(message string) error {
	return goerrors.New(message, goerrors.CategoryBadInput).
		WithTextCode(TextInvalid)
}

// Conflict reports a uniqueness violation detected by the store.
func Conflict(source error, message string) error {
	return wrap(source, goerrors.CategoryConflict, TextConflict, message)
}

// Unauthorized reports a credential mismatch. It never says which field was wrong.
func Unauthorized(message string) error {
	return goerrors.New(message, goerrors.CategoryAuth).
		WithTextCode(TextUnauthorized)
}

// NotFound reports a referenced id that does not exist.
func NotFound(message string) error {
	return goerrors.New(message, goerrors.CategoryNotFound).
		WithTextCode(TextNotFound)
}

// Storage reports a store failure unrelated to business rules.
func Storage(source error, message string) error {
	return wrap(source, goerrors.CategoryInternal, TextStorage, message)
}

func wrap(source error, category goerrors.Category, textCode, message string) error {
	if source == nil {
		return goerrors.New(message, category).WithTextCode(textCode)
	}
	return goerrors.Wrap(source, category, message).WithTextCode(textCode)
}

func IsInvalid(err error) bool      { return goerrors.IsCategory(err, goerrors.CategoryBadInput) }
func IsConflict(err error) bool     { return goerrors.IsCategory(err, goerrors.CategoryConflict) }
func IsUnauthorized(err error) bool { return goerrors.IsCategory(err, goerrors.CategoryAuth) }
func IsNotFound(err error) bool     { return goerrors.IsCategory(err, goerrors.CategoryNotFound) }
func IsStorage(err error) bool      { return goerrors.IsCategory(err, goerrors.CategoryInternal) }

// TextCode returns the text code carried by err, or "" for foreign errors.
func TextCode(err error) string {
	var e *goerrors.Error
	if goerrors.As(err, &e) {
		return e.TextCode
	}
	return ""
}
