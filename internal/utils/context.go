// Package utils provides general-purpose helper utilities used across the
// blueprint server and client: type-safe context keys, JSON response
// writing, HTTP client construction, JWT handling and id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SubjectCtxKey is the key under which authentication policies store the
// identity of the caller (the "sub" claim of a bearer token, or "apikey").
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.SubjectCtxKey, "42")
var SubjectCtxKey = contextKey("subject")

// GetSubjectFromContext retrieves the caller identity from the context.
//
// Returns the subject and an ok flag:
//   - ok == true  — value is found, is a string, and is not empty
//   - ok == false — value is missing, empty or has an unexpected type
func GetSubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(SubjectCtxKey).(string)
	return subject, ok && subject != ""
}

// WithSubject returns a copy of ctx carrying subject.
func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, SubjectCtxKey, subject)
}
