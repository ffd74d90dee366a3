// Package utils holds small helpers shared by the client and the gateway:
// typed context keys, JSON response writing, the resty client wrapper,
// JWT issuing and parsing, and id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys so they never collide with
// plain string keys set by other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

var (
	// SubjectCtxKey holds the authenticated caller taken from the token subject.
	SubjectCtxKey = contextKey("subject")
	// TraceIDCtxKey holds the per-request trace id.
	TraceIDCtxKey = contextKey("traceID")
)

func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, SubjectCtxKey, subject)
}

// GetSubjectFromContext returns the caller stored by WithSubject. ok is false
// when the value is missing, empty or of another type.
func GetSubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(SubjectCtxKey).(string)
	return subject, ok && subject != ""
}

func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok && traceID != ""
}
