// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
	if SubjectCtxKey.String() != "subject" {
		t.Errorf("expected 'subject', got '%s'", SubjectCtxKey.String())
	}
}

func TestGetSubjectFromContext_Success(t *testing.T) {
	ctx := WithSubject(context.Background(), "67vHA8qZGCJKw1UNGUJZME4MwEWDRGWzp7MGvsut43A8")

	subject, ok := GetSubjectFromContext(ctx)
	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if subject != "67vHA8qZGCJKw1UNGUJZME4MwEWDRGWzp7MGvsut43A8" {
		t.Errorf("unexpected subject %q", subject)
	}
}

func TestGetSubjectFromContext_Missing(t *testing.T) {
	subject, ok := GetSubjectFromContext(context.Background())
	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if subject != "" {
		t.Errorf("expected empty subject, got %q", subject)
	}
}

func TestGetSubjectFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), SubjectCtxKey, int64(42))

	if _, ok := GetSubjectFromContext(ctx); ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}

func TestGetSubjectFromContext_Empty(t *testing.T) {
	if _, ok := GetSubjectFromContext(WithSubject(context.Background(), "")); ok {
		t.Fatal("expected ok=false for empty subject, got true")
	}
}

func TestGetTraceIDFromContext(t *testing.T) {
	ctx := WithTraceID(context.Background(), "trace-1")

	traceID, ok := GetTraceIDFromContext(ctx)
	if !ok || traceID != "trace-1" {
		t.Fatalf("expected trace-1, got %q (ok=%v)", traceID, ok)
	}

	if _, ok = GetTraceIDFromContext(WithSubject(context.Background(), "trace-1")); ok {
		t.Fatal("subject key must not be read as a trace id")
	}
}
