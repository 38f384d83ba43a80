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
}

func TestGetOwnerIDFromContext_Success(t *testing.T) {
	ctx := ContextWithOwnerID(context.Background(), 42)

	ownerID, ok := GetOwnerIDFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if ownerID != 42 {
		t.Errorf("expected 42, got %d", ownerID)
	}
}

func TestGetOwnerIDFromContext_Missing(t *testing.T) {
	if _, ok := GetOwnerIDFromContext(context.Background()); ok {
		t.Error("expected ok=false for empty context")
	}
}

func TestGetOwnerIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), OwnerIDCtxKey, "42")

	if _, ok := GetOwnerIDFromContext(ctx); ok {
		t.Error("expected ok=false for string value")
	}
}
