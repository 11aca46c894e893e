package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/ogurasousui/employee-roster/internal/core/persist"
)

func TestStore_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewStore()

	if _, err := s.Get(ctx, "k"); !errors.Is(err, persist.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	payload := []byte("first")
	if err := s.Put(ctx, "k", payload); err != nil {
		t.Fatalf("Put returned error: %v", err)
	}
	payload[0] = 'X'

	got, err := s.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(got) != "first" {
		t.Fatalf("stored value must not alias caller buffer, got %q", got)
	}

	if err := s.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if err := s.Delete(ctx, "k"); err != nil {
		t.Fatalf("second Delete returned error: %v", err)
	}
	if _, err := s.Get(ctx, "k"); !errors.Is(err, persist.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
