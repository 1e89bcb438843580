package ctxmeta

import (
	"context"
	"testing"
)

func TestWithRequestID_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := WithRequestID(context.Background(), "rid-1")
	if got, ok := RequestIDFromContext(ctx); !ok || got != "rid-1" {
		t.Fatalf("want rid-1, got %q ok=%v", got, ok)
	}
}

func TestWithRequestID_EmptyIsNoop(t *testing.T) {
	t.Parallel()

	ctx := WithRequestID(context.Background(), "")
	if _, ok := RequestIDFromContext(ctx); ok {
		t.Fatal("empty request id must not be stored")
	}
}

func TestRequestIDFromContext_Missing(t *testing.T) {
	t.Parallel()

	if _, ok := RequestIDFromContext(context.Background()); ok {
		t.Fatal("expected miss on empty context")
	}
}
