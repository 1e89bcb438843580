//go:build !otel || gopls

package ctxmeta

import (
	"context"
	"testing"
)

func TestTraceStubs(t *testing.T) {
	t.Parallel()

	if _, ok := TraceIDFromContext(context.Background()); ok {
		t.Fatal("stub TraceIDFromContext must report miss")
	}
	if _, ok := SpanIDFromContext(context.Background()); ok {
		t.Fatal("stub SpanIDFromContext must report miss")
	}
}
