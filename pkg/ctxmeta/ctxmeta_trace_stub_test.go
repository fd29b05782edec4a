//go:build !otel

package ctxmeta_test

import (
	"context"
	"testing"

	"github.com/Gunvolt24/campus_market/pkg/ctxmeta"
)

func TestTraceIDs_StubBuild(t *testing.T) {
	// Сборка без otel: идентификаторов нет даже при наличии контекста.
	ctx := ctxmeta.WithRequestID(context.Background(), "req-1")
	if id, ok := ctxmeta.TraceIDFromContext(ctx); ok || id != "" {
		t.Fatalf("TraceIDFromContext => %q,%v; want \"\", false", id, ok)
	}
	if id, ok := ctxmeta.SpanIDFromContext(ctx); ok || id != "" {
		t.Fatalf("SpanIDFromContext => %q,%v; want \"\", false", id, ok)
	}
}
