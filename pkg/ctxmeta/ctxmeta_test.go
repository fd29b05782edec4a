package ctxmeta_test

import (
	"context"
	"testing"

	"github.com/Gunvolt24/campus_market/pkg/ctxmeta"
)

func TestWithRequestID_PutAndGet(t *testing.T) {
	parent := context.Background()

	ctx := ctxmeta.WithRequestID(parent, "req-123")
	got, ok := ctxmeta.RequestIDFromContext(ctx)
	if !ok || got != "req-123" {
		t.Fatalf("want ok=true, id=req-123; got ok=%v id=%q", ok, got)
	}

	// Родитель не должен содержать request_id
	if _, parentOk := ctxmeta.RequestIDFromContext(parent); parentOk {
		t.Fatalf("parent context must not contain request_id")
	}
}

func TestWithRequestID_EmptyID_NoChange(t *testing.T) {
	parent := context.Background()
	ctx := ctxmeta.WithRequestID(parent, "")
	if ctx != parent {
		t.Fatalf("WithRequestID with empty id must return the same ctx")
	}
}

func TestRequestIDFromContext_NoValue(t *testing.T) {
	id, ok := ctxmeta.RequestIDFromContext(context.Background())
	if ok || id != "" {
		t.Fatalf("empty ctx must return empty/false, got id=%q ok=%v", id, ok)
	}
}

func TestRequestIDFromContext_EmptyStoredValue(t *testing.T) {
	// Даже если ключ верный, пустое значение считаем отсутствующим
	ctx := context.WithValue(context.Background(), ctxmeta.KeyRequestID, "")
	id, ok := ctxmeta.RequestIDFromContext(ctx)
	if ok || id != "" {
		t.Fatalf("empty stored value must be treated as absent, got id=%q ok=%v", id, ok)
	}
}

func TestSessionToken_PutAndGet(t *testing.T) {
	parent := context.Background()

	ctx := ctxmeta.WithSessionToken(parent, "tok-42")
	got, ok := ctxmeta.SessionTokenFromContext(ctx)
	if !ok || got != "tok-42" {
		t.Fatalf("want ok=true, token=tok-42; got ok=%v token=%q", ok, got)
	}
	if _, parentOk := ctxmeta.SessionTokenFromContext(parent); parentOk {
		t.Fatalf("parent context must not contain session token")
	}
	if ctx2 := ctxmeta.WithSessionToken(parent, ""); ctx2 != parent {
		t.Fatalf("WithSessionToken with empty token must return the same ctx")
	}
}

func TestFromContext_ForeignKeyDoesNotWork(t *testing.T) {
	type otherKey struct{}
	// Кладём по чужому ключу — не должен доставаться,
	// т.к. пакет использует собственный тип ключа (ctxKey)
	ctx := context.WithValue(context.Background(), otherKey{}, "req-xyz")
	id, ok := ctxmeta.RequestIDFromContext(ctx)
	if ok || id != "" {
		t.Fatalf("foreign key must not be recognized, got id=%q ok=%v", id, ok)
	}
}
