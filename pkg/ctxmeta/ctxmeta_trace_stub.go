//go:build !otel || gopls

package ctxmeta

import "context"

// Без тега `otel` трейсинговых идентификаторов нет — заглушки
// возвращают «не найдено», и логгер их не добавляет.
func TraceIDFromContext(context.Context) (string, bool) { return "", false }
func SpanIDFromContext(context.Context) (string, bool)  { return "", false }
