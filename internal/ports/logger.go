package ports

import "context"

// Logger — контракт логгера для сервисов и транспорта. Контекст нужен,
// чтобы обогащать записи request_id и trace_id текущего запроса.
type Logger interface {
	Infof(ctx context.Context, format string, args ...any)
	Warnf(ctx context.Context, format string, args ...any)
	Errorf(ctx context.Context, format string, args ...any)
}
