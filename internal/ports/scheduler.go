package ports

import (
	"context"
	"time"
)

// Clock — источник времени. Вынесен в порт, чтобы TTL кэша и cooldown
// тестировались виртуальными часами, без реальных ожиданий.
type Clock interface {
	Now() time.Time

	// Sleep — ждать d или отмены контекста (что наступит раньше).
	Sleep(ctx context.Context, d time.Duration) error
}

// TimerHandle — отменяемый отложенный вызов.
type TimerHandle interface {
	// Stop — отменить вызов; false, если он уже сработал.
	Stop() bool
}

// Scheduler — планировщик отложенных вызовов для дебаунса.
// Инвариант вызывающего: не более одного активного таймера на координатор.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) TimerHandle
}
