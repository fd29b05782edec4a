// Пакет clock — системные реализации портов Clock и Scheduler.
// В тестах вместо них используются виртуальные часы из internal/testutil.
package clock

import (
	"context"
	"time"

	"github.com/Gunvolt24/campus_market/internal/ports"
)

var (
	_ ports.Clock     = System{}
	_ ports.Scheduler = System{}
)

// System — часы и планировщик на основе пакета time.
type System struct{}

func (System) Now() time.Time { return time.Now() }

// Sleep — ждёт d или отмены контекста.
func (System) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// AfterFunc — однократный отложенный вызов fn в отдельной горутине.
func (System) AfterFunc(d time.Duration, fn func()) ports.TimerHandle {
	return timerHandle{t: time.AfterFunc(d, fn)}
}

type timerHandle struct{ t *time.Timer }

func (h timerHandle) Stop() bool { return h.t.Stop() }
