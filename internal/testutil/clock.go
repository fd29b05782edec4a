// Пакет testutil — виртуальное время для модульных тестов: тесты
// дебаунса, cooldown и TTL кэша не должны ждать настоящих таймеров.
package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/campus_market/internal/ports"
)

var (
	_ ports.Clock     = (*FakeClock)(nil)
	_ ports.Scheduler = (*ManualScheduler)(nil)
)

// FakeClock — часы с ручным переводом стрелок. Sleep возвращается
// немедленно, фиксируя запрошенную длительность — тест проверяет,
// сколько координатор собирался ждать.
type FakeClock struct {
	mu     sync.Mutex
	now    time.Time
	sleeps []time.Duration
}

func NewFakeClock(start time.Time) *FakeClock {
	return &FakeClock{now: start}
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance — перевести часы вперёд.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func (c *FakeClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d) // сон «проходит» мгновенно
	c.mu.Unlock()
	return nil
}

// Sleeps — все запрошенные длительности сна, по порядку.
func (c *FakeClock) Sleeps() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]time.Duration, len(c.sleeps))
	copy(out, c.sleeps)
	return out
}

// ManualScheduler — планировщик, срабатывающий только по команде теста.
// Хранит не более одного отложенного вызова — как и координаторы,
// которые им пользуются.
type ManualScheduler struct {
	mu      sync.Mutex
	pending func()
	delay   time.Duration
	stopped bool
}

func NewManualScheduler() *ManualScheduler { return &ManualScheduler{} }

func (s *ManualScheduler) AfterFunc(d time.Duration, fn func()) ports.TimerHandle {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = fn
	s.delay = d
	s.stopped = false
	return manualHandle{s: s}
}

// Fire — выполнить отложенный вызов, как будто таймер сработал.
// false, если вызова нет или он был отменён.
func (s *ManualScheduler) Fire() bool {
	s.mu.Lock()
	fn := s.pending
	stopped := s.stopped
	s.pending = nil
	s.mu.Unlock()

	if fn == nil || stopped {
		return false
	}
	fn()
	return true
}

// PendingDelay — длительность последнего запланированного вызова.
func (s *ManualScheduler) PendingDelay() (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.delay, s.pending != nil && !s.stopped
}

type manualHandle struct{ s *ManualScheduler }

func (h manualHandle) Stop() bool {
	h.s.mu.Lock()
	defer h.s.mu.Unlock()
	if h.s.pending == nil || h.s.stopped {
		return false
	}
	h.s.stopped = true
	h.s.pending = nil
	return true
}
