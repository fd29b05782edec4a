package memory

import (
	"sync"
	"time"

	"github.com/Gunvolt24/campus_market/internal/ports"
	"github.com/Gunvolt24/campus_market/pkg/metrics"
)

// Slot — односекционный TTL-кэш ответа для одного ресурса (избранное,
// категории, справочник банков). Не LRU: у каждого кэшируемого ресурса
// свой выделенный слот. Наличие значения в слоте никогда не меняет
// удалённое состояние.
//
// Инвариант: чтение — попадание тогда и только тогда, когда значение
// записано и now-fetchedAt < TTL. Любая мутация ресурса обязана
// инвалидировать слот.
type Slot[T any] struct {
	name  string
	ttl   time.Duration
	clock ports.Clock

	mu        sync.Mutex
	payload   T
	fetchedAt time.Time
	filled    bool
}

// NewSlot — слот с именем (метка метрик) и TTL. ttl <= 0 означает
// «всегда промах» — слот фактически выключен.
func NewSlot[T any](name string, ttl time.Duration, clock ports.Clock) *Slot[T] {
	return &Slot[T]{name: name, ttl: ttl, clock: clock}
}

// Get — чтение слота. force=true всегда считается промахом: вызывающий
// знает, что авторитетное состояние могло измениться извне (например,
// после входа в аккаунт). Протухшее значение очищается при чтении.
func (s *Slot[T]) Get(force bool) (T, bool) {
	var zero T
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if force {
		metrics.CacheOps.WithLabelValues(s.name, "forced").Inc()
		return zero, false
	}
	if !s.filled {
		metrics.CacheOps.WithLabelValues(s.name, "miss").Inc()
		return zero, false
	}
	if s.ttl <= 0 || now.Sub(s.fetchedAt) >= s.ttl {
		s.payload = zero
		s.filled = false
		metrics.CacheOps.WithLabelValues(s.name, "expired").Inc()
		return zero, false
	}

	metrics.CacheOps.WithLabelValues(s.name, "hit").Inc()
	return s.payload, true
}

// Set — записать свежий ответ. Последняя запись выигрывает.
func (s *Slot[T]) Set(v T) {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.payload = v
	s.fetchedAt = now
	s.filled = true
}

// Invalidate — принудительно опустошить слот. Вызывается мутирующими
// операциями до или сразу после сетевого вызова.
func (s *Slot[T]) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	s.payload = zero
	s.filled = false
	metrics.CacheOps.WithLabelValues(s.name, "invalidated").Inc()
}
