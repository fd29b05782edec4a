// Пакет session — жизненный цикл состояния покупательской сессии.
// Кэш и оптимистичное состояние избранного принадлежат одной сессии
// и никогда не разделяются между токенами.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/campus_market/internal/lookup"
	"github.com/Gunvolt24/campus_market/internal/ports"
	"github.com/Gunvolt24/campus_market/internal/usecase"
	"github.com/Gunvolt24/campus_market/pkg/metrics"
)

// Store — контейнер состояния одной сессии. Создаётся лениво при первом
// обращении с токеном и умирает при выходе или по простою.
type Store struct {
	Wishlist *usecase.WishlistService
	Search   *lookup.SearchDebouncer
	Suggest  *SuggestBox
}

// Close — остановить отложенные таймеры сессии. Вызывается менеджером
// при сносе контейнера.
func (s *Store) Close() {
	if s.Search != nil {
		s.Search.Close()
	}
}

// Factory — конструктор сессионного состояния. Вызывается под мьютексом
// менеджера, поэтому обязан быть быстрым и не ходить в сеть.
type Factory func(token string) *Store

type entry struct {
	store    *Store
	lastSeen time.Time
}

// Manager — реестр сессионных контейнеров по токену. Простаивающие
// сессии вычищаются по idle-TTL, чтобы память не росла с каждым
// анонимным посетителем.
type Manager struct {
	factory Factory
	clock   ports.Clock
	log     ports.Logger
	idleTTL time.Duration

	mu      sync.Mutex
	entries map[string]*entry
}

// NewManager — DI-конструктор. idleTTL <= 0 отключает вычистку.
func NewManager(factory Factory, idleTTL time.Duration, clock ports.Clock, log ports.Logger) *Manager {
	return &Manager{
		factory: factory,
		clock:   clock,
		log:     log,
		idleTTL: idleTTL,
		entries: make(map[string]*entry),
	}
}

// Get — контейнер сессии по токену; отсутствующий создаётся. Каждое
// обращение продлевает жизнь сессии.
func (m *Manager) Get(token string) *Store {
	now := m.clock.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[token]
	if !ok {
		e = &entry{store: m.factory(token)}
		m.entries[token] = e
		metrics.SessionsActive.Set(float64(len(m.entries)))
	}
	e.lastSeen = now
	return e.store
}

// Evict — снести состояние сессии (выход из аккаунта). Следующее
// обращение с этим токеном создаст контейнер заново.
func (m *Manager) Evict(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[token]
	if !ok {
		return
	}
	e.store.Close()
	delete(m.entries, token)
	metrics.SessionsActive.Set(float64(len(m.entries)))
}

// Len — количество живых сессий.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// Sweep — вычистить сессии, простаивающие дольше idle-TTL.
// Возвращает число снесённых.
func (m *Manager) Sweep(ctx context.Context) int {
	if m.idleTTL <= 0 {
		return 0
	}
	now := m.clock.Now()

	m.mu.Lock()
	removed := 0
	for token, e := range m.entries {
		if now.Sub(e.lastSeen) >= m.idleTTL {
			e.store.Close()
			delete(m.entries, token)
			removed++
		}
	}
	if removed > 0 {
		metrics.SessionsActive.Set(float64(len(m.entries)))
	}
	m.mu.Unlock()

	if removed > 0 {
		m.log.Infof(ctx, "session sweep: evicted %d idle sessions", removed)
	}
	return removed
}

// RunSweeper — фоновая вычистка с заданным интервалом до отмены
// контекста. Запускается из bootstrap отдельной горутиной.
func (m *Manager) RunSweeper(ctx context.Context, interval time.Duration) {
	if m.idleTTL <= 0 || interval <= 0 {
		return
	}
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			m.Sweep(ctx)
		}
	}
}
