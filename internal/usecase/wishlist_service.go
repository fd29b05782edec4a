package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Gunvolt24/campus_market/internal/cache/memory"
	"github.com/Gunvolt24/campus_market/internal/domain"
	"github.com/Gunvolt24/campus_market/internal/ports"
	"github.com/Gunvolt24/campus_market/internal/remote"
	"github.com/Gunvolt24/campus_market/pkg/metrics"
	"github.com/Gunvolt24/campus_market/pkg/validate"
)

// WishlistService — оптимистичные мутации избранного.
// Локальное состояние меняется синхронно ДО сетевого вызова, чтобы UI
// отражал намерение немедленно. При ошибке сети откат не выполняется:
// расхождение исправит следующая авторитетная выборка (Load). Это
// осознанный выбор в пользу простоты — см. DESIGN.md.
//
// Состояние принадлежит одной сессии покупателя; снаружи WishlistService
// его никто не мутирует.
type WishlistService struct {
	client ports.WishlistClient
	cache  *memory.Slot[[]domain.WishlistEntry]
	clock  ports.Clock
	log    ports.Logger

	mu      sync.Mutex
	entries []domain.WishlistEntry
	loaded  bool
}

// NewWishlistService — DI-конструктор.
func NewWishlistService(
	client ports.WishlistClient,
	cache *memory.Slot[[]domain.WishlistEntry],
	clock ports.Clock,
	log ports.Logger,
) *WishlistService {
	return &WishlistService{
		client: client,
		cache:  cache,
		clock:  clock,
		log:    log,
	}
}

// Load — выборка избранного: сначала кэш (если не force), при промахе —
// сеть с записью в кэш. Локальное состояние заменяется целиком:
// сервер всегда прав. 401 — не ошибка: у анонимного пользователя
// избранное пустое, баннер ошибки не показывается.
func (s *WishlistService) Load(ctx context.Context, force bool) ([]domain.WishlistEntry, error) {
	if entries, ok := s.cache.Get(force); ok {
		s.replace(entries)
		return entries, nil
	}

	entries, err := s.client.Get(ctx)
	if err != nil {
		if errors.Is(err, remote.ErrUnauthorized) {
			s.log.Infof(ctx, "wishlist load: anonymous session, degrading to empty")
			s.replace(nil)
			return nil, nil
		}
		s.log.Errorf(ctx, "wishlist load failed: %v", err)
		return nil, fmt.Errorf("load wishlist: %w", err)
	}

	s.replace(entries)
	s.cache.Set(entries)
	return entries, nil
}

// Add — добавить товар. Дубликат — идемпотентный no-op (и локально,
// и по ответу сервера «уже в избранном»). Временная запись добавляется
// до сетевого вызова и живёт до следующей авторитетной выборки.
func (s *WishlistService) Add(ctx context.Context, productRef string) error {
	if err := validate.ProductRef(productRef); err != nil {
		return err
	}

	s.mu.Lock()
	if s.containsLocked(productRef) {
		s.mu.Unlock()
		metrics.MutationOps.WithLabelValues("wishlist_add", "noop").Inc()
		return nil
	}
	s.entries = append(s.entries, domain.NewProvisionalEntry(productRef, s.clock.Now()))
	s.mu.Unlock()

	// следующий читатель обязан сходить в сеть
	s.cache.Invalidate()

	if err := s.client.Add(ctx, productRef); err != nil {
		if errors.Is(err, remote.ErrConflict) {
			// сервер уже знает этот товар — состояние сошлось
			metrics.MutationOps.WithLabelValues("wishlist_add", "noop").Inc()
			return nil
		}
		metrics.MutationOps.WithLabelValues("wishlist_add", "error").Inc()
		s.log.Warnf(ctx, "wishlist add failed product=%s err=%v (local state kept)", productRef, err)
		return fmt.Errorf("add to wishlist: %w", err)
	}

	metrics.MutationOps.WithLabelValues("wishlist_add", "ok").Inc()
	return nil
}

// Remove — убрать товар: локальное удаление синхронно, до сети.
// Удаление отсутствующего — no-op, сервер подтверждает это ErrNotFound.
func (s *WishlistService) Remove(ctx context.Context, productRef string) error {
	if err := validate.ProductRef(productRef); err != nil {
		return err
	}

	s.mu.Lock()
	kept := s.entries[:0]
	removed := false
	for _, e := range s.entries {
		if e.ProductRef == productRef {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	s.entries = kept
	s.mu.Unlock()

	s.cache.Invalidate()

	if err := s.client.Remove(ctx, productRef); err != nil {
		if errors.Is(err, remote.ErrNotFound) {
			metrics.MutationOps.WithLabelValues("wishlist_remove", "noop").Inc()
			return nil
		}
		metrics.MutationOps.WithLabelValues("wishlist_remove", "error").Inc()
		s.log.Warnf(ctx, "wishlist remove failed product=%s err=%v (local state kept)", productRef, err)
		return fmt.Errorf("remove from wishlist: %w", err)
	}

	if removed {
		metrics.MutationOps.WithLabelValues("wishlist_remove", "ok").Inc()
	} else {
		metrics.MutationOps.WithLabelValues("wishlist_remove", "noop").Inc()
	}
	return nil
}

// Toggle — составная операция: по текущему локальному членству
// диспетчеризует в Add или Remove. Возвращает true, если товар
// в результате оказался в избранном.
func (s *WishlistService) Toggle(ctx context.Context, productRef string) (bool, error) {
	if s.Contains(productRef) {
		return false, s.Remove(ctx, productRef)
	}
	return true, s.Add(ctx, productRef)
}

// Contains — локальное членство (без похода в сеть).
func (s *WishlistService) Contains(productRef string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.containsLocked(productRef)
}

// Entries — копия текущего локального состояния.
func (s *WishlistService) Entries() []domain.WishlistEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.WishlistEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *WishlistService) containsLocked(productRef string) bool {
	for _, e := range s.entries {
		if e.ProductRef == productRef {
			return true
		}
	}
	return false
}

func (s *WishlistService) replace(entries []domain.WishlistEntry) {
	s.mu.Lock()
	s.entries = entries
	s.loaded = true
	s.mu.Unlock()
}
