package ports

import (
	"context"

	"github.com/Gunvolt24/campus_market/internal/domain"
)

// WishlistClient — контракт удалённого сервиса избранного.
// Дубликат при добавлении и отсутствие при удалении сервер различает
// отдельными статусами: реализация обязана отдавать remote.ErrConflict
// и remote.ErrNotFound, чтобы вызывающий мог считать их no-op.
type WishlistClient interface {
	// Get — авторитетная выборка избранного (401 → remote.ErrUnauthorized).
	Get(ctx context.Context) ([]domain.WishlistEntry, error)

	// Add — добавить товар; повтор — remote.ErrConflict.
	Add(ctx context.Context, productRef string) error

	// Remove — убрать товар; отсутствующий — remote.ErrNotFound.
	Remove(ctx context.Context, productRef string) error
}
