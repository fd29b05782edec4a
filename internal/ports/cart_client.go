package ports

import (
	"context"

	"github.com/Gunvolt24/campus_market/internal/domain"
)

// CartClient — контракт удалённого сервиса корзины.
// Get возвращает «сырые» позиции со свежими снапшотами товаров;
// классификация статусов выполняется на клиенте.
type CartClient interface {
	// Get — выборка корзины; каждая позиция несёт снапшот товара
	// (nil — товар удалён продавцом).
	Get(ctx context.Context) ([]domain.CartLine, error)

	// AddItem — добавить товар в корзину.
	AddItem(ctx context.Context, productRef string, quantity int) error

	// UpdateItem — изменить количество в позиции.
	UpdateItem(ctx context.Context, lineID string, quantity int) error

	// RemoveItem — удалить позицию.
	RemoveItem(ctx context.Context, lineID string) error

	// Clear — опустошить корзину.
	Clear(ctx context.Context) error

	// Reconcile — серверное исправление корзины: количество
	// ограничивается остатком, недоступные позиции удаляются.
	// Локально результат не применяется — после вызова обязателен
	// повторный Get.
	Reconcile(ctx context.Context) error
}
