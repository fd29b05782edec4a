package remote

import (
	"context"
	"net/http"
	"time"

	"github.com/Gunvolt24/campus_market/internal/domain"
	"github.com/Gunvolt24/campus_market/internal/ports"
)

var _ ports.CartClient = (*CartClient)(nil)

// CartClient — клиент сервиса корзины.
type CartClient struct {
	c *Client
}

func NewCartClient(baseURL string, timeout time.Duration) *CartClient {
	return &CartClient{c: NewClient(baseURL, timeout)}
}

// rawCartLine — форма позиции на проводе. Бэкенд исторически отдаёт
// идентификатор товара в одном из нескольких необязательных полей;
// нормализация выполняется здесь и только здесь.
type rawCartLine struct {
	ID        string              `json:"id"`
	ProductID string              `json:"product_id"`
	Quantity  int                 `json:"quantity"`
	Product   *rawProductSnapshot `json:"product"`
}

type rawProductSnapshot struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Stock      int     `json:"stock"`
	ImageURL   string  `json:"image_url"`
	SellerID   string  `json:"seller_id"`
	SellerName string  `json:"seller_name"`
	CategoryID string  `json:"category_id"`
}

func (r *rawProductSnapshot) toDomain() *domain.ProductSnapshot {
	if r == nil {
		return nil
	}
	return &domain.ProductSnapshot{
		ID:         r.ID,
		Name:       r.Name,
		Price:      r.Price,
		Stock:      r.Stock,
		ImageURL:   r.ImageURL,
		SellerID:   r.SellerID,
		SellerName: r.SellerName,
		CategoryID: r.CategoryID,
	}
}

// productRef — каноническое выведение идентификатора товара:
// product_id, иначе product.id, иначе id позиции.
func (r rawCartLine) productRef() string {
	switch {
	case r.ProductID != "":
		return r.ProductID
	case r.Product != nil && r.Product.ID != "":
		return r.Product.ID
	default:
		return r.ID
	}
}

// Get — выборка корзины со свежими снапшотами товаров.
func (cc *CartClient) Get(ctx context.Context) ([]domain.CartLine, error) {
	var resp struct {
		Lines []rawCartLine `json:"lines"`
	}
	if err := cc.c.doJSON(ctx, http.MethodGet, "/cart", nil, nil, &resp); err != nil {
		return nil, err
	}

	lines := make([]domain.CartLine, 0, len(resp.Lines))
	for _, raw := range resp.Lines {
		lines = append(lines, domain.CartLine{
			ID:         raw.ID,
			ProductRef: raw.productRef(),
			Quantity:   raw.Quantity,
			Snapshot:   raw.Product.toDomain(),
		})
	}
	return lines, nil
}

func (cc *CartClient) AddItem(ctx context.Context, productRef string, quantity int) error {
	body := map[string]any{"product_ref": productRef, "quantity": quantity}
	return cc.c.doJSON(ctx, http.MethodPost, "/cart/items", nil, body, nil)
}

func (cc *CartClient) UpdateItem(ctx context.Context, lineID string, quantity int) error {
	body := map[string]any{"quantity": quantity}
	return cc.c.doJSON(ctx, http.MethodPatch, "/cart/items/"+lineID, nil, body, nil)
}

func (cc *CartClient) RemoveItem(ctx context.Context, lineID string) error {
	return cc.c.doJSON(ctx, http.MethodDelete, "/cart/items/"+lineID, nil, nil, nil)
}

func (cc *CartClient) Clear(ctx context.Context) error {
	return cc.c.doJSON(ctx, http.MethodPost, "/cart/clear", nil, nil, nil)
}

// Reconcile — серверное исправление корзины. Ответ не применяется
// локально: после вызова обязателен повторный Get.
func (cc *CartClient) Reconcile(ctx context.Context) error {
	return cc.c.doJSON(ctx, http.MethodPost, "/cart/reconcile", nil, nil, nil)
}
