package remote

import (
	"context"
	"net/http"
	"time"

	"github.com/Gunvolt24/campus_market/internal/domain"
	"github.com/Gunvolt24/campus_market/internal/ports"
)

var _ ports.WishlistClient = (*WishlistClient)(nil)

// WishlistClient — клиент сервиса избранного.
// 401 отдаётся как ErrUnauthorized, дубликат — ErrConflict, отсутствие —
// ErrNotFound: слой мутаций нормализует последние два до no-op.
type WishlistClient struct {
	c *Client
}

func NewWishlistClient(baseURL string, timeout time.Duration) *WishlistClient {
	return &WishlistClient{c: NewClient(baseURL, timeout)}
}

// rawWishlistItem — форма записи на проводе (та же «утиная» история
// с идентификатором, что и у корзины).
type rawWishlistItem struct {
	ID        string              `json:"id"`
	ProductID string              `json:"product_id"`
	Product   *rawProductSnapshot `json:"product"`
	CreatedAt time.Time           `json:"created_at"`
}

func (r rawWishlistItem) productRef() string {
	switch {
	case r.ProductID != "":
		return r.ProductID
	case r.Product != nil && r.Product.ID != "":
		return r.Product.ID
	default:
		return r.ID
	}
}

// Get — авторитетная выборка избранного.
func (wc *WishlistClient) Get(ctx context.Context) ([]domain.WishlistEntry, error) {
	var resp struct {
		Items []rawWishlistItem `json:"items"`
	}
	if err := wc.c.doJSON(ctx, http.MethodGet, "/wishlist", nil, nil, &resp); err != nil {
		return nil, err
	}

	entries := make([]domain.WishlistEntry, 0, len(resp.Items))
	for _, raw := range resp.Items {
		entries = append(entries, domain.WishlistEntry{
			ID:         raw.ID,
			ProductRef: raw.productRef(),
			CreatedAt:  raw.CreatedAt,
			Snapshot:   raw.Product.toDomain(),
		})
	}
	return entries, nil
}

func (wc *WishlistClient) Add(ctx context.Context, productRef string) error {
	body := map[string]any{"product_ref": productRef}
	return wc.c.doJSON(ctx, http.MethodPost, "/wishlist", nil, body, nil)
}

func (wc *WishlistClient) Remove(ctx context.Context, productRef string) error {
	return wc.c.doJSON(ctx, http.MethodDelete, "/wishlist/"+productRef, nil, nil, nil)
}
