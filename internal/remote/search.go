package remote

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Gunvolt24/campus_market/internal/domain"
	"github.com/Gunvolt24/campus_market/internal/ports"
)

var _ ports.SearchClient = (*SearchClient)(nil)

// SearchClient — клиент поискового индекса каталога.
type SearchClient struct {
	c *Client
}

func NewSearchClient(baseURL string, timeout time.Duration) *SearchClient {
	return &SearchClient{c: NewClient(baseURL, timeout)}
}

func (sc *SearchClient) Search(ctx context.Context, query string, page, pageSize int, filters domain.SearchFilters) (domain.SearchResult, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("page", strconv.Itoa(page))
	q.Set("page_size", strconv.Itoa(pageSize))
	if filters.CategoryID != "" {
		q.Set("category_id", filters.CategoryID)
	}
	if filters.SellerID != "" {
		q.Set("seller_id", filters.SellerID)
	}
	if filters.PriceMin > 0 {
		q.Set("price_min", strconv.FormatFloat(filters.PriceMin, 'f', -1, 64))
	}
	if filters.PriceMax > 0 {
		q.Set("price_max", strconv.FormatFloat(filters.PriceMax, 'f', -1, 64))
	}

	var resp struct {
		Hits []struct {
			Product    rawProductSnapshot `json:"product"`
			Highlights map[string]string  `json:"highlights"`
		} `json:"hits"`
		TotalCount int `json:"total_count"`
	}
	if err := sc.c.doJSON(ctx, http.MethodGet, "/search", q, nil, &resp); err != nil {
		return domain.SearchResult{}, err
	}

	result := domain.SearchResult{
		Query:      query,
		Hits:       make([]domain.SearchHit, 0, len(resp.Hits)),
		TotalCount: resp.TotalCount,
	}
	for _, h := range resp.Hits {
		result.Hits = append(result.Hits, domain.SearchHit{
			Product:    *h.Product.toDomain(),
			Highlights: h.Highlights,
		})
	}
	return result, nil
}

func (sc *SearchClient) Categories(ctx context.Context) ([]domain.Category, error) {
	var resp struct {
		Categories []domain.Category `json:"categories"`
	}
	if err := sc.c.doJSON(ctx, http.MethodGet, "/categories", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Categories, nil
}
