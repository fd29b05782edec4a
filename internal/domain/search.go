package domain

// SearchHit — результат поиска. Highlights — подсветка совпадений по
// атрибутам, используется только для отображения.
type SearchHit struct {
	Product    ProductSnapshot   `json:"product"`
	Highlights map[string]string `json:"highlights,omitempty"`
}

// SearchResult — страница результатов вместе с исходным запросом.
// Query нужен получателю, чтобы сопоставить результат с вводом.
type SearchResult struct {
	Query      string      `json:"query"`
	Hits       []SearchHit `json:"hits"`
	TotalCount int         `json:"total_count"`
}

// SearchFilters — фильтры поиска (значения — непрозрачные идентификаторы).
type SearchFilters struct {
	CategoryID string  `json:"category_id,omitempty"`
	SellerID   string  `json:"seller_id,omitempty"`
	PriceMin   float64 `json:"price_min,omitempty"`
	PriceMax   float64 `json:"price_max,omitempty"`
}
