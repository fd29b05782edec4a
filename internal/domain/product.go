package domain

// ProductSnapshot — проекция товара, которую сервер корзины прикладывает
// к каждой позиции при выборке. Между выборками данные могут устаревать:
// единственный авторитетный источник остатков и цен — следующий фетч.
type ProductSnapshot struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Stock      int     `json:"stock"`
	ImageURL   string  `json:"image_url,omitempty"`
	SellerID   string  `json:"seller_id"`
	SellerName string  `json:"seller_name,omitempty"`
	CategoryID string  `json:"category_id,omitempty"`
}

// Category — категория каталога (используется поиском для фильтров).
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
