package ports

import (
	"context"

	"github.com/Gunvolt24/campus_market/internal/domain"
)

// SearchClient — контракт поискового индекса каталога.
type SearchClient interface {
	// Search — полнотекстовый поиск с пагинацией и фильтрами.
	Search(ctx context.Context, query string, page, pageSize int, filters domain.SearchFilters) (domain.SearchResult, error)

	// Categories — список категорий каталога (кэшируется вызывающим).
	Categories(ctx context.Context) ([]domain.Category, error)
}
