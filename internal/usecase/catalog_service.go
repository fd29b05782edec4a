package usecase

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/campus_market/internal/cache/memory"
	"github.com/Gunvolt24/campus_market/internal/domain"
	"github.com/Gunvolt24/campus_market/internal/ports"
)

// CatalogService — чтение каталога: синхронный поиск и справочник
// категорий через TTL-слот. Категории меняются редко, их кэш общий
// для всех сессий.
type CatalogService struct {
	client     ports.SearchClient
	categories *memory.Slot[[]domain.Category]
	log        ports.Logger
}

// NewCatalogService — DI-конструктор.
func NewCatalogService(
	client ports.SearchClient,
	categories *memory.Slot[[]domain.Category],
	log ports.Logger,
) *CatalogService {
	return &CatalogService{
		client:     client,
		categories: categories,
		log:        log,
	}
}

// Search — поиск по каталогу с пагинацией и фильтрами.
func (s *CatalogService) Search(ctx context.Context, query string, page, pageSize int, filters domain.SearchFilters) (domain.SearchResult, error) {
	res, err := s.client.Search(ctx, query, page, pageSize, filters)
	if err != nil {
		s.log.Errorf(ctx, "catalog search failed query=%q err=%v", query, err)
		return domain.SearchResult{}, fmt.Errorf("search catalog: %w", err)
	}
	return res, nil
}

// Categories — справочник категорий: слот, при промахе — сеть.
func (s *CatalogService) Categories(ctx context.Context, force bool) ([]domain.Category, error) {
	if cats, ok := s.categories.Get(force); ok {
		return cats, nil
	}

	cats, err := s.client.Categories(ctx)
	if err != nil {
		s.log.Errorf(ctx, "categories fetch failed: %v", err)
		return nil, fmt.Errorf("fetch categories: %w", err)
	}
	s.categories.Set(cats)
	return cats, nil
}
