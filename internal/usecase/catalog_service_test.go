package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Gunvolt24/campus_market/internal/cache/memory"
	"github.com/Gunvolt24/campus_market/internal/domain"
	"github.com/Gunvolt24/campus_market/internal/ports/mocks"
	"github.com/Gunvolt24/campus_market/internal/testutil"
	"github.com/Gunvolt24/campus_market/internal/usecase"
	"github.com/golang/mock/gomock"
)

func newCatalogFixture(t *testing.T) (*mocks.MockSearchClient, *usecase.CatalogService, *testutil.FakeClock) {
	t.Helper()
	ctrl := gomock.NewController(t)
	client := mocks.NewMockSearchClient(ctrl)
	clock := testutil.NewFakeClock(time.Unix(1_700_000_000, 0))
	slot := memory.NewSlot[[]domain.Category]("categories", 5*time.Minute, clock)
	svc := usecase.NewCatalogService(client, slot, noopLogger{})
	return client, svc, clock
}

func TestCategories_CachedWithinTTL(t *testing.T) {
	client, svc, _ := newCatalogFixture(t)

	cats := []domain.Category{{ID: "c1", Name: "Books"}}
	client.EXPECT().Categories(gomock.Any()).Return(cats, nil).Times(1)

	for i := 0; i < 3; i++ {
		got, err := svc.Categories(context.Background(), false)
		if err != nil || len(got) != 1 || got[0].ID != "c1" {
			t.Fatalf("categories #%d: err=%v cats=%+v", i, err, got)
		}
	}
}

func TestCategories_ForceBypassesCache(t *testing.T) {
	client, svc, _ := newCatalogFixture(t)

	client.EXPECT().Categories(gomock.Any()).Return([]domain.Category{{ID: "c1"}}, nil).Times(2)

	if _, err := svc.Categories(context.Background(), false); err != nil {
		t.Fatalf("first fetch: %v", err)
	}
	if _, err := svc.Categories(context.Background(), true); err != nil {
		t.Fatalf("forced fetch: %v", err)
	}
}

func TestCategories_TTLExpiry(t *testing.T) {
	client, svc, clock := newCatalogFixture(t)

	client.EXPECT().Categories(gomock.Any()).Return([]domain.Category{{ID: "c1"}}, nil).Times(2)

	if _, err := svc.Categories(context.Background(), false); err != nil {
		t.Fatalf("first fetch: %v", err)
	}
	clock.Advance(5 * time.Minute)
	if _, err := svc.Categories(context.Background(), false); err != nil {
		t.Fatalf("expired fetch: %v", err)
	}
}

func TestCatalogSearch_DelegatesAndWraps(t *testing.T) {
	client, svc, _ := newCatalogFixture(t)

	filters := domain.SearchFilters{CategoryID: "c1"}
	client.EXPECT().
		Search(gomock.Any(), "casio", 2, 20, filters).
		Return(domain.SearchResult{Query: "casio", TotalCount: 7}, nil)

	res, err := svc.Search(context.Background(), "casio", 2, 20, filters)
	if err != nil || res.TotalCount != 7 {
		t.Fatalf("unexpected result: %+v err=%v", res, err)
	}

	netErr := errors.New("index down")
	client.EXPECT().
		Search(gomock.Any(), "casio", 1, 20, domain.SearchFilters{}).
		Return(domain.SearchResult{}, netErr)

	if _, err := svc.Search(context.Background(), "casio", 1, 20, domain.SearchFilters{}); !errors.Is(err, netErr) {
		t.Fatalf("want wrapped search error, got %v", err)
	}
}
