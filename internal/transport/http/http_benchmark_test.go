//go:build !integration

package rest

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/campus_market/internal/cache/memory"
	"github.com/Gunvolt24/campus_market/internal/domain"
	"github.com/Gunvolt24/campus_market/internal/lookup"
	"github.com/Gunvolt24/campus_market/internal/session"
	"github.com/Gunvolt24/campus_market/internal/usecase"
	"github.com/Gunvolt24/campus_market/pkg/clock"
	"github.com/Gunvolt24/campus_market/pkg/money"
)

// --- Бенчмарки ---

// Базовый бенч: GET /api/cart — сравниваем LEAN vs FULL пайплайн
func BenchmarkHTTP_GetCart(b *testing.B) {
	h := makeBenchHandler(benchLines(3))

	lean := makeLeanRouter(h)
	full := makeFullRouter(h)

	b.Run("lean/no-mw", func(b *testing.B) {
		benchServeGET(b, lean, "/api/cart")
	})
	b.Run("full/prod-mw", func(b *testing.B) {
		benchServeGET(b, full, "/api/cart")
	})
}

// Рост корзины: 10/50/100 позиций — классификация+группировка+маршалинг
func BenchmarkHTTP_GetCart_Sizes(b *testing.B) {
	for _, n := range []int{10, 50, 100} {
		b.Run("N="+strconv.Itoa(n), func(b *testing.B) {
			h := makeBenchHandler(benchLines(n))
			benchServeGET(b, makeLeanRouter(h), "/api/cart")
		})
	}
}

// Ошибочный путь (404): «цена» роутера и 404-хендлера
func BenchmarkHTTP_404(b *testing.B) {
	h := makeBenchHandler(nil)
	r := makeLeanRouter(h)

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			req, _ := http.NewRequest(http.MethodGet, "/nope", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			_, _ = io.Copy(io.Discard, w.Body)
			if w.Code != http.StatusNotFound {
				b.Fatalf("status=%d", w.Code)
			}
		}
	})
}

// --- nopLogger — логгер, который не делает ничего. ---

type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

// --- Стабы ---

// cartStub — заранее подготовленная корзина без сети.
type cartStub struct{ lines []domain.CartLine }

func (s cartStub) Get(context.Context) ([]domain.CartLine, error) { return s.lines, nil }
func (s cartStub) AddItem(context.Context, string, int) error     { return nil }
func (s cartStub) UpdateItem(context.Context, string, int) error  { return nil }
func (s cartStub) RemoveItem(context.Context, string) error       { return nil }
func (s cartStub) Clear(context.Context) error                    { return nil }
func (s cartStub) Reconcile(context.Context) error                { return nil }

type searchStub struct{}

func (searchStub) Search(_ context.Context, q string, _, _ int, _ domain.SearchFilters) (domain.SearchResult, error) {
	return domain.SearchResult{Query: q}, nil
}
func (searchStub) Categories(context.Context) ([]domain.Category, error) { return nil, nil }

type bankStub struct{}

func (bankStub) ListBanks(context.Context, string) ([]domain.Bank, error) { return nil, nil }
func (bankStub) ResolveAccount(context.Context, string, string) (domain.AccountResolution, error) {
	return domain.AccountResolution{}, nil
}

type paymentStub struct{}

func (paymentStub) Initiate(context.Context, string, int64, map[string]string) (string, error) {
	return "https://pay.example/authorize/bench", nil
}

// --- функции-помощники ---

func benchLines(n int) []domain.CartLine {
	lines := make([]domain.CartLine, 0, n)
	for i := 0; i < n; i++ {
		ref := "p-" + strconv.Itoa(i)
		lines = append(lines, domain.CartLine{
			ID: "l-" + strconv.Itoa(i), ProductRef: ref, Quantity: 1,
			Snapshot: &domain.ProductSnapshot{
				ID: ref, Name: "bench item", Price: 100, Stock: 10,
				SellerID: "s-" + strconv.Itoa(i%5),
			},
		})
	}
	return lines
}

func makeBenchHandler(lines []domain.CartLine) *Handler {
	log := nopLogger{}
	cl := clock.System{}
	fees := money.SurchargeSchedule{Rate: 0.015, Flat: 100, FlatThreshold: 2500, Cap: 2000}

	catalog := usecase.NewCatalogService(searchStub{}, memory.NewSlot[[]domain.Category]("categories", 5*time.Minute, cl), log)
	cart := usecase.NewCartService(cartStub{lines: lines}, paymentStub{}, log, fees)
	resolver := lookup.NewAccountResolver(bankStub{}, 5*time.Minute, 5*time.Second, cl, log)
	sessions := session.NewManager(func(string) *session.Store {
		return &session.Store{}
	}, time.Hour, cl, log)

	return NewHandler(catalog, cart, resolver, sessions, log, 20, 100, "NGN", 0)
}

func makeLeanRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New() // без Recovery/otel/logger — получаем меньшую аллокацию
	r.GET("/api/cart", h.getCart)
	r.GET("/api/search", h.searchProducts)
	return r
}

func makeFullRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	// prod пайплайн из NewRouter
	return NewRouter(h, false, "bench")
}

func benchServeGET(b *testing.B, r *gin.Engine, path string) {
	b.Helper()
	b.ReportAllocs()
	b.ResetTimer()

	// Параллельный режим ближе к реальности без TCP
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			req, _ := http.NewRequest(http.MethodGet, path, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			// вычитываем тело
			_, _ = io.Copy(io.Discard, w.Body)
			if w.Code != http.StatusOK {
				b.Fatalf("status=%d", w.Code)
			}
		}
	})
}
