package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Gunvolt24/campus_market/pkg/httpx"
	"github.com/gin-gonic/gin"
)

// Утилита для создания *gin.Context с query-строкой
func ctxWithQuery(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/?"+rawQuery, http.NoBody)
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c
}

func TestClampInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		v, min, max int
		want        int
	}{
		{"below_min", 0, 1, 10, 1},
		{"above_max", 11, 1, 10, 10},
		{"inside", 5, 1, 10, 5},
		{"equal_min", 1, 1, 10, 1},
		{"equal_max", 10, 1, 10, 10},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := httpx.ClampInt(tt.v, tt.min, tt.max); got != tt.want {
				t.Fatalf("ClampInt(%d,%d,%d) = %d, want %d", tt.v, tt.min, tt.max, got, tt.want)
			}
		})
	}
}

func TestParsePage_Defaults_NoQuery(t *testing.T) {
	t.Parallel()

	{
		c := ctxWithQuery("")
		page, size := httpx.ParsePage(c, 20, 50)
		if page != 1 || size != 20 {
			t.Fatalf("got page=%d size=%d, want 1/20", page, size)
		}
	}

	{
		// дефолт больше максимума — ограничивается
		c := ctxWithQuery("")
		page, size := httpx.ParsePage(c, 100, 50)
		if page != 1 || size != 50 {
			t.Fatalf("got page=%d size=%d, want 1/50", page, size)
		}
	}
}

func TestParsePage_QueryProvided(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		rawQuery string
		wantPage int
		wantSize int
	}{
		// корректные значения
		{"ok_both", "page=3&page_size=25", 3, 25},
		{"ok_only_page", "page=2", 2, 20},
		{"ok_only_size", "page_size=5", 1, 5},

		// клампинг page_size
		{"size_zero_clamped_to_min", "page_size=0", 1, 1},
		{"size_negative_clamped_to_min", "page_size=-5", 1, 1},
		{"size_above_max_clamped", "page_size=999", 1, 50},

		// нечисловые/невалидные значения
		{"size_non_int_uses_default", "page_size=foo", 1, 20},
		{"page_non_int_uses_default", "page=bar", 1, 20},
		{"page_zero_uses_default", "page=0", 1, 20},
		{"page_negative_uses_default", "page=-2", 1, 20},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := ctxWithQuery(tt.rawQuery)
			page, size := httpx.ParsePage(c, 20, 50)
			if page != tt.wantPage || size != tt.wantSize {
				t.Fatalf("got page=%d size=%d, want %d/%d (query=%q)",
					page, size, tt.wantPage, tt.wantSize, tt.rawQuery)
			}
		})
	}
}
