package httpx

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// ClampInt — ограничение значения v в диапазоне [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ParsePage — читает page/page_size из query с дефолтами и границами.
// Страницы нумеруются с 1; page_size ограничен [1, maxPageSize].
func ParsePage(c *gin.Context, defaultPageSize, maxPageSize int) (page, pageSize int) {
	page = 1
	if v, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil && v >= 1 {
		page = v
	}
	pageSize = ClampInt(defaultPageSize, 1, maxPageSize)
	if v, err := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize))); err == nil {
		pageSize = ClampInt(v, 1, maxPageSize)
	}
	return
}
