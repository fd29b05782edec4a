package httpx

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

// ContextTimeout — ограничивает время обработки запроса дедлайном
// контекста. d <= 0 отключает middleware.
func ContextTimeout(d time.Duration) gin.HandlerFunc {
	if d <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
