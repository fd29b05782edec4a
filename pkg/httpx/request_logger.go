package httpx

import (
	"time"

	"github.com/Gunvolt24/campus_market/internal/ports"
	"github.com/Gunvolt24/campus_market/pkg/ctxmeta"
	"github.com/gin-gonic/gin"
)

// RequestLogger — middleware для логирования HTTP-запросов.
func RequestLogger(log ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		// не логируем служебные эндпоинты
		switch c.FullPath() {
		case "/metrics", "/healthz":
			return
		}

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		ctx := c.Request.Context()
		rid, _ := ctxmeta.RequestIDFromContext(ctx)
		tr, _ := ctxmeta.TraceIDFromContext(ctx)
		_, authed := ctxmeta.SessionTokenFromContext(ctx)

		log.Infof(
			ctx,
			"request id=%s trace=%s method=%s path=%s status=%d authed=%t ip=%s duration=%s size=%d",
			rid, tr,
			c.Request.Method,
			path,
			c.Writer.Status(),
			authed,
			c.ClientIP(),
			time.Since(start),
			c.Writer.Size(),
		)
	}
}
