// Пакет rest — тонкий HTTP-фасад слоя согласования. Обработчики не
// содержат бизнес-логики: разбор запроса, вызов сервиса, маппинг ошибок.
package rest

import (
	"net/http"
	"strings"
	"time"

	"github.com/Gunvolt24/campus_market/internal/lookup"
	"github.com/Gunvolt24/campus_market/internal/ports"
	"github.com/Gunvolt24/campus_market/internal/session"
	"github.com/Gunvolt24/campus_market/internal/usecase"
	"github.com/Gunvolt24/campus_market/pkg/ctxmeta"
	"github.com/Gunvolt24/campus_market/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Handler — связка сервисов для HTTP-обработчиков.
type Handler struct {
	catalog  *usecase.CatalogService
	cart     *usecase.CartService
	resolver *lookup.AccountResolver
	sessions *session.Manager
	log      ports.Logger

	defaultPageSize int
	maxPageSize     int
	currency        string
	handlerTimeout  time.Duration
}

// NewHandler — DI-конструктор.
func NewHandler(
	catalog *usecase.CatalogService,
	cart *usecase.CartService,
	resolver *lookup.AccountResolver,
	sessions *session.Manager,
	log ports.Logger,
	defaultPageSize, maxPageSize int,
	currency string,
	handlerTimeout time.Duration,
) *Handler {
	return &Handler{
		catalog:         catalog,
		cart:            cart,
		resolver:        resolver,
		sessions:        sessions,
		log:             log,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
		currency:        currency,
		handlerTimeout:  handlerTimeout,
	}
}

// NewRouter — маршруты и middleware. tracingEnabled включает otelgin.
func NewRouter(h *Handler, tracingEnabled bool, serviceName string) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Recovery())
	if tracingEnabled {
		r.Use(otelgin.Middleware(serviceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.ContextTimeout(h.handlerTimeout))
	r.Use(sessionTokenMiddleware())
	r.Use(httpx.RequestLogger(h.log))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/search", h.searchProducts)
		api.GET("/suggest", h.suggest)
		api.GET("/categories", h.categories)

		api.GET("/cart", h.getCart)
		api.POST("/cart/items", h.addCartItem)
		api.PATCH("/cart/items/:id", h.updateCartItem)
		api.DELETE("/cart/items/:id", h.removeCartItem)
		api.POST("/cart/clear", h.clearCart)
		api.POST("/cart/fix", h.fixCart)
		api.POST("/checkout", h.checkout)

		api.GET("/wishlist", h.getWishlist)
		api.POST("/wishlist", h.addWishlist)
		api.DELETE("/wishlist/:productRef", h.removeWishlist)
		api.POST("/wishlist/toggle", h.toggleWishlist)

		api.GET("/banks", h.listBanks)
		api.GET("/banks/resolve", h.resolveAccount)

		api.POST("/session/sign-out", h.signOut)
	}

	return r
}

// sessionTokenMiddleware — bearer-токен сессии из Authorization в
// контекст: удалённые клиенты подставляют его в исходящие вызовы.
func sessionTokenMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if token, ok := strings.CutPrefix(auth, "Bearer "); ok && token != "" {
			ctx := ctxmeta.WithSessionToken(c.Request.Context(), token)
			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	}
}

// store — сессионный контейнер текущего запроса. Анонимные запросы
// (без токена) разделяют один контейнер с пустым ключом.
func (h *Handler) store(c *gin.Context) *session.Store {
	token, _ := ctxmeta.SessionTokenFromContext(c.Request.Context())
	return h.sessions.Get(token)
}
