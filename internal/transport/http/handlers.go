package rest

import (
	"context"
	"net/http"
	"strconv"

	"github.com/Gunvolt24/campus_market/internal/domain"
	"github.com/Gunvolt24/campus_market/pkg/ctxmeta"
	"github.com/Gunvolt24/campus_market/pkg/httpx"
	"github.com/gin-gonic/gin"
)

func parseFilters(c *gin.Context) domain.SearchFilters {
	f := domain.SearchFilters{
		CategoryID: c.Query("category_id"),
		SellerID:   c.Query("seller_id"),
	}
	if v, err := strconv.ParseFloat(c.Query("price_min"), 64); err == nil && v > 0 {
		f.PriceMin = v
	}
	if v, err := strconv.ParseFloat(c.Query("price_max"), 64); err == nil && v > 0 {
		f.PriceMax = v
	}
	return f
}

func (h *Handler) searchProducts(c *gin.Context) {
	page, pageSize := httpx.ParsePage(c, h.defaultPageSize, h.maxPageSize)

	res, err := h.catalog.Search(c.Request.Context(), c.Query("q"), page, pageSize, parseFilters(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// suggest — подсказки с серверным дебаунсом. Каждый запрос сбрасывает
// таймер сессии и немедленно возвращает последний завершённый результат;
// клиент опрашивает по мере набора. stale=true — результат относится
// к более раннему вводу.
func (h *Handler) suggest(c *gin.Context) {
	query := c.Query("q")
	_, pageSize := httpx.ParsePage(c, h.defaultPageSize, h.maxPageSize)
	store := h.store(c)

	// контекст запроса умирает вместе с ответом, а отложенный поиск
	// срабатывает позже — отвязываем отмену
	ctx := context.WithoutCancel(c.Request.Context())
	store.Search.Submit(ctx, query, 1, pageSize, parseFilters(c))

	last, ok := store.Suggest.Latest()
	if !ok {
		c.JSON(http.StatusOK, gin.H{"pending": true, "query": query})
		return
	}
	if last.Err != nil {
		h.writeError(c, last.Err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"result": last.Result,
		"stale":  last.Result.Query != query,
	})
}

func (h *Handler) categories(c *gin.Context) {
	force := c.Query("force") == "true"

	cats, err := h.catalog.Categories(c.Request.Context(), force)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": cats})
}

func (h *Handler) getCart(c *gin.Context) {
	cart, err := h.cart.Fetch(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (h *Handler) addCartItem(c *gin.Context) {
	var req struct {
		ProductRef string `json:"product_ref"`
		Quantity   int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json body"})
		return
	}
	if err := h.cart.AddItem(c.Request.Context(), req.ProductRef, req.Quantity); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) updateCartItem(c *gin.Context) {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json body"})
		return
	}
	if err := h.cart.UpdateQuantity(c.Request.Context(), c.Param("id"), req.Quantity); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) removeCartItem(c *gin.Context) {
	if err := h.cart.RemoveItem(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) clearCart(c *gin.Context) {
	if err := h.cart.Clear(c.Request.Context()); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) fixCart(c *gin.Context) {
	cart, err := h.cart.Fix(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (h *Handler) checkout(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json body"})
		return
	}

	authURL, err := h.cart.Checkout(c.Request.Context(), req.Email)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"authorization_url": authURL})
}

func (h *Handler) getWishlist(c *gin.Context) {
	force := c.Query("force") == "true"

	entries, err := h.store(c).Wishlist.Load(c.Request.Context(), force)
	if err != nil {
		h.writeError(c, err)
		return
	}
	if entries == nil {
		entries = []domain.WishlistEntry{}
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

func (h *Handler) addWishlist(c *gin.Context) {
	var req struct {
		ProductRef string `json:"product_ref"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json body"})
		return
	}
	if err := h.store(c).Wishlist.Add(c.Request.Context(), req.ProductRef); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) removeWishlist(c *gin.Context) {
	if err := h.store(c).Wishlist.Remove(c.Request.Context(), c.Param("productRef")); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) toggleWishlist(c *gin.Context) {
	var req struct {
		ProductRef string `json:"product_ref"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json body"})
		return
	}

	in, err := h.store(c).Wishlist.Toggle(c.Request.Context(), req.ProductRef)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"in_wishlist": in})
}

func (h *Handler) listBanks(c *gin.Context) {
	currency := c.DefaultQuery("currency", h.currency)

	banks, err := h.resolver.ListBanks(c.Request.Context(), currency)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"banks": banks})
}

func (h *Handler) resolveAccount(c *gin.Context) {
	res, err := h.resolver.Resolve(c.Request.Context(), c.Query("account_number"), c.Query("bank_code"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) signOut(c *gin.Context) {
	token, ok := ctxmeta.SessionTokenFromContext(c.Request.Context())
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}
	h.sessions.Evict(token)
	c.Status(http.StatusNoContent)
}
