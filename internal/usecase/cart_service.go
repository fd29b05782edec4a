package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/Gunvolt24/campus_market/internal/domain"
	"github.com/Gunvolt24/campus_market/internal/ports"
	"github.com/Gunvolt24/campus_market/pkg/metrics"
	"github.com/Gunvolt24/campus_market/pkg/money"
	"github.com/Gunvolt24/campus_market/pkg/validate"
)

// Блокирующие ошибки оформления заказа. Показываются пользователю как
// неустранимые до исправления корзины; в платёжный шлюз при них не
// уходит ни одного вызова — списание за недоступный товар необратимо.
var (
	ErrCartNeedsFixing = errors.New("cart has unavailable or short-stocked items: fix the cart before checkout")
	ErrEmptyCart       = errors.New("cart is empty")
)

// CartService — согласование корзины с авторитетным состоянием склада
// и оформление заказа. Корзина не кэшируется: каждая выборка приносит
// свежие снапшоты товаров, по которым классифицируются позиции.
type CartService struct {
	client  ports.CartClient
	payment ports.PaymentClient
	log     ports.Logger
	fees    money.SurchargeSchedule
}

// NewCartService — DI-конструктор.
func NewCartService(
	client ports.CartClient,
	payment ports.PaymentClient,
	log ports.Logger,
	fees money.SurchargeSchedule,
) *CartService {
	return &CartService{
		client:  client,
		payment: payment,
		log:     log,
		fees:    fees,
	}
}

// Fetch — авторитетная выборка корзины с классификацией позиций,
// группировкой по продавцам и сводкой.
func (s *CartService) Fetch(ctx context.Context) (domain.Cart, error) {
	lines, err := s.client.Get(ctx)
	if err != nil {
		s.log.Errorf(ctx, "cart fetch failed: %v", err)
		return domain.Cart{}, fmt.Errorf("fetch cart: %w", err)
	}
	cart := domain.BuildCart(lines)
	if cart.Summary.NeedsFixing() {
		s.log.Infof(ctx, "cart needs fixing: out_of_stock=%d mismatch=%d deleted=%d",
			cart.Summary.OutOfStockItems, cart.Summary.StockMismatchItems, cart.Summary.DeletedItems)
	}
	return cart, nil
}

// AddItem — добавить товар; количество проверяется до сетевого вызова.
func (s *CartService) AddItem(ctx context.Context, productRef string, quantity int) error {
	if err := validate.ProductRef(productRef); err != nil {
		return err
	}
	if err := validate.Quantity(quantity); err != nil {
		return err
	}
	if err := s.client.AddItem(ctx, productRef, quantity); err != nil {
		metrics.MutationOps.WithLabelValues("cart_add", "error").Inc()
		return fmt.Errorf("add to cart: %w", err)
	}
	metrics.MutationOps.WithLabelValues("cart_add", "ok").Inc()
	return nil
}

// UpdateQuantity — изменить количество в позиции.
func (s *CartService) UpdateQuantity(ctx context.Context, lineID string, quantity int) error {
	if err := validate.Quantity(quantity); err != nil {
		return err
	}
	if err := s.client.UpdateItem(ctx, lineID, quantity); err != nil {
		metrics.MutationOps.WithLabelValues("cart_update", "error").Inc()
		return fmt.Errorf("update cart item: %w", err)
	}
	metrics.MutationOps.WithLabelValues("cart_update", "ok").Inc()
	return nil
}

// RemoveItem — удалить позицию.
func (s *CartService) RemoveItem(ctx context.Context, lineID string) error {
	if err := s.client.RemoveItem(ctx, lineID); err != nil {
		metrics.MutationOps.WithLabelValues("cart_remove", "error").Inc()
		return fmt.Errorf("remove cart item: %w", err)
	}
	metrics.MutationOps.WithLabelValues("cart_remove", "ok").Inc()
	return nil
}

// Clear — опустошить корзину.
func (s *CartService) Clear(ctx context.Context) error {
	if err := s.client.Clear(ctx); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

// Fix — серверное исправление корзины: количество ограничивается
// остатком, недоступные позиции удаляются. Результат НЕ применяется
// локально — после reconcile выполняется повторная авторитетная
// выборка: источник истины по остаткам только сервер.
func (s *CartService) Fix(ctx context.Context) (domain.Cart, error) {
	if err := s.client.Reconcile(ctx); err != nil {
		s.log.Errorf(ctx, "cart reconcile failed: %v", err)
		return domain.Cart{}, fmt.Errorf("fix cart: %w", err)
	}
	return s.Fetch(ctx)
}

// Checkout — инициировать оплату. Последовательность:
//  1. свежая выборка корзины (цены и остатки на момент оформления);
//  2. блокировка, пока сводка требует исправления — шлюз не вызывается;
//  3. подытог из авторитетных цен + комиссия, перевод в минорные
//     единицы с округлением round-half-up;
//  4. инициация платежа, возврат URL авторизации.
func (s *CartService) Checkout(ctx context.Context, email string) (string, error) {
	if err := validate.Email(email); err != nil {
		return "", err
	}

	cart, err := s.Fetch(ctx)
	if err != nil {
		return "", err
	}
	if len(cart.Lines) == 0 {
		return "", ErrEmptyCart
	}
	if cart.Summary.NeedsFixing() {
		metrics.CheckoutBlocked.Inc()
		s.log.Warnf(ctx, "checkout blocked: out_of_stock=%d mismatch=%d deleted=%d",
			cart.Summary.OutOfStockItems, cart.Summary.StockMismatchItems, cart.Summary.DeletedItems)
		return "", ErrCartNeedsFixing
	}

	subtotal := cart.Subtotal()
	amount := s.fees.Total(subtotal)

	authURL, err := s.payment.Initiate(ctx, email, amount, map[string]string{
		"line_count": strconv.Itoa(len(cart.Lines)),
	})
	if err != nil {
		s.log.Errorf(ctx, "payment initiate failed amount=%d err=%v", amount, err)
		return "", fmt.Errorf("initiate payment: %w", err)
	}

	s.log.Infof(ctx, "checkout initiated lines=%d subtotal=%.2f amount_minor=%d", len(cart.Lines), subtotal, amount)
	return authURL, nil
}
