package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Gunvolt24/campus_market/internal/domain"
	"github.com/Gunvolt24/campus_market/internal/ports/mocks"
	"github.com/Gunvolt24/campus_market/internal/usecase"
	"github.com/Gunvolt24/campus_market/pkg/money"
	"github.com/Gunvolt24/campus_market/pkg/validate"
	"github.com/golang/mock/gomock"
)

const buyerEmail = "buyer@campus.edu"

var testFees = money.SurchargeSchedule{Rate: 0.015, Flat: 100, FlatThreshold: 2500, Cap: 2000}

func newCartFixture(t *testing.T) (*mocks.MockCartClient, *mocks.MockPaymentClient, *usecase.CartService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	client := mocks.NewMockCartClient(ctrl)
	payment := mocks.NewMockPaymentClient(ctrl)
	svc := usecase.NewCartService(client, payment, noopLogger{}, testFees)
	return client, payment, svc
}

func healthyLine(id, ref string, qty, stock int, price float64, seller string) domain.CartLine {
	return domain.CartLine{
		ID:         id,
		ProductRef: ref,
		Quantity:   qty,
		Snapshot: &domain.ProductSnapshot{
			ID:       ref,
			Name:     "item " + ref,
			Price:    price,
			Stock:    stock,
			SellerID: seller,
		},
	}
}

func TestCartFetch_ClassifiesAndGroups(t *testing.T) {
	client, _, svc := newCartFixture(t)

	lines := []domain.CartLine{
		healthyLine("l1", "p1", 1, 10, 500.0, "s1"),
		healthyLine("l2", "p2", 5, 2, 300.0, "s2"), // больше остатка
		{ID: "l3", ProductRef: "p3", Quantity: 1},  // товар удалён
	}
	client.EXPECT().Get(gomock.Any()).Return(lines, nil)

	cart, err := svc.Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cart.Lines[1].Status != domain.StatusStockMismatch || cart.Lines[1].MaxAvailable != 2 {
		t.Fatalf("mismatch line: %+v", cart.Lines[1])
	}
	if cart.Lines[2].Status != domain.StatusDeleted {
		t.Fatalf("deleted line: %+v", cart.Lines[2])
	}
	if !cart.Summary.NeedsFixing() {
		t.Fatalf("summary must flag the cart, got %+v", cart.Summary)
	}
	if len(cart.Sellers) != 3 {
		t.Fatalf("want 3 seller groups, got %d", len(cart.Sellers))
	}
}

func TestCartAddItem_ValidatesBeforeNetwork(t *testing.T) {
	client, _, svc := newCartFixture(t)

	client.EXPECT().AddItem(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	if err := svc.AddItem(context.Background(), "p1", 0); !errors.Is(err, validate.ErrInvalidQuantity) {
		t.Fatalf("want ErrInvalidQuantity, got %v", err)
	}
	if err := svc.AddItem(context.Background(), "", 1); !errors.Is(err, validate.ErrEmptyProductRef) {
		t.Fatalf("want ErrEmptyProductRef, got %v", err)
	}
}

func TestCartUpdateQuantity_ValidatesBeforeNetwork(t *testing.T) {
	client, _, svc := newCartFixture(t)

	client.EXPECT().UpdateItem(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	if err := svc.UpdateQuantity(context.Background(), "l1", -3); !errors.Is(err, validate.ErrInvalidQuantity) {
		t.Fatalf("want ErrInvalidQuantity, got %v", err)
	}
}

func TestCartFix_ReconcileThenRefetch(t *testing.T) {
	client, _, svc := newCartFixture(t)

	fixed := []domain.CartLine{healthyLine("l1", "p1", 2, 2, 300.0, "s1")}
	gomock.InOrder(
		client.EXPECT().Reconcile(gomock.Any()).Return(nil),
		client.EXPECT().Get(gomock.Any()).Return(fixed, nil),
	)

	cart, err := svc.Fix(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// после reconcile количество ограничено остатком, сводка чистая
	if cart.Summary.NeedsFixing() {
		t.Fatalf("fixed cart must not need fixing, got %+v", cart.Summary)
	}
	if cart.Lines[0].Quantity != 2 {
		t.Fatalf("want capped quantity 2, got %d", cart.Lines[0].Quantity)
	}
}

func TestCartFix_ReconcileError(t *testing.T) {
	client, _, svc := newCartFixture(t)

	client.EXPECT().Reconcile(gomock.Any()).Return(errors.New("backend down"))
	client.EXPECT().Get(gomock.Any()).Times(0)

	if _, err := svc.Fix(context.Background()); err == nil || !strings.Contains(err.Error(), "fix cart") {
		t.Fatalf("want wrapped fix error, got %v", err)
	}
}

func TestCheckout_BlockedWhenNeedsFixing(t *testing.T) {
	client, payment, svc := newCartFixture(t)

	lines := []domain.CartLine{
		healthyLine("l1", "p1", 1, 10, 500.0, "s1"),
		healthyLine("l2", "p2", 5, 2, 300.0, "s1"), // расхождение с остатком
	}
	client.EXPECT().Get(gomock.Any()).Return(lines, nil)
	// блокирующая сводка: ни одного вызова в платёжный шлюз
	payment.EXPECT().Initiate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.Checkout(context.Background(), buyerEmail)
	if !errors.Is(err, usecase.ErrCartNeedsFixing) {
		t.Fatalf("want ErrCartNeedsFixing, got %v", err)
	}
}

func TestCheckout_EmptyCart(t *testing.T) {
	client, payment, svc := newCartFixture(t)

	client.EXPECT().Get(gomock.Any()).Return(nil, nil)
	payment.EXPECT().Initiate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.Checkout(context.Background(), buyerEmail)
	if !errors.Is(err, usecase.ErrEmptyCart) {
		t.Fatalf("want ErrEmptyCart, got %v", err)
	}
}

func TestCheckout_InvalidEmail_NoNetwork(t *testing.T) {
	client, payment, svc := newCartFixture(t)

	client.EXPECT().Get(gomock.Any()).Times(0)
	payment.EXPECT().Initiate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.Checkout(context.Background(), "not-an-email")
	if !errors.Is(err, validate.ErrInvalidEmail) {
		t.Fatalf("want ErrInvalidEmail, got %v", err)
	}
}

func TestCheckout_HealthyCart_AmountWithSurcharge(t *testing.T) {
	client, payment, svc := newCartFixture(t)

	// подытог 2000.00: комиссия 1.5% = 30.00, flat не добавляется
	// (порог 2500 не достигнут), итог 2030.00 → 203000 минорных единиц
	lines := []domain.CartLine{
		healthyLine("l1", "p1", 2, 10, 700.0, "s1"),
		healthyLine("l2", "p2", 1, 5, 600.0, "s2"),
	}
	gomock.InOrder(
		client.EXPECT().Get(gomock.Any()).Return(lines, nil),
		payment.EXPECT().
			Initiate(gomock.Any(), buyerEmail, int64(203000), map[string]string{"line_count": "2"}).
			Return("https://pay.example/authorize/tx-9", nil),
	)

	url, err := svc.Checkout(context.Background(), buyerEmail)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "https://pay.example/authorize/tx-9" {
		t.Fatalf("unexpected authorization url: %q", url)
	}
}

func TestCheckout_FlatFeeAboveThreshold(t *testing.T) {
	client, payment, svc := newCartFixture(t)

	// подытог 3000.00 выше порога: комиссия 1.5% + 100 = 145.00,
	// итог 3145.00 → 314500 минорных единиц
	lines := []domain.CartLine{healthyLine("l1", "p1", 3, 10, 1000.0, "s1")}
	gomock.InOrder(
		client.EXPECT().Get(gomock.Any()).Return(lines, nil),
		payment.EXPECT().
			Initiate(gomock.Any(), buyerEmail, int64(314500), gomock.Any()).
			Return("https://pay.example/authorize/tx-10", nil),
	)

	if _, err := svc.Checkout(context.Background(), buyerEmail); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCheckout_PaymentError(t *testing.T) {
	client, payment, svc := newCartFixture(t)

	lines := []domain.CartLine{healthyLine("l1", "p1", 1, 10, 500.0, "s1")}
	gomock.InOrder(
		client.EXPECT().Get(gomock.Any()).Return(lines, nil),
		payment.EXPECT().
			Initiate(gomock.Any(), buyerEmail, gomock.Any(), gomock.Any()).
			Return("", errors.New("gateway unavailable")),
	)

	_, err := svc.Checkout(context.Background(), buyerEmail)
	if err == nil || !strings.Contains(err.Error(), "initiate payment") {
		t.Fatalf("want wrapped payment error, got %v", err)
	}
}
