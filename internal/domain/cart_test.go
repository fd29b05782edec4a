package domain

import "testing"

func snap(stock int) *ProductSnapshot {
	return &ProductSnapshot{ID: "p1", Name: "x", Price: 100, Stock: stock, SellerID: "s1"}
}

// TestClassify_Totality — для любой комбинации (quantity, snapshot)
// назначается ровно один из четырёх статусов.
func TestClassify_Totality(t *testing.T) {
	cases := []struct {
		name       string
		line       CartLine
		wantStatus LineStatus
		wantMax    int
	}{
		{"nil snapshot", CartLine{Quantity: 1}, StatusDeleted, 0},
		{"zero stock", CartLine{Quantity: 1, Snapshot: snap(0)}, StatusOutOfStock, 0},
		{"negative stock", CartLine{Quantity: 3, Snapshot: snap(-2)}, StatusOutOfStock, 0},
		{"quantity over stock", CartLine{Quantity: 5, Snapshot: snap(2)}, StatusStockMismatch, 2},
		{"quantity equals stock", CartLine{Quantity: 2, Snapshot: snap(2)}, StatusAvailable, 2},
		{"quantity under stock", CartLine{Quantity: 1, Snapshot: snap(10)}, StatusAvailable, 10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.line.Classify()
			if tc.line.Status != tc.wantStatus {
				t.Fatalf("status: want %s, got %s", tc.wantStatus, tc.line.Status)
			}
			if tc.line.MaxAvailable != tc.wantMax {
				t.Fatalf("max available: want %d, got %d", tc.wantMax, tc.line.MaxAvailable)
			}
		})
	}
}

// stock_mismatch всегда несёт MaxAvailable = остатку из снапшота.
func TestClassify_MismatchCarriesMaxAvailable(t *testing.T) {
	for _, stock := range []int{1, 2, 7, 99} {
		line := CartLine{Quantity: stock + 1, Snapshot: snap(stock)}
		line.Classify()
		if line.Status != StatusStockMismatch || line.MaxAvailable != stock {
			t.Fatalf("stock=%d: want mismatch with max=%d, got %s max=%d", stock, stock, line.Status, line.MaxAvailable)
		}
	}
}

func TestEffectiveQuantity(t *testing.T) {
	cases := []struct {
		line CartLine
		want int
	}{
		{CartLine{Quantity: 4, Snapshot: snap(10)}, 4},
		{CartLine{Quantity: 5, Snapshot: snap(2)}, 2},
		{CartLine{Quantity: 3, Snapshot: snap(0)}, 0},
		{CartLine{Quantity: 3}, 0},
	}
	for i, tc := range cases {
		tc.line.Classify()
		if got := tc.line.EffectiveQuantity(); got != tc.want {
			t.Fatalf("case %d: want %d, got %d", i, tc.want, got)
		}
	}
}

func TestBuildCart_SummaryAndGroups(t *testing.T) {
	lines := []CartLine{
		{ID: "l1", ProductRef: "p1", Quantity: 1, Snapshot: &ProductSnapshot{ID: "p1", Price: 50, Stock: 3, SellerID: "s1", SellerName: "Seller One"}},
		{ID: "l2", ProductRef: "p2", Quantity: 5, Snapshot: &ProductSnapshot{ID: "p2", Price: 10, Stock: 2, SellerID: "s2"}},
		{ID: "l3", ProductRef: "p3", Quantity: 1, Snapshot: &ProductSnapshot{ID: "p3", Price: 20, Stock: 0, SellerID: "s1"}},
		{ID: "l4", ProductRef: "p4", Quantity: 2},
	}

	cart := BuildCart(lines)

	if cart.Summary.StockMismatchItems != 1 || cart.Summary.OutOfStockItems != 1 || cart.Summary.DeletedItems != 1 {
		t.Fatalf("summary wrong: %+v", cart.Summary)
	}
	if !cart.Summary.NeedsFixing() {
		t.Fatalf("expected NeedsFixing()=true")
	}

	// Группы: s1, s2 и "" (удалённый товар без снапшота), в порядке появления.
	if len(cart.Sellers) != 3 {
		t.Fatalf("want 3 seller groups, got %d", len(cart.Sellers))
	}
	if cart.Sellers[0].SellerID != "s1" || len(cart.Sellers[0].Lines) != 2 {
		t.Fatalf("group s1 wrong: %+v", cart.Sellers[0])
	}
	if cart.Sellers[1].SellerID != "s2" || len(cart.Sellers[1].Lines) != 1 {
		t.Fatalf("group s2 wrong: %+v", cart.Sellers[1])
	}
}

func TestBuildCart_HealthyCart(t *testing.T) {
	cart := BuildCart([]CartLine{
		{ID: "l1", ProductRef: "p1", Quantity: 2, Snapshot: snap(5)},
	})
	if cart.Summary.NeedsFixing() {
		t.Fatalf("expected NeedsFixing()=false, summary=%+v", cart.Summary)
	}
	if cart.Lines[0].Status != StatusAvailable {
		t.Fatalf("want available, got %s", cart.Lines[0].Status)
	}
}

// Subtotal считается из авторитетных цен снапшотов; позиции без
// снапшота не участвуют.
func TestSubtotal(t *testing.T) {
	cart := BuildCart([]CartLine{
		{ID: "l1", ProductRef: "p1", Quantity: 2, Snapshot: &ProductSnapshot{Price: 100.50, Stock: 5, SellerID: "s1"}},
		{ID: "l2", ProductRef: "p2", Quantity: 1, Snapshot: &ProductSnapshot{Price: 9.99, Stock: 1, SellerID: "s1"}},
		{ID: "l3", ProductRef: "p3", Quantity: 4},
	})
	want := 2*100.50 + 9.99
	if got := cart.Subtotal(); got != want {
		t.Fatalf("subtotal: want %v, got %v", want, got)
	}
}
