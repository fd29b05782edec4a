package domain

// LineStatus — производный статус позиции корзины относительно
// последнего авторитетного снапшота товара.
type LineStatus string

const (
	StatusAvailable     LineStatus = "available"
	StatusOutOfStock    LineStatus = "out_of_stock"
	StatusStockMismatch LineStatus = "stock_mismatch"
	StatusDeleted       LineStatus = "deleted"
)

// CartLine — позиция корзины. ID назначается сервером; Snapshot —
// последняя известная проекция товара. Status/MaxAvailable — производные
// поля, вычисляются при каждой классификации и не хранятся на сервере.
type CartLine struct {
	ID         string           `json:"id"`
	ProductRef string           `json:"product_ref"`
	Quantity   int              `json:"quantity"`
	Snapshot   *ProductSnapshot `json:"product,omitempty"`

	Status       LineStatus `json:"status,omitempty"`
	MaxAvailable int        `json:"max_available,omitempty"`
}

// SellerGroup — позиции одного продавца (для отображения корзина
// группируется по продавцам, владелец всех позиций — покупатель).
type SellerGroup struct {
	SellerID   string     `json:"seller_id"`
	SellerName string     `json:"seller_name,omitempty"`
	Lines      []CartLine `json:"lines"`
}

// Cart — корзина после классификации: позиции, группировка по продавцам
// и агрегированная сводка.
type Cart struct {
	Lines   []CartLine    `json:"lines"`
	Sellers []SellerGroup `json:"sellers"`
	Summary CartSummary   `json:"summary"`
}

// CartSummary — сводка «здоровья» корзины по всем позициям.
type CartSummary struct {
	OutOfStockItems    int `json:"out_of_stock_items"`
	StockMismatchItems int `json:"stock_mismatch_items"`
	DeletedItems       int `json:"deleted_items"`
}

// NeedsFixing — true, если хотя бы одна позиция требует вмешательства
// (исправления количества или удаления) перед оформлением заказа.
func (s CartSummary) NeedsFixing() bool {
	return s.OutOfStockItems+s.StockMismatchItems+s.DeletedItems > 0
}

// Classify — вычисляет статус позиции по снапшоту товара.
// Порядок проверок фиксирован, срабатывает первое совпадение:
//  1. снапшота нет → товар удалён;
//  2. остаток <= 0 → нет в наличии;
//  3. запрошено больше остатка → расхождение, MaxAvailable = остаток;
//  4. иначе → доступен.
func (l *CartLine) Classify() {
	switch {
	case l.Snapshot == nil:
		l.Status = StatusDeleted
		l.MaxAvailable = 0
	case l.Snapshot.Stock <= 0:
		l.Status = StatusOutOfStock
		l.MaxAvailable = 0
	case l.Quantity > l.Snapshot.Stock:
		l.Status = StatusStockMismatch
		l.MaxAvailable = l.Snapshot.Stock
	default:
		l.Status = StatusAvailable
		l.MaxAvailable = l.Snapshot.Stock
	}
}

// EffectiveQuantity — количество, которое реально может быть выкуплено:
// min(Quantity, MaxAvailable) для позиций, ограниченных остатком.
func (l *CartLine) EffectiveQuantity() int {
	switch l.Status {
	case StatusDeleted, StatusOutOfStock:
		return 0
	case StatusStockMismatch:
		return l.MaxAvailable
	default:
		return l.Quantity
	}
}

// BuildCart — классифицирует позиции, группирует их по продавцам и
// собирает сводку. Порядок групп повторяет порядок первого появления
// продавца в списке позиций.
func BuildCart(lines []CartLine) Cart {
	cart := Cart{Lines: lines}
	groupIdx := make(map[string]int)

	for i := range cart.Lines {
		line := &cart.Lines[i]
		line.Classify()

		switch line.Status {
		case StatusOutOfStock:
			cart.Summary.OutOfStockItems++
		case StatusStockMismatch:
			cart.Summary.StockMismatchItems++
		case StatusDeleted:
			cart.Summary.DeletedItems++
		}

		sellerID, sellerName := "", ""
		if line.Snapshot != nil {
			sellerID = line.Snapshot.SellerID
			sellerName = line.Snapshot.SellerName
		}
		idx, ok := groupIdx[sellerID]
		if !ok {
			idx = len(cart.Sellers)
			groupIdx[sellerID] = idx
			cart.Sellers = append(cart.Sellers, SellerGroup{SellerID: sellerID, SellerName: sellerName})
		}
		cart.Sellers[idx].Lines = append(cart.Sellers[idx].Lines, *line)
	}
	return cart
}

// Subtotal — сумма по корзине из авторитетных цен снапшотов
// (клиентские кэшированные цены никогда не используются).
// Позиции без снапшота не участвуют в сумме.
func (c Cart) Subtotal() float64 {
	var total float64
	for i := range c.Lines {
		line := &c.Lines[i]
		if line.Snapshot == nil {
			continue
		}
		total += line.Snapshot.Price * float64(line.Quantity)
	}
	return total
}
