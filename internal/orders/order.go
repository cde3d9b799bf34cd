package orders

import (
	"time"

	"github.com/angelmondragon/inventory-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// LineItem records one product of an order with name and price captured at
// order time.
type LineItem struct {
	ProductID string
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}

// Order is a sales order. It is created pending and becomes processed once
// dequeued; no other transition exists.
type Order struct {
	ID          string
	CustomerID  string
	Items       []LineItem
	Total       decimal.Decimal
	Status      enums.OrderStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// NewOrder starts an empty pending order.
func NewOrder(id, customerID string, createdAt time.Time) *Order {
	return &Order{
		ID:         id,
		CustomerID: customerID,
		Items:      make([]LineItem, 0),
		Total:      decimal.Zero,
		Status:     enums.OrderStatusPending,
		CreatedAt:  createdAt,
	}
}

// AddLine appends a line item and accumulates the order total.
func (o *Order) AddLine(productID, name string, quantity int, unitPrice decimal.Decimal) {
	subtotal := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	o.Items = append(o.Items, LineItem{
		ProductID: productID,
		Name:      name,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		Subtotal:  subtotal,
	})
	o.Total = o.Total.Add(subtotal)
}

// MarkProcessed moves a pending order to processed. It reports false when the
// order was not pending.
func (o *Order) MarkProcessed(at time.Time) bool {
	if !o.Status.CanTransitionTo(enums.OrderStatusProcessed) {
		return false
	}
	o.Status = enums.OrderStatusProcessed
	o.ProcessedAt = &at
	return true
}

// Clone returns a deep copy so callers never share line items or timestamps
// with queued or logged orders.
func (o *Order) Clone() Order {
	out := *o
	out.Items = make([]LineItem, len(o.Items))
	copy(out.Items, o.Items)
	if o.ProcessedAt != nil {
		at := *o.ProcessedAt
		out.ProcessedAt = &at
	}
	return out
}
