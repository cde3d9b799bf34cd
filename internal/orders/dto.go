package orders

import (
	"time"

	"github.com/angelmondragon/inventory-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// LineItemDTO is the API payload for one order line.
type LineItemDTO struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// OrderDTO is the API payload for an order.
type OrderDTO struct {
	ID          string            `json:"id"`
	CustomerID  string            `json:"customer_id"`
	Items       []LineItemDTO     `json:"items"`
	Total       decimal.Decimal   `json:"total"`
	Status      enums.OrderStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
	ProcessedAt *time.Time        `json:"processed_at,omitempty"`
}

func NewOrderDTO(o Order) OrderDTO {
	items := make([]LineItemDTO, 0, len(o.Items))
	for _, li := range o.Items {
		items = append(items, LineItemDTO(li))
	}
	return OrderDTO{
		ID:          o.ID,
		CustomerID:  o.CustomerID,
		Items:       items,
		Total:       o.Total,
		Status:      o.Status,
		CreatedAt:   o.CreatedAt,
		ProcessedAt: o.ProcessedAt,
	}
}

func NewOrderDTOs(list []Order) []OrderDTO {
	out := make([]OrderDTO, 0, len(list))
	for _, o := range list {
		out = append(out, NewOrderDTO(o))
	}
	return out
}
