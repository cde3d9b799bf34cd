package inventory

import (
	"context"

	"github.com/angelmondragon/inventory-backend/internal/orders"
	"github.com/angelmondragon/inventory-backend/internal/products"
	"github.com/shopspring/decimal"
)

// LowStockThreshold marks products with fewer units as low stock in reports.
// It never blocks a sale.
const LowStockThreshold = 5

// Service is the inventory contract consumed by the HTTP layer and loaders.
type Service interface {
	AddProduct(ctx context.Context, input AddProductInput) (products.Product, error)
	GetProduct(ctx context.Context, id string) (products.Product, error)
	ListProducts(ctx context.Context) []products.Product
	ListProductsByCategory(ctx context.Context, category string) []products.Product
	SearchProductsByName(ctx context.Context, query string) []products.Product
	UpdateQuantity(ctx context.Context, id string, quantity int) (products.Product, error)
	Restock(ctx context.Context, id string, quantity int) (int, error)
	Withdraw(ctx context.Context, id string, quantity int) (int, error)
	RemoveProduct(ctx context.Context, id string) error
	CreateOrder(ctx context.Context, customerID string, items []OrderItemInput) (orders.Order, error)
	ProcessNextOrder(ctx context.Context) (orders.Order, error)
	PeekNextOrder(ctx context.Context) (orders.Order, error)
	ListProcessedOrders(ctx context.Context) []orders.Order
	PendingCount(ctx context.Context) int
	CountProducts(ctx context.Context) int
	GenerateReport(ctx context.Context) Report
	Reset(ctx context.Context)
}

// AddProductInput carries the fields of a new catalog entry. An empty
// Category falls back to products.DefaultCategory.
type AddProductInput struct {
	Name     string
	Quantity int
	Price    decimal.Decimal
	Category string
}

// OrderItemInput is one requested line of an order.
type OrderItemInput struct {
	ProductID string
	Quantity  int
}

// Report aggregates catalog and queue figures.
type Report struct {
	TotalProducts       int
	TotalInventoryValue decimal.Decimal
	LowStock            []products.Product
	ProcessedOrders     int
	PendingOrders       int
}
