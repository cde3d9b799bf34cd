package inventory

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/angelmondragon/inventory-backend/internal/orders"
	"github.com/angelmondragon/inventory-backend/internal/products"
	pkgerrors "github.com/angelmondragon/inventory-backend/pkg/errors"
	"github.com/angelmondragon/inventory-backend/pkg/logger"
	"github.com/shopspring/decimal"
)

const orderIDPrefix = "ORD-"

// Recorder receives order pipeline measurements. *metrics.InventoryMetrics
// satisfies it.
type Recorder interface {
	OrderCreated(pending int)
	OrderRejected(reason string)
	OrderProcessed(pending int, waited time.Duration)
	QueueDepth(pending int)
	CatalogSize(count int)
}

// ManagerParams wires optional collaborators into a Manager.
type ManagerParams struct {
	Logger  *logger.Logger
	Metrics Recorder
	// Clock defaults to time.Now.
	Clock func() time.Time
}

// Manager owns the catalog, the pending order queue and the processed-order
// log. Every public method runs under a single mutex so stock checks and
// reservations are atomic with respect to each other.
type Manager struct {
	mu          sync.Mutex
	catalog     *products.Catalog
	queue       *orders.Queue
	processed   []*orders.Order
	nextOrderID int

	logg    *logger.Logger
	metrics Recorder
	now     func() time.Time
}

var _ Service = (*Manager)(nil)

func NewManager(params ManagerParams) *Manager {
	m := &Manager{
		catalog:     products.NewCatalog(),
		queue:       orders.NewQueue(),
		nextOrderID: 1,
		logg:        params.Logger,
		metrics:     params.Metrics,
		now:         params.Clock,
	}
	if m.logg == nil {
		m.logg = logger.Nop()
	}
	if m.metrics == nil {
		m.metrics = nopRecorder{}
	}
	if m.now == nil {
		m.now = time.Now
	}
	return m
}

func (m *Manager) AddProduct(ctx context.Context, input AddProductInput) (products.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, err := m.catalog.Add(input.Name, input.Quantity, input.Price, input.Category)
	if err != nil {
		return products.Product{}, err
	}
	m.metrics.CatalogSize(m.catalog.Count())
	m.logg.Debug(m.logg.WithProductID(ctx, p.ID), "product.added")
	return p, nil
}

func (m *Manager) GetProduct(_ context.Context, id string) (products.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.catalog.FindByID(id)
	if !ok {
		return products.Product{}, products.NotFoundError(id)
	}
	return p, nil
}

func (m *Manager) ListProducts(context.Context) []products.Product {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.catalog.All()
}

func (m *Manager) ListProductsByCategory(_ context.Context, category string) []products.Product {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.catalog.FindByCategory(category)
}

func (m *Manager) SearchProductsByName(_ context.Context, query string) []products.Product {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.catalog.FindByNameSubstring(query)
}

// UpdateQuantity overwrites the stock of a product and returns the updated
// product read under the same lock.
func (m *Manager) UpdateQuantity(ctx context.Context, id string, quantity int) (products.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ok, err := m.catalog.SetQuantity(id, quantity)
	if err != nil {
		return products.Product{}, err
	}
	if !ok {
		return products.Product{}, products.NotFoundError(id)
	}
	p, _ := m.catalog.FindByID(id)
	m.logg.Debug(m.logg.WithFields(ctx, map[string]any{"product_id": id, "quantity": quantity}), "product.quantity_set")
	return p, nil
}

// Restock adds quantity units to a product and returns the new stock.
func (m *Manager) Restock(ctx context.Context, id string, quantity int) (int, error) {
	if quantity < 0 {
		return 0, invalidArgument("restock quantity must be non-negative", map[string]any{"field": "quantity", "value": quantity})
	}
	return m.adjust(ctx, id, quantity)
}

// Withdraw removes quantity units from a product outside of an order.
func (m *Manager) Withdraw(ctx context.Context, id string, quantity int) (int, error) {
	if quantity < 0 {
		return 0, invalidArgument("withdraw quantity must be non-negative", map[string]any{"field": "quantity", "value": quantity})
	}
	return m.adjust(ctx, id, -quantity)
}

func (m *Manager) adjust(ctx context.Context, id string, delta int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	next, err := m.catalog.AdjustQuantity(id, delta)
	if err != nil {
		return 0, err
	}
	m.logg.Debug(m.logg.WithFields(ctx, map[string]any{"product_id": id, "delta": delta, "quantity": next}), "product.stock_adjusted")
	return next, nil
}

func (m *Manager) RemoveProduct(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.catalog.Remove(id) {
		return products.NotFoundError(id)
	}
	m.metrics.CatalogSize(m.catalog.Count())
	m.logg.Debug(m.logg.WithProductID(ctx, id), "product.removed")
	return nil
}

// CreateOrder validates every line against current stock before reserving
// anything, so a failing order leaves the catalog untouched. Repeated lines
// for the same product are checked against their combined demand.
func (m *Manager) CreateOrder(ctx context.Context, customerID string, items []OrderItemInput) (orders.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	customerID = strings.TrimSpace(customerID)
	ctx = m.logg.WithCustomerID(ctx, customerID)

	resolved, err := m.validateOrder(customerID, items)
	if err != nil {
		m.reject(ctx, err)
		return orders.Order{}, err
	}

	order := orders.NewOrder(fmt.Sprintf("%s%d", orderIDPrefix, m.nextOrderID), customerID, m.now())
	for i, item := range items {
		if _, err := m.catalog.AdjustQuantity(item.ProductID, -item.Quantity); err != nil {
			// validateOrder ran under the same lock, so this means the
			// catalog and the plan disagree.
			wrapped := pkgerrors.Wrap(pkgerrors.CodeInternal, err, "reserve validated order line")
			m.logg.Error(ctx, "order.reserve_failed", wrapped)
			return orders.Order{}, wrapped
		}
		order.AddLine(item.ProductID, resolved[i].Name, item.Quantity, resolved[i].Price)
	}
	m.nextOrderID++
	m.queue.Enqueue(order)
	m.metrics.OrderCreated(m.queue.Len())

	ctx = m.logg.WithFields(ctx, map[string]any{
		"order_id": order.ID,
		"lines":    len(order.Items),
		"total":    order.Total.StringFixed(2),
		"pending":  m.queue.Len(),
	})
	m.logg.Info(ctx, "order.created")
	return order.Clone(), nil
}

// validateOrder resolves every line without mutating stock. It returns the
// product snapshot for each line, in input order.
func (m *Manager) validateOrder(customerID string, items []OrderItemInput) ([]products.Product, error) {
	if customerID == "" {
		return nil, invalidArgument("customer id is required", map[string]any{"field": "customer_id"})
	}
	if len(items) == 0 {
		return nil, invalidArgument("order must contain at least one item", map[string]any{"field": "items"})
	}

	claimed := make(map[string]int, len(items))
	resolved := make([]products.Product, len(items))
	for i, item := range items {
		if item.Quantity <= 0 {
			return nil, invalidArgument("item quantity must be positive", map[string]any{
				"line":       i,
				"product_id": item.ProductID,
				"quantity":   item.Quantity,
			})
		}
		p, ok := m.catalog.FindByID(item.ProductID)
		if !ok {
			return nil, productNotFoundInOrder(item.ProductID, i)
		}
		// compare against what is left so huge quantities cannot wrap the sum
		if item.Quantity > p.Quantity-claimed[p.ID] {
			requested := item.Quantity
			if claimed[p.ID] <= math.MaxInt-item.Quantity {
				requested += claimed[p.ID]
			}
			return nil, products.InsufficientStockError(p, requested)
		}
		claimed[p.ID] += item.Quantity
		resolved[i] = p
	}
	return resolved, nil
}

func (m *Manager) reject(ctx context.Context, err error) {
	code := string(pkgerrors.CodeInternal)
	if typed := pkgerrors.As(err); typed != nil {
		code = string(typed.Code())
	}
	m.metrics.OrderRejected(code)
	m.logg.Warn(m.logg.WithFields(ctx, map[string]any{"reason": code, "error": err.Error()}), "order.rejected")
}

// ProcessNextOrder dequeues the oldest pending order, marks it processed and
// appends it to the processed log.
func (m *Manager) ProcessNextOrder(ctx context.Context) (orders.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	order, err := m.queue.Dequeue()
	if err != nil {
		if errors.Is(err, orders.ErrEmptyQueue) {
			return orders.Order{}, noPendingOrders()
		}
		return orders.Order{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "dequeue order")
	}

	at := m.now()
	order.MarkProcessed(at)
	m.processed = append(m.processed, order)
	m.metrics.OrderProcessed(m.queue.Len(), at.Sub(order.CreatedAt))

	ctx = m.logg.WithFields(m.logg.WithOrderID(ctx, order.ID), map[string]any{
		"customer_id": order.CustomerID,
		"pending":     m.queue.Len(),
	})
	m.logg.Info(ctx, "order.processed")
	return order.Clone(), nil
}

// PeekNextOrder returns the order ProcessNextOrder would handle next.
func (m *Manager) PeekNextOrder(context.Context) (orders.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	order, ok := m.queue.Peek()
	if !ok {
		return orders.Order{}, noPendingOrders()
	}
	return order.Clone(), nil
}

// PendingCount returns how many orders wait in the queue.
func (m *Manager) PendingCount(context.Context) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.queue.Len()
}

// CountProducts returns the number of distinct products in the catalog.
func (m *Manager) CountProducts(context.Context) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.catalog.Count()
}

func (m *Manager) ListProcessedOrders(context.Context) []orders.Order {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]orders.Order, 0, len(m.processed))
	for _, o := range m.processed {
		out = append(out, o.Clone())
	}
	return out
}

func (m *Manager) GenerateReport(context.Context) Report {
	m.mu.Lock()
	defer m.mu.Unlock()

	all := m.catalog.All()
	total := decimal.Zero
	low := make([]products.Product, 0)
	for _, p := range all {
		total = total.Add(p.Total())
		if p.Quantity < LowStockThreshold {
			low = append(low, p)
		}
	}
	return Report{
		TotalProducts:       len(all),
		TotalInventoryValue: total.Round(2),
		LowStock:            low,
		ProcessedOrders:     len(m.processed),
		PendingOrders:       m.queue.Len(),
	}
}

// Reset clears products, pending and processed orders and restarts both
// identifier sequences.
func (m *Manager) Reset(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.catalog.Reset()
	m.queue.Clear()
	m.processed = nil
	m.nextOrderID = 1
	m.metrics.CatalogSize(0)
	m.metrics.QueueDepth(0)
	m.logg.Warn(ctx, "inventory.reset")
}

type nopRecorder struct{}

func (nopRecorder) OrderCreated(int)                  {}
func (nopRecorder) OrderRejected(string)              {}
func (nopRecorder) OrderProcessed(int, time.Duration) {}
func (nopRecorder) QueueDepth(int)                    {}
func (nopRecorder) CatalogSize(int)                   {}
