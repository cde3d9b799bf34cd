package inventory

import "github.com/shopspring/decimal"

// LowStockDTO is the trimmed product view used in reports.
type LowStockDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// ReportDTO is the API payload for GenerateReport.
type ReportDTO struct {
	TotalProducts       int             `json:"total_products"`
	TotalInventoryValue decimal.Decimal `json:"total_inventory_value"`
	LowStockProducts    []LowStockDTO   `json:"low_stock_products"`
	ProcessedOrders     int             `json:"processed_orders"`
	PendingOrders       int             `json:"pending_orders"`
}

// StatsDTO carries the catalog size and queue depth.
type StatsDTO struct {
	Products      int `json:"products"`
	PendingOrders int `json:"pending_orders"`
}

func NewReportDTO(r Report) ReportDTO {
	low := make([]LowStockDTO, 0, len(r.LowStock))
	for _, p := range r.LowStock {
		low = append(low, LowStockDTO{ID: p.ID, Name: p.Name, Quantity: p.Quantity})
	}
	return ReportDTO{
		TotalProducts:       r.TotalProducts,
		TotalInventoryValue: r.TotalInventoryValue,
		LowStockProducts:    low,
		ProcessedOrders:     r.ProcessedOrders,
		PendingOrders:       r.PendingOrders,
	}
}
