package dto

import "github.com/shopspring/decimal"

// DashboardSummaryResponse respuesta de GET /api/dashboard/summary.
// Los conteos critical/warning salen del mismo clasificador que la vista por
// producto; no hay una segunda implementación de los umbrales.
type DashboardSummaryResponse struct {
	TotalProducts       int             `json:"total_products"`
	TotalWarehouses     int             `json:"total_warehouses"`
	CriticalCount       int             `json:"critical_count"`
	WarningCount        int             `json:"warning_count"`
	TotalInventoryValue decimal.Decimal `json:"total_inventory_value"`

	// Movimientos creados en los últimos 7 días.
	RecentMovementCount int `json:"recent_movement_count"`

	// Los 10 movimientos más recientes por fecha de creación.
	RecentMovements []MovementResponse `json:"recent_movements"`
}
