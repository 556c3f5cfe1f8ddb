package dto

// DashboardResponse respuesta de GET /api/inventory/dashboard.
// Los conteos "pending"/"scheduled" cuentan transacciones en draft|waiting|ready.
type DashboardResponse struct {
	TotalProducts      int `json:"totalProducts"`
	LowStockProducts   int `json:"lowStockProducts"`   // saldos 0 < q <= reorderLevel (bodegas activas)
	OutOfStockProducts int `json:"outOfStockProducts"` // saldos q == 0 (bodegas activas)
	PendingReceipts    int `json:"pendingReceipts"`
	PendingDeliveries  int `json:"pendingDeliveries"`
	ScheduledTransfers int `json:"scheduledTransfers"`
	PendingAdjustments int `json:"pendingAdjustments"`

	// Las 10 transacciones más recientes (createdAt desc, empates por id desc).
	RecentTransactions []TransactionResponse `json:"recentTransactions"`
}
