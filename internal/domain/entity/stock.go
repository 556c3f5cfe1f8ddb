package entity

import "time"

// StockBalance representa el saldo actual de un producto en una bodega,
// clave (ProductID, WarehouseID). Se crea implícitamente en cero con el primer
// movimiento que toca la clave; solo el ledger escribe Quantity.
type StockBalance struct {
	ProductID   string
	WarehouseID string
	Quantity    int64
	UpdatedAt   time.Time
}
