package entity

import "time"

// Tipos de movimiento de inventario.
const (
	TransactionTypeReceipt    = "receipt"    // entrada
	TransactionTypeDelivery   = "delivery"   // salida
	TransactionTypeTransfer   = "transfer"   // traslado entre bodegas
	TransactionTypeAdjustment = "adjustment" // ajuste por conteo físico
)

// Estados del ciclo de vida de una transacción.
const (
	StatusDraft    = "draft"
	StatusWaiting  = "waiting"
	StatusReady    = "ready"
	StatusDone     = "done"
	StatusCanceled = "canceled"
)

// Transaction representa un movimiento de inventario con su ciclo de vida.
// El registro es append-only: una vez creado, solo Status (y Difference al
// entrar a done, en ajustes) pueden cambiar.
//
// Según el tipo:
//   - receipt/delivery/adjustment usan WarehouseID;
//   - transfer usa FromWarehouseID y ToWarehouseID.
//
// En ajustes Quantity es la cantidad contada (puede ser cero) y Difference
// guarda contada − saldo previo, calculada una sola vez al aplicar el ledger.
type Transaction struct {
	ID              string
	Type            string
	Reference       string
	ProductID       string
	Quantity        int64
	WarehouseID     string
	FromWarehouseID string
	ToWarehouseID   string
	Status          string
	Difference      *int64
	Notes           string
	CreatedBy       string
	CreatedAt       time.Time
}

// IsValidType indica si s es un tipo de transacción conocido.
func IsValidType(s string) bool {
	switch s {
	case TransactionTypeReceipt, TransactionTypeDelivery, TransactionTypeTransfer, TransactionTypeAdjustment:
		return true
	}
	return false
}

// IsValidStatus indica si s es un estado conocido del workflow.
func IsValidStatus(s string) bool {
	switch s {
	case StatusDraft, StatusWaiting, StatusReady, StatusDone, StatusCanceled:
		return true
	}
	return false
}
