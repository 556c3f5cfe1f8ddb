package repository

import "github.com/jhoicas/Bodega-api/internal/domain/entity"

// StockRepository define el puerto del ledger de saldos por (producto, bodega).
// Get devuelve saldo cero para claves nunca vistas. Las escrituras solo son
// válidas dentro de una transacción del TxRunner, con las claves bloqueadas.
type StockRepository interface {
	Get(productID, warehouseID string) (*entity.StockBalance, error)
	Upsert(balance *entity.StockBalance) error
	// GetForUpdate obtiene el saldo bloqueando la clave para escritura.
	// Para operaciones multi-clave (transfer) el caller debe pedir los bloqueos
	// en orden fijo de clave para evitar deadlocks.
	GetForUpdate(productID, warehouseID string) (*entity.StockBalance, error)
	// ListAll devuelve todos los saldos (para el dashboard).
	ListAll() ([]*entity.StockBalance, error)
}
