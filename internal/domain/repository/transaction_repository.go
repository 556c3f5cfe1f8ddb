package repository

import "github.com/jhoicas/Bodega-api/internal/domain/entity"

// TransactionFilter filtros opcionales para listar transacciones.
// Warehouse coincide contra warehouse, from_warehouse o to_warehouse.
type TransactionFilter struct {
	Type      string
	Status    string
	Warehouse string
	Limit     int
	Offset    int
}

// TransactionRepository define el puerto de persistencia para Transaction.
// Los registros son append-only: solo UpdateStatus (y Difference al entrar a
// done, en ajustes) mutan un registro existente.
type TransactionRepository interface {
	Create(tx *entity.Transaction) error
	GetByID(id string) (*entity.Transaction, error)
	// List devuelve transacciones ordenadas por created_at desc, id desc.
	List(filter TransactionFilter) ([]*entity.Transaction, error)
	UpdateStatus(tx *entity.Transaction) error
	// ExistsReference indica si ya hay una transacción del tipo con esa
	// referencia (condición no fatal, solo se advierte en logs).
	ExistsReference(txType, reference string) (bool, error)
}
