package memory

import (
	"github.com/jhoicas/Bodega-api/internal/domain"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
)

// StockRepository vista de solo lectura del ledger fuera de transacción.
// Las escrituras y los bloqueos pertenecen al TxRunner.
type StockRepository struct {
	store *Store
}

// NewStockRepository construye el repositorio de saldos.
func NewStockRepository(store *Store) *StockRepository {
	return &StockRepository{store: store}
}

func (r *StockRepository) Get(productID, warehouseID string) (*entity.StockBalance, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if b, ok := r.store.balances[stockKey{productID, warehouseID}]; ok {
		return copyBalance(b), nil
	}
	return &entity.StockBalance{ProductID: productID, WarehouseID: warehouseID}, nil
}

// GetForUpdate fuera de una transacción no tiene sentido: no hay contexto que
// retenga el bloqueo.
func (r *StockRepository) GetForUpdate(productID, warehouseID string) (*entity.StockBalance, error) {
	return nil, domain.ErrInvalidInput
}

// Upsert fuera de una transacción está prohibido.
func (r *StockRepository) Upsert(balance *entity.StockBalance) error {
	return domain.ErrInvalidInput
}

func (r *StockRepository) ListAll() ([]*entity.StockBalance, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]*entity.StockBalance, 0, len(r.store.balances))
	for _, b := range r.store.balances {
		out = append(out, copyBalance(b))
	}
	return out, nil
}
