package memory

import (
	"sort"

	"github.com/jhoicas/Bodega-api/internal/domain"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

// TransactionRepository acceso de lectura a transacciones fuera del TxRunner.
type TransactionRepository struct {
	store *Store
}

// NewTransactionRepository construye el repositorio de transacciones.
func NewTransactionRepository(store *Store) *TransactionRepository {
	return &TransactionRepository{store: store}
}

// Create fuera de una transacción está prohibido: toda escritura del motor
// pasa por el TxRunner.
func (r *TransactionRepository) Create(tx *entity.Transaction) error {
	return domain.ErrInvalidInput
}

func (r *TransactionRepository) GetByID(id string) (*entity.Transaction, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return copyTransaction(r.store.transactions[id]), nil
}

// List devuelve transacciones filtradas, ordenadas por created_at desc con
// empates por id desc.
func (r *TransactionRepository) List(filter repository.TransactionFilter) ([]*entity.Transaction, error) {
	r.store.mu.RLock()
	matched := make([]*entity.Transaction, 0, len(r.store.transactions))
	for _, tx := range r.store.transactions {
		if filter.Type != "" && tx.Type != filter.Type {
			continue
		}
		if filter.Status != "" && tx.Status != filter.Status {
			continue
		}
		if filter.Warehouse != "" &&
			tx.WarehouseID != filter.Warehouse &&
			tx.FromWarehouseID != filter.Warehouse &&
			tx.ToWarehouseID != filter.Warehouse {
			continue
		}
		matched = append(matched, copyTransaction(tx))
	}
	r.store.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID > matched[j].ID
	})

	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	if offset >= len(matched) {
		return []*entity.Transaction{}, nil
	}
	matched = matched[offset:]
	if filter.Limit > 0 && filter.Limit < len(matched) {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}

// UpdateStatus fuera de una transacción está prohibido.
func (r *TransactionRepository) UpdateStatus(tx *entity.Transaction) error {
	return domain.ErrInvalidInput
}

func (r *TransactionRepository) ExistsReference(txType, ref string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, tx := range r.store.transactions {
		if tx.Type == txType && tx.Reference == ref {
			return true, nil
		}
	}
	return false, nil
}
