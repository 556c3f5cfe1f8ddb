package memory

import (
	"sort"

	"github.com/jhoicas/Bodega-api/internal/domain/entity"
)

// WarehouseRepository implementación en memoria del puerto de bodegas.
type WarehouseRepository struct {
	store *Store
}

// NewWarehouseRepository construye el repositorio de bodegas.
func NewWarehouseRepository(store *Store) *WarehouseRepository {
	return &WarehouseRepository{store: store}
}

func (r *WarehouseRepository) Create(warehouse *entity.Warehouse) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.warehouses[warehouse.ID] = copyWarehouse(warehouse)
	return nil
}

func (r *WarehouseRepository) GetByID(id string) (*entity.Warehouse, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return copyWarehouse(r.store.warehouses[id]), nil
}

func (r *WarehouseRepository) Update(warehouse *entity.Warehouse) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.warehouses[warehouse.ID] = copyWarehouse(warehouse)
	return nil
}

func (r *WarehouseRepository) ListActive() ([]*entity.Warehouse, error) {
	return r.list(true)
}

func (r *WarehouseRepository) List() ([]*entity.Warehouse, error) {
	return r.list(false)
}

func (r *WarehouseRepository) list(onlyActive bool) ([]*entity.Warehouse, error) {
	r.store.mu.RLock()
	all := make([]*entity.Warehouse, 0, len(r.store.warehouses))
	for _, w := range r.store.warehouses {
		if onlyActive && !w.IsActive {
			continue
		}
		all = append(all, copyWarehouse(w))
	}
	r.store.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all, nil
}
