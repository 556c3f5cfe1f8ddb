package inventory

import (
	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

// Resolver convierte transacciones en DTOs con nombres de producto, bodega y
// actor resueltos para display. Las lecturas son stale-tolerant: no participan
// en la transacción del store.
type Resolver struct {
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	userRepo      repository.UserRepository
}

// NewResolver construye el resolver.
func NewResolver(
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	userRepo repository.UserRepository,
) *Resolver {
	return &Resolver{productRepo: productRepo, warehouseRepo: warehouseRepo, userRepo: userRepo}
}

// Resolve resuelve una sola transacción.
func (r *Resolver) Resolve(tx *entity.Transaction) (*dto.TransactionResponse, error) {
	out, err := r.ResolveAll([]*entity.Transaction{tx})
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

// ResolveAll resuelve un lote, cacheando cada entidad referenciada una sola vez.
func (r *Resolver) ResolveAll(txs []*entity.Transaction) ([]dto.TransactionResponse, error) {
	products := map[string]*entity.Product{}
	warehouses := map[string]*entity.Warehouse{}
	users := map[string]*entity.User{}

	out := make([]dto.TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		product, err := r.product(products, tx.ProductID)
		if err != nil {
			return nil, err
		}
		resp := dto.TransactionResponse{
			ID:         tx.ID,
			Type:       tx.Type,
			Reference:  tx.Reference,
			Product:    product,
			Quantity:   tx.Quantity,
			Status:     tx.Status,
			Difference: tx.Difference,
			Notes:      tx.Notes,
			CreatedAt:  tx.CreatedAt,
		}
		if resp.Warehouse, err = r.warehouse(warehouses, tx.WarehouseID); err != nil {
			return nil, err
		}
		if resp.FromWarehouse, err = r.warehouse(warehouses, tx.FromWarehouseID); err != nil {
			return nil, err
		}
		if resp.ToWarehouse, err = r.warehouse(warehouses, tx.ToWarehouseID); err != nil {
			return nil, err
		}
		if resp.CreatedBy, err = r.user(users, tx.CreatedBy); err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

func (r *Resolver) product(cache map[string]*entity.Product, id string) (dto.ProductRef, error) {
	if id == "" {
		return dto.ProductRef{}, nil
	}
	p, ok := cache[id]
	if !ok {
		var err error
		if p, err = r.productRepo.GetByID(id); err != nil {
			return dto.ProductRef{}, err
		}
		cache[id] = p
	}
	if p == nil {
		// Producto borrado después de la transacción: se conserva el ID.
		return dto.ProductRef{ID: id}, nil
	}
	return dto.ProductRef{ID: p.ID, Name: p.Name, SKU: p.SKU}, nil
}

func (r *Resolver) warehouse(cache map[string]*entity.Warehouse, id string) (*dto.WarehouseRef, error) {
	if id == "" {
		return nil, nil
	}
	w, ok := cache[id]
	if !ok {
		var err error
		if w, err = r.warehouseRepo.GetByID(id); err != nil {
			return nil, err
		}
		cache[id] = w
	}
	if w == nil {
		return &dto.WarehouseRef{ID: id}, nil
	}
	return &dto.WarehouseRef{ID: w.ID, Name: w.Name}, nil
}

func (r *Resolver) user(cache map[string]*entity.User, id string) (dto.UserRef, error) {
	if id == "" {
		return dto.UserRef{}, nil
	}
	u, ok := cache[id]
	if !ok {
		var err error
		if u, err = r.userRepo.GetByID(id); err != nil {
			return dto.UserRef{}, err
		}
		cache[id] = u
	}
	if u == nil {
		return dto.UserRef{ID: id}, nil
	}
	return dto.UserRef{ID: u.ID, Name: u.Name}, nil
}
