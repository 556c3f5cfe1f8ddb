package repository

import "github.com/jhoicas/Bodega-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// El motor de inventario solo lo lee; el CRUD es del colaborador de maestros.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	List(limit, offset int) ([]*entity.Product, error)
	Count() (int, error)
	Delete(id string) error
}
