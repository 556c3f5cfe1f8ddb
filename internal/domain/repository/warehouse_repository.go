package repository

import "github.com/jhoicas/Bodega-api/internal/domain/entity"

// WarehouseRepository define el puerto de persistencia para Warehouse (DIP).
type WarehouseRepository interface {
	Create(warehouse *entity.Warehouse) error
	GetByID(id string) (*entity.Warehouse, error)
	Update(warehouse *entity.Warehouse) error
	// ListActive lista solo bodegas activas (las inactivas no aceptan movimientos).
	ListActive() ([]*entity.Warehouse, error)
	List() ([]*entity.Warehouse, error)
}
