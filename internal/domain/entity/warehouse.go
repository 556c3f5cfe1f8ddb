package entity

import "time"

// Warehouse representa una bodega donde se almacena inventario.
// Una bodega inactiva no acepta movimientos nuevos.
type Warehouse struct {
	ID          string
	Name        string
	Location    string
	Description string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
