package entity

import "time"

// User representa un usuario del sistema. El motor de inventario solo usa su ID
// como actor (CreatedBy) en las transacciones.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
