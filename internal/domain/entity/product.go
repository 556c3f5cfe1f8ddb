package entity

import "time"

// Product representa un producto o SKU del catálogo.
// No guarda stock: el stock vive por bodega en StockBalance y lo mantiene el ledger.
type Product struct {
	ID            string
	SKU           string // código único, inmutable una vez asignado
	Name          string
	Description   string
	CategoryID    string
	UnitOfMeasure string
	ReorderLevel  int64 // umbral de stock bajo (>= 0)
	MaxStock      int64 // capacidad sugerida, solo informativa
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
