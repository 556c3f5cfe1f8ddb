package repository

import (
	"context"

	"github.com/jhoicas/Bodega-api/internal/domain/entity"
)

// DashboardSnapshot resultado crudo de la consulta del dashboard.
// Lo produce el repositorio desde UNA vista consistente de ledger + store de
// transacciones (misma transacción de lectura o mismo lock de lectura); el use
// case lo convierte en DTO.
type DashboardSnapshot struct {
	TotalProducts   int
	LowStockCount   int            // saldos 0 < q <= reorder_level en bodegas activas
	OutOfStockCount int            // saldos q == 0 en bodegas activas
	PendingByType   map[string]int // transacciones en draft|waiting|ready por tipo
	Recent          []*entity.Transaction
}

// AnalyticsRepository define las consultas de lectura para el dashboard.
// Las implementaciones son read-only y no bloquean a los escritores.
type AnalyticsRepository interface {
	// GetDashboardSnapshot toma una foto consistente del ledger y las
	// transacciones. Recent trae las 10 más recientes (created_at desc,
	// empates por id desc).
	GetDashboardSnapshot(ctx context.Context) (*DashboardSnapshot, error)
}
