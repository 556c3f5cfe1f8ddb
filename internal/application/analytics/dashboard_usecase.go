// Package analytics contiene el caso de uso read-only del dashboard de
// inventario. No posee estado: solo lee ledger y transacciones.
package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/application/inventory"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

// DashboardUseCase deriva los resúmenes del dashboard desde una foto
// consistente del ledger y el store de transacciones. Tolera consistencia
// eventual: no bloquea a los escritores; la resolución de nombres para display
// ocurre después de la foto y puede ser levemente stale.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	resolver      *inventory.Resolver
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository, resolver *inventory.Resolver) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, resolver: resolver}
}

// GetSummary construye el DashboardResponse.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardResponse, error) {
	snap, err := uc.analyticsRepo.GetDashboardSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: snapshot: %w", err)
	}

	recent, err := uc.resolver.ResolveAll(snap.Recent)
	if err != nil {
		return nil, fmt.Errorf("dashboard: resolver transacciones recientes: %w", err)
	}

	return &dto.DashboardResponse{
		TotalProducts:      snap.TotalProducts,
		LowStockProducts:   snap.LowStockCount,
		OutOfStockProducts: snap.OutOfStockCount,
		PendingReceipts:    snap.PendingByType[entity.TransactionTypeReceipt],
		PendingDeliveries:  snap.PendingByType[entity.TransactionTypeDelivery],
		ScheduledTransfers: snap.PendingByType[entity.TransactionTypeTransfer],
		PendingAdjustments: snap.PendingByType[entity.TransactionTypeAdjustment],
		RecentTransactions: recent,
	}, nil
}
