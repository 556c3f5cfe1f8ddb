package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

// AnalyticsRepository consultas de lectura para el dashboard.
type AnalyticsRepository struct {
	store *Store
}

// NewAnalyticsRepository construye el repositorio de analítica.
func NewAnalyticsRepository(store *Store) *AnalyticsRepository {
	return &AnalyticsRepository{store: store}
}

// GetDashboardSnapshot toma la foto completa bajo un único RLock, de modo que
// los contadores y la lista de recientes salen de la misma vista del estado:
// ningún commit concurrente puede verse a medias.
func (r *AnalyticsRepository) GetDashboardSnapshot(ctx context.Context) (*repository.DashboardSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	snap := &repository.DashboardSnapshot{
		TotalProducts: len(r.store.products),
		PendingByType: make(map[string]int),
	}

	// Saldos: solo bodegas activas cuentan para alertas de stock.
	for key, balance := range r.store.balances {
		wh, ok := r.store.warehouses[key.warehouseID]
		if !ok || !wh.IsActive {
			continue
		}
		product, ok := r.store.products[key.productID]
		if !ok {
			continue
		}
		switch {
		case balance.Quantity == 0:
			snap.OutOfStockCount++
		case balance.Quantity > 0 && balance.Quantity <= product.ReorderLevel:
			snap.LowStockCount++
		}
	}

	recent := make([]*entity.Transaction, 0, len(r.store.transactions))
	for _, tx := range r.store.transactions {
		switch tx.Status {
		case entity.StatusDraft, entity.StatusWaiting, entity.StatusReady:
			snap.PendingByType[tx.Type]++
		}
		recent = append(recent, copyTransaction(tx))
	}

	sort.Slice(recent, func(i, j int) bool {
		if !recent[i].CreatedAt.Equal(recent[j].CreatedAt) {
			return recent[i].CreatedAt.After(recent[j].CreatedAt)
		}
		return recent[i].ID > recent[j].ID
	})
	if len(recent) > 10 {
		recent = recent[:10]
	}
	snap.Recent = recent

	return snap, nil
}
