package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// GetDashboardSnapshot corre todas las consultas del dashboard dentro de UNA
// transacción REPEATABLE READ de solo lectura: los contadores y la lista de
// recientes salen del mismo snapshot MVCC, sin bloquear a los escritores.
func (r *AnalyticsRepo) GetDashboardSnapshot(ctx context.Context) (*repository.DashboardSnapshot, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		return nil, fmt.Errorf("begin dashboard tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	snap := &repository.DashboardSnapshot{PendingByType: make(map[string]int)}

	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&snap.TotalProducts); err != nil {
		return nil, fmt.Errorf("dashboard count products: %w", err)
	}

	// Alertas de stock: solo cuentan saldos en bodegas activas.
	const stockAlerts = `
		SELECT
			COUNT(*) FILTER (WHERE s.quantity = 0)                                         AS out_of_stock,
			COUNT(*) FILTER (WHERE s.quantity > 0 AND s.quantity <= p.reorder_level)       AS low_stock
		FROM stock s
		JOIN products   p ON p.id = s.product_id
		JOIN warehouses w ON w.id = s.warehouse_id
		WHERE w.is_active`
	if err := tx.QueryRow(ctx, stockAlerts).Scan(&snap.OutOfStockCount, &snap.LowStockCount); err != nil {
		return nil, fmt.Errorf("dashboard stock alerts: %w", err)
	}

	rows, err := tx.Query(ctx, `
		SELECT type, COUNT(*)
		FROM inventory_transactions
		WHERE status IN ('draft', 'waiting', 'ready')
		GROUP BY type`)
	if err != nil {
		return nil, fmt.Errorf("dashboard pending: %w", err)
	}
	for rows.Next() {
		var txType string
		var count int
		if err := rows.Scan(&txType, &count); err != nil {
			rows.Close()
			return nil, fmt.Errorf("dashboard pending scan: %w", err)
		}
		snap.PendingByType[txType] = count
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("dashboard pending rows: %w", err)
	}

	recentRows, err := tx.Query(ctx, `
		SELECT `+transactionColumns+`
		FROM inventory_transactions
		ORDER BY created_at DESC, id DESC
		LIMIT 10`)
	if err != nil {
		return nil, fmt.Errorf("dashboard recent: %w", err)
	}
	defer recentRows.Close()
	for recentRows.Next() {
		recent, err := scanTransaction(recentRows)
		if err != nil {
			return nil, fmt.Errorf("dashboard recent scan: %w", err)
		}
		snap.Recent = append(snap.Recent, recent)
	}
	if err := recentRows.Err(); err != nil {
		return nil, fmt.Errorf("dashboard recent rows: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit dashboard tx: %w", err)
	}
	return snap, nil
}
