package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

const transactionColumns = `id, type, reference, product_id, quantity,
		warehouse_id, from_warehouse_id, to_warehouse_id,
		status, difference, notes, created_by, created_at`

// TransactionRepo implementación del puerto TransactionRepository sobre
// PostgreSQL (usable con pool o tx). Cuando está atado a una transacción del
// TxRunner, GetByID bloquea la fila (FOR UPDATE) para que la decisión del
// workflow se tome sobre el estado actual, no sobre una lectura vieja.
type TransactionRepo struct {
	q          Querier
	lockOnRead bool
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

func newTxBoundTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q, lockOnRead: true}
}

// Create persiste una transacción nueva.
func (r *TransactionRepo) Create(tx *entity.Transaction) error {
	query := `
		INSERT INTO inventory_transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.Type, tx.Reference, tx.ProductID, tx.Quantity,
		nullIfEmpty(tx.WarehouseID), nullIfEmpty(tx.FromWarehouseID), nullIfEmpty(tx.ToWarehouseID),
		tx.Status, tx.Difference, tx.Notes, nullIfEmpty(tx.CreatedBy), tx.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByID obtiene una transacción por ID (nil si no existe).
func (r *TransactionRepo) GetByID(id string) (*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM inventory_transactions WHERE id = $1`
	if r.lockOnRead {
		query += ` FOR UPDATE`
	}
	tx, err := scanTransaction(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return tx, nil
}

// List devuelve transacciones filtradas, ordenadas por created_at desc con
// empates por id desc.
func (r *TransactionRepo) List(filter repository.TransactionFilter) ([]*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM inventory_transactions WHERE 1=1`
	args := []any{}
	n := 0
	next := func(v any) string {
		n++
		args = append(args, v)
		return fmt.Sprintf("$%d", n)
	}

	if filter.Type != "" {
		query += ` AND type = ` + next(filter.Type)
	}
	if filter.Status != "" {
		query += ` AND status = ` + next(filter.Status)
	}
	if filter.Warehouse != "" {
		ph := next(filter.Warehouse)
		query += ` AND (warehouse_id = ` + ph + ` OR from_warehouse_id = ` + ph + ` OR to_warehouse_id = ` + ph + `)`
	}
	query += ` ORDER BY created_at DESC, id DESC`
	if filter.Limit > 0 {
		query += ` LIMIT ` + next(filter.Limit)
	}
	if filter.Offset > 0 {
		query += ` OFFSET ` + next(filter.Offset)
	}

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var list []*entity.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, tx)
	}
	return list, rows.Err()
}

// UpdateStatus persiste el estado (y difference, para ajustes que entran a done).
func (r *TransactionRepo) UpdateStatus(tx *entity.Transaction) error {
	query := `
		UPDATE inventory_transactions SET status = $2, difference = $3
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, tx.ID, tx.Status, tx.Difference)
	if err != nil {
		return fmt.Errorf("update transaction status: %w", err)
	}
	return nil
}

// ExistsReference indica si ya hay una transacción del tipo con esa referencia.
func (r *TransactionRepo) ExistsReference(txType, ref string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM inventory_transactions WHERE type = $1 AND reference = $2)`,
		txType, ref,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists reference: %w", err)
	}
	return exists, nil
}

func scanTransaction(row pgx.Row) (*entity.Transaction, error) {
	var tx entity.Transaction
	var warehouse, from, to, createdBy *string
	err := row.Scan(
		&tx.ID, &tx.Type, &tx.Reference, &tx.ProductID, &tx.Quantity,
		&warehouse, &from, &to,
		&tx.Status, &tx.Difference, &tx.Notes, &createdBy, &tx.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	tx.WarehouseID = deref(warehouse)
	tx.FromWarehouseID = deref(from)
	tx.ToWarehouseID = deref(to)
	tx.CreatedBy = deref(createdBy)
	return &tx, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
