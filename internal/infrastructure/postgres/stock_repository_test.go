package postgres_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Bodega-api/internal/infrastructure/postgres"
)

// ──────────────────────────────────────────────────────────────────────────────
// Querier de prueba: registra las sentencias emitidas en orden
// ──────────────────────────────────────────────────────────────────────────────

type recordingQuerier struct {
	statements []string
	rowQty     int64
}

func (q *recordingQuerier) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	q.statements = append(q.statements, sql)
	return pgconn.CommandTag{}, nil
}

func (q *recordingQuerier) Query(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
	q.statements = append(q.statements, sql)
	return nil, pgx.ErrNoRows
}

func (q *recordingQuerier) QueryRow(_ context.Context, sql string, _ ...any) pgx.Row {
	q.statements = append(q.statements, sql)
	return stubRow{qty: q.rowQty}
}

type stubRow struct {
	qty int64
}

func (r stubRow) Scan(dest ...any) error {
	for _, d := range dest {
		switch v := d.(type) {
		case *string:
			*v = "x"
		case *int64:
			*v = r.qty
		case *time.Time:
			*v = time.Time{}
		}
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// GetForUpdate: insert-then-lock
// ──────────────────────────────────────────────────────────────────────────────

// Una fila inexistente no se puede bloquear con SELECT FOR UPDATE: dos
// escritores concurrentes sobre una clave nueva leerían ambos el cero
// implícito y el segundo pisaría el saldo del primero. El repo debe
// materializar la fila (INSERT ... ON CONFLICT DO NOTHING) ANTES del SELECT
// FOR UPDATE, para que el segundo escritor espere en el índice único y relea
// el saldo commiteado.
func TestStockRepo_GetForUpdate_MaterializaAntesDeBloquear(t *testing.T) {
	q := &recordingQuerier{}
	repo := postgres.NewStockRepository(q)

	balance, err := repo.GetForUpdate("p1", "w1")
	require.NoError(t, err)
	require.NotNil(t, balance)
	assert.Equal(t, int64(0), balance.Quantity)

	require.Len(t, q.statements, 2)

	insert := q.statements[0]
	assert.Contains(t, insert, "INSERT INTO stock")
	assert.Contains(t, insert, "ON CONFLICT (product_id, warehouse_id) DO NOTHING")

	lock := q.statements[1]
	assert.Contains(t, lock, "FOR UPDATE")
	assert.True(t, strings.Contains(lock, "SELECT"), "la segunda sentencia debe ser el SELECT bloqueante")
}

func TestStockRepo_GetForUpdate_DevuelveElSaldoBloqueado(t *testing.T) {
	q := &recordingQuerier{rowQty: 42}
	repo := postgres.NewStockRepository(q)

	balance, err := repo.GetForUpdate("p1", "w1")
	require.NoError(t, err)
	assert.Equal(t, int64(42), balance.Quantity)
}
