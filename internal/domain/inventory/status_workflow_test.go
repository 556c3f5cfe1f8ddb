package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Bodega-api/internal/domain"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/inventory"
)

// Tabla completa de transiciones permitidas y prohibidas del workflow.
func TestCanTransition_Tabla(t *testing.T) {
	cases := []struct {
		from, to string
		ok       bool
	}{
		{entity.StatusDraft, entity.StatusWaiting, true},
		{entity.StatusWaiting, entity.StatusReady, true},
		{entity.StatusReady, entity.StatusDone, true},
		{entity.StatusDraft, entity.StatusCanceled, true},
		{entity.StatusWaiting, entity.StatusCanceled, true},
		{entity.StatusReady, entity.StatusCanceled, true},
		// saltos prohibidos
		{entity.StatusDraft, entity.StatusReady, false},
		{entity.StatusDraft, entity.StatusDone, false},
		{entity.StatusWaiting, entity.StatusDone, false},
		// terminales
		{entity.StatusDone, entity.StatusCanceled, false},
		{entity.StatusDone, entity.StatusDraft, false},
		{entity.StatusCanceled, entity.StatusDraft, false},
		{entity.StatusCanceled, entity.StatusDone, false},
		// retrocesos
		{entity.StatusReady, entity.StatusWaiting, false},
		{entity.StatusWaiting, entity.StatusDraft, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.ok, inventory.CanTransition(c.from, c.to),
			"transición %s→%s", c.from, c.to)
	}
}

// ready→done es la única transición que pide aplicar el ledger.
func TestTransition_ReadyADone_AplicaLedger(t *testing.T) {
	tx := &entity.Transaction{Status: entity.StatusReady}
	apply, err := inventory.Transition(tx, entity.StatusDone)
	require.NoError(t, err)
	assert.True(t, apply, "ready→done debe pedir la mutación del ledger")
	assert.Equal(t, entity.StatusDone, tx.Status)
}

// done→done repetido es no-op: no error y nunca una segunda aplicación.
func TestTransition_DoneADone_Idempotente(t *testing.T) {
	tx := &entity.Transaction{Status: entity.StatusReady}
	_, err := inventory.Transition(tx, entity.StatusDone)
	require.NoError(t, err)

	apply, err := inventory.Transition(tx, entity.StatusDone)
	require.NoError(t, err)
	assert.False(t, apply, "done→done no debe volver a aplicar el ledger")
	assert.Equal(t, entity.StatusDone, tx.Status)
}

// Cancelar una transacción done está prohibido: la reversa es una transacción
// compensatoria nueva, no una mutación del historial.
func TestTransition_CancelarDone_Prohibido(t *testing.T) {
	tx := &entity.Transaction{Status: entity.StatusDone}
	_, err := inventory.Transition(tx, entity.StatusCanceled)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Equal(t, entity.StatusDone, tx.Status, "el estado no debe cambiar en error")
}

func TestTransition_EstadoDestinoDesconocido(t *testing.T) {
	tx := &entity.Transaction{Status: entity.StatusDraft}
	_, err := inventory.Transition(tx, "archived")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

// AdvanceToDone recorre draft→waiting→ready→done y pide aplicar el ledger
// exactamente una vez.
func TestAdvanceToDone_DesdeDraft(t *testing.T) {
	tx := &entity.Transaction{Status: entity.StatusDraft}
	apply, err := inventory.AdvanceToDone(tx)
	require.NoError(t, err)
	assert.True(t, apply)
	assert.Equal(t, entity.StatusDone, tx.Status)
}

func TestAdvanceToDone_DesdeDone_NoOp(t *testing.T) {
	tx := &entity.Transaction{Status: entity.StatusDone}
	apply, err := inventory.AdvanceToDone(tx)
	require.NoError(t, err)
	assert.False(t, apply)
}

func TestAdvanceToDone_DesdeCanceled_Error(t *testing.T) {
	tx := &entity.Transaction{Status: entity.StatusCanceled}
	_, err := inventory.AdvanceToDone(tx)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

// ── ApplyDelta ────────────────────────────────────────────────────────────────

func TestApplyDelta_Suma(t *testing.T) {
	got, err := inventory.ApplyDelta(10, 5, false)
	require.NoError(t, err)
	assert.Equal(t, int64(15), got)
}

func TestApplyDelta_SaldoNegativoSinBackorders(t *testing.T) {
	_, err := inventory.ApplyDelta(15, -20, false)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestApplyDelta_SaldoNegativoConBackorders(t *testing.T) {
	got, err := inventory.ApplyDelta(15, -20, true)
	require.NoError(t, err)
	assert.Equal(t, int64(-5), got)
}

func TestApplyDelta_ExactamenteCero(t *testing.T) {
	got, err := inventory.ApplyDelta(7, -7, false)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got)
}
