package inventory

import (
	"github.com/jhoicas/Bodega-api/internal/domain"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
)

// Máquina de estados del ciclo de vida de una transacción (servicio de dominio).
//
//	draft → waiting → ready → done
//	draft|waiting|ready → canceled
//
// done y canceled son terminales. La mutación del ledger ocurre exactamente una
// vez, al entrar a done; repetir done→done es un no-op, no un error. Revertir
// una transacción done se expresa como una transacción compensatoria nueva,
// nunca mutando el historial.
var transitions = map[string][]string{
	entity.StatusDraft:   {entity.StatusWaiting, entity.StatusCanceled},
	entity.StatusWaiting: {entity.StatusReady, entity.StatusCanceled},
	entity.StatusReady:   {entity.StatusDone, entity.StatusCanceled},
}

// nextOnPath es el sucesor en el camino feliz hacia done.
var nextOnPath = map[string]string{
	entity.StatusDraft:   entity.StatusWaiting,
	entity.StatusWaiting: entity.StatusReady,
	entity.StatusReady:   entity.StatusDone,
}

// CanTransition indica si el cambio from→to está permitido por el workflow.
func CanTransition(from, to string) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Transition aplica el cambio de estado sobre tx. Devuelve applyLedger=true
// solo en la transición ready→done: ese es el único punto donde el caller debe
// ejecutar la mutación del ledger. done→done repetido es no-op idempotente
// (applyLedger=false, sin error). Cualquier otra salida desde done o canceled
// retorna ErrInvalidTransition.
func Transition(tx *entity.Transaction, to string) (applyLedger bool, err error) {
	if !entity.IsValidStatus(to) {
		return false, domain.ErrInvalidTransition
	}
	if tx.Status == entity.StatusDone && to == entity.StatusDone {
		return false, nil
	}
	if !CanTransition(tx.Status, to) {
		return false, domain.ErrInvalidTransition
	}
	applyLedger = tx.Status == entity.StatusReady && to == entity.StatusDone
	tx.Status = to
	return applyLedger, nil
}

// AdvanceToDone recorre el camino feliz desde el estado actual hasta done.
// Devuelve true si en el recorrido se cruzó ready→done (el caller debe aplicar
// el ledger). Si el estado actual no puede llegar a done, ErrInvalidTransition.
func AdvanceToDone(tx *entity.Transaction) (applyLedger bool, err error) {
	if tx.Status == entity.StatusDone {
		return false, nil
	}
	for tx.Status != entity.StatusDone {
		next, ok := nextOnPath[tx.Status]
		if !ok {
			return false, domain.ErrInvalidTransition
		}
		apply, err := Transition(tx, next)
		if err != nil {
			return false, err
		}
		applyLedger = applyLedger || apply
	}
	return applyLedger, nil
}
