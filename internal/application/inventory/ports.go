package inventory

import (
	"context"

	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción del store, pasando
// repositorios atados a esa transacción. Garantiza atomicidad para el motor de
// inventario: o se aplican todas las escrituras de fn, o ninguna. Las claves de
// stock se bloquean vía StockRepository.GetForUpdate; la espera por un bloqueo
// está acotada y se reporta como ErrBusy, nunca cuelga.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.StockRepository,
		txRepo repository.TransactionRepository,
	) error) error
}
