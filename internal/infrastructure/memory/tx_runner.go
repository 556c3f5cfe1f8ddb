package memory

import (
	"context"
	"time"

	"github.com/jhoicas/Bodega-api/internal/domain"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

// TxRunner ejecuta fn contra repos staged: las escrituras se acumulan aparte y
// solo se vuelcan al store si fn retorna nil. Un único escritor a la vez; la
// espera por el turno está acotada por el lockTimeout del store y al vencerse
// retorna ErrBusy.
type TxRunner struct {
	store *Store
}

// NewTxRunner construye el runner transaccional sobre el store.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run implementa inventory.TxRunner.
func (r *TxRunner) Run(ctx context.Context, fn func(
	stockRepo repository.StockRepository,
	txRepo repository.TransactionRepository,
) error) error {
	timer := time.NewTimer(r.store.lockTimeout)
	defer timer.Stop()

	select {
	case r.store.writeSem <- struct{}{}:
	case <-timer.C:
		return domain.ErrBusy
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-r.store.writeSem }()

	stock := &txStockRepo{store: r.store, staged: make(map[stockKey]*entity.StockBalance)}
	txs := &txTransactionRepo{store: r.store, stagedUpdates: make(map[string]*entity.Transaction)}

	if err := fn(stock, txs); err != nil {
		return err
	}

	// Commit: volcado atómico bajo el lock de escritura del store.
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for key, balance := range stock.staged {
		r.store.balances[key] = copyBalance(balance)
	}
	for _, tx := range txs.stagedCreates {
		r.store.transactions[tx.ID] = copyTransaction(tx)
	}
	for id, tx := range txs.stagedUpdates {
		r.store.transactions[id] = copyTransaction(tx)
	}
	return nil
}

// txStockRepo vista del ledger atada a una transacción: lee del store pero
// escribe en staged. Como el semáforo ya serializa escritores, GetForUpdate no
// necesita bloqueo adicional por clave.
type txStockRepo struct {
	store  *Store
	staged map[stockKey]*entity.StockBalance
}

func (r *txStockRepo) Get(productID, warehouseID string) (*entity.StockBalance, error) {
	return r.GetForUpdate(productID, warehouseID)
}

func (r *txStockRepo) GetForUpdate(productID, warehouseID string) (*entity.StockBalance, error) {
	key := stockKey{productID, warehouseID}
	if staged, ok := r.staged[key]; ok {
		return copyBalance(staged), nil
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if current, ok := r.store.balances[key]; ok {
		return copyBalance(current), nil
	}
	// Clave nunca vista: saldo implícito en cero.
	return &entity.StockBalance{ProductID: productID, WarehouseID: warehouseID}, nil
}

func (r *txStockRepo) Upsert(balance *entity.StockBalance) error {
	key := stockKey{balance.ProductID, balance.WarehouseID}
	r.staged[key] = copyBalance(balance)
	return nil
}

func (r *txStockRepo) ListAll() ([]*entity.StockBalance, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]*entity.StockBalance, 0, len(r.store.balances))
	for _, b := range r.store.balances {
		out = append(out, copyBalance(b))
	}
	return out, nil
}

// txTransactionRepo vista del store de transacciones atada a una transacción.
type txTransactionRepo struct {
	store         *Store
	stagedCreates []*entity.Transaction
	stagedUpdates map[string]*entity.Transaction
}

func (r *txTransactionRepo) Create(tx *entity.Transaction) error {
	r.stagedCreates = append(r.stagedCreates, copyTransaction(tx))
	return nil
}

func (r *txTransactionRepo) GetByID(id string) (*entity.Transaction, error) {
	if staged, ok := r.stagedUpdates[id]; ok {
		return copyTransaction(staged), nil
	}
	for _, tx := range r.stagedCreates {
		if tx.ID == id {
			return copyTransaction(tx), nil
		}
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return copyTransaction(r.store.transactions[id]), nil
}

func (r *txTransactionRepo) List(filter repository.TransactionFilter) ([]*entity.Transaction, error) {
	return (&TransactionRepository{store: r.store}).List(filter)
}

func (r *txTransactionRepo) UpdateStatus(tx *entity.Transaction) error {
	r.stagedUpdates[tx.ID] = copyTransaction(tx)
	return nil
}

func (r *txTransactionRepo) ExistsReference(txType, ref string) (bool, error) {
	for _, tx := range r.stagedCreates {
		if tx.Type == txType && tx.Reference == ref {
			return true, nil
		}
	}
	return (&TransactionRepository{store: r.store}).ExistsReference(txType, ref)
}
