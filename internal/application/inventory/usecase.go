package inventory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/domain"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	domaininv "github.com/jhoicas/Bodega-api/internal/domain/inventory"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
	"github.com/jhoicas/Bodega-api/pkg/reference"
)

// TransactionProcessor valida una solicitud de movimiento, calcula los deltas
// del ledger según el tipo, conduce el workflow de estados y persiste el
// registro, todo de forma transaccional. Es el único dueño de la creación de
// transacciones y de sus cambios de estado.
//
// Toda validación ocurre ANTES de tocar el ledger: en cualquier camino de error
// hay cero mutaciones. Una llamada exitosa produce exactamente una mutación del
// ledger (dos para transfer, como unidad atómica), aplicada al entrar a done.
type TransactionProcessor struct {
	txRunner        TxRunner
	productRepo     repository.ProductRepository
	warehouseRepo   repository.WarehouseRepository
	txRepo          repository.TransactionRepository
	resolver        *Resolver
	allowBackorders bool
}

// NewTransactionProcessor construye el procesador.
// allowBackorders habilita saldos negativos (deshabilitado por defecto).
func NewTransactionProcessor(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	userRepo repository.UserRepository,
	txRepo repository.TransactionRepository,
	allowBackorders bool,
) *TransactionProcessor {
	return &TransactionProcessor{
		txRunner:        txRunner,
		productRepo:     productRepo,
		warehouseRepo:   warehouseRepo,
		txRepo:          txRepo,
		resolver:        NewResolver(productRepo, warehouseRepo, userRepo),
		allowBackorders: allowBackorders,
	}
}

// CreateReceipt registra una entrada: delta = +quantity en warehouse.
func (p *TransactionProcessor) CreateReceipt(ctx context.Context, in dto.CreateReceiptRequest, actorID string) (*dto.TransactionResponse, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if err := p.checkProduct(in.Product); err != nil {
		return nil, err
	}
	if err := p.checkWarehouse(in.Warehouse); err != nil {
		return nil, err
	}
	tx := p.newTransaction(entity.TransactionTypeReceipt, in.Reference, in.Notes, actorID)
	tx.ProductID = in.Product
	tx.Quantity = in.Quantity
	tx.WarehouseID = in.Warehouse
	return p.commit(ctx, tx, in.Hold)
}

// CreateDelivery registra una salida: delta = −quantity en warehouse.
// Falla con ErrInsufficientStock si el saldo quedaría negativo.
func (p *TransactionProcessor) CreateDelivery(ctx context.Context, in dto.CreateDeliveryRequest, actorID string) (*dto.TransactionResponse, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if err := p.checkProduct(in.Product); err != nil {
		return nil, err
	}
	if err := p.checkWarehouse(in.Warehouse); err != nil {
		return nil, err
	}
	tx := p.newTransaction(entity.TransactionTypeDelivery, in.Reference, in.Notes, actorID)
	tx.ProductID = in.Product
	tx.Quantity = in.Quantity
	tx.WarehouseID = in.Warehouse
	return p.commit(ctx, tx, in.Hold)
}

// CreateTransfer registra un traslado: −quantity en fromWarehouse y +quantity
// en toWarehouse como UNA operación atómica multi-clave. El stock total del
// producto en el sistema no cambia, incluso ante fallos (o ambas piernas o
// ninguna).
func (p *TransactionProcessor) CreateTransfer(ctx context.Context, in dto.CreateTransferRequest, actorID string) (*dto.TransactionResponse, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if in.FromWarehouse == in.ToWarehouse {
		return nil, domain.ErrInvalidInput
	}
	if err := p.checkProduct(in.Product); err != nil {
		return nil, err
	}
	if err := p.checkWarehouse(in.FromWarehouse); err != nil {
		return nil, err
	}
	if err := p.checkWarehouse(in.ToWarehouse); err != nil {
		return nil, err
	}
	tx := p.newTransaction(entity.TransactionTypeTransfer, in.Reference, in.Notes, actorID)
	tx.ProductID = in.Product
	tx.Quantity = in.Quantity
	tx.FromWarehouseID = in.FromWarehouse
	tx.ToWarehouseID = in.ToWarehouse
	return p.commit(ctx, tx, in.Hold)
}

// CreateAdjustment registra un ajuste por conteo físico: el ledger queda
// exactamente en la cantidad contada (no un delta calculado afuera) y la
// transacción guarda difference = contada − saldo previo para auditoría.
func (p *TransactionProcessor) CreateAdjustment(ctx context.Context, in dto.CreateAdjustmentRequest, actorID string) (*dto.TransactionResponse, error) {
	if in.Quantity == nil || *in.Quantity < 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if err := p.checkProduct(in.Product); err != nil {
		return nil, err
	}
	if err := p.checkWarehouse(in.Warehouse); err != nil {
		return nil, err
	}
	tx := p.newTransaction(entity.TransactionTypeAdjustment, in.Reference, in.Notes, actorID)
	tx.ProductID = in.Product
	tx.Quantity = *in.Quantity
	tx.WarehouseID = in.Warehouse
	return p.commit(ctx, tx, in.Hold)
}

// ChangeStatus mueve una transacción existente por el workflow. Al entrar a
// done aplica la mutación del ledger (una sola vez); done→done repetido es
// no-op. Cancelar algo ya done retorna ErrInvalidTransition.
func (p *TransactionProcessor) ChangeStatus(ctx context.Context, id, target string) (*dto.TransactionResponse, error) {
	current, err := p.txRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	// Validación rápida fuera de la transacción; la decisión final se toma
	// adentro, con la fila bloqueada.
	if _, err := domaininv.Transition(&entity.Transaction{Status: current.Status}, target); err != nil {
		return nil, err
	}

	var result *entity.Transaction
	err = p.txRunner.Run(ctx, func(stockRepo repository.StockRepository, txRepo repository.TransactionRepository) error {
		tx, err := txRepo.GetByID(id)
		if err != nil {
			return err
		}
		if tx == nil {
			return domain.ErrNotFound
		}
		applyLedger, err := domaininv.Transition(tx, target)
		if err != nil {
			return err
		}
		if applyLedger {
			if err := p.applyLedger(stockRepo, tx, time.Now()); err != nil {
				return err
			}
		}
		if err := txRepo.UpdateStatus(tx); err != nil {
			return err
		}
		result = tx
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p.resolver.Resolve(result)
}

// ── internos ──────────────────────────────────────────────────────────────────

func (p *TransactionProcessor) checkProduct(id string) error {
	if id == "" {
		return domain.ErrNotFound
	}
	product, err := p.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return nil
}

func (p *TransactionProcessor) checkWarehouse(id string) error {
	if id == "" {
		return domain.ErrNotFound
	}
	wh, err := p.warehouseRepo.GetByID(id)
	if err != nil {
		return err
	}
	if wh == nil {
		return domain.ErrNotFound
	}
	if !wh.IsActive {
		return domain.ErrWarehouseInactive
	}
	return nil
}

func (p *TransactionProcessor) newTransaction(txType, ref, notes, actorID string) *entity.Transaction {
	if ref == "" {
		ref = reference.ForType(txType)
	} else if exists, err := p.txRepo.ExistsReference(txType, ref); err != nil {
		// La verificación de duplicados es informativa: un error del store no
		// frena la operación, pero tiene que quedar rastro.
		log.Warn().Err(err).Str("type", txType).Str("reference", ref).
			Msg("no se pudo verificar duplicado de referencia")
	} else if exists {
		// Referencia duplicada: condición no fatal, solo se advierte.
		log.Warn().Str("type", txType).Str("reference", ref).
			Msg("referencia duplicada en transacción de inventario")
	}
	return &entity.Transaction{
		ID:        uuid.New().String(),
		Type:      txType,
		Reference: ref,
		Status:    entity.StatusDraft,
		Notes:     notes,
		CreatedBy: actorID,
		CreatedAt: time.Now(),
	}
}

// commit persiste la transacción nueva. Con hold=true queda en draft y el
// ledger no se toca; si no, recorre el workflow hasta done y aplica el ledger
// en la misma transacción del store que inserta el registro.
func (p *TransactionProcessor) commit(ctx context.Context, tx *entity.Transaction, hold bool) (*dto.TransactionResponse, error) {
	err := p.txRunner.Run(ctx, func(stockRepo repository.StockRepository, txRepo repository.TransactionRepository) error {
		if !hold {
			applyLedger, err := domaininv.AdvanceToDone(tx)
			if err != nil {
				return err
			}
			if applyLedger {
				if err := p.applyLedger(stockRepo, tx, tx.CreatedAt); err != nil {
					return err
				}
			}
		}
		return txRepo.Create(tx)
	})
	if err != nil {
		return nil, err
	}
	return p.resolver.Resolve(tx)
}

// applyLedger ejecuta la mutación del ledger para tx. Solo se invoca al entrar
// a done, con los repos atados a la transacción del store.
func (p *TransactionProcessor) applyLedger(stockRepo repository.StockRepository, tx *entity.Transaction, now time.Time) error {
	switch tx.Type {
	case entity.TransactionTypeReceipt:
		return p.applyDelta(stockRepo, tx.ProductID, tx.WarehouseID, tx.Quantity, now)

	case entity.TransactionTypeDelivery:
		return p.applyDelta(stockRepo, tx.ProductID, tx.WarehouseID, -tx.Quantity, now)

	case entity.TransactionTypeTransfer:
		return p.applyTransfer(stockRepo, tx, now)

	case entity.TransactionTypeAdjustment:
		balance, err := stockRepo.GetForUpdate(tx.ProductID, tx.WarehouseID)
		if err != nil {
			return err
		}
		diff := tx.Quantity - balance.Quantity
		balance.Quantity = tx.Quantity // el conteo físico manda
		balance.UpdatedAt = now
		if err := stockRepo.Upsert(balance); err != nil {
			return err
		}
		tx.Difference = &diff
		return nil
	}
	return domain.ErrInvalidInput
}

func (p *TransactionProcessor) applyDelta(stockRepo repository.StockRepository, productID, warehouseID string, delta int64, now time.Time) error {
	balance, err := stockRepo.GetForUpdate(productID, warehouseID)
	if err != nil {
		return err
	}
	next, err := domaininv.ApplyDelta(balance.Quantity, delta, p.allowBackorders)
	if err != nil {
		return err
	}
	balance.Quantity = next
	balance.UpdatedAt = now
	return stockRepo.Upsert(balance)
}

// applyTransfer bloquea ambas claves en orden fijo de warehouse (mismo
// producto) antes de mutar cualquiera, para que dos transfers cruzados entre
// las mismas bodegas no se bloqueen mutuamente. Si cualquiera de las dos
// piernas falla, ninguna se persiste (el TxRunner revierte).
func (p *TransactionProcessor) applyTransfer(stockRepo repository.StockRepository, tx *entity.Transaction, now time.Time) error {
	keys := []string{tx.FromWarehouseID, tx.ToWarehouseID}
	sort.Strings(keys)

	locked := make(map[string]*entity.StockBalance, 2)
	for _, wh := range keys {
		balance, err := stockRepo.GetForUpdate(tx.ProductID, wh)
		if err != nil {
			return err
		}
		locked[wh] = balance
	}

	origin, dest := locked[tx.FromWarehouseID], locked[tx.ToWarehouseID]
	newOrigin, err := domaininv.ApplyDelta(origin.Quantity, -tx.Quantity, p.allowBackorders)
	if err != nil {
		return err
	}
	origin.Quantity = newOrigin
	dest.Quantity += tx.Quantity
	origin.UpdatedAt = now
	dest.UpdatedAt = now

	if err := stockRepo.Upsert(origin); err != nil {
		return err
	}
	return stockRepo.Upsert(dest)
}
