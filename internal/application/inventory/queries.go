package inventory

import (
	"context"

	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/domain"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

const defaultListLimit = 50

// Get obtiene una transacción por ID, resuelta para display.
func (p *TransactionProcessor) Get(ctx context.Context, id string) (*dto.TransactionResponse, error) {
	tx, err := p.txRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, domain.ErrNotFound
	}
	return p.resolver.Resolve(tx)
}

// List lista transacciones con filtros opcionales por tipo, estado y bodega
// (la bodega coincide contra warehouse, fromWarehouse o toWarehouse), en orden
// createdAt desc con empates por id desc.
func (p *TransactionProcessor) List(ctx context.Context, filter repository.TransactionFilter) ([]dto.TransactionResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	txs, err := p.txRepo.List(filter)
	if err != nil {
		return nil, err
	}
	return p.resolver.ResolveAll(txs)
}
