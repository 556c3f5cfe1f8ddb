package inventory

import "github.com/jhoicas/Bodega-api/internal/domain"

// ApplyDelta calcula el nuevo saldo de una clave (producto, bodega) del ledger
// (servicio de dominio). Falla con ErrInsufficientStock si el resultado sería
// negativo y los backorders están deshabilitados; el caller no debe persistir
// nada en ese caso.
func ApplyDelta(current, delta int64, allowBackorders bool) (int64, error) {
	next := current + delta
	if next < 0 && !allowBackorders {
		return 0, domain.ErrInsufficientStock
	}
	return next, nil
}
