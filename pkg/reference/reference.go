// Package reference genera referencias legibles para movimientos de inventario.
// Formato: <PREFIJO>-<timestamp base36>-<3 chars aleatorios>, en mayúsculas,
// ej. REC-K3J9Q2-ABC. La unicidad es best-effort (timestamp + aleatorio), no
// garantizada: un duplicado se advierte en logs, nunca se rechaza.
package reference

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/Bodega-api/internal/domain/entity"
)

const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// Prefijos por tipo de transacción.
var typePrefixes = map[string]string{
	entity.TransactionTypeReceipt:    "REC",
	entity.TransactionTypeDelivery:   "DEL",
	entity.TransactionTypeTransfer:   "TRF",
	entity.TransactionTypeAdjustment: "ADJ",
}

// Generate produce una referencia con el prefijo dado.
func Generate(prefix string) string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	var b strings.Builder
	for i := 0; i < 3; i++ {
		b.WriteByte(base36Alphabet[rand.Intn(len(base36Alphabet))])
	}
	return strings.ToUpper(fmt.Sprintf("%s-%s-%s", prefix, ts, b.String()))
}

// ForType produce una referencia con el prefijo estándar del tipo de
// transacción (REC, DEL, TRF, ADJ). Tipos desconocidos usan el prefijo TXN.
func ForType(txType string) string {
	prefix, ok := typePrefixes[txType]
	if !ok {
		prefix = "TXN"
	}
	return Generate(prefix)
}
