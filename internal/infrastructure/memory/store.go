// Package memory implementa los puertos de persistencia sobre estructuras en
// memoria. Mismo contrato que el driver de postgres (atomicidad vía TxRunner,
// bloqueo con espera acotada, snapshot consistente para el dashboard) pero sin
// dependencias externas: útil en desarrollo y como arnés de tests del motor.
package memory

import (
	"sync"
	"time"

	"github.com/jhoicas/Bodega-api/internal/domain/entity"
)

type stockKey struct {
	productID   string
	warehouseID string
}

// Store contiene todo el estado en memoria. Las lecturas van bajo RLock; las
// escrituras del motor pasan por el TxRunner, que serializa escritores con un
// semáforo de espera acotada y aplica los cambios bajo el lock de escritura.
type Store struct {
	mu sync.RWMutex

	// writeSem serializa las transacciones de escritura del motor. La espera
	// por el semáforo está acotada por lockTimeout; al vencerse la operación
	// falla con ErrBusy en vez de colgar.
	writeSem    chan struct{}
	lockTimeout time.Duration

	products     map[string]*entity.Product
	categories   map[string]*entity.Category
	warehouses   map[string]*entity.Warehouse
	users        map[string]*entity.User
	usersByEmail map[string]string // email -> userID

	balances     map[stockKey]*entity.StockBalance
	transactions map[string]*entity.Transaction
}

// NewStore crea un store vacío. lockTimeout acota la espera por el turno de
// escritura del TxRunner.
func NewStore(lockTimeout time.Duration) *Store {
	if lockTimeout <= 0 {
		lockTimeout = 3 * time.Second
	}
	return &Store{
		writeSem:     make(chan struct{}, 1),
		lockTimeout:  lockTimeout,
		products:     make(map[string]*entity.Product),
		categories:   make(map[string]*entity.Category),
		warehouses:   make(map[string]*entity.Warehouse),
		users:        make(map[string]*entity.User),
		usersByEmail: make(map[string]string),
		balances:     make(map[stockKey]*entity.StockBalance),
		transactions: make(map[string]*entity.Transaction),
	}
}

// copias defensivas: nada fuera del store debe aliasear sus mapas.

func copyProduct(p *entity.Product) *entity.Product {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

func copyCategory(c *entity.Category) *entity.Category {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}

func copyWarehouse(w *entity.Warehouse) *entity.Warehouse {
	if w == nil {
		return nil
	}
	c := *w
	return &c
}

func copyUser(u *entity.User) *entity.User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}

func copyBalance(b *entity.StockBalance) *entity.StockBalance {
	if b == nil {
		return nil
	}
	c := *b
	return &c
}

func copyTransaction(t *entity.Transaction) *entity.Transaction {
	if t == nil {
		return nil
	}
	c := *t
	if t.Difference != nil {
		d := *t.Difference
		c.Difference = &d
	}
	return &c
}
