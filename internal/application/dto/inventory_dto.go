package dto

import "time"

// CreateReceiptRequest body para POST /api/inventory/receipt.
// Hold deja la transacción en draft sin tocar el ledger (ver workflow).
type CreateReceiptRequest struct {
	Product   string `json:"product"`
	Quantity  int64  `json:"quantity"`
	Warehouse string `json:"warehouse"`
	Reference string `json:"reference,omitempty"`
	Notes     string `json:"notes,omitempty"`
	Hold      bool   `json:"hold,omitempty"`
}

// CreateDeliveryRequest body para POST /api/inventory/delivery.
type CreateDeliveryRequest struct {
	Product   string `json:"product"`
	Quantity  int64  `json:"quantity"`
	Warehouse string `json:"warehouse"`
	Reference string `json:"reference,omitempty"`
	Notes     string `json:"notes,omitempty"`
	Hold      bool   `json:"hold,omitempty"`
}

// CreateTransferRequest body para POST /api/inventory/transfer.
type CreateTransferRequest struct {
	Product       string `json:"product"`
	Quantity      int64  `json:"quantity"`
	FromWarehouse string `json:"fromWarehouse"`
	ToWarehouse   string `json:"toWarehouse"`
	Reference     string `json:"reference,omitempty"`
	Notes         string `json:"notes,omitempty"`
	Hold          bool   `json:"hold,omitempty"`
}

// CreateAdjustmentRequest body para POST /api/inventory/adjustment.
// Quantity es la cantidad CONTADA en el inventario físico (puede ser cero,
// nunca negativa); va como puntero para distinguir "cero" de "ausente".
type CreateAdjustmentRequest struct {
	Product   string `json:"product"`
	Quantity  *int64 `json:"quantity"`
	Warehouse string `json:"warehouse"`
	Reference string `json:"reference,omitempty"`
	Notes     string `json:"notes,omitempty"`
	Hold      bool   `json:"hold,omitempty"`
}

// ChangeStatusRequest body para POST /api/inventory/{id}/status.
type ChangeStatusRequest struct {
	Status string `json:"status"`
}

// ProductRef referencia resuelta de producto en respuestas.
type ProductRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	SKU  string `json:"sku"`
}

// WarehouseRef referencia resuelta de bodega en respuestas.
type WarehouseRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// UserRef referencia resuelta del actor en respuestas.
type UserRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TransactionResponse transacción con referencias resueltas para display.
type TransactionResponse struct {
	ID            string        `json:"id"`
	Type          string        `json:"type"`
	Reference     string        `json:"reference"`
	Product       ProductRef    `json:"product"`
	Quantity      int64         `json:"quantity"`
	Warehouse     *WarehouseRef `json:"warehouse,omitempty"`
	FromWarehouse *WarehouseRef `json:"fromWarehouse,omitempty"`
	ToWarehouse   *WarehouseRef `json:"toWarehouse,omitempty"`
	Status        string        `json:"status"`
	Difference    *int64        `json:"difference,omitempty"`
	Notes         string        `json:"notes,omitempty"`
	CreatedBy     UserRef       `json:"createdBy"`
	CreatedAt     time.Time     `json:"createdAt"`
}
