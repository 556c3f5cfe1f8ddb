package dto

import "time"

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	Name          string `json:"name"`
	SKU           string `json:"sku"`
	Description   string `json:"description,omitempty"`
	Category      string `json:"category"`
	UnitOfMeasure string `json:"unitOfMeasure"`
	ReorderLevel  int64  `json:"reorderLevel"`
	MaxStock      int64  `json:"maxStock"`
}

// UpdateProductRequest body para PUT /api/products/{id}.
// El SKU es inmutable una vez asignado y no aparece aquí.
type UpdateProductRequest struct {
	Name          *string `json:"name,omitempty"`
	Description   *string `json:"description,omitempty"`
	Category      *string `json:"category,omitempty"`
	UnitOfMeasure *string `json:"unitOfMeasure,omitempty"`
	ReorderLevel  *int64  `json:"reorderLevel,omitempty"`
	MaxStock      *int64  `json:"maxStock,omitempty"`
}

// ProductResponse representación de un producto en respuestas.
type ProductResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	SKU           string    `json:"sku"`
	Description   string    `json:"description,omitempty"`
	Category      string    `json:"category"`
	UnitOfMeasure string    `json:"unitOfMeasure"`
	ReorderLevel  int64     `json:"reorderLevel"`
	MaxStock      int64     `json:"maxStock"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// CreateCategoryRequest body para POST /api/products/categories.
type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CategoryResponse representación de una categoría en respuestas.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
