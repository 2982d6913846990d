package dto

import "github.com/shopspring/decimal"

// CreateProductRequest body para POST /api/products. Stock es el inicial;
// después de la creación el campo solo cambia a través de ventas y órdenes.
type CreateProductRequest struct {
	SKU         string          `json:"sku" validate:"required"`
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Category    string          `json:"category" validate:"required"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock" validate:"gte=0"`
	ImageURL    string          `json:"image_url"`
	BranchID    string          `json:"branch_id" validate:"required"`
}

// UpdateProductRequest body para PUT /api/products/:id. No incluye stock:
// el stock se mueve únicamente con reservas/liberaciones.
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Category    *string          `json:"category"`
	Price       *decimal.Decimal `json:"price"`
	ImageURL    *string          `json:"image_url"`
}

// ProductResponse producto del catálogo.
type ProductResponse struct {
	ID          string          `json:"id"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	ImageURL    string          `json:"image_url,omitempty"`
	BranchID    string          `json:"branch_id"`
}
