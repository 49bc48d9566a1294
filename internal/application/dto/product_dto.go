package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. Stock es puntero para
// distinguir "0 provisto" de "no provisto".
type CreateProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       *int            `json:"stock"`
	Category    string          `json:"category"`
	Subcategory string          `json:"subcategory"`
	Images      []string        `json:"images"`
}

// UpdateProductRequest entrada para actualización parcial. Price y Stock se
// aplican tal cual cuando vienen presentes, sin revalidación.
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
	Category    *string          `json:"category"`
	Subcategory *string          `json:"subcategory"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Category    *CategoryDTO    `json:"category,omitempty"`
	Subcategory *SubcategoryDTO `json:"subcategory,omitempty"`
	Images      []string        `json:"images,omitempty"`
	CreatedBy   *UserDTO        `json:"createdBy,omitempty"`
	UpdatedBy   *UserDTO        `json:"updatedBy,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
