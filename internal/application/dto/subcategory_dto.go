package dto

import "time"

// CreateSubcategoryRequest entrada para crear una subcategoría.
type CreateSubcategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"` // ID de la categoría padre
}

// UpdateSubcategoryRequest entrada para actualización parcial.
type UpdateSubcategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
}

// SubcategoryDTO referencia resuelta de una subcategoría en respuestas de productos.
type SubcategoryDTO struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

// SubcategoryResponse salida de una subcategoría.
type SubcategoryResponse struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Category    *CategoryDTO `json:"category,omitempty"`
	CreatedBy   *UserDTO     `json:"createdBy,omitempty"`
	UpdatedBy   *UserDTO     `json:"updatedBy,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}
