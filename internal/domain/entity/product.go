package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// Invariante: la subcategoría debe pertenecer a la categoría declarada
// (subcategory.category == product.category) al crear y al actualizar cualquiera de las dos.
type Product struct {
	ID            string
	Name          string
	Description   string
	Price         decimal.Decimal // > 0 al crear
	Stock         int             // >= 0
	CategoryID    string
	SubcategoryID string
	Images        []string // secuencia ordenada, opcional
	CreatedBy     string
	UpdatedBy     string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Category    *CategoryRef
	Subcategory *SubcategoryRef
	Creator     *UserRef
	Editor      *UserRef
}
