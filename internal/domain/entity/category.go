package entity

import "time"

// Category representa una categoría del catálogo.
// Invariante: el nombre es único bajo comparación insensible a mayúsculas
// con collation española.
type Category struct {
	ID          string
	Name        string // 3–50 caracteres, trim
	Description string // obligatoria, máx 200 caracteres, trim
	IsActive    bool
	CreatedBy   string // User ID
	UpdatedBy   string // User ID, vacío si nunca se actualizó
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Referencias resueltas (populate); nil si no se resolvieron o el usuario ya no existe.
	Creator *UserRef
	Editor  *UserRef
}

// CategoryRef es la proyección de una categoría referenciada, resuelta por populate.
type CategoryRef struct {
	Name        string
	Description string
}
