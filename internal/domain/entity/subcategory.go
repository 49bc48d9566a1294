package entity

import "time"

// Subcategory representa una subcategoría perteneciente a una categoría.
//
// Unicidad de nombre en dos capas, intencionalmente distintas:
//   - pre-check en el caso de uso: insensible a mayúsculas, dentro de la misma categoría
//   - índice único del almacén: global y sensible a mayúsculas
type Subcategory struct {
	ID          string
	Name        string
	Description string
	CategoryID  string // categoría dueña; debe existir al crear y al cambiarla
	CreatedBy   string
	UpdatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Category *CategoryRef
	Creator  *UserRef
}

// SubcategoryRef es la proyección de una subcategoría referenciada.
type SubcategoryRef struct {
	Name        string
	Description string
}
