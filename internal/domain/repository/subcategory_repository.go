package repository

import "github.com/tu-usuario/catalogo-api/internal/domain/entity"

// SubcategoryRepository define el puerto de persistencia para Subcategory (DIP).
type SubcategoryRepository interface {
	Create(subcategory *entity.Subcategory) error
	GetByID(id string) (*entity.Subcategory, error)
	// List devuelve todas las subcategorías, más recientes primero, con categoría y creador resueltos.
	List() ([]*entity.Subcategory, error)
	// ListByCategory devuelve las subcategorías de una categoría (candidatas del pre-check de duplicados).
	ListByCategory(categoryID string) ([]*entity.Subcategory, error)
	Update(subcategory *entity.Subcategory) error
	Delete(id string) (*entity.Subcategory, error)
}
