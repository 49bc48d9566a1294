package repository

import "github.com/tu-usuario/catalogo-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(category *entity.Category) error
	// GetByID devuelve la categoría con el creador resuelto, o nil si no existe.
	GetByID(id string) (*entity.Category, error)
	// List devuelve todas las categorías, más recientes primero, con el creador resuelto.
	List() ([]*entity.Category, error)
	Update(category *entity.Category) error
	// Delete elimina y devuelve la entidad eliminada, o nil si no existía.
	Delete(id string) (*entity.Category, error)
}
