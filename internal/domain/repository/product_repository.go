package repository

import "github.com/tu-usuario/catalogo-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// List devuelve todos los productos, más recientes primero, con referencias resueltas.
	List() ([]*entity.Product, error)
	// ListByScope devuelve los candidatos del pre-check de duplicados. categoryID y
	// subcategoryID vacíos significan "sin restricción" para ese campo.
	ListByScope(categoryID, subcategoryID string) ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) (*entity.Product, error)
}
