package usecase_test

import (
	"strings"

	"github.com/tu-usuario/catalogo-api/internal/domain"
	"github.com/tu-usuario/catalogo-api/internal/domain/entity"
)

// Fakes en memoria de los puertos de persistencia. Modelan el comportamiento del
// almacén que importa para los casos de uso: índices únicos (segundo insert con
// el mismo nombre → ErrDuplicate) y delete que devuelve la entidad eliminada.
//
// Políticas de índice, como en el esquema real:
//   - categorías: único sobre lower(name)
//   - subcategorías y productos: único sobre el nombre crudo (global, sensible
//     a mayúsculas)

type fakeCategoryRepo struct {
	items []*entity.Category
}

func (r *fakeCategoryRepo) Create(c *entity.Category) error {
	for _, e := range r.items {
		if strings.EqualFold(e.Name, c.Name) {
			return domain.ErrDuplicate
		}
	}
	cp := *c
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	for _, e := range r.items {
		if e.ID == id {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) List() ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(r.items))
	for i := len(r.items) - 1; i >= 0; i-- {
		cp := *r.items[i]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeCategoryRepo) Update(c *entity.Category) error {
	for _, e := range r.items {
		if e.ID != c.ID && strings.EqualFold(e.Name, c.Name) {
			return domain.ErrDuplicate
		}
	}
	for i, e := range r.items {
		if e.ID == c.ID {
			cp := *c
			r.items[i] = &cp
			return nil
		}
	}
	return nil
}

func (r *fakeCategoryRepo) Delete(id string) (*entity.Category, error) {
	for i, e := range r.items {
		if e.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return e, nil
		}
	}
	return nil, nil
}

type fakeSubcategoryRepo struct {
	items []*entity.Subcategory
}

func (r *fakeSubcategoryRepo) Create(s *entity.Subcategory) error {
	for _, e := range r.items {
		if e.Name == s.Name {
			return domain.ErrDuplicate
		}
	}
	cp := *s
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakeSubcategoryRepo) GetByID(id string) (*entity.Subcategory, error) {
	for _, e := range r.items {
		if e.ID == id {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeSubcategoryRepo) List() ([]*entity.Subcategory, error) {
	out := make([]*entity.Subcategory, 0, len(r.items))
	for i := len(r.items) - 1; i >= 0; i-- {
		cp := *r.items[i]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeSubcategoryRepo) ListByCategory(categoryID string) ([]*entity.Subcategory, error) {
	var out []*entity.Subcategory
	for i := len(r.items) - 1; i >= 0; i-- {
		if r.items[i].CategoryID == categoryID {
			cp := *r.items[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeSubcategoryRepo) Update(s *entity.Subcategory) error {
	for _, e := range r.items {
		if e.ID != s.ID && e.Name == s.Name {
			return domain.ErrDuplicate
		}
	}
	for i, e := range r.items {
		if e.ID == s.ID {
			cp := *s
			r.items[i] = &cp
			return nil
		}
	}
	return nil
}

func (r *fakeSubcategoryRepo) Delete(id string) (*entity.Subcategory, error) {
	for i, e := range r.items {
		if e.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return e, nil
		}
	}
	return nil, nil
}

type fakeProductRepo struct {
	items []*entity.Product
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	for _, e := range r.items {
		if e.Name == p.Name {
			return domain.ErrDuplicate
		}
	}
	cp := *p
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	for _, e := range r.items {
		if e.ID == id {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.items))
	for i := len(r.items) - 1; i >= 0; i-- {
		cp := *r.items[i]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductRepo) ListByScope(categoryID, subcategoryID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for i := len(r.items) - 1; i >= 0; i-- {
		e := r.items[i]
		if categoryID != "" && e.CategoryID != categoryID {
			continue
		}
		if subcategoryID != "" && e.SubcategoryID != subcategoryID {
			continue
		}
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	for _, e := range r.items {
		if e.ID != p.ID && e.Name == p.Name {
			return domain.ErrDuplicate
		}
	}
	for i, e := range r.items {
		if e.ID == p.ID {
			cp := *p
			r.items[i] = &cp
			return nil
		}
	}
	return nil
}

func (r *fakeProductRepo) Delete(id string) (*entity.Product, error) {
	for i, e := range r.items {
		if e.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return e, nil
		}
	}
	return nil, nil
}
