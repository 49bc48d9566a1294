package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/catalogo-api/internal/application/dto"
	"github.com/tu-usuario/catalogo-api/internal/domain"
	"github.com/tu-usuario/catalogo-api/internal/domain/entity"
	"github.com/tu-usuario/catalogo-api/internal/domain/repository"
	"github.com/tu-usuario/catalogo-api/pkg/collation"
)

// SubcategoryUseCase operaciones CRUD de subcategorías.
//
// La unicidad de nombre opera en dos capas intencionalmente distintas:
// el pre-check es insensible a mayúsculas y está acotado a la categoría,
// mientras que el índice único del almacén es global y sensible a mayúsculas.
// No colapsar las dos capas en una.
type SubcategoryUseCase struct {
	repo    repository.SubcategoryRepository
	catRepo repository.CategoryRepository
}

// NewSubcategoryUseCase construye el caso de uso.
func NewSubcategoryUseCase(repo repository.SubcategoryRepository, catRepo repository.CategoryRepository) *SubcategoryUseCase {
	return &SubcategoryUseCase{repo: repo, catRepo: catRepo}
}

// Create crea una subcategoría. La categoría padre debe existir; la verificación
// se hace justo antes de escribir, sin lock (carrera con un delete concurrente
// del padre aceptada).
func (uc *SubcategoryUseCase) Create(in dto.CreateSubcategoryRequest, creatorID string) (*dto.SubcategoryResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.Validationf("El nombre de la subcategoría es obligatorio")
	}
	description := strings.TrimSpace(in.Description)
	if description == "" {
		return nil, domain.Validationf("La descripción es obligatoria")
	}
	if in.Category == "" {
		return nil, domain.Validationf("La categoría padre es requerida")
	}

	if err := uc.categoryExists(in.Category); err != nil {
		return nil, err
	}

	siblings, err := uc.repo.ListByCategory(in.Category)
	if err != nil {
		return nil, err
	}
	for _, s := range siblings {
		if collation.EqualFold(s.Name, name) {
			return nil, domain.Duplicatef("Ya existe una subcategoría con ese nombre en esta categoría")
		}
	}

	now := time.Now()
	subcategory := &entity.Subcategory{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		CategoryID:  in.Category,
		CreatedBy:   creatorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(subcategory); err != nil {
		if err == domain.ErrDuplicate {
			// El pre-check pasó pero el índice global rechazó el insert.
			return nil, domain.Duplicatef("La subcategoría ya existe")
		}
		return nil, err
	}
	return toSubcategoryResponse(subcategory), nil
}

// List devuelve todas las subcategorías, más recientes primero, con la categoría
// resuelta a {name} y el creador a {name, email, role}.
func (uc *SubcategoryUseCase) List() ([]dto.SubcategoryResponse, error) {
	subcategories, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.SubcategoryResponse, 0, len(subcategories))
	for _, s := range subcategories {
		r := toSubcategoryResponse(s)
		r.Category = categoryRefDTO(s.Category, false)
		r.CreatedBy = userRefDTO(s.Creator, true)
		items = append(items, *r)
	}
	return items, nil
}

// GetByID devuelve una subcategoría con la categoría resuelta a {name} y el
// creador a {name, role}.
func (uc *SubcategoryUseCase) GetByID(id string) (*dto.SubcategoryResponse, error) {
	if uuid.Validate(id) != nil {
		return nil, domain.Wrap(domain.ErrInvalidID, "ID de subcategoría inválido")
	}
	subcategory, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if subcategory == nil {
		return nil, domain.NotFoundf("Subcategoría no encontrada")
	}
	r := toSubcategoryResponse(subcategory)
	r.Category = categoryRefDTO(subcategory.Category, false)
	r.CreatedBy = userRefDTO(subcategory.Creator, false)
	return r, nil
}

// Update aplica una actualización parcial. Si viene nombre, el check de duplicado
// se acota a la categoría del patch cuando está presente; si el patch no trae
// categoría, el check queda sin acotar (no usa la categoría actual de la entidad).
func (uc *SubcategoryUseCase) Update(id string, in dto.UpdateSubcategoryRequest, updaterID string) (*dto.SubcategoryResponse, error) {
	if uuid.Validate(id) != nil {
		return nil, domain.Wrap(domain.ErrInvalidID, "ID de subcategoría inválido")
	}
	subcategory, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if subcategory == nil {
		return nil, domain.NotFoundf("Subcategoría no encontrada")
	}

	patchCategory := ""
	if in.Category != nil {
		patchCategory = strings.TrimSpace(*in.Category)
	}

	if in.Name != nil {
		if name := strings.TrimSpace(*in.Name); name != "" {
			var candidates []*entity.Subcategory
			if patchCategory != "" {
				candidates, err = uc.repo.ListByCategory(patchCategory)
			} else {
				candidates, err = uc.repo.List()
			}
			if err != nil {
				return nil, err
			}
			for _, s := range candidates {
				if s.ID != id && collation.EqualFold(s.Name, name) {
					return nil, domain.Duplicatef("Ya existe una subcategoría con ese nombre en esta categoría")
				}
			}
			subcategory.Name = name
		}
	}
	if in.Description != nil {
		if description := strings.TrimSpace(*in.Description); description != "" {
			subcategory.Description = description
		}
	}
	if patchCategory != "" {
		if err := uc.categoryExists(patchCategory); err != nil {
			return nil, err
		}
		subcategory.CategoryID = patchCategory
	}

	subcategory.UpdatedBy = updaterID
	subcategory.UpdatedAt = time.Now()
	if err := uc.repo.Update(subcategory); err != nil {
		if err == domain.ErrDuplicate {
			return nil, domain.Duplicatef("La subcategoría ya existe")
		}
		return nil, err
	}
	return toSubcategoryResponse(subcategory), nil
}

// Delete elimina la subcategoría y devuelve la entidad eliminada. Sin cascada
// hacia productos.
func (uc *SubcategoryUseCase) Delete(id string) (*dto.SubcategoryResponse, error) {
	if uuid.Validate(id) != nil {
		return nil, domain.Wrap(domain.ErrInvalidID, "ID de subcategoría inválido")
	}
	deleted, err := uc.repo.Delete(id)
	if err != nil {
		return nil, err
	}
	if deleted == nil {
		return nil, domain.NotFoundf("Subcategoría no encontrada")
	}
	return toSubcategoryResponse(deleted), nil
}

// categoryExists resuelve la categoría padre; un ID malformado cuenta como
// "no resuelve" (ErrCategoryNotFound), no como ID inválido del recurso.
func (uc *SubcategoryUseCase) categoryExists(categoryID string) error {
	if uuid.Validate(categoryID) != nil {
		return domain.ErrCategoryNotFound
	}
	parent, err := uc.catRepo.GetByID(categoryID)
	if err != nil {
		return err
	}
	if parent == nil {
		return domain.ErrCategoryNotFound
	}
	return nil
}

func toSubcategoryResponse(s *entity.Subcategory) *dto.SubcategoryResponse {
	if s == nil {
		return nil
	}
	r := &dto.SubcategoryResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
	if s.CategoryID != "" {
		r.Category = &dto.CategoryDTO{ID: s.CategoryID}
	}
	if s.CreatedBy != "" {
		r.CreatedBy = &dto.UserDTO{ID: s.CreatedBy}
	}
	if s.UpdatedBy != "" {
		r.UpdatedBy = &dto.UserDTO{ID: s.UpdatedBy}
	}
	return r
}

// categoryRefDTO proyecta la referencia resuelta de categoría; withDescription
// controla el subconjunto ({name} en listados, {name, description} en productos por ID).
func categoryRefDTO(ref *entity.CategoryRef, withDescription bool) *dto.CategoryDTO {
	if ref == nil {
		return nil
	}
	d := &dto.CategoryDTO{Name: ref.Name}
	if withDescription {
		d.Description = ref.Description
	}
	return d
}
