package usecase

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/tu-usuario/catalogo-api/internal/application/dto"
	"github.com/tu-usuario/catalogo-api/internal/domain"
	"github.com/tu-usuario/catalogo-api/internal/domain/entity"
	"github.com/tu-usuario/catalogo-api/internal/domain/repository"
	"github.com/tu-usuario/catalogo-api/pkg/collation"
)

// CategoryUseCase operaciones CRUD de categorías con las reglas de validación
// y unicidad del catálogo.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crea una categoría. El pre-check de nombre duplicado es insensible a
// mayúsculas con collation española; el índice único del almacén resuelve la
// carrera entre pre-check y escritura.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest, creatorID string) (*dto.CategoryResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.Validationf("El nombre de la categoría es obligatorio")
	}
	description := strings.TrimSpace(in.Description)
	if description == "" {
		return nil, domain.Validationf("La descripción es obligatoria")
	}
	if err := validateCategoryFields(name, description); err != nil {
		return nil, err
	}

	existing, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	for _, c := range existing {
		if collation.EqualFold(c.Name, name) {
			return nil, domain.Duplicatef("Ya existe una categoría con ese nombre")
		}
	}

	now := time.Now()
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		IsActive:    true,
		CreatedBy:   creatorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(category); err != nil {
		if err == domain.ErrDuplicate {
			return nil, domain.Duplicatef("El nombre de la categoría ya existe")
		}
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// List devuelve todas las categorías, más recientes primero, con el creador
// resuelto a {name, email, role}.
func (uc *CategoryUseCase) List() ([]dto.CategoryResponse, error) {
	categories, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		r := toCategoryResponse(c)
		r.CreatedBy = userRefDTO(c.Creator, true)
		items = append(items, *r)
	}
	return items, nil
}

// GetByID devuelve una categoría con el creador resuelto a {name, role}.
func (uc *CategoryUseCase) GetByID(id string) (*dto.CategoryResponse, error) {
	if uuid.Validate(id) != nil {
		return nil, domain.Wrap(domain.ErrInvalidID, "ID de categoría inválido")
	}
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.NotFoundf("Categoría no encontrada")
	}
	r := toCategoryResponse(category)
	r.CreatedBy = userRefDTO(category.Creator, false)
	return r, nil
}

// Update aplica una actualización parcial: solo los campos presentes y no vacíos
// tras trim. Si viene nombre, re-verifica unicidad excluyendo la propia categoría.
// Siempre registra updatedBy.
func (uc *CategoryUseCase) Update(id string, in dto.UpdateCategoryRequest, updaterID string) (*dto.CategoryResponse, error) {
	if uuid.Validate(id) != nil {
		return nil, domain.Wrap(domain.ErrInvalidID, "ID de categoría inválido")
	}
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.NotFoundf("Categoría no encontrada")
	}

	if in.Name != nil {
		if name := strings.TrimSpace(*in.Name); name != "" {
			existing, err := uc.repo.List()
			if err != nil {
				return nil, err
			}
			for _, c := range existing {
				if c.ID != id && collation.EqualFold(c.Name, name) {
					return nil, domain.Duplicatef("Ya existe una categoría con ese nombre")
				}
			}
			category.Name = name
		}
	}
	if in.Description != nil {
		if description := strings.TrimSpace(*in.Description); description != "" {
			category.Description = description
		}
	}
	if err := validateCategoryFields(category.Name, category.Description); err != nil {
		return nil, err
	}

	category.UpdatedBy = updaterID
	category.UpdatedAt = time.Now()
	if err := uc.repo.Update(category); err != nil {
		if err == domain.ErrDuplicate {
			return nil, domain.Duplicatef("El nombre de la categoría ya existe")
		}
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Delete elimina la categoría y devuelve la entidad eliminada. Sin cascada:
// subcategorías y productos dependientes quedan intactos.
func (uc *CategoryUseCase) Delete(id string) (*dto.CategoryResponse, error) {
	if uuid.Validate(id) != nil {
		return nil, domain.Wrap(domain.ErrInvalidID, "ID de categoría inválido")
	}
	deleted, err := uc.repo.Delete(id)
	if err != nil {
		return nil, err
	}
	if deleted == nil {
		return nil, domain.NotFoundf("Categoría no encontrada")
	}
	return toCategoryResponse(deleted), nil
}

func validateCategoryFields(name, description string) error {
	if utf8.RuneCountInString(name) < 3 {
		return domain.Validationf("El nombre debe tener al menos 3 caracteres")
	}
	if utf8.RuneCountInString(name) > 50 {
		return domain.Validationf("El nombre no puede exceder 50 caracteres")
	}
	if utf8.RuneCountInString(description) > 200 {
		return domain.Validationf("La descripción no puede exceder 200 caracteres")
	}
	return nil
}

// toCategoryResponse mapea la entidad con las referencias como IDs crudos;
// quien lista/consulta reemplaza CreatedBy con el subconjunto resuelto.
func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	r := &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
	if c.CreatedBy != "" {
		r.CreatedBy = &dto.UserDTO{ID: c.CreatedBy}
	}
	if c.UpdatedBy != "" {
		r.UpdatedBy = &dto.UserDTO{ID: c.UpdatedBy}
	}
	return r
}

// userRefDTO proyecta una referencia resuelta; withEmail controla el subconjunto
// ({name, email, role} en listados, {name, role} en consultas por ID).
func userRefDTO(ref *entity.UserRef, withEmail bool) *dto.UserDTO {
	if ref == nil {
		return nil
	}
	d := &dto.UserDTO{Name: ref.Name, Role: ref.Role}
	if withEmail {
		d.Email = ref.Email
	}
	return d
}
