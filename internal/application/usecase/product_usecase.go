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

// ProductUseCase operaciones CRUD de productos.
//
// Invariante central: la subcategoría debe pertenecer a la categoría declarada.
// "No existe" y "pertenece a otra categoría" se reportan con el mismo
// ErrSubcategoryNotFound; el caller no puede distinguirlos.
type ProductUseCase struct {
	repo    repository.ProductRepository
	catRepo repository.CategoryRepository
	subRepo repository.SubcategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, catRepo repository.CategoryRepository, subRepo repository.SubcategoryRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, catRepo: catRepo, subRepo: subRepo}
}

// Create crea un producto. El pre-check de duplicado se acota a
// (nombre insensible a mayúsculas, categoría, subcategoría); el índice único
// global sobre el nombre resuelve la carrera post pre-check. La respuesta se
// devuelve con categoría {name}, subcategoría {name} y creador {name, email, role}.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest, creatorID string) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.Validationf("El nombre del producto es obligatorio")
	}
	description := strings.TrimSpace(in.Description)
	if description == "" {
		return nil, domain.Validationf("La descripción es obligatoria")
	}
	if !in.Price.IsPositive() {
		return nil, domain.Validationf("El precio debe ser mayor a cero")
	}
	if in.Stock == nil || *in.Stock < 0 {
		return nil, domain.Validationf("El stock no puede ser negativo")
	}
	if in.Category == "" {
		return nil, domain.Validationf("La categoría es requerida")
	}
	if in.Subcategory == "" {
		return nil, domain.Validationf("La subcategoría es requerida")
	}

	if err := uc.resolveCategory(in.Category); err != nil {
		return nil, err
	}
	if err := uc.resolveSubcategory(in.Subcategory, in.Category); err != nil {
		return nil, err
	}

	candidates, err := uc.repo.ListByScope(in.Category, in.Subcategory)
	if err != nil {
		return nil, err
	}
	for _, p := range candidates {
		if collation.EqualFold(p.Name, name) {
			return nil, domain.Duplicatef("Ya existe un producto con ese nombre en esta categoría y subcategoría")
		}
	}

	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		Name:          name,
		Description:   description,
		Price:         in.Price,
		Stock:         *in.Stock,
		CategoryID:    in.Category,
		SubcategoryID: in.Subcategory,
		Images:        in.Images,
		CreatedBy:     creatorID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(product); err != nil {
		if err == domain.ErrDuplicate {
			return nil, domain.Duplicatef("Ya existe un producto con ese nombre")
		}
		return nil, err
	}

	// Releer con las referencias resueltas para la respuesta.
	saved, err := uc.repo.GetByID(product.ID)
	if err != nil || saved == nil {
		return toProductResponse(product), nil
	}
	r := toProductResponse(saved)
	r.Category = categoryRefDTO(saved.Category, false)
	r.Subcategory = subcategoryRefDTO(saved.Subcategory, false)
	r.CreatedBy = userRefDTO(saved.Creator, true)
	return r, nil
}

// List devuelve todos los productos, más recientes primero, con categoría {name},
// subcategoría {name} y creador {name, role}.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	products, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		r := toProductResponse(p)
		r.Category = categoryRefDTO(p.Category, false)
		r.Subcategory = subcategoryRefDTO(p.Subcategory, false)
		r.CreatedBy = userRefDTO(p.Creator, false)
		items = append(items, *r)
	}
	return items, nil
}

// GetByID devuelve un producto con categoría {name, description}, subcategoría
// {name, description} y creador {name, role}.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	if uuid.Validate(id) != nil {
		return nil, domain.Wrap(domain.ErrInvalidID, "ID de producto inválido")
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NotFoundf("Producto no encontrado")
	}
	r := toProductResponse(product)
	r.Category = categoryRefDTO(product.Category, true)
	r.Subcategory = subcategoryRefDTO(product.Subcategory, true)
	r.CreatedBy = userRefDTO(product.Creator, false)
	return r, nil
}

// Update aplica una actualización parcial.
//
// El check de duplicado por nombre usa la categoría y subcategoría DEL PATCH;
// cuando alguna no viene en el patch ese campo queda sin acotar (no se usa el
// valor actual de la entidad). Es una relajación deliberada respecto al create.
//
// Si solo se actualiza la subcategoría, la consistencia padre-hija se valida
// contra la categoría actual del producto.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest, updaterID string) (*dto.ProductResponse, error) {
	if uuid.Validate(id) != nil {
		return nil, domain.Wrap(domain.ErrInvalidID, "ID de producto inválido")
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NotFoundf("Producto no encontrado")
	}

	if in.Name != nil {
		if name := strings.TrimSpace(*in.Name); name != "" {
			scopeCategory, scopeSubcategory := "", ""
			if in.Category != nil {
				scopeCategory = *in.Category
			}
			if in.Subcategory != nil {
				scopeSubcategory = *in.Subcategory
			}
			candidates, err := uc.repo.ListByScope(scopeCategory, scopeSubcategory)
			if err != nil {
				return nil, err
			}
			for _, p := range candidates {
				if p.ID != id && collation.EqualFold(p.Name, name) {
					return nil, domain.Duplicatef("Ya existe un producto con ese nombre en esta categoría y subcategoría")
				}
			}
			product.Name = name
		}
	}
	if in.Description != nil {
		if description := strings.TrimSpace(*in.Description); description != "" {
			product.Description = description
		}
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Stock != nil {
		product.Stock = *in.Stock
	}

	if in.Category != nil || in.Subcategory != nil {
		if in.Category != nil {
			if err := uc.resolveCategory(*in.Category); err != nil {
				return nil, err
			}
			product.CategoryID = *in.Category
		}
		if in.Subcategory != nil {
			parentID := product.CategoryID // ya refleja el patch si vino categoría
			if err := uc.resolveSubcategory(*in.Subcategory, parentID); err != nil {
				return nil, err
			}
			product.SubcategoryID = *in.Subcategory
		}
	}

	product.UpdatedBy = updaterID
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		if err == domain.ErrDuplicate {
			return nil, domain.Duplicatef("Ya existe un producto con ese nombre")
		}
		return nil, err
	}

	// Releer para resolver categoría {name}, subcategoría {name} y editor {name, role}.
	saved, err := uc.repo.GetByID(id)
	if err != nil || saved == nil {
		return toProductResponse(product), nil
	}
	r := toProductResponse(saved)
	r.Category = categoryRefDTO(saved.Category, false)
	r.Subcategory = subcategoryRefDTO(saved.Subcategory, false)
	r.UpdatedBy = userRefDTO(saved.Editor, false)
	return r, nil
}

// Delete elimina el producto y devuelve la entidad eliminada.
func (uc *ProductUseCase) Delete(id string) (*dto.ProductResponse, error) {
	if uuid.Validate(id) != nil {
		return nil, domain.Wrap(domain.ErrInvalidID, "ID de producto inválido")
	}
	deleted, err := uc.repo.Delete(id)
	if err != nil {
		return nil, err
	}
	if deleted == nil {
		return nil, domain.NotFoundf("Producto no encontrado")
	}
	return toProductResponse(deleted), nil
}

// resolveCategory verifica que la categoría exista; ID malformado cuenta como
// "no resuelve".
func (uc *ProductUseCase) resolveCategory(categoryID string) error {
	if uuid.Validate(categoryID) != nil {
		return domain.ErrCategoryNotFound
	}
	category, err := uc.catRepo.GetByID(categoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrCategoryNotFound
	}
	return nil
}

// resolveSubcategory verifica que la subcategoría exista y pertenezca a parentID.
// Ambas fallas colapsan en ErrSubcategoryNotFound.
func (uc *ProductUseCase) resolveSubcategory(subcategoryID, parentID string) error {
	if uuid.Validate(subcategoryID) != nil {
		return domain.ErrSubcategoryNotFound
	}
	subcategory, err := uc.subRepo.GetByID(subcategoryID)
	if err != nil {
		return err
	}
	if subcategory == nil || subcategory.CategoryID != parentID {
		return domain.ErrSubcategoryNotFound
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	r := &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		Images:      p.Images,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.CategoryID != "" {
		r.Category = &dto.CategoryDTO{ID: p.CategoryID}
	}
	if p.SubcategoryID != "" {
		r.Subcategory = &dto.SubcategoryDTO{ID: p.SubcategoryID}
	}
	if p.CreatedBy != "" {
		r.CreatedBy = &dto.UserDTO{ID: p.CreatedBy}
	}
	if p.UpdatedBy != "" {
		r.UpdatedBy = &dto.UserDTO{ID: p.UpdatedBy}
	}
	return r
}

// subcategoryRefDTO proyecta la referencia resuelta de subcategoría.
func subcategoryRefDTO(ref *entity.SubcategoryRef, withDescription bool) *dto.SubcategoryDTO {
	if ref == nil {
		return nil
	}
	d := &dto.SubcategoryDTO{Name: ref.Name}
	if withDescription {
		d.Description = ref.Description
	}
	return d
}
