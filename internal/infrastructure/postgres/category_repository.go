package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/catalogo-api/internal/domain"
	"github.com/tu-usuario/catalogo-api/internal/domain/entity"
	"github.com/tu-usuario/catalogo-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de persistencia para categorías.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

const categorySelect = `
	SELECT c.id, c.name, c.description, c.is_active, c.created_by, c.updated_by,
	       c.created_at, c.updated_at,
	       u.name, u.email, u.role
	FROM categories c
	LEFT JOIN users u ON u.id = c.created_by`

// Create persiste una nueva categoría. El índice único sobre lower(name) es la
// autoridad final de unicidad; una violación se reclasifica a ErrDuplicate.
func (r *CategoryRepo) Create(category *entity.Category) error {
	query := `
		INSERT INTO categories (id, name, description, is_active, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.Name, category.Description, category.IsActive,
		nullIfEmpty(category.CreatedBy), category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID con el creador resuelto, o nil si no existe.
func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	row := r.q.QueryRow(context.Background(), categorySelect+` WHERE c.id = $1`, id)
	cat, err := scanCategory(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if isInvalidTextRepresentation(err) {
			return nil, domain.ErrInvalidID
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return cat, nil
}

// List devuelve todas las categorías, más recientes primero, con el creador resuelto.
func (r *CategoryRepo) List() ([]*entity.Category, error) {
	rows, err := r.q.Query(context.Background(), categorySelect+` ORDER BY c.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		cat, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, cat)
	}
	return list, rows.Err()
}

// Update actualiza una categoría existente.
func (r *CategoryRepo) Update(category *entity.Category) error {
	query := `
		UPDATE categories
		SET name = $2, description = $3, is_active = $4, updated_by = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.Name, category.Description, category.IsActive,
		nullIfEmpty(category.UpdatedBy), category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// Delete elimina y devuelve la entidad eliminada, o nil si no existía.
// Sin cascada: las subcategorías y productos dependientes quedan intactos.
func (r *CategoryRepo) Delete(id string) (*entity.Category, error) {
	query := `
		DELETE FROM categories
		WHERE id = $1
		RETURNING id, name, description, is_active, created_by, updated_by, created_at, updated_at`
	var c entity.Category
	var createdBy, updatedBy *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.Description, &c.IsActive, &createdBy, &updatedBy,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if isInvalidTextRepresentation(err) {
			return nil, domain.ErrInvalidID
		}
		return nil, fmt.Errorf("delete category: %w", err)
	}
	c.CreatedBy = deref(createdBy)
	c.UpdatedBy = deref(updatedBy)
	return &c, nil
}

func scanCategory(row pgx.Row) (*entity.Category, error) {
	var c entity.Category
	var createdBy, updatedBy, creatorName, creatorEmail, creatorRole *string
	err := row.Scan(
		&c.ID, &c.Name, &c.Description, &c.IsActive, &createdBy, &updatedBy,
		&c.CreatedAt, &c.UpdatedAt,
		&creatorName, &creatorEmail, &creatorRole,
	)
	if err != nil {
		return nil, err
	}
	c.CreatedBy = deref(createdBy)
	c.UpdatedBy = deref(updatedBy)
	if creatorName != nil {
		c.Creator = &entity.UserRef{Name: *creatorName, Email: deref(creatorEmail), Role: deref(creatorRole)}
	}
	return &c, nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
