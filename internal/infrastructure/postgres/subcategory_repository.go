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

var _ repository.SubcategoryRepository = (*SubcategoryRepo)(nil)

// SubcategoryRepo implementación del puerto SubcategoryRepository sobre PostgreSQL.
type SubcategoryRepo struct {
	q Querier
}

// NewSubcategoryRepository construye el adaptador de persistencia para subcategorías.
func NewSubcategoryRepository(q Querier) *SubcategoryRepo {
	return &SubcategoryRepo{q: q}
}

const subcategorySelect = `
	SELECT s.id, s.name, s.description, s.category_id, s.created_by, s.updated_by,
	       s.created_at, s.updated_at,
	       c.name, c.description,
	       u.name, u.email, u.role
	FROM subcategories s
	LEFT JOIN categories c ON c.id = s.category_id
	LEFT JOIN users u ON u.id = s.created_by`

// Create persiste una nueva subcategoría. El índice único global sobre name
// (sensible a mayúsculas) es la autoridad final; 23505 -> ErrDuplicate.
func (r *SubcategoryRepo) Create(subcategory *entity.Subcategory) error {
	query := `
		INSERT INTO subcategories (id, name, description, category_id, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		subcategory.ID, subcategory.Name, subcategory.Description, subcategory.CategoryID,
		nullIfEmpty(subcategory.CreatedBy), subcategory.CreatedAt, subcategory.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert subcategory: %w", err)
	}
	return nil
}

// GetByID obtiene una subcategoría con categoría y creador resueltos, o nil si no existe.
func (r *SubcategoryRepo) GetByID(id string) (*entity.Subcategory, error) {
	row := r.q.QueryRow(context.Background(), subcategorySelect+` WHERE s.id = $1`, id)
	sub, err := scanSubcategory(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if isInvalidTextRepresentation(err) {
			return nil, domain.ErrInvalidID
		}
		return nil, fmt.Errorf("get subcategory: %w", err)
	}
	return sub, nil
}

// List devuelve todas las subcategorías, más recientes primero.
func (r *SubcategoryRepo) List() ([]*entity.Subcategory, error) {
	return r.list(subcategorySelect + ` ORDER BY s.created_at DESC`)
}

// ListByCategory devuelve las subcategorías de una categoría (candidatas del
// pre-check de duplicados por categoría).
func (r *SubcategoryRepo) ListByCategory(categoryID string) ([]*entity.Subcategory, error) {
	return r.list(subcategorySelect+` WHERE s.category_id = $1 ORDER BY s.created_at DESC`, categoryID)
}

func (r *SubcategoryRepo) list(query string, args ...any) ([]*entity.Subcategory, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list subcategories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Subcategory
	for rows.Next() {
		sub, err := scanSubcategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan subcategory: %w", err)
		}
		list = append(list, sub)
	}
	return list, rows.Err()
}

// Update actualiza una subcategoría existente.
func (r *SubcategoryRepo) Update(subcategory *entity.Subcategory) error {
	query := `
		UPDATE subcategories
		SET name = $2, description = $3, category_id = $4, updated_by = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		subcategory.ID, subcategory.Name, subcategory.Description, subcategory.CategoryID,
		nullIfEmpty(subcategory.UpdatedBy), subcategory.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update subcategory: %w", err)
	}
	return nil
}

// Delete elimina y devuelve la entidad eliminada, o nil si no existía.
// Sin cascada: los productos dependientes quedan intactos.
func (r *SubcategoryRepo) Delete(id string) (*entity.Subcategory, error) {
	query := `
		DELETE FROM subcategories
		WHERE id = $1
		RETURNING id, name, description, category_id, created_by, updated_by, created_at, updated_at`
	var s entity.Subcategory
	var createdBy, updatedBy *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Name, &s.Description, &s.CategoryID, &createdBy, &updatedBy,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if isInvalidTextRepresentation(err) {
			return nil, domain.ErrInvalidID
		}
		return nil, fmt.Errorf("delete subcategory: %w", err)
	}
	s.CreatedBy = deref(createdBy)
	s.UpdatedBy = deref(updatedBy)
	return &s, nil
}

func scanSubcategory(row pgx.Row) (*entity.Subcategory, error) {
	var s entity.Subcategory
	var createdBy, updatedBy *string
	var catName, catDescription *string
	var creatorName, creatorEmail, creatorRole *string
	err := row.Scan(
		&s.ID, &s.Name, &s.Description, &s.CategoryID, &createdBy, &updatedBy,
		&s.CreatedAt, &s.UpdatedAt,
		&catName, &catDescription,
		&creatorName, &creatorEmail, &creatorRole,
	)
	if err != nil {
		return nil, err
	}
	s.CreatedBy = deref(createdBy)
	s.UpdatedBy = deref(updatedBy)
	if catName != nil {
		s.Category = &entity.CategoryRef{Name: *catName, Description: deref(catDescription)}
	}
	if creatorName != nil {
		s.Creator = &entity.UserRef{Name: *creatorName, Email: deref(creatorEmail), Role: deref(creatorRole)}
	}
	return &s, nil
}
