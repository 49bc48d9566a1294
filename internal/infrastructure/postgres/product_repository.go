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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productSelect = `
	SELECT p.id, p.name, p.description, p.price, p.stock, p.category_id, p.subcategory_id,
	       p.images, p.created_by, p.updated_by, p.created_at, p.updated_at,
	       c.name, c.description,
	       s.name, s.description,
	       u.name, u.email, u.role,
	       e.name, e.role
	FROM products p
	LEFT JOIN categories c ON c.id = p.category_id
	LEFT JOIN subcategories s ON s.id = p.subcategory_id
	LEFT JOIN users u ON u.id = p.created_by
	LEFT JOIN users e ON e.id = p.updated_by`

// Create persiste un nuevo producto. El índice único global sobre name es la
// autoridad final; 23505 -> ErrDuplicate.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, description, price, stock, category_id, subcategory_id, images, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Price, product.Stock,
		product.CategoryID, product.SubcategoryID, product.Images,
		nullIfEmpty(product.CreatedBy), product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto con todas las referencias resueltas, o nil si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	row := r.q.QueryRow(context.Background(), productSelect+` WHERE p.id = $1`, id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if isInvalidTextRepresentation(err) {
			return nil, domain.ErrInvalidID
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// List devuelve todos los productos, más recientes primero.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	return r.list(productSelect + ` ORDER BY p.created_at DESC`)
}

// ListByScope devuelve los candidatos del pre-check de duplicados. Un argumento
// vacío deja ese campo sin restricción (misma semántica que omitir el filtro).
func (r *ProductRepo) ListByScope(categoryID, subcategoryID string) ([]*entity.Product, error) {
	query := productSelect + `
	WHERE ($1 = '' OR p.category_id::text = $1)
	  AND ($2 = '' OR p.subcategory_id::text = $2)
	ORDER BY p.created_at DESC`
	return r.list(query, categoryID, subcategoryID)
}

func (r *ProductRepo) list(query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update actualiza un producto existente.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, price = $4, stock = $5, category_id = $6,
		    subcategory_id = $7, images = $8, updated_by = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Price, product.Stock,
		product.CategoryID, product.SubcategoryID, product.Images,
		nullIfEmpty(product.UpdatedBy), product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina y devuelve la entidad eliminada, o nil si no existía.
func (r *ProductRepo) Delete(id string) (*entity.Product, error) {
	query := `
		DELETE FROM products
		WHERE id = $1
		RETURNING id, name, description, price, stock, category_id, subcategory_id,
		          images, created_by, updated_by, created_at, updated_at`
	var p entity.Product
	var createdBy, updatedBy *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.CategoryID, &p.SubcategoryID,
		&p.Images, &createdBy, &updatedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if isInvalidTextRepresentation(err) {
			return nil, domain.ErrInvalidID
		}
		return nil, fmt.Errorf("delete product: %w", err)
	}
	p.CreatedBy = deref(createdBy)
	p.UpdatedBy = deref(updatedBy)
	return &p, nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var createdBy, updatedBy *string
	var catName, catDescription *string
	var subName, subDescription *string
	var creatorName, creatorEmail, creatorRole *string
	var editorName, editorRole *string
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.CategoryID, &p.SubcategoryID,
		&p.Images, &createdBy, &updatedBy, &p.CreatedAt, &p.UpdatedAt,
		&catName, &catDescription,
		&subName, &subDescription,
		&creatorName, &creatorEmail, &creatorRole,
		&editorName, &editorRole,
	)
	if err != nil {
		return nil, err
	}
	p.CreatedBy = deref(createdBy)
	p.UpdatedBy = deref(updatedBy)
	if catName != nil {
		p.Category = &entity.CategoryRef{Name: *catName, Description: deref(catDescription)}
	}
	if subName != nil {
		p.Subcategory = &entity.SubcategoryRef{Name: *subName, Description: deref(subDescription)}
	}
	if creatorName != nil {
		p.Creator = &entity.UserRef{Name: *creatorName, Email: deref(creatorEmail), Role: deref(creatorRole)}
	}
	if editorName != nil {
		p.Editor = &entity.UserRef{Name: *editorName, Role: deref(editorRole)}
	}
	return &p, nil
}
