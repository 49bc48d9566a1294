package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/catalogo-api/internal/application/auth"
	"github.com/tu-usuario/catalogo-api/internal/application/usecase"
	"github.com/tu-usuario/catalogo-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC    *usecase.CategoryUseCase
	SubcategoryUC *usecase.SubcategoryUseCase
	ProductUC     *usecase.ProductUseCase
	AuthUC        *auth.AuthUseCase
	JWTSecret     string
}

// Router registra las rutas de la API. Los gates se componen explícitamente por
// ruta, siempre en el orden autenticación -> rol -> handler.
//
// Matriz de roles:
//   - create/update: admin, coordinador
//   - read:          admin, coordinador, auxiliar
//   - delete:        admin
func Router(app *fiber.App, deps RouterDeps) {
	authn := AuthMiddleware(deps.JWTSecret)
	writers := RequireRole(entity.RoleAdmin, entity.RoleCoordinador)
	readers := RequireRole(entity.RoleAdmin, entity.RoleCoordinador, entity.RoleAuxiliar)
	admins := RequireRole(entity.RoleAdmin)

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	app.Post("/auth/register", authHandler.Register)
	app.Post("/auth/login", authHandler.Login)

	// Categories
	categories := app.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", authn, writers, categoryHandler.Create)
	categories.Get("/", authn, readers, categoryHandler.List)
	categories.Get("/:id", authn, readers, categoryHandler.GetByID)
	categories.Put("/:id", authn, writers, categoryHandler.Update)
	categories.Delete("/:id", authn, admins, categoryHandler.Delete)

	// Subcategories
	subcategories := app.Group("/subcategories")
	subcategoryHandler := NewSubcategoryHandler(deps.SubcategoryUC)
	subcategories.Post("/", authn, writers, subcategoryHandler.Create)
	subcategories.Get("/", authn, readers, subcategoryHandler.List)
	subcategories.Get("/:id", authn, readers, subcategoryHandler.GetByID)
	subcategories.Put("/:id", authn, writers, subcategoryHandler.Update)
	subcategories.Delete("/:id", authn, admins, subcategoryHandler.Delete)

	// Products
	products := app.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", authn, writers, productHandler.Create)
	products.Get("/", authn, readers, productHandler.List)
	products.Get("/:id", authn, readers, productHandler.GetByID)
	products.Put("/:id", authn, writers, productHandler.Update)
	products.Delete("/:id", authn, admins, productHandler.Delete)
}
