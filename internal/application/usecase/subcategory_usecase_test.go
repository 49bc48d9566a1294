package usecase_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/catalogo-api/internal/application/dto"
	"github.com/tu-usuario/catalogo-api/internal/application/usecase"
	"github.com/tu-usuario/catalogo-api/internal/domain"
)

func newSubcategoryUC(t *testing.T) (*usecase.SubcategoryUseCase, *usecase.CategoryUseCase) {
	t.Helper()
	catRepo := &fakeCategoryRepo{}
	subRepo := &fakeSubcategoryRepo{}
	return usecase.NewSubcategoryUseCase(subRepo, catRepo), usecase.NewCategoryUseCase(catRepo)
}

func mustCreateSubcategory(t *testing.T, uc *usecase.SubcategoryUseCase, name, categoryID string) *dto.SubcategoryResponse {
	t.Helper()
	out, err := uc.Create(dto.CreateSubcategoryRequest{Name: name, Description: "desc de " + name, Category: categoryID}, testCreatorID)
	require.NoError(t, err)
	require.NotNil(t, out)
	return out
}

func TestSubcategoryCreate_OK(t *testing.T) {
	subUC, catUC := newSubcategoryUC(t)
	parent := mustCreateCategory(t, catUC, "Bebidas")

	out, err := subUC.Create(dto.CreateSubcategoryRequest{
		Name:        "  Gaseosas  ",
		Description: "Bebidas carbonatadas",
		Category:    parent.ID,
	}, testCreatorID)
	require.NoError(t, err)
	assert.Equal(t, "Gaseosas", out.Name)
	require.NotNil(t, out.Category)
	assert.Equal(t, parent.ID, out.Category.ID)
}

func TestSubcategoryCreate_CategoriaInexistente(t *testing.T) {
	subUC, _ := newSubcategoryUC(t)
	_, err := subUC.Create(dto.CreateSubcategoryRequest{
		Name:        "Gaseosas",
		Description: "x",
		Category:    uuid.New().String(),
	}, testCreatorID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestSubcategoryCreate_CategoriaMalformadaEsNotFound(t *testing.T) {
	subUC, _ := newSubcategoryUC(t)
	// Un ID de categoría que ni siquiera parsea se reporta igual que uno inexistente.
	_, err := subUC.Create(dto.CreateSubcategoryRequest{
		Name:        "Gaseosas",
		Description: "x",
		Category:    "no-es-un-uuid",
	}, testCreatorID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestSubcategoryCreate_DuplicadoEnLaMismaCategoria(t *testing.T) {
	subUC, catUC := newSubcategoryUC(t)
	parent := mustCreateCategory(t, catUC, "Bebidas")
	mustCreateSubcategory(t, subUC, "Gaseosas", parent.ID)

	_, err := subUC.Create(dto.CreateSubcategoryRequest{
		Name:        "gaseosas", // insensible a mayúsculas dentro de la categoría
		Description: "x",
		Category:    parent.ID,
	}, testCreatorID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestSubcategoryCreate_MismoNombreOtraCategoria_RechazadoPorIndiceGlobal(t *testing.T) {
	subUC, catUC := newSubcategoryUC(t)
	bebidas := mustCreateCategory(t, catUC, "Bebidas")
	snacks := mustCreateCategory(t, catUC, "Snacks")
	mustCreateSubcategory(t, subUC, "Importados", bebidas.ID)

	// El pre-check por categoría pasa (otra categoría), pero el índice único
	// global sensible a mayúsculas rechaza el insert. Dos capas distintas.
	_, err := subUC.Create(dto.CreateSubcategoryRequest{
		Name:        "Importados",
		Description: "x",
		Category:    snacks.ID,
	}, testCreatorID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Equal(t, "La subcategoría ya existe", err.Error())
}

func TestSubcategoryCreate_MismoNombreOtraCategoriaOtraCaja_Pasa(t *testing.T) {
	subUC, catUC := newSubcategoryUC(t)
	bebidas := mustCreateCategory(t, catUC, "Bebidas")
	snacks := mustCreateCategory(t, catUC, "Snacks")
	mustCreateSubcategory(t, subUC, "Importados", bebidas.ID)

	// Distinta caja en otra categoría: el pre-check no aplica (otra categoría) y
	// el índice global es sensible a mayúsculas, así que "importados" es otro valor.
	out, err := subUC.Create(dto.CreateSubcategoryRequest{
		Name:        "importados",
		Description: "x",
		Category:    snacks.ID,
	}, testCreatorID)
	require.NoError(t, err)
	assert.Equal(t, "importados", out.Name)
}

func TestSubcategoryUpdate_CheckDuplicadoAcotadoPorCategoriaDelPatch(t *testing.T) {
	subUC, catUC := newSubcategoryUC(t)
	bebidas := mustCreateCategory(t, catUC, "Bebidas")
	snacks := mustCreateCategory(t, catUC, "Snacks")
	mustCreateSubcategory(t, subUC, "Gaseosas", bebidas.ID)
	sub := mustCreateSubcategory(t, subUC, "Dulces", snacks.ID)

	// El patch trae categoría snacks: el check se acota a snacks, donde "GASEOSAS"
	// no existe. El pre-check pasa; el índice global (sensible a mayúsculas) también,
	// porque "GASEOSAS" != "Gaseosas".
	out, err := subUC.Update(sub.ID, dto.UpdateSubcategoryRequest{
		Name:     strPtr("GASEOSAS"),
		Category: strPtr(snacks.ID),
	}, testCreatorID)
	require.NoError(t, err)
	assert.Equal(t, "GASEOSAS", out.Name)
}

func TestSubcategoryUpdate_SinCategoriaEnPatch_CheckSinAcotar(t *testing.T) {
	subUC, catUC := newSubcategoryUC(t)
	bebidas := mustCreateCategory(t, catUC, "Bebidas")
	snacks := mustCreateCategory(t, catUC, "Snacks")
	mustCreateSubcategory(t, subUC, "Gaseosas", bebidas.ID)
	sub := mustCreateSubcategory(t, subUC, "Dulces", snacks.ID)

	// Sin categoría en el patch el check de duplicado queda global: "gaseosas"
	// choca (insensible a mayúsculas) con la de Bebidas aunque viva en otra categoría.
	_, err := subUC.Update(sub.ID, dto.UpdateSubcategoryRequest{Name: strPtr("gaseosas")}, testCreatorID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestSubcategoryUpdate_ReenviarMismoNombreEsIdempotente(t *testing.T) {
	subUC, catUC := newSubcategoryUC(t)
	parent := mustCreateCategory(t, catUC, "Bebidas")
	sub := mustCreateSubcategory(t, subUC, "Gaseosas", parent.ID)

	out, err := subUC.Update(sub.ID, dto.UpdateSubcategoryRequest{Name: strPtr("Gaseosas")}, testCreatorID)
	require.NoError(t, err)
	assert.Equal(t, "Gaseosas", out.Name)
}

func TestSubcategoryUpdate_CategoriaDestinoInexistente(t *testing.T) {
	subUC, catUC := newSubcategoryUC(t)
	parent := mustCreateCategory(t, catUC, "Bebidas")
	sub := mustCreateSubcategory(t, subUC, "Gaseosas", parent.ID)

	_, err := subUC.Update(sub.ID, dto.UpdateSubcategoryRequest{Category: strPtr(uuid.New().String())}, testCreatorID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestSubcategoryDelete_DevuelveEntidadYNoCascada(t *testing.T) {
	subUC, catUC := newSubcategoryUC(t)
	parent := mustCreateCategory(t, catUC, "Bebidas")
	sub := mustCreateSubcategory(t, subUC, "Gaseosas", parent.ID)

	deleted, err := subUC.Delete(sub.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	assert.Equal(t, "Gaseosas", deleted.Name)

	// La categoría padre sigue intacta.
	got, err := catUC.GetByID(parent.ID)
	require.NoError(t, err)
	assert.Equal(t, parent.ID, got.ID)
}

func TestSubcategoryGetByID_IDInvalido(t *testing.T) {
	subUC, _ := newSubcategoryUC(t)
	_, err := subUC.GetByID("xxx")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}
