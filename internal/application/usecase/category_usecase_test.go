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

const testCreatorID = "00000000-0000-0000-0000-0000000000aa"

func newCategoryUC() (*usecase.CategoryUseCase, *fakeCategoryRepo) {
	repo := &fakeCategoryRepo{}
	return usecase.NewCategoryUseCase(repo), repo
}

func mustCreateCategory(t *testing.T, uc *usecase.CategoryUseCase, name string) *dto.CategoryResponse {
	t.Helper()
	out, err := uc.Create(dto.CreateCategoryRequest{Name: name, Description: "desc de " + name}, testCreatorID)
	require.NoError(t, err)
	require.NotNil(t, out)
	return out
}

func strPtr(s string) *string { return &s }

func TestCategoryCreate_OK(t *testing.T) {
	uc, _ := newCategoryUC()
	out, err := uc.Create(dto.CreateCategoryRequest{Name: "  Bebidas  ", Description: "Bebidas frías y calientes"}, testCreatorID)
	require.NoError(t, err)

	assert.Equal(t, "Bebidas", out.Name, "el nombre debe guardarse con trim")
	assert.True(t, out.IsActive, "una categoría nueva nace activa")
	require.NotNil(t, out.CreatedBy)
	assert.Equal(t, testCreatorID, out.CreatedBy.ID)
	assert.NoError(t, uuid.Validate(out.ID))
}

func TestCategoryCreate_Validaciones(t *testing.T) {
	uc, _ := newCategoryUC()

	cases := []struct {
		name    string
		in      dto.CreateCategoryRequest
		wantMsg string
	}{
		{"nombre vacío", dto.CreateCategoryRequest{Name: "   ", Description: "x"}, "El nombre de la categoría es obligatorio"},
		{"descripción vacía", dto.CreateCategoryRequest{Name: "Bebidas", Description: "  "}, "La descripción es obligatoria"},
		{"nombre corto", dto.CreateCategoryRequest{Name: "ab", Description: "x"}, "El nombre debe tener al menos 3 caracteres"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(tc.in, testCreatorID)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Equal(t, tc.wantMsg, err.Error())
		})
	}
}

func TestCategoryCreate_NombreLargo(t *testing.T) {
	uc, _ := newCategoryUC()
	long := make([]rune, 51)
	for i := range long {
		long[i] = 'á' // multibyte: el límite es en caracteres, no en bytes
	}
	_, err := uc.Create(dto.CreateCategoryRequest{Name: string(long), Description: "x"}, testCreatorID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, "El nombre no puede exceder 50 caracteres", err.Error())
}

func TestCategoryCreate_DuplicadoInsensibleAMayusculas(t *testing.T) {
	uc, _ := newCategoryUC()
	mustCreateCategory(t, uc, "Bebidas")

	_, err := uc.Create(dto.CreateCategoryRequest{Name: "bebidas", Description: "otra"}, testCreatorID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Equal(t, "Ya existe una categoría con ese nombre", err.Error())
}

func TestCategoryList_MasRecientesPrimero(t *testing.T) {
	uc, _ := newCategoryUC()
	mustCreateCategory(t, uc, "Primera")
	mustCreateCategory(t, uc, "Segunda")

	items, err := uc.List()
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Segunda", items[0].Name)
	assert.Equal(t, "Primera", items[1].Name)
}

func TestCategoryGetByID_IDInvalido(t *testing.T) {
	uc, _ := newCategoryUC()
	_, err := uc.GetByID("no-es-un-uuid")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}

func TestCategoryGetByID_NoEncontrada(t *testing.T) {
	uc, _ := newCategoryUC()
	_, err := uc.GetByID(uuid.New().String())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryUpdate_Parcial(t *testing.T) {
	uc, _ := newCategoryUC()
	created := mustCreateCategory(t, uc, "Bebidas")

	out, err := uc.Update(created.ID, dto.UpdateCategoryRequest{Description: strPtr("Solo bebidas frías")}, testCreatorID)
	require.NoError(t, err)
	assert.Equal(t, "Bebidas", out.Name, "el nombre no viene en el patch y no debe cambiar")
	assert.Equal(t, "Solo bebidas frías", out.Description)
	require.NotNil(t, out.UpdatedBy, "toda actualización registra updatedBy")
}

func TestCategoryUpdate_CampoVacioNoSeAplica(t *testing.T) {
	uc, _ := newCategoryUC()
	created := mustCreateCategory(t, uc, "Bebidas")

	out, err := uc.Update(created.ID, dto.UpdateCategoryRequest{Name: strPtr("   ")}, testCreatorID)
	require.NoError(t, err)
	assert.Equal(t, "Bebidas", out.Name, "un nombre vacío tras trim se ignora")
}

func TestCategoryUpdate_MismoNombreNoEsDuplicado(t *testing.T) {
	uc, _ := newCategoryUC()
	created := mustCreateCategory(t, uc, "Bebidas")

	// Re-enviar el mismo nombre es idempotente: el check excluye la propia entidad.
	out, err := uc.Update(created.ID, dto.UpdateCategoryRequest{Name: strPtr("Bebidas")}, testCreatorID)
	require.NoError(t, err)
	assert.Equal(t, "Bebidas", out.Name)
}

func TestCategoryUpdate_NombreDeOtraEsDuplicado(t *testing.T) {
	uc, _ := newCategoryUC()
	mustCreateCategory(t, uc, "Bebidas")
	otra := mustCreateCategory(t, uc, "Snacks")

	_, err := uc.Update(otra.ID, dto.UpdateCategoryRequest{Name: strPtr("BEBIDAS")}, testCreatorID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCategoryDelete_DevuelveEntidadEliminada(t *testing.T) {
	uc, _ := newCategoryUC()
	created := mustCreateCategory(t, uc, "Bebidas")

	deleted, err := uc.Delete(created.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	assert.Equal(t, created.ID, deleted.ID)
	assert.Equal(t, "Bebidas", deleted.Name)

	_, err = uc.GetByID(created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryDelete_NoEncontrada(t *testing.T) {
	uc, _ := newCategoryUC()
	_, err := uc.Delete(uuid.New().String())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
