package topics

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(repo *fakeRepository) http.Handler {
	service := newTestService(repo, &fakeSchema{}, &fakeMigrator{migrated: 2})
	handler := NewHandler(service, "test", slog.Default())

	router := chi.NewRouter()
	router.Mount("/topics", handler.Routes())
	router.Mount("/seed", handler.SeedRoutes())
	router.Mount("/migrate", handler.MigrationRoutes())
	return router
}

// envelope mirrors the wire shape for assertions.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Count   *int            `json:"count"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Details string          `json:"details"`
}

func doRequest(t *testing.T, router http.Handler, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	request := httptest.NewRequest(method, path, strings.NewReader(body))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	var parsed envelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &parsed))
	return recorder, parsed
}

/*
TestHandler_List returns the envelope with data and count.
*/
func TestHandler_List(t *testing.T) {
	repo := newFakeRepository()
	_, err := repo.Create(context.Background(), CreateInput{Titulo: "Uno"})
	require.NoError(t, err)

	recorder, body := doRequest(t, newTestRouter(repo), http.MethodGet, "/topics", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, body.Success)
	require.NotNil(t, body.Count)
	assert.Equal(t, 1, *body.Count)
}

/*
TestHandler_Get_InvalidID rejects non-numeric ids with the fixed message.
*/
func TestHandler_Get_InvalidID(t *testing.T) {
	recorder, body := doRequest(t, newTestRouter(newFakeRepository()), http.MethodGet, "/topics/abc", "")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.False(t, body.Success)
	assert.Equal(t, "ID inválido", body.Error)
}

/*
TestHandler_Get_NotFound maps a missing row to 404. Zero and negative ids
parse fine and fall through to the lookup, which misses.
*/
func TestHandler_Get_NotFound(t *testing.T) {
	router := newTestRouter(newFakeRepository())

	for _, path := range []string{"/topics/99", "/topics/0", "/topics/-1"} {
		recorder, body := doRequest(t, router, http.MethodGet, path, "")
		assert.Equal(t, http.StatusNotFound, recorder.Code, path)
		assert.Equal(t, "Topic no encontrado", body.Error, path)
	}
}

/*
TestHandler_Create_RequiresTitulo rejects a payload with no title before
touching storage.
*/
func TestHandler_Create_RequiresTitulo(t *testing.T) {
	repo := newFakeRepository()
	recorder, body := doRequest(t, newTestRouter(repo), http.MethodPost, "/topics", `{"frameworks":["react"]}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "El campo titulo es requerido", body.Error)
	assert.Equal(t, 0, repo.createCalls)
}

/*
TestHandler_Create_Success returns 201 with the created topic and message.
*/
func TestHandler_Create_Success(t *testing.T) {
	recorder, body := doRequest(t, newTestRouter(newFakeRepository()), http.MethodPost, "/topics",
		`{"titulo":"¿Qué es el Routing?","frameworks":["React"]}`)

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.True(t, body.Success)
	assert.Equal(t, "Topic creado exitosamente", body.Message)

	var created Topic
	require.NoError(t, json.Unmarshal(body.Data, &created))
	assert.Equal(t, "que-es-el-routing", created.Slug)
	assert.Equal(t, []string{"react"}, created.Frameworks)
}

/*
TestHandler_Update_NotFound maps a missing row to 404 on update. The
existence check runs before the patch is even examined, so an empty body
gets the same answer.
*/
func TestHandler_Update_NotFound(t *testing.T) {
	router := newTestRouter(newFakeRepository())

	recorder, body := doRequest(t, router, http.MethodPut, "/topics/42", `{"titulo":"Nuevo"}`)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "Topic no encontrado", body.Error)

	recorder, body = doRequest(t, router, http.MethodPut, "/topics/99", `{}`)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "Topic no encontrado", body.Error)
}

/*
TestHandler_Update_EmptyPatch verifies that an empty patch on an existing
row surfaces as the fixed 500 message with the repository error in details.
*/
func TestHandler_Update_EmptyPatch(t *testing.T) {
	repo := newFakeRepository()
	_, err := repo.Create(context.Background(), CreateInput{Titulo: "Existente"})
	require.NoError(t, err)

	recorder, body := doRequest(t, newTestRouter(repo), http.MethodPut, "/topics/1", `{}`)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.False(t, body.Success)
	assert.Equal(t, "Error al actualizar el topic", body.Error)
	assert.Equal(t, "No fields to update", body.Details)
}

/*
TestHandler_Delete_Success returns the deleted row and message.
*/
func TestHandler_Delete_Success(t *testing.T) {
	repo := newFakeRepository()
	_, err := repo.Create(context.Background(), CreateInput{Titulo: "Borrar"})
	require.NoError(t, err)

	recorder, body := doRequest(t, newTestRouter(repo), http.MethodDelete, "/topics/1", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Topic eliminado exitosamente", body.Message)
	assert.Empty(t, repo.topics)
}

/*
TestHandler_ByFramework_Invalid rejects unknown frameworks without a
storage round-trip.
*/
func TestHandler_ByFramework_Invalid(t *testing.T) {
	repo := newFakeRepository()
	recorder, body := doRequest(t, newTestRouter(repo), http.MethodGet, "/topics/framework/jquery", "")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "Framework inválido. Debe ser uno de: react, vue, angular, svelte", body.Error)
	assert.Equal(t, 0, repo.byFrameworkCalls)
}

/*
TestHandler_BySlug_NotFound maps an unknown slug to 404 with its own message.
*/
func TestHandler_BySlug_NotFound(t *testing.T) {
	recorder, body := doRequest(t, newTestRouter(newFakeRepository()), http.MethodGet, "/topics/slug/no-existe", "")

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "Topic no encontrado", body.Error)
}

/*
TestHandler_Children lists the topics whose parent_id points at the given
id, and answers an empty collection for a childless topic.
*/
func TestHandler_Children(t *testing.T) {
	repo := newFakeRepository()
	parent, err := repo.Create(context.Background(), CreateInput{Titulo: "Padre"})
	require.NoError(t, err)
	_, err = repo.Create(context.Background(), CreateInput{Titulo: "Hijo", ParentID: &parent.ID})
	require.NoError(t, err)

	router := newTestRouter(repo)

	// 1. The parent has one child
	recorder, body := doRequest(t, router, http.MethodGet, "/topics/1/children", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, body.Success)
	require.NotNil(t, body.Count)
	assert.Equal(t, 1, *body.Count)

	// 2. The child has none
	recorder, body = doRequest(t, router, http.MethodGet, "/topics/2/children", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	require.NotNil(t, body.Count)
	assert.Equal(t, 0, *body.Count)

	// 3. A non-numeric id is still rejected
	recorder, body = doRequest(t, router, http.MethodGet, "/topics/abc/children", "")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "ID inválido", body.Error)
}

/*
TestHandler_ByDifficulty filters by level and rejects unknown levels with
the fixed enumeration message.
*/
func TestHandler_ByDifficulty(t *testing.T) {
	repo := newFakeRepository()
	_, err := repo.Create(context.Background(), CreateInput{Titulo: "Básico", DifficultyLevel: "beginner"})
	require.NoError(t, err)
	_, err = repo.Create(context.Background(), CreateInput{Titulo: "Medio"})
	require.NoError(t, err)

	router := newTestRouter(repo)

	// 1. Exact level match, case-insensitive in the path
	recorder, body := doRequest(t, router, http.MethodGet, "/topics/difficulty/Beginner", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, body.Success)
	require.NotNil(t, body.Count)
	assert.Equal(t, 1, *body.Count)

	// 2. Unknown level
	recorder, body = doRequest(t, router, http.MethodGet, "/topics/difficulty/expert", "")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "Nivel inválido. Debe ser uno de: beginner, intermediate, advanced", body.Error)
}

/*
TestHandler_Seed_AlreadySeeded returns the refusal envelope: a message and
the current count, but no error string.
*/
func TestHandler_Seed_AlreadySeeded(t *testing.T) {
	repo := newFakeRepository()
	_, err := repo.Create(context.Background(), CreateInput{Titulo: "Existente"})
	require.NoError(t, err)

	recorder, body := doRequest(t, newTestRouter(repo), http.MethodPost, "/seed", "")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.False(t, body.Success)
	assert.Equal(t, "La base de datos ya contiene datos", body.Message)
	assert.Empty(t, body.Error)
	require.NotNil(t, body.Count)
	assert.Equal(t, 1, *body.Count)
}

/*
TestHandler_Seed_Force reseeds over existing data.
*/
func TestHandler_Seed_Force(t *testing.T) {
	repo := newFakeRepository()
	_, err := repo.Create(context.Background(), CreateInput{Titulo: "Existente"})
	require.NoError(t, err)

	recorder, body := doRequest(t, newTestRouter(repo), http.MethodPost, "/seed?force=true", "")

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.True(t, body.Success)
	assert.Equal(t, "Base de datos inicializada exitosamente", body.Message)
	require.NotNil(t, body.Count)
	assert.Equal(t, len(sampleTopics()), *body.Count)
}

/*
TestHandler_Migration_StatusAndRun covers both migrate endpoints.
*/
func TestHandler_Migration_StatusAndRun(t *testing.T) {
	router := newTestRouter(newFakeRepository())

	// 1. GET reports availability and the environment
	recorder, body := doRequest(t, router, http.MethodGet, "/migrate", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Endpoint de migración disponible", body.Message)

	// 2. POST runs the backfill and reports the row count
	recorder, body = doRequest(t, router, http.MethodPost, "/migrate", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Migración completada exitosamente", body.Message)
	require.NotNil(t, body.Count)
	assert.Equal(t, 2, *body.Count)
}
