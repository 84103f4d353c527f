package topics

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/anavarrete/frameteca/internal/platform/apperr"
	"github.com/anavarrete/frameteca/internal/platform/respond"
	"github.com/anavarrete/frameteca/pkg/convert"

	requestutil "github.com/anavarrete/frameteca/internal/platform/request"
)

// Client-facing copy for the topic endpoints. The frontend matches on these
// strings, so they are fixed Spanish regardless of the requested language.
const (
	msgInvalidID        = "ID inválido"
	msgTopicNotFound    = "Topic no encontrado"
	msgSlugRequired     = "Slug es requerido"
	msgTituloRequired   = "El campo titulo es requerido"
	msgInvalidFramework = "Framework inválido. Debe ser uno de: react, vue, angular, svelte"
	msgInvalidLevel     = "Nivel inválido. Debe ser uno de: beginner, intermediate, advanced"

	msgListFailed        = "Error al obtener los topics"
	msgCreateFailed      = "Error al crear el topic"
	msgGetFailed         = "Error al obtener el topic"
	msgUpdateFailed      = "Error al actualizar el topic"
	msgDeleteFailed      = "Error al eliminar el topic"
	msgByFrameworkFailed = "Error al obtener topics por framework"
	msgBySlugFailed      = "Error al obtener el topic por slug"
	msgSeedFailed        = "Error al inicializar la base de datos"
	msgMigrationFailed   = "Error durante la migración"

	msgCreated          = "Topic creado exitosamente"
	msgUpdated          = "Topic actualizado exitosamente"
	msgDeleted          = "Topic eliminado exitosamente"
	msgSeeded           = "Base de datos inicializada exitosamente"
	msgDropped          = "Tabla de topics eliminada exitosamente"
	msgMigrated         = "Migración completada exitosamente"
	msgMigrateAvailable = "Endpoint de migración disponible"
	msgAlreadySeeded    = "La base de datos ya contiene datos"
)

// Handler exposes the topic catalogue over HTTP.
type Handler struct {
	service     *Service
	environment string
	logger      *slog.Logger
}

func NewHandler(service *Service, environment string, logger *slog.Logger) *Handler {
	return &Handler{service: service, environment: environment, logger: logger}
}

// Routes returns the router for the /topics resource.
//
// Literal segments (framework, slug, difficulty) are registered before the
// numeric {id} pattern; chi resolves static segments first so both can
// coexist at the same depth.
func (h *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", h.List)
	router.Post("/", h.Create)
	router.Get("/framework/{framework}", h.ByFramework)
	router.Get("/slug/{slug}", h.BySlug)
	router.Get("/difficulty/{level}", h.ByDifficulty)
	router.Get("/{id}", h.Get)
	router.Put("/{id}", h.Update)
	router.Delete("/{id}", h.Delete)
	router.Get("/{id}/children", h.Children)

	return router
}

// SeedRoutes returns the router for the /seed maintenance resource.
func (h *Handler) SeedRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", h.SeedStatus)
	router.Post("/", h.SeedDatabase)
	router.Delete("/", h.DropDatabase)

	return router
}

// MigrationRoutes returns the router for the /migrate maintenance resource.
func (h *Handler) MigrationRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", h.MigrationStatus)
	router.Post("/", h.RunMigration)

	return router
}

// # Topic CRUD

func (h *Handler) List(writer http.ResponseWriter, request *http.Request) {
	items, err := h.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, apperr.Internal(msgListFailed, err))
		return
	}
	respond.Collection(writer, items, len(items))
}

func (h *Handler) Get(writer http.ResponseWriter, request *http.Request) {
	id, ok := parseID(requestutil.Param(request, "id"))
	if !ok {
		respond.Error(writer, request, apperr.Validation(msgInvalidID))
		return
	}

	topic, err := h.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, apperr.Internal(msgGetFailed, err))
		return
	}
	if topic == nil {
		respond.Error(writer, request, apperr.NotFound(msgTopicNotFound))
		return
	}
	respond.OK(writer, topic)
}

func (h *Handler) Create(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if strings.TrimSpace(input.Titulo) == "" {
		respond.Error(writer, request, apperr.Validation(msgTituloRequired))
		return
	}

	topic, err := h.service.Create(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, apperr.Internal(msgCreateFailed, err))
		return
	}
	respond.Created(writer, topic, msgCreated)
}

func (h *Handler) Update(writer http.ResponseWriter, request *http.Request) {
	id, ok := parseID(requestutil.Param(request, "id"))
	if !ok {
		respond.Error(writer, request, apperr.Validation(msgInvalidID))
		return
	}

	// Existence is checked before the mutation, so a missing id is a 404
	// even when the patch itself would be rejected. The row can still
	// vanish between the check and the write; the nil result below covers
	// that window.
	existing, err := h.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, apperr.Internal(msgUpdateFailed, err))
		return
	}
	if existing == nil {
		respond.Error(writer, request, apperr.NotFound(msgTopicNotFound))
		return
	}

	var patch UpdateInput
	if err := requestutil.DecodeJSON(request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	topic, err := h.service.Update(request.Context(), id, patch)
	if err != nil {
		// ErrNoFieldsToUpdate included: every repository error surfaces as
		// the fixed 500 message with the cause in details.
		respond.Error(writer, request, apperr.Internal(msgUpdateFailed, err))
		return
	}
	if topic == nil {
		respond.Error(writer, request, apperr.NotFound(msgTopicNotFound))
		return
	}
	respond.Mutated(writer, topic, msgUpdated)
}

func (h *Handler) Delete(writer http.ResponseWriter, request *http.Request) {
	id, ok := parseID(requestutil.Param(request, "id"))
	if !ok {
		respond.Error(writer, request, apperr.Validation(msgInvalidID))
		return
	}

	topic, err := h.service.Delete(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, apperr.Internal(msgDeleteFailed, err))
		return
	}
	if topic == nil {
		respond.Error(writer, request, apperr.NotFound(msgTopicNotFound))
		return
	}
	respond.Mutated(writer, topic, msgDeleted)
}

// # Topic queries

func (h *Handler) ByFramework(writer http.ResponseWriter, request *http.Request) {
	framework := strings.ToLower(requestutil.Param(request, "framework"))
	if !IsFrameworkValid(framework) {
		respond.Error(writer, request, apperr.Validation(msgInvalidFramework))
		return
	}

	items, err := h.service.ByFramework(request.Context(), framework)
	if err != nil {
		respond.Error(writer, request, apperr.Internal(msgByFrameworkFailed, err))
		return
	}
	respond.Collection(writer, items, len(items))
}

func (h *Handler) BySlug(writer http.ResponseWriter, request *http.Request) {
	slugValue := requestutil.Param(request, "slug")
	if strings.TrimSpace(slugValue) == "" {
		respond.Error(writer, request, apperr.Validation(msgSlugRequired))
		return
	}

	topic, err := h.service.BySlug(request.Context(), slugValue)
	if err != nil {
		respond.Error(writer, request, apperr.Internal(msgBySlugFailed, err))
		return
	}
	if topic == nil {
		respond.Error(writer, request, apperr.NotFound(msgTopicNotFound))
		return
	}
	respond.OK(writer, topic)
}

func (h *Handler) Children(writer http.ResponseWriter, request *http.Request) {
	id, ok := parseID(requestutil.Param(request, "id"))
	if !ok {
		respond.Error(writer, request, apperr.Validation(msgInvalidID))
		return
	}

	items, err := h.service.Children(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, apperr.Internal(msgListFailed, err))
		return
	}
	respond.Collection(writer, items, len(items))
}

func (h *Handler) ByDifficulty(writer http.ResponseWriter, request *http.Request) {
	level := strings.ToLower(requestutil.Param(request, "level"))
	if !IsDifficultyValid(level) {
		respond.Error(writer, request, apperr.Validation(msgInvalidLevel))
		return
	}

	items, err := h.service.ByDifficulty(request.Context(), level)
	if err != nil {
		respond.Error(writer, request, apperr.Internal(msgListFailed, err))
		return
	}
	respond.Collection(writer, items, len(items))
}

// # Maintenance: seed

func (h *Handler) SeedStatus(writer http.ResponseWriter, request *http.Request) {
	count, err := h.service.Count(request.Context())
	if err != nil {
		respond.Error(writer, request, apperr.Internal(msgSeedFailed, err))
		return
	}

	respond.JSON(writer, http.StatusOK, respond.Envelope{
		Success: true,
		Count:   &count,
		Data:    map[string]bool{"seeded": count > 0},
	})
}

func (h *Handler) SeedDatabase(writer http.ResponseWriter, request *http.Request) {
	force := convert.ToBool(requestutil.Query(request, "force"))

	result, err := h.service.Seed(request.Context(), force)
	if err != nil {
		respond.Error(writer, request, apperr.Internal(msgSeedFailed, err))
		return
	}

	if result.AlreadySeeded {
		// Refusal, not failure of the storage layer: the envelope carries a
		// message (not an error) plus the current row count.
		respond.JSON(writer, http.StatusBadRequest, respond.Envelope{
			Success: false,
			Message: msgAlreadySeeded,
			Count:   &result.ExistingCount,
		})
		return
	}

	created := len(result.Created)
	respond.JSON(writer, http.StatusCreated, respond.Envelope{
		Success: true,
		Message: msgSeeded,
		Data:    result.Created,
		Count:   &created,
	})
}

func (h *Handler) DropDatabase(writer http.ResponseWriter, request *http.Request) {
	if err := h.service.DropAll(request.Context()); err != nil {
		respond.Error(writer, request, apperr.Internal(msgSeedFailed, err))
		return
	}
	respond.Mutated(writer, nil, msgDropped)
}

// # Maintenance: legacy migration

func (h *Handler) MigrationStatus(writer http.ResponseWriter, request *http.Request) {
	respond.JSON(writer, http.StatusOK, respond.Envelope{
		Success: true,
		Message: msgMigrateAvailable,
		Data:    map[string]string{"environment": h.environment},
	})
}

func (h *Handler) RunMigration(writer http.ResponseWriter, request *http.Request) {
	migrated, err := h.service.MigrateLegacy(request.Context())
	if err != nil {
		respond.Error(writer, request, apperr.Internal(msgMigrationFailed, err))
		return
	}

	respond.JSON(writer, http.StatusOK, respond.Envelope{
		Success: true,
		Message: msgMigrated,
		Count:   &migrated,
	})
}

// parseID parses an integer route parameter. Zero and negative values are
// accepted; they simply never match a row, so the lookup answers 404.
func parseID(raw string) (int, bool) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return id, true
}
