package langpack

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/anavarrete/frameteca/internal/platform/apperr"
	"github.com/anavarrete/frameteca/internal/platform/respond"

	requestutil "github.com/anavarrete/frameteca/internal/platform/request"
)

const (
	msgInvalidLanguage = "Idioma no soportado. Debe ser uno de: es, en, fr"
	msgLangPackFailed  = "Error al obtener las traducciones"
)

// Handler exposes the UI language packs over HTTP.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for the /i18n resource.
func (h *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/{lang}", h.Get)
	return router
}

func (h *Handler) Get(writer http.ResponseWriter, request *http.Request) {
	lang := strings.ToLower(requestutil.Param(request, "lang"))
	if !IsSupported(lang) {
		respond.Error(writer, request, apperr.NotFound(msgInvalidLanguage))
		return
	}

	pack, err := h.service.Get(request.Context(), lang)
	if err != nil {
		respond.Error(writer, request, apperr.Internal(msgLangPackFailed, err))
		return
	}
	respond.OK(writer, pack)
}
