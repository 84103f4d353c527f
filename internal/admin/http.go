package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/anavarrete/frameteca/internal/platform/apperr"
	"github.com/anavarrete/frameteca/internal/platform/respond"
	"github.com/anavarrete/frameteca/internal/platform/validate"

	requestutil "github.com/anavarrete/frameteca/internal/platform/request"
)

const msgInvalidCredentials = "Credenciales inválidas"

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Handler exposes the operator login endpoint.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for the /auth resource.
func (h *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Post("/login", h.Login)
	return router
}

func (h *Handler) Login(writer http.ResponseWriter, request *http.Request) {
	var body loginRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Required("email", body.Email).
		Email("email", body.Email).
		Required("password", body.Password)
	if validator.HasErrors() {
		respond.Error(writer, request, validator.Err())
		return
	}

	token, ok := h.service.Login(body.Email, body.Password)
	if !ok {
		respond.Error(writer, request, apperr.Unauthorized(msgInvalidCredentials))
		return
	}

	respond.OK(writer, loginResponse{AccessToken: token, TokenType: "Bearer"})
}
