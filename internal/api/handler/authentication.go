package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/marketing-analytics-pipeline/internal/usecases/authenticating"
	"github.com/vfg2006/marketing-analytics-pipeline/pkg/apiErrors"
	"github.com/vfg2006/marketing-analytics-pipeline/pkg/log"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req LoginRequest

		// Decodificar o corpo da requisição
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		token, err := service.Login(req.Username, req.Password)
		if err != nil {
			handleLoginError(w, logger, err)
			return
		}

		logger.WithField("username", req.Username).Info("auth: operator logged in")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"token": token,
		})
	}
}

// handleLoginError trata erros específicos de login e retorna a resposta apropriada
func handleLoginError(w http.ResponseWriter, logger log.Logger, err error) {
	switch {
	case errors.Is(err, authenticating.ErrMissingCredentials):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Usuário e senha são obrigatórios", nil)
	case errors.Is(err, authenticating.ErrInvalidCredentials):
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Credenciais inválidas", nil)
	default:
		logger.WithField("error", err.Error()).Error("auth: unexpected login failure")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao realizar login", nil)
	}
}
