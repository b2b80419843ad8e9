package verifypasswordresettoken

import (
	"errors"
	"finschool/internal/core/domain/user"
	"finschool/internal/core/services"
	service "finschool/internal/core/services/verify_password_reset_token"
	"finschool/internal/http/handlers/response"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(
	service services.Service[service.Input, service.Result],
) *Handler {
	return &Handler{service: service}
}

type Result struct {
	Email string `json:"email"`
}

// ServeHTTP handles the GET on a redemption link. A valid token returns
// the email the token is bound to so the client can show the
// new-password form.
func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	if token == "" || len(token) > 1024 {
		response.RenderError(rw, "invalid token", http.StatusUnprocessableEntity)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		service.Input{Token: user.PasswordResetToken(token)},
	)
	if errors.Is(err, user.ErrPasswordResetTokenExpired) {
		response.RenderError(
			rw,
			"this token has expired, please request a new password reset",
			http.StatusUnprocessableEntity,
		)
		return
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		response.RenderError(rw, "invalid token or user does not exist", http.StatusUnprocessableEntity)
		return
	}
	if errors.Is(err, user.ErrPasswordResetTokenInvalid) {
		response.RenderError(rw, "invalid token", http.StatusUnprocessableEntity)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.Render(rw, Result{Email: string(result.Email)}, http.StatusOK)
}
