package listusers

import (
	"errors"
	"finschool/internal/core/domain/user"
	"finschool/internal/core/services"
	service "finschool/internal/core/services/list_users"
	"finschool/internal/http/handlers/response"
	"net/http"
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
	Users []response.User `json:"users"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(
		r.Context(),
		service.Input{},
	)
	if errors.Is(err, user.ErrSessionDoesNotExist) {
		response.RenderUnauthorized(rw)
		return
	}
	if errors.Is(err, user.ErrPermissionDenied) {
		response.RenderForbidden(rw)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	users := make([]response.User, 0, len(result.Users))
	for _, domainUser := range result.Users {
		respUser := response.User{}
		respUser.FromDomainUser(domainUser)
		users = append(users, respUser)
	}
	response.Render(rw, Result{Users: users}, http.StatusOK)
}
