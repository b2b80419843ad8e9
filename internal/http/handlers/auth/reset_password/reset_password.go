package resetpassword

import (
	"encoding/json"
	"errors"
	e "finschool/internal/core/domain/errors"
	"finschool/internal/core/domain/user"
	"finschool/internal/core/services"
	resetpassword "finschool/internal/core/services/reset_password"
	"finschool/internal/http/handlers/response"
	"io"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[resetpassword.Input, resetpassword.Result]
}

func New(
	service services.Service[resetpassword.Input, resetpassword.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	Token           string `json:"token"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Token, validation.Required, validation.Length(0, 1024)),
		validation.Field(
			&i.Password,
			validation.Required,
			validation.Length(8, 256).Error("the length must be at least 8 characters"),
		),
		validation.Field(&i.ConfirmPassword, validation.Required, validation.By(i.matchesPassword)),
	)
}

func (i Input) matchesPassword(value interface{}) error {
	confirmPassword, _ := value.(string)
	if confirmPassword != i.Password {
		return errors.New("passwords do not match")
	}
	return nil
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	_, err := h.service.Run(
		r.Context(),
		resetpassword.Input{
			Token:       user.PasswordResetToken(input.Token),
			NewPassword: user.RawPassword(input.Password),
		},
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

	response.Render(rw, struct{}{}, http.StatusOK)
}
