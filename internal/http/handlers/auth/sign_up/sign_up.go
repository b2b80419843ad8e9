package signup

import (
	"encoding/json"
	"errors"
	c "finschool/internal/core/domain/common"
	"finschool/internal/core/domain/user"
	"finschool/internal/core/services"
	signup "finschool/internal/core/services/sign_up"
	"finschool/internal/http/handlers/response"
	"io"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type Handler struct {
	service services.Service[signup.Input, signup.Result]
}

func New(
	service services.Service[signup.Input, signup.Result],
) *Handler {
	return &Handler{service: service}
}

type Input struct {
	Name           string `json:"name"`
	Surname        string `json:"surname"`
	Login          string `json:"login"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	SecondPassword string `json:"second_password"`
}

type Result struct {
	User  response.User `json:"user"`
	Token string        `json:"token"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Name, validation.Length(0, 256)),
		validation.Field(&i.Surname, validation.Length(0, 256)),
		validation.Field(&i.Login, validation.Required, validation.Length(1, 128)),
		validation.Field(&i.Email, validation.Required, is.Email, validation.Length(0, 512)),
		validation.Field(&i.Password, validation.Required, validation.Length(8, 256)),
		validation.Field(&i.SecondPassword, validation.Required, validation.By(i.matchesPassword)),
	)
}

func (i Input) matchesPassword(value interface{}) error {
	secondPassword, _ := value.(string)
	if secondPassword != i.Password {
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

	result, err := h.service.Run(
		r.Context(),
		signup.Input{
			Name:     input.Name,
			Surname:  input.Surname,
			Login:    user.Login(input.Login),
			Email:    c.NewEmail(input.Email),
			Password: user.RawPassword(input.Password),
		},
	)
	if errors.Is(err, user.ErrLoginAlreadyExists) || errors.Is(err, user.ErrEmailAlreadyExists) {
		response.RenderError(
			rw,
			"this email or login already exist, please try another",
			http.StatusUnprocessableEntity,
		)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	respUser := response.User{}
	respUser.FromDomainUser(result.User)
	response.Render(rw, Result{User: respUser, Token: string(result.Token)}, http.StatusCreated)
}
