package signup

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	c "finschool/internal/core/domain/common"
	"finschool/internal/core/domain/user"
	service "finschool/internal/core/services/sign_up"

	"github.com/stretchr/testify/assert"
)

var NOW time.Time = time.Now().UTC()

type stubService struct {
	err   error
	input *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	if s.err != nil {
		return result, s.err
	}
	s.input = &input
	result.User = user.User{
		ID:           user.ID(1),
		Name:         input.Name,
		Surname:      input.Surname,
		Login:        input.Login,
		Email:        input.Email,
		PasswordHash: user.PasswordHash("test-hash"),
		RegisteredAt: NOW,
	}
	result.Token = user.SessionToken("test-session-token")
	return result, nil
}

func TestSignUpHandler(t *testing.T) {
	cases := []struct {
		id             string
		body           string
		serviceError   error
		expectedStatus int
		expectedInput  *service.Input
	}{
		{
			id: "success",
			body: `{"name": "John", "surname": "Doe", "login": "john.doe",
				"email": "test@test.test", "password": "test-password",
				"second_password": "test-password"}`,
			expectedStatus: http.StatusCreated,
			expectedInput: &service.Input{
				Name:     "John",
				Surname:  "Doe",
				Login:    user.Login("john.doe"),
				Email:    c.Email("test@test.test"),
				Password: user.RawPassword("test-password"),
			},
		},
		{
			id:             "invalid-json",
			body:           `{"login": `,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id: "missing-login",
			body: `{"email": "test@test.test", "password": "test-password",
				"second_password": "test-password"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id: "invalid-email",
			body: `{"login": "john.doe", "email": "not-an-email",
				"password": "test-password", "second_password": "test-password"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id: "password-too-short",
			body: `{"login": "john.doe", "email": "test@test.test",
				"password": "short", "second_password": "short"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id: "passwords-do-not-match",
			body: `{"login": "john.doe", "email": "test@test.test",
				"password": "test-password", "second_password": "other-password"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id: "login-already-exists",
			body: `{"login": "john.doe", "email": "test@test.test",
				"password": "test-password", "second_password": "test-password"}`,
			serviceError:   user.ErrLoginAlreadyExists,
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			id: "email-already-exists",
			body: `{"login": "john.doe", "email": "test@test.test",
				"password": "test-password", "second_password": "test-password"}`,
			serviceError:   user.ErrEmailAlreadyExists,
			expectedStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			req, err := http.NewRequest("POST", "/auth/signup", strings.NewReader(testcase.body))
			if err != nil {
				t.Fatal(err)
			}

			service := &stubService{err: testcase.serviceError}
			rr := httptest.NewRecorder()
			handler := New(service)
			handler.ServeHTTP(rr, req)

			assert.Equal(t, testcase.expectedStatus, rr.Code)
			if testcase.expectedInput != nil {
				assert.Equal(t, testcase.expectedInput, service.input)
			}
		})
	}
}
