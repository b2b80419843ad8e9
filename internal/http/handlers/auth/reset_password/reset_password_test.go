package resetpassword

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"finschool/internal/core/domain/user"
	service "finschool/internal/core/services/reset_password"

	"github.com/stretchr/testify/assert"
)

type stubService struct {
	err   error
	input *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	if s.err != nil {
		return result, s.err
	}
	s.input = &input
	return result, nil
}

func TestResetPasswordHandler(t *testing.T) {
	cases := []struct {
		id             string
		body           string
		serviceError   error
		expectedStatus int
		expectedInput  *service.Input
	}{
		{
			id: "success",
			body: `{"token": "test-token", "password": "NewPass99",
				"confirm_password": "NewPass99"}`,
			expectedStatus: http.StatusOK,
			expectedInput: &service.Input{
				Token:       user.PasswordResetToken("test-token"),
				NewPassword: user.RawPassword("NewPass99"),
			},
		},
		{
			id:             "invalid-json",
			body:           `{"token": `,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "missing-token",
			body:           `{"password": "NewPass99", "confirm_password": "NewPass99"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "password-too-short",
			body:           `{"token": "test-token", "password": "short", "confirm_password": "short"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id: "passwords-do-not-match",
			body: `{"token": "test-token", "password": "NewPass99",
				"confirm_password": "OtherPass99"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id: "token-expired",
			body: `{"token": "test-token", "password": "NewPass99",
				"confirm_password": "NewPass99"}`,
			serviceError:   user.ErrPasswordResetTokenExpired,
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			id: "user-does-not-exist",
			body: `{"token": "test-token", "password": "NewPass99",
				"confirm_password": "NewPass99"}`,
			serviceError:   user.ErrUserDoesNotExist,
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			id: "token-invalid",
			body: `{"token": "test-token", "password": "NewPass99",
				"confirm_password": "NewPass99"}`,
			serviceError:   user.ErrPasswordResetTokenInvalid,
			expectedStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			req, err := http.NewRequest("PUT", "/auth/password_reset", strings.NewReader(testcase.body))
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
