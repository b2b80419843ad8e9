package deleteuser

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"finschool/internal/core/domain/user"
	service "finschool/internal/core/services/delete_user"

	"github.com/go-chi/chi/v5"
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

func TestDeleteUserHandler(t *testing.T) {
	cases := []struct {
		id             string
		url            string
		serviceError   error
		expectedStatus int
		expectedInput  *service.Input
	}{
		{
			id:             "success",
			url:            "/admin/users/42",
			expectedStatus: http.StatusOK,
			expectedInput:  &service.Input{UserID: user.ID(42)},
		},
		{
			id:             "invalid-user-id",
			url:            "/admin/users/asd",
			expectedStatus: http.StatusNotFound,
		},
		{
			id:             "not-authenticated",
			url:            "/admin/users/42",
			serviceError:   user.ErrSessionDoesNotExist,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			id:             "permission-denied",
			url:            "/admin/users/42",
			serviceError:   user.ErrPermissionDenied,
			expectedStatus: http.StatusForbidden,
		},
		{
			id:             "user-does-not-exist",
			url:            "/admin/users/42",
			serviceError:   user.ErrUserDoesNotExist,
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			req, err := http.NewRequest("DELETE", testcase.url, nil)
			if err != nil {
				t.Fatal(err)
			}

			service := &stubService{err: testcase.serviceError}
			router := chi.NewRouter()
			router.Method(http.MethodDelete, "/admin/users/{userID:[0-9]+}", New(service))
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, testcase.expectedStatus, rr.Code)
			if testcase.expectedInput != nil {
				assert.Equal(t, testcase.expectedInput, service.input)
			}
		})
	}
}
