package login

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/postit/internal/models"
)

type AuthServiceMock struct {
	mock.Mock
}

func (m *AuthServiceMock) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestLoginHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    any
		mockToken      string
		mockErr        error
		callService    bool
		wantStatusCode int
		wantBody       string
		wantHeader     string
		wantErrorCode  string
	}{
		{
			name:           "valid login",
			requestBody:    models.UserRequest{Mail: "a@x.com", Password: "password123"},
			mockToken:      "tok",
			callService:    true,
			wantStatusCode: http.StatusOK,
			wantBody:       "tok",
			wantHeader:     "tok",
		},
		{
			name:           "invalid json body",
			requestBody:    "not a json",
			wantStatusCode: http.StatusBadRequest,
			wantErrorCode:  "ERR_INPUT_VALIDATION",
		},
		{
			name:           "validation error - short password",
			requestBody:    models.UserRequest{Mail: "a@x.com", Password: "123"},
			wantStatusCode: http.StatusBadRequest,
			wantErrorCode:  "ERR_INPUT_VALIDATION",
		},
		{
			name:           "wrong credentials",
			requestBody:    models.UserRequest{Mail: "a@x.com", Password: "password123"},
			mockErr:        models.ErrInvalidCredentials,
			callService:    true,
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "storage failure",
			requestBody:    models.UserRequest{Mail: "a@x.com", Password: "password123"},
			mockErr:        errors.New("db is down"),
			callService:    true,
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authMock := new(AuthServiceMock)
			handler := New(newNoopLogger(), authMock)

			if tt.callService {
				req := tt.requestBody.(models.UserRequest)
				authMock.On("Login", mock.Anything, req.Mail, req.Password).
					Return(tt.mockToken, tt.mockErr).Once()
			}

			var bodyBytes []byte
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				var err error
				bodyBytes, err = json.Marshal(tt.requestBody)
				if err != nil {
					t.Fatal(err)
				}
			}

			req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(bodyBytes))
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123"))
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)
			assert.Equal(t, tt.wantHeader, rec.Header().Get("Authorization"))

			switch {
			case tt.wantErrorCode != "":
				var got map[string]any
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
				assert.Equal(t, true, got["error"])
				assert.Equal(t, tt.wantErrorCode, got["errorCode"])
			default:
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}

			authMock.AssertExpectations(t)
		})
	}
}
