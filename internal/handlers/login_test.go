package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/planetary-api/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestLoginHandler(t *testing.T) {
	tests := []struct {
		name         string
		request      func() *http.Request
		mockSetup    func(m *MockLoginer)
		expectedCode int
		expectedBody string
	}{
		{
			name: "success json",
			request: func() *http.Request {
				return jsonRequest(http.MethodPost, "/login", map[string]string{"email": "a@x.com", "password": "p1"})
			},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "a@x.com", "p1").Return("token123", nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"message":"Login successful","access_token":"token123"}`,
		},
		{
			name: "success form",
			request: func() *http.Request {
				return formRequest(http.MethodPost, "/login", url.Values{"email": {"a@x.com"}, "password": {"p1"}})
			},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "a@x.com", "p1").Return("token123", nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"message":"Login successful","access_token":"token123"}`,
		},
		{
			name: "invalid credentials",
			request: func() *http.Request {
				return jsonRequest(http.MethodPost, "/login", map[string]string{"email": "a@x.com", "password": "wrong"})
			},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "a@x.com", "wrong").Return("", services.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"message":"Bad email or password"}`,
		},
		{
			name: "internal error",
			request: func() *http.Request {
				return jsonRequest(http.MethodPost, "/login", map[string]string{"email": "a@x.com", "password": "p1"})
			},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "a@x.com", "p1").Return("", errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"message":"Internal server error"}`,
		},
		{
			name: "missing password",
			request: func() *http.Request {
				return jsonRequest(http.MethodPost, "/login", map[string]string{"email": "a@x.com"})
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"missing required fields: password"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockSvc := NewMockLoginer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			rr := httptest.NewRecorder()
			NewLoginHandler(mockSvc)(rr, tt.request())

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
