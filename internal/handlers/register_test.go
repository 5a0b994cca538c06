package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/planetary-api/internal/models"
	"github.com/sbilibin2017/planetary-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func formRequest(method, target string, values url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func jsonRequest(method, target string, body interface{}) *http.Request {
	var buf bytes.Buffer
	_ = json.NewEncoder(&buf).Encode(body)
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestRegisterHandler(t *testing.T) {
	validForm := url.Values{
		"first_name": {"William"},
		"last_name":  {"Herschel"},
		"email":      {"a@x.com"},
		"password":   {"p1"},
	}

	tests := []struct {
		name         string
		request      func() *http.Request
		mockSetup    func(m *MockRegisterer)
		expectedCode int
		expectedBody string
	}{
		{
			name:    "success form",
			request: func() *http.Request { return formRequest(http.MethodPost, "/register", validForm) },
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "William", "Herschel", "a@x.com", "p1").
					Return(&models.User{ID: 1, FirstName: "William", LastName: "Herschel", Email: "a@x.com", PasswordHash: "hash"}, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: `{"message":"user has been created successfully and added to db","user":{"id":1,"first_name":"William","last_name":"Herschel","email":"a@x.com"}}`,
		},
		{
			name: "success json",
			request: func() *http.Request {
				return jsonRequest(http.MethodPost, "/register", map[string]string{
					"first_name": "William", "last_name": "Herschel", "email": "a@x.com", "password": "p1",
				})
			},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "William", "Herschel", "a@x.com", "p1").
					Return(&models.User{ID: 2, FirstName: "William", LastName: "Herschel", Email: "a@x.com"}, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: `{"message":"user has been created successfully and added to db","user":{"id":2,"first_name":"William","last_name":"Herschel","email":"a@x.com"}}`,
		},
		{
			name: "extra form fields are ignored",
			request: func() *http.Request {
				values := url.Values{"submit": {"Register"}}
				for k, v := range validForm {
					values[k] = v
				}
				return formRequest(http.MethodPost, "/register", values)
			},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "William", "Herschel", "a@x.com", "p1").
					Return(&models.User{ID: 3, FirstName: "William", LastName: "Herschel", Email: "a@x.com"}, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: `{"message":"user has been created successfully and added to db","user":{"id":3,"first_name":"William","last_name":"Herschel","email":"a@x.com"}}`,
		},
		{
			name: "empty but present fields are accepted",
			request: func() *http.Request {
				return formRequest(http.MethodPost, "/register", url.Values{
					"first_name": {""}, "last_name": {""}, "email": {"a@x.com"}, "password": {""},
				})
			},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "", "", "a@x.com", "").
					Return(&models.User{ID: 4, Email: "a@x.com"}, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: `{"message":"user has been created successfully and added to db","user":{"id":4,"first_name":"","last_name":"","email":"a@x.com"}}`,
		},
		{
			name: "empty but present json fields are accepted",
			request: func() *http.Request {
				return jsonRequest(http.MethodPost, "/register", map[string]string{
					"first_name": "", "last_name": "", "email": "a@x.com", "password": "",
				})
			},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "", "", "a@x.com", "").
					Return(&models.User{ID: 5, Email: "a@x.com"}, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: `{"message":"user has been created successfully and added to db","user":{"id":5,"first_name":"","last_name":"","email":"a@x.com"}}`,
		},
		{
			name:    "password longer than bcrypt accepts",
			request: func() *http.Request { return formRequest(http.MethodPost, "/register", validForm) },
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "William", "Herschel", "a@x.com", "p1").
					Return(nil, services.ErrPasswordTooLong)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"Password must be at most 72 bytes"}`,
		},
		{
			name:    "email already exists",
			request: func() *http.Request { return formRequest(http.MethodPost, "/register", validForm) },
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "William", "Herschel", "a@x.com", "p1").
					Return(nil, services.ErrUserAlreadyExists)
			},
			expectedCode: http.StatusConflict,
			expectedBody: `{"message":"That email already exists"}`,
		},
		{
			name:    "internal server error",
			request: func() *http.Request { return formRequest(http.MethodPost, "/register", validForm) },
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "William", "Herschel", "a@x.com", "p1").
					Return(nil, errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"message":"Internal server error"}`,
		},
		{
			name: "missing fields",
			request: func() *http.Request {
				return formRequest(http.MethodPost, "/register", url.Values{"first_name": {"William"}, "last_name": {"Herschel"}})
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"missing required fields: email, password"}`,
		},
		{
			name: "invalid json",
			request: func() *http.Request {
				req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBufferString("{invalid json}"))
				req.Header.Set("Content-Type", "application/json")
				return req
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"invalid request body"}`,
		},
		{
			name: "unsupported content type",
			request: func() *http.Request {
				req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader("email=a@x.com"))
				req.Header.Set("Content-Type", "text/plain")
				return req
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"invalid request body"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockSvc := NewMockRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewRegisterHandler(mockSvc)
			rr := httptest.NewRecorder()
			handler(rr, tt.request())

			assert.Equal(t, tt.expectedCode, rr.Code)
			require.Contains(t, rr.Header().Get("Content-Type"), "application/json")
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			assert.NotContains(t, rr.Body.String(), "hash")
		})
	}
}
