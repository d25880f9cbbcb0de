package middlewares

import (
	"booking-service/internal/app/config"
	"booking-service/internal/app/models"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/exceptions"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockIdentityProvider struct {
	mock.Mock
}

func (m *MockIdentityProvider) SignUp(ctx context.Context, email, password string) (*models.User, error) {
	args := m.Called(ctx, email, password)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockIdentityProvider) SignInWithPassword(ctx context.Context, email, password string) (*models.Session, error) {
	args := m.Called(ctx, email, password)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

func (m *MockIdentityProvider) SignOut(ctx context.Context, accessToken string) error {
	args := m.Called(ctx, accessToken)
	return args.Error(0)
}

func (m *MockIdentityProvider) GetUser(ctx context.Context, accessToken string) (*models.User, error) {
	args := m.Called(ctx, accessToken)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockIdentityProvider) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

type MockTokenVerifier struct {
	mock.Mock
}

func (m *MockTokenVerifier) Verify(ctx context.Context, accessToken string) error {
	args := m.Called(ctx, accessToken)
	return args.Error(0)
}

func newTestMiddlewares(provider *MockIdentityProvider, verifier *MockTokenVerifier) *Middlewares {
	internalConfig := &config.InternalConfig{
		App: config.App{
			RequestTimeoutInSeconds:    5,
			RequestBodyLimitInMegabyte: 1,
		},
	}
	m := NewMiddlewares(zap.NewNop(), internalConfig, provider, nil)
	if verifier != nil {
		m.TokenVerifier = verifier
	}
	return m
}

func TestAuthenticate(t *testing.T) {
	user := &models.User{ID: "u1", Email: "ana@example.com"}

	echoUser := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contextUser, _ := r.Context().Value(constvars.CONTEXT_AUTHENTICATED_USER_KEY).(*models.User)
		token, _ := r.Context().Value(constvars.CONTEXT_ACCESS_TOKEN_KEY).(string)
		w.Write([]byte(contextUser.ID + ":" + token))
	})

	testCases := []struct {
		name        string
		header      string
		providerErr error
		wantStatus  int
	}{
		{name: "Missing Header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "Not A Bearer Token", header: "Basic dXNlcjpwYXNz", wantStatus: http.StatusUnauthorized},
		{name: "Empty Bearer Token", header: "Bearer ", wantStatus: http.StatusUnauthorized},
		{name: "Invalid Token", header: "Bearer jwt", providerErr: &exceptions.ProviderError{StatusCode: http.StatusForbidden}, wantStatus: http.StatusUnauthorized},
		{name: "Provider Outage", header: "Bearer jwt", providerErr: &exceptions.ProviderError{StatusCode: http.StatusBadGateway}, wantStatus: http.StatusInternalServerError},
		{name: "Provider Unreachable", header: "Bearer jwt", providerErr: exceptions.ErrSendHTTPRequest(errors.New("connection refused")), wantStatus: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			provider := new(MockIdentityProvider)
			if tc.providerErr != nil {
				provider.On("GetUser", mock.Anything, "jwt").Return(nil, tc.providerErr)
			}
			handler := newTestMiddlewares(provider, nil).Authenticate(echoUser)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			if tc.providerErr == nil {
				provider.AssertNotCalled(t, "GetUser", mock.Anything, mock.Anything)
			}
		})
	}

	t.Run("Valid Token", func(t *testing.T) {
		provider := new(MockIdentityProvider)
		provider.On("GetUser", mock.Anything, "jwt").Return(user, nil)
		handler := newTestMiddlewares(provider, nil).Authenticate(echoUser)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "bearer jwt")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "u1:jwt", rr.Body.String())
	})

	t.Run("Verifier Rejects Before Provider", func(t *testing.T) {
		provider := new(MockIdentityProvider)
		verifier := new(MockTokenVerifier)
		verifier.On("Verify", mock.Anything, "jwt").Return(errors.New("token is expired"))
		handler := newTestMiddlewares(provider, verifier).Authenticate(echoUser)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer jwt")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		provider.AssertNotCalled(t, "GetUser", mock.Anything, mock.Anything)
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	m := newTestMiddlewares(new(MockIdentityProvider), nil)
	var seen string
	handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	}))

	t.Run("Client Supplied", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "client-42")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, "client-42", seen)
		assert.Equal(t, "client-42", rr.Header().Get("X-Request-ID"))
	})

	t.Run("Generated", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.True(t, strings.HasPrefix(seen, constvars.REQUEST_ID_PREFIX))
		assert.Equal(t, seen, rr.Header().Get("X-Request-ID"))
	})
}

func TestErrorHandler(t *testing.T) {
	m := newTestMiddlewares(new(MockIdentityProvider), nil)
	handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), `"success":false`)
}

func TestBodyLimit(t *testing.T) {
	m := newTestMiddlewares(new(MockIdentityProvider), nil)
	var readErr error
	handler := m.BodyLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
	}))

	t.Run("Within Limit", func(t *testing.T) {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", strings.NewReader("[]")))
		assert.NoError(t, readErr)
	})

	t.Run("Over Limit", func(t *testing.T) {
		body := strings.NewReader(strings.Repeat("a", (1<<20)+1))
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", body))

		var maxBytesErr *http.MaxBytesError
		assert.ErrorAs(t, readErr, &maxBytesErr)
	})
}
