package identity

import (
	"booking-service/internal/app/config"
	"booking-service/internal/pkg/exceptions"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestSupabaseClient(serverURL string) *supabaseClient {
	driverConfig := &config.DriverConfig{
		Supabase: config.Supabase{
			URL:            serverURL + "/",
			AnonKey:        "anon-key",
			ServiceRoleKey: "service-key",
		},
	}
	internalConfig := &config.InternalConfig{
		Identity: config.AppIdentity{HTTPTimeoutInSeconds: 5},
	}
	return NewSupabaseClient(driverConfig, internalConfig, zap.NewNop()).(*supabaseClient)
}

func TestSupabaseClient_SignInWithPassword(t *testing.T) {
	t.Run("Returns Session", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/v1/token", r.URL.Path)
			assert.Equal(t, "password", r.URL.Query().Get("grant_type"))
			assert.Equal(t, "anon-key", r.Header.Get("apikey"))

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "user@example.com", body["email"])

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"access_token":"jwt","token_type":"bearer","expires_in":3600,"refresh_token":"r","user":{"id":"u1","email":"user@example.com"}}`))
		}))
		defer server.Close()

		session, err := newTestSupabaseClient(server.URL).SignInWithPassword(context.Background(), "user@example.com", "secret")

		require.NoError(t, err)
		assert.Equal(t, "jwt", session.AccessToken)
		require.NotNil(t, session.User)
		assert.Equal(t, "u1", session.User.ID)
	})

	t.Run("Keeps Unmodelled Provider Fields", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"access_token":"jwt","weak_password":null,"user":{"id":"u1","identities":[{"provider":"email"}],"is_anonymous":false}}`))
		}))
		defer server.Close()

		session, err := newTestSupabaseClient(server.URL).SignInWithPassword(context.Background(), "user@example.com", "secret")
		require.NoError(t, err)

		encoded, err := json.Marshal(session)
		require.NoError(t, err)
		var sessionBody map[string]interface{}
		require.NoError(t, json.Unmarshal(encoded, &sessionBody))
		assert.Contains(t, sessionBody, "weak_password")

		encoded, err = json.Marshal(session.User)
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":"u1","identities":[{"provider":"email"}],"is_anonymous":false}`, string(encoded))
	})

	t.Run("Rejected Credentials Become Provider Error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"invalid_grant","error_description":"Invalid login credentials"}`))
		}))
		defer server.Close()

		_, err := newTestSupabaseClient(server.URL).SignInWithPassword(context.Background(), "user@example.com", "wrong")

		var providerErr *exceptions.ProviderError
		require.True(t, errors.As(err, &providerErr))
		assert.Equal(t, http.StatusBadRequest, providerErr.StatusCode)
		assert.Equal(t, "Invalid login credentials", providerErr.Message)
		assert.True(t, exceptions.IsProviderClientError(err))
	})
}

func TestSupabaseClient_SignUp(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"Confirmation Pending", `{"id":"u1","email":"new@example.com"}`},
		{"Auto Confirmed Session", `{"access_token":"jwt","user":{"id":"u1","email":"new@example.com"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/auth/v1/signup", r.URL.Path)
				w.Write([]byte(tt.response))
			}))
			defer server.Close()

			user, err := newTestSupabaseClient(server.URL).SignUp(context.Background(), "new@example.com", "secret")

			require.NoError(t, err)
			assert.Equal(t, "u1", user.ID)
			assert.Equal(t, "new@example.com", user.Email)
		})
	}
}

func TestSupabaseClient_GetUser(t *testing.T) {
	t.Run("Forwards Bearer Token", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/v1/user", r.URL.Path)
			assert.Equal(t, "Bearer user-token", r.Header.Get("Authorization"))
			w.Write([]byte(`{"id":"u1","email":"user@example.com","role":"authenticated"}`))
		}))
		defer server.Close()

		user, err := newTestSupabaseClient(server.URL).GetUser(context.Background(), "user-token")

		require.NoError(t, err)
		assert.Equal(t, "authenticated", user.Role)
	})

	t.Run("Keeps Unmodelled Provider Fields", func(t *testing.T) {
		payload := `{"id":"u1","email":"user@example.com","confirmed_at":"2024-01-05T09:00:00Z","factors":[]}`
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(payload))
		}))
		defer server.Close()

		user, err := newTestSupabaseClient(server.URL).GetUser(context.Background(), "user-token")
		require.NoError(t, err)

		encoded, err := json.Marshal(user)
		require.NoError(t, err)
		assert.JSONEq(t, payload, string(encoded))
	})

	t.Run("Provider Outage Is Not A Client Error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		_, err := newTestSupabaseClient(server.URL).GetUser(context.Background(), "user-token")

		require.Error(t, err)
		assert.False(t, exceptions.IsProviderClientError(err))
	})

	t.Run("Unreachable Provider", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		_, err := newTestSupabaseClient(server.URL).GetUser(context.Background(), "user-token")

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, http.StatusInternalServerError, customErr.StatusCode)
	})
}

func TestSupabaseClient_GetUserByID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/admin/users/u1", r.URL.Path)
		assert.Equal(t, "service-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer service-key", r.Header.Get("Authorization"))
		w.Write([]byte(`{"id":"u1","email":"owner@example.com"}`))
	}))
	defer server.Close()

	user, err := newTestSupabaseClient(server.URL).GetUserByID(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", user.Email)
}

func TestSupabaseClient_SignOut(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/logout", r.URL.Path)
		assert.Equal(t, "Bearer user-token", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	assert.NoError(t, newTestSupabaseClient(server.URL).SignOut(context.Background(), "user-token"))
}
