package exceptions

import (
	"errors"
	"fmt"
	"net/http"
)

// ProviderError is returned by the identity provider client for any non-2xx
// answer. Callers decide which HTTP status the gateway itself answers with.
type ProviderError struct {
	Path       string
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("identity provider %s answered %d: %s", e.Path, e.StatusCode, e.Message)
}

// IsClientError reports whether the provider refused the request itself
// (bad credentials, invalid token) as opposed to failing.
func (e *ProviderError) IsClientError() bool {
	return e.StatusCode >= http.StatusBadRequest && e.StatusCode < http.StatusInternalServerError
}

// IsProviderClientError reports whether err carries a 4xx ProviderError.
func IsProviderClientError(err error) bool {
	var providerErr *ProviderError
	return errors.As(err, &providerErr) && providerErr.IsClientError()
}

// providerMessage returns the provider's own explanation when err carries
// one, fallback otherwise.
func providerMessage(err error, fallback string) string {
	var providerErr *ProviderError
	if errors.As(err, &providerErr) && providerErr.Message != "" {
		return providerErr.Message
	}
	return fallback
}
