package utils

import (
	"booking-service/internal/pkg/constvars"
	"strings"
)

// ExtractBearerToken returns the token part of an Authorization header value.
func ExtractBearerToken(header string) (string, bool) {
	if len(header) < len(constvars.AuthorizationBearerPrefix) ||
		!strings.EqualFold(header[:len(constvars.AuthorizationBearerPrefix)], constvars.AuthorizationBearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(constvars.AuthorizationBearerPrefix):])
	if token == "" {
		return "", false
	}
	return token, true
}

// DisplayNameFromEmail returns the local part of an email address, or the
// unknown sentinel when the email could not be resolved.
func DisplayNameFromEmail(email string) string {
	if email == "" || email == constvars.UnknownUserEmail {
		return constvars.UnknownUserName
	}
	localPart, _, _ := strings.Cut(email, "@")
	return localPart
}
