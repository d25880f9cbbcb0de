package identity

import (
	"booking-service/internal/app/config"
	"booking-service/internal/app/contracts"
	"booking-service/internal/app/models"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/exceptions"
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const (
	pathSignup        = "/auth/v1/signup"
	pathToken         = "/auth/v1/token"
	pathLogout        = "/auth/v1/logout"
	pathUser          = "/auth/v1/user"
	pathAdminUserByID = "/auth/v1/admin/users/%s"

	grantTypePassword = "password"
)

type supabaseClient struct {
	BaseURL        string
	AnonKey        string
	ServiceRoleKey string
	Client         *http.Client
	Log            *zap.Logger
}

type passwordCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// providerErrorBody covers the error shapes the auth service answers with.
type providerErrorBody struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	Msg              string `json:"msg"`
	Message          string `json:"message"`
}

func (b providerErrorBody) text() string {
	for _, candidate := range []string{b.ErrorDescription, b.Msg, b.Message, b.Error} {
		if candidate != "" {
			return candidate
		}
	}
	return ""
}

func NewSupabaseClient(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig, logger *zap.Logger) contracts.IdentityProvider {
	return &supabaseClient{
		BaseURL:        strings.TrimRight(driverConfig.Supabase.URL, "/"),
		AnonKey:        driverConfig.Supabase.AnonKey,
		ServiceRoleKey: driverConfig.Supabase.ServiceRoleKey,
		Client: &http.Client{
			Timeout: time.Duration(internalConfig.Identity.HTTPTimeoutInSeconds) * time.Second,
		},
		Log: logger,
	}
}

func (c *supabaseClient) SignUp(ctx context.Context, email, password string) (*models.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("supabaseClient.SignUp called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	body, err := c.do(ctx, http.MethodPost, pathSignup, nil, c.AnonKey, "", passwordCredentials{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	// Depending on the confirmation setting the answer is either the user or
	// a session wrapping it.
	var wrapped struct {
		User *models.User `json:"user"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil && wrapped.User != nil {
		return wrapped.User, nil
	}

	var user models.User
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, exceptions.ErrIdentityDecodeResponse(err, pathSignup)
	}

	c.Log.Info("supabaseClient.SignUp succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return &user, nil
}

func (c *supabaseClient) SignInWithPassword(ctx context.Context, email, password string) (*models.Session, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("supabaseClient.SignInWithPassword called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	query := url.Values{"grant_type": []string{grantTypePassword}}
	body, err := c.do(ctx, http.MethodPost, pathToken, query, c.AnonKey, "", passwordCredentials{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	var session models.Session
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, exceptions.ErrIdentityDecodeResponse(err, pathToken)
	}

	c.Log.Info("supabaseClient.SignInWithPassword succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &session, nil
}

func (c *supabaseClient) SignOut(ctx context.Context, accessToken string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("supabaseClient.SignOut called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	_, err := c.do(ctx, http.MethodPost, pathLogout, nil, c.AnonKey, accessToken, nil)
	return err
}

func (c *supabaseClient) GetUser(ctx context.Context, accessToken string) (*models.User, error) {
	body, err := c.do(ctx, http.MethodGet, pathUser, nil, c.AnonKey, accessToken, nil)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, exceptions.ErrIdentityDecodeResponse(err, pathUser)
	}
	if user.ID == "" {
		return nil, exceptions.ErrIdentityUserMissing(nil)
	}
	return &user, nil
}

func (c *supabaseClient) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	path := fmt.Sprintf(pathAdminUserByID, url.PathEscape(userID))
	body, err := c.do(ctx, http.MethodGet, path, nil, c.ServiceRoleKey, c.ServiceRoleKey, nil)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, exceptions.ErrIdentityDecodeResponse(err, pathAdminUserByID)
	}
	return &user, nil
}

// do sends one request and returns the raw body of a 2xx answer. Any other
// status becomes an *exceptions.ProviderError.
func (c *supabaseClient) do(ctx context.Context, method, path string, query url.Values, apiKey, bearer string, payload interface{}) ([]byte, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	endpoint := c.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, exceptions.ErrCannotMarshalJSON(err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAPIKey, apiKey)
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if payload != nil {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}
	if bearer != "" {
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+bearer)
	}
	if requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		c.Log.Error("supabaseClient.do error sending request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingIdentityPathKey, path),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var errorBody providerErrorBody
		_ = json.Unmarshal(body, &errorBody)
		message := errorBody.text()
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}

		c.Log.Warn("supabaseClient.do provider answered with an error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingIdentityPathKey, path),
			zap.Int(constvars.LoggingIdentityStatusKey, resp.StatusCode),
			zap.String("message", message),
		)
		return nil, &exceptions.ProviderError{
			Path:       path,
			StatusCode: resp.StatusCode,
			Message:    message,
		}
	}

	return body, nil
}
