package constvars

const (
	MethodGet     = "GET"
	MethodHead    = "HEAD"
	MethodPost    = "POST"
	MethodPut     = "PUT"
	MethodDelete  = "DELETE"
	MethodOptions = "OPTIONS"
)

const (
	MIMETextHTML                   = "text/html"
	MIMEApplicationJSON            = "application/json"
	MIMEApplicationJSONCharsetUTF8 = "application/json; charset=utf-8"
	MIMETextHTMLCharsetUTF8        = "text/html; charset=utf-8"
	MIMEOctetStream                = "application/octet-stream"
)

const (
	StatusOK                  = 200
	StatusNoContent           = 204
	StatusBadRequest          = 400
	StatusUnauthorized        = 401
	StatusForbidden           = 403
	StatusNotFound            = 404
	StatusRequestTooLarge     = 413
	StatusTooManyRequests     = 429
	StatusInternalServerError = 500
	StatusBadGateway          = 502
	StatusServiceUnavailable  = 503
	StatusGatewayTimeout      = 504
)

const (
	HeaderAuthorization = "Authorization"
	HeaderAccept        = "Accept"
	HeaderCacheControl  = "Cache-Control"
	HeaderPragma        = "Pragma"
	HeaderExpires       = "Expires"
	HeaderContentType   = "Content-Type"
	HeaderContentLength = "Content-Length"
	HeaderLastModified  = "Last-Modified"
	HeaderXRequestID    = "X-Request-ID"
	HeaderAPIKey        = "apikey"
)

const (
	AuthorizationBearerPrefix = "Bearer "

	CacheControlNoCache = "no-store, no-cache, must-revalidate, proxy-revalidate"
	PragmaNoCache       = "no-cache"
	ExpiresImmediately  = "0"
)
