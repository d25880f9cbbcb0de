package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_AUTHENTICATED_USER_KEY   ContextKey = "authenticated_user"
	CONTEXT_ACCESS_TOKEN_KEY         ContextKey = "access_token"
)

const (
	REQUEST_ID_PREFIX = "BKNG_GW_"
)

const (
	AppEnvProduction  = "production"
	AppEnvDevelopment = "development"
	AppEnvLocal       = "local"
)

const (
	BookingStoreDriverPostgres = "postgres"
	BookingStoreDriverMongo    = "mongo"

	FrontendSourceFilesystem = "filesystem"
	FrontendSourceMinio      = "minio"
)
