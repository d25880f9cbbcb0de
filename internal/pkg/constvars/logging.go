package constvars

const (
	LoggingRequestIDKey       = "request_id"
	LoggingMethodKey          = "method"
	LoggingEndpointKey        = "endpoint"
	LoggingRemoteAddrKey      = "remote_addr"
	LoggingUserAgentKey       = "user_agent"
	LoggingQueryKey           = "query"
	LoggingStatusCodeKey      = "status_code"
	LoggingLatencyKey         = "latency"
	LoggingUserIDKey          = "user_id"
	LoggingBookingIDKey       = "booking_id"
	LoggingBookingCountKey    = "booking_count"
	LoggingOwnerCountKey      = "owner_count"
	LoggingCacheHitCountKey   = "cache_hit_count"
	LoggingEventRoutingKey    = "routing_key"
	LoggingFrontendObjectKey  = "object"
	LoggingIdentityStatusKey  = "identity_status"
	LoggingIdentityPathKey    = "identity_path"
	LoggingStoreDriverKey     = "store_driver"
	LoggingErrorLocationKey   = "location"
	LoggingShutdownTimeoutKey = "shutdown_timeout"
)
