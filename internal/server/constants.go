package server

import "time"

const (
	ErrMsgTooManyRequests = "Too Many Requests"
	CodeRateLimited       = "rate_limited"
)

const (
	SecurityAlertHighRate = "SECURITY ALERT: blocking high request rate"
)

const (
	LogMsgServerStarting     = "Server starting"
	LogMsgRequestStarted     = "Request started"
	LogMsgRequestCompleted   = "Request completed"
	LogMsgRequestHeaders     = "Request headers"
	LogMsgTrustedProxyIgnore = "Ignoring invalid trusted proxy entry"
)

// APIPrefix is the mount point of the versioned API
const APIPrefix = "/api/v1"

// HTTP header names
const (
	HeaderAPIKey             = "X-API-Key"
	HeaderAuthorization      = "Authorization"
	HeaderCookie             = "Cookie"
	HeaderForwardedFor       = "X-Forwarded-For"
	HeaderRequestID          = "X-Request-ID"
	HeaderRetryAfter         = "Retry-After"
	HeaderContentTypeOptions = "X-Content-Type-Options"
	HeaderFrameOptions       = "X-Frame-Options"
	HeaderReferrerPolicy     = "Referrer-Policy"
	HeaderCacheControl       = "Cache-Control"
)

const (
	HeaderValueNoSniff    = "nosniff"
	HeaderValueDeny       = "DENY"
	HeaderValueNoReferrer = "no-referrer"
	HeaderValueNoStore    = "no-store"
)

const (
	MaxRequestBodyBytes = 1 << 20
	RateLimitRequests   = 1000
	RateLimitWindow     = 5 * time.Minute
	RateLimitAlertEvery = 100
	ReadHeaderTimeout   = 5 * time.Second
)

// QuietPaths are probed often enough that logging them is noise
var QuietPaths = []string{
	"/healthz",
	"/readyz",
	"/metrics",
}

const RedactedValue = "[REDACTED]"
