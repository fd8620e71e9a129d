package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgUnauthorized    = "Unauthorized"
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Security alert message templates
const (
	SecurityAlertFailedAuth = "SECURITY ALERT: Repeated invalid admin keys"
	SecurityAlertHighRate   = "SECURITY ALERT: Blocking high request rate"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgAuthFailed       = "Admin key rejected"

	LogMsgInvalidTrustedProxy = "Ignoring invalid TRUSTED_PROXIES entry"
)

// HTTP header names
const (
	HeaderAPIKey          = "X-API-Key"
	HeaderAuthorization   = "Authorization"
	HeaderForwardedFor    = "X-Forwarded-For"
	HeaderRequestID       = "X-Request-ID"
	HeaderContentType     = "X-Content-Type-Options"
	HeaderFrameOptions    = "X-Frame-Options"
	HeaderContentSecurity = "Content-Security-Policy"
	HeaderReferrerPolicy  = "Referrer-Policy"
	HeaderCacheControl    = "Cache-Control"
)

// Security header values
const (
	HeaderValueNoSniff    = "nosniff"
	HeaderValueDeny       = "DENY"
	HeaderValueCSPNone    = "default-src 'none'; frame-ancestors 'none'"
	HeaderValueCSPSwagger = "default-src 'self'; script-src 'self' 'unsafe-inline'; style-src 'self' 'unsafe-inline'; img-src 'self' data:; frame-ancestors 'none'"
	HeaderValueNoReferrer = "no-referrer"
	HeaderValueNoStore    = "no-store"
)

// APIPrefix is the versioned API subtree
const APIPrefix = "/api/v1"

// SwaggerPrefix serves the API docs UI and doc.json
const SwaggerPrefix = "/swagger/"

// Limits
const (
	MaxRequestBodyBytes = 1 << 20
	ReadHeaderTimeout   = 5 * time.Second

	// Failed admin keys per IP per window before an alert is logged
	FailedAuthAlertThreshold = 5
	// Failed admin keys per IP per window before the admin routes refuse it
	AdminLockoutThreshold = 20
	// Requests per IP per window before requests are rejected
	RequestRateLimit  = 1000
	RateLimitLogEvery = 100
	RateWindow        = 5 * time.Minute
)

// QuietPaths are polled constantly and are not request-logged
var QuietPaths = []string{
	"/healthz",
	"/readyz",
	"/metrics",
	SwaggerPrefix,
}

// Header redaction marker
const (
	RedactedValue = "[REDACTED]"
)
