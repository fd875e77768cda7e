package constants

// HTTP Header Names
const (
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderUserAgent     = "User-Agent"
	HeaderXRequestID    = "X-Request-ID"
)

// HTTP Content Types
const (
	ContentTypeJSON = "application/json"
	ContentTypeForm = "application/x-www-form-urlencoded"
)

// Common HTTP Error Messages
const (
	MsgUnauthorized    = "Unauthorized access"
	MsgNotFound        = "Resource not found"
	MsgBadRequest      = "Invalid request"
	MsgInternalError   = "Internal server error"
	MsgTooManyRequests = "Too many requests"
)
