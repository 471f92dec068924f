package utils

const (
	CORSLowSecurityAllowedOriginLocalhost = "http://localhost:*"

	HeaderRequestID = "X-Request-Id"
)
