package errors

// Response is the unified JSON body for every delivery-layer reply.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`    // HTTP status code
	Message string     `json:"message"` // User-friendly message
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "LOGIN_REQUIRED"
	Details string `json:"details,omitempty"` // Detailed error information (optional)
}
