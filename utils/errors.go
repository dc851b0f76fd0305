package utils

// CustomError carries the HTTP status a handler wants for its failure.
type CustomError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code,omitempty"`
	Message    string `json:"message"`
}

func (e *CustomError) Error() string {
	return e.Message
}

func NewCustomError(statusCode int, message string) *CustomError {
	return &CustomError{StatusCode: statusCode, Message: message}
}

// NewCodedError adds a machine-readable code for API clients.
func NewCodedError(statusCode int, code, message string) *CustomError {
	return &CustomError{StatusCode: statusCode, Code: code, Message: message}
}
