package utils

// APIError carries an HTTP status alongside its message so that every
// failure, wherever it is raised, renders through the one error reporter
// with the same shape.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string { return e.Message }

func NewAPIError(status int, message string) *APIError {
	return &APIError{Status: status, Message: message}
}
