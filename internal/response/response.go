// internal/response/response.go
package response

// ServiceResponse is the uniform envelope returned by every service operation.
// T is the payload type; ResponseObject is a pointer so a failure (or a
// payload-less success such as delete) serializes as JSON null.
type ServiceResponse[T any] struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	ResponseObject *T     `json:"responseObject"`
	StatusCode     int    `json:"statusCode"`
}

// Success constructs a success envelope with the given payload and status code.
// Pass a nil payload for operations whose success case carries no body.
func Success[T any](message string, payload *T, statusCode int) ServiceResponse[T] {
	return ServiceResponse[T]{
		Success:        true,
		Message:        message,
		ResponseObject: payload,
		StatusCode:     statusCode,
	}
}

// Failure constructs a failure envelope; the payload is always null.
func Failure[T any](message string, statusCode int) ServiceResponse[T] {
	return ServiceResponse[T]{
		Success:    false,
		Message:    message,
		StatusCode: statusCode,
	}
}
