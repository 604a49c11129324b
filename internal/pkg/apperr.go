package pkg

import "net/http"

// Code is a stable application error code surfaced to API clients.
type Code string

const (
	CodeInvalidParams   Code = "INVALID_PARAMS"
	CodeUnauthorized    Code = "UNAUTHORIZED"
	CodeForbidden       Code = "FORBIDDEN"
	CodeNotFound        Code = "NOT_FOUND"
	CodeConflict        Code = "CONFLICT"
	CodeUniqueTopicName Code = "UNIQUE_TOPIC_NAME"
	CodeInternal        Code = "INTERNAL"
)

func (c Code) HTTPStatus() int {
	switch c {
	case CodeInvalidParams:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict, CodeUniqueTopicName:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// AppError carries a code for the client and an optional cause for the logs.
type AppError struct {
	Code    Code
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Cause }

func E(code Code, msg string) *AppError {
	return &AppError{Code: code, Message: msg}
}

func Wrap(code Code, msg string, cause error) *AppError {
	return &AppError{Code: code, Message: msg, Cause: cause}
}

// Result is the uniform shape every action returns to the client.
type Result struct {
	Data       any    `json:"data,omitempty"`
	Error      string `json:"error,omitempty"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

func OK(data any, msg string) Result {
	return Result{Data: data, Message: msg, StatusCode: http.StatusOK}
}

// Fail hides internal detail: the cause stays server-side, only the code and
// message travel to the client.
func Fail(e *AppError) Result {
	return Result{Error: string(e.Code), Message: e.Message, StatusCode: e.Code.HTTPStatus()}
}
