package serverutils

import (
	"legal-chat-be/internal/constant"
)

// AppError carries an HTTP status code alongside a user-facing message. The
// wrapped error, when present, is for logs only and never leaves the server.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewUnauthorizedError(message string) *AppError {
	if message == "" {
		message = constant.ErrMsgUnauthorized
	}
	return &AppError{Code: 401, Message: message}
}

func NewForbiddenError(message string) *AppError {
	if message == "" {
		message = constant.ErrMsgForbidden
	}
	return &AppError{Code: 403, Message: message}
}

func NewNotFoundError(message string) *AppError {
	if message == "" {
		message = constant.ErrMsgNotFound
	}
	return &AppError{Code: 404, Message: message}
}

func NewValidationError(message string) *AppError {
	if message == "" {
		message = constant.ErrMsgValidation
	}
	return &AppError{Code: 400, Message: message}
}

func NewRateLimitError() *AppError {
	return &AppError{Code: 429, Message: constant.ErrMsgRateLimitExceeded}
}

func NewInternalError(message string, err error) *AppError {
	if message == "" {
		message = constant.ErrMsgInternal
	}
	return &AppError{Code: 500, Message: message, Err: err}
}
