// Package apperror holds the closed set of error kinds the API can surface.
// Each kind carries a stable machine-readable code and maps to exactly one
// HTTP status.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	KindValidation Kind = "validation"
	KindNotFound   Kind = "not_found"
	KindGeneration Kind = "generation"
	KindUpload     Kind = "upload"
)

const (
	CodeValidation = "VALIDATION_ERROR"
	CodeNotFound   = "NOT_FOUND"
	CodeGeneration = "GENERATION_FAILED"
	CodeUpload     = "UPLOAD_REJECTED"
	CodeUploadIO   = "UPLOAD_IO"
	CodeInternal   = "INTERNAL_ERROR"
)

type Error struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Status is the HTTP status the kind is reported with.
func (e *Error) Status() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindGeneration:
		return http.StatusBadGateway
	case KindUpload:
		if e.Code == CodeUploadIO {
			return http.StatusInternalServerError
		}
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Code: CodeValidation, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Code: CodeNotFound, Message: message}
}

func Generation(err error) *Error {
	return &Error{Kind: KindGeneration, Code: CodeGeneration, Message: "failed to generate AI response", Err: err}
}

func UploadRejected(message string) *Error {
	return &Error{Kind: KindUpload, Code: CodeUpload, Message: message}
}

func UploadIO(err error) *Error {
	return &Error{Kind: KindUpload, Code: CodeUploadIO, Message: "failed to store upload", Err: err}
}

// As extracts an *Error from anywhere in err's chain.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func Is(err error, kind Kind) bool {
	appErr, ok := As(err)
	return ok && appErr.Kind == kind
}
