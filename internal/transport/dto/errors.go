package dto

import (
	"errors"
	"net/http"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
)

// ErrorResponse is the body of every non-2xx REST response.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries a stable error code and a human-readable message.
type ErrorBody struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields,omitempty"`
}

// FieldError describes one invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var defaultMessages = map[domain.Kind]string{
	domain.KindUnauthenticated: "Invalid token",
	domain.KindTokenExpired:    "Token expired",
	domain.KindForbidden:       "Access denied",
	domain.KindNotFound:        "Not found",
	domain.KindValidation:      "Validation failed",
	domain.KindConflict:        "Already exists",
	domain.KindInternal:        "Internal server error",
}

// NewError builds the wire error for err. Internal errors never expose
// their text.
func NewError(err error) ErrorResponse {
	kind := domain.KindOf(err)
	body := ErrorBody{Code: string(kind), Message: defaultMessages[kind]}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		body.Fields = make([]FieldError, len(ve.Errors))
		for i, fe := range ve.Errors {
			body.Fields[i] = FieldError{Field: fe.Field, Message: fe.Message}
		}
		if len(ve.Errors) == 1 {
			body.Message = ve.Errors[0].Field + ": " + ve.Errors[0].Message
		}
	}
	return ErrorResponse{Error: body}
}

// HTTPStatus maps an error kind to its REST status code.
func HTTPStatus(kind domain.Kind) int {
	switch kind {
	case domain.KindUnauthenticated, domain.KindTokenExpired:
		return http.StatusUnauthorized
	case domain.KindForbidden:
		return http.StatusForbidden
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
