package transport

import (
	"encoding/json"
	"net/http"
	"strings"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-console/core"
)

type errorEnvelope struct {
	Detail string `json:"detail"`
}

// responseError turns a non-success HTTP outcome into the console's single
// user-facing error kind. The display message comes from the server's
// structured detail field when present, else the operation fallback.
func responseError(operation string, fallback string, statusCode int, body []byte) error {
	message := strings.TrimSpace(fallback)
	var envelope errorEnvelope
	if len(body) > 0 && json.Unmarshal(body, &envelope) == nil {
		if detail := strings.TrimSpace(envelope.Detail); detail != "" {
			message = detail
		}
	}
	return core.NewConsoleError(message, categoryForStatus(statusCode)).
		WithCode(statusCode).
		WithMetadata(map[string]any{
			"operation":   operation,
			"status_code": statusCode,
		})
}

func transportError(operation string, message string, category goerrors.Category) error {
	return core.NewConsoleError(message, category).
		WithMetadata(map[string]any{"operation": operation})
}

func transportWrapError(operation string, source error, message string) error {
	return core.WrapConsoleError(source, goerrors.CategoryExternal, message).
		WithMetadata(map[string]any{"operation": operation})
}

func categoryForStatus(statusCode int) goerrors.Category {
	switch {
	case statusCode == http.StatusNotFound:
		return goerrors.CategoryNotFound
	case statusCode == http.StatusUnauthorized:
		return goerrors.CategoryAuth
	case statusCode == http.StatusForbidden:
		return goerrors.CategoryAuthz
	case statusCode == http.StatusConflict:
		return goerrors.CategoryConflict
	case statusCode == http.StatusTooManyRequests:
		return goerrors.CategoryRateLimit
	case statusCode >= http.StatusInternalServerError:
		return goerrors.CategoryExternal
	case statusCode >= http.StatusBadRequest:
		return goerrors.CategoryBadInput
	}
	return goerrors.CategoryExternal
}
