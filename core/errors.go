package core

import (
	"net/http"
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

const (
	ConsoleErrorBadInput      = "CONSOLE_BAD_INPUT"
	ConsoleErrorNotFound      = "CONSOLE_NOT_FOUND"
	ConsoleErrorRequestFailed = "CONSOLE_REQUEST_FAILED"
	ConsoleErrorInternal      = "CONSOLE_INTERNAL_ERROR"
)

// DisplayMessage extracts the text a sink should show for err. Rich errors
// contribute their message directly; anything else falls back to Error().
func DisplayMessage(err error) string {
	if err == nil {
		return ""
	}
	var richErr *goerrors.Error
	if goerrors.As(err, &richErr) && strings.TrimSpace(richErr.Message) != "" {
		return richErr.Message
	}
	return err.Error()
}

func ensureConsoleErrorEnvelope(err *goerrors.Error) *goerrors.Error {
	if err == nil {
		return nil
	}
	if err.Code == 0 {
		err.Code = consoleHTTPStatus(err.Category)
	}
	if strings.TrimSpace(err.TextCode) == "" {
		err.TextCode = defaultConsoleTextCode(err.Category)
	}
	if err.Category == goerrors.CategoryInternal && strings.TrimSpace(err.Message) == "" {
		err.Message = "An unexpected error occurred"
	}
	return err
}

// NewConsoleError builds a display-ready error with the console envelope
// applied.
func NewConsoleError(message string, category goerrors.Category) *goerrors.Error {
	return ensureConsoleErrorEnvelope(goerrors.New(message, category))
}

// WrapConsoleError wraps a source error while keeping message as the
// display text.
func WrapConsoleError(source error, category goerrors.Category, message string) *goerrors.Error {
	if source == nil {
		return NewConsoleError(message, category)
	}
	return ensureConsoleErrorEnvelope(goerrors.Wrap(source, category, message))
}

func defaultConsoleTextCode(category goerrors.Category) string {
	switch category {
	case goerrors.CategoryBadInput, goerrors.CategoryValidation:
		return ConsoleErrorBadInput
	case goerrors.CategoryNotFound:
		return ConsoleErrorNotFound
	case goerrors.CategoryExternal, goerrors.CategoryOperation:
		return ConsoleErrorRequestFailed
	default:
		return ConsoleErrorInternal
	}
}

func consoleHTTPStatus(category goerrors.Category) int {
	switch category {
	case goerrors.CategoryBadInput, goerrors.CategoryValidation:
		return http.StatusBadRequest
	case goerrors.CategoryNotFound:
		return http.StatusNotFound
	case goerrors.CategoryExternal:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
