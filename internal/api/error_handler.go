package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/farmtrak/farmtrak-api/internal/core/domain"
)

// errorBody is the canonical error envelope for all API errors.
type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code      string   `json:"code"`
	Message   string   `json:"message"`
	Timestamp string   `json:"timestamp"`
	Path      string   `json:"path"`
	Method    string   `json:"method"`
	Details   []string `json:"details,omitempty"`
	Debug     string   `json:"debug,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps pipeline rejections and domain errors to deterministic status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Adds the underlying cause under "debug" only when debug is true.
func NewHTTPErrorHandler(log zerolog.Logger, debug bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, detail := resolveError(err, log, c)
		detail.Timestamp = time.Now().UTC().Format(time.RFC3339)
		detail.Path = c.Request().URL.Path
		detail.Method = c.Request().Method
		if debug && status >= http.StatusInternalServerError {
			detail.Debug = err.Error()
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, errorBody{Error: detail})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorDetail) {
	var ae *domain.AuthError
	if errors.As(err, &ae) {
		status, code := authStatus(ae.Kind)
		msg := ae.Message
		if msg == "" {
			msg = ae.Kind.String()
		}
		return status, errorDetail{Code: code, Message: msg}
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, errorDetail{Code: "VALIDATION_ERROR", Message: "validation failed", Details: ve.Details}
	}

	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, errorDetail{Code: "INVALID_LOGIN", Message: "invalid email or password"}
	case errors.Is(err, domain.ErrAccountExists):
		return http.StatusConflict, errorDetail{Code: "CONFLICT", Message: "an account with this email already exists"}
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, errorDetail{Code: "CONFLICT", Message: err.Error()}
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusNotFound, errorDetail{Code: "NOT_FOUND", Message: "resource not found"}
	}

	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorDetail{Code: codeForStatus(he.Code), Message: fmt.Sprintf("%v", he.Message)}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorDetail{Code: "INTERNAL_ERROR", Message: "internal server error"}
}

// authStatus maps every pipeline rejection kind to its status and code.
func authStatus(k domain.Kind) (int, string) {
	switch k {
	case domain.KindMissingCredential:
		return http.StatusUnauthorized, "MISSING_CREDENTIAL"
	case domain.KindMalformedCredential:
		return http.StatusUnauthorized, "MALFORMED_CREDENTIAL"
	case domain.KindExpiredCredential:
		return http.StatusUnauthorized, "EXPIRED_CREDENTIAL"
	case domain.KindAccountNotFound:
		return http.StatusUnauthorized, "ACCOUNT_NOT_FOUND"
	case domain.KindInsufficientRole:
		return http.StatusForbidden, "INSUFFICIENT_ROLE"
	case domain.KindNotOwner:
		return http.StatusForbidden, "NOT_OWNER"
	case domain.KindResourceNotFound:
		return http.StatusNotFound, "RESOURCE_NOT_FOUND"
	case domain.KindInvalidResourceReference:
		return http.StatusBadRequest, "INVALID_RESOURCE_REFERENCE"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR"
	}
}

func codeForStatus(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return "HTTP_ERROR"
	}
	return strings.ToUpper(strings.ReplaceAll(text, " ", "_"))
}
