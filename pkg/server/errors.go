package server

import (
	"net/http"
	"time"

	qerrors "github.com/fairfix/quote-engine/pkg/errors"
	"github.com/fairfix/quote-engine/pkg/serializers"
	"github.com/google/uuid"
)

// HTTPStatusFromCode maps a structured error code to an HTTP status.
func HTTPStatusFromCode(code qerrors.ErrorCode) int {
	switch code {
	case qerrors.ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case qerrors.ErrCodeNotFound:
		return http.StatusNotFound
	case qerrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case qerrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case qerrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// retryableFromCode reports whether a client may retry the request for the
// given error code.
func retryableFromCode(code qerrors.ErrorCode) bool {
	switch code {
	case qerrors.ErrCodeRateLimitExceeded,
		qerrors.ErrCodeUnavailable,
		qerrors.ErrCodeInternal:
		return true
	default:
		return false
	}
}

// mergeDetails merges two detail maps, values from b winning on key
// collision. Returns nil when both are empty.
func mergeDetails(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	merged := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		merged[k] = v
	}
	for k, v := range b {
		merged[k] = v
	}
	return merged
}

// WriteError writes a structured error response with the request ID from the
// current request context.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code qerrors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID, _ := r.Context().Value(contextKeyRequestID).(string)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	errResp := ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	}

	serializers.RespondJSON(w, statusCode, errResp)
}

// WriteErrorFromErr writes an error response derived from err. A
// StructuredError supplies the code, message, context, and cause; any other
// error is reported as INTERNAL with the fallback message.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error,
	fallbackMessage string, details map[string]any) {

	code := qerrors.CodeOf(err)
	message := fallbackMessage

	var errDetails map[string]any
	if se := qerrors.AsStructured(err); se != nil {
		message = se.Message
		errDetails = se.Context
		if se.Cause != nil {
			errDetails = mergeDetails(errDetails, map[string]any{"error": se.Cause.Error()})
		}
	} else if err != nil {
		errDetails = map[string]any{"error": err.Error()}
	}

	WriteError(w, r, HTTPStatusFromCode(code), code, message,
		retryableFromCode(code), mergeDetails(errDetails, details))
}
