package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"supplierwatch/internal/apperr"
)

// errorBody is the single error shape every non-2xx response uses. detail is
// always one of the opaque strings apperr constructs — never a raw cause,
// stack trace, or query fragment (§7).
type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError maps an apperr class to its §7 status code and logs the class
// plus the sanitized request path; it never logs or returns err's cause.
func writeError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	class := apperr.ClassOf(err)
	status := statusForClass(class)
	if logger != nil {
		logger.WarnContext(r.Context(), "request failed", "class", string(class), "path", r.URL.Path, "status", status)
	}
	writeJSON(w, status, errorBody{Error: apperr.Detail(err)})
}

func statusForClass(class apperr.Class) int {
	switch class {
	case apperr.ClassInputInvalid:
		return http.StatusUnprocessableEntity
	case apperr.ClassNotFound:
		return http.StatusNotFound
	case apperr.ClassUnimplemented:
		return http.StatusNotImplemented
	case apperr.ClassRateLimited:
		return http.StatusTooManyRequests
	case apperr.ClassTimeout:
		return http.StatusGatewayTimeout
	case apperr.ClassStoreError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
