package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/PSrandula/issue-tracker-app/internal/apperror"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError converts any error into the JSON {message} body the API
// promises. Store failures are logged here and genericized to the caller.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var ae *apperror.AppError
	if !errors.As(err, &ae) {
		ae = apperror.NewStore("Server error", err)
	}

	if ae.StatusCode() >= http.StatusInternalServerError {
		slog.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"err", err,
		)
	}

	writeJSON(w, ae.StatusCode(), map[string]string{"message": ae.Message})
}
