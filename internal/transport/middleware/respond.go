package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
	"github.com/heartmarshall/taskboard-backend/internal/transport/dto"
)

// writeError writes err as the standard JSON error body.
func writeError(w http.ResponseWriter, err error) {
	writeErrorStatus(w, dto.HTTPStatus(domain.KindOf(err)), dto.NewError(err))
}

func writeErrorStatus(w http.ResponseWriter, status int, body dto.ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}
