package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/taskboard-backend/internal/transport/dto"
	"github.com/heartmarshall/taskboard-backend/pkg/ctxutil"
)

// IdempotencyHeader names the client-supplied key for retried mutations.
const IdempotencyHeader = "Idempotency-Key"

const maxIdempotencyKeyLen = 128

type deduper interface {
	Reserve(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

// Idempotency rejects a repeated mutating request carrying the same
// Idempotency-Key with 409 while the key is held. Keys are scoped to the
// authenticated user. A request that fails with a 5xx releases its key so
// the client can retry. Requests without the header pass through, and a
// store outage fails open.
func Idempotency(store deduper, ttl time.Duration, log *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(IdempotencyHeader)
			if key == "" || !isMutating(r.Method) {
				next.ServeHTTP(w, r)
				return
			}
			if len(key) > maxIdempotencyKeyLen {
				writeErrorStatus(w, http.StatusBadRequest, dto.ErrorResponse{Error: dto.ErrorBody{
					Code:    "VALIDATION",
					Message: IdempotencyHeader + ": too long",
				}})
				return
			}

			scoped := "idem:"
			if userID, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
				scoped += userID.String() + ":"
			}
			scoped += r.Method + ":" + r.URL.Path + ":" + key

			fresh, err := store.Reserve(r.Context(), scoped, ttl)
			if err != nil {
				log.WarnContext(r.Context(), "idempotency store unavailable", slog.String("error", err.Error()))
				next.ServeHTTP(w, r)
				return
			}
			if !fresh {
				writeErrorStatus(w, http.StatusConflict, dto.ErrorResponse{Error: dto.ErrorBody{
					Code:    "CONFLICT",
					Message: "Duplicate request",
				}})
				return
			}

			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)

			if sw.status >= http.StatusInternalServerError {
				if err := store.Release(context.WithoutCancel(r.Context()), scoped); err != nil {
					log.WarnContext(r.Context(), "release idempotency key", slog.String("error", err.Error()))
				}
			}
		})
	}
}

func isMutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}
