package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"
)

var errPanic = errors.New("panic")

// Recovery returns middleware that recovers from panics, logs the error
// with a stack trace, and responds with a 500 INTERNAL error body.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					if err == http.ErrAbortHandler {
						panic(err)
					}
					stack := debug.Stack()
					logger.ErrorContext(r.Context(), "panic recovered",
						slog.Any("error", err),
						slog.String("stack", string(stack)),
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
					)
					writeError(w, errPanic)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
