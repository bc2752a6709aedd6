package httpx

import (
	"log"
	"net/http"
	"runtime/debug"
)

// RecoveryMiddleware turns a panic in a handler into a 500 response. Placed
// inside AccessLogMiddleware it reuses the tracking writer, so a response
// that already started is left alone.
func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tracked, ok := w.(*responseWriter)
		if !ok {
			tracked = &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		}

		defer func() {
			if err := recover(); err != nil {
				log.Printf("panic recovered: request_id=%s error=%v stack=%s", RequestIDFrom(r), err, string(debug.Stack()))

				if !tracked.wroteHeader() {
					JSONError(tracked, r, http.StatusInternalServerError, CodeInternal, "An internal error occurred", nil)
				}
			}
		}()
		next.ServeHTTP(tracked, r)
	})
}
