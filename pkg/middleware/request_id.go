package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/solarbi/savvy-planner/pkg/requestid"
)

// RequestID takes the request id from the X-Request-Id header, falls back to
// the one chi generated and finally to a fresh uuid. The id is echoed back in
// the response header.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestid.Header)
		if requestID == "" {
			requestID = middleware.GetReqID(r.Context())
		}
		if requestID == "" {
			requestID = requestid.Generate()
		}

		w.Header().Set(requestid.Header, requestID)
		next.ServeHTTP(w, r.WithContext(requestid.ToContext(r.Context(), requestID)))
	})
}
