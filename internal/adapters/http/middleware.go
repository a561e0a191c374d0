package httpadapter

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/PabloGalante/interview-coach/internal/observability"
)

// withRequestID tags every request with a fresh id and puts it in the
// context so downstream log lines correlate.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		ctx := observability.WithRequestID(r.Context(), id)
		w.Header().Set("X-Request-ID", id)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// withLogging wraps a handler and logs every request.
func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		next.ServeHTTP(w, r)

		observability.LoggerFromContext(r.Context()).Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start).String(),
		)
	})
}

// withCORS adds basic CORS headers to allow calls from a web front-end.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withDeploymentGate blocks every route except /healthz while the
// deployment is unauthorized. A deterrent against unsanctioned public
// deployments, not an access-control mechanism.
func withDeploymentGate(authorized bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !authorized && r.URL.Path != "/healthz" {
				w.Header().Set("Content-Type", "text/html; charset=utf-8")
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte(unauthorizedPage))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

const unauthorizedPage = `<!DOCTYPE html>
<html>
<head><title>AI Interview Coach</title></head>
<body>
<h1>Unauthorized Deployment Detected</h1>
<p>This AI Interview Coach application is intended for personal and educational use.
Public deployment or redistribution requires explicit permission from the original author.</p>
<p>If you are the authorized deployer, set the environment variable
<code>AI_INTERVIEW_COACH_AUTHORIZED_DEPLOYMENT</code> to <code>TRUE</code>.</p>
<p>The application will not proceed without proper authorization.</p>
</body>
</html>
`

// chainMiddlewares applies multiple middlewares in order.
func chainMiddlewares(h http.Handler, middlewares ...func(http.Handler) http.Handler) http.Handler {
	for _, m := range middlewares {
		h = m(h)
	}
	return h
}
