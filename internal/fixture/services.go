// Package fixture provides the mock deployment used by the e2e tests and
// the `mock` command: five services with the probe semantics of a real
// production stack, including one that answers 200 while self-reporting
// degraded capacity.
package fixture

import (
	"encoding/json"
	"net/http"
)

// Endpoint describes one runnable mock service.
type Endpoint struct {
	Name    string
	Port    int
	Handler http.Handler
}

func jsonHandler(path string, payload map[string]any) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(payload)
	})
	return mux
}

// AuthHandler serves /health with a plain ok status.
func AuthHandler() http.Handler {
	return jsonHandler("/health", map[string]any{"status": "ok", "version": "2.1.0"})
}

// GatewayHandler serves /health with a "healthy" status value.
func GatewayHandler() http.Handler {
	return jsonHandler("/health", map[string]any{"status": "healthy", "uptime_seconds": 3601})
}

// CacheHandler serves /ping with a plain-text pong, no JSON body to inspect.
func CacheHandler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("pong"))
	})
	return mux
}

// WorkerHandler serves /status with HTTP 200 but a degraded body status.
// The queue is overloaded; the HTTP layer doesn't know that.
func WorkerHandler() http.Handler {
	return jsonHandler("/status", map[string]any{"status": "degraded", "queue_depth": 1482})
}

// NotificationHandler serves /health with a plain ok status.
func NotificationHandler() http.Handler {
	return jsonHandler("/health", map[string]any{"status": "ok", "pending_notifications": 0})
}

// Endpoints returns the full mock deployment on its conventional ports.
func Endpoints() []Endpoint {
	return []Endpoint{
		{Name: "auth-service", Port: 8081, Handler: AuthHandler()},
		{Name: "api-gateway", Port: 8082, Handler: GatewayHandler()},
		{Name: "cache-service", Port: 8083, Handler: CacheHandler()},
		{Name: "worker-service", Port: 8084, Handler: WorkerHandler()},
		{Name: "notification-service", Port: 8085, Handler: NotificationHandler()},
	}
}
