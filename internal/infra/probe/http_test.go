package probe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/vietddude/deploycheck/internal/core/domain"
)

func testService(url string) domain.Service {
	return domain.Service{
		Name:        "svc",
		URL:         url,
		Shape:       domain.ShapeJSONStatus,
		Criticality: domain.CriticalityHigh,
	}
}

func TestHTTPProber_CapturesStatusAndBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok","version":"2.1.0"}`))
	}))
	defer server.Close()

	outcome := NewHTTPProber(2*time.Second).Probe(context.Background(), testService(server.URL))

	if outcome.Failed() {
		t.Fatalf("Unexpected transport failure: %v", outcome.Err)
	}
	if outcome.StatusCode != 200 {
		t.Errorf("Expected status 200, got %d", outcome.StatusCode)
	}
	if outcome.Body != `{"status":"ok","version":"2.1.0"}` {
		t.Errorf("Body not captured verbatim: %q", outcome.Body)
	}
}

func TestHTTPProber_Non2xxIsNotATransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down for maintenance", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	outcome := NewHTTPProber(2*time.Second).Probe(context.Background(), testService(server.URL))

	if outcome.Failed() {
		t.Fatalf("Non-2xx must not be a transport failure: %v", outcome.Err)
	}
	if outcome.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("Expected status 503, got %d", outcome.StatusCode)
	}
}

func TestHTTPProber_ConnectionRefused(t *testing.T) {
	// Grab a port nothing listens on.
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	outcome := NewHTTPProber(2*time.Second).Probe(context.Background(), testService(url))

	if !outcome.Failed() {
		t.Fatal("Expected a transport failure")
	}
	if outcome.StatusCode != 0 {
		t.Errorf("Transport failure must carry no status code, got %d", outcome.StatusCode)
	}
}

func TestHTTPProber_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer server.Close()

	start := time.Now()
	outcome := NewHTTPProber(50*time.Millisecond).Probe(context.Background(), testService(server.URL))
	elapsed := time.Since(start)

	if !outcome.Failed() {
		t.Fatal("Expected a timeout failure")
	}
	if elapsed > 400*time.Millisecond {
		t.Errorf("Probe did not respect its timeout, took %v", elapsed)
	}
}

func TestDispatcher_RoutesHTTPShapes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("pong"))
	}))
	defer server.Close()

	dispatcher := NewDispatcher(2 * time.Second)

	svc := testService(server.URL)
	svc.Shape = domain.ShapePlainText

	outcome := dispatcher.Probe(context.Background(), svc)
	if outcome.Failed() || outcome.Body != "pong" {
		t.Fatalf("Dispatcher did not route plain-text probe: %+v", outcome)
	}
}
