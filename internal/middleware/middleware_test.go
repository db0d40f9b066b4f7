package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func serveOnce(engine *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestRateLimitBlocksAfterBurst(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(RateLimit(1)) // burst of one token
	engine.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	if rec := serveOnce(engine, "/"); rec.Code != http.StatusOK {
		t.Fatalf("first request: got %d, want 200", rec.Code)
	}
	if rec := serveOnce(engine, "/"); rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second request: got %d, want 429", rec.Code)
	}
}

func TestRateLimitInstancesAreIndependent(t *testing.T) {
	gin.SetMode(gin.TestMode)

	build := func() *gin.Engine {
		engine := gin.New()
		engine.Use(RateLimit(1))
		engine.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
		return engine
	}

	first := build()
	if rec := serveOnce(first, "/"); rec.Code != http.StatusOK {
		t.Fatalf("first engine: got %d, want 200", rec.Code)
	}
	if rec := serveOnce(first, "/"); rec.Code != http.StatusTooManyRequests {
		t.Fatalf("first engine exhausted: got %d, want 429", rec.Code)
	}

	// A fresh instance must not inherit the exhausted bucket
	second := build()
	if rec := serveOnce(second, "/"); rec.Code != http.StatusOK {
		t.Fatalf("second engine: got %d, want 200", rec.Code)
	}
}

func TestTracingRecordsSpanPerRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	engine := gin.New()
	engine.Use(Tracing())
	engine.GET("/posts/:id/", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	if rec := serveOnce(engine, "/posts/7/"); rec.Code != http.StatusOK {
		t.Fatalf("got %d, want 200", rec.Code)
	}

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if got := spans[0].Name(); got != "GET /posts/:id/" {
		t.Errorf("span name = %q, want %q", got, "GET /posts/:id/")
	}

	var status int64 = -1
	for _, attr := range spans[0].Attributes() {
		if string(attr.Key) == "http.status_code" {
			status = attr.Value.AsInt64()
		}
	}
	if status != http.StatusOK {
		t.Errorf("http.status_code attribute = %d, want %d", status, http.StatusOK)
	}
}
