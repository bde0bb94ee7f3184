package middleware

import (
	"backlog/config"
	otelMocks "backlog/infras/otel/mocks"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTracing_PassesRequestThrough(t *testing.T) {
	middleware := NewAppMiddleware(otelMocks.NewOtel(), &config.Config{}, nil)

	handler := middleware.Tracing()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"b44cbef2"}`))
	}))

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/todos", nil)

	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, `{"id":"b44cbef2"}`, recorder.Body.String())
}

func TestGetClientIP(t *testing.T) {
	middleware := &appMiddleware{}

	t.Run("forwarded for takes the first address", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/todos", nil)
		request.Header.Set("X-Forwarded-For", "203.0.113.7, 198.51.100.1")

		assert.Equal(t, "203.0.113.7", middleware.getClientIP(request))
	})

	t.Run("real ip is used when forwarded for is absent", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/todos", nil)
		request.Header.Set("X-Real-IP", "198.51.100.1")

		assert.Equal(t, "198.51.100.1", middleware.getClientIP(request))
	})

	t.Run("falls back to remote address", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/todos", nil)

		assert.Equal(t, request.RemoteAddr, middleware.getClientIP(request))
	})
}

func TestGetUA(t *testing.T) {
	middleware := &appMiddleware{}

	request := httptest.NewRequest(http.MethodGet, "/todos", nil)
	assert.Equal(t, "unknown", middleware.getUA(request))

	request.Header.Set("User-Agent", "curl/8.5.0")
	assert.Equal(t, "curl/8.5.0", middleware.getUA(request))
}

func TestStatusRecorder(t *testing.T) {
	t.Run("keeps the first status code", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		wrapped := newStatusRecorder(recorder)

		wrapped.WriteHeader(http.StatusNotFound)
		wrapped.WriteHeader(http.StatusOK)

		assert.Equal(t, http.StatusNotFound, wrapped.status)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("write marks the response as started", func(t *testing.T) {
		wrapped := newStatusRecorder(httptest.NewRecorder())

		_, err := wrapped.Write([]byte("partial"))

		assert.NoError(t, err)
		assert.True(t, wrapped.written)
		assert.Equal(t, http.StatusOK, wrapped.status)
	})
}
