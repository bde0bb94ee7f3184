package middleware

import (
	"backlog/config"
	otelMocks "backlog/infras/otel/mocks"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecovery(t *testing.T) {
	middleware := NewAppMiddleware(otelMocks.NewOtel(), &config.Config{}, nil)

	t.Run("turns a panic into an internal server error", func(t *testing.T) {
		handler := middleware.Recovery()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("boom")
		}))

		recorder := httptest.NewRecorder()

		assert.NotPanics(t, func() {
			handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/todos", nil))
		})

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.JSONEq(t, `{"message":"Internal server error"}`, recorder.Body.String())
	})

	t.Run("leaves healthy responses untouched", func(t *testing.T) {
		handler := middleware.Recovery()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/todos", nil))

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	t.Run("does not overwrite a started response", func(t *testing.T) {
		handler := middleware.Recovery()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("partial"))
			panic("boom")
		}))

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/todos", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "partial", recorder.Body.String())
	})
}
