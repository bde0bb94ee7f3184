package middleware

import (
	"backlog/shared/failure"
	"backlog/transport/http/response"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/rs/zerolog/log"
)

func (a *appMiddleware) Recovery() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			recorder := newStatusRecorder(w)

			defer func() {
				if v := recover(); v != nil {
					log.Error().
						Str("panic", fmt.Sprint(v)).
						Str("method", r.Method).
						Str("path", r.URL.Path).
						Bytes("stack", debug.Stack()).
						Msg("Recovered from panic.")

					// Skip the error body if the handler already started writing
					if !recorder.written {
						response.WithError(recorder, failure.InternalError(fmt.Errorf("%v", v)))
					}
				}
			}()

			next.ServeHTTP(recorder, r)
		})
	}
}
