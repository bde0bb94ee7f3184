package response

import (
	"encoding/json"
	"net/http"

	"backlog/shared/constant"
	"backlog/shared/failure"
	"backlog/shared/logger"
)

type Error struct {
	Message string          `json:"message"`
	Issues  []failure.Issue `json:"issues,omitempty"`
}

type Message struct {
	Message string `json:"message"`
}

// WithJSON sends a response with the payload as the body
func WithJSON(writer http.ResponseWriter, code int, jsonPayload interface{}) {
	response(writer, code, jsonPayload)
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: message})
}

// WithError sends the error body for err. Messages normalize per class, so
// internal error detail never reaches a response.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	issues := failure.GetIssues(err)

	body := Error{Issues: issues}

	switch {
	case len(issues) > 0:
		body.Message = constant.ResponseMessageValidation
	case code == http.StatusNotFound:
		body.Message = constant.ResponseMessageNotFound
	case code == http.StatusInternalServerError:
		body.Message = constant.ResponseMessageInternalError
	default:
		body.Message = err.Error()
	}

	response(writer, code, body)
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func response(writer http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
