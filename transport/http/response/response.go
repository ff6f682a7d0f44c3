package response

import (
	"encoding/json"
	"net/http"

	"oberoy/shared/constant"
	"oberoy/shared/failure"
	"oberoy/shared/logger"
)

// Envelope is the uniform response shape: success plus either data or an
// error message, with an optional total count for paginated lists.
type Envelope struct {
	Success bool    `json:"success"`
	Data    any     `json:"data,omitempty"`
	Error   *string `json:"error,omitempty"`
	Count   *int    `json:"count,omitempty"`
}

// WithJSON sends a successful response containing a JSON payload
func WithJSON(writer http.ResponseWriter, code int, payload any) {
	response(writer, code, Envelope{Success: true, Data: payload})
}

// WithCount sends a successful paginated response with a total count
func WithCount(writer http.ResponseWriter, code int, payload any, count int) {
	response(writer, code, Envelope{Success: true, Data: payload, Count: &count})
}

// WithError sends a failure response, deriving the status code from the error
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	errMsg := err.Error()

	response(writer, code, Envelope{Error: &errMsg})
}

// WithErrorMessage sends a failure response with an explicit status code
func WithErrorMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Envelope{Error: &message})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithErrorMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithErrorMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithErrorMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func response(writer http.ResponseWriter, code int, payload Envelope) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)

	if _, err = writer.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}
