package utils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/forumhub/forum-api/shared/domain"
	internal_errors "github.com/forumhub/forum-api/shared/errors"
	"github.com/forumhub/forum-api/shared/logger"
)

// Response is the JSON envelope of every API reply.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	writeResponse(w, statusCode, Response{Status: "success", Data: data})
}

func writeResponse(w http.ResponseWriter, statusCode int, resp Response) {
	body, err := json.Marshal(resp)
	if err != nil {
		logger.Log.Error("failed to encode response", "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(append(body, '\n'))
}

// WriteErrorAndStatusCode maps domain error kinds to status codes.
// Anything unrecognised is a 500 and its cause is logged, not returned.
func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	var e internal_errors.StatusCoder
	if errors.As(err, &e) {
		writeResponse(w, e.Status(), Response{Status: "fail", Message: err.Error()})
		return
	}
	logger.Log.Error("internal error", "error", err)
	writeResponse(w, http.StatusInternalServerError, Response{Status: "error", Message: "Internal server error"})
}

// DecodePayload reads a JSON object body as a raw payload so entity
// constructors can check primitive types themselves.
func DecodePayload(r io.Reader) (domain.Payload, error) {
	var payload domain.Payload
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		logger.Log.Debug("invalid json body", "error", err)
		return nil, &internal_errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: http.StatusBadRequest}
	}
	if payload == nil {
		payload = domain.Payload{}
	}
	return payload, nil
}
