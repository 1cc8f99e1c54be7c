package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	devstatus "github.com/alts-client/devstatus/pkg"
	"github.com/alts-client/devstatus/pkg/device"
	"github.com/alts-client/devstatus/pkg/models"
)

const (
	contentTypeHeader = "Content-Type"
	contentTypeJSON   = "application/json"
	contentTypeText   = "text/plain; charset=utf-8"

	// MaxBodySize caps the bytes read from a device status request body.
	MaxBodySize = 1 << 20
)

func DeviceStatus(cfg *devstatus.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		request, err := ReadStatusRequest(http.MaxBytesReader(w, r.Body, MaxBodySize))
		if err != nil {
			cfg.Logger.Errorf("Error processing request: %s", err)
			WriteError(w, http.StatusInternalServerError, err.Error())
			return
		}

		cfg.Logger.Debugw("Querying smart home app",
			"action", device.ActionGetStatus,
			"query", request.Query,
		)
		status := device.Query(r.Context(), cfg.Querier, request.Query)

		w.Header().Set(contentTypeHeader, contentTypeJSON)
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(models.StatusResponse{Status: status}); err != nil {
			cfg.Logger.Errorf("Failed to encode response: %s", err)
		}
	})
}

// NotFound answers every request the router cannot match, including a
// known path requested with the wrong method.
func NotFound() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(contentTypeHeader, contentTypeText)
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, "Not found")
	})
}

func WriteError(w http.ResponseWriter, code int, message string) {
	w.Header().Set(contentTypeHeader, contentTypeJSON)
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: message})
}

func ReadStatusRequest(body io.Reader) (*models.StatusRequest, error) {
	content, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("unable to read request body: %w", err)
	}
	return DecodeStatusRequest(content)
}

// DecodeStatusRequest requires a JSON object whose "query" key, matched
// exactly, holds a string.
func DecodeStatusRequest(content []byte) (*models.StatusRequest, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(content, &fields); err != nil {
		return nil, fmt.Errorf("unable to decode request body: %w", err)
	}

	raw, found := fields["query"]
	if !found {
		return nil, &MissingFieldError{Field: "query"}
	}

	// A JSON null would otherwise decode into an empty string.
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, &FieldTypeError{Field: "query"}
	}

	var query string
	if err := json.Unmarshal(raw, &query); err != nil {
		return nil, &FieldTypeError{Field: "query"}
	}

	return &models.StatusRequest{Query: query}, nil
}
