package api

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/status-im/crypto-insight-hub/dashboard"
	"github.com/status-im/crypto-insight-hub/interfaces"
	"github.com/status-im/crypto-insight-hub/jobs"
)

// ErrorResponse is the JSON body of every failed API call
type ErrorResponse struct {
	Kind      interfaces.FailureKind `json:"kind"`
	Message   string                 `json:"message"`
	Retryable bool                   `json:"retryable"`
}

// sendJSONResponse is a common wrapper for JSON responses that sets Content-Type,
// Content-Length and ETag headers
func (s *Server) sendJSONResponse(w http.ResponseWriter, data interface{}) {
	s.sendJSONResponseWithStatus(w, http.StatusOK, data)
}

func (s *Server) sendJSONResponseWithStatus(w http.ResponseWriter, status int, data interface{}) {
	responseBytes, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
		return
	}

	// Calculate ETag (MD5 hash of the response)
	hash := md5.Sum(responseBytes)
	etag := hex.EncodeToString(hash[:])

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(responseBytes)))
	w.Header().Set("ETag", "\""+etag+"\"")
	w.WriteHeader(status)

	if _, err := w.Write(responseBytes); err != nil {
		log.Printf("Error writing response: %v", err)
		return
	}
}

// sendError writes err as an ErrorResponse with the status from statusForError
func (s *Server) sendError(w http.ResponseWriter, err error) {
	response := ErrorResponse{
		Kind:    interfaces.KindOf(err),
		Message: err.Error(),
	}
	var fetchErr *interfaces.FetchError
	if errors.As(err, &fetchErr) {
		response.Retryable = fetchErr.Retryable()
	}
	s.sendJSONResponseWithStatus(w, statusForError(err), response)
}

// statusForError maps pipeline failures to HTTP statuses:
// bad input 400, empty result or unknown job 404, upstream failures 502
func statusForError(err error) int {
	switch {
	case errors.Is(err, dashboard.ErrNoCoins), errors.Is(err, interfaces.ErrInvalidCoinID):
		return http.StatusBadRequest
	case errors.Is(err, jobs.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, jobs.ErrStopped):
		return http.StatusServiceUnavailable
	case interfaces.KindOf(err) == interfaces.FailureEmpty:
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}

// Stop gracefully shuts down the server
func (s *Server) Stop() {
	if s.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.server.Shutdown(ctx); err != nil {
			log.Printf("Error shutting down server: %v", err)
		}
	}
}

func getParam(r *http.Request, key string) string {
	if r == nil {
		return ""
	}
	return strings.TrimSpace(r.URL.Query().Get(key))
}
