// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package server implements an HTTP JSON API over a vocabulary.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ianlewis/go-bgvocab/deck"
	"github.com/ianlewis/go-bgvocab/vocab"
)

const (
	defaultPageSize = 10
	maxPageSize     = 500
)

// Options are options for running the server.
type Options struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// Server serves batches of an immutable vocabulary.
type Server struct {
	vocab  *vocab.Vocabulary
	logger *slog.Logger
}

// New returns a new Server. A nil logger uses [slog.Default].
func New(v *vocab.Vocabulary, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		vocab:  v,
		logger: logger,
	}
}

// BatchResponse is the JSON response for /api/batch.
type BatchResponse struct {
	Page    int             `json:"page"`
	Size    int             `json:"size"`
	Total   int             `json:"total"`
	Entries []EntryResponse `json:"entries"`
}

// EntryResponse is a single vocabulary entry.
type EntryResponse struct {
	Key         string   `json:"key"`
	Stressed    string   `json:"stressed"`
	Translation string   `json:"translation"`
	Raw         []string `json:"raw"`
}

// HealthResponse is the JSON response for /healthz.
type HealthResponse struct {
	Status string `json:"status"`
	Words  int    `json:"words"`
}

// ErrorResponse is the JSON response for failed requests.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/batch", s.batch)
	mux.HandleFunc("GET /api/word", s.word)
	mux.HandleFunc("GET /healthz", s.health)
	return s.wrap(mux)
}

// wrap applies the middleware to h. Recovery is innermost so that panics are
// request-logged as 500s.
func (s *Server) wrap(h http.Handler) http.Handler {
	return requestID(s.logRequests(s.recovery(h)))
}

func (s *Server) batch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := intParam(q.Get("page"), 0)
	if err != nil || page < 0 {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("invalid page %q", q.Get("page"))})
		return
	}
	size, err := intParam(q.Get("size"), defaultPageSize)
	if err != nil || size < 1 || size > maxPageSize {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error: fmt.Sprintf("invalid size %q: must be between 1 and %d", q.Get("size"), maxPageSize),
		})
		return
	}

	resp := BatchResponse{
		Page:    page,
		Size:    size,
		Total:   s.vocab.Len(),
		Entries: []EntryResponse{},
	}
	for _, e := range s.vocab.Window(page, size) {
		resp.Entries = append(resp.Entries, entryResponse(e))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) word(w http.ResponseWriter, r *http.Request) {
	word := strings.TrimSpace(r.URL.Query().Get("w"))
	if word == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "missing word"})
		return
	}
	e := s.vocab.Lookup(word)
	if e == nil {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: fmt.Sprintf("word %q not found", word)})
		return
	}
	writeJSON(w, http.StatusOK, entryResponse(e))
}

func entryResponse(e *vocab.Entry) EntryResponse {
	return EntryResponse{
		Key:         e.Key,
		Stressed:    e.Stressed(),
		Translation: deck.Flatten(e.Translations),
		Raw:         e.Translations,
	}
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Words:  s.vocab.Len(),
	})
}

func intParam(raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// ListenAndServe serves HTTP on opts.Addr until ctx is done. The server is
// then shut down gracefully within opts.ShutdownTimeout.
func (s *Server) ListenAndServe(ctx context.Context, opts Options) error {
	srv := &http.Server{
		Addr:         opts.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", opts.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), opts.ShutdownTimeout)
	defer cancel()
	s.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}
