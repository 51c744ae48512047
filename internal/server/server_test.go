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

package server

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/ianlewis/go-bgvocab/vocab"
)

func newTestServer(t *testing.T) (*Server, *bytes.Buffer) {
	t.Helper()

	v := vocab.New([]*vocab.Entry{
		{Headword: "а", Translations: []string{"and"}},
		{Headword: "бЯл", Translations: []string{"<b>white</b>"}},
		{Headword: "вОда", Translations: []string{"water"}},
		{Headword: "Дом", Translations: []string{"house", "home"}},
		{Headword: "ехО", Translations: []string{"echo"}},
	})
	var logs bytes.Buffer
	return New(v, slog.New(slog.NewTextHandler(&logs, nil))), &logs
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestBatch(t *testing.T) {
	t.Parallel()

	s, logs := newTestServer(t)
	rec := get(t, s.Handler(), "/api/batch?page=1&size=3")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp BatchResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Equal(t, BatchResponse{
		Page:  1,
		Size:  3,
		Total: 5,
		Entries: []EntryResponse{
			{Key: "дом", Stressed: "д\u0301ом", Translation: "house\nhome", Raw: []string{"house", "home"}},
			{Key: "ехо", Stressed: "ехо\u0301", Translation: "echo", Raw: []string{"echo"}},
		},
	}, resp)

	require.Contains(t, logs.String(), "path=/api/batch")
	require.Contains(t, logs.String(), "status=200")
}

func TestBatch_Defaults(t *testing.T) {
	t.Parallel()

	s, _ := newTestServer(t)
	rec := get(t, s.Handler(), "/api/batch")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp BatchResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Equal(t, 0, resp.Page)
	require.Equal(t, 10, resp.Size)
	require.Len(t, resp.Entries, 5)
	require.Equal(t, "бял", resp.Entries[1].Key)
	require.Equal(t, "white", resp.Entries[1].Translation)
	require.Equal(t, []string{"<b>white</b>"}, resp.Entries[1].Raw)
}

func TestBatch_Empty(t *testing.T) {
	t.Parallel()

	s, _ := newTestServer(t)
	rec := get(t, s.Handler(), "/api/batch?page=7")
	require.Equal(t, http.StatusOK, rec.Code)

	// Entries is an empty list rather than null.
	require.Contains(t, rec.Body.String(), `"entries":[]`)
}

func TestBatch_BadRequest(t *testing.T) {
	t.Parallel()

	s, _ := newTestServer(t)
	for _, target := range []string{
		"/api/batch?page=x",
		"/api/batch?page=-1",
		"/api/batch?size=0",
		"/api/batch?size=100000",
		"/api/batch?size=ten",
	} {
		t.Run(target, func(t *testing.T) {
			t.Parallel()

			rec := get(t, s.Handler(), target)
			require.Equal(t, http.StatusBadRequest, rec.Code)

			var resp ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			require.NotEmpty(t, resp.Error)
		})
	}
}

func TestWord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		target   string
		status   int
		expected *EntryResponse
	}{
		{
			name:   "plain",
			target: "/api/word?w=" + url.QueryEscape("дом"),
			status: http.StatusOK,
			expected: &EntryResponse{
				Key:         "дом",
				Stressed:    "д\u0301ом",
				Translation: "house\nhome",
				Raw:         []string{"house", "home"},
			},
		},
		{
			name:   "stressed and capitalized",
			target: "/api/word?w=" + url.QueryEscape("Во\u0301да"),
			status: http.StatusOK,
			expected: &EntryResponse{
				Key:         "вода",
				Stressed:    "во\u0301да",
				Translation: "water",
				Raw:         []string{"water"},
			},
		},
		{
			name:   "not found",
			target: "/api/word?w=" + url.QueryEscape("котка"),
			status: http.StatusNotFound,
		},
		{
			name:   "missing",
			target: "/api/word",
			status: http.StatusBadRequest,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			s, _ := newTestServer(t)
			rec := get(t, s.Handler(), test.target)
			require.Equal(t, test.status, rec.Code)

			if test.expected == nil {
				var resp ErrorResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				require.NotEmpty(t, resp.Error)
				return
			}
			var resp EntryResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			require.Equal(t, *test.expected, resp)
		})
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()

	s, _ := newTestServer(t)
	rec := get(t, s.Handler(), "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Equal(t, HealthResponse{Status: "ok", Words: 5}, resp)
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	t.Run("reuse incoming", func(t *testing.T) {
		t.Parallel()

		incoming := uuid.New().String()
		s, logs := newTestServer(t)
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.Header.Set(RequestIDHeader, incoming)
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)

		require.Equal(t, incoming, rec.Header().Get(RequestIDHeader))
		require.Contains(t, logs.String(), "request_id="+incoming)
	})

	t.Run("generate new", func(t *testing.T) {
		t.Parallel()

		s, _ := newTestServer(t)
		rec := get(t, s.Handler(), "/healthz")

		_, err := uuid.Parse(rec.Header().Get(RequestIDHeader))
		require.NoError(t, err)
	})

	t.Run("context", func(t *testing.T) {
		t.Parallel()

		var got string
		h := requestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			got = RequestIDFromContext(r.Context())
		}))
		rec := get(t, h, "/")
		require.NotEmpty(t, got)
		require.Equal(t, got, rec.Header().Get(RequestIDHeader))
	})
}

func TestMethodNotAllowed(t *testing.T) {
	t.Parallel()

	s, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/api/batch", strings.NewReader("{}"))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRecovery(t *testing.T) {
	t.Parallel()

	s, logs := newTestServer(t)
	h := s.recovery(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rec := get(t, h, "/")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, logs.String(), "panic recovered")
}

func TestWrap_panicIsLogged(t *testing.T) {
	t.Parallel()

	s, logs := newTestServer(t)
	h := s.wrap(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rec := get(t, h, "/api/boom")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotEmpty(t, rec.Header().Get(RequestIDHeader))
	require.Contains(t, logs.String(), "panic recovered")
	require.Contains(t, logs.String(), "msg=http.request")
	require.Contains(t, logs.String(), "path=/api/boom")
	require.Contains(t, logs.String(), "status=500")
}

func TestListenAndServe(t *testing.T) {
	t.Parallel()

	// Reserve a free port.
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	s, _ := newTestServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- s.ListenAndServe(ctx, Options{
			Addr:            addr,
			ReadTimeout:     time.Second,
			WriteTimeout:    time.Second,
			ShutdownTimeout: time.Second,
		})
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/healthz")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}
