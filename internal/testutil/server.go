package testutil

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
)

// Response is one scripted answer of an SVGServer.
type Response struct {
	Status int
	Body   string
}

// SVGServer is an httptest server standing in for the SVG API.
// Responses are scripted per theme and consumed in order; once a script is
// exhausted its last response repeats.
type SVGServer struct {
	*httptest.Server

	mu       sync.Mutex
	scripts  map[string][]Response
	requests []*url.URL
	headers  []http.Header
}

// NewSVGServer starts a server and registers its shutdown with t.Cleanup.
func NewSVGServer(t *testing.T) *SVGServer {
	t.Helper()

	s := &SVGServer{scripts: make(map[string][]Response)}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)
	return s
}

// Script sets the responses for a theme.
func (s *SVGServer) Script(theme string, responses ...Response) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scripts[theme] = responses
}

// Requests returns the URLs received so far.
func (s *SVGServer) Requests() []*url.URL {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*url.URL, len(s.requests))
	copy(out, s.requests)
	return out
}

// Headers returns the request headers received so far.
func (s *SVGServer) Headers() []http.Header {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]http.Header, len(s.headers))
	copy(out, s.headers)
	return out
}

// RequestCount returns the number of requests for a theme.
func (s *SVGServer) RequestCount(theme string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, u := range s.requests {
		if u.Query().Get("theme") == theme {
			n++
		}
	}
	return n
}

func (s *SVGServer) handle(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.requests = append(s.requests, r.URL)
	s.headers = append(s.headers, r.Header.Clone())

	theme := r.URL.Query().Get("theme")
	script := s.scripts[theme]
	resp := Response{Status: http.StatusNotFound, Body: "no script for theme " + theme}
	if len(script) > 0 {
		resp = script[0]
		if len(script) > 1 {
			s.scripts[theme] = script[1:]
		}
	}
	s.mu.Unlock()

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(resp.Status)
	_, _ = w.Write([]byte(resp.Body))
}
