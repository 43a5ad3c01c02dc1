// Copyright 2025 The Basenko Friend Finder Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package server exposes the profile store over a small JSON HTTP API.
// Data endpoints answer 503 until the one-time corpus build completes.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sshhmmoonnyyaa/Basenko-friend-finder/profiles"
)

// Server is the HTTP boundary over a profile store.
type Server struct {
	store  *profiles.Store
	logger *slog.Logger
	router *http.ServeMux
}

// New creates a Server for the given store.
func New(store *profiles.Store) *Server {
	s := &Server{
		store:  store,
		logger: slog.Default().With("component", "server"),
		router: http.NewServeMux(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.HandleFunc("GET /api/v1/status", s.handleStatus)
	s.router.HandleFunc("GET /api/v1/stats", s.handleStats)
	s.router.HandleFunc("GET /api/v1/clusters/{label}", s.handleCluster)
	s.router.HandleFunc("POST /api/v1/similar", s.handleSimilar)
	s.router.HandleFunc("POST /api/v1/predict", s.handlePredict)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Start listens on addr and serves until the listener fails.
func (s *Server) Start(addr string) error {
	s.logger.Info("starting API server", "addr", addr)
	return http.ListenAndServe(addr, s.router)
}

// ErrorResponse is the JSON body of every non-2xx answer.
type ErrorResponse struct {
	Error string `json:"error"`
}

func jsonResponse(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Default().Error("failed to encode response", "error", err)
	}
}
