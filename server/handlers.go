package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/sshhmmoonnyyaa/Basenko-friend-finder/core"
)

// StatusResponse reports build readiness.
type StatusResponse struct {
	Ready         bool `json:"ready"`
	TotalProfiles int  `json:"total_profiles,omitempty"`
}

// StatsResponse mirrors core.DatasetStats.
type StatsResponse struct {
	TotalProfiles          int         `json:"total_profiles"`
	ClusterCount           int         `json:"cluster_count"`
	ClusterSizes           map[int]int `json:"cluster_sizes"`
	EmbeddingDim           int         `json:"embedding_dim"`
	MeanPairwiseSimilarity float64     `json:"mean_pairwise_similarity"`
}

// ClusterResponse describes one cluster.
type ClusterResponse struct {
	Label       int             `json:"label"`
	MemberCount int             `json:"member_count"`
	TopTokens   []TokenCountView `json:"top_tokens"`
}

// TokenCountView is a token with its occurrence count.
type TokenCountView struct {
	Token string `json:"token"`
	Count int    `json:"count"`
}

// MatchView is one ranked similarity match.
type MatchView struct {
	ProfileID   int     `json:"profile_id"`
	Similarity  float64 `json:"similarity"`
	Description string  `json:"description"`
	Cluster     int     `json:"cluster"`
}

// SimilarResponse is the body of a similarity search answer.
type SimilarResponse struct {
	Query   string      `json:"query"`
	Matches []MatchView `json:"matches"`
}

// PredictResponse is the body of a cluster prediction answer.
type PredictResponse struct {
	Cluster        int              `json:"cluster"`
	Confidence     float64          `json:"confidence"`
	NormalizedText string           `json:"normalized_text"`
	ClusterSize    int              `json:"cluster_size"`
	TopTokens      []TokenCountView `json:"top_tokens"`
}

// requireReady answers 503 when the build has not completed yet.
func (s *Server) requireReady(w http.ResponseWriter) bool {
	if s.store.Ready() {
		return true
	}
	jsonResponse(w, http.StatusServiceUnavailable, ErrorResponse{Error: "corpus build in progress"})
	return false
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	resp := StatusResponse{Ready: s.store.Ready()}
	if resp.Ready {
		if stats, err := s.store.Stats(); err == nil {
			resp.TotalProfiles = stats.TotalProfiles
		}
	}
	jsonResponse(w, http.StatusOK, resp)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if !s.requireReady(w) {
		return
	}

	stats, err := s.store.Stats()
	if err != nil {
		jsonResponse(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	jsonResponse(w, http.StatusOK, StatsResponse{
		TotalProfiles:          stats.TotalProfiles,
		ClusterCount:           stats.ClusterCount,
		ClusterSizes:           stats.ClusterSizes,
		EmbeddingDim:           stats.EmbeddingDim,
		MeanPairwiseSimilarity: stats.MeanPairwiseSimilarity,
	})
}

func (s *Server) handleCluster(w http.ResponseWriter, r *http.Request) {
	if !s.requireReady(w) {
		return
	}

	label, err := strconv.Atoi(r.PathValue("label"))
	if err != nil {
		jsonResponse(w, http.StatusBadRequest, ErrorResponse{Error: "cluster label must be an integer"})
		return
	}

	summary, err := s.store.ClusterSummary(label)
	if err != nil {
		jsonResponse(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	jsonResponse(w, http.StatusOK, ClusterResponse{
		Label:       label,
		MemberCount: summary.MemberCount,
		TopTokens:   tokenViews(summary.TopTokens),
	})
}

func (s *Server) handleSimilar(w http.ResponseWriter, r *http.Request) {
	if !s.requireReady(w) {
		return
	}

	var req struct {
		Text string `json:"text"`
		TopK int    `json:"top_k"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonResponse(w, http.StatusBadRequest, ErrorResponse{Error: "invalid JSON"})
		return
	}

	matches, err := s.store.FindSimilar(r.Context(), req.Text, req.TopK)
	if err != nil {
		s.logger.Error("similarity search failed", "error", err)
		jsonResponse(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	resp := SimilarResponse{Query: req.Text, Matches: make([]MatchView, len(matches))}
	for i, m := range matches {
		resp.Matches[i] = MatchView{
			ProfileID:   m.ProfileID,
			Similarity:  m.Similarity,
			Description: m.Description,
			Cluster:     m.Cluster,
		}
	}
	jsonResponse(w, http.StatusOK, resp)
}

func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	if !s.requireReady(w) {
		return
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonResponse(w, http.StatusBadRequest, ErrorResponse{Error: "invalid JSON"})
		return
	}

	prediction, err := s.store.PredictCluster(r.Context(), req.Text)
	if err != nil && !errors.Is(err, core.ErrEmptyQuery) {
		s.logger.Error("cluster prediction failed", "error", err)
		jsonResponse(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	// An empty query is a terminal non-result, answered 200 with the
	// sentinel prediction.
	jsonResponse(w, http.StatusOK, PredictResponse{
		Cluster:        prediction.Cluster,
		Confidence:     prediction.Confidence,
		NormalizedText: prediction.NormalizedText,
		ClusterSize:    prediction.ClusterSize,
		TopTokens:      tokenViews(prediction.TopTokens),
	})
}

func tokenViews(tokens []core.TokenCount) []TokenCountView {
	views := make([]TokenCountView, len(tokens))
	for i, tc := range tokens {
		views[i] = TokenCountView{Token: tc.Token, Count: tc.Count}
	}
	return views
}
