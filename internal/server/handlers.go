package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/portfolio-composer/internal/composing"
	"github.com/jonathan/portfolio-composer/internal/scoring"
	"github.com/jonathan/portfolio-composer/internal/types"
)

// ScoreRequest is the body of POST /v1/score.
type ScoreRequest struct {
	Category string                    `json:"category" validate:"required"`
	Contents []types.NormalizedContent `json:"contents" validate:"required,min=1,dive"`
}

// Validate validates the ScoreRequest using the validator.
func (r *ScoreRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// ScoreResponse is the body returned by POST /v1/score.
type ScoreResponse struct {
	Category string                `json:"category"`
	Scored   []types.ScoredContent `json:"scored"`
}

// ComposeRequest is the body of POST /v1/compose.
type ComposeRequest struct {
	UserID   string                    `json:"user_id" validate:"required"`
	Category string                    `json:"category" validate:"required"`
	Title    string                    `json:"title" validate:"required"`
	Subtitle string                    `json:"subtitle,omitempty"`
	Strict   bool                      `json:"strict,omitempty"`
	Contents []types.NormalizedContent `json:"contents" validate:"dive"`
}

// Validate validates the ComposeRequest using the validator.
func (r *ComposeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// errorResponse is the uniform error body for all endpoints.
type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	category, err := types.ParseCategory(req.Category)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	scored := scoring.ScoreContentBatch(req.Contents, category)
	writeJSON(w, http.StatusOK, ScoreResponse{Category: string(category), Scored: scored})
}

func (s *Server) handleCompose(w http.ResponseWriter, r *http.Request) {
	var req ComposeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	category, err := types.ParseCategory(req.Category)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	scored := scoring.ScoreContentBatch(req.Contents, category)
	opts := composing.ComposeOptions{
		UserID:   req.UserID,
		Category: category,
		Title:    req.Title,
		Subtitle: req.Subtitle,
	}

	compose := composing.Compose
	if req.Strict {
		compose = composing.ComposeStrict
	}

	portfolio, err := compose(scored, opts)
	if err != nil {
		var insufficient *composing.InsufficientContentError
		if errors.As(err, &insufficient) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, portfolio)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		// Headers are already out; nothing sensible left to do.
		return
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
