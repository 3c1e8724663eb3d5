package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/jonathan/resume-analyzer/internal/pipeline"
)

// maxUploadBytes caps resume uploads.
const maxUploadBytes = 10 << 20

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleAnalyze accepts a multipart resume upload and runs the full
// analysis.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "missing 'resume' file field")
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "reading upload: "+err.Error())
		return
	}

	result, err := s.runner.Run(r.Context(), pipeline.Input{
		Data:     data,
		MIMEType: header.Header.Get("Content-Type"),
		Filename: header.Filename,
		UserID:   r.FormValue("userId"),
		Location: r.FormValue("location"),
	})
	if err != nil {
		s.pipelineError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// analyzeTextRequest is the pasted-text analysis request body.
type analyzeTextRequest struct {
	Text     string `json:"text" validate:"required"`
	UserID   string `json:"userId" validate:"omitempty,max=128"`
	Location string `json:"location" validate:"omitempty,max=128"`
}

// handleAnalyzeText accepts pasted resume text and runs the full
// analysis.
func (s *Server) handleAnalyzeText(w http.ResponseWriter, r *http.Request) {
	var req analyzeTextRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxUploadBytes)).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "validation failed: "+err.Error())
		return
	}

	result, err := s.runner.Run(r.Context(), pipeline.Input{
		Text:     req.Text,
		UserID:   req.UserID,
		Location: req.Location,
	})
	if err != nil {
		s.pipelineError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// pipelineError maps pipeline failures to HTTP statuses. ErrNoInput is
// the only expected hard failure.
func (s *Server) pipelineError(w http.ResponseWriter, err error) {
	if errors.Is(err, pipeline.ErrNoInput) {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	s.errorResponse(w, http.StatusInternalServerError, err.Error())
}
