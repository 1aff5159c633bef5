package server

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"math"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/haripriyarao26/find-a-path/internal/extraction"
	"github.com/haripriyarao26/find-a-path/internal/types"
)

// maxUploadBytes caps resume upload size.
const maxUploadBytes = 10 << 20 // 10 MB

// topCategoriesShown is the presentation-layer truncation of the full ranking.
const topCategoriesShown = 5

// UploadResponse is the response for /upload-resume.
type UploadResponse struct {
	Success    bool   `json:"success"`
	Filename   string `json:"filename"`
	Text       string `json:"text"`
	TextLength int    `json:"text_length"`
}

// ExtractRequest is the request body for /extract-skills.
type ExtractRequest struct {
	Text string `json:"text"`
}

// ExtractResponse is the response for /extract-skills.
type ExtractResponse struct {
	Success       bool     `json:"success"`
	Skills        []string `json:"skills"`
	Organizations []string `json:"organizations"`
	Locations     []string `json:"locations"`
	Persons       []string `json:"persons"`
	TotalEntities int      `json:"total_entities"`
}

// AnalyzeRequest is the request body for /analyze-skills.
// A missing skills field (nil) is rejected; an empty list is valid.
type AnalyzeRequest struct {
	Skills []string `json:"skills"`
}

// AnalyzeResponse is the response for /analyze-skills.
type AnalyzeResponse struct {
	Success             bool                           `json:"success"`
	CategoryAnalysis    map[string]types.CategoryScore `json:"category_analysis"`
	TopCategories       []types.RankedCategory         `json:"top_categories"`
	RecommendedSkills   []string                       `json:"recommended_skills"`
	TotalSkillsAnalyzed int                            `json:"total_skills_analyzed"`
}

// handleRoot returns a service banner
func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Resume Analysis API is running!"})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// handleUploadResume extracts text from an uploaded resume document
func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "file is required: "+err.Error())
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read file: "+err.Error())
		return
	}

	text, err := extraction.ExtractText(header.Filename, data)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if strings.TrimSpace(text) == "" {
		s.errorResponse(w, http.StatusBadRequest, "No text found in the document")
		return
	}

	s.jsonResponse(w, http.StatusOK, UploadResponse{
		Success:    true,
		Filename:   header.Filename,
		Text:       text,
		TextLength: len(text),
	})
}

// handleExtractSkills extracts skill tokens from resume text
func (s *Server) handleExtractSkills(w http.ResponseWriter, r *http.Request) {
	var req ExtractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if req.Text == "" {
		s.errorResponse(w, http.StatusBadRequest, "Text is required")
		return
	}

	skills := extraction.ExtractSkills(req.Text)

	// Entity buckets beyond skills require an external NER collaborator;
	// they stay empty here so the response shape is stable for the UI.
	s.jsonResponse(w, http.StatusOK, ExtractResponse{
		Success:       true,
		Skills:        skills,
		Organizations: []string{},
		Locations:     []string{},
		Persons:       []string{},
		TotalEntities: len(skills),
	})
}

// handleAnalyzeSkills runs the analysis pipeline for a candidate skill list
func (s *Server) handleAnalyzeSkills(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	requestID := uuid.New().String()
	w.Header().Set("X-Request-ID", requestID)

	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()

	result, err := s.analyzer.Analyze(ctx, req.Skills)
	if err != nil {
		log.Printf("[%s] analysis failed: %v", requestID, err)
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if result.DroppedSkills > 0 {
		log.Printf("[%s] %d skill(s) excluded from analysis", requestID, result.DroppedSkills)
	}

	analysisOut := make(map[string]types.CategoryScore, len(result.CategoryAnalysis))
	for name, cs := range result.CategoryAnalysis {
		cs.Score = round3(cs.Score)
		analysisOut[name] = cs
	}

	top := result.TopCategories
	if len(top) > topCategoriesShown {
		top = top[:topCategoriesShown]
	}
	topOut := make([]types.RankedCategory, len(top))
	for i, rc := range top {
		rc.Score = round3(rc.Score)
		topOut[i] = rc
	}

	recommended := result.RecommendedSkills
	if recommended == nil {
		recommended = []string{}
	}

	s.jsonResponse(w, http.StatusOK, AnalyzeResponse{
		Success:             true,
		CategoryAnalysis:    analysisOut,
		TopCategories:       topOut,
		RecommendedSkills:   recommended,
		TotalSkillsAnalyzed: len(result.Skills),
	})
}

// round3 rounds a score to three decimals for presentation.
func round3(score float64) float64 {
	return math.Round(score*1000) / 1000
}
