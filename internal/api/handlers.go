package api

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/gduarte/massing/pkg/errors"
	"github.com/gduarte/massing/pkg/massing"
	"github.com/gduarte/massing/pkg/pipeline"
	"github.com/gduarte/massing/pkg/program"
	"github.com/gduarte/massing/pkg/render"
)

// massingResponse is the JSON body for a successful solve.
type massingResponse struct {
	RunID       string                `json:"run_id"`
	RecordsHash string                `json:"records_hash"`
	Records     []massing.Record      `json:"records"`
	Warnings    []errors.Warning      `json:"warnings,omitempty"`
	Dropped     int                   `json:"dropped_circulation,omitempty"`
	Optimize    massing.OptimizeStats `json:"optimize"`
	Stats       massing.BatchStats    `json:"stats"`
	Cached      bool                  `json:"cached"`
}

// errorResponse is the JSON body for failures.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleMassing solves a room program posted as pipeline options.
//
// By default the response is JSON with records and statistics. With
// ?format=csv or ?format=html the matching artifact is returned raw, which
// lets a browser fetch the report page directly.
func (s *Server) handleMassing(w http.ResponseWriter, r *http.Request) {
	var opts pipeline.Options
	if err := json.NewDecoder(r.Body).Decode(&opts); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid request body"))
		return
	}

	format := r.URL.Query().Get("format")
	if format != "" {
		if err := pipeline.ValidateFormat(format); err != nil {
			writeError(w, errors.New(errors.ErrCodeInvalidFormat, "%v", err))
			return
		}
		opts.Formats = []string{format}
	} else {
		// JSON response assembled here; skip the artifact stage extras.
		opts.Formats = []string{pipeline.FormatJSON}
	}

	if err := opts.ValidateAndSetDefaults(); err != nil {
		if errors.GetCode(err) == "" {
			err = errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid options")
		}
		writeError(w, err)
		return
	}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		writeError(w, err)
		return
	}

	if format != "" && format != pipeline.FormatJSON {
		w.Header().Set("Content-Type", contentType(format))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(result.Artifacts[format])
		return
	}

	writeJSON(w, http.StatusOK, massingResponse{
		RunID:       uuid.NewString(),
		RecordsHash: result.RecordsHash,
		Records:     result.Solved.Records,
		Warnings:    result.Solved.Warnings,
		Dropped:     result.Solved.Dropped,
		Optimize:    result.Solved.Optimize,
		Stats:       result.Solved.Batch,
		Cached:      result.CacheInfo.SolveHit,
	})
}

// classifyRequest is the body for the classify endpoint.
type classifyRequest struct {
	Names []string `json:"names"`
}

// classifyResult is one classified name.
type classifyResult struct {
	Name     string           `json:"name"`
	Type     program.RoomType `json:"type"`
	Category program.Category `json:"category"`
	Color    program.Color    `json:"color"`
}

// handleClassify maps room names to types without solving.
func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	var req classifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid request body"))
		return
	}
	if len(req.Names) == 0 {
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "names is required"))
		return
	}

	out := make([]classifyResult, 0, len(req.Names))
	for _, name := range req.Names {
		typ := program.Classify(name)
		cat := program.CategoryOf(typ)
		out = append(out, classifyResult{
			Name:     name,
			Type:     typ,
			Category: cat,
			Color:    program.ColorOf(cat),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// writeJSON serializes v with the standard headers.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps structured error codes to HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidInputRow,
		errors.ErrCodeInvalidModule, errors.ErrCodeInvalidTolerance,
		errors.ErrCodeInvalidHeight, errors.ErrCodeInvalidFormat,
		errors.ErrCodeUnsupported:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	}

	code := string(errors.GetCode(err))
	if code == "" {
		code = string(errors.ErrCodeInternal)
	}
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: errors.UserMessage(err),
	})
}

// contentType returns the response content type for an artifact format.
func contentType(format string) string {
	switch format {
	case render.FormatCSV:
		return "text/csv"
	case render.FormatHTML:
		return "text/html; charset=utf-8"
	default:
		return "application/json"
	}
}
