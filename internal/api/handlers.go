package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/alexiusacademia/beamcalc/internal/beam"
	"github.com/alexiusacademia/beamcalc/internal/diagram"
	"github.com/alexiusacademia/beamcalc/internal/loadcase"
	"github.com/alexiusacademia/beamcalc/internal/nscp"
	"github.com/alexiusacademia/beamcalc/internal/report"
	"github.com/alexiusacademia/beamcalc/internal/version"
)

// Response types

// HealthResponse is the response for /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// VersionResponse is the response for /version.
type VersionResponse struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Service string `json:"service"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// AnalyzeRequest is a beam definition plus sampling and factoring options.
type AnalyzeRequest struct {
	loadcase.File

	Stations int    `json:"stations,omitempty"` // default beam.DefaultStations
	Combo    string `json:"combo,omitempty"`    // NSCP combination ID, empty for service loads

	// Report fields, used by /api/report.pdf only
	Project string `json:"project,omitempty"`
	Author  string `json:"author,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

// AnalyzeResponse is the response for /api/analyze.
type AnalyzeResponse struct {
	ID        string            `json:"id"`
	Combo     string            `json:"combo,omitempty"`
	Summary   string            `json:"summary"`
	Reactions ReactionsResponse `json:"reactions"`
	Extremes  ExtremesResponse  `json:"extremes"`
	X         []float64         `json:"x"`
	V         []float64         `json:"v"`
	M         []float64         `json:"m"`
}

// ReactionsResponse holds the support reactions. Only the values that
// apply to the support configuration are present.
type ReactionsResponse struct {
	Support     string   `json:"support"`
	ReactionA   float64  `json:"reaction_a"`
	ReactionB   *float64 `json:"reaction_b,omitempty"`
	FixedMoment *float64 `json:"fixed_moment,omitempty"`
}

// StationResponse is a value and its position.
type StationResponse struct {
	X     float64 `json:"x"`
	Value float64 `json:"value"`
}

// ExtremesResponse holds the peak sampled internal forces.
type ExtremesResponse struct {
	MaxShear  StationResponse `json:"max_shear"`
	MinShear  StationResponse `json:"min_shear"`
	MaxMoment StationResponse `json:"max_moment"`
	MinMoment StationResponse `json:"min_moment"`
}

// analysis is a solved and sampled request
type analysis struct {
	id    string
	req   AnalyzeRequest
	combo *nscp.LoadCombination
	beam  *beam.Beam
	data  diagram.BeamDiagramData
}

// Handlers

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, VersionResponse{
		Version: version.Version,
		Commit:  version.GitCommit,
		Service: "beamcalc",
	})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	a, ok := s.analyze(w, r)
	if !ok {
		return
	}

	summary, err := a.beam.Summary(a.data.Units)
	if err != nil {
		s.fail(w, a.id, err)
		return
	}
	resp := AnalyzeResponse{
		ID:        a.id,
		Summary:   summary,
		Reactions: reactionsResponse(a.data.Reactions),
		Extremes:  extremesResponse(a.data.Extremes),
		X:         a.data.Diagram.X,
		V:         a.data.Diagram.V,
		M:         a.data.Diagram.M,
	}
	if a.combo != nil {
		resp.Combo = a.combo.ID
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDiagram(w http.ResponseWriter, r *http.Request) {
	a, ok := s.analyze(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("X-Analysis-Id", a.id)
	if err := diagram.WriteBeamDiagram(w, a.data, "svg"); err != nil {
		s.logger.Error("diagram render failed", zap.String("id", a.id), zap.Error(err))
	}
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	a, ok := s.analyze(w, r)
	if !ok {
		return
	}

	in := report.Input{
		Title:   a.req.Name,
		Project: a.req.Project,
		Author:  a.req.Author,
		Notes:   a.req.Notes,
		Data:    a.data,
	}
	if a.combo != nil {
		in.Combination = fmt.Sprintf("%s: %s", a.combo.ID, a.combo.Description)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"beam-report.pdf\"")
	w.Header().Set("X-Analysis-Id", a.id)
	if err := report.Write(w, in); err != nil {
		s.logger.Error("report generation failed", zap.String("id", a.id), zap.Error(err))
	}
}

// analyze decodes, solves and samples the request body. On failure the
// error response has been written and ok is false.
func (s *Server) analyze(w http.ResponseWriter, r *http.Request) (a *analysis, ok bool) {
	a = &analysis{id: uuid.NewString()}

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&a.req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return nil, false
	}

	stations := a.req.Stations
	if stations == 0 {
		stations = beam.DefaultStations
	}
	if stations < 2 || stations > s.cfg.MaxStations {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("stations must be between 2 and %d", s.cfg.MaxStations))
		return nil, false
	}

	if a.req.Combo != "" {
		combo, err := nscp.Find(nscp.LoadCombinations, a.req.Combo)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return nil, false
		}
		a.combo = &combo
	}

	b, err := a.req.Solve(a.combo)
	if err != nil {
		s.fail(w, a.id, err)
		return nil, false
	}
	a.beam = b

	a.data, err = diagram.NewBeamDiagramData(b, stations, a.req.UnitLabels())
	if err != nil {
		s.fail(w, a.id, err)
		return nil, false
	}
	a.data.Title = a.req.Name

	s.logger.Debug("beam analyzed",
		zap.String("id", a.id),
		zap.Float64("length", b.Length),
		zap.Stringer("support", a.data.Support),
		zap.Int("stations", stations),
	)
	return a, true
}

// fail maps an engine error to its HTTP status
func (s *Server) fail(w http.ResponseWriter, id string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("analysis failed", zap.String("id", id), zap.Error(err))
	}
	writeError(w, status, err.Error())
}

func statusFor(err error) int {
	var ve *loadcase.ValidationError
	switch {
	case errors.As(err, &ve),
		errors.Is(err, beam.ErrOutOfBounds),
		errors.Is(err, beam.ErrInvalidLength),
		errors.Is(err, beam.ErrInvalidLoad):
		return http.StatusBadRequest
	case errors.Is(err, beam.ErrDegenerateSupports):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func reactionsResponse(r beam.Reactions) ReactionsResponse {
	resp := ReactionsResponse{Support: r.Support.String(), ReactionA: r.A}
	switch r.Support.(type) {
	case beam.Cantilever:
		resp.FixedMoment = &r.FixedMoment
	default:
		resp.ReactionB = &r.B
	}
	return resp
}

func extremesResponse(e beam.Extremes) ExtremesResponse {
	st := func(s beam.Station) StationResponse { return StationResponse{X: s.X, Value: s.Value} }
	return ExtremesResponse{
		MaxShear:  st(e.MaxShear),
		MinShear:  st(e.MinShear),
		MaxMoment: st(e.MaxMoment),
		MinMoment: st(e.MinMoment),
	}
}

// Helper functions

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}
