package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/flowribbon/pkg/buildinfo"
	errs "github.com/matzehuels/flowribbon/pkg/errors"
	"github.com/matzehuels/flowribbon/pkg/pipeline"
	"github.com/matzehuels/flowribbon/pkg/sankey"
	"github.com/matzehuels/flowribbon/pkg/store"
)

// routes registers all HTTP endpoints on r.
func (s *Server) routes(r chi.Router) {
	r.Get("/healthz", s.handleHealth)
	r.Post("/api/render", s.handleRender)

	r.Route("/api/datasets", func(r chi.Router) {
		r.Post("/", s.handleCreateDataset)
		r.Get("/", s.handleListDatasets)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetDataset)
			r.Delete("/", s.handleDeleteDataset)
			r.Get("/diagram.{format}", s.handleDatasetDiagram)
		})
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

// handleRender runs the full pipeline on inline observations and returns
// a single rendered artifact. File paths are rejected so that API clients
// cannot read from the server's filesystem.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var opts pipeline.Options
	if err := json.NewDecoder(r.Body).Decode(&opts); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if opts.Data != "" {
		writeError(w, http.StatusBadRequest, "data path is not allowed; supply before and after observations inline")
		return
	}
	if err := validateLabels(opts.Before, opts.After); err != nil {
		writeError(w, http.StatusBadRequest, errs.UserMessage(err))
		return
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		writeError(w, http.StatusBadRequest, errs.UserMessage(err))
		return
	}
	if len(opts.Formats) != 1 {
		writeError(w, http.StatusBadRequest, "exactly one output format is required")
		return
	}

	res, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		writeError(w, statusForError(err), errs.UserMessage(err))
		return
	}
	format := opts.Formats[0]
	writeArtifact(w, format, res.Artifacts[format])
}

// createDatasetRequest is the body of POST /api/datasets.
type createDatasetRequest struct {
	Name   string   `json:"name"`
	Before []string `json:"before"`
	After  []string `json:"after"`
}

// datasetSummary is the listing view of a stored dataset. The
// observations themselves are returned only by the single-record GET.
type datasetSummary struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Observations int       `json:"observations"`
	CreatedAt    time.Time `json:"created_at"`
}

func summarize(rec *store.Record) datasetSummary {
	return datasetSummary{
		ID:           rec.ID,
		Name:         rec.Name,
		Observations: rec.Dataset.Len(),
		CreatedAt:    rec.CreatedAt,
	}
}

func (s *Server) handleCreateDataset(w http.ResponseWriter, r *http.Request) {
	var req createDatasetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	d, err := sankey.New(req.Before, req.After)
	if err != nil {
		writeError(w, http.StatusBadRequest, errs.UserMessage(err))
		return
	}
	if err := validateLabels(req.Before, req.After); err != nil {
		writeError(w, http.StatusBadRequest, errs.UserMessage(err))
		return
	}

	rec := store.NewRecord(req.Name, d)
	if err := s.store.Put(r.Context(), rec); err != nil {
		writeError(w, statusForError(err), errs.UserMessage(err))
		return
	}
	writeJSON(w, http.StatusCreated, summarize(rec))
}

func (s *Server) handleListDatasets(w http.ResponseWriter, r *http.Request) {
	records, err := s.store.List(r.Context())
	if err != nil {
		writeError(w, statusForError(err), errs.UserMessage(err))
		return
	}
	summaries := make([]datasetSummary, 0, len(records))
	for _, rec := range records {
		summaries = append(summaries, summarize(rec))
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (s *Server) handleGetDataset(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.lookupDataset(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleDeleteDataset(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := errs.ValidateDatasetID(id); err != nil {
		writeError(w, http.StatusBadRequest, errs.UserMessage(err))
		return
	}
	if err := s.store.Delete(r.Context(), id); err != nil {
		writeError(w, statusForError(err), errs.UserMessage(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleDatasetDiagram renders a stored dataset. The output format comes
// from the URL, all other render options from the query string. Custom
// color maps are only supported on POST /api/render.
func (s *Server) handleDatasetDiagram(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.lookupDataset(w, r)
	if !ok {
		return
	}
	format := chi.URLParam(r, "format")

	opts, err := optionsFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	opts.Before = rec.Dataset.Before
	opts.After = rec.Dataset.After
	opts.Formats = []string{format}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		writeError(w, http.StatusBadRequest, errs.UserMessage(err))
		return
	}

	res, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		writeError(w, statusForError(err), errs.UserMessage(err))
		return
	}
	writeArtifact(w, format, res.Artifacts[format])
}

// lookupDataset resolves the {id} URL parameter to a stored record,
// writing the error response itself when the ID is malformed or unknown.
func (s *Server) lookupDataset(w http.ResponseWriter, r *http.Request) (*store.Record, bool) {
	id := chi.URLParam(r, "id")
	if err := errs.ValidateDatasetID(id); err != nil {
		writeError(w, http.StatusBadRequest, errs.UserMessage(err))
		return nil, false
	}
	rec, err := s.store.Get(r.Context(), id)
	if err != nil {
		writeError(w, statusForError(err), errs.UserMessage(err))
		return nil, false
	}
	return rec, true
}

// optionsFromQuery parses render options from a diagram query string.
// Absent parameters are left at their zero values so the pipeline
// defaulting applies.
func optionsFromQuery(q url.Values) (pipeline.Options, error) {
	opts := pipeline.Options{
		VizType: q.Get("viz"),
		Style:   q.Get("style"),
	}
	floats := map[string]*float64{
		"aspect":       &opts.Aspect,
		"font_size":    &opts.FontSize,
		"frame_height": &opts.FrameHeight,
		"scale":        &opts.Scale,
	}
	for name, dst := range floats {
		if err := queryFloat(q, name, dst); err != nil {
			return opts, err
		}
	}
	bools := map[string]*bool{
		"color_by_dest": &opts.ColorByDest,
		"detailed":      &opts.Detailed,
		"refresh":       &opts.Refresh,
	}
	for name, dst := range bools {
		if err := queryBool(q, name, dst); err != nil {
			return opts, err
		}
	}
	return opts, nil
}

func queryFloat(q url.Values, name string, dst *float64) error {
	raw := q.Get(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid %s: %q", name, raw)
	}
	*dst = v
	return nil
}

func queryBool(q url.Values, name string, dst *bool) error {
	raw := q.Get(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fmt.Errorf("invalid %s: %q", name, raw)
	}
	*dst = v
	return nil
}

// validateLabels checks every distinct category label in the given
// sequences. Labels end up in SVG text, DOT identifiers and cache keys,
// so they are validated once at the API boundary.
func validateLabels(seqs ...[]string) error {
	seen := make(map[string]struct{})
	for _, seq := range seqs {
		for _, label := range seq {
			if _, ok := seen[label]; ok {
				continue
			}
			seen[label] = struct{}{}
			if err := errs.ValidateLabel(label); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func writeArtifact(w http.ResponseWriter, format string, data []byte) {
	w.Header().Set("Content-Type", contentTypeFor(format))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func contentTypeFor(format string) string {
	switch format {
	case pipeline.FormatSVG:
		return "image/svg+xml"
	case pipeline.FormatPNG:
		return "image/png"
	case pipeline.FormatPDF:
		return "application/pdf"
	default:
		return "application/json"
	}
}

// statusForError maps pipeline and storage errors to HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, sankey.ErrLengthMismatch),
		errors.Is(err, sankey.ErrMissingColor),
		errors.Is(err, sankey.ErrNoPalette),
		errors.Is(err, sankey.ErrNonPositiveAspect):
		return http.StatusBadRequest
	}
	switch errs.GetCode(err) {
	case errs.ErrCodeInvalidInput, errs.ErrCodeInvalidDataset, errs.ErrCodeInvalidFormat,
		errs.ErrCodeInvalidStyle, errs.ErrCodeInvalidColor, errs.ErrCodeInvalidPath:
		return http.StatusBadRequest
	case errs.ErrCodeNotFound, errs.ErrCodeDatasetNotFound, errs.ErrCodeFileNotFound:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
