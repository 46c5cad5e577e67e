package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strings"

	"github.com/rshade/isleprint/internal/catalog"
	"github.com/rshade/isleprint/internal/engine"
	"github.com/rshade/isleprint/internal/factors"
	"github.com/rshade/isleprint/internal/geo"
	"github.com/rshade/isleprint/internal/ledger"
	"github.com/rshade/isleprint/internal/logging"
	"github.com/rshade/isleprint/internal/report"
	"github.com/rshade/isleprint/internal/travel"
	"github.com/rshade/isleprint/pkg/version"
)

type errorResponse struct {
	Error string `json:"error"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type factorsResponse struct {
	Source   string        `json:"source"`
	Fallback bool          `json:"fallback"`
	Warning  string        `json:"warning,omitempty"`
	Factors  factors.Table `json:"factors"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Version: version.GetVersion()})
}

func (s *Server) getCatalog(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, report.NewCatalogView(s.catalog))
}

func (s *Server) getFactors(w http.ResponseWriter, _ *http.Request) {
	resp := factorsResponse{
		Source:   s.factors.Source,
		Fallback: s.factors.FellBack,
		Factors:  s.factors.Table,
	}
	if s.factors.Warning != nil {
		resp.Warning = s.factors.Warning.Error()
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) postTrip(w http.ResponseWriter, r *http.Request) {
	logger := logging.FromContext(r.Context()).With().Str("operation", "trip").Logger()

	// Fields absent from the body keep the configured traveler defaults.
	req := s.defaults
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.writeBodyError(w, err, "invalid trip request")
		return
	}

	summary, err := travel.Plan(s.catalog, req)
	if err != nil {
		logger.Debug().Err(err).Msg("trip rejected")
		writeError(w, tripErrorStatus(err), err.Error())
		return
	}

	format := requestedFormat(r, report.FormatJSON)
	switch format {
	case report.FormatJSON:
		writeJSON(w, http.StatusOK, summary)
	case report.FormatPDF, report.FormatTable:
		s.writeRendered(w, format, func(buf *bytes.Buffer) error {
			return report.RenderTravel(buf, summary, report.Options{Format: format})
		})
	default:
		writeError(w, http.StatusNotAcceptable, "unsupported format for trip: "+string(format))
	}
}

func (s *Server) postLedger(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.FromContext(ctx).With().Str("operation", "ledger").Logger()

	l, err := ledger.Read(r.Body)
	if err != nil {
		s.writeBodyError(w, err, "invalid ledger")
		return
	}

	rep, err := engine.BuildReport(ctx, l.Rows, s.factors, engine.Options{Concurrency: s.concurrency})
	if err != nil {
		logger.Error().Err(err).Msg("ledger evaluation failed")
		writeError(w, http.StatusInternalServerError, "ledger evaluation failed")
		return
	}
	s.metrics.RowsEvaluated.Add(float64(rep.Summary.Count))
	s.metrics.UnmatchedRows.Add(float64(rep.Summary.UnmatchedCount))
	logger.Debug().
		Int("rows", rep.Summary.Count).
		Int("unmatched", rep.Summary.UnmatchedCount).
		Msg("ledger evaluated")

	format := requestedFormat(r, report.FormatJSON)
	switch format {
	case report.FormatJSON:
		writeJSON(w, http.StatusOK, rep)
	case report.FormatCSV, report.FormatPDF, report.FormatNDJSON, report.FormatTable:
		s.writeRendered(w, format, func(buf *bytes.Buffer) error {
			return report.RenderLedger(buf, l, rep, report.LedgerOptions{Options: report.Options{Format: format}})
		})
	default:
		writeError(w, http.StatusNotAcceptable, "unsupported format for ledger: "+string(format))
	}
}

// writeRendered renders into a buffer first so a rendering error still
// produces a clean 500.
func (s *Server) writeRendered(w http.ResponseWriter, format report.Format, render func(*bytes.Buffer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		s.logger.Error().Err(err).Str("format", string(format)).Msg("rendering failed")
		writeError(w, http.StatusInternalServerError, "rendering failed")
		return
	}
	w.Header().Set("Content-Type", format.ContentType())
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) writeBodyError(w http.ResponseWriter, err error, msg string) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
	default:
		writeError(w, http.StatusBadRequest, msg+": "+err.Error())
	}
}

func tripErrorStatus(err error) int {
	switch {
	case errors.Is(err, catalog.ErrUnknownCountry),
		errors.Is(err, catalog.ErrUnknownIsland),
		errors.Is(err, catalog.ErrUnknownAircraft),
		errors.Is(err, catalog.ErrUnknownHelicopter),
		errors.Is(err, catalog.ErrUnknownVehicle),
		errors.Is(err, travel.ErrInvalidMode),
		errors.Is(err, travel.ErrInvalidDays),
		errors.Is(err, travel.ErrNegativeDistance),
		errors.Is(err, travel.ErrNegativeFactor),
		errors.Is(err, geo.ErrInvalidLatitude),
		errors.Is(err, geo.ErrInvalidLongitude):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// requestedFormat reads ?format= first, then the Accept header.
func requestedFormat(r *http.Request, fallback report.Format) report.Format {
	if q := r.URL.Query().Get("format"); q != "" {
		f, err := report.ParseFormat(q)
		if err != nil {
			return report.Format(strings.ToLower(q))
		}
		return f
	}
	for _, part := range strings.Split(r.Header.Get("Accept"), ",") {
		mediaType, _, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		switch mediaType {
		case "text/csv":
			return report.FormatCSV
		case "application/pdf":
			return report.FormatPDF
		case "application/x-ndjson":
			return report.FormatNDJSON
		case "application/json":
			return report.FormatJSON
		}
	}
	return fallback
}
