package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	nethttp "net/http"
	"strings"
	"time"

	"github.com/deanlue0801/alliance-war-planner/internal/domain"
	"github.com/deanlue0801/alliance-war-planner/internal/logging"
	"github.com/deanlue0801/alliance-war-planner/internal/metrics"
	"github.com/deanlue0801/alliance-war-planner/internal/parse"
	"github.com/deanlue0801/alliance-war-planner/internal/planner"
	"github.com/deanlue0801/alliance-war-planner/internal/tabular"
)

// Uploads beyond this size are rejected before parsing.
const maxConvertBytes = 4 << 20

// Handler wires HTTP routes to the planning core.
type Handler struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// NewHandler constructs a Handler.
func NewHandler(logger *slog.Logger, recorder *metrics.Recorder) *Handler {
	return &Handler{
		logger:  logger,
		metrics: recorder,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic. The service is stateless, so it is
// ready as soon as it serves requests.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

// Plan parses the request rosters, runs the planning core and returns the
// report. Semantic infeasibility is a 200 with the outcome in the body;
// only malformed input is an error status.
func (h *Handler) Plan(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodPost {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req domain.PlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid request body: "+err.Error(), h.logger)
		return
	}

	roster := parse.Teams(req.OurPower)
	parse.SortByPowerDesc(roster)
	enemy := map[domain.LaneName][]domain.Team{
		domain.LaneLeft:   parse.Teams(req.EnemyLeft),
		domain.LaneCenter: parse.Teams(req.EnemyCenter),
		domain.LaneRight:  parse.Teams(req.EnemyRight),
	}

	start := time.Now()
	report := planner.Plan(roster, enemy, req.Advantages())
	duration := time.Since(start)

	if h.metrics != nil {
		h.metrics.RecordPlan(string(report.Outcome), duration)
	}
	logging.Info(loggerFromContext(r, h.logger), "plan computed",
		slog.String(logging.FieldOutcome, string(report.Outcome)),
		slog.Int(logging.FieldCount, report.RosterCount),
		slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
	)

	writeJSON(w, nethttp.StatusOK, report, h.logger)
}

// Convert turns a two-column tabular upload into the roster token text
// consumed by Plan. It accepts a multipart "file" part or a raw body.
func (h *Handler) Convert(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodPost {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	src, err := convertSource(r)
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		return
	}
	defer src.Close()

	text, err := tabular.Convert(io.LimitReader(src, maxConvertBytes))
	rows := len(strings.Fields(text)) / 2
	if h.metrics != nil {
		h.metrics.RecordConversion(rows, err)
	}
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "malformed tabular input: "+err.Error(), h.logger)
		return
	}

	logging.Info(loggerFromContext(r, h.logger), "tabular input converted",
		slog.Int(logging.FieldCount, rows),
	)
	writeJSON(w, nethttp.StatusOK, domain.ConvertResponse{PowerText: text}, h.logger)
}

// convertSource picks the multipart "file" part when present, otherwise
// the raw request body.
func convertSource(r *nethttp.Request) (io.ReadCloser, error) {
	contentType := r.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "multipart/form-data") {
		return r.Body, nil
	}

	if err := r.ParseMultipartForm(maxConvertBytes); err != nil {
		return nil, errors.New("invalid multipart form")
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		if errors.Is(err, nethttp.ErrMissingFile) {
			return nil, errors.New(`multipart form is missing the "file" part`)
		}
		return nil, errors.New("invalid multipart form")
	}
	return file, nil
}
