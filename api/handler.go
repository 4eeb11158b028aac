// SPDX-License-Identifier: MIT

package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/linsys/chart"
	"github.com/katalvlaran/linsys/iterative"
	"github.com/katalvlaran/linsys/rational"
	"github.com/katalvlaran/linsys/solver"
)

const (
	// MaxBodyBytes caps request bodies.
	MaxBodyBytes = 1 << 20

	// RequestIDHeader carries the request ID in both directions. A missing
	// incoming ID is replaced by a fresh UUID.
	RequestIDHeader = "X-Request-ID"

	tracerName = "github.com/katalvlaran/linsys/api"
)

type requestIDKey struct{}

// RequestID returns the ID assigned to the request carried by ctx, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)

	return id
}

// Handler serves the solver over HTTP.
type Handler struct {
	logger   *logrus.Logger
	defaults Defaults
	chart    []chart.Option
	mux      *http.ServeMux
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithChartOptions sets the options used to render /api/chart.
func WithChartOptions(opts ...chart.Option) HandlerOption {
	return func(h *Handler) { h.chart = opts }
}

// NewHandler wires the routes. A nil logger discards log output.
func NewHandler(logger *logrus.Logger, d Defaults, opts ...HandlerOption) *Handler {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}
	h := &Handler{logger: logger, defaults: d, mux: http.NewServeMux()}
	for _, set := range opts {
		set(h)
	}
	h.mux.HandleFunc("POST /api/solve", h.solve)
	h.mux.HandleFunc("POST /api/chart", h.renderChart)
	h.mux.HandleFunc("GET /healthz", h.healthz)

	return h
}

// ServeHTTP adds permissive CORS headers, answers preflight requests and
// tags every other request with an ID.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+RequestIDHeader)
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	id := r.Header.Get(RequestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	w.Header().Set(RequestIDHeader, id)
	h.mux.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
}

// startSpan opens the span covering one endpoint call.
func startSpan(r *http.Request, name string) trace.Span {
	_, span := otel.Tracer(tracerName).Start(r.Context(), name,
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(attribute.String("request_id", RequestID(r.Context()))),
	)

	return span
}

func (h *Handler) solve(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	span := startSpan(r, "api.solve")
	defer span.End()

	req, err := readRequest(w, r)
	if err != nil {
		h.fail(w, r, span, req, err, start)
		return
	}
	span.SetAttributes(attribute.String("method", req.Method), attribute.Int("n", len(req.A)))
	resp, err := Solve(req, h.defaults)
	if err != nil {
		h.fail(w, r, span, req, err, start)
		return
	}
	span.SetAttributes(attribute.Int("steps", len(resp.Steps)), attribute.Int("warnings", len(resp.Warnings)))
	if err = writeJSON(w, http.StatusOK, resp); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		h.entry(r, req, http.StatusInternalServerError, start).WithError(err).Error("response not encodable")
		return
	}
	h.entry(r, req, http.StatusOK, start).WithField("warnings", len(resp.Warnings)).Info("solved")
}

func (h *Handler) renderChart(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	span := startSpan(r, "api.chart")
	defer span.End()

	req, err := readRequest(w, r)
	if err != nil {
		h.fail(w, r, span, req, err, start)
		return
	}
	span.SetAttributes(attribute.String("method", req.Method), attribute.Int("n", len(req.A)))
	res, err := SolveIterative(req, h.defaults)
	if err != nil {
		h.fail(w, r, span, req, err, start)
		return
	}
	span.SetAttributes(attribute.Int("iterations", res.Iterations), attribute.Bool("converged", res.Converged))

	if r.URL.Query().Get("format") == "html" {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err = chart.WriteHTML(w, res, h.chart...); err != nil {
			span.RecordError(err)
			h.logger.WithError(err).Error("chart write failed")
			return
		}
		h.entry(r, req, http.StatusOK, start).WithField("iterations", res.Iterations).Info("chart page rendered")
		return
	}

	var c *chart.Chart
	if r.URL.Query().Get("kind") == "errors" {
		c, err = chart.MaxError(res, h.chart...)
	} else {
		c, err = chart.Values(res, h.chart...)
	}
	if err != nil {
		h.fail(w, r, span, req, err, start)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	if err = c.WritePNG(w); err != nil {
		span.RecordError(err)
		h.logger.WithError(err).Error("chart write failed")
		return
	}
	h.entry(r, req, http.StatusOK, start).WithField("iterations", res.Iterations).Info("chart rendered")
}

func (h *Handler) healthz(w http.ResponseWriter, _ *http.Request) {
	_ = writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, span trace.Span, req Request, err error, start time.Time) {
	status := StatusFor(err)
	span.RecordError(err)
	span.SetStatus(codes.Error, http.StatusText(status))
	span.SetAttributes(attribute.Int("status", status))

	e := h.entry(r, req, status, start).WithError(err)
	if status >= http.StatusInternalServerError {
		e.Error("solve failed")
	} else {
		e.Warn("request rejected")
	}
	_ = writeJSON(w, status, ErrorBody{Error: err.Error()})
}

func (h *Handler) entry(r *http.Request, req Request, status int, start time.Time) *logrus.Entry {
	return h.logger.WithFields(logrus.Fields{
		"request_id": RequestID(r.Context()),
		"method":     req.Method,
		"n":          len(req.A),
		"status":     status,
		"duration":   time.Since(start),
	})
}

func readRequest(w http.ResponseWriter, r *http.Request) (Request, error) {
	var req Request
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return req, fmt.Errorf("%w: body exceeds %d bytes", ErrBadRequest, tooLarge.Limit)
		}

		return req, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}

	return req, nil
}

// writeJSON encodes v before the header goes out, so an unencodable value
// turns into a 500 ErrorBody instead of a 200 with an empty body. The
// encoding error is returned for logging.
func writeJSON(w http.ResponseWriter, status int, v interface{}) error {
	body, err := json.Marshal(v)
	if err != nil {
		err = fmt.Errorf("encode response: %w", err)
		status = http.StatusInternalServerError
		body, _ = json.Marshal(ErrorBody{Error: err.Error()})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))

	return err
}

// StatusFor maps an error to its HTTP status: 400 for input errors, 500
// otherwise.
func StatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrBadRequest),
		solver.IsInputError(err),
		errors.Is(err, iterative.ErrZeroDiagonal),
		errors.Is(err, rational.ErrSyntax),
		errors.Is(err, rational.ErrNotFinite),
		errors.Is(err, rational.ErrDivisionByZero):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
