package server

import (
	"errors"
	"fmt"
	"net/http"
	"unicode/utf8"

	"github.com/katalvlaran/lvpal/benchmark"
	"github.com/katalvlaran/lvpal/lps"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ErrPolicyRejected indicates an input longer than the algorithm's ceiling.
var ErrPolicyRejected = errors.New("server: input rejected by size policy")

// SolveRequest is the request body for POST /visualize and POST /solve.
type SolveRequest struct {
	Text      string `json:"text"`
	Algorithm string `json:"algorithm"`
}

// BenchmarkRequest is the request body for POST /benchmark.
type BenchmarkRequest struct {
	Text string `json:"text"`
}

// BenchmarkResponse maps each algorithm to its time in milliseconds, or
// null when the size policy skipped it.
type BenchmarkResponse map[lps.ID]*float64

// RootResponse is the response body for GET /.
type RootResponse struct {
	Message string `json:"message"`
}

// HealthResponse is the response body for GET /health.
type HealthResponse struct {
	Status     string   `json:"status"`
	Algorithms []lps.ID `json:"algorithms"`
}

func (s *Server) handleRoot(c echo.Context) error {
	return c.JSON(http.StatusOK, RootResponse{Message: "Palindrome Visualizer API is running"})
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok", Algorithms: s.registry.IDs()})
}

// handleVisualize returns the event sequence of one traced run.
func (s *Server) handleVisualize(c echo.Context) error {
	solver, req, err := s.admit(c)
	if err != nil {
		return err
	}

	opt := lps.WithTrace()
	if s.config.TraceEvents > 0 {
		opt = lps.WithTraceLimit(s.config.TraceEvents)
	}
	res, trace, err := solver.Solve(req.Text, opt)
	if err != nil {
		return s.solveError(solver.ID(), err)
	}
	s.metrics.ObserveSolve(solver.ID(), OutcomeOK, res.Elapsed)

	if !trace.Available() {
		s.logger.Error("trace unavailable",
			zap.String("algorithm", string(solver.ID())),
			zap.Error(trace.Err()),
		)

		return echo.NewHTTPError(http.StatusInternalServerError, "trace unavailable")
	}
	s.metrics.ObserveTrace(solver.ID(), trace.Len())

	return c.JSON(http.StatusOK, trace)
}

// handleSolve returns the result of one silent run.
func (s *Server) handleSolve(c echo.Context) error {
	solver, req, err := s.admit(c)
	if err != nil {
		return err
	}

	res, _, err := solver.Solve(req.Text)
	if err != nil {
		return s.solveError(solver.ID(), err)
	}
	s.metrics.ObserveSolve(solver.ID(), OutcomeOK, res.Elapsed)

	return c.JSON(http.StatusOK, res)
}

// handleBenchmark times every algorithm once on the given text.
func (s *Server) handleBenchmark(c echo.Context) error {
	var req BenchmarkRequest
	if err := c.Bind(&req); err != nil {
		s.logger.Warn("invalid benchmark request", zap.Error(err))

		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	cells, err := benchmark.Compare(c.Request().Context(), s.registry, req.Text, s.config.Limits,
		benchmark.WithLogger(s.logger))
	if err != nil {
		if errors.Is(err, lps.ErrInvalidInput) {
			return echo.NewHTTPError(http.StatusBadRequest, "text is not valid UTF-8")
		}

		return fmt.Errorf("benchmark: %w", err)
	}

	resp := make(BenchmarkResponse, len(cells))
	for id, cell := range cells {
		switch cell.Status {
		case benchmark.StatusOK:
			ms := cell.ElapsedMS
			resp[id] = &ms
			s.metrics.ObserveSolve(id, OutcomeOK, cell.Elapsed)
		case benchmark.StatusSkipped:
			resp[id] = nil
			s.metrics.ObserveSolve(id, OutcomeRejected, 0)
		default:
			s.metrics.ObserveSolve(id, OutcomeFailed, 0)

			return echo.NewHTTPError(http.StatusInternalServerError, fmt.Sprintf("%s failed", id))
		}
	}

	return c.JSON(http.StatusOK, resp)
}

// admit binds the request, resolves the algorithm and applies the size policy.
func (s *Server) admit(c echo.Context) (lps.Solver, SolveRequest, error) {
	var req SolveRequest
	if err := c.Bind(&req); err != nil {
		s.logger.Warn("invalid solve request", zap.Error(err))

		return nil, req, echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	solver, err := s.registry.Lookup(lps.ID(req.Algorithm))
	if err != nil {
		return nil, req, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("unknown algorithm %q", req.Algorithm))
	}
	if !utf8.ValidString(req.Text) {
		return nil, req, echo.NewHTTPError(http.StatusBadRequest, "text is not valid UTF-8")
	}
	if err := s.checkLimit(solver.ID(), req.Text); err != nil {
		s.metrics.ObserveSolve(solver.ID(), OutcomeRejected, 0)

		return nil, req, echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
	}

	return solver, req, nil
}

// checkLimit returns ErrPolicyRejected when text is too long for id.
func (s *Server) checkLimit(id lps.ID, text string) error {
	n := utf8.RuneCountInString(text)
	if s.config.Limits.Allows(id, n) {
		return nil
	}
	limit, _ := s.config.Limits.Limit(id)

	return fmt.Errorf("%w: text too long for %s (%d characters, max %d)", ErrPolicyRejected, id, n, limit)
}

// solveError maps a solver error to an HTTP error.
func (s *Server) solveError(id lps.ID, err error) error {
	if errors.Is(err, lps.ErrInvalidInput) {
		s.metrics.ObserveSolve(id, OutcomeRejected, 0)

		return echo.NewHTTPError(http.StatusBadRequest, "text is not valid UTF-8")
	}

	s.metrics.ObserveSolve(id, OutcomeFailed, 0)
	s.logger.Error("solver failed", zap.String("algorithm", string(id)), zap.Error(err))

	return echo.NewHTTPError(http.StatusInternalServerError, "algorithm failure").SetInternal(err)
}
