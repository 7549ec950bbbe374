// Package server exposes the dispatch engine over HTTP.
//
// Endpoints:
//
//	POST /v1/solve    – dispatch a set of variable assignments
//	POST /v1/explain  – per-solver filter verdicts for an input
//	GET  /v1/solvers  – registered solver metadata
//	GET  /healthz     – liveness probe
//
// A NoMatch or Failed outcome is a 422 with a labeled status, so API
// clients can distinguish "nothing matched" from "a match broke".
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/san-kum/physica/internal/dispatch"
	"github.com/san-kum/physica/internal/logger"
	"github.com/san-kum/physica/internal/solver"
	"github.com/san-kum/physica/internal/storage"
	"github.com/san-kum/physica/internal/vars"
)

// Server bundles the HTTP handlers.
type Server struct {
	disp  *dispatch.Dispatcher
	store *storage.Store
	log   zerolog.Logger
}

// New creates a server over the given dispatcher. store may be nil to
// disable solve-history archiving.
func New(disp *dispatch.Dispatcher, store *storage.Store) *Server {
	return &Server{
		disp:  disp,
		store: store,
		log:   logger.Logger().With().Str("component", "server").Logger(),
	}
}

// Router builds the gin engine with all routes mounted.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/v1")
	v1.POST("/solve", s.handleSolve)
	v1.POST("/explain", s.handleExplain)
	v1.GET("/solvers", s.handleSolvers)
	return r
}

// Run serves until the listener fails.
func (s *Server) Run(addr string) error {
	s.log.Info().Str("addr", addr).Msg("serving HTTP API")
	return s.Router().Run(addr)
}

// SolveRequest is the body for POST /v1/solve and /v1/explain.
type SolveRequest struct {
	Variables map[string]float64 `json:"variables" binding:"required"`
}

// SolveResponse is the response for POST /v1/solve.
type SolveResponse struct {
	Status    string             `json:"status"`
	Solver    string             `json:"solver,omitempty"`
	Domain    string             `json:"domain,omitempty"`
	Regime    string             `json:"regime"`
	Substance string             `json:"substance"`
	Values    map[string]float64 `json:"values,omitempty"`
	Reason    string             `json:"reason,omitempty"`
}

func (s *Server) handleSolve(c *gin.Context) {
	var req SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	store, err := vars.FromMap(req.Variables)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out := s.disp.Dispatch(store)
	if s.store != nil {
		if _, err := s.store.Save(req.Variables, out); err != nil {
			s.log.Warn().Err(err).Msg("archiving solve record failed")
		}
	}

	resp := SolveResponse{
		Status:    out.Status.String(),
		Solver:    out.Solver,
		Domain:    out.Domain,
		Regime:    out.Context.Regime.String(),
		Substance: out.Context.Substance.String(),
		Reason:    out.Reason,
	}
	if out.Status == dispatch.Solved {
		resp.Values = out.Values.Map()
		c.JSON(http.StatusOK, resp)
		return
	}
	c.JSON(http.StatusUnprocessableEntity, resp)
}

// VerdictResponse is one row of the POST /v1/explain response.
type VerdictResponse struct {
	Name        string `json:"name"`
	Domain      string `json:"domain"`
	Description string `json:"description,omitempty"`
	Equation    string `json:"equation,omitempty"`
	Priority    int    `json:"priority"`
	ContextOK   bool   `json:"context_ok"`
	Structural  bool   `json:"structural_match"`
	Validated   bool   `json:"validated"`
	Eligible    bool   `json:"eligible"`
}

// ExplainResponse is the response for POST /v1/explain.
type ExplainResponse struct {
	Regime    string            `json:"regime"`
	Substance string            `json:"substance"`
	Solvers   []VerdictResponse `json:"solvers"`
}

func (s *Server) handleExplain(c *gin.Context) {
	var req SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	store, err := vars.FromMap(req.Variables)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, verdicts := s.disp.Explain(store)
	resp := ExplainResponse{
		Regime:    ctx.Regime.String(),
		Substance: ctx.Substance.String(),
		Solvers:   make([]VerdictResponse, 0, len(verdicts)),
	}
	for _, v := range verdicts {
		resp.Solvers = append(resp.Solvers, VerdictResponse{
			Name:        v.Name,
			Domain:      v.Domain,
			Description: v.Description,
			Equation:    v.Equation,
			Priority:    v.Priority,
			ContextOK:   v.ContextOK,
			Structural:  v.Structural,
			Validated:   v.Validated,
			Eligible:    v.Eligible(),
		})
	}
	c.JSON(http.StatusOK, resp)
}

// SolverInfo is one row of the GET /v1/solvers response.
type SolverInfo struct {
	Name        string            `json:"name"`
	Domain      string            `json:"domain"`
	Description string            `json:"description,omitempty"`
	Equation    string            `json:"equation,omitempty"`
	Priority    int               `json:"priority"`
	Units       map[string]string `json:"units,omitempty"`
}

func (s *Server) handleSolvers(c *gin.Context) {
	solvers := s.disp.Solvers()
	infos := make([]SolverInfo, 0, len(solvers))
	for _, sv := range solvers {
		info := SolverInfo{
			Name:        sv.Name(),
			Domain:      sv.Domain(),
			Description: solver.DescriptionOf(sv),
			Equation:    solver.EquationOf(sv),
			Priority:    sv.Priority(),
		}
		if um, ok := sv.(solver.UnitMapper); ok {
			info.Units = um.OutputUnits()
		}
		infos = append(infos, info)
	}
	c.JSON(http.StatusOK, gin.H{"solvers": infos})
}
