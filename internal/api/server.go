// Package api exposes the binomial test evaluator over HTTP.
package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"binomtest/domain/core"
	"binomtest/domain/stats"
	"binomtest/internal"
	"binomtest/internal/config"
)

// Server wires the evaluator, the evaluation history, and the router.
type Server struct {
	router  *gin.Engine
	history HistoryStore
	logger  *internal.Logger
	batch   config.BatchConfig
}

// NewServer creates a server around the given history store.
func NewServer(history HistoryStore, logger *internal.Logger, cfg *config.Config) *Server {
	gin.SetMode(cfg.Server.GinMode)

	s := &Server{
		router:  gin.Default(),
		history: history,
		logger:  logger,
		batch:   cfg.Batch,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.router.GET("/healthz", s.handleHealth)

	v1 := s.router.Group("/api/v1")
	v1.POST("/test", s.handleTest)
	v1.POST("/test/batch", s.handleBatch)
	v1.GET("/history", s.handleHistory)
}

// Run starts the server on the given port, blocking until it stops.
func (s *Server) Run(port string) error {
	s.logger.Info("listening on :%s", port)
	return s.router.Run(":" + port)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleTest(c *gin.Context) {
	var req TestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	resp, err := s.evaluate(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.history.Record(c.Request.Context(), evaluationFromResponse(resp)); err != nil {
		// History is best-effort; the p-value is still correct.
		s.logger.Warn("failed to record evaluation %s: %v", resp.ID, err)
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleHistory(c *gin.Context) {
	recent, err := s.history.Recent(c.Request.Context(), 50)
	if err != nil {
		s.logger.Error("history lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "history unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"evaluations": recent})
}

// evaluate runs one request through the evaluator. All failures here are
// caller errors: either an unknown alternative or a validation sentinel
// from the domain layer.
func (s *Server) evaluate(req TestRequest) (TestResponse, error) {
	if req.Alternative == "" {
		req.Alternative = "two-sided"
	}
	alt, err := stats.ParseAlternative(req.Alternative)
	if err != nil {
		return TestResponse{}, err
	}

	pValue, err := stats.BinomialTest(req.K, req.N, req.P, alt)
	if err != nil {
		if !core.IsValidationError(err) {
			s.logger.Error("unexpected evaluator failure: %v", err)
		}
		return TestResponse{}, err
	}

	return TestResponse{
		ID:          uuid.NewString(),
		K:           req.K,
		N:           req.N,
		P:           req.P,
		Alternative: alt.String(),
		PValue:      pValue,
	}, nil
}

func evaluationFromResponse(r TestResponse) Evaluation {
	return Evaluation{
		ID:          r.ID,
		K:           r.K,
		N:           r.N,
		P:           r.P,
		Alternative: r.Alternative,
		PValue:      r.PValue,
		CreatedAt:   time.Now().UTC(),
	}
}
