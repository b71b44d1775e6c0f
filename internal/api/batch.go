package api

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/montanaflynn/stats"
	"golang.org/x/sync/semaphore"
)

func (s *Server) handleBatch(c *gin.Context) {
	var req BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if len(req.Tests) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "batch contains no tests"})
		return
	}
	if len(req.Tests) > s.batch.MaxTests {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("batch exceeds %d tests", s.batch.MaxTests),
		})
		return
	}

	results := s.evaluateBatch(c, req.Tests)

	c.JSON(http.StatusOK, BatchResponse{
		ID:      uuid.NewString(),
		Results: results,
		Summary: summarize(results),
	})
}

// evaluateBatch runs the tests concurrently under a weighted semaphore cap.
// Each evaluation is pure, so results land in their submission slot with no
// further coordination.
func (s *Server) evaluateBatch(c *gin.Context, tests []TestRequest) []BatchResult {
	sem := semaphore.NewWeighted(s.batch.MaxConcurrent)
	results := make([]BatchResult, len(tests))

	var wg sync.WaitGroup
	for i, req := range tests {
		if err := sem.Acquire(c.Request.Context(), 1); err != nil {
			results[i] = BatchResult{Index: i, Error: "canceled"}
			continue
		}

		wg.Add(1)
		go func(i int, req TestRequest) {
			defer wg.Done()
			defer sem.Release(1)

			resp, err := s.evaluate(req)
			if err != nil {
				results[i] = BatchResult{Index: i, Error: err.Error()}
				return
			}
			p := resp.PValue
			results[i] = BatchResult{Index: i, PValue: &p}
		}(i, req)
	}
	wg.Wait()

	return results
}

func summarize(results []BatchResult) BatchSummary {
	pValues := make([]float64, 0, len(results))
	invalid := 0
	for _, r := range results {
		if r.PValue == nil {
			invalid++
			continue
		}
		pValues = append(pValues, *r.PValue)
	}

	summary := BatchSummary{Count: len(results), Invalid: invalid}
	if len(pValues) == 0 {
		return summary
	}

	summary.MinP, _ = stats.Min(pValues)
	summary.MaxP, _ = stats.Max(pValues)
	summary.MeanP, _ = stats.Mean(pValues)
	summary.MedianP, _ = stats.Median(pValues)
	return summary
}
