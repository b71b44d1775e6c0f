package api

import (
	"context"
	"time"
)

// TestRequest is a single binomial test submission. An empty alternative
// defaults to two-sided.
type TestRequest struct {
	K           uint64  `json:"k"`
	N           uint64  `json:"n"`
	P           float64 `json:"p"`
	Alternative string  `json:"alternative"`
}

// TestResponse echoes the request parameters with the computed p-value.
type TestResponse struct {
	ID          string  `json:"id"`
	K           uint64  `json:"k"`
	N           uint64  `json:"n"`
	P           float64 `json:"p"`
	Alternative string  `json:"alternative"`
	PValue      float64 `json:"p_value"`
}

// BatchRequest submits several tests for concurrent evaluation.
type BatchRequest struct {
	Tests []TestRequest `json:"tests"`
}

// BatchResult is one entry of a batch response; invalid entries carry an
// error message instead of a p-value.
type BatchResult struct {
	Index  int      `json:"index"`
	PValue *float64 `json:"p_value,omitempty"`
	Error  string   `json:"error,omitempty"`
}

// BatchSummary aggregates the p-values of the valid entries.
type BatchSummary struct {
	Count   int     `json:"count"`
	Invalid int     `json:"invalid"`
	MinP    float64 `json:"min_p"`
	MaxP    float64 `json:"max_p"`
	MeanP   float64 `json:"mean_p"`
	MedianP float64 `json:"median_p"`
}

// BatchResponse carries per-test results in submission order plus the
// aggregate summary.
type BatchResponse struct {
	ID      string        `json:"id"`
	Results []BatchResult `json:"results"`
	Summary BatchSummary  `json:"summary"`
}

// Evaluation is a recorded test evaluation.
type Evaluation struct {
	ID          string    `json:"id"`
	K           uint64    `json:"k"`
	N           uint64    `json:"n"`
	P           float64   `json:"p"`
	Alternative string    `json:"alternative"`
	PValue      float64   `json:"p_value"`
	CreatedAt   time.Time `json:"created_at"`
}

// HistoryStore records evaluations for later retrieval.
type HistoryStore interface {
	Record(ctx context.Context, e Evaluation) error
	Recent(ctx context.Context, limit int) ([]Evaluation, error)
}
