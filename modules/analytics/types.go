package analytics

import "context"

// EvaluateStatusRequest is the request for classifying one task's status.
type EvaluateStatusRequest struct {
	TaskID int `json:"task_id"`
}

// PredictDelayRiskRequest is the request for scoring one task's delay risk.
type PredictDelayRiskRequest struct {
	TaskID int `json:"task_id"`
}

// UserSummaryRequest is the request for one user's workload summary.
type UserSummaryRequest struct {
	UserID int `json:"user_id"`
}

// TeamPerformanceRequest is the request for the whole-team rating.
type TeamPerformanceRequest struct{}

// ClassificationResponse carries a single classification string.
type ClassificationResponse struct {
	Result string `json:"result"`
}

// UserSummaryResponse carries the per-status counts for one user.
type UserSummaryResponse struct {
	Summary map[string]int `json:"summary"`
}

// AnalyticsPort defines the interface for analytics operations.
type AnalyticsPort interface {
	EvaluateStatus(ctx context.Context, taskID int) (string, error)
	PredictDelayRisk(ctx context.Context, taskID int) (string, error)
	UserSummary(ctx context.Context, userID int) (map[string]int, error)
	TeamPerformance(ctx context.Context) (string, error)
}
