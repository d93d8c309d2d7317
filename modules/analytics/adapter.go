package analytics

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// analyticsAdapter wraps ServiceContainer for type-safe cross-module
// communication with the analytics module.
type analyticsAdapter struct {
	container mono.ServiceContainer
}

// NewAnalyticsAdapter creates a new adapter for analytics services.
func NewAnalyticsAdapter(container mono.ServiceContainer) AnalyticsPort {
	if container == nil {
		panic("analytics adapter requires non-nil ServiceContainer")
	}
	return &analyticsAdapter{container: container}
}

func (a *analyticsAdapter) call(ctx context.Context, service string, req, resp any) error {
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		service,
		json.Marshal,
		json.Unmarshal,
		req,
		&resp,
	); err != nil {
		return fmt.Errorf("%s service call failed: %w", service, err)
	}
	return nil
}

// EvaluateStatus classifies one task via the evaluate-status service.
func (a *analyticsAdapter) EvaluateStatus(ctx context.Context, taskID int) (string, error) {
	var resp ClassificationResponse
	if err := a.call(ctx, "evaluate-status", &EvaluateStatusRequest{TaskID: taskID}, &resp); err != nil {
		return "", err
	}
	return resp.Result, nil
}

// PredictDelayRisk scores one task via the predict-delay-risk service.
func (a *analyticsAdapter) PredictDelayRisk(ctx context.Context, taskID int) (string, error) {
	var resp ClassificationResponse
	if err := a.call(ctx, "predict-delay-risk", &PredictDelayRiskRequest{TaskID: taskID}, &resp); err != nil {
		return "", err
	}
	return resp.Result, nil
}

// UserSummary fetches one user's workload summary via the user-summary
// service.
func (a *analyticsAdapter) UserSummary(ctx context.Context, userID int) (map[string]int, error) {
	var resp UserSummaryResponse
	if err := a.call(ctx, "user-summary", &UserSummaryRequest{UserID: userID}, &resp); err != nil {
		return nil, err
	}
	return resp.Summary, nil
}

// TeamPerformance fetches the whole-team rating via the team-performance
// service.
func (a *analyticsAdapter) TeamPerformance(ctx context.Context) (string, error) {
	var resp ClassificationResponse
	if err := a.call(ctx, "team-performance", &TeamPerformanceRequest{}, &resp); err != nil {
		return "", err
	}
	return resp.Result, nil
}
