package matching

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"

	trackerdomain "github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/domain"
	trackerports "github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/ports"
)

// RunMatchingPassActivityName runs one matching pass against the shared store.
const RunMatchingPassActivityName = "tracker.activities.RunMatchingPass"

// Activities groups activities that operate on the tracker bounded context.
type Activities struct {
	service trackerports.Service
}

func NewActivities(service trackerports.Service) *Activities {
	return &Activities{service: service}
}

// RunMatchingPass reloads the worker registry from the store so the pass sees
// writes made by the API process, then runs the pass.
func (a *Activities) RunMatchingPass(ctx context.Context) (*trackerdomain.MatchResult, error) {
	logger := activity.GetLogger(ctx)
	if a == nil || a.service == nil {
		logger.Error("matching activity not initialized")
		return nil, errors.New("matching activity not initialized")
	}
	logger.Info("RunMatchingPass activity started")
	if err := a.service.Reload(ctx); err != nil {
		logger.Error("RunMatchingPass failed to reload registry", "error", err)
		return nil, err
	}
	result, err := a.service.RunMatching(ctx)
	if err != nil {
		logger.Error("RunMatchingPass activity failed", "error", err)
		return nil, err
	}
	logger.Info("RunMatchingPass activity completed", "events", len(result.Events), "failures", len(result.Failures))
	return result, nil
}
