package sequences

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	trackerdomain "github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/domain"
	matchingactivities "github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/platform/temporal/activities/matching"
)

// RunMatchingSequence executes the matching activity with its retry policy.
func RunMatchingSequence(ctx workflow.Context) (*trackerdomain.MatchResult, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("matching sequence started")
	options := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    10 * time.Second,
			MaximumAttempts:    3,
		},
	}

	var result trackerdomain.MatchResult
	err := workflow.ExecuteActivity(workflow.WithActivityOptions(ctx, options), matchingactivities.RunMatchingPassActivityName).Get(ctx, &result)
	if err != nil {
		logger.Error("matching sequence failed", "error", err)
		return nil, err
	}
	logger.Info("matching sequence finished", "events", len(result.Events))
	return &result, nil
}
