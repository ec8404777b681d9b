package matching

import (
	"go.temporal.io/sdk/workflow"

	trackerdomain "github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/domain"
	"github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/platform/temporal/sequences"
)

const (
	// MatchingWorkflowName is the public identifier for registering the workflow.
	MatchingWorkflowName = "tracker.workflows.Matching"
	// MatchingTaskQueue is the queue consumed by the matching worker.
	MatchingTaskQueue = "MERRYMATCH_MATCHING"
)

// MatchingWorkflowInput carries the caller trace for log correlation.
type MatchingWorkflowInput struct {
	TraceID string
}

// MatchingWorkflow runs a single matching pass as a durable workflow.
func MatchingWorkflow(ctx workflow.Context, input MatchingWorkflowInput) (*trackerdomain.MatchResult, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("MatchingWorkflow started", withTraceID(input.TraceID)...)
	result, err := sequences.RunMatchingSequence(ctx)
	if err != nil {
		logger.Error("MatchingWorkflow failed", withTraceID(input.TraceID, "error", err)...)
		return nil, err
	}
	logger.Info("MatchingWorkflow completed", withTraceID(input.TraceID, "events", len(result.Events))...)
	return result, nil
}

func withTraceID(traceID string, keyvals ...interface{}) []interface{} {
	if traceID == "" {
		return keyvals
	}
	return append(keyvals, "traceId", traceID)
}
