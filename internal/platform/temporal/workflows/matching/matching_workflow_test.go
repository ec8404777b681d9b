package matching

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/testsuite"

	trackerdomain "github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/domain"
	matchingactivities "github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/platform/temporal/activities/matching"
)

func newEnv(t *testing.T) *testsuite.TestWorkflowEnvironment {
	t.Helper()
	var suite testsuite.WorkflowTestSuite
	env := suite.NewTestWorkflowEnvironment()
	env.RegisterActivityWithOptions(
		func(context.Context) (*trackerdomain.MatchResult, error) { return nil, nil },
		activity.RegisterOptions{Name: matchingactivities.RunMatchingPassActivityName},
	)
	return env
}

func TestMatchingWorkflow_ReturnsActivityResult(t *testing.T) {
	env := newEnv(t)
	want := &trackerdomain.MatchResult{Events: []trackerdomain.MatchEvent{
		{DonationDonor: "A", DonationItem: "Kite", Quantity: 1, Recipient: "B"},
	}}
	env.OnActivity(matchingactivities.RunMatchingPassActivityName, mock.Anything).Return(want, nil)

	env.ExecuteWorkflow(MatchingWorkflow, MatchingWorkflowInput{TraceID: "abc"})
	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())

	var got trackerdomain.MatchResult
	require.NoError(t, env.GetWorkflowResult(&got))
	require.Equal(t, want.Events, got.Events)
}

func TestMatchingWorkflow_PropagatesFailure(t *testing.T) {
	env := newEnv(t)
	env.OnActivity(matchingactivities.RunMatchingPassActivityName, mock.Anything).Return(nil, errors.New("store offline"))

	env.ExecuteWorkflow(MatchingWorkflow, MatchingWorkflowInput{})
	require.True(t, env.IsWorkflowCompleted())
	require.Error(t, env.GetWorkflowError())
}
