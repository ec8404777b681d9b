package ports

import (
	"context"

	"github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/domain"
)

// MatchOrchestrator runs a matching pass, either inline or through a durable workflow.
type MatchOrchestrator interface {
	RunMatching(ctx context.Context) (*domain.MatchResult, error)
}
