package merrymatchserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	trackermapper "github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/adapters/http/mapper"
	trackerports "github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/ports"
)

// MatchingAPI serves matching runs and registry-wide operations.
type MatchingAPI struct {
	service      trackerports.Service
	orchestrator trackerports.MatchOrchestrator
}

// NewMatchingAPI creates a MatchingAPI. A nil orchestrator runs passes on the service directly.
func NewMatchingAPI(service trackerports.Service, orchestrator trackerports.MatchOrchestrator) MatchingAPI {
	return MatchingAPI{service: service, orchestrator: orchestrator}
}

// Post /v1/matching/runs
// Runs one greedy matching pass and reports the allocations
func (api *MatchingAPI) RunMatching(c *gin.Context) {
	var runner trackerports.MatchOrchestrator = api.service
	if api.orchestrator != nil {
		runner = api.orchestrator
	}
	result, err := runner.RunMatching(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, trackermapper.FromMatchResult(result))
}

// Get /v1/stats
func (api *MatchingAPI) Stats(c *gin.Context) {
	stats, err := api.service.Stats(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Post /v1/registry/sync
// Writes the whole registry back to the record stores
func (api *MatchingAPI) SyncRegistry(c *gin.Context) {
	if err := api.service.Sync(c.Request.Context()); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
