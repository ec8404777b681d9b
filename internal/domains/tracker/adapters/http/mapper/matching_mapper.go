package mapper

import (
	trackerdomain "github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/domain"
)

// MatchRun is the response of a matching pass.
type MatchRun struct {
	Events   []trackerdomain.MatchEvent     `json:"events"`
	Total    int                            `json:"total"`
	Report   []string                       `json:"report"`
	Failures []trackerdomain.PersistFailure `json:"failures,omitempty"`
}

func FromMatchResult(r *trackerdomain.MatchResult) MatchRun {
	if r == nil {
		return MatchRun{Events: []trackerdomain.MatchEvent{}, Report: trackerdomain.MatchResult{}.Report()}
	}
	events := r.Events
	if events == nil {
		events = []trackerdomain.MatchEvent{}
	}
	return MatchRun{
		Events:   events,
		Total:    len(events),
		Report:   r.Report(),
		Failures: r.Failures,
	}
}
