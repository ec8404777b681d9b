package merrymatchserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	trackermapper "github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/adapters/http/mapper"
	trackerapp "github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/application"
	trackerports "github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/ports"
	apierrors "github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/shared/errors"
)

var responder = apierrors.NewResponder("", mapValidationError, mapTrackerError)

func mapValidationError(err error) (apierrors.ProblemDetail, bool) {
	var verr *trackermapper.ValidationError
	if errors.As(err, &verr) {
		return apierrors.NewValidationProblem(verr.Fields).WithDetail(verr.Error()), true
	}
	return apierrors.ProblemDetail{}, false
}

// mapTrackerError checks persistence before not-found: a store that matched no
// rows reports ErrNotFound wrapped in ErrPersistence.
func mapTrackerError(err error) (apierrors.ProblemDetail, bool) {
	switch {
	case errors.Is(err, trackerapp.ErrPersistence):
		return apierrors.ErrPersistence.WithDetail(err.Error()), true
	case errors.Is(err, trackerports.ErrNotFound):
		return apierrors.ErrNotFound.WithDetail(err.Error()), true
	case errors.Is(err, trackerapp.ErrInvalidInput):
		return apierrors.ErrBadRequest.WithDetail(err.Error()), true
	}
	return apierrors.ProblemDetail{}, false
}

func respondServiceError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	responder.RespondError(c, err)
}

func respondBadRequest(c *gin.Context, err error) {
	responder.BadRequest(c, err.Error())
}
