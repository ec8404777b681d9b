package merrymatchserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	trackermapper "github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/adapters/http/mapper"
	trackerports "github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/ports"
)

// DonationAPI serves the donation list.
type DonationAPI struct {
	service trackerports.Service
}

func NewDonationAPI(service trackerports.Service) DonationAPI {
	return DonationAPI{service: service}
}

// Get /v1/donations
// Lists donations in registry order
func (api *DonationAPI) ListDonations(c *gin.Context) {
	donations, err := api.service.ListDonations(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, trackermapper.FromDomainDonations(donations))
}

// Post /v1/donations
// Records a new donation dated today
func (api *DonationAPI) AddDonation(c *gin.Context) {
	var payload trackermapper.DonationBody
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := trackermapper.Validate(payload); err != nil {
		respondServiceError(c, err)
		return
	}
	saved, err := api.service.AddDonation(c.Request.Context(), trackermapper.ToAddDonationInput(payload))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, trackermapper.FromDomainDonation(saved))
}

// Put /v1/donations
// Replaces the fields of the donation stored under the given key
func (api *DonationAPI) EditDonation(c *gin.Context) {
	var payload trackermapper.DonationEdit
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := trackermapper.Validate(payload); err != nil {
		respondServiceError(c, err)
		return
	}
	updated, err := api.service.EditDonation(c.Request.Context(), trackermapper.ToEditDonationInput(payload))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, trackermapper.FromDomainDonation(updated))
}

// Delete /v1/donations?donor=&item=&date=
// Deletes the donation stored under the given key
func (api *DonationAPI) DeleteDonation(c *gin.Context) {
	var key trackermapper.DonationKey
	if err := c.ShouldBindQuery(&key); err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := trackermapper.Validate(key); err != nil {
		respondServiceError(c, err)
		return
	}
	if err := api.service.DeleteDonation(c.Request.Context(), key.ToDomain()); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
