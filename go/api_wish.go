package merrymatchserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	trackermapper "github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/adapters/http/mapper"
	trackerports "github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/ports"
)

// WishAPI serves the wish list.
type WishAPI struct {
	service trackerports.Service
}

func NewWishAPI(service trackerports.Service) WishAPI {
	return WishAPI{service: service}
}

// Get /v1/wishes
func (api *WishAPI) ListWishes(c *gin.Context) {
	wishes, err := api.service.ListWishes(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, trackermapper.FromDomainWishes(wishes))
}

// Post /v1/wishes
func (api *WishAPI) AddWish(c *gin.Context) {
	var payload trackermapper.WishBody
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := trackermapper.Validate(payload); err != nil {
		respondServiceError(c, err)
		return
	}
	saved, err := api.service.AddWish(c.Request.Context(), trackermapper.ToAddWishInput(payload))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, trackermapper.FromDomainWish(saved))
}

// Put /v1/wishes
func (api *WishAPI) EditWish(c *gin.Context) {
	var payload trackermapper.WishEdit
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := trackermapper.Validate(payload); err != nil {
		respondServiceError(c, err)
		return
	}
	updated, err := api.service.EditWish(c.Request.Context(), trackermapper.ToEditWishInput(payload))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, trackermapper.FromDomainWish(updated))
}

// Delete /v1/wishes?recipient=&item=&date=
func (api *WishAPI) DeleteWish(c *gin.Context) {
	var key trackermapper.WishKey
	if err := c.ShouldBindQuery(&key); err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := trackermapper.Validate(key); err != nil {
		respondServiceError(c, err)
		return
	}
	if err := api.service.DeleteWish(c.Request.Context(), key.ToDomain()); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
