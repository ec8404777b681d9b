package merrymatchserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Route is the information for every URI.
type Route struct {
	// Name is the name of this Route.
	Name string
	// Method is the string for the HTTP method. ex) GET, POST etc..
	Method string
	// Pattern is the pattern of the URI.
	Pattern string
	// HandlerFunc is the handler function of this route.
	HandlerFunc gin.HandlerFunc
}

// ApiHandleFunctions bundles the handler groups served by the router.
type ApiHandleFunctions struct {
	DonationAPI DonationAPI
	WishAPI     WishAPI
	MatchingAPI MatchingAPI
}

// NewRouter returns a new router.
func NewRouter(handleFunctions ApiHandleFunctions) *gin.Engine {
	return NewRouterWithGinEngine(gin.Default(), handleFunctions)
}

// NewRouterWithGinEngine adds the tracker routes to an existing engine.
func NewRouterWithGinEngine(router *gin.Engine, handleFunctions ApiHandleFunctions) *gin.Engine {
	for _, route := range getRoutes(handleFunctions) {
		if route.HandlerFunc == nil {
			route.HandlerFunc = DefaultHandleFunc
		}
		router.Handle(route.Method, route.Pattern, route.HandlerFunc)
	}
	return router
}

// DefaultHandleFunc answers routes that have no handler wired.
func DefaultHandleFunc(c *gin.Context) {
	c.String(http.StatusNotImplemented, "501 not implemented")
}

func getRoutes(handleFunctions ApiHandleFunctions) []Route {
	return []Route{
		{"Healthz", http.MethodGet, "/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) }},
		{"ListDonations", http.MethodGet, "/v1/donations", handleFunctions.DonationAPI.ListDonations},
		{"AddDonation", http.MethodPost, "/v1/donations", handleFunctions.DonationAPI.AddDonation},
		{"EditDonation", http.MethodPut, "/v1/donations", handleFunctions.DonationAPI.EditDonation},
		{"DeleteDonation", http.MethodDelete, "/v1/donations", handleFunctions.DonationAPI.DeleteDonation},
		{"ListWishes", http.MethodGet, "/v1/wishes", handleFunctions.WishAPI.ListWishes},
		{"AddWish", http.MethodPost, "/v1/wishes", handleFunctions.WishAPI.AddWish},
		{"EditWish", http.MethodPut, "/v1/wishes", handleFunctions.WishAPI.EditWish},
		{"DeleteWish", http.MethodDelete, "/v1/wishes", handleFunctions.WishAPI.DeleteWish},
		{"RunMatching", http.MethodPost, "/v1/matching/runs", handleFunctions.MatchingAPI.RunMatching},
		{"Stats", http.MethodGet, "/v1/stats", handleFunctions.MatchingAPI.Stats},
		{"SyncRegistry", http.MethodPost, "/v1/registry/sync", handleFunctions.MatchingAPI.SyncRegistry},
	}
}
