package types

// Stats summarises the registry for display.
type Stats struct {
	TotalDonations    int `json:"totalDonations"`
	AvailableQuantity int `json:"availableQuantity"`
	TotalWishes       int `json:"totalWishes"`
	PendingQuantity   int `json:"pendingQuantity"`
}
