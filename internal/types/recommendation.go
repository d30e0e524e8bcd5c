package types

// RecommendationRequest asks for the best city in a state for a set of preferences.
type RecommendationRequest struct {
	StateID     string           `json:"stateId" example:"kerala"`
	Preferences []PreferenceType `json:"preferences"`
}

// RecommendationResponse carries the recommended city and why it was chosen.
type RecommendationResponse struct {
	City        City   `json:"city"`
	Explanation string `json:"explanation"`
}
