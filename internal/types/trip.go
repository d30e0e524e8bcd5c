package types

// ContentType names one kind of generated trip text.
type ContentType string

const (
	ContentSchedule   ContentType = "schedule"
	ContentHistory    ContentType = "history"
	ContentTraditions ContentType = "traditions"
)

// GenerateTripRequest is the body accepted by the content-generation endpoint.
// Days is only meaningful for schedules.
type GenerateTripRequest struct {
	City string      `json:"city" example:"Chennai"`
	Type ContentType `json:"type" example:"schedule"`
	Days int         `json:"days,omitempty" example:"2"`
}

// GenerateTripResponse wraps the generated text.
type GenerateTripResponse struct {
	Content string `json:"content"`
}
