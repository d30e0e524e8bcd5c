package types

import (
	"time"

	"github.com/google/uuid"
)

// TripSession is the server-side record of a single wizard visit.
// Generated content always belongs to RecommendedCityID and is dropped
// whenever the city changes.
type TripSession struct {
	ID                 uuid.UUID        `json:"id"`
	StateID            string           `json:"stateId,omitempty"`
	CityID             string           `json:"cityId,omitempty"`
	Preferences        []PreferenceType `json:"preferences"`
	RecommendedCityID  string           `json:"recommendedCityId,omitempty"`
	RecommendationNote string           `json:"recommendationNote,omitempty"`
	Content            SessionContent   `json:"content"`
	CreatedAt          time.Time        `json:"createdAt"`
	UpdatedAt          time.Time        `json:"updatedAt"`
}

// SessionContent holds the generated text blobs for the session's current city.
type SessionContent struct {
	History      string `json:"history,omitempty"`
	Traditions   string `json:"traditions,omitempty"`
	Schedule     string `json:"schedule,omitempty"`
	ScheduleDays int    `json:"scheduleDays,omitempty"`
}

// SelectStateRequest is the body for choosing a state.
type SelectStateRequest struct {
	StateID string `json:"stateId" example:"kerala"`
}

// SelectCityRequest is the body for choosing a city directly.
type SelectCityRequest struct {
	CityID string `json:"cityId" example:"munnar"`
}

// SelectPreferencesRequest is the body for choosing preferences.
type SelectPreferencesRequest struct {
	Preferences []PreferenceType `json:"preferences"`
}

// ScheduleRequest is the body for generating a session schedule.
type ScheduleRequest struct {
	Days int `json:"days" example:"2"`
}
