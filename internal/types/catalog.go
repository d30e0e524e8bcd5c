package types

// PreferenceType is one of the fixed tourist-interest tags used to score cities.
type PreferenceType string

const (
	PreferenceHills       PreferenceType = "hills"
	PreferenceMountains   PreferenceType = "mountains"
	PreferenceBeaches     PreferenceType = "beaches"
	PreferenceAgriculture PreferenceType = "agriculture"
	PreferenceSpiritual   PreferenceType = "spiritual"
)

// Preference is the display record for a PreferenceType.
type Preference struct {
	ID          PreferenceType `json:"id" example:"hills"`
	Label       string         `json:"label" example:"Hills"`
	Icon        string         `json:"icon" example:"⛰️"`
	Description string         `json:"description" example:"Scenic hill stations and valleys"`
}

// State is a top-level destination region.
type State struct {
	ID          string   `json:"id" example:"kerala"`
	Name        string   `json:"name" example:"Kerala"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Highlights  []string `json:"highlights"`
}

// City belongs to exactly one State.
type City struct {
	ID          string           `json:"id" example:"munnar"`
	StateID     string           `json:"stateId" example:"kerala"`
	Name        string           `json:"name" example:"Munnar"`
	Description string           `json:"description"`
	Image       string           `json:"image"`
	Tags        []string         `json:"tags"`
	BestFor     []PreferenceType `json:"bestFor"`
}

// Offers reports whether the city declares an affinity for p.
func (c City) Offers(p PreferenceType) bool {
	for _, b := range c.BestFor {
		if b == p {
			return true
		}
	}
	return false
}

// Place is a point of interest inside a City.
type Place struct {
	ID            string `json:"id" example:"rk-beach"`
	CityID        string `json:"cityId" example:"visakhapatnam"`
	Name          string `json:"name" example:"RK Beach"`
	Description   string `json:"description"`
	Image         string `json:"image"`
	Category      string `json:"category" example:"Beach"`
	VisitDuration string `json:"visitDuration" example:"2-3 hours"`
}
