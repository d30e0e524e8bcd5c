package catalog

import (
	"errors"
	"fmt"
	"slices"

	"github.com/FACorreiaa/go-yatra/internal/types"
)

// ErrInvalidCatalog is returned by New when the reference data breaks an invariant.
var ErrInvalidCatalog = errors.New("invalid catalog")

// Catalog is the immutable reference table of states, cities and places.
// Accessors hand out copies so callers can never mutate it.
type Catalog struct {
	preferences []types.Preference
	states      []types.State
	cities      []types.City
	places      []types.Place

	stateIdx      map[string]int
	cityIdx       map[string]int
	preferenceIdx map[types.PreferenceType]int
}

// New validates the given records and builds a Catalog. Input order is the catalog order.
func New(preferences []types.Preference, states []types.State, cities []types.City, places []types.Place) (*Catalog, error) {
	c := &Catalog{
		preferences:   make([]types.Preference, 0, len(preferences)),
		states:        make([]types.State, 0, len(states)),
		cities:        make([]types.City, 0, len(cities)),
		places:        make([]types.Place, 0, len(places)),
		stateIdx:      make(map[string]int, len(states)),
		cityIdx:       make(map[string]int, len(cities)),
		preferenceIdx: make(map[types.PreferenceType]int, len(preferences)),
	}

	var errs []error
	for _, p := range preferences {
		if _, dup := c.preferenceIdx[p.ID]; dup {
			errs = append(errs, fmt.Errorf("duplicate preference %q", p.ID))
			continue
		}
		c.preferenceIdx[p.ID] = len(c.preferences)
		c.preferences = append(c.preferences, p)
	}

	placeIDs := make(map[string]struct{}, len(places))

	for _, s := range states {
		if s.ID == "" {
			errs = append(errs, errors.New("state with empty id"))
			continue
		}
		if _, dup := c.stateIdx[s.ID]; dup {
			errs = append(errs, fmt.Errorf("duplicate state %q", s.ID))
			continue
		}
		c.stateIdx[s.ID] = len(c.states)
		c.states = append(c.states, copyState(s))
	}

	for _, city := range cities {
		if city.ID == "" {
			errs = append(errs, errors.New("city with empty id"))
			continue
		}
		if _, dup := c.cityIdx[city.ID]; dup {
			errs = append(errs, fmt.Errorf("duplicate city %q", city.ID))
			continue
		}
		if _, ok := c.stateIdx[city.StateID]; !ok {
			errs = append(errs, fmt.Errorf("city %q references unknown state %q", city.ID, city.StateID))
			continue
		}
		for _, p := range city.BestFor {
			if _, ok := c.preferenceIdx[p]; !ok {
				errs = append(errs, fmt.Errorf("city %q has unknown preference %q", city.ID, p))
			}
		}
		c.cityIdx[city.ID] = len(c.cities)
		c.cities = append(c.cities, copyCity(city))
	}

	for _, p := range places {
		if p.ID == "" {
			errs = append(errs, errors.New("place with empty id"))
			continue
		}
		if _, dup := placeIDs[p.ID]; dup {
			errs = append(errs, fmt.Errorf("duplicate place %q", p.ID))
			continue
		}
		if _, ok := c.cityIdx[p.CityID]; !ok {
			errs = append(errs, fmt.Errorf("place %q references unknown city %q", p.ID, p.CityID))
			continue
		}
		placeIDs[p.ID] = struct{}{}
		c.places = append(c.places, p)
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, errors.Join(errs...))
	}
	return c, nil
}

// Preferences returns the preference enumeration in display order.
func (c *Catalog) Preferences() []types.Preference {
	return slices.Clone(c.preferences)
}

// Preference looks up a preference by id.
func (c *Catalog) Preference(id types.PreferenceType) (types.Preference, bool) {
	i, ok := c.preferenceIdx[id]
	if !ok {
		return types.Preference{}, false
	}
	return c.preferences[i], true
}

// States returns all states in catalog order.
func (c *Catalog) States() []types.State {
	out := make([]types.State, len(c.states))
	for i, s := range c.states {
		out[i] = copyState(s)
	}
	return out
}

func (c *Catalog) State(id string) (types.State, bool) {
	i, ok := c.stateIdx[id]
	if !ok {
		return types.State{}, false
	}
	return copyState(c.states[i]), true
}

func (c *Catalog) City(id string) (types.City, bool) {
	i, ok := c.cityIdx[id]
	if !ok {
		return types.City{}, false
	}
	return copyCity(c.cities[i]), true
}

// CitiesForState returns the cities of a state in catalog order, or an empty slice.
func (c *Catalog) CitiesForState(stateID string) []types.City {
	out := []types.City{}
	for _, city := range c.cities {
		if city.StateID == stateID {
			out = append(out, copyCity(city))
		}
	}
	return out
}

// PlacesForCity returns the places of a city in catalog order, or an empty slice.
func (c *Catalog) PlacesForCity(cityID string) []types.Place {
	out := []types.Place{}
	for _, p := range c.places {
		if p.CityID == cityID {
			out = append(out, p)
		}
	}
	return out
}

func copyState(s types.State) types.State {
	s.Highlights = slices.Clone(s.Highlights)
	return s
}

func copyCity(c types.City) types.City {
	c.Tags = slices.Clone(c.Tags)
	c.BestFor = slices.Clone(c.BestFor)
	return c
}
