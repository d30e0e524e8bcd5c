package recommendation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/FACorreiaa/go-yatra/internal/api/catalog"
	"github.com/FACorreiaa/go-yatra/internal/types"
)

var _ Service = (*Engine)(nil)

// Service recommends destinations from the reference catalog. It performs no I/O and never fails:
// missing data is reported through the boolean results.
type Service interface {
	CitiesForState(stateID string) []types.City
	Recommend(stateID string, selected []types.PreferenceType) (types.City, bool)
	Explanation(city types.City, selected []types.PreferenceType) string
	SuggestState(rng Rand) (types.State, bool)
}

// Rand is the randomness SuggestState draws from; *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// stateWeights ranks states for SuggestState. Unlisted states weigh zero.
var stateWeights = map[string]int{
	"kerala":         10,
	"andhra-pradesh": 8,
	"tamil-nadu":     7,
	"telangana":      6,
}

// suggestionPool is how many of the top-weighted states SuggestState picks between.
const suggestionPool = 2

type Engine struct {
	catalog *catalog.Catalog
}

func NewEngine(c *catalog.Catalog) *Engine {
	return &Engine{catalog: c}
}

func (e *Engine) CitiesForState(stateID string) []types.City {
	return e.catalog.CitiesForState(stateID)
}

// Recommend returns the city of the state matching the most selected preferences.
// Ties go to the city that comes first in the catalog.
func (e *Engine) Recommend(stateID string, selected []types.PreferenceType) (types.City, bool) {
	cities := e.catalog.CitiesForState(stateID)
	if len(cities) == 0 {
		return types.City{}, false
	}

	best, bestScore := 0, -1
	for i, city := range cities {
		if s := score(city, selected); s > bestScore {
			best, bestScore = i, s
		}
	}
	return cities[best], true
}

func score(city types.City, selected []types.PreferenceType) int {
	n := 0
	for _, p := range selected {
		if city.Offers(p) {
			n++
		}
	}
	return n
}

// Explanation tells the user which of their preferences the city satisfies.
func (e *Engine) Explanation(city types.City, selected []types.PreferenceType) string {
	var labels []string
	for _, p := range selected {
		if !city.Offers(p) {
			continue
		}
		if pref, ok := e.catalog.Preference(p); ok {
			labels = append(labels, pref.Label)
		}
	}

	if len(labels) == 0 {
		return fmt.Sprintf("%s is a great destination in this state with diverse attractions.", city.Name)
	}
	return fmt.Sprintf("%s is perfect for you because it offers excellent %s experiences!",
		city.Name, strings.ToLower(strings.Join(labels, ", ")))
}

// SuggestState picks one of the two highest-weighted states at random.
// It is a loose heuristic; callers must not rely on the outcome.
func (e *Engine) SuggestState(rng Rand) (types.State, bool) {
	states := e.catalog.States()
	if len(states) == 0 {
		return types.State{}, false
	}

	sort.SliceStable(states, func(i, j int) bool {
		return stateWeights[states[i].ID] > stateWeights[states[j].ID]
	})

	pool := min(suggestionPool, len(states))
	return states[rng.Intn(pool)], true
}
