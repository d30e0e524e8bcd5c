package catalog

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-yatra/internal/types"
)

func newCatalogRouter() http.Handler {
	h := NewHandlerImpl(Seed(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	r := chi.NewRouter()
	r.Get("/states", h.ListStates)
	r.Get("/states/{stateID}", h.GetState)
	r.Get("/states/{stateID}/cities", h.ListCitiesForState)
	r.Get("/cities/{cityID}", h.GetCity)
	r.Get("/cities/{cityID}/places", h.ListPlacesForCity)
	r.Get("/preferences", h.ListPreferences)
	return r
}

func get(t *testing.T, h http.Handler, path string, dst any) int {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	if dst != nil && w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), dst))
	}
	return w.Code
}

func TestHandlerImpl_Catalog(t *testing.T) {
	h := newCatalogRouter()

	var states []types.State
	require.Equal(t, http.StatusOK, get(t, h, "/states", &states))
	assert.Len(t, states, 4)

	var state types.State
	require.Equal(t, http.StatusOK, get(t, h, "/states/kerala", &state))
	assert.Equal(t, "Kerala", state.Name)

	var cities []types.City
	require.Equal(t, http.StatusOK, get(t, h, "/states/tamil-nadu/cities", &cities))
	require.Len(t, cities, 2)
	assert.Equal(t, "chennai", cities[0].ID)

	var city types.City
	require.Equal(t, http.StatusOK, get(t, h, "/cities/tirupati", &city))
	assert.Equal(t, "andhra-pradesh", city.StateID)

	var places []types.Place
	require.Equal(t, http.StatusOK, get(t, h, "/cities/visakhapatnam/places", &places))
	assert.Len(t, places, 4)

	places = nil
	require.Equal(t, http.StatusOK, get(t, h, "/cities/kochi/places", &places))
	assert.NotNil(t, places)
	assert.Empty(t, places)

	var prefs []types.Preference
	require.Equal(t, http.StatusOK, get(t, h, "/preferences", &prefs))
	assert.Len(t, prefs, 5)
}

func TestHandlerImpl_NotFound(t *testing.T) {
	h := newCatalogRouter()

	for _, path := range []string{"/states/goa", "/states/goa/cities", "/cities/atlantis", "/cities/atlantis/places"} {
		t.Run(path, func(t *testing.T) {
			assert.Equal(t, http.StatusNotFound, get(t, h, path, nil))
		})
	}
}
