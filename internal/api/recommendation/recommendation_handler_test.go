package recommendation

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-yatra/internal/api/catalog"
	"github.com/FACorreiaa/go-yatra/internal/types"
)

func newTestHandler() *HandlerImpl {
	c := catalog.Seed()
	return NewHandlerImpl(NewEngine(c), c, slog.New(slog.NewTextHandler(io.Discard, nil))).WithRand(fixedRand(0))
}

func TestHandlerImpl_RecommendCity(t *testing.T) {
	h := newTestHandler()

	t.Run("Success", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations",
			bytes.NewBufferString(`{"stateId":"kerala","preferences":["hills","mountains"]}`))
		w := httptest.NewRecorder()
		h.RecommendCity(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var resp types.RecommendationResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "munnar", resp.City.ID)
		assert.Equal(t, "Munnar is perfect for you because it offers excellent hills, mountains experiences!", resp.Explanation)
	})

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"malformed body", `{"stateId":`, http.StatusBadRequest},
		{"missing state", `{"preferences":["hills"]}`, http.StatusBadRequest},
		{"unknown preference", `{"stateId":"kerala","preferences":["nightlife"]}`, http.StatusBadRequest},
		{"unknown state", `{"stateId":"goa","preferences":["beaches"]}`, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			h.RecommendCity(w, req)

			assert.Equal(t, tt.status, w.Code)
			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp["error"])
		})
	}
}

func TestHandlerImpl_SuggestState(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/states/suggested", nil)
	w := httptest.NewRecorder()
	h.SuggestState(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var state types.State
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	assert.Equal(t, "kerala", state.ID)
}
