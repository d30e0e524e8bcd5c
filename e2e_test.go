package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/FACorreiaa/go-yatra/config"
	"github.com/FACorreiaa/go-yatra/internal/container"
	"github.com/FACorreiaa/go-yatra/internal/types"
)

// fakeGateway mimics the chat-completion endpoint of the AI gateway.
type fakeGateway struct {
	mu       sync.Mutex
	status   int
	content  string
	prompts  []string
	requests int
}

func (g *fakeGateway) set(status int, content string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.status, g.content = status, content
}

func (g *fakeGateway) calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.requests
}

func (g *fakeGateway) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Messages []struct {
			Content string `json:"content"`
		} `json:"messages"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)

	g.mu.Lock()
	g.requests++
	for _, m := range body.Messages {
		g.prompts = append(g.prompts, m.Content)
	}
	status, content := g.status, g.content
	g.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if status != http.StatusOK {
		_, _ = w.Write([]byte(`{"error":{"message":"gateway says no"}}`))
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{
		"id":      "chatcmpl-e2e",
		"object":  "chat.completion",
		"created": 1700000000,
		"model":   "google/gemini-2.5-flash",
		"choices": []map[string]any{{
			"index":         0,
			"finish_reason": "stop",
			"message":       map[string]any{"role": "assistant", "content": content},
		}},
	})
}

// E2ETestSuite drives the full HTTP stack against a fake gateway.
type E2ETestSuite struct {
	suite.Suite
	gateway    *fakeGateway
	gatewaySrv *httptest.Server
	server     *httptest.Server
	client     *http.Client
}

func (s *E2ETestSuite) SetupSuite() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	s.gateway = &fakeGateway{status: http.StatusOK}
	s.gatewaySrv = httptest.NewServer(s.gateway)

	var cfg config.Config
	cfg.Catalog.Source = container.CatalogSourceSeed
	cfg.CORS.AllowedOrigins = []string{"*"}
	cfg.CORS.AllowedHeaders = []string{"Authorization", "X-Client-Info", "Apikey", "Content-Type"}
	cfg.Generation.Backend = "gateway"
	cfg.Generation.Model = "google/gemini-2.5-flash"
	cfg.Generation.BaseURL = s.gatewaySrv.URL + "/v1/"
	cfg.Generation.APIKey = "e2e-key"
	cfg.Generation.MaxDays = 7
	cfg.Session.TTL = time.Hour
	cfg.Session.CleanupInterval = time.Hour

	c, err := container.NewContainer(context.Background(), &cfg, logger)
	s.Require().NoError(err)

	s.server = httptest.NewServer(newHTTPHandler(&cfg, c, logger))
	s.client = &http.Client{Timeout: 10 * time.Second}
}

func (s *E2ETestSuite) TearDownSuite() {
	s.server.Close()
	s.gatewaySrv.Close()
}

func (s *E2ETestSuite) SetupTest() {
	s.gateway.set(http.StatusOK, "")
}

func (s *E2ETestSuite) do(method, path, body string, dst any) *http.Response {
	var reader io.Reader = http.NoBody
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req, err := http.NewRequest(method, s.server.URL+path, reader)
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", "https://yatra.example")

	resp, err := s.client.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	if dst != nil {
		s.Require().NoError(json.NewDecoder(resp.Body).Decode(dst))
	}
	return resp
}

func (s *E2ETestSuite) TestGenerateTripSchedule() {
	s.gateway.set(http.StatusOK, "Day 1: Kapaleeshwarar Temple\nDay 2: Marina Beach")
	before := s.gateway.calls()

	var out types.GenerateTripResponse
	resp := s.do(http.MethodPost, "/api/v1/generate-trip", `{"city":"Chennai","type":"schedule","days":2}`, &out)

	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("*", resp.Header.Get("Access-Control-Allow-Origin"))
	s.Equal("Day 1: Kapaleeshwarar Temple\nDay 2: Marina Beach", out.Content)
	s.Equal(before+1, s.gateway.calls())

	s.gateway.mu.Lock()
	last := s.gateway.prompts[len(s.gateway.prompts)-1]
	s.gateway.mu.Unlock()
	s.Contains(last, "Create a 2-day trip itinerary for Chennai, India")
}

func (s *E2ETestSuite) TestGenerateTripInvalidType() {
	before := s.gateway.calls()

	var out map[string]any
	resp := s.do(http.MethodPost, "/api/v1/generate-trip", `{"city":"Chennai","type":"invalid"}`, &out)

	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Contains(out["error"], "Invalid type specified")
	s.Equal(before, s.gateway.calls())
}

func (s *E2ETestSuite) TestGenerateTripUpstreamStatuses() {
	tests := []struct {
		upstream int
		status   int
		message  string
	}{
		{http.StatusTooManyRequests, http.StatusTooManyRequests, "Rate limit exceeded. Please try again in a moment."},
		{http.StatusPaymentRequired, http.StatusPaymentRequired, "Service temporarily unavailable. Please try again later."},
		{http.StatusBadGateway, http.StatusInternalServerError, "AI gateway error: 502"},
	}
	for _, tt := range tests {
		s.gateway.set(tt.upstream, "")

		var out map[string]any
		resp := s.do(http.MethodPost, "/api/v1/generate-trip", `{"city":"Madurai","type":"history"}`, &out)
		s.Equal(tt.status, resp.StatusCode)
		s.Equal(tt.message, out["error"])
	}
}

func (s *E2ETestSuite) TestPreflight() {
	req, err := http.NewRequest(http.MethodOptions, s.server.URL+"/api/v1/generate-trip", nil)
	s.Require().NoError(err)
	req.Header.Set("Origin", "https://yatra.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "authorization, x-client-info, apikey, content-type")

	resp, err := s.client.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Less(resp.StatusCode, 300)
	s.Equal("*", resp.Header.Get("Access-Control-Allow-Origin"))
	allowed := strings.ToLower(resp.Header.Get("Access-Control-Allow-Headers"))
	for _, h := range []string{"authorization", "x-client-info", "apikey", "content-type"} {
		s.Contains(allowed, h)
	}
}

func (s *E2ETestSuite) TestCatalogAndRecommendation() {
	var states []types.State
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/v1/states", "", &states).StatusCode)
	s.Len(states, 4)

	var cities []types.City
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/v1/states/kerala/cities", "", &cities).StatusCode)
	s.Len(cities, 2)

	var rec types.RecommendationResponse
	resp := s.do(http.MethodPost, "/api/v1/recommendations", `{"stateId":"kerala","preferences":["hills","mountains"]}`, &rec)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("munnar", rec.City.ID)
	s.Equal("Munnar is perfect for you because it offers excellent hills, mountains experiences!", rec.Explanation)

	var suggested types.State
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/v1/states/suggested", "", &suggested).StatusCode)
	s.Contains([]string{"kerala", "andhra-pradesh"}, suggested.ID)
}

func (s *E2ETestSuite) TestSessionWizard() {
	var sess types.TripSession
	s.Equal(http.StatusCreated, s.do(http.MethodPost, "/api/v1/sessions", "", &sess).StatusCode)
	base := "/api/v1/sessions/" + sess.ID.String()

	s.Equal(http.StatusOK, s.do(http.MethodPut, base+"/state", `{"stateId":"andhra-pradesh"}`, nil).StatusCode)
	s.Equal(http.StatusOK, s.do(http.MethodPut, base+"/preferences", `{"preferences":["beaches"]}`, &sess).StatusCode)
	s.Equal("visakhapatnam", sess.RecommendedCityID)

	s.gateway.set(http.StatusOK, "Generated text")
	s.Equal(http.StatusOK, s.do(http.MethodPost, base+"/guide", "", &sess).StatusCode)
	s.Equal("Generated text", sess.Content.History)
	s.Equal("Generated text", sess.Content.Traditions)

	s.Equal(http.StatusOK, s.do(http.MethodPost, base+"/schedule", `{"days":3}`, &sess).StatusCode)
	s.Equal(3, sess.Content.ScheduleDays)

	var reset types.TripSession
	s.Equal(http.StatusOK, s.do(http.MethodPut, base+"/state", `{"stateId":"kerala"}`, &reset).StatusCode)
	s.Equal("kerala", reset.StateID)
	s.Empty(reset.RecommendedCityID)
	s.Empty(reset.Content.History)
	s.Empty(reset.Content.Schedule)

	s.Equal(http.StatusNoContent, s.do(http.MethodDelete, base, "", nil).StatusCode)
	s.Equal(http.StatusNotFound, s.do(http.MethodGet, base, "", nil).StatusCode)
}

func (s *E2ETestSuite) TestPing() {
	resp, err := s.client.Get(s.server.URL + "/ping")
	s.Require().NoError(err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("pong", string(body))
}

func TestE2E(t *testing.T) {
	suite.Run(t, new(E2ETestSuite))
}
