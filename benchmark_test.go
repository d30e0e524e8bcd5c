package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/FACorreiaa/go-yatra/config"
	"github.com/FACorreiaa/go-yatra/internal/api/catalog"
	"github.com/FACorreiaa/go-yatra/internal/api/recommendation"
	"github.com/FACorreiaa/go-yatra/internal/container"
	"github.com/FACorreiaa/go-yatra/internal/types"
)

func setupBenchmarkHandler(b *testing.B) http.Handler {
	b.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

	var cfg config.Config
	cfg.Catalog.Source = container.CatalogSourceSeed
	cfg.Generation.Backend = "gateway"
	cfg.Session.TTL = time.Hour
	cfg.Session.CleanupInterval = time.Hour

	c, err := container.NewContainer(context.Background(), &cfg, logger)
	if err != nil {
		b.Fatal(err)
	}
	return newHTTPHandler(&cfg, c, logger)
}

func BenchmarkRecommend(b *testing.B) {
	engine := recommendation.NewEngine(catalog.Seed())
	prefs := []types.PreferenceType{types.PreferenceHills, types.PreferenceSpiritual}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := engine.Recommend("andhra-pradesh", prefs); !ok {
			b.Fatal("no recommendation")
		}
	}
}

func BenchmarkRecommendationsEndpoint(b *testing.B) {
	h := setupBenchmarkHandler(b)
	body := []byte(`{"stateId":"kerala","preferences":["hills","mountains"]}`)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			b.Fatalf("unexpected status %d", w.Code)
		}
	}
}

func BenchmarkListStates(b *testing.B) {
	h := setupBenchmarkHandler(b)

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/states", nil))
			if w.Code != http.StatusOK {
				b.Errorf("unexpected status %d", w.Code)
			}
		}
	})
}

func BenchmarkGenerateTripValidation(b *testing.B) {
	h := setupBenchmarkHandler(b)
	body := []byte(`{"city":"Chennai","type":"invalid"}`)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/generate-trip", bytes.NewReader(body))
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			b.Fatalf("unexpected status %d", w.Code)
		}
	}
}
