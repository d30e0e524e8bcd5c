// Command generate_trip calls the configured completion backend once and prints the result.
//
//	go run ./scripts/generate_trip -city Chennai -type schedule -days 2
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	"github.com/FACorreiaa/go-yatra/config"
	generativeAI "github.com/FACorreiaa/go-yatra/internal/api/generative_ai"
	"github.com/FACorreiaa/go-yatra/internal/api/trip"
	"github.com/FACorreiaa/go-yatra/internal/types"
)

var (
	city        = flag.String("city", "Chennai", "city to generate content for")
	contentType = flag.String("type", string(types.ContentSchedule), "schedule, history or traditions")
	days        = flag.Int("days", 2, "number of days for a schedule")
	timeout     = flag.Duration("timeout", time.Minute, "request timeout")
)

func main() {
	flag.Parse()
	_ = godotenv.Load()

	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelInfo, TimeFormat: time.Kitchen}))

	cfg, err := config.InitConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	completer, err := generativeAI.NewCompleter(ctx, cfg.Generation)
	if err != nil {
		if errors.Is(err, generativeAI.ErrUnconfigured) {
			logger.Error("No credential for the configured backend", slog.String("backend", cfg.Generation.Backend))
		} else {
			logger.Error("Failed to create completion backend", slog.Any("error", err))
		}
		os.Exit(1)
	}

	service := trip.NewServiceImpl(completer, cfg.Generation.Model, cfg.Generation.MaxDays, logger)
	content, err := service.Generate(ctx, types.GenerateTripRequest{
		City: *city,
		Type: types.ContentType(*contentType),
		Days: *days,
	})
	if err != nil {
		status, message := trip.ErrorStatus(err)
		logger.Error("Generation failed", slog.Int("status", status), slog.String("message", message))
		os.Exit(1)
	}
	fmt.Println(content)
}
