package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

//go:embed config.yml
var embeddedConfig []byte

type Config struct {
	Mode     string `mapstructure:"mode"`
	Dotenv   string `mapstructure:"dotenv"`
	Handlers struct {
		Prometheus struct {
			Port    string `mapstructure:"port"`
			Enabled bool   `mapstructure:"enabled"`
		} `mapstructure:"prometheus"`
	} `mapstructure:"handlers"`
	Repositories struct {
		Postgres struct {
			Host              string `mapstructure:"host"`
			Password          string `mapstructure:"password"`
			Port              string `mapstructure:"port"`
			Username          string `mapstructure:"username"`
			DB                string `mapstructure:"db"`
			SSLMODE           string `mapstructure:"SSLMODE"`
			MAXCONWAITINGTIME int    `mapstructure:"MAXCONWAITINGTIME"`
		} `mapstructure:"postgres"`
	} `mapstructure:"repositories"`
	Server struct {
		HTTPPort     string        `mapstructure:"HTTPPort"`
		Timeout      time.Duration `mapstructure:"HTTPTimeout"`
		ReadTimeout  time.Duration `mapstructure:"readTimeout"`
		WriteTimeout time.Duration `mapstructure:"writeTimeout"`
	} `mapstructure:"server"`
	CORS struct {
		AllowedOrigins []string `mapstructure:"allowedOrigins"`
		AllowedHeaders []string `mapstructure:"allowedHeaders"`
	} `mapstructure:"cors"`
	Generation GenerationConfig `mapstructure:"generation"`
	Catalog    struct {
		// Source is either "seed" or "postgres".
		Source string `mapstructure:"source"`
	} `mapstructure:"catalog"`
	Session struct {
		TTL             time.Duration `mapstructure:"ttl"`
		CleanupInterval time.Duration `mapstructure:"cleanupInterval"`
	} `mapstructure:"session"`
}

// GenerationConfig selects and configures the completion backend.
type GenerationConfig struct {
	Backend   string `mapstructure:"backend"`
	Model     string `mapstructure:"model"`
	BaseURL   string `mapstructure:"baseURL"`
	APIKey    string `mapstructure:"apiKey"`
	MaxDays   int    `mapstructure:"maxDays"`
	RateLimit struct {
		Requests int           `mapstructure:"requests"`
		Window   time.Duration `mapstructure:"window"`
	} `mapstructure:"rateLimit"`
	Azure struct {
		Endpoint   string `mapstructure:"endpoint"`
		Deployment string `mapstructure:"deployment"`
	} `mapstructure:"azure"`
}

// credentialEnv lists the environment variable that carries the key for each backend.
var credentialEnv = map[string]string{
	"gateway": "LOVABLE_API_KEY",
	"gemini":  "GEMINI_API_KEY",
	"azure":   "AZURE_OPENAI_API_KEY",
}

func InitConfig() (Config, error) {
	var config Config
	v := viper.New()

	v.AddConfigPath(".")
	v.AddConfigPath("config")
	v.AddConfigPath("/app/config")

	v.SetConfigName("config")
	v.SetConfigType("yml")

	v.SetEnvPrefix("YATRA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// AutomaticEnv only overrides keys viper already knows about.
	v.SetDefault("generation.apiKey", "")

	// Try to load file-based config
	err := v.ReadInConfig()
	if err != nil {
		fmt.Printf("Warning: Failed to find file-based config: %s. Falling back to embedded config.\n", err)
		if err = v.ReadConfig(bytes.NewReader(embeddedConfig)); err != nil {
			return Config{}, fmt.Errorf("failed to read embedded config: %w", err)
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// The backend credential keeps its historical env name unless set explicitly.
	if config.Generation.APIKey == "" {
		if name, ok := credentialEnv[config.Generation.Backend]; ok {
			v.MustBindEnv("credential", name)
			config.Generation.APIKey = v.GetString("credential")
		}
	}
	fmt.Println("Successfully loaded app configs...")
	return config, nil
}
