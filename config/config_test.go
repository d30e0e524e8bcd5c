package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("YATRA_GENERATION_BACKEND", "")
		t.Setenv("YATRA_GENERATION_MAXDAYS", "")
		t.Setenv("YATRA_GENERATION_APIKEY", "")
		t.Setenv("LOVABLE_API_KEY", "")

		cfg, err := InitConfig()
		require.NoError(t, err)
		assert.Equal(t, "gateway", cfg.Generation.Backend)
		assert.Equal(t, 7, cfg.Generation.MaxDays)
		assert.Empty(t, cfg.Generation.APIKey)
	})

	t.Run("api key from prefixed env", func(t *testing.T) {
		t.Setenv("YATRA_GENERATION_APIKEY", "from-env")
		t.Setenv("LOVABLE_API_KEY", "legacy")

		cfg, err := InitConfig()
		require.NoError(t, err)
		assert.Equal(t, "from-env", cfg.Generation.APIKey)
	})

	t.Run("api key from backend credential env", func(t *testing.T) {
		t.Setenv("YATRA_GENERATION_BACKEND", "")
		t.Setenv("YATRA_GENERATION_APIKEY", "")
		t.Setenv("LOVABLE_API_KEY", "legacy")

		cfg, err := InitConfig()
		require.NoError(t, err)
		assert.Equal(t, "legacy", cfg.Generation.APIKey)
	})

	t.Run("env overrides file values", func(t *testing.T) {
		t.Setenv("YATRA_GENERATION_MAXDAYS", "3")

		cfg, err := InitConfig()
		require.NoError(t, err)
		assert.Equal(t, 3, cfg.Generation.MaxDays)
	})
}
