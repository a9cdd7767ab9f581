package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/takehome-engine/config"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"TAKEHOME_ADDR", "TAKEHOME_DATABASE_URL", "TAKEHOME_HISTORY_ENABLED",
		"TAKEHOME_HISTORY_RETENTION", "TAKEHOME_PRUNE_INTERVAL", "TAKEHOME_ALLOWED_ORIGINS",
	} {
		t.Setenv(key, "")
	}

	cfg := config.Load()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, config.DefaultDatabaseURL, cfg.DatabaseURL)
	assert.True(t, cfg.HistoryEnabled)
	assert.Equal(t, 30*24*time.Hour, cfg.HistoryRetention)
	assert.Equal(t, time.Hour, cfg.PruneInterval)
	assert.Empty(t, cfg.AllowedOrigins)
	assert.False(t, cfg.IsPostgres())
	require.NoError(t, cfg.Validate())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("TAKEHOME_ADDR", ":9090")
	t.Setenv("TAKEHOME_DATABASE_URL", "postgres://localhost/takehome")
	t.Setenv("TAKEHOME_HISTORY_ENABLED", "false")
	t.Setenv("TAKEHOME_HISTORY_RETENTION", "72h")
	t.Setenv("TAKEHOME_PRUNE_INTERVAL", "not-a-duration")
	t.Setenv("TAKEHOME_ALLOWED_ORIGINS", "https://a.example, https://b.example,")

	cfg := config.Load()

	assert.Equal(t, ":9090", cfg.Addr)
	assert.True(t, cfg.IsPostgres())
	assert.False(t, cfg.HistoryEnabled)
	assert.Equal(t, 72*time.Hour, cfg.HistoryRetention)
	assert.Equal(t, time.Hour, cfg.PruneInterval, "unparseable values fall back")
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}

func TestValidate(t *testing.T) {
	valid := config.Config{
		Addr:             ":8080",
		DatabaseURL:      ":memory:",
		HistoryEnabled:   true,
		HistoryRetention: time.Hour,
		PruneInterval:    time.Minute,
	}
	require.NoError(t, valid.Validate())

	tests := map[string]func(c *config.Config){
		"empty addr":        func(c *config.Config) { c.Addr = " " },
		"missing database":  func(c *config.Config) { c.DatabaseURL = "" },
		"zero retention":    func(c *config.Config) { c.HistoryRetention = 0 },
		"negative interval": func(c *config.Config) { c.PruneInterval = -time.Second },
		"bad origin":        func(c *config.Config) { c.AllowedOrigins = []string{"example.com"} },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			c := valid
			mutate(&c)
			assert.Error(t, c.Validate())
		})
	}

	// Database settings are irrelevant without history
	noHistory := config.Config{Addr: ":8080"}
	assert.NoError(t, noHistory.Validate())
}
