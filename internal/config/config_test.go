package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "sqlite", cfg.DatabaseType)
	assert.Equal(t, "rwh.db", cfg.DatabaseName)
	assert.Equal(t, 5*time.Second, cfg.LookupTimeout)
	assert.Equal(t, 1000, cfg.GeocodeCacheSize)
	assert.False(t, cfg.KafkaEnabled)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, "assessment-events", cfg.KafkaTopic)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("DATABASE_TYPE", "pgsql")
	t.Setenv("DATABASE_NAME", "rwh")
	t.Setenv("DATABASE_HOST", "db.internal")
	t.Setenv("DATABASE_PORT", "5433")
	t.Setenv("DATABASE_USER", "rwh")
	t.Setenv("DATABASE_PASSWORD", "secret")
	t.Setenv("LOOKUP_TIMEOUT", "2s")
	t.Setenv("GEOCODE_CACHE_SIZE", "50")
	t.Setenv("KAFKA_ENABLED", "true")
	t.Setenv("KAFKA_BROKERS", "broker1:9092, broker2:9092")
	t.Setenv("KAFKA_TOPIC", "events")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "pgsql", cfg.DatabaseType)
	assert.Equal(t, "db.internal", cfg.DatabaseHost)
	assert.Equal(t, 5433, cfg.DatabasePort)
	assert.Equal(t, 2*time.Second, cfg.LookupTimeout)
	assert.Equal(t, 50, cfg.GeocodeCacheSize)
	assert.True(t, cfg.KafkaEnabled)
	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "events", cfg.KafkaTopic)
}

func TestLoad_InvalidDatabaseType(t *testing.T) {
	t.Setenv("DATABASE_TYPE", "oracle")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_TYPE")
}

func TestLoad_InvalidLookupTimeout(t *testing.T) {
	t.Setenv("LOOKUP_TIMEOUT", "soon")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_KafkaEnabledWithoutBrokers(t *testing.T) {
	t.Setenv("KAFKA_ENABLED", "true")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "KAFKA_BROKERS")
}
