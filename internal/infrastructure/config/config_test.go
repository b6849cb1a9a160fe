package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Save original env vars and restore after tests
	originalEnv := map[string]string{
		"LUXURA_APP_NAME":                os.Getenv("LUXURA_APP_NAME"),
		"LUXURA_APP_ENV":                 os.Getenv("LUXURA_APP_ENV"),
		"LUXURA_APP_PORT":                os.Getenv("LUXURA_APP_PORT"),
		"LUXURA_DATABASE_HOST":           os.Getenv("LUXURA_DATABASE_HOST"),
		"LUXURA_DATABASE_PORT":           os.Getenv("LUXURA_DATABASE_PORT"),
		"LUXURA_DATABASE_USER":           os.Getenv("LUXURA_DATABASE_USER"),
		"LUXURA_DATABASE_PASSWORD":       os.Getenv("LUXURA_DATABASE_PASSWORD"),
		"LUXURA_DATABASE_DBNAME":         os.Getenv("LUXURA_DATABASE_DBNAME"),
		"LUXURA_DATABASE_SSLMODE":        os.Getenv("LUXURA_DATABASE_SSLMODE"),
		"LUXURA_DATABASE_MAX_OPEN_CONNS": os.Getenv("LUXURA_DATABASE_MAX_OPEN_CONNS"),
		"LUXURA_DATABASE_MAX_IDLE_CONNS": os.Getenv("LUXURA_DATABASE_MAX_IDLE_CONNS"),
		"LUXURA_WIX_API_KEY":             os.Getenv("LUXURA_WIX_API_KEY"),
		"LUXURA_WIX_SITE_ID":             os.Getenv("LUXURA_WIX_SITE_ID"),
		"LUXURA_SYNC_SALON_CODE":         os.Getenv("LUXURA_SYNC_SALON_CODE"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "luxura-inventory-api", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "postgres", cfg.Database.User)
		assert.Equal(t, "", cfg.Database.Password)
		assert.Equal(t, "luxura", cfg.Database.DBName)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.Equal(t, 5, cfg.Database.MaxIdleConns)
		assert.Equal(t, "https://www.wixapis.com", cfg.Wix.BaseURL)
		assert.Equal(t, "MAIN", cfg.Sync.SalonCode)
		assert.Equal(t, "Main Salon", cfg.Sync.SalonName)
	})

	t.Run("loads values from environment variables with LUXURA prefix", func(t *testing.T) {
		clearEnv()
		os.Setenv("LUXURA_APP_NAME", "test-app")
		os.Setenv("LUXURA_APP_ENV", "testing")
		os.Setenv("LUXURA_APP_PORT", "9000")
		os.Setenv("LUXURA_DATABASE_HOST", "testdb.local")
		os.Setenv("LUXURA_DATABASE_PORT", "5433")
		os.Setenv("LUXURA_DATABASE_USER", "testuser")
		os.Setenv("LUXURA_DATABASE_PASSWORD", "testpass")
		os.Setenv("LUXURA_DATABASE_DBNAME", "testdb")
		os.Setenv("LUXURA_DATABASE_SSLMODE", "require")
		os.Setenv("LUXURA_WIX_API_KEY", "key-123")
		os.Setenv("LUXURA_WIX_SITE_ID", "site-456")
		os.Setenv("LUXURA_SYNC_SALON_CODE", "PARIS")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "test-app", cfg.App.Name)
		assert.Equal(t, "testing", cfg.App.Env)
		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "testdb.local", cfg.Database.Host)
		assert.Equal(t, 5433, cfg.Database.Port)
		assert.Equal(t, "testuser", cfg.Database.User)
		assert.Equal(t, "testpass", cfg.Database.Password)
		assert.Equal(t, "testdb", cfg.Database.DBName)
		assert.Equal(t, "require", cfg.Database.SSLMode)
		assert.Equal(t, "key-123", cfg.Wix.APIKey)
		assert.Equal(t, "site-456", cfg.Wix.SiteID)
		assert.Equal(t, "PARIS", cfg.Sync.SalonCode)
	})

	t.Run("validates MaxIdleConns cannot exceed MaxOpenConns", func(t *testing.T) {
		clearEnv()
		os.Setenv("LUXURA_DATABASE_MAX_OPEN_CONNS", "10")
		os.Setenv("LUXURA_DATABASE_MAX_IDLE_CONNS", "20")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_idle_conns")
		assert.Contains(t, err.Error(), "cannot exceed")
	})

	t.Run("zero MaxOpenConns uses default", func(t *testing.T) {
		clearEnv()
		os.Setenv("LUXURA_DATABASE_MAX_OPEN_CONNS", "0")

		cfg, err := Load()
		require.NoError(t, err)
		// 0 is treated as "not set", so default (25) is used
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	})

	t.Run("validates MaxIdleConns cannot be negative", func(t *testing.T) {
		clearEnv()
		os.Setenv("LUXURA_DATABASE_MAX_IDLE_CONNS", "-1")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_idle_conns cannot be negative")
	})
}

func TestLoad_ProductionValidation(t *testing.T) {
	originalEnv := map[string]string{
		"LUXURA_APP_ENV":           os.Getenv("LUXURA_APP_ENV"),
		"LUXURA_DATABASE_PASSWORD": os.Getenv("LUXURA_DATABASE_PASSWORD"),
		"LUXURA_DATABASE_SSLMODE":  os.Getenv("LUXURA_DATABASE_SSLMODE"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("requires database.password in production", func(t *testing.T) {
		clearEnv()
		os.Setenv("LUXURA_APP_ENV", "production")
		os.Setenv("LUXURA_DATABASE_SSLMODE", "require")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.password is required in production")
	})

	t.Run("requires SSL enabled in production", func(t *testing.T) {
		clearEnv()
		os.Setenv("LUXURA_APP_ENV", "production")
		os.Setenv("LUXURA_DATABASE_PASSWORD", "secure-password")
		os.Setenv("LUXURA_DATABASE_SSLMODE", "disable")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.sslmode cannot be 'disable' in production")
	})

	t.Run("passes validation with valid production config", func(t *testing.T) {
		clearEnv()
		os.Setenv("LUXURA_APP_ENV", "production")
		os.Setenv("LUXURA_DATABASE_PASSWORD", "secure-password")
		os.Setenv("LUXURA_DATABASE_SSLMODE", "require")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "production", cfg.App.Env)
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Run("generates valid DSN", func(t *testing.T) {
		cfg := DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "testuser",
			Password: "testpass",
			DBName:   "testdb",
			SSLMode:  "disable",
		}

		dsn := cfg.DSN()
		assert.Contains(t, dsn, "localhost")
		assert.Contains(t, dsn, "5432")
		assert.Contains(t, dsn, "testuser")
		assert.Contains(t, dsn, "testdb")
		assert.Contains(t, dsn, "sslmode=disable")
	})

	t.Run("escapes special characters in password", func(t *testing.T) {
		cfg := DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "user",
			Password: "pass@word#123",
			DBName:   "db",
			SSLMode:  "disable",
		}

		dsn := cfg.DSN()
		// URL-encoded password should be in the DSN
		assert.Contains(t, dsn, "pass%40word%23123")
	})
}

func TestRedisConfig_Addr(t *testing.T) {
	cfg := RedisConfig{Host: "cache.local", Port: 6380}
	assert.Equal(t, "cache.local:6380", cfg.Addr())
}
