package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalConfig = `
[app]
timezone = "Asia/Jerusalem"

[storage]
driver = "memory"

[auth]
jwt_secret = "secret"
`

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse(minimalConfig)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, []string{"admin"}, cfg.Auth.StaffRoles)
	assert.Equal(t, 10, cfg.RateLimit.Requests)
	assert.Equal(t, "carwash-backend", cfg.Metrics.ServiceName)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Jerusalem", loc.String())
}

func TestParse_EnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("ADMIN_EMAIL", "owner@carwash.test")

	cfg, err := Parse(minimalConfig)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Auth.JWTSecret)
	assert.Equal(t, "owner@carwash.test", cfg.Notifications.StaffEmail)
}

func TestParse_Validation(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "missing secret",
			data: "[storage]\ndriver = \"memory\"\n",
		},
		{
			name: "unknown driver",
			data: "[storage]\ndriver = \"mongo\"\n[auth]\njwt_secret = \"s\"\n",
		},
		{
			name: "postgres without host",
			data: "[auth]\njwt_secret = \"s\"\n",
		},
		{
			name: "bad timezone",
			data: "[app]\ntimezone = \"Mars/Base\"\n[storage]\ndriver = \"memory\"\n[auth]\njwt_secret = \"s\"\n",
		},
		{
			name: "smtp without host",
			data: "[storage]\ndriver = \"memory\"\n[auth]\njwt_secret = \"s\"\n[smtp]\nenabled = true\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET", "")
			_, err := Parse(tt.data)
			assert.Error(t, err)
		})
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(minimalConfig+"\n[database]\nport = 5432\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "memory", cfg.Storage.Driver)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "carwash", Password: "pw", DBName: "carwash", SSLMode: "disable"}

	assert.Equal(t, "host=db port=5432 user=carwash dbname=carwash sslmode=disable password=pw", d.DSN())
}
