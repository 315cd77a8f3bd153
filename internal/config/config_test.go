package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	viper.Reset()

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, "workouts.db", cfg.Database.Path)
	assert.Equal(t, PhotoDriverInline, cfg.Photos.Driver)
	assert.Equal(t, time.Hour, cfg.JWT.Expiration)
}

func TestLoadConfigFromFile(t *testing.T) {
	viper.Reset()

	dir := t.TempDir()
	content := `
server:
  address: ":9090"
database:
  path: "/var/lib/tracker/tracker.db"
photos:
  driver: "s3"
s3:
  endpoint: "http://localhost:9000"
  region: "us-east-1"
  bucket_name: "progress-photos"
jwt:
  secret: "file-secret"
  expiration: "30m"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.Equal(t, "/var/lib/tracker/tracker.db", cfg.Database.Path)
	assert.Equal(t, PhotoDriverS3, cfg.Photos.Driver)
	assert.Equal(t, "progress-photos", cfg.S3.BucketName)
	assert.Equal(t, "file-secret", cfg.JWT.Secret)
	assert.Equal(t, 30*time.Minute, cfg.JWT.Expiration)
}
