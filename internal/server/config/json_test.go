package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/ironbank/internal/flagx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	t.Setenv(flagx.ConfigEnvVar, "")

	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"endpoint_addr_grpc":        "www.example:9000",
		"endpoint_addr_ops":         ":9191",
		"database_dsn":              "bank.db",
		"secret_key":                "my_secret_key",
		"session_validity_duration": "90m",
		"redis_url":                 "redis://cache:6379/1",
		"client_origin":             "https://bank.example",
		"mail_mode":                 "smtp",
		"smtp_host":                 "smtp.example",
		"smtp_port":                 2525,
		"smtp_user":                 "mailer",
		"smtp_password":             "mailpass",
		"mail_from":                 "Bank <bank@example.com>",
		"s3_bucket":                 "bucket",
		"transfer_timeout":          "3s",
		"purge_interval":            60000000000,
		"argon2_memory_kib":         65536,
		"argon2_time":               3,
		"argon2_parallelism":        2,
	})

	t.Run("loads from json", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, "www.example:9000", cfg.EndpointAddrGRPC)
		assert.Equal(t, ":9191", cfg.EndpointAddrOps)
		assert.Equal(t, "bank.db", cfg.DatabaseDSN)
		assert.Equal(t, "my_secret_key", cfg.SecretKey)
		assert.Equal(t, 90*time.Minute, cfg.SessionValidityDuration)
		assert.Equal(t, "redis://cache:6379/1", cfg.RedisURL)
		assert.Equal(t, "https://bank.example", cfg.ClientOrigin)
		assert.Equal(t, "smtp", cfg.MailMode)
		assert.Equal(t, "smtp.example", cfg.SMTPHost)
		assert.Equal(t, 2525, cfg.SMTPPort)
		assert.Equal(t, "mailer", cfg.SMTPUser)
		assert.Equal(t, "mailpass", cfg.SMTPPassword)
		assert.Equal(t, "Bank <bank@example.com>", cfg.MailFrom)
		assert.Equal(t, "bucket", cfg.S3Bucket)
		assert.Equal(t, 3*time.Second, cfg.TransferTimeout)
		assert.Equal(t, time.Minute, cfg.PurgeInterval)
		assert.Equal(t, uint32(65536), cfg.Argon2.Memory)
		assert.Equal(t, uint32(3), cfg.Argon2.Time)
		assert.Equal(t, uint8(2), cfg.Argon2.Parallelism)
	})

	t.Run("partial file keeps other values", func(t *testing.T) {
		partial := writeTempJSON(t, dir, "partial.json", map[string]any{"secret_key": "rotated"})
		os.Args = []string{"testbin", "-c", partial}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "rotated", cfg.SecretKey)
		assert.Equal(t, ":50051", cfg.EndpointAddrGRPC)
		assert.Equal(t, 2*time.Hour, cfg.SessionValidityDuration)
	})

	t.Run("env var names the file", func(t *testing.T) {
		os.Args = []string{"testbin"}
		t.Setenv(flagx.ConfigEnvVar, pathFlag)

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, "bank.db", cfg.DatabaseDSN)
	})

	t.Run("no config and no flags → no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{
			EndpointAddrGRPC:        "defaults:1234",
			DatabaseDSN:             "bank.db",
			SecretKey:               "key",
			SessionValidityDuration: 2 * time.Minute,
			S3Bucket:                "s3bucket",
		}
		parseJson(cfg)

		assert.Equal(t, "defaults:1234", cfg.EndpointAddrGRPC)
		assert.Equal(t, "bank.db", cfg.DatabaseDSN)
		assert.Equal(t, "key", cfg.SecretKey)
		assert.Equal(t, 2*time.Minute, cfg.SessionValidityDuration)
		assert.Equal(t, "s3bucket", cfg.S3Bucket)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})
}
