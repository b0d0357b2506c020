package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigs(t *testing.T, public, private string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "public.yaml"), []byte(public), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "private.yaml"), []byte(private), 0o600))
	return dir
}

func TestMustLoad(t *testing.T) {
	public := `
port: 9090
jwt_ttl: 1h
verification_code_len: 10
verification_code_ttl: 48h
promotion_sweep_interval: 50s
promotion_duration: 168h
log_level: debug
`
	private := `
pg:
  host: localhost
  port: 5432
  user: nuber
  password: pass
  dbname: nuber
jwt_key: "123"
mailgun:
  api_key: key
  domain: mg.example.com
  from_email: no-reply@example.com
`
	cfg := MustLoad(writeConfigs(t, public, private))

	assert.Equal(t, 9090, cfg.Public.Port)
	assert.Equal(t, time.Hour, cfg.JwtTTL())
	assert.Equal(t, 10, cfg.Public.VerificationCodeLen)
	assert.Equal(t, 48*time.Hour, cfg.Public.VerificationCodeTTL.Std())
	assert.Equal(t, 50*time.Second, cfg.Public.PromotionSweepInterval.Std())
	assert.Equal(t, 7*24*time.Hour, cfg.Public.PromotionDuration.Std())
	assert.Equal(t, "localhost", cfg.Private.Pg.Host)
	assert.Equal(t, 5432, cfg.Private.Pg.Port)
	assert.Equal(t, "123", cfg.JwtKey())
	assert.Equal(t, "mg.example.com", cfg.Private.Mailgun.Domain)
}

func TestMustLoadDefaults(t *testing.T) {
	cfg := MustLoad(writeConfigs(t, "port: 0\n", "jwt_key: 'k'\n"))

	assert.Equal(t, 8080, cfg.Public.Port)
	assert.Equal(t, 24*time.Hour, cfg.JwtTTL())
	assert.Equal(t, 8, cfg.Public.VerificationCodeLen)
	assert.Equal(t, 50*time.Second, cfg.Public.PromotionSweepInterval.Std())
	assert.Equal(t, "info", cfg.Public.LogLevel)
}

func TestDurationAcceptsNanosecondInts(t *testing.T) {
	cfg := MustLoad(writeConfigs(t, "jwt_ttl: 3600000000000\n", "jwt_key: 'k'\n"))

	assert.Equal(t, time.Hour, cfg.JwtTTL())
}

func TestMustLoadMissingFile(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic for missing config folder, got none")
		}
	}()

	_ = MustLoad(t.TempDir())
}
