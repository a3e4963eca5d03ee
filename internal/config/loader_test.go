package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mailscout.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 10*time.Second, cfg.DNS.Timeout)
	assert.True(t, cfg.DNS.FallbackToA)
	assert.False(t, cfg.SMTP.Enabled)
	assert.Equal(t, 25, cfg.SMTP.Port)
	assert.Equal(t, "example.com", cfg.SMTP.HeloDomain)
	assert.Equal(t, "test@example.com", cfg.SMTP.MailFrom)
	assert.Equal(t, 500*time.Millisecond, cfg.Batch.Delay)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_OverridesFromFile(t *testing.T) {
	path := writeConfig(t, `
dns:
  timeout: 3s
  fallback_to_a: false
smtp:
  enabled: true
  helo_domain: probe.mydomain.org
  mail_from: verify@probe.mydomain.org
  port: 2525
  connect_timeout: 4s
  command_timeout: 6s
  max_mx_hosts: 2
batch:
  delay: 1s
logging:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3*time.Second, cfg.DNS.Timeout)
	assert.False(t, cfg.DNS.FallbackToA)
	assert.True(t, cfg.SMTP.Enabled)
	assert.Equal(t, "probe.mydomain.org", cfg.SMTP.HeloDomain)
	assert.Equal(t, 2525, cfg.SMTP.Port)
	assert.Equal(t, 2, cfg.SMTP.MaxMXHosts)
	assert.Equal(t, time.Second, cfg.Batch.Delay)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"bad port", "smtp:\n  port: 70000\n", "invalid smtp port"},
		{"zero mx hosts", "smtp:\n  max_mx_hosts: -1\n", "max_mx_hosts"},
		{"negative delay", "batch:\n  delay: -1s\n", "batch delay"},
		{"bad log level", "logging:\n  level: chatty\n", "invalid log level"},
		{"bad log format", "logging:\n  format: xml\n", "invalid log format"},
		{"empty helo", "smtp:\n  helo_domain: \"\"\n", "helo_domain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.yaml))
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestBlacklistMerging(t *testing.T) {
	defaults := []string{"mailinator.com"}

	// Nothing configured: nil selects the library defaults.
	cfg := DefaultConfig()
	assert.Nil(t, cfg.DisposableDomains(defaults))

	// Extras extend the defaults.
	cfg.Blacklist.ExtraDisposableDomains = []string{"burner.test"}
	assert.Equal(t, []string{"mailinator.com", "burner.test"}, cfg.DisposableDomains(defaults))

	// Replacements drop the defaults entirely.
	cfg.Blacklist.DisposableDomains = []string{"only.test"}
	assert.Equal(t, []string{"only.test", "burner.test"}, cfg.DisposableDomains(defaults))

	cfg2 := DefaultConfig()
	cfg2.Blacklist.InvalidDomains = []string{"placeholder.test"}
	assert.Equal(t, []string{"placeholder.test"}, cfg2.InvalidDomains(defaults))
}
