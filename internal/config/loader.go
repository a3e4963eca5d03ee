package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

func Load(configPath string) (*Config, error) {
	config := DefaultConfig()

	if configPath == "" {
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.DNS.Timeout <= 0 {
		return fmt.Errorf("dns timeout must be positive: %s", config.DNS.Timeout)
	}

	if config.SMTP.Port <= 0 || config.SMTP.Port > 65535 {
		return fmt.Errorf("invalid smtp port: %d", config.SMTP.Port)
	}

	if config.SMTP.ConnectTimeout <= 0 || config.SMTP.CommandTimeout <= 0 {
		return fmt.Errorf("smtp timeouts must be positive")
	}

	if config.SMTP.MaxMXHosts <= 0 {
		return fmt.Errorf("max_mx_hosts must be positive: %d", config.SMTP.MaxMXHosts)
	}

	if config.SMTP.HeloDomain == "" || config.SMTP.MailFrom == "" {
		return fmt.Errorf("smtp helo_domain and mail_from cannot be empty")
	}

	if config.Batch.Delay < 0 {
		return fmt.Errorf("batch delay must not be negative: %s", config.Batch.Delay)
	}

	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLogLevels[config.Logging.Level] {
		return fmt.Errorf("invalid log level: %s", config.Logging.Level)
	}

	validLogFormats := map[string]bool{
		"text": true, "json": true,
	}
	if !validLogFormats[config.Logging.Format] {
		return fmt.Errorf("invalid log format: %s", config.Logging.Format)
	}

	return nil
}

// DisposableDomains returns the disposable set the CLI should use: either
// the replacement list plus extras, or nil to select the built-in defaults
// when nothing was configured.
func (c *Config) DisposableDomains(defaults []string) []string {
	return mergeDomains(defaults, c.Blacklist.DisposableDomains, c.Blacklist.ExtraDisposableDomains)
}

// InvalidDomains is the invalid/test-domain counterpart of DisposableDomains.
func (c *Config) InvalidDomains(defaults []string) []string {
	return mergeDomains(defaults, c.Blacklist.InvalidDomains, c.Blacklist.ExtraInvalidDomains)
}

func mergeDomains(defaults, replace, extra []string) []string {
	if replace == nil && extra == nil {
		return nil
	}
	base := replace
	if base == nil {
		base = defaults
	}
	merged := make([]string, 0, len(base)+len(extra))
	merged = append(merged, base...)
	merged = append(merged, extra...)
	return merged
}
