// Package config holds the CLI configuration for mailscout.
package config

import "time"

type Config struct {
	DNS       DNSConfig       `yaml:"dns"`
	SMTP      SMTPConfig      `yaml:"smtp"`
	Blacklist BlacklistConfig `yaml:"blacklist"`
	Batch     BatchConfig     `yaml:"batch"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type DNSConfig struct {
	Timeout     time.Duration `yaml:"timeout"`
	FallbackToA bool          `yaml:"fallback_to_a"`
}

type SMTPConfig struct {
	Enabled        bool          `yaml:"enabled"`
	HeloDomain     string        `yaml:"helo_domain"`
	MailFrom       string        `yaml:"mail_from"`
	Port           int           `yaml:"port"`
	ConnectTimeout time.Duration `yaml:"connect_timeout"`
	CommandTimeout time.Duration `yaml:"command_timeout"`
	MaxMXHosts     int           `yaml:"max_mx_hosts"`
}

type BlacklistConfig struct {
	// DisposableDomains / InvalidDomains replace the built-in sets when set.
	DisposableDomains []string `yaml:"disposable_domains"`
	InvalidDomains    []string `yaml:"invalid_domains"`
	// ExtraDisposableDomains / ExtraInvalidDomains extend whichever sets are
	// in effect.
	ExtraDisposableDomains []string `yaml:"extra_disposable_domains"`
	ExtraInvalidDomains    []string `yaml:"extra_invalid_domains"`
}

type BatchConfig struct {
	Delay time.Duration `yaml:"delay"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func DefaultConfig() *Config {
	return &Config{
		DNS: DNSConfig{
			Timeout:     10 * time.Second,
			FallbackToA: true,
		},
		SMTP: SMTPConfig{
			Enabled:        false,
			HeloDomain:     "example.com",
			MailFrom:       "test@example.com",
			Port:           25,
			ConnectTimeout: 10 * time.Second,
			CommandTimeout: 10 * time.Second,
			MaxMXHosts:     1,
		},
		Batch: BatchConfig{
			Delay: 500 * time.Millisecond,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
