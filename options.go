package mailscout

import "time"

// BlacklistOptions configures the blacklist validation level. Nil slices
// select the built-in sets; the sets are copied at construction time and
// immutable afterwards, so custom lists can be injected without touching
// process-wide state.
type BlacklistOptions struct {
	// DisposableDomains are throwaway-mailbox providers.
	DisposableDomains []string
	// InvalidDomains are reserved example/test/placeholder domains.
	InvalidDomains []string
}

// DNSOptions configures the DNS validation level.
type DNSOptions struct {
	// Timeout is the maximum time for a single lookup. Default: 10s
	Timeout time.Duration
	// FallbackToA when true accepts A records when no MX record is found,
	// as a weaker deliverability signal. Default: true
	FallbackToA bool
}

func defaultDNSOptions() DNSOptions {
	return DNSOptions{
		Timeout:     10 * time.Second,
		FallbackToA: true,
	}
}

// SMTPOptions configures the SMTP probe level. The probe never sends DATA;
// HeloDomain and MailFrom are placeholders, not working addresses.
type SMTPOptions struct {
	// HeloDomain is the domain sent in the HELO command. Default: "example.com"
	HeloDomain string
	// MailFrom is the address sent in the MAIL FROM command. Default: "test@example.com"
	MailFrom string
	// ConnectTimeout is the maximum time for the TCP connection. Default: 10s
	ConnectTimeout time.Duration
	// CommandTimeout is the deadline for the whole command exchange. Default: 10s
	CommandTimeout time.Duration
	// MaxMXHosts is how many MX hosts to try sequentially before giving up
	// as inconclusive. Default: 1 (the highest-priority exchanger)
	MaxMXHosts int
	// Port is the SMTP port. Default: "25"
	Port string
}

func defaultSMTPOptions() SMTPOptions {
	return SMTPOptions{
		HeloDomain:     "example.com",
		MailFrom:       "test@example.com",
		ConnectTimeout: 10 * time.Second,
		CommandTimeout: 10 * time.Second,
		MaxMXHosts:     1,
		Port:           "25",
	}
}

// BatchOptions configures ValidateMany.
type BatchOptions struct {
	// Delay is the fixed pause between network-bound validations, so bulk
	// runs don't trip anti-abuse rate limiting on remote mail servers.
	// Default: 500ms. Must not be negative.
	Delay time.Duration
}

func defaultBatchOptions() BatchOptions {
	return BatchOptions{
		Delay: 500 * time.Millisecond,
	}
}
