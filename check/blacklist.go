package check

import (
	"context"

	"github.com/mailscout/mailscout/internal/parse"
	"github.com/mailscout/mailscout/types"
)

// defaultDisposableDomains are known throwaway-mailbox providers.
var defaultDisposableDomains = []string{
	"10minutemail.com", "guerrillamail.com", "mailinator.com",
	"temp-mail.org", "throwaway.email", "getnada.com",
	"maildrop.cc", "tempmail.email", "yopmail.com",
	"dispostable.com", "fakeinbox.com", "spambox.us",
}

// defaultInvalidDomains are reserved example/test/placeholder domains that
// never identify a real mailbox.
var defaultInvalidDomains = []string{
	"example.com", "test.com", "domain.com", "yoursite.com",
	"yourdomain.com", "email.com", "localhost",
}

// DefaultDisposableDomains returns a copy of the built-in disposable set.
func DefaultDisposableDomains() []string {
	return append([]string(nil), defaultDisposableDomains...)
}

// DefaultInvalidDomains returns a copy of the built-in invalid/test set.
func DefaultInvalidDomains() []string {
	return append([]string(nil), defaultInvalidDomains...)
}

// BlacklistConfig holds the two domain sets. Nil slices select the built-in
// defaults; the sets are copied at construction and never mutated afterwards.
type BlacklistConfig struct {
	DisposableDomains []string
	InvalidDomains    []string
}

// BlacklistChecker rejects addresses whose domain is a known disposable
// provider or a reserved placeholder domain.
type BlacklistChecker struct {
	disposable map[string]bool
	invalid    map[string]bool
}

// NewBlacklistChecker creates a BlacklistChecker from cfg.
func NewBlacklistChecker(cfg BlacklistConfig) *BlacklistChecker {
	if cfg.DisposableDomains == nil {
		cfg.DisposableDomains = defaultDisposableDomains
	}
	if cfg.InvalidDomains == nil {
		cfg.InvalidDomains = defaultInvalidDomains
	}
	return &BlacklistChecker{
		disposable: toSet(cfg.DisposableDomains),
		invalid:    toSet(cfg.InvalidDomains),
	}
}

// Check looks up the address's domain in both sets. When both match, the
// disposable verdict wins.
func (c *BlacklistChecker) Check(_ context.Context, email parse.Email) types.CheckResult {
	details := &types.BlacklistDetails{
		Domain:        email.Domain,
		Disposable:    c.disposable[email.Domain],
		InvalidDomain: c.invalid[email.Domain],
	}

	cr := types.CheckResult{
		Level:     types.LevelBlacklist,
		Blacklist: details,
	}

	switch {
	case details.Disposable:
		cr.Details = "Disposable email address"
	case details.InvalidDomain:
		cr.Details = "Invalid/test domain"
	case details.Blacklisted():
		cr.Details = "Domain is blacklisted"
	default:
		cr.Passed = true
		cr.Details = "domain not blacklisted"
	}
	return cr
}

func toSet(domains []string) map[string]bool {
	set := make(map[string]bool, len(domains))
	for _, d := range domains {
		set[d] = true
	}
	return set
}
