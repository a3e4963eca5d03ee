package mailscout

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/mailscout/mailscout/check"
	"github.com/mailscout/mailscout/internal/dnscache"
	"github.com/mailscout/mailscout/internal/parse"
	"github.com/mailscout/mailscout/internal/smtpprobe"
	"github.com/mailscout/mailscout/types"
)

// checker is the internal interface for all validation stages.
// Every check/ package type implements this.
type checker interface {
	Check(ctx context.Context, email parse.Email) types.CheckResult
}

// Validator is the main fluent builder struct.
// Instantiate with the New() function.
type Validator struct {
	checkers []checker
	err      error // configuration error, returned on Validate()
	dnsCache *dnscache.Cache
	// networkBound is set once a DNS or SMTP stage is configured; it gates
	// the inter-call delay in ValidateMany.
	networkBound bool
}

// New creates a new Validator. By default it only performs syntax checking.
// Syntax checking always runs and cannot be disabled, because a well-formed
// address is a prerequisite for the other stages.
func New() *Validator {
	return &Validator{
		checkers: []checker{
			check.NewSyntaxChecker(),
		},
	}
}

// WithBlacklist adds the domain blacklist stage to the pipeline: known
// disposable providers and reserved example/test domains.
// Optionally overrides the built-in domain sets.
func (v *Validator) WithBlacklist(opts ...BlacklistOptions) *Validator {
	o := BlacklistOptions{}
	if len(opts) > 0 {
		o = opts[0]
	}
	v.checkers = append(v.checkers, check.NewBlacklistChecker(check.BlacklistConfig{
		DisposableDomains: o.DisposableDomains,
		InvalidDomains:    o.InvalidDomains,
	}))
	return v
}

// WithDNS adds MX lookup validation to the pipeline.
// Optionally overrides the default DNSOptions.
// MX lookup results are cached and shared with the SMTP stage.
func (v *Validator) WithDNS(opts ...DNSOptions) *Validator {
	o := defaultDNSOptions()
	if len(opts) > 0 {
		o = opts[0]
	}
	v.ensureDNSCache(o.Timeout)
	v.checkers = append(v.checkers, check.NewDNSCheckerWithLookup(
		check.DNSConfig{
			Timeout:     o.Timeout,
			FallbackToA: o.FallbackToA,
		},
		v.dnsCache.LookupMX,
		v.dnsCache.LookupA,
	))
	v.networkBound = true
	return v
}

// WithSMTP adds the SMTP RCPT TO probe to the pipeline. The probe connects
// to the domain's first mail exchanger, walks HELO, MAIL FROM and RCPT TO,
// and never sends a message body. Unset options fall back to defaults,
// including placeholder HELO/MAIL FROM identities.
func (v *Validator) WithSMTP(opts ...SMTPOptions) *Validator {
	o := defaultSMTPOptions()
	if len(opts) > 0 {
		def := o
		o = opts[0]
		if o.HeloDomain == "" {
			o.HeloDomain = def.HeloDomain
		}
		if o.MailFrom == "" {
			o.MailFrom = def.MailFrom
		}
		if o.ConnectTimeout == 0 {
			o.ConnectTimeout = def.ConnectTimeout
		}
		if o.CommandTimeout == 0 {
			o.CommandTimeout = def.CommandTimeout
		}
		if o.MaxMXHosts == 0 {
			o.MaxMXHosts = def.MaxMXHosts
		}
		if o.Port == "" {
			o.Port = def.Port
		}
	}

	// Ensure the DNS cache exists (the SMTP stage shares it for MX lookups).
	v.ensureDNSCache(o.ConnectTimeout)

	v.checkers = append(v.checkers, check.NewSMTPChecker(
		check.SMTPConfig{
			Probe: smtpprobe.Config{
				HeloDomain:     o.HeloDomain,
				MailFrom:       o.MailFrom,
				Port:           o.Port,
				ConnectTimeout: o.ConnectTimeout,
				CommandTimeout: o.CommandTimeout,
			},
			MaxMXHosts: o.MaxMXHosts,
		},
		v.dnsCache.LookupMX,
	))
	v.networkBound = true
	return v
}

// ensureDNSCache creates a shared DNS cache if one doesn't exist yet.
func (v *Validator) ensureDNSCache(lookupTimeout time.Duration) {
	if v.dnsCache == nil {
		v.dnsCache = dnscache.New(lookupTimeout, 5*time.Minute)
	}
}

// Validate runs all configured stages on the given email, in order.
// The pipeline short-circuits: if a stage fails, subsequent stages are
// skipped and the Result's ErrorMessage names the problem. An inconclusive
// SMTP probe is recorded but does not invalidate the address.
//
// Stage failures — malformed input, blacklisted domains, unresolvable or
// unreachable servers — are captured as data on the Result, never returned
// as errors; an unexpected internal fault is recovered into a generic
// validation error so a batch always yields one Result per input. The error
// return is reserved for configuration problems.
func (v *Validator) Validate(ctx context.Context, email string) (result Result, err error) {
	if v.err != nil {
		return Result{}, v.err
	}

	parsed := parse.NewEmail(email)
	result = Result{Email: parsed.Address}

	defer func() {
		if r := recover(); r != nil {
			result.Valid = false
			result.ErrorMessage = fmt.Sprintf("Validation error: %v", r)
		}
	}()

	for _, c := range v.checkers {
		cr := c.Check(ctx, parsed)
		result.Checks = append(result.Checks, cr)

		if !cr.Passed {
			result.Valid = false
			result.ErrorMessage = cr.Details
			return result, nil // short-circuit
		}

		// An SMTP stage can pass while still being inconclusive; surface
		// the probe failure without failing the address.
		if cr.Level == types.LevelSMTP && cr.SMTP != nil &&
			cr.SMTP.Status == types.SMTPUnknown && cr.SMTP.Err != "" {
			result.ErrorMessage = "SMTP check failed: " + cr.SMTP.Err
		}
	}

	result.Valid = true
	return result, nil
}

// ValidateSyntax runs the syntax stage alone: a fast well-formedness check
// with no network I/O, regardless of how the Validator is configured.
func (v *Validator) ValidateSyntax(email string) bool {
	return check.ValidSyntax(parse.NewEmail(email))
}

// ValidateAll runs all configured stages without short-circuiting.
// Useful when you want to know exactly which stages fail. ErrorMessage still
// names the first failing stage.
func (v *Validator) ValidateAll(ctx context.Context, email string) (result Result, err error) {
	if v.err != nil {
		return Result{}, v.err
	}

	parsed := parse.NewEmail(email)
	result = Result{Email: parsed.Address, Valid: true}

	defer func() {
		if r := recover(); r != nil {
			result.Valid = false
			result.ErrorMessage = fmt.Sprintf("Validation error: %v", r)
		}
	}()

	for _, c := range v.checkers {
		cr := c.Check(ctx, parsed)
		result.Checks = append(result.Checks, cr)
		if !cr.Passed {
			result.Valid = false
			if result.ErrorMessage == "" {
				result.ErrorMessage = cr.Details
			}
			// don't stop, continue
		}
	}

	return result, nil
}

// ValidateMany validates multiple emails sequentially, preserving input
// order and returning one Result per input. When the pipeline includes
// network-bound stages a fixed delay is inserted between validations so
// bulk runs don't trip anti-abuse rate limiting on remote mail servers;
// that discipline is deliberate, so ValidateMany does not parallelize.
// Cancel the context to abort mid-batch; already-produced results are
// returned alongside the context error.
func (v *Validator) ValidateMany(ctx context.Context, emails []string, opts ...BatchOptions) ([]Result, error) {
	if v.err != nil {
		return nil, v.err
	}

	o := defaultBatchOptions()
	if len(opts) > 0 {
		o = opts[0]
	}
	if o.Delay < 0 {
		return nil, ErrInvalidBatchDelay
	}

	var limiter *rate.Limiter
	if v.networkBound && o.Delay > 0 {
		// One token up front so the first validation starts immediately.
		limiter = rate.NewLimiter(rate.Every(o.Delay), 1)
	}

	results := make([]Result, 0, len(emails))
	for _, e := range emails {
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				return results, err
			}
		}
		res, err := v.Validate(ctx, e)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}
