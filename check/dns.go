package check

import (
	"context"
	"errors"
	"net"
	"strings"
	"time"

	"github.com/mailscout/mailscout/internal/dnscache"
	"github.com/mailscout/mailscout/internal/parse"
	"github.com/mailscout/mailscout/types"
)

// DNSConfig configures the DNS stage.
type DNSConfig struct {
	Timeout     time.Duration
	FallbackToA bool
}

// DNSChecker verifies that the address's domain can receive mail at the DNS
// level: it has MX records, or (with FallbackToA) at least an A record.
type DNSChecker struct {
	cfg      DNSConfig
	lookupMX dnscache.LookupMXFunc
	lookupA  dnscache.LookupAFunc
}

// NewDNSCheckerWithLookup creates a DNSChecker using the given lookup
// functions, normally the shared dnscache methods. Tests inject fakes here.
func NewDNSCheckerWithLookup(cfg DNSConfig, lookupMX dnscache.LookupMXFunc, lookupA dnscache.LookupAFunc) *DNSChecker {
	return &DNSChecker{cfg: cfg, lookupMX: lookupMX, lookupA: lookupA}
}

// Check resolves MX records for the domain, falling back to A records as a
// weaker deliverability signal. Resolution failures are recorded as data,
// never returned as errors.
func (c *DNSChecker) Check(ctx context.Context, email parse.Email) types.CheckResult {
	details := &types.DNSDetails{MXHosts: []string{}}
	cr := types.CheckResult{Level: types.LevelDNS, DNS: details}

	domain := email.ASCIIDomain

	records, err := c.lookupMX(ctx, domain)
	switch {
	case err == nil && len(records) > 0:
		details.HasMX = true
		for _, mx := range records {
			details.MXHosts = append(details.MXHosts, strings.TrimSuffix(mx.Host, "."))
		}
	case err != nil && !notFound(err):
		// A real resolver failure, not just an empty answer.
		details.Err = resolveErrText(err)
	}

	if !details.HasMX && c.cfg.FallbackToA {
		ips, aErr := c.lookupA(ctx, domain)
		if aErr == nil && len(ips) > 0 {
			details.HasA = true
		} else if aErr != nil && !notFound(aErr) && details.Err == "" {
			details.Err = resolveErrText(aErr)
		}
	}

	if details.HasMX || details.HasA {
		cr.Passed = true
		cr.Details = "deliverable DNS records found"
		return cr
	}

	if details.Err != "" {
		cr.Details = details.Err
	} else {
		cr.Details = "No valid DNS records found"
	}
	return cr
}

// notFound reports whether err is the resolver's "domain does not exist" or
// "no answer of this type" condition, as opposed to a transport failure.
func notFound(err error) bool {
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr) && dnsErr.IsNotFound
}

func resolveErrText(err error) string {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) && dnsErr.IsTimeout {
		return "DNS lookup timeout"
	}
	return err.Error()
}
