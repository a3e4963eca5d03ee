package check

import (
	"context"
	"strings"

	"github.com/mailscout/mailscout/internal/dnscache"
	"github.com/mailscout/mailscout/internal/parse"
	"github.com/mailscout/mailscout/internal/smtpprobe"
	"github.com/mailscout/mailscout/types"
)

// SMTPConfig configures the SMTP probe stage.
type SMTPConfig struct {
	Probe smtpprobe.Config
	// MaxMXHosts is how many MX hosts to try, in priority order, before
	// giving up as inconclusive.
	MaxMXHosts int
}

// SMTPChecker asks the domain's mail exchanger whether it accepts mail for
// the address. It reuses the MX records the DNS stage cached.
type SMTPChecker struct {
	cfg      SMTPConfig
	lookupMX dnscache.LookupMXFunc
}

// NewSMTPChecker creates an SMTPChecker. lookupMX is normally the shared
// dnscache method so the probe reuses the DNS stage's answer.
func NewSMTPChecker(cfg SMTPConfig, lookupMX dnscache.LookupMXFunc) *SMTPChecker {
	if cfg.MaxMXHosts <= 0 {
		cfg.MaxMXHosts = 1
	}
	return &SMTPChecker{cfg: cfg, lookupMX: lookupMX}
}

// Check probes up to MaxMXHosts exchangers. A 250 reply confirms the
// mailbox, a 550-class reply rejects it, everything else is inconclusive —
// the checker passes in that case because an ambiguous probe is signal, not
// a verdict. Only SMTPRejected fails the stage.
func (c *SMTPChecker) Check(ctx context.Context, email parse.Email) types.CheckResult {
	details := &types.SMTPDetails{Status: types.SMTPUnknown}
	cr := types.CheckResult{Level: types.LevelSMTP, SMTP: details, Passed: true}

	records, err := c.lookupMX(ctx, email.ASCIIDomain)
	if err != nil || len(records) == 0 {
		// DNS passed on an A-record fallback, or the answer expired. Either
		// way there is no exchanger to ask.
		details.Err = "No MX records found"
		cr.Details = details.Err
		return cr
	}

	hosts := len(records)
	if hosts > c.cfg.MaxMXHosts {
		hosts = c.cfg.MaxMXHosts
	}

	for _, mx := range records[:hosts] {
		out := smtpprobe.Probe(ctx, c.cfg.Probe, strings.TrimSuffix(mx.Host, "."), email.Address)

		details.Status = out.Status
		details.Host = out.Host
		details.Code = out.Code
		details.Message = out.Message
		if out.Err != nil {
			details.Err = out.Err.Error()
		} else {
			details.Err = ""
		}

		switch out.Status {
		case types.SMTPConfirmed:
			cr.Details = "mailbox confirmed"
			return cr
		case types.SMTPRejected:
			cr.Passed = false
			cr.Details = "Email address does not exist on server"
			return cr
		}
		// Inconclusive. Try the next host, keeping the last outcome.
	}

	if details.Err != "" {
		cr.Details = details.Err
	} else {
		cr.Details = "inconclusive SMTP probe"
	}
	return cr
}
