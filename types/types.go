// Package types holds the result types shared between the mailscout root
// package and the check packages.
package types

// CheckLevel identifies a validation stage.
type CheckLevel string

const (
	LevelSyntax    CheckLevel = "syntax"
	LevelBlacklist CheckLevel = "blacklist"
	LevelDNS       CheckLevel = "dns"
	LevelSMTP      CheckLevel = "smtp"
)

// SMTPStatus is the tri-state outcome of the SMTP probe. Unlike the other
// stages a probe can end without a verdict: many servers answer RCPT TO with
// deliberately ambiguous codes, and network failures prove nothing about the
// mailbox. Only Rejected invalidates an address.
type SMTPStatus string

const (
	// SMTPUnknown means the probe did not run or was inconclusive.
	SMTPUnknown SMTPStatus = "unknown"
	// SMTPConfirmed means the server accepted RCPT TO (250).
	SMTPConfirmed SMTPStatus = "confirmed"
	// SMTPRejected means the server reported the mailbox as non-existent (550).
	SMTPRejected SMTPStatus = "rejected"
)

// CheckResult is the outcome of a single validation stage. The per-stage
// detail pointers are populated only by the stage they belong to.
type CheckResult struct {
	Level   CheckLevel `json:"level"`
	Passed  bool       `json:"passed"`
	Details string     `json:"details,omitempty"`

	Blacklist *BlacklistDetails `json:"blacklist,omitempty"`
	DNS       *DNSDetails       `json:"dns,omitempty"`
	SMTP      *SMTPDetails      `json:"smtp,omitempty"`
}

// BlacklistDetails records which blacklist category matched, if any.
type BlacklistDetails struct {
	Domain        string `json:"domain"`
	Disposable    bool   `json:"disposable"`
	InvalidDomain bool   `json:"invalid_domain"`
}

// Blacklisted reports whether any category matched.
func (b BlacklistDetails) Blacklisted() bool {
	return b.Disposable || b.InvalidDomain
}

// DNSDetails records what the resolver found for the domain.
type DNSDetails struct {
	HasMX bool `json:"has_mx"`
	HasA  bool `json:"has_a"`
	// MXHosts are the MX targets in priority order. May be empty when the
	// domain only resolved via A records.
	MXHosts []string `json:"mx_records"`
	Err     string   `json:"error,omitempty"`
}

// SMTPDetails records the raw outcome of the RCPT TO probe.
type SMTPDetails struct {
	Status SMTPStatus `json:"status"`
	// Host is the mail exchanger that was probed.
	Host string `json:"host,omitempty"`
	// Code and Message are the raw RCPT TO reply, when one was received.
	Code    int    `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
	Err     string `json:"error,omitempty"`
}
