// Package mailscout validates email addresses through a sequential
// four-stage pipeline: syntax, domain blacklist, DNS and SMTP. The pipeline
// short-circuits — a stage only runs when every earlier stage passed — and
// captures failures as data on the Result instead of returning errors.
//
// Basic usage:
//
//	result, err := mailscout.New().Validate(ctx, "user@example.com")
//
// Full pipeline:
//
//	result, err := mailscout.New().
//	    WithBlacklist().
//	    WithDNS().
//	    WithSMTP(mailscout.SMTPOptions{
//	        HeloDomain: "myapp.com",
//	        MailFrom:   "verify@myapp.com",
//	    }).
//	    Validate(ctx, "user@example.com")
package mailscout

import "github.com/mailscout/mailscout/types"

// CheckResult is a re-export from the types package so that consumers
// don't need to import the types package directly.
type CheckResult = types.CheckResult

// CheckLevel is a re-export.
type CheckLevel = types.CheckLevel

// SMTPStatus is a re-export of the tri-state SMTP probe outcome.
type SMTPStatus = types.SMTPStatus

// Level constants re-exported.
const (
	LevelSyntax    = types.LevelSyntax
	LevelBlacklist = types.LevelBlacklist
	LevelDNS       = types.LevelDNS
	LevelSMTP      = types.LevelSMTP
)

// SMTP probe status constants re-exported.
const (
	SMTPUnknown   = types.SMTPUnknown
	SMTPConfirmed = types.SMTPConfirmed
	SMTPRejected  = types.SMTPRejected
)
