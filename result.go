package mailscout

import "github.com/mailscout/mailscout/types"

// Result is the full outcome of an email validation.
// The Valid field is true only if all configured checks passed; an
// inconclusive SMTP probe does not by itself invalidate an address.
type Result struct {
	// Email is the normalized (trimmed, lower-cased) address under
	// evaluation.
	Email string `json:"email"`
	Valid bool   `json:"valid"`
	// ErrorMessage explains the first stage that failed or produced an
	// inconclusive outcome. Empty when no stage reported a problem.
	ErrorMessage string        `json:"error_message,omitempty"`
	Checks       []CheckResult `json:"checks"`
}

// FailedChecks returns those CheckResults that did not pass.
func (r Result) FailedChecks() []CheckResult {
	var out []CheckResult
	for _, c := range r.Checks {
		if !c.Passed {
			out = append(out, c)
		}
	}
	return out
}

// CheckFor returns the CheckResult for the given level, if it exists.
// The second return value indicates whether the given level was executed.
func (r Result) CheckFor(level CheckLevel) (CheckResult, bool) {
	for _, c := range r.Checks {
		if c.Level == level {
			return c, true
		}
	}
	return CheckResult{}, false
}

// SMTPStatus returns the tri-state SMTP probe outcome. SMTPUnknown when the
// stage was skipped, never ran, or was inconclusive.
func (r Result) SMTPStatus() SMTPStatus {
	if c, ok := r.CheckFor(LevelSMTP); ok && c.SMTP != nil {
		return c.SMTP.Status
	}
	return types.SMTPUnknown
}
