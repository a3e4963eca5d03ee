// Package check implements the individual validation stages. Each checker
// runs one stage against a parsed address and reports a CheckResult; the
// root package drives them in order and short-circuits on failure.
package check

import (
	"context"
	"regexp"
	"strings"

	"github.com/mailscout/mailscout/internal/parse"
	"github.com/mailscout/mailscout/types"
)

// RFC 5321 length limits.
const (
	maxEmailLength  = 254
	maxLocalLength  = 64
	maxDomainLength = 253
)

// Conservative RFC 5322 grammar: dot-atom local part, alphanumeric labels
// with optional inner hyphens. Single-label domains pass here on purpose;
// the blacklist stage owns rejecting placeholder hosts like "localhost".
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)

// SyntaxChecker validates the syntactic shape of an address. It is always
// the first stage and performs no network I/O.
type SyntaxChecker struct{}

// NewSyntaxChecker creates a SyntaxChecker.
func NewSyntaxChecker() *SyntaxChecker {
	return &SyntaxChecker{}
}

// Check reports whether the address is well-formed.
func (c *SyntaxChecker) Check(_ context.Context, email parse.Email) types.CheckResult {
	cr := types.CheckResult{Level: types.LevelSyntax}

	if ValidSyntax(email) {
		cr.Passed = true
		cr.Details = "syntax ok"
	} else {
		cr.Details = "Invalid email format"
	}
	return cr
}

// ValidSyntax applies the full syntactic rule set to a parsed address.
func ValidSyntax(email parse.Email) bool {
	addr := email.Address
	if addr == "" || len(addr) > maxEmailLength {
		return false
	}
	if !email.HasParts() {
		return false
	}

	// The grammar is ASCII; internationalized domains are matched in their
	// punycode form.
	if !emailRegex.MatchString(email.Local + "@" + email.ASCIIDomain) {
		return false
	}

	local, domain := email.Local, email.Domain
	if len(local) > maxLocalLength || len(domain) > maxDomainLength {
		return false
	}
	if strings.HasPrefix(local, ".") || strings.HasSuffix(local, ".") {
		return false
	}
	if strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	if strings.Contains(local, "..") || strings.Contains(domain, "..") {
		return false
	}
	return true
}
