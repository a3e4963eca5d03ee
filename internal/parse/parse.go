// Package parse normalizes candidate email addresses before validation.
package parse

import (
	"strings"

	"golang.org/x/net/idna"
)

// Email is a normalized candidate address. Address is the trimmed,
// lower-cased input; Local and Domain are the parts around the last "@".
// ASCIIDomain is the punycode form of the domain so that internationalized
// domains pass the ASCII grammar and resolve over DNS.
type Email struct {
	Address     string
	Local       string
	Domain      string
	ASCIIDomain string
}

// NewEmail normalizes the raw input. It never fails: a string without "@"
// yields an Email with empty Local and Domain, which the syntax stage
// rejects.
func NewEmail(raw string) Email {
	addr := strings.ToLower(strings.TrimSpace(raw))
	e := Email{Address: addr}

	at := strings.LastIndex(addr, "@")
	if at < 0 {
		return e
	}
	e.Local = addr[:at]
	e.Domain = addr[at+1:]
	e.ASCIIDomain = e.Domain

	if ascii, err := idna.Lookup.ToASCII(e.Domain); err == nil && ascii != "" {
		e.ASCIIDomain = ascii
	}
	return e
}

// HasParts reports whether the address split into a non-empty local part and
// domain.
func (e Email) HasParts() bool {
	return e.Local != "" && e.Domain != ""
}
