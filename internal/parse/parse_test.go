package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewEmail_Normalizes(t *testing.T) {
	e := NewEmail("  User@Example.COM\t")
	assert.Equal(t, "user@example.com", e.Address)
	assert.Equal(t, "user", e.Local)
	assert.Equal(t, "example.com", e.Domain)
	assert.Equal(t, "example.com", e.ASCIIDomain)
	assert.True(t, e.HasParts())
}

func TestNewEmail_SplitsAtLastAt(t *testing.T) {
	e := NewEmail(`"odd"@left@example.com`)
	assert.Equal(t, `"odd"@left`, e.Local)
	assert.Equal(t, "example.com", e.Domain)
}

func TestNewEmail_NoAtSign(t *testing.T) {
	e := NewEmail("not-an-email")
	assert.Equal(t, "not-an-email", e.Address)
	assert.Empty(t, e.Local)
	assert.Empty(t, e.Domain)
	assert.False(t, e.HasParts())
}

func TestNewEmail_IDNToPunycode(t *testing.T) {
	e := NewEmail("user@münchen.de")
	assert.Equal(t, "münchen.de", e.Domain)
	assert.Equal(t, "xn--mnchen-3ya.de", e.ASCIIDomain)
}

func TestNewEmail_EmptyParts(t *testing.T) {
	assert.False(t, NewEmail("@example.com").HasParts())
	assert.False(t, NewEmail("user@").HasParts())
	assert.False(t, NewEmail("").HasParts())
}
