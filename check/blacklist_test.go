package check

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mailscout/mailscout/internal/parse"
	"github.com/mailscout/mailscout/types"
)

func TestBlacklistChecker_Defaults(t *testing.T) {
	c := NewBlacklistChecker(BlacklistConfig{})
	ctx := context.Background()

	tests := []struct {
		email      string
		passed     bool
		details    string
		disposable bool
		invalid    bool
	}{
		{"user@gmail.com", true, "domain not blacklisted", false, false},
		{"user@mailinator.com", false, "Disposable email address", true, false},
		{"user@10minutemail.com", false, "Disposable email address", true, false},
		{"user@example.com", false, "Invalid/test domain", false, true},
		{"user@localhost", false, "Invalid/test domain", false, true},
	}

	for _, tt := range tests {
		cr := c.Check(ctx, parse.NewEmail(tt.email))
		assert.Equal(t, types.LevelBlacklist, cr.Level, tt.email)
		assert.Equal(t, tt.passed, cr.Passed, tt.email)
		assert.Equal(t, tt.details, cr.Details, tt.email)
		assert.Equal(t, tt.disposable, cr.Blacklist.Disposable, tt.email)
		assert.Equal(t, tt.invalid, cr.Blacklist.InvalidDomain, tt.email)
	}
}

func TestBlacklistChecker_DisposableWinsOverInvalid(t *testing.T) {
	c := NewBlacklistChecker(BlacklistConfig{
		DisposableDomains: []string{"both.test"},
		InvalidDomains:    []string{"both.test"},
	})

	cr := c.Check(context.Background(), parse.NewEmail("user@both.test"))
	assert.False(t, cr.Passed)
	assert.Equal(t, "Disposable email address", cr.Details)
	assert.True(t, cr.Blacklist.Disposable)
	assert.True(t, cr.Blacklist.InvalidDomain)
}

func TestBlacklistChecker_CustomSetsReplaceDefaults(t *testing.T) {
	c := NewBlacklistChecker(BlacklistConfig{
		DisposableDomains: []string{"burner.test"},
		InvalidDomains:    []string{},
	})
	ctx := context.Background()

	cr := c.Check(ctx, parse.NewEmail("user@burner.test"))
	assert.False(t, cr.Passed)

	// The built-in sets are out of play once replacements are given.
	cr = c.Check(ctx, parse.NewEmail("user@mailinator.com"))
	assert.True(t, cr.Passed)
	cr = c.Check(ctx, parse.NewEmail("user@example.com"))
	assert.True(t, cr.Passed)
}

func TestBlacklistChecker_DomainRecorded(t *testing.T) {
	c := NewBlacklistChecker(BlacklistConfig{})

	cr := c.Check(context.Background(), parse.NewEmail("User@Gmail.com"))
	assert.True(t, cr.Passed)
	assert.Equal(t, "gmail.com", cr.Blacklist.Domain)
}
