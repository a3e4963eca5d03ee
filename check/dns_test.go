package check

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mailscout/mailscout/internal/parse"
	"github.com/mailscout/mailscout/types"
)

var errNotFound = &net.DNSError{Err: "no such host", IsNotFound: true}

func mxLookup(records []*net.MX, err error) func(context.Context, string) ([]*net.MX, error) {
	return func(context.Context, string) ([]*net.MX, error) { return records, err }
}

func aLookup(ips []net.IP, err error) func(context.Context, string) ([]net.IP, error) {
	return func(context.Context, string) ([]net.IP, error) { return ips, err }
}

func TestDNSChecker_MXFound(t *testing.T) {
	c := NewDNSCheckerWithLookup(
		DNSConfig{Timeout: time.Second, FallbackToA: true},
		mxLookup([]*net.MX{{Host: "mx1.example.net.", Pref: 10}, {Host: "mx2.example.net.", Pref: 20}}, nil),
		aLookup(nil, errNotFound),
	)

	cr := c.Check(context.Background(), parse.NewEmail("user@resolvable.net"))
	assert.Equal(t, types.LevelDNS, cr.Level)
	assert.True(t, cr.Passed)
	assert.True(t, cr.DNS.HasMX)
	assert.False(t, cr.DNS.HasA)
	assert.Equal(t, []string{"mx1.example.net", "mx2.example.net"}, cr.DNS.MXHosts)
	assert.Empty(t, cr.DNS.Err)
}

func TestDNSChecker_AFallback(t *testing.T) {
	c := NewDNSCheckerWithLookup(
		DNSConfig{Timeout: time.Second, FallbackToA: true},
		mxLookup(nil, errNotFound),
		aLookup([]net.IP{net.ParseIP("192.0.2.10")}, nil),
	)

	cr := c.Check(context.Background(), parse.NewEmail("user@web-only.net"))
	assert.True(t, cr.Passed)
	assert.False(t, cr.DNS.HasMX)
	assert.True(t, cr.DNS.HasA)
	assert.Empty(t, cr.DNS.MXHosts)
}

func TestDNSChecker_FallbackDisabled(t *testing.T) {
	c := NewDNSCheckerWithLookup(
		DNSConfig{Timeout: time.Second, FallbackToA: false},
		mxLookup(nil, errNotFound),
		aLookup([]net.IP{net.ParseIP("192.0.2.10")}, nil),
	)

	cr := c.Check(context.Background(), parse.NewEmail("user@web-only.net"))
	assert.False(t, cr.Passed)
	assert.Equal(t, "No valid DNS records found", cr.Details)
}

func TestDNSChecker_NothingResolves(t *testing.T) {
	c := NewDNSCheckerWithLookup(
		DNSConfig{Timeout: time.Second, FallbackToA: true},
		mxLookup(nil, errNotFound),
		aLookup(nil, errNotFound),
	)

	cr := c.Check(context.Background(), parse.NewEmail("user@nonexistent-domain-xyz123.invalid"))
	assert.False(t, cr.Passed)
	assert.False(t, cr.DNS.HasMX)
	assert.False(t, cr.DNS.HasA)
	assert.Equal(t, "No valid DNS records found", cr.Details)
}

func TestDNSChecker_ResolverTimeout(t *testing.T) {
	timeoutErr := &net.DNSError{Err: "i/o timeout", IsTimeout: true}
	c := NewDNSCheckerWithLookup(
		DNSConfig{Timeout: time.Second, FallbackToA: true},
		mxLookup(nil, timeoutErr),
		aLookup(nil, timeoutErr),
	)

	cr := c.Check(context.Background(), parse.NewEmail("user@slow.net"))
	assert.False(t, cr.Passed)
	assert.Equal(t, "DNS lookup timeout", cr.Details)
	assert.Equal(t, "DNS lookup timeout", cr.DNS.Err)
}
