// Package dnscache provides TTL-cached MX and A lookups bounded by a
// per-query timeout. The cache is shared between the DNS stage and the SMTP
// stage so a probe reuses the MX records the DNS stage already fetched.
package dnscache

import (
	"context"
	"net"
	"sort"
	"sync"
	"time"
)

// LookupMXFunc matches Cache.LookupMX so checkers can take an injected
// lookup in tests.
type LookupMXFunc func(ctx context.Context, domain string) ([]*net.MX, error)

// LookupAFunc matches Cache.LookupA.
type LookupAFunc func(ctx context.Context, domain string) ([]net.IP, error)

type mxEntry struct {
	records []*net.MX
	err     error
	expires time.Time
}

type aEntry struct {
	ips     []net.IP
	err     error
	expires time.Time
}

// resolver is the subset of net.Resolver the cache uses.
type resolver interface {
	LookupMX(ctx context.Context, name string) ([]*net.MX, error)
	LookupIPAddr(ctx context.Context, host string) ([]net.IPAddr, error)
}

// Cache caches resolver answers, including negative ones. Negative caching
// matters here: the SMTP stage re-asks for the MX records the DNS stage just
// fetched, and a batch run hits the same domains repeatedly.
type Cache struct {
	resolver resolver
	timeout  time.Duration
	ttl      time.Duration

	mu sync.Mutex
	mx map[string]mxEntry
	a  map[string]aEntry
}

// New creates a Cache. Every lookup is bounded by timeout; answers are kept
// for ttl.
func New(timeout, ttl time.Duration) *Cache {
	return newWithResolver(&net.Resolver{}, timeout, ttl)
}

func newWithResolver(r resolver, timeout, ttl time.Duration) *Cache {
	return &Cache{
		resolver: r,
		timeout:  timeout,
		ttl:      ttl,
		mx:       make(map[string]mxEntry),
		a:        make(map[string]aEntry),
	}
}

// LookupMX returns the domain's MX records sorted by preference
// (lowest first).
func (c *Cache) LookupMX(ctx context.Context, domain string) ([]*net.MX, error) {
	c.mu.Lock()
	if e, ok := c.mx[domain]; ok && time.Now().Before(e.expires) {
		c.mu.Unlock()
		return e.records, e.err
	}
	c.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	records, err := c.resolver.LookupMX(ctx, domain)
	if err == nil {
		sort.Slice(records, func(i, j int) bool {
			return records[i].Pref < records[j].Pref
		})
	}

	c.mu.Lock()
	c.mx[domain] = mxEntry{records: records, err: err, expires: time.Now().Add(c.ttl)}
	c.mu.Unlock()

	return records, err
}

// LookupA returns the domain's IP addresses.
func (c *Cache) LookupA(ctx context.Context, domain string) ([]net.IP, error) {
	c.mu.Lock()
	if e, ok := c.a[domain]; ok && time.Now().Before(e.expires) {
		c.mu.Unlock()
		return e.ips, e.err
	}
	c.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	addrs, err := c.resolver.LookupIPAddr(ctx, domain)
	ips := make([]net.IP, 0, len(addrs))
	for _, a := range addrs {
		ips = append(ips, a.IP)
	}

	c.mu.Lock()
	c.a[domain] = aEntry{ips: ips, err: err, expires: time.Now().Add(c.ttl)}
	c.mu.Unlock()

	return ips, err
}
