package validators

import (
	"context"
	"net"
	"strings"
	"time"
)

// NormalizeEmail is the stored and looked-up form of an address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func emailDomain(email string) (string, bool) {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return "", false
	}
	return email[at+1:], true
}

// DomainResolver is the subset of *net.Resolver the check uses.
type DomainResolver interface {
	LookupMX(ctx context.Context, name string) ([]*net.MX, error)
	LookupIPAddr(ctx context.Context, host string) ([]net.IPAddr, error)
}

// EmailDomainChecker accepts an address whose domain has an MX record or,
// failing that, any address record. Lookups share one deadline.
type EmailDomainChecker struct {
	Resolver DomainResolver
	Timeout  time.Duration
}

func NewEmailDomainChecker(timeout time.Duration) *EmailDomainChecker {
	return &EmailDomainChecker{Resolver: net.DefaultResolver, Timeout: timeout}
}

func (c *EmailDomainChecker) Check(ctx context.Context, email string) bool {
	domain, ok := emailDomain(email)
	if !ok {
		return false
	}

	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	if mx, err := c.Resolver.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := c.Resolver.LookupIPAddr(ctx, domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
