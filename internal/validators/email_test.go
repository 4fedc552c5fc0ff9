package validators

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeResolver struct {
	mx  map[string]bool
	ips map[string]bool
}

func (f fakeResolver) LookupMX(_ context.Context, name string) ([]*net.MX, error) {
	if f.mx[name] {
		return []*net.MX{{Host: "mx." + name, Pref: 10}}, nil
	}
	return nil, errors.New("no such host")
}

func (f fakeResolver) LookupIPAddr(_ context.Context, host string) ([]net.IPAddr, error) {
	if f.ips[host] {
		return []net.IPAddr{{IP: net.IPv4(10, 0, 0, 1)}}, nil
	}
	return nil, errors.New("no such host")
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "owner@gym.io", NormalizeEmail("  Owner@Gym.IO "))
}

func TestEmailDomainChecker(t *testing.T) {
	c := &EmailDomainChecker{Resolver: fakeResolver{
		mx:  map[string]bool{"mail.io": true},
		ips: map[string]bool{"web.io": true},
	}}
	ctx := context.Background()

	assert.True(t, c.Check(ctx, "a@mail.io"))
	assert.True(t, c.Check(ctx, "a@web.io"))
	assert.False(t, c.Check(ctx, "a@nowhere.io"))
	assert.False(t, c.Check(ctx, "no-at-sign"))
	assert.False(t, c.Check(ctx, "trailing@"))
}
