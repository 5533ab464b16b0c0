package http

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/erpbridge/odoorest/config/encoding"
	"github.com/erpbridge/odoorest/metrics"
)

// ErrRateLimited is wrapped by the errors of RateLimit.NewRequest.
var ErrRateLimited = errors.New("rate-limited")

type RateLimitConfig struct {
	CoolDown encoding.Duration `long:"coolDown" description:"minimal delay between two requests of a client, e.g. 500ms, 10s, 0 disables"`

	AllowList []string `long:"allowList" description:"a list of ip/subnets, e.g. 10.0.0.0/8, 192.168.0.0/16"`

	allowList []net.IPNet
}

// RateLimit grants one request per client and cool down. A client coming
// back too early is pushed back by another cool down.
type RateLimit struct {
	cfg RateLimitConfig
	// map of any_identifier -> time until request can be allowed
	requests map[string]time.Time

	mu sync.Mutex
}

func NewRateLimit(ctx context.Context, cfg RateLimitConfig) (*RateLimit, error) {
	cfg.allowList = make([]net.IPNet, len(cfg.AllowList))
	for i, allowItem := range cfg.AllowList {
		_, ipnet, err := net.ParseCIDR(allowItem)
		if err != nil {
			return nil, fmt.Errorf("failed to parse AllowList entry: %s", allowItem)
		}
		cfg.allowList[i] = *ipnet
	}
	r := &RateLimit{
		cfg:      cfg,
		requests: map[string]time.Time{},
	}
	go r.startCleanup(ctx)
	return r, nil
}

// NewRequest returns nil if the rate has not been exceeded
func (r *RateLimit) NewRequest(prefix, ip string) error {
	if r.cfg.CoolDown.Duration <= 0 {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.isAllowListed(ip) {
		return nil
	}

	identifier := fmt.Sprintf("%s %s", prefix, ip)
	until := r.requests[identifier]
	// the entry may be expired and not cleaned up yet
	if time.Now().Before(until) {
		r.requests[identifier] = until.Add(r.cfg.CoolDown.Duration)
		metrics.RateLimited(prefix)
		return fmt.Errorf("%w (%s for %s) until %v", ErrRateLimited, prefix, ip, r.requests[identifier].Format(time.RFC3339))
	}

	r.requests[identifier] = time.Now().Add(r.cfg.CoolDown.Duration)

	return nil
}

func (r *RateLimit) isAllowListed(ip string) bool {
	netIP := net.ParseIP(ip)
	for _, allowItem := range r.cfg.allowList {
		if allowItem.Contains(netIP) {
			return true
		}
	}
	return false
}

func (r *RateLimit) startCleanup(ctx context.Context) {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			now := time.Now()
			r.mu.Lock()
			for identifier, until := range r.requests {
				if until.Before(now) {
					delete(r.requests, identifier)
				}
			}
			r.mu.Unlock()
		}
	}
}
