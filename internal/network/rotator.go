package network

import (
	"errors"
	"net/url"
	"sync"
	"time"

	fhttp "github.com/bogdanfinn/fhttp"
)

var ErrNoProxies = errors.New("no proxies available")

// Blocked reports whether status means the site refused the proxy that
// carried the request.
func Blocked(status int) bool {
	return status == fhttp.StatusForbidden || status == fhttp.StatusTooManyRequests
}

// Rotator hands out proxies round-robin. A proxy that gets blocked sits out
// for banDuration so the next fetch of a listing or posting goes through
// another one.
type Rotator struct {
	mu          sync.Mutex
	proxies     []*url.URL
	banDuration time.Duration
	bannedUntil map[string]time.Time
	next        int
	now         func() time.Time
}

func NewRotator(raw []string, banDuration time.Duration) (*Rotator, error) {
	rotator := &Rotator{
		banDuration: banDuration,
		bannedUntil: map[string]time.Time{},
		now:         time.Now,
	}
	for _, proxy := range raw {
		u, err := url.Parse(proxy)
		if err != nil {
			return nil, err
		}
		rotator.proxies = append(rotator.proxies, u)
	}
	return rotator, nil
}

// Next returns the next proxy that is not sitting out a ban.
func (r *Rotator) Next() (*url.URL, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for range r.proxies {
		proxy := r.proxies[r.next]
		r.next = (r.next + 1) % len(r.proxies)
		if r.usable(proxy) {
			return proxy, nil
		}
	}
	return nil, ErrNoProxies
}

// Available reports whether Next would return a proxy.
func (r *Rotator) Available() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, proxy := range r.proxies {
		if r.usable(proxy) {
			return true
		}
	}
	return false
}

// Report bans proxy when status is Blocked.
func (r *Rotator) Report(proxy *url.URL, status int) {
	if proxy == nil || !Blocked(status) {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.bannedUntil[proxy.String()] = r.now().Add(r.banDuration)
}

func (r *Rotator) usable(proxy *url.URL) bool {
	until, ok := r.bannedUntil[proxy.String()]
	if !ok {
		return true
	}
	if r.now().After(until) {
		delete(r.bannedUntil, proxy.String())
		return true
	}
	return false
}
