package server

import (
	"encoding/json"
	"log/slog"
	"math"
	"net"
	"net/http"
	"net/netip"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/osse101/ColonyPlanner_Go/internal/metrics"
)

// RequestSizeLimitMiddleware limits request body size
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// RateLimiter counts requests per client IP over a fixed window
type RateLimiter struct {
	mu          sync.Mutex
	limit       int
	window      time.Duration
	countByIP   map[string]int
	windowStart time.Time
	now         func() time.Time
}

// NewRateLimiter allows limit requests per IP in each window
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:       limit,
		window:      window,
		countByIP:   make(map[string]int),
		windowStart: time.Now(),
		now:         time.Now,
	}
}

// Allow records a request from ip. When the budget is spent it returns false
// and the time left until the window resets.
func (l *RateLimiter) Allow(ip string) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.windowStart) >= l.window {
		clear(l.countByIP)
		l.windowStart = now
	}

	l.countByIP[ip]++
	count := l.countByIP[ip]
	if count <= l.limit {
		return true, 0
	}

	if count%RateLimitAlertEvery == 0 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", count, "window", l.window)
	}
	return false, l.window - now.Sub(l.windowStart)
}

// RateLimitMiddleware rejects clients that exceed the limiter's budget with a
// JSON 429 and a Retry-After header
func RateLimitMiddleware(trusted TrustedProxies, limiter *RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			allowed, retryAfter := limiter.Allow(extractIP(r, trusted))
			if !allowed {
				metrics.HTTPRateLimited.Inc()
				w.Header().Set(HeaderRetryAfter, strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_ = json.NewEncoder(w).Encode(map[string]string{
					"error": ErrMsgTooManyRequests,
					"code":  CodeRateLimited,
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// TrustedProxies lists the peers allowed to set X-Forwarded-For
type TrustedProxies []netip.Prefix

// ParseTrustedProxies accepts single addresses and CIDR prefixes. Entries that
// parse as neither are returned in rejected.
func ParseTrustedProxies(entries []string) (trusted TrustedProxies, rejected []string) {
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if prefix, err := netip.ParsePrefix(entry); err == nil {
			trusted = append(trusted, prefix.Masked())
			continue
		}
		if addr, err := netip.ParseAddr(entry); err == nil {
			trusted = append(trusted, netip.PrefixFrom(addr, addr.BitLen()))
			continue
		}
		rejected = append(rejected, entry)
	}
	return trusted, rejected
}

// Contains reports whether ip falls inside any trusted prefix
func (t TrustedProxies) Contains(ip string) bool {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, prefix := range t {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}

// extractIP returns the client address. X-Forwarded-For is only honoured when
// the peer is a trusted proxy, and then only its rightmost hop.
func extractIP(r *http.Request, trusted TrustedProxies) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	if trusted.Contains(remoteIP) {
		if forwarded := r.Header.Get(HeaderForwardedFor); forwarded != "" {
			hops := strings.Split(forwarded, ",")
			if hop := strings.TrimSpace(hops[len(hops)-1]); hop != "" {
				return hop
			}
		}
	}

	return remoteIP
}

// SecurityHeadersMiddleware adds security headers to responses. Plans depend
// on the loaded catalog, so API responses are never cached.
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set(HeaderContentTypeOptions, HeaderValueNoSniff)
			h.Set(HeaderFrameOptions, HeaderValueDeny)
			h.Set(HeaderReferrerPolicy, HeaderValueNoReferrer)
			if strings.HasPrefix(r.URL.Path, APIPrefix) {
				h.Set(HeaderCacheControl, HeaderValueNoStore)
			}

			next.ServeHTTP(w, r)
		})
	}
}
