package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"strings"
	"sync"
	"time"

	"github.com/osse101/DailyPoll_Go/internal/logger"
)

// ProxyResolver derives the client address of a request. X-Forwarded-For is
// honoured only when the direct peer is one of the trusted proxies.
type ProxyResolver struct {
	trusted []netip.Prefix
}

// NewProxyResolver accepts single addresses ("10.0.0.1") and CIDR ranges
// ("10.0.0.0/8"). Unparsable entries are logged and ignored.
func NewProxyResolver(entries []string) *ProxyResolver {
	pr := &ProxyResolver{}
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if prefix, err := netip.ParsePrefix(entry); err == nil {
			pr.trusted = append(pr.trusted, prefix.Masked())
			continue
		}
		if addr, err := netip.ParseAddr(entry); err == nil {
			pr.trusted = append(pr.trusted, netip.PrefixFrom(addr, addr.BitLen()))
			continue
		}
		slog.Warn(LogMsgInvalidTrustedProxy, "entry", entry)
	}
	return pr
}

func (pr *ProxyResolver) isTrusted(ip string) bool {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, prefix := range pr.trusted {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}

// ClientIP returns the rightmost forwarded hop when the peer is trusted,
// the peer address otherwise.
func (pr *ProxyResolver) ClientIP(r *http.Request) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	if !pr.isTrusted(remoteIP) {
		return remoteIP
	}

	forwarded := r.Header.Get(HeaderForwardedFor)
	if forwarded == "" {
		return remoteIP
	}
	hops := strings.Split(forwarded, ",")
	return strings.TrimSpace(hops[len(hops)-1])
}

// windowCounter counts events per key within a fixed window
type windowCounter struct {
	counts  map[string]int
	started time.Time
}

func (c *windowCounter) incr(key string, now time.Time, window time.Duration) int {
	if c.counts == nil || now.Sub(c.started) > window {
		c.counts = make(map[string]int)
		c.started = now
	}
	c.counts[key]++
	return c.counts[key]
}

func (c *windowCounter) get(key string, now time.Time, window time.Duration) int {
	if c.counts == nil || now.Sub(c.started) > window {
		return 0
	}
	return c.counts[key]
}

// AbuseMonitor rate limits clients and locks out addresses that keep
// presenting a wrong admin key
type AbuseMonitor struct {
	mu         sync.Mutex
	now        func() time.Time
	requests   windowCounter
	failedAuth windowCounter
}

func NewAbuseMonitor() *AbuseMonitor {
	return &AbuseMonitor{now: time.Now}
}

// AllowRequest counts one request and reports whether ip is under the limit
func (m *AbuseMonitor) AllowRequest(ip string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	count := m.requests.incr(ip, m.now(), RateWindow)
	if count <= RequestRateLimit {
		return true
	}
	if count%RateLimitLogEvery == 0 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", count)
	}
	return false
}

// RecordFailedAuth counts a rejected admin key
func (m *AbuseMonitor) RecordFailedAuth(ip string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	count := m.failedAuth.incr(ip, m.now(), RateWindow)
	if count == FailedAuthAlertThreshold {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", count)
	}
}

// LockedOut reports whether ip has exhausted its admin key attempts
func (m *AbuseMonitor) LockedOut(ip string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.failedAuth.get(ip, m.now(), RateWindow) >= AdminLockoutThreshold
}

// AdminAuthMiddleware guards the admin subtree with the API key. An empty
// apiKey rejects every request.
func AdminAuthMiddleware(apiKey string, proxies *ProxyResolver, monitor *AbuseMonitor) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := proxies.ClientIP(r)
			if monitor.LockedOut(ip) {
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}

			providedKey := r.Header.Get(HeaderAPIKey)
			if apiKey == "" || subtle.ConstantTimeCompare([]byte(providedKey), []byte(apiKey)) != 1 {
				monitor.RecordFailedAuth(ip)
				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"path", r.URL.Path,
					"has_key", providedKey != "",
					"ip", ip)

				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RateLimitMiddleware rejects clients over RequestRateLimit per window
func RateLimitMiddleware(proxies *ProxyResolver, monitor *AbuseMonitor) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !monitor.AllowRequest(proxies.ClientIP(r)) {
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequestSizeLimitMiddleware limits request body size
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// SecurityHeadersMiddleware sets the headers of a JSON-only API. Responses
// carry per-voter data, so nothing is cacheable by intermediaries.
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set(HeaderContentType, HeaderValueNoSniff)
			h.Set(HeaderFrameOptions, HeaderValueDeny)
			if strings.HasPrefix(r.URL.Path, SwaggerPrefix) {
				h.Set(HeaderContentSecurity, HeaderValueCSPSwagger)
			} else {
				h.Set(HeaderContentSecurity, HeaderValueCSPNone)
			}
			h.Set(HeaderReferrerPolicy, HeaderValueNoReferrer)
			if strings.HasPrefix(r.URL.Path, APIPrefix) {
				h.Set(HeaderCacheControl, HeaderValueNoStore)
			}

			next.ServeHTTP(w, r)
		})
	}
}
