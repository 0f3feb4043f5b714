package tui

import (
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"golang.org/x/time/rate"
)

// RateLimitConfig bounds how often one address may open sessions.
type RateLimitConfig struct {
	SessionsPerSecond float64
	BurstSize         int
	Enabled           bool
}

// RateLimiter keeps one token bucket per remote IP.
type RateLimiter struct {
	config  RateLimitConfig
	clients map[string]*rate.Limiter
	mu      sync.Mutex
	logger  *log.Logger
	stop    chan struct{}
	once    sync.Once
}

// NewRateLimiter creates a limiter and starts its cleanup loop.
func NewRateLimiter(config RateLimitConfig, logger *log.Logger) *RateLimiter {
	rl := &RateLimiter{
		config:  config,
		clients: make(map[string]*rate.Limiter),
		logger:  logger,
		stop:    make(chan struct{}),
	}

	if config.Enabled {
		go rl.cleanupClients(time.Minute)
	}

	return rl
}

func (rl *RateLimiter) getLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, ok := rl.clients[ip]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(rl.config.SessionsPerSecond), rl.config.BurstSize)
		rl.clients[ip] = limiter
	}
	return limiter
}

// Allow reports whether ip may open another session now.
func (rl *RateLimiter) Allow(ip string) bool {
	if !rl.config.Enabled {
		return true
	}
	return rl.getLimiter(ip).Allow()
}

// cleanupClients drops buckets that have refilled, i.e. idle addresses.
func (rl *RateLimiter) cleanupClients(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case now := <-ticker.C:
			rl.prune(now)
		}
	}
}

func (rl *RateLimiter) prune(now time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for ip, limiter := range rl.clients {
		if limiter.TokensAt(now) >= float64(rl.config.BurstSize) {
			delete(rl.clients, ip)
		}
	}
}

// Stop ends the cleanup loop.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Middleware turns away sessions from addresses over their budget.
func (rl *RateLimiter) Middleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		ip := remoteIP(sess.RemoteAddr())
		if !rl.Allow(ip) {
			rl.logger.Warn("rate limit exceeded",
				"client_ip", ip,
				"sessions_per_second", rl.config.SessionsPerSecond,
				"burst_size", rl.config.BurstSize,
			)
			fmt.Fprintln(sess.Stderr(), "Too many connections, try again in a moment.")
			//nolint:errcheck // Session is being turned away
			sess.Exit(1)
			return
		}
		next(sess)
	}
}

// remoteIP strips the port from a remote address.
func remoteIP(addr net.Addr) string {
	if addr == nil {
		return ""
	}
	host, _, err := net.SplitHostPort(addr.String())
	if err != nil {
		return addr.String()
	}
	return host
}
