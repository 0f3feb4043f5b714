package tui

import (
	"io"
	"net"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestRateLimiterPerAddress(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{SessionsPerSecond: 0.001, BurstSize: 2, Enabled: true}, log.New(io.Discard))
	defer rl.Stop()

	if !rl.Allow("10.0.0.1") || !rl.Allow("10.0.0.1") {
		t.Fatal("burst should be allowed")
	}
	if rl.Allow("10.0.0.1") {
		t.Error("third session within the burst window should be refused")
	}
	if !rl.Allow("10.0.0.2") {
		t.Error("other addresses have their own budget")
	}
}

func TestRateLimiterDisabled(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{SessionsPerSecond: 0.001, BurstSize: 1}, log.New(io.Discard))
	defer rl.Stop()

	for range 10 {
		if !rl.Allow("10.0.0.1") {
			t.Fatal("a disabled limiter lets everyone in")
		}
	}
}

func TestRateLimiterPrune(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{SessionsPerSecond: 1, BurstSize: 1, Enabled: true}, log.New(io.Discard))
	rl.Stop()
	rl.Stop()

	rl.Allow("10.0.0.1")
	rl.prune(time.Now())
	if len(rl.clients) != 1 {
		t.Fatal("a drained bucket should be kept")
	}

	rl.prune(time.Now().Add(time.Minute))
	if len(rl.clients) != 0 {
		t.Error("a refilled bucket should be dropped")
	}
}

func TestRemoteIP(t *testing.T) {
	tests := []struct {
		addr net.Addr
		want string
	}{
		{&net.TCPAddr{IP: net.ParseIP("192.168.1.1"), Port: 2222}, "192.168.1.1"},
		{&net.TCPAddr{IP: net.ParseIP("::1"), Port: 22}, "::1"},
		{nil, ""},
	}

	for _, tt := range tests {
		if got := remoteIP(tt.addr); got != tt.want {
			t.Errorf("remoteIP(%v) = %q, expected %q", tt.addr, got, tt.want)
		}
	}
}
