// Package testutil holds helpers shared by tests that start real listeners.
package testutil

import (
	"context"
	"net"
	"testing"
	"time"
)

// PortOpen reports whether a TCP connection to addr succeeds within 100ms.
func PortOpen(addr string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}

// WaitForPort polls addr until it accepts connections, failing the test after timeout.
func WaitForPort(t *testing.T, addr string, timeout time.Duration) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for !PortOpen(addr) {
		if time.Now().After(deadline) {
			t.Fatalf("%s did not accept connections within %s", addr, timeout)
		}
		time.Sleep(20 * time.Millisecond)
	}
}

// FreePort returns a loopback port that was free at the time of the call.
func FreePort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()
	return ln.Addr().(*net.TCPAddr).Port
}
