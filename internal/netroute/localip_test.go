package netroute

import (
	"net"
	"testing"
)

func TestLocalIPDeterministic(t *testing.T) {
	first, err := LocalIP(DefaultProbeTarget)
	if err != nil {
		// Hosts without any route (isolated CI containers) cannot answer
		// the question at all.
		t.Skipf("No route to %s: %v", DefaultProbeTarget, err)
	}

	second, err := LocalIP(DefaultProbeTarget)
	if err != nil {
		t.Fatalf("Second resolution failed: %v", err)
	}

	if first != second {
		t.Errorf("Expected stable result, got %q then %q", first, second)
	}
}

func TestLocalIPPublicTarget(t *testing.T) {
	ip, err := LocalIP("8.8.8.8")
	if err != nil {
		t.Skipf("No route to 8.8.8.8: %v", err)
	}

	parsed := net.ParseIP(ip)
	if parsed == nil || parsed.To4() == nil {
		t.Fatalf("Expected a dotted-decimal IPv4 address, got %q", ip)
	}
	if ip == "127.0.0.1" {
		t.Error("Route to a public address should not use the loopback source")
	}
}

func TestLocalIPInvalidTarget(t *testing.T) {
	for _, target := range []string{"999.999.999.999", "not-an-ip"} {
		if ip, err := LocalIP(target); err == nil {
			t.Errorf("Expected error for target %q, got %q", target, ip)
		}
	}
}
