package sysinfo

import (
	"testing"

	psnet "github.com/shirou/gopsutil/v4/net"

	"devident/internal/identity"
)

func TestCollectIncludesIdentity(t *testing.T) {
	// The stub covers hosts where the sysfs default paths do not exist.
	resolver := identity.NewResolver(func() (psnet.InterfaceStatList, error) {
		return psnet.InterfaceStatList{
			{Name: "eth0", HardwareAddr: "aa:bb:cc:dd:ee:ff", Flags: []string{"up"}},
		}, nil
	})

	data, err := Collect(resolver)
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}

	if v, ok := data["Go Version"]; !ok || v == "" {
		t.Error("Expected Go Version to be populated")
	}
	if v, ok := data["MAC Address"]; !ok || v == "" {
		t.Error("Expected MAC Address to be populated")
	}
}
