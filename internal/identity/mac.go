package identity

// Package identity resolves a stable hardware identifier for the device.
// The MAC address is used purely as an opaque identity token: it is read from
// sysfs where possible and taken from the first usable network interface
// otherwise. Inside a container the network namespace hides the host's
// interfaces, so deployments bind-mount the host's /sys/class/net to
// /hw/class/net (read-only) and the /hw paths are checked first.

import (
	"errors"
	"os"
	"strings"

	psnet "github.com/shirou/gopsutil/v4/net"
)

// ErrMACUnavailable is returned when neither the filesystem nor the
// interface scan yields a hardware identifier.
var ErrMACUnavailable = errors.New("could not retrieve MAC identifier, unable to continue")

// DefaultAddressPaths is the built-in candidate list, highest priority first.
// The /hw entries cover the container bind-mount case; the /sys entries cover
// running directly on the host.
var DefaultAddressPaths = []string{
	"/hw/class/net/enp1s0/address",
	"/hw/class/net/eno1/address",
	"/hw/class/net/eth0/address",
	"/hw/class/net/eth1/address",
	"/sys/class/net/enp1s0/address",
	"/sys/class/net/eno1/address",
	"/sys/class/net/eth0/address",
	"/sys/class/net/eth1/address",
}

// InterfacesFunc enumerates the OS-visible network interfaces.
type InterfacesFunc func() (psnet.InterfaceStatList, error)

// Resolver looks up the device's hardware identifier.
// The zero value is not usable; construct it with NewResolver.
type Resolver struct {
	interfaces InterfacesFunc
}

// NewResolver returns a Resolver backed by the given interface enumeration.
// Passing nil uses gopsutil's enumeration of the real interfaces.
func NewResolver(interfaces InterfacesFunc) *Resolver {
	if interfaces == nil {
		interfaces = psnet.Interfaces
	}
	return &Resolver{interfaces: interfaces}
}

// MACAddress returns the device's MAC address as raw text.
//
// If overridePaths is non-empty it fully replaces the default path list; the
// defaults are not consulted at all. The first path that can be read wins and
// its contents are returned with surrounding whitespace stripped, even when
// the file is empty. Only when no candidate file exists does the resolver
// fall back to scanning the network interfaces.
//
// No format validation is applied: sysfs produces colon-delimited text and
// the interface scan produces whatever the OS reports, and callers treat
// both as opaque.
func (r *Resolver) MACAddress(overridePaths ...string) (string, error) {
	paths := overridePaths
	if len(paths) == 0 {
		paths = DefaultAddressPaths
	}

	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			// Missing and unreadable files are skipped alike.
			continue
		}
		return strings.TrimSpace(string(data)), nil
	}

	return r.scanInterfaces()
}

// scanInterfaces returns the hardware address of the first interface that is
// up, not virtual, and actually has one.
func (r *Resolver) scanInterfaces() (string, error) {
	ifaces, err := r.interfaces()
	if err != nil {
		return "", err
	}

	for _, iface := range ifaces {
		if !isUp(iface.Flags) {
			continue
		}
		// Tunnel/bridge adapters advertise locally generated addresses that
		// change across reboots, which defeats the identity use case.
		if strings.Contains(iface.Name, "Virtual") || strings.Contains(iface.Name, "Pseudo") {
			continue
		}
		if iface.HardwareAddr != "" {
			return iface.HardwareAddr, nil
		}
	}

	return "", ErrMACUnavailable
}

func isUp(flags []string) bool {
	for _, f := range flags {
		if f == "up" {
			return true
		}
	}
	return false
}
