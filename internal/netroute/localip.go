package netroute

// Package netroute answers "which local address would the OS use to reach X"
// without sending any traffic. Connecting a UDP socket does not transmit a
// packet; it only makes the kernel run route selection and bind a local
// source address, which we then read back.

import (
	"net"
)

// DefaultProbeTarget is the destination used when the caller has no
// particular peer in mind. It only needs to be routable, not reachable;
// 10.8.0.1 is the conventional VPN-side gateway in our deployments.
const DefaultProbeTarget = "10.8.0.1"

// LocalIP returns the dotted-decimal IPv4 address the OS would use as the
// source when sending to target. The target must be an IPv4 address or a
// resolvable name; parse and resolution errors from the dial are returned
// as-is. No packet leaves the machine.
func LocalIP(target string) (string, error) {
	// Port 1 is arbitrary: UDP connect never contacts the peer, the kernel
	// just needs a full destination tuple to route against.
	conn, err := net.Dial("udp4", net.JoinHostPort(target, "1"))
	if err != nil {
		return "", err
	}
	defer conn.Close()

	return conn.LocalAddr().(*net.UDPAddr).IP.String(), nil
}

// OutboundIP returns the local address for the default probe target.
func OutboundIP() (string, error) {
	return LocalIP(DefaultProbeTarget)
}
