package sysinfo

import (
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"

	"devident/internal/identity"
	"devident/internal/netroute"
)

// Collect gathers a summary of the device and returns it as a map.
// Individual probes that fail are omitted from the result; the MAC address
// and outbound IP come from the identity and netroute resolvers so the
// summary agrees with what the CLI reports elsewhere.
func Collect(resolver *identity.Resolver) (map[string]interface{}, error) {
	data := make(map[string]interface{})

	// 1. Host Info (Hostname, OS, Platform, Kernel)
	hInfo, err := host.Info()
	if err == nil {
		data["Hostname"] = hInfo.Hostname
		data["OS"] = hInfo.OS
		data["Platform"] = hInfo.Platform
		data["PlatformVersion"] = hInfo.PlatformVersion
		data["KernelVersion"] = hInfo.KernelVersion
		data["Arch"] = hInfo.KernelArch
	}

	// 2. CPU Info (Model)
	cInfos, err := cpu.Info()
	if err == nil && len(cInfos) > 0 {
		// Use the first CPU's model name
		data["CPU Model"] = cInfos[0].ModelName
		data["CPU Cores"] = len(cInfos)
	}

	// 3. Memory Info (Total RAM)
	mInfo, err := mem.VirtualMemory()
	if err == nil {
		data["Total RAM"] = fmt.Sprintf("%d MB", mInfo.Total/1024/1024)
	}

	// 4. Identity (MAC via sysfs or interface scan)
	if mac, err := resolver.MACAddress(); err == nil {
		data["MAC Address"] = mac
	}

	// 5. Outbound IP (route selection, no traffic sent)
	if ip, err := netroute.OutboundIP(); err == nil {
		data["IP Address"] = ip
	}

	// 6. Go Runtime Info
	data["Go Version"] = runtime.Version()

	return data, nil
}
