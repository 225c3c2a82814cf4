package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"devident/internal/config"
	"devident/internal/identity"
	"devident/internal/netroute"
	"devident/internal/sysinfo"

	"github.com/mdp/qrterminal/v3"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command and all subcommands for the CLI.
func NewRootCmd(cfg *config.Config, logger *slog.Logger) *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:   "devident",
		Short: "Device identity and route utilities",
		Long: "devident resolves a device's hardware identifier (MAC) from sysfs or the\n" +
			"network interfaces, and reports which local IP the OS would use to reach\n" +
			"a given destination. Neither operation sends any network traffic.",
	}

	resolver := identity.NewResolver(nil)

	var macPaths []string
	var macCmd = &cobra.Command{
		Use:   "mac",
		Short: "Print the device's hardware identifier",
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := macPaths
			if len(paths) == 0 {
				paths = cfg.MACPaths
			}
			mac, err := resolver.MACAddress(paths...)
			if err != nil {
				logger.Error("MAC resolution failed", "error", err)
				return err
			}
			fmt.Println(mac)
			return nil
		},
	}
	macCmd.Flags().StringArrayVar(&macPaths, "path", nil,
		"candidate address file, repeatable; replaces the built-in list")

	var ipTarget string
	var ipCmd = &cobra.Command{
		Use:   "ip",
		Short: "Print the local IP the OS would use to reach the target",
		RunE: func(cmd *cobra.Command, args []string) error {
			target := ipTarget
			if target == "" {
				target = cfg.ProbeTarget
			}
			ip, err := netroute.LocalIP(target)
			if err != nil {
				logger.Error("Route resolution failed", "target", target, "error", err)
				return err
			}
			fmt.Println(ip)
			return nil
		},
	}
	ipCmd.Flags().StringVar(&ipTarget, "target", "",
		"destination to route against (default from config)")

	var infoCmd = &cobra.Command{
		Use:   "info",
		Short: "Show a system summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := sysinfo.Collect(resolver)
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(data, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}

	var qrCmd = &cobra.Command{
		Use:   "qr",
		Short: "Render the device identity as a QR code for enrollment",
		RunE: func(cmd *cobra.Command, args []string) error {
			mac, err := resolver.MACAddress(cfg.MACPaths...)
			if err != nil {
				logger.Error("MAC resolution failed", "error", err)
				return err
			}

			payload := map[string]string{"device_id": mac}
			if ip, err := netroute.LocalIP(cfg.ProbeTarget); err == nil {
				payload["ip"] = ip
			}
			if hostname, err := os.Hostname(); err == nil {
				payload["hostname"] = hostname
			}

			body, err := json.Marshal(payload)
			if err != nil {
				return err
			}

			fmt.Println("Scan this code to enroll the device:")
			qrterminal.GenerateHalfBlock(string(body), qrterminal.L, os.Stdout)
			fmt.Printf("\nDevice ID: %s\n", mac)
			return nil
		},
	}

	rootCmd.AddCommand(macCmd, ipCmd, infoCmd, qrCmd)
	return rootCmd
}
