// Snmpctl - SNMP Configuration Tool for Cisco Devices
//
// A CLI tool that reconciles configuration state on Cisco switches over
// SNMP: read the current value of each requested setting, write it only
// when it differs, and report whether anything changed.
//
//	snmpctl -H <host> [credentials] <command> [flags]
//	snmpctl -d <device> --inventory hosts.yaml <command> [flags]
//
// Connection flags:
//
//	-H, --host          Device address (direct connection)
//	-d, --device        Device name from the inventory file
//	    --snmp-version  2c or 3
//	-c, --community     SNMPv2c community string
//	-u, --username      SNMPv3 username (with --level, --integrity,
//	                    --authkey, --privacy, --privkey)
//
// Commands:
//
//	cdp global <enabled|disabled>       Toggle CDP device-wide
//	cdp interface <enabled|disabled>    Toggle CDP on one interface
//	switchport --mode access ...        Port mode and VLAN assignment
//	interface --admin-state down ...    Admin state and description
//	port-security --enable true ...     Port security settings
//	vlan create|delete <id>             VLAN lifecycle
//	config save|copy                    Config copy jobs
//	interfaces                          List the interface table
//
// Per-interface commands address the interface with exactly one of
// -i <name> (resolved against the device's ifDescr table) or
// --if-index <n> (used as-is).
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/networklore/snmpctl/pkg/cisco"
	"github.com/networklore/snmpctl/pkg/cli"
	"github.com/networklore/snmpctl/pkg/device"
	"github.com/networklore/snmpctl/pkg/inventory"
	"github.com/networklore/snmpctl/pkg/settings"
	"github.com/networklore/snmpctl/pkg/snmp"
	"github.com/networklore/snmpctl/pkg/util"
	"github.com/networklore/snmpctl/pkg/version"
)

var (
	// Connection flags
	flagHost        string
	flagDeviceName  string // -d, inventory lookup
	flagInventory   string
	flagSNMPVersion string
	flagCommunity   string
	flagUsername    string
	flagLevel       string
	flagIntegrity   string
	flagAuthKey     string
	flagPrivacy     string
	flagPrivKey     string
	flagPort        uint16
	flagTimeout     int
	flagRetries     int

	// Interface selectors (per-interface commands)
	flagInterface string
	flagIfIndex   int

	// Output flags
	verbose    bool
	jsonOutput bool

	userSettings *settings.Settings
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.Red("Error: ")+err.Error())
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:               "snmpctl",
	Short:             "SNMP configuration tool for Cisco devices",
	SilenceUsage:      true,
	SilenceErrors:     true,
	CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},
	Long: `Snmpctl reconciles configuration state on Cisco devices over SNMP.

Each setting is read before it is written; settings that already hold the
desired value are left alone, and the result reports whether the device
changed.

  snmpctl -H 10.0.0.1 --snmp-version 2c -c private cdp global disabled`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if isSettingsOrHelp(cmd) {
			return nil
		}

		var err error
		userSettings, err = settings.Load()
		if err != nil {
			util.Warnf("Could not load settings: %v", err)
			userSettings = &settings.Settings{}
		}

		if flagInventory == "" {
			flagInventory = userSettings.DefaultInventory
		}
		if flagDeviceName == "" && flagHost == "" {
			flagDeviceName = userSettings.DefaultDevice
		}

		if verbose {
			util.SetLogLevel("debug")
		} else {
			util.SetLogLevel("warn")
		}
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flagHost, "host", "H", "", "Device address")
	pf.StringVarP(&flagDeviceName, "device", "d", "", "Device name from the inventory file")
	pf.StringVar(&flagInventory, "inventory", "", "Inventory file (YAML)")
	pf.StringVar(&flagSNMPVersion, "snmp-version", "2c", "SNMP version (2c or 3)")
	pf.StringVarP(&flagCommunity, "community", "c", "", "SNMPv2c community string")
	pf.StringVarP(&flagUsername, "username", "u", "", "SNMPv3 username")
	pf.StringVar(&flagLevel, "level", "authPriv", "SNMPv3 security level (authNoPriv or authPriv)")
	pf.StringVar(&flagIntegrity, "integrity", "", "SNMPv3 hashing algorithm (md5 or sha)")
	pf.StringVar(&flagAuthKey, "authkey", "", "SNMPv3 authentication key")
	pf.StringVar(&flagPrivacy, "privacy", "", "SNMPv3 encryption algorithm (des, aes, aes192, aes256)")
	pf.StringVar(&flagPrivKey, "privkey", "", "SNMPv3 encryption key")
	pf.Uint16Var(&flagPort, "port", 0, "SNMP port (default 161)")
	pf.IntVar(&flagTimeout, "timeout", 0, "Per-request timeout in seconds (default 5)")
	pf.IntVar(&flagRetries, "retries", 0, "Request retries (default 1)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	pf.BoolVar(&jsonOutput, "json", false, "JSON output")

	rootCmd.AddCommand(
		cdpCmd,
		switchportCmd,
		interfaceCmd,
		interfacesCmd,
		portSecurityCmd,
		vlanCmd,
		configCmd,
		settingsCmd,
		versionCmd,
	)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("snmpctl %s\n", version.Info())
	},
}

// ============================================================================
// Connection Helpers
// ============================================================================

// connectParams assembles the connection-parameter bundle from the
// inventory entry (when -d is used) and the connection flags. Flags win
// over inventory values. Missing secrets are prompted for on a TTY and
// never persisted.
func connectParams() (snmp.ConnectParams, error) {
	var p snmp.ConnectParams

	if flagDeviceName != "" {
		if flagInventory == "" {
			return p, fmt.Errorf("-d requires an inventory: use --inventory or set a default")
		}
		inv, err := inventory.Load(flagInventory)
		if err != nil {
			return p, err
		}
		p, err = inv.Params(flagDeviceName)
		if err != nil {
			return p, err
		}
	} else {
		p.Version = snmp.Version(flagSNMPVersion)
	}

	if flagHost != "" {
		p.Host = flagHost
	}
	if flagPort != 0 {
		p.Port = flagPort
	}
	if flagTimeout != 0 {
		p.Timeout = time.Duration(flagTimeout) * time.Second
	}
	if flagRetries != 0 {
		p.Retries = flagRetries
	}

	switch p.Version {
	case snmp.Version2c:
		if p.V2c == nil {
			p.V2c = &snmp.V2cParams{}
		}
		if flagCommunity != "" {
			p.V2c.Community = flagCommunity
		}
		if p.V2c.Community == "" {
			c, err := promptSecret("Community")
			if err != nil {
				return p, err
			}
			p.V2c.Community = c
		}
	case snmp.Version3:
		if p.V3 == nil {
			p.V3 = &snmp.V3Params{}
		}
		if flagUsername != "" {
			p.V3.Username = flagUsername
		}
		if p.V3.Level == "" {
			p.V3.Level = flagLevel
		}
		if flagIntegrity != "" {
			p.V3.Integrity = flagIntegrity
		}
		if flagAuthKey != "" {
			p.V3.AuthKey = flagAuthKey
		}
		if flagPrivacy != "" {
			p.V3.Privacy = flagPrivacy
		}
		if flagPrivKey != "" {
			p.V3.PrivKey = flagPrivKey
		}
		if p.V3.Username != "" && p.V3.AuthKey == "" {
			k, err := promptSecret("Auth key")
			if err != nil {
				return p, err
			}
			p.V3.AuthKey = k
		}
		if p.V3.Level == snmp.LevelAuthPriv && p.V3.Privacy != "" && p.V3.PrivKey == "" {
			k, err := promptSecret("Priv key")
			if err != nil {
				return p, err
			}
			p.V3.PrivKey = k
		}
	}

	return p, nil
}

// promptSecret reads a secret from the terminal without echo.
func promptSecret(label string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("%s not set and stdin is not a terminal", label)
	}
	fmt.Fprintf(os.Stderr, "%s: ", label)
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// withDevice connects, runs one reconciliation and reports the result.
func withDevice(fn func(d *device.Device) (bool, error)) error {
	params, err := connectParams()
	if err != nil {
		return err
	}

	dev, err := device.Connect(params, cisco.DefaultCatalog())
	if err != nil {
		return err
	}
	defer dev.Close()

	changed, err := fn(dev)
	if err != nil {
		return err
	}
	return reportChanged(changed)
}

// interfaceRef builds the interface reference from the selector flags.
// Exactly one of -i and --if-index must be given.
func interfaceRef() (device.InterfaceRef, error) {
	if flagInterface != "" && flagIfIndex != 0 {
		return device.InterfaceRef{}, fmt.Errorf("use either -i <name> or --if-index <n>, not both")
	}
	if flagInterface == "" && flagIfIndex == 0 {
		return device.InterfaceRef{}, fmt.Errorf("interface required: use -i <name> or --if-index <n>")
	}
	return device.InterfaceRef{Index: flagIfIndex, Name: flagInterface}, nil
}

// addInterfaceFlags registers the -i/--if-index selectors on a command.
func addInterfaceFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&flagInterface, "interface", "i", "", "Interface name (resolved via ifDescr)")
	cmd.Flags().IntVar(&flagIfIndex, "if-index", 0, "Interface index (used as-is)")
}

// ============================================================================
// Output Helpers
// ============================================================================

func reportChanged(changed bool) error {
	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]bool{"changed": changed})
	}
	if changed {
		fmt.Println(cli.Green("Changed."))
	} else {
		fmt.Println(cli.Dim("No change."))
	}
	return nil
}

// isSettingsOrHelp checks whether cmd (or any ancestor) is a settings, help,
// or version command.
func isSettingsOrHelp(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "version", "settings":
			return true
		}
	}
	return false
}
