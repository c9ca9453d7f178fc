package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/networklore/snmpctl/pkg/device"
)

var portSecurityConfig device.PortSecurityConfig

var portSecurityCmd = &cobra.Command{
	Use:   "port-security",
	Short: "Configure port security on one interface",
	Long: `Configure CISCO-PORT-SECURITY-MIB settings on one interface.

  snmpctl -H 10.0.0.1 -c private port-security -i Gi0/5 --enable true --max-addresses 2
  snmpctl -H 10.0.0.1 -c private port-security -i Gi0/5 --violation shutdown`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ref, err := interfaceRef()
		if err != nil {
			return err
		}
		if portSecurityConfig == (device.PortSecurityConfig{}) {
			return fmt.Errorf("nothing to do: no port-security settings requested")
		}
		return withDevice(func(d *device.Device) (bool, error) {
			return d.SetPortSecurity(ref, portSecurityConfig)
		})
	},
}

func init() {
	addInterfaceFlags(portSecurityCmd)
	flags := portSecurityCmd.Flags()
	flags.StringVar(&portSecurityConfig.Enable, "enable", "", "Enable port security (true or false)")
	flags.StringVar(&portSecurityConfig.MaxSecureAddrs, "max-addresses", "", "Maximum secure MAC addresses")
	flags.StringVar(&portSecurityConfig.Sticky, "sticky", "", "Sticky MAC learning (true or false)")
	flags.StringVar(&portSecurityConfig.Violation, "violation", "", "Violation action (shutdown, dropnotify or drop)")
	flags.StringVar(&portSecurityConfig.AgingType, "aging-type", "", "Secure address aging type (absolute or inactivity)")
	flags.StringVar(&portSecurityConfig.AgingTime, "aging-time", "", "Secure address aging time in minutes")
	flags.StringVar(&portSecurityConfig.StaticAging, "static-aging", "", "Age out static addresses too (true or false)")
}
