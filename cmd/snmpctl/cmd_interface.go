package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/networklore/snmpctl/pkg/device"
)

var interfaceConfig device.InterfaceConfig

var interfaceCmd = &cobra.Command{
	Use:   "interface",
	Short: "Configure interface admin state and description",
	Long: `Configure the admin state and description of one interface.

  snmpctl -H 10.0.0.1 -c private interface -i Gi0/5 --admin-state down
  snmpctl -H 10.0.0.1 -c private interface --if-index 10105 --description "uplink to core"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ref, err := interfaceRef()
		if err != nil {
			return err
		}
		if interfaceConfig == (device.InterfaceConfig{}) {
			return fmt.Errorf("nothing to do: use --description or --admin-state")
		}
		return withDevice(func(d *device.Device) (bool, error) {
			return d.SetInterface(ref, interfaceConfig)
		})
	},
}

func init() {
	addInterfaceFlags(interfaceCmd)
	flags := interfaceCmd.Flags()
	flags.StringVar(&interfaceConfig.Description, "description", "", "Interface description (ifAlias)")
	flags.StringVar(&interfaceConfig.AdminState, "admin-state", "", "Admin state (up or down)")
}
