package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/networklore/snmpctl/pkg/device"
)

var switchportConfig device.SwitchportConfig

var switchportCmd = &cobra.Command{
	Use:   "switchport",
	Short: "Configure port mode and VLAN assignment",
	Long: `Configure the switchport mode and VLAN assignment of one interface.

  snmpctl -H 10.0.0.1 -c private switchport -i Gi0/5 --mode access --access-vlan 10
  snmpctl -H 10.0.0.1 -c private switchport -i Gi0/48 --mode trunk --native-vlan 99`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ref, err := interfaceRef()
		if err != nil {
			return err
		}
		if switchportConfig == (device.SwitchportConfig{}) {
			return fmt.Errorf("nothing to do: use --mode, --access-vlan or --native-vlan")
		}
		return withDevice(func(d *device.Device) (bool, error) {
			return d.SetSwitchport(ref, switchportConfig)
		})
	},
}

func init() {
	addInterfaceFlags(switchportCmd)
	flags := switchportCmd.Flags()
	flags.StringVar(&switchportConfig.Mode, "mode", "", "Port mode (trunk, access, desirable, auto, trunk-nonegotiate)")
	flags.StringVar(&switchportConfig.AccessVLAN, "access-vlan", "", "Access VLAN (1-4094)")
	flags.StringVar(&switchportConfig.NativeVLAN, "native-vlan", "", "Native VLAN for trunk ports (1-4094)")
}
