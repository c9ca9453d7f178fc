package main

import (
	"github.com/spf13/cobra"

	"github.com/networklore/snmpctl/pkg/device"
)

var cdpCmd = &cobra.Command{
	Use:   "cdp",
	Short: "Manage Cisco Discovery Protocol state",
}

var cdpGlobalCmd = &cobra.Command{
	Use:       "global <enabled|disabled>",
	Short:     "Toggle CDP device-wide",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"enabled", "disabled"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDevice(func(d *device.Device) (bool, error) {
			return d.SetGlobalCDP(args[0])
		})
	},
}

var cdpInterfaceCmd = &cobra.Command{
	Use:       "interface <enabled|disabled>",
	Short:     "Toggle CDP on one interface",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"enabled", "disabled"},
	RunE: func(cmd *cobra.Command, args []string) error {
		ref, err := interfaceRef()
		if err != nil {
			return err
		}
		return withDevice(func(d *device.Device) (bool, error) {
			return d.SetInterfaceCDP(ref, args[0])
		})
	},
}

func init() {
	addInterfaceFlags(cdpInterfaceCmd)
	cdpCmd.AddCommand(cdpGlobalCmd, cdpInterfaceCmd)
}
