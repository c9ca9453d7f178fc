package main

import (
	"github.com/spf13/cobra"

	"github.com/networklore/snmpctl/pkg/cisco"
	"github.com/networklore/snmpctl/pkg/device"
)

var vlanName string

var vlanCmd = &cobra.Command{
	Use:   "vlan",
	Short: "Manage the VLAN database",
}

var vlanCreateCmd = &cobra.Command{
	Use:   "create <id>",
	Short: "Create a VLAN through the VTP edit buffer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := cisco.ParseVLANID(args[0])
		if err != nil {
			return err
		}
		return withDevice(func(d *device.Device) (bool, error) {
			return d.EnsureVLAN(id, vlanName)
		})
	},
}

var vlanDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a VLAN through the VTP edit buffer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := cisco.ParseVLANID(args[0])
		if err != nil {
			return err
		}
		return withDevice(func(d *device.Device) (bool, error) {
			return d.DeleteVLAN(id)
		})
	},
}

func init() {
	vlanCreateCmd.Flags().StringVar(&vlanName, "name", "", "VLAN name")
	vlanCmd.AddCommand(vlanCreateCmd, vlanDeleteCmd)
}
