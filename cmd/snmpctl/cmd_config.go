package main

import (
	"github.com/spf13/cobra"

	"github.com/networklore/snmpctl/pkg/device"
)

var copyOptions device.CopyConfigOptions

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Copy device configuration",
}

var configSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Copy running-config to startup-config",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDevice(func(d *device.Device) (bool, error) {
			return d.SaveConfig()
		})
	},
}

var configCopyCmd = &cobra.Command{
	Use:   "copy",
	Short: "Copy configuration between endpoints",
	Long: `Copy configuration between running-config, startup-config and a TFTP server.

  snmpctl -H 10.0.0.1 -c private config copy --source running-config --destination tftp \
      --server 10.0.0.5 --filename switch1.cfg`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDevice(func(d *device.Device) (bool, error) {
			return d.CopyConfig(copyOptions)
		})
	},
}

func init() {
	flags := configCopyCmd.Flags()
	flags.StringVar(&copyOptions.Source, "source", "", "Copy source (tftp, startup-config or running-config)")
	flags.StringVar(&copyOptions.Destination, "destination", "", "Copy destination (tftp, startup-config or running-config)")
	flags.StringVar(&copyOptions.Server, "server", "", "TFTP server address")
	flags.StringVar(&copyOptions.Filename, "filename", "", "File name on the TFTP server")
	configCopyCmd.MarkFlagRequired("source")
	configCopyCmd.MarkFlagRequired("destination")

	configCmd.AddCommand(configSaveCmd, configCopyCmd)
}
