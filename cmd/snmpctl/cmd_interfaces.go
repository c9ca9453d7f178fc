package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/networklore/snmpctl/pkg/cisco"
	"github.com/networklore/snmpctl/pkg/cli"
	"github.com/networklore/snmpctl/pkg/device"
)

var interfacesCmd = &cobra.Command{
	Use:   "interfaces",
	Short: "List the device's interface table",
	Long: `List the device's interfaces (ifIndex and ifDescr), as used by the
-i name resolver.

  snmpctl -H 10.0.0.1 -c private interfaces`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := connectParams()
		if err != nil {
			return err
		}
		dev, err := device.Connect(params, cisco.DefaultCatalog())
		if err != nil {
			return err
		}
		defer dev.Close()

		entries, err := dev.Interfaces()
		if err != nil {
			return err
		}

		if jsonOutput {
			return json.NewEncoder(os.Stdout).Encode(entries)
		}
		table := cli.NewTable(os.Stdout, "INDEX", "NAME")
		for _, e := range entries {
			table.Row(strconv.Itoa(e.Index), e.Name)
		}
		table.Flush()
		if len(entries) == 0 {
			fmt.Println("No interfaces.")
		}
		return nil
	},
}
