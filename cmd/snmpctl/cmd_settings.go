package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/networklore/snmpctl/pkg/settings"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage persistent CLI settings",
	Long: `Manage persistent settings stored in ~/.snmpctl/settings.json.

Settings hold defaults for the inventory file and device name. Credentials
are never stored here.`,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := settings.Load()
		if err != nil {
			return err
		}
		fmt.Printf("default_inventory: %s\n", orUnset(s.DefaultInventory))
		fmt.Printf("default_device:    %s\n", orUnset(s.DefaultDevice))
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:       "set <key> <value>",
	Short:     "Set a settings key (inventory or device)",
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"inventory", "device"},
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := settings.Load()
		if err != nil {
			return err
		}
		switch args[0] {
		case "inventory":
			s.DefaultInventory = args[1]
		case "device":
			s.DefaultDevice = args[1]
		default:
			return fmt.Errorf("unknown settings key %q (inventory, device)", args[0])
		}
		return s.Save()
	},
}

var settingsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Reset all settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := &settings.Settings{}
		return s.Save()
	},
}

func orUnset(s string) string {
	if s == "" {
		return "(unset)"
	}
	return s
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd, settingsSetCmd, settingsClearCmd)
}
