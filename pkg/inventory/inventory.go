// Package inventory loads the YAML device inventory consumed by the CLI.
// The inventory is front-end glue: it assembles connection-parameter
// bundles, it does not validate them (pkg/snmp does that at dial time).
package inventory

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/networklore/snmpctl/pkg/snmp"
)

// Entry is one device in the inventory file.
type Entry struct {
	Host        string `yaml:"host"`
	Port        uint16 `yaml:"port,omitempty"`
	SNMPVersion string `yaml:"snmp_version"`
	Timeout     int    `yaml:"timeout,omitempty"` // seconds
	Retries     int    `yaml:"retries,omitempty"`

	// v2c
	Community string `yaml:"community,omitempty"`

	// v3
	Username  string `yaml:"username,omitempty"`
	Level     string `yaml:"level,omitempty"`
	Integrity string `yaml:"integrity,omitempty"`
	AuthKey   string `yaml:"authkey,omitempty"`
	Privacy   string `yaml:"privacy,omitempty"`
	PrivKey   string `yaml:"privkey,omitempty"`
}

// Inventory is a named set of devices.
type Inventory struct {
	Devices map[string]Entry `yaml:"devices"`
}

// Load reads and parses an inventory file.
func Load(path string) (*Inventory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading inventory %s: %w", path, err)
	}

	var inv Inventory
	if err := yaml.Unmarshal(data, &inv); err != nil {
		return nil, fmt.Errorf("parsing inventory %s: %w", path, err)
	}
	return &inv, nil
}

// Params returns the connection-parameter bundle for a named device.
func (inv *Inventory) Params(name string) (snmp.ConnectParams, error) {
	e, ok := inv.Devices[name]
	if !ok {
		return snmp.ConnectParams{}, fmt.Errorf("device %q not in inventory", name)
	}
	return e.ConnectParams(), nil
}

// ConnectParams converts an inventory entry into the tagged bundle.
func (e Entry) ConnectParams() snmp.ConnectParams {
	p := snmp.ConnectParams{
		Host:    e.Host,
		Port:    e.Port,
		Timeout: time.Duration(e.Timeout) * time.Second,
		Retries: e.Retries,
		Version: snmp.Version(e.SNMPVersion),
	}
	switch p.Version {
	case snmp.Version2c:
		p.V2c = &snmp.V2cParams{Community: e.Community}
	case snmp.Version3:
		p.V3 = &snmp.V3Params{
			Username:  e.Username,
			Level:     e.Level,
			Integrity: e.Integrity,
			AuthKey:   e.AuthKey,
			Privacy:   e.Privacy,
			PrivKey:   e.PrivKey,
		}
	}
	return p
}
