package device

import (
	"github.com/networklore/snmpctl/pkg/cisco"
	"github.com/networklore/snmpctl/pkg/snmp"
)

// InterfaceConfig holds the requested interface settings. Empty fields are
// not touched on the device.
type InterfaceConfig struct {
	Description string // ifAlias
	AdminState  string // up or down
}

// SetInterface reconciles interface description and admin state, in that
// order. The first failure aborts the rest.
func (d *Device) SetInterface(ref InterfaceRef, cfg InterfaceConfig) (bool, error) {
	index, err := d.ResolveInterface(ref)
	if err != nil {
		return false, err
	}

	hasChanged := false

	if cfg.Description != "" {
		changed, err := d.ensure(cisco.Indexed(d.oids.IfAlias, index), snmp.OctetString(cfg.Description))
		if err != nil {
			return hasChanged, err
		}
		hasChanged = hasChanged || changed
	}

	if cfg.AdminState != "" {
		code, err := cisco.AdminState(cfg.AdminState)
		if err != nil {
			return hasChanged, err
		}
		changed, err := d.ensure(cisco.Indexed(d.oids.IfAdminStatus, index), snmp.Integer(code))
		if err != nil {
			return hasChanged, err
		}
		hasChanged = hasChanged || changed
	}

	return hasChanged, nil
}
