package device

import (
	"github.com/networklore/snmpctl/pkg/cisco"
	"github.com/networklore/snmpctl/pkg/snmp"
)

// SwitchportConfig holds the requested switchport settings. Empty fields are
// not touched on the device.
type SwitchportConfig struct {
	Mode       string // trunk, access, desirable, auto, trunk-nonegotiate
	AccessVLAN string // VLAN id for access ports
	NativeVLAN string // native VLAN id for trunk ports
}

// SetSwitchport reconciles port mode and VLAN assignment on one interface.
// Settings are applied in a fixed order (mode, access VLAN, native VLAN) and
// the first failure aborts the rest. The result is true if any setting
// changed the device.
func (d *Device) SetSwitchport(ref InterfaceRef, cfg SwitchportConfig) (bool, error) {
	index, err := d.ResolveInterface(ref)
	if err != nil {
		return false, err
	}

	hasChanged := false

	if cfg.Mode != "" {
		code, err := cisco.PortMode(cfg.Mode)
		if err != nil {
			return hasChanged, err
		}
		changed, err := d.ensure(cisco.Indexed(d.oids.VlanTrunkPortDynamicState, index), snmp.Integer(code))
		if err != nil {
			return hasChanged, err
		}
		hasChanged = hasChanged || changed
	}

	if cfg.AccessVLAN != "" {
		vlan, err := cisco.ParseVLANID(cfg.AccessVLAN)
		if err != nil {
			return hasChanged, err
		}
		changed, err := d.ensure(cisco.Indexed(d.oids.VmVlan, index), snmp.Integer(vlan))
		if err != nil {
			return hasChanged, err
		}
		hasChanged = hasChanged || changed
	}

	if cfg.NativeVLAN != "" {
		vlan, err := cisco.ParseVLANID(cfg.NativeVLAN)
		if err != nil {
			return hasChanged, err
		}
		changed, err := d.ensure(cisco.Indexed(d.oids.VlanTrunkPortNativeVlan, index), snmp.Integer(vlan))
		if err != nil {
			return hasChanged, err
		}
		hasChanged = hasChanged || changed
	}

	return hasChanged, nil
}
