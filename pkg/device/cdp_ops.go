package device

import (
	"github.com/networklore/snmpctl/pkg/cisco"
	"github.com/networklore/snmpctl/pkg/snmp"
	"github.com/networklore/snmpctl/pkg/util"
)

// SetGlobalCDP reconciles the device-wide CDP state ("cdp run" / "no cdp
// run"). state is "enabled" or "disabled".
func (d *Device) SetGlobalCDP(state string) (bool, error) {
	code, err := cisco.CDPState(state)
	if err != nil {
		return false, err
	}

	changed, err := d.ensure(cisco.Global(d.oids.CdpGlobalRun), snmp.Integer(code))
	if err != nil {
		return false, err
	}
	if changed {
		util.WithDevice(d.host).Infof("global CDP %s", state)
	}
	return changed, nil
}

// SetInterfaceCDP reconciles the CDP state of a single interface.
func (d *Device) SetInterfaceCDP(ref InterfaceRef, state string) (bool, error) {
	code, err := cisco.CDPState(state)
	if err != nil {
		return false, err
	}
	index, err := d.ResolveInterface(ref)
	if err != nil {
		return false, err
	}

	changed, err := d.ensure(cisco.Indexed(d.oids.CdpInterfaceEnable, index), snmp.Integer(code))
	if err != nil {
		return false, err
	}
	if changed {
		util.WithDevice(d.host).Infof("CDP %s on %s", state, ref)
	}
	return changed, nil
}
