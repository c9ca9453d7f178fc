package device

import (
	"fmt"
	"strconv"

	"github.com/networklore/snmpctl/pkg/cisco"
	"github.com/networklore/snmpctl/pkg/snmp"
	"github.com/networklore/snmpctl/pkg/util"
)

// PortSecurityConfig holds the requested port-security settings for one
// interface. Empty fields are not touched on the device.
type PortSecurityConfig struct {
	Enable         string // true or false
	MaxSecureAddrs string // maximum secure MAC addresses
	Sticky         string // true or false
	Violation      string // shutdown, dropnotify or drop
	AgingType      string // absolute or inactivity
	AgingTime      string // minutes
	StaticAging    string // true or false
}

// SetPortSecurity reconciles the CISCO-PORT-SECURITY-MIB settings of one
// interface, fail-fast in a fixed order.
func (d *Device) SetPortSecurity(ref InterfaceRef, cfg PortSecurityConfig) (bool, error) {
	index, err := d.ResolveInterface(ref)
	if err != nil {
		return false, err
	}

	type setting struct {
		label  string
		base   string
		encode func(string) (int, error)
	}
	settings := []setting{
		{cfg.Enable, d.oids.CpsIfPortSecurityEnable, cisco.TruthValue},
		{cfg.MaxSecureAddrs, d.oids.CpsIfMaxSecureMacAddr, parseCount},
		{cfg.Sticky, d.oids.CpsIfStickyEnable, cisco.TruthValue},
		{cfg.Violation, d.oids.CpsIfViolationAction, cisco.ViolationAction},
		{cfg.AgingType, d.oids.CpsIfSecureMacAddrAgingType, cisco.AgingType},
		{cfg.AgingTime, d.oids.CpsIfSecureMacAddrAgingTime, parseCount},
		{cfg.StaticAging, d.oids.CpsIfStaticMacAddrAgingEnable, cisco.TruthValue},
	}

	hasChanged := false
	for _, s := range settings {
		if s.label == "" {
			continue
		}
		code, err := s.encode(s.label)
		if err != nil {
			return hasChanged, err
		}
		changed, err := d.ensure(cisco.Indexed(s.base, index), snmp.Integer(code))
		if err != nil {
			return hasChanged, err
		}
		hasChanged = hasChanged || changed
	}
	return hasChanged, nil
}

func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q is not a non-negative number", util.ErrInvalidValue, s)
	}
	return n, nil
}
