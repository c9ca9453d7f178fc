package cisco

import (
	"fmt"
	"strconv"

	"github.com/networklore/snmpctl/pkg/util"
)

// Label → integer tables for the enum-valued settings. These are closed
// enumerations; the CLI layer validates labels before they reach the codec.
var (
	cdpState = map[string]int{
		"enabled":  1,
		"disabled": 2,
	}

	portMode = map[string]int{
		"trunk":             1,
		"access":            2,
		"desirable":         3,
		"auto":              4,
		"trunk-nonegotiate": 5,
	}

	adminState = map[string]int{
		"up":      1,
		"down":    2,
		"testing": 3,
	}

	truthValue = map[string]int{
		"true":  1,
		"false": 2,
	}

	violationAction = map[string]int{
		"shutdown":   1,
		"dropnotify": 2,
		"drop":       3,
	}

	agingType = map[string]int{
		"absolute":   1,
		"inactivity": 2,
	}
)

func lookup(table map[string]int, kind, label string) (int, error) {
	v, ok := table[label]
	if !ok {
		return 0, fmt.Errorf("%w: unknown %s %q", util.ErrInvalidValue, kind, label)
	}
	return v, nil
}

// CDPState encodes enabled/disabled for cdpGlobalRun and cdpInterfaceEnable.
func CDPState(label string) (int, error) {
	return lookup(cdpState, "cdp state", label)
}

// PortMode encodes the vlanTrunkPortDynamicState labels.
func PortMode(label string) (int, error) {
	return lookup(portMode, "port mode", label)
}

// AdminState encodes the ifAdminStatus labels.
func AdminState(label string) (int, error) {
	return lookup(adminState, "admin state", label)
}

// TruthValue encodes SNMP TruthValue (true=1, false=2).
func TruthValue(label string) (int, error) {
	return lookup(truthValue, "truth value", label)
}

// ViolationAction encodes the cpsIfViolationAction labels.
func ViolationAction(label string) (int, error) {
	return lookup(violationAction, "violation action", label)
}

// AgingType encodes the cpsIfSecureMacAddrAgingType labels.
func AgingType(label string) (int, error) {
	return lookup(agingType, "aging type", label)
}

// ParseVLANID parses a caller-supplied VLAN id. Integer-valued settings pass
// through the codec as base-10 integers; anything else is rejected.
func ParseVLANID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: vlan id %q is not a number", util.ErrInvalidValue, s)
	}
	if id < 1 || id > 4094 {
		return 0, fmt.Errorf("%w: vlan id must be 1-4094, got %d", util.ErrInvalidValue, id)
	}
	return id, nil
}
