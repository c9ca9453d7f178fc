package device

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/networklore/snmpctl/pkg/snmp"
	"github.com/networklore/snmpctl/pkg/util"
)

// InterfaceRef addresses one interface by ifIndex or by display name.
// Callers supply exactly one of the two; a zero Name selects Index.
type InterfaceRef struct {
	Index int
	Name  string
}

func (r InterfaceRef) String() string {
	if r.Name != "" {
		return r.Name
	}
	return fmt.Sprintf("ifIndex %d", r.Index)
}

type ifEntry struct {
	index int
	descr string
}

// InterfaceEntry is one row of the device's interface table.
type InterfaceEntry struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}

// Interfaces returns the device's interface table in walk order.
func (d *Device) Interfaces() ([]InterfaceEntry, error) {
	table, err := d.interfaceTable()
	if err != nil {
		return nil, err
	}
	out := make([]InterfaceEntry, len(table))
	for i, e := range table {
		out[i] = InterfaceEntry{Index: e.index, Name: e.descr}
	}
	return out, nil
}

// ResolveInterface translates the reference into the numeric ifIndex used to
// compose per-interface OIDs. A numeric reference passes through without
// touching the device. A name triggers a GETNEXT walk of ifDescr; the entry
// whose description exactly equals the name wins, and among duplicates the
// last one encountered wins (existing behavior, kept; duplicates are logged).
func (d *Device) ResolveInterface(ref InterfaceRef) (int, error) {
	if ref.Name == "" {
		return ref.Index, nil
	}

	table, err := d.interfaceTable()
	if err != nil {
		return 0, err
	}

	index := 0
	matches := 0
	for _, e := range table {
		if e.descr == ref.Name {
			index = e.index
			matches++
		}
	}
	if matches == 0 {
		return 0, fmt.Errorf("%w: %s", util.ErrInterfaceNotFound, ref.Name)
	}
	if matches > 1 {
		util.WithDevice(d.host).Warnf(
			"interface name %q matches %d entries, using last (ifIndex %d)",
			ref.Name, matches, index)
	}
	return index, nil
}

// interfaceTable walks the device's ifDescr column and caches the result.
func (d *Device) interfaceTable() ([]ifEntry, error) {
	if v, ok := d.ifCache.Get(d.host); ok {
		return v.([]ifEntry), nil
	}

	var table []ifEntry
	err := d.client.Walk(d.oids.IfDescr, func(oid string, v snmp.Value) error {
		index, err := strconv.Atoi(oid[strings.LastIndex(oid, ".")+1:])
		if err != nil {
			return fmt.Errorf("unexpected ifDescr instance %s", oid)
		}
		table = append(table, ifEntry{index: index, descr: v.Str})
		return nil
	})
	if err != nil {
		return nil, &util.CommunicationError{Host: d.host, Cause: err}
	}

	d.ifCache.SetDefault(d.host, table)
	return table, nil
}
