// Package device reconciles configuration state on a Cisco device over SNMP.
// Every operation follows the same shape: resolve the interface if one is
// addressed, encode the desired values, then run a read-compare-write cycle
// per setting and report whether anything changed.
package device

import (
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/networklore/snmpctl/pkg/cisco"
	"github.com/networklore/snmpctl/pkg/snmp"
	"github.com/networklore/snmpctl/pkg/util"
)

// interfaceTableTTL bounds staleness of the cached ifDescr walk. Interface
// tables change on reboots and module inserts, not between settings of one
// invocation.
const interfaceTableTTL = time.Minute

// Device is one SNMP-managed switch. It holds the live session, the OID
// catalog, and a read-through cache of the interface-description table.
// Nothing persists between invocations; the device itself is the only
// durable state.
type Device struct {
	host    string
	client  snmp.Client
	oids    *cisco.Catalog
	ifCache *cache.Cache

	pollInterval time.Duration // ccCopyState poll interval
	pollAttempts int
}

// Connect validates the connection parameters, opens an SNMP session and
// returns a ready Device.
func Connect(params snmp.ConnectParams, oids *cisco.Catalog) (*Device, error) {
	client, err := snmp.Dial(params)
	if err != nil {
		return nil, err
	}
	return New(params.Host, client, oids), nil
}

// New wraps an existing transport. The catalog is taken as-is and never
// mutated.
func New(host string, client snmp.Client, oids *cisco.Catalog) *Device {
	return &Device{
		host:         host,
		client:       client,
		oids:         oids,
		ifCache:      cache.New(interfaceTableTTL, interfaceTableTTL),
		pollInterval: time.Second,
		pollAttempts: 60,
	}
}

// Host returns the device address.
func (d *Device) Host() string { return d.host }

// Close releases the SNMP session.
func (d *Device) Close() error {
	return d.client.Close()
}

// ensure performs one read-compare-write cycle. It never writes when the
// device already holds the desired value; on divergence it issues exactly
// one SET. Read failures and write failures abort the invocation.
func (d *Device) ensure(oid string, desired snmp.Value) (bool, error) {
	current, err := d.client.Get(oid)
	if err != nil {
		return false, &util.ReadError{OID: oid, Cause: err}
	}

	if current.Equal(desired) {
		util.WithDevice(d.host).Debugf("%s already %s, no write", oid, desired)
		return false, nil
	}

	if err := d.write(oid, desired); err != nil {
		return false, err
	}
	util.WithDevice(d.host).Infof("%s: %s -> %s", oid, current, desired)
	return true, nil
}

// write issues one unconditional SET. Used by ensure and by the row-based
// operations (VLAN edit buffer, config copy) that have no read-back step.
func (d *Device) write(oid string, v snmp.Value) error {
	if err := d.client.Set(oid, v); err != nil {
		return &util.WriteError{OID: oid, Cause: err}
	}
	return nil
}
