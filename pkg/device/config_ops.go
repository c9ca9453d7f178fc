package device

import (
	"fmt"
	"time"

	"github.com/networklore/snmpctl/pkg/cisco"
	"github.com/networklore/snmpctl/pkg/snmp"
	"github.com/networklore/snmpctl/pkg/util"
)

// CISCO-CONFIG-COPY-MIB values.
const (
	ccProtocolTFTP = 1

	ccStateSuccessful = 3
	ccStateFailed     = 4

	ccRowActive  = 1
	ccRowDestroy = 6

	// Row index in ccCopyTable; one job at a time.
	ccRow = 1
)

// ccFileTypes maps endpoint labels onto ConfigFileType values.
var ccFileTypes = map[string]int{
	"tftp":           ccProtocolTFTP,
	"startup-config": 3,
	"running-config": 4,
}

// CopyConfigOptions describes one config-copy job. Server and Filename are
// required when either endpoint is tftp.
type CopyConfigOptions struct {
	Source      string // tftp, startup-config or running-config
	Destination string
	Server      string // TFTP server address
	Filename    string
}

// SaveConfig copies running-config to startup-config ("write memory").
// A successful copy always reports changed.
func (d *Device) SaveConfig() (bool, error) {
	return d.CopyConfig(CopyConfigOptions{
		Source:      "running-config",
		Destination: "startup-config",
	})
}

// CopyConfig drives one ccCopyTable job: create the row, start it, poll
// ccCopyState until it finishes, and destroy the row. The row is destroyed
// on failure paths too so a stuck entry does not block the next job.
func (d *Device) CopyConfig(opts CopyConfigOptions) (bool, error) {
	source, ok := ccFileTypes[opts.Source]
	if !ok {
		return false, fmt.Errorf("%w: unknown copy source %q", util.ErrInvalidValue, opts.Source)
	}
	dest, ok := ccFileTypes[opts.Destination]
	if !ok {
		return false, fmt.Errorf("%w: unknown copy destination %q", util.ErrInvalidValue, opts.Destination)
	}

	steps := []editStep{
		{cisco.Instance(d.oids.CcCopySourceFileType, ccRow), snmp.Integer(source)},
		{cisco.Instance(d.oids.CcCopyDestFileType, ccRow), snmp.Integer(dest)},
	}
	if opts.Server != "" && opts.Filename != "" &&
		(opts.Source == "tftp" || opts.Destination == "tftp") {
		steps = append(steps,
			editStep{cisco.Instance(d.oids.CcCopyProtocol, ccRow), snmp.Integer(ccProtocolTFTP)},
			editStep{cisco.Instance(d.oids.CcCopyFileName, ccRow), snmp.OctetString(opts.Filename)},
			editStep{cisco.Instance(d.oids.CcCopyServerAddress, ccRow), snmp.IPAddress(opts.Server)},
		)
	}
	steps = append(steps, editStep{cisco.Instance(d.oids.CcCopyEntryRowStatus, ccRow), snmp.Integer(ccRowActive)})

	for _, s := range steps {
		if err := d.write(s.oid, s.val); err != nil {
			d.destroyCopyRow()
			return false, err
		}
	}

	stateOID := cisco.Instance(d.oids.CcCopyState, ccRow)
	for attempt := 0; attempt < d.pollAttempts; attempt++ {
		state, err := d.client.Get(stateOID)
		if err != nil {
			d.destroyCopyRow()
			return false, &util.ReadError{OID: stateOID, Cause: err}
		}
		switch state.Int {
		case ccStateSuccessful:
			d.destroyCopyRow()
			util.WithDevice(d.host).Infof("config copy %s -> %s done", opts.Source, opts.Destination)
			return true, nil
		case ccStateFailed:
			d.destroyCopyRow()
			return false, fmt.Errorf("%w: config copy failed", util.ErrDeviceWrite)
		}
		time.Sleep(d.pollInterval)
	}

	d.destroyCopyRow()
	return false, fmt.Errorf("%w: config copy did not finish", util.ErrDeviceWrite)
}

// destroyCopyRow is best-effort cleanup; the job result has already been
// decided when it runs.
func (d *Device) destroyCopyRow() {
	oid := cisco.Instance(d.oids.CcCopyEntryRowStatus, ccRow)
	if err := d.client.Set(oid, snmp.Integer(ccRowDestroy)); err != nil {
		util.WithDevice(d.host).Warnf("destroying copy row: %v", err)
	}
}
