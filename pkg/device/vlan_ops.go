package device

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/networklore/snmpctl/pkg/cisco"
	"github.com/networklore/snmpctl/pkg/snmp"
	"github.com/networklore/snmpctl/pkg/util"
)

// CISCO-VTP-MIB edit buffer values.
const (
	vtpEditCopy    = 2 // copy running VLAN database into the edit buffer
	vtpEditApply   = 3
	vtpEditRelease = 4

	vtpRowCreateAndGo = 4
	vtpRowDestroy     = 6

	vtpTypeEthernet = 1

	// Management domain index; a single domain is assumed, as the
	// IOS SNMP agent exposes.
	vtpDomain = 1
)

const editBufferOwner = "snmpctl"

type editStep struct {
	oid string
	val snmp.Value
}

// EnsureVLAN makes sure the VLAN exists, optionally with the given name.
// Present and matching → no change. Otherwise the VTP edit-buffer sequence
// creates or renames it, and the VLAN table is re-read to verify the edit
// took effect.
func (d *Device) EnsureVLAN(id int, name string) (bool, error) {
	existsID, existsName, err := d.findVLAN(id, name)
	if err != nil {
		return false, err
	}
	if existsID && (name == "" || existsName) {
		return false, nil
	}

	steps := []editStep{
		{cisco.Instance(d.oids.VtpVlanEditOperation, vtpDomain), snmp.Integer(vtpEditCopy)},
		{cisco.Instance(d.oids.VtpVlanEditBufferOwner, vtpDomain), snmp.OctetString(editBufferOwner)},
		{cisco.Instance(d.oids.VtpVlanEditRowStatus, vtpDomain, id), snmp.Integer(vtpRowCreateAndGo)},
		{cisco.Instance(d.oids.VtpVlanEditType, vtpDomain, id), snmp.Integer(vtpTypeEthernet)},
	}
	if name != "" {
		steps = append(steps, editStep{cisco.Instance(d.oids.VtpVlanEditName, vtpDomain, id), snmp.OctetString(name)})
	}
	steps = append(steps,
		editStep{cisco.Instance(d.oids.VtpVlanEditOperation, vtpDomain), snmp.Integer(vtpEditApply)},
		editStep{cisco.Instance(d.oids.VtpVlanEditOperation, vtpDomain), snmp.Integer(vtpEditRelease)},
	)

	for _, s := range steps {
		if err := d.write(s.oid, s.val); err != nil {
			return false, err
		}
	}

	existsID, existsName, err = d.findVLAN(id, name)
	if err != nil {
		return false, err
	}
	if !existsID || (name != "" && !existsName) {
		return false, fmt.Errorf("%w: vlan %d not present after edit, check SNMP write access",
			util.ErrDeviceWrite, id)
	}

	util.WithDevice(d.host).Infof("created VLAN %d", id)
	return true, nil
}

// DeleteVLAN removes the VLAN if present. Absent → no change.
func (d *Device) DeleteVLAN(id int) (bool, error) {
	existsID, _, err := d.findVLAN(id, "")
	if err != nil {
		return false, err
	}
	if !existsID {
		return false, nil
	}

	steps := []editStep{
		{cisco.Instance(d.oids.VtpVlanEditOperation, vtpDomain), snmp.Integer(vtpEditCopy)},
		{cisco.Instance(d.oids.VtpVlanEditRowStatus, vtpDomain, id), snmp.Integer(vtpRowDestroy)},
		{cisco.Instance(d.oids.VtpVlanEditOperation, vtpDomain), snmp.Integer(vtpEditApply)},
		{cisco.Instance(d.oids.VtpVlanEditOperation, vtpDomain), snmp.Integer(vtpEditRelease)},
	}
	for _, s := range steps {
		if err := d.write(s.oid, s.val); err != nil {
			return false, err
		}
	}

	existsID, _, err = d.findVLAN(id, "")
	if err != nil {
		return false, err
	}
	if existsID {
		return false, fmt.Errorf("%w: vlan %d still present after delete, check SNMP write access",
			util.ErrDeviceWrite, id)
	}

	util.WithDevice(d.host).Infof("deleted VLAN %d", id)
	return true, nil
}

// findVLAN walks vtpVlanState to check for the id and, when a name is
// requested, vtpVlanName to check the name too. Instance OIDs end in
// <domain>.<vlanid>.
func (d *Device) findVLAN(id int, name string) (existsID, existsName bool, err error) {
	err = d.client.Walk(d.oids.VtpVlanState, func(oid string, v snmp.Value) error {
		if vlanIndex(oid) == id {
			existsID = true
		}
		return nil
	})
	if err != nil {
		return false, false, &util.CommunicationError{Host: d.host, Cause: err}
	}

	if name == "" {
		return existsID, false, nil
	}

	err = d.client.Walk(d.oids.VtpVlanName, func(oid string, v snmp.Value) error {
		if vlanIndex(oid) == id && v.Str == name {
			existsName = true
		}
		return nil
	})
	if err != nil {
		return false, false, &util.CommunicationError{Host: d.host, Cause: err}
	}
	return existsID, existsName, nil
}

// vlanIndex extracts the VLAN id from an instance OID (last sub-identifier).
func vlanIndex(oid string) int {
	id, err := strconv.Atoi(oid[strings.LastIndex(oid, ".")+1:])
	if err != nil {
		return -1
	}
	return id
}
