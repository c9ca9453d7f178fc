package device

import (
	"errors"
	"testing"

	"github.com/networklore/snmpctl/pkg/cisco"
	"github.com/networklore/snmpctl/pkg/snmp"
	"github.com/networklore/snmpctl/pkg/util"
)

func TestSaveConfig(t *testing.T) {
	stateOID := cisco.Instance(oids.CcCopyState, ccRow)
	f := newFakeClient()
	// Still running on the first poll, successful on the second.
	f.getSeq[stateOID] = []snmp.Value{snmp.Integer(2), snmp.Integer(ccStateSuccessful)}

	changed, err := testDevice(f).SaveConfig()
	if err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}
	if !changed {
		t.Error("a successful copy always reports change")
	}

	wantSets := []setCall{
		{cisco.Instance(oids.CcCopySourceFileType, ccRow), snmp.Integer(4)}, // running-config
		{cisco.Instance(oids.CcCopyDestFileType, ccRow), snmp.Integer(3)},   // startup-config
		{cisco.Instance(oids.CcCopyEntryRowStatus, ccRow), snmp.Integer(ccRowActive)},
		{cisco.Instance(oids.CcCopyEntryRowStatus, ccRow), snmp.Integer(ccRowDestroy)},
	}
	if len(f.sets) != len(wantSets) {
		t.Fatalf("got %d SETs, want %d: %v", len(f.sets), len(wantSets), f.sets)
	}
	for i, want := range wantSets {
		if f.sets[i] != want {
			t.Errorf("SET %d = %+v, want %+v", i, f.sets[i], want)
		}
	}
}

func TestCopyConfigToTFTP(t *testing.T) {
	stateOID := cisco.Instance(oids.CcCopyState, ccRow)
	f := newFakeClient()
	f.getSeq[stateOID] = []snmp.Value{snmp.Integer(ccStateSuccessful)}

	changed, err := testDevice(f).CopyConfig(CopyConfigOptions{
		Source:      "running-config",
		Destination: "tftp",
		Server:      "10.0.0.5",
		Filename:    "switch1.cfg",
	})
	if err != nil {
		t.Fatalf("CopyConfig: %v", err)
	}
	if !changed {
		t.Error("expected change")
	}

	byOID := map[string]snmp.Value{}
	for _, s := range f.sets {
		byOID[s.oid] = s.val
	}
	if v := byOID[cisco.Instance(oids.CcCopyProtocol, ccRow)]; v != snmp.Integer(ccProtocolTFTP) {
		t.Errorf("protocol = %v", v)
	}
	if v := byOID[cisco.Instance(oids.CcCopyFileName, ccRow)]; v != snmp.OctetString("switch1.cfg") {
		t.Errorf("filename = %v", v)
	}
	if v := byOID[cisco.Instance(oids.CcCopyServerAddress, ccRow)]; v != snmp.IPAddress("10.0.0.5") {
		t.Errorf("server = %v", v)
	}
}

func TestCopyConfigReportsFailure(t *testing.T) {
	stateOID := cisco.Instance(oids.CcCopyState, ccRow)
	f := newFakeClient()
	f.getSeq[stateOID] = []snmp.Value{snmp.Integer(ccStateFailed)}

	changed, err := testDevice(f).SaveConfig()
	if !errors.Is(err, util.ErrDeviceWrite) {
		t.Fatalf("expected ErrDeviceWrite, got %v", err)
	}
	if changed {
		t.Error("failed copy must not report change")
	}
	// The row must still be destroyed.
	last := f.sets[len(f.sets)-1]
	if last.oid != cisco.Instance(oids.CcCopyEntryRowStatus, ccRow) ||
		last.val != snmp.Integer(ccRowDestroy) {
		t.Errorf("expected final destroy SET, got %+v", last)
	}
}

func TestCopyConfigPollExhausted(t *testing.T) {
	stateOID := cisco.Instance(oids.CcCopyState, ccRow)
	f := newFakeClient()
	f.values[stateOID] = snmp.Integer(2) // running forever

	_, err := testDevice(f).SaveConfig()
	if !errors.Is(err, util.ErrDeviceWrite) {
		t.Fatalf("expected ErrDeviceWrite, got %v", err)
	}
	last := f.sets[len(f.sets)-1]
	if last.val != snmp.Integer(ccRowDestroy) {
		t.Errorf("expected final destroy SET, got %+v", last)
	}
}

func TestCopyConfigPollReadFailure(t *testing.T) {
	stateOID := cisco.Instance(oids.CcCopyState, ccRow)
	f := newFakeClient()
	f.getErr[stateOID] = errors.New("timeout")

	_, err := testDevice(f).SaveConfig()
	if !errors.Is(err, util.ErrDeviceRead) {
		t.Fatalf("expected ErrDeviceRead, got %v", err)
	}
}

func TestCopyConfigRejectsUnknownEndpoints(t *testing.T) {
	f := newFakeClient()
	_, err := testDevice(f).CopyConfig(CopyConfigOptions{
		Source:      "flash",
		Destination: "startup-config",
	})
	if !errors.Is(err, util.ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue, got %v", err)
	}
	if len(f.sets) != 0 {
		t.Error("invalid endpoint must not reach the device")
	}
}
