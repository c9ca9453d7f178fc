package device

import (
	"errors"
	"testing"

	"github.com/networklore/snmpctl/pkg/snmp"
	"github.com/networklore/snmpctl/pkg/util"
)

func ifDescrWalk(pairs ...walkPair) [][]walkPair {
	return [][]walkPair{pairs}
}

func TestResolveInterfaceNumericPassthrough(t *testing.T) {
	f := newFakeClient()
	d := testDevice(f)

	index, err := d.ResolveInterface(InterfaceRef{Index: 10105})
	if err != nil {
		t.Fatalf("ResolveInterface: %v", err)
	}
	if index != 10105 {
		t.Errorf("index = %d, want 10105", index)
	}
	if f.walkCalls != 0 {
		t.Error("numeric reference must not touch the device")
	}
}

func TestResolveInterfaceByName(t *testing.T) {
	f := newFakeClient()
	f.walks[oids.IfDescr] = ifDescrWalk(
		walkPair{oids.IfDescr + ".1", snmp.OctetString("Gi0/1")},
		walkPair{oids.IfDescr + ".10105", snmp.OctetString("Gi0/5")},
		walkPair{oids.IfDescr + ".3", snmp.OctetString("Gi0/3")},
	)
	d := testDevice(f)

	index, err := d.ResolveInterface(InterfaceRef{Name: "Gi0/5"})
	if err != nil {
		t.Fatalf("ResolveInterface: %v", err)
	}
	if index != 10105 {
		t.Errorf("index = %d, want 10105", index)
	}
}

func TestResolveInterfaceLastMatchWins(t *testing.T) {
	f := newFakeClient()
	f.walks[oids.IfDescr] = ifDescrWalk(
		walkPair{oids.IfDescr + ".7", snmp.OctetString("Gi0/5")},
		walkPair{oids.IfDescr + ".9", snmp.OctetString("Gi0/5")},
	)
	d := testDevice(f)

	index, err := d.ResolveInterface(InterfaceRef{Name: "Gi0/5"})
	if err != nil {
		t.Fatalf("ResolveInterface: %v", err)
	}
	if index != 9 {
		t.Errorf("index = %d, want last match 9", index)
	}
}

func TestResolveInterfaceNotFound(t *testing.T) {
	f := newFakeClient()
	f.walks[oids.IfDescr] = ifDescrWalk(
		walkPair{oids.IfDescr + ".1", snmp.OctetString("Gi0/1")},
	)
	d := testDevice(f)

	_, err := d.ResolveInterface(InterfaceRef{Name: "Gi0/99"})
	if !errors.Is(err, util.ErrInterfaceNotFound) {
		t.Fatalf("expected ErrInterfaceNotFound, got %v", err)
	}
}

func TestResolveInterfaceWalkFailure(t *testing.T) {
	f := newFakeClient()
	f.walkErr[oids.IfDescr] = errors.New("timeout")
	d := testDevice(f)

	_, err := d.ResolveInterface(InterfaceRef{Name: "Gi0/1"})
	if !errors.Is(err, util.ErrDeviceCommunication) {
		t.Fatalf("expected ErrDeviceCommunication, got %v", err)
	}
}

func TestInterfaceTableCached(t *testing.T) {
	f := newFakeClient()
	f.walks[oids.IfDescr] = ifDescrWalk(
		walkPair{oids.IfDescr + ".1", snmp.OctetString("Gi0/1")},
		walkPair{oids.IfDescr + ".2", snmp.OctetString("Gi0/2")},
	)
	d := testDevice(f)

	for _, name := range []string{"Gi0/1", "Gi0/2", "Gi0/1"} {
		if _, err := d.ResolveInterface(InterfaceRef{Name: name}); err != nil {
			t.Fatalf("ResolveInterface(%s): %v", name, err)
		}
	}
	if f.walkCalls != 1 {
		t.Errorf("walkCalls = %d, want 1 (table should be cached)", f.walkCalls)
	}
}

func TestInterfaces(t *testing.T) {
	f := newFakeClient()
	f.walks[oids.IfDescr] = ifDescrWalk(
		walkPair{oids.IfDescr + ".1", snmp.OctetString("Gi0/1")},
		walkPair{oids.IfDescr + ".10105", snmp.OctetString("Gi0/5")},
	)
	d := testDevice(f)

	entries, err := d.Interfaces()
	if err != nil {
		t.Fatalf("Interfaces: %v", err)
	}
	want := []InterfaceEntry{
		{Index: 1, Name: "Gi0/1"},
		{Index: 10105, Name: "Gi0/5"},
	}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d", len(entries), len(want))
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, entries[i], want[i])
		}
	}
}
