package inventory

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/networklore/snmpctl/pkg/snmp"
)

const testInventory = `
devices:
  access1:
    host: 10.0.0.1
    snmp_version: "2c"
    community: private
    timeout: 10
    retries: 3
  core1:
    host: 10.0.1.1
    port: 1161
    snmp_version: "3"
    username: admin
    level: authPriv
    integrity: sha
    authkey: authkey123
    privacy: aes
    privkey: privkey123
`

func writeInventory(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hosts.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadV2cEntry(t *testing.T) {
	inv, err := Load(writeInventory(t, testInventory))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	p, err := inv.Params("access1")
	if err != nil {
		t.Fatalf("Params: %v", err)
	}
	if p.Host != "10.0.0.1" || p.Version != snmp.Version2c {
		t.Errorf("unexpected params %+v", p)
	}
	if p.V2c == nil || p.V2c.Community != "private" {
		t.Errorf("v2c credentials not populated: %+v", p.V2c)
	}
	if p.V3 != nil {
		t.Error("v2c entry must not populate v3 credentials")
	}
	if p.Timeout != 10*time.Second || p.Retries != 3 {
		t.Errorf("timeout/retries = %v/%d", p.Timeout, p.Retries)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("entry should validate: %v", err)
	}
}

func TestLoadV3Entry(t *testing.T) {
	inv, err := Load(writeInventory(t, testInventory))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	p, err := inv.Params("core1")
	if err != nil {
		t.Fatalf("Params: %v", err)
	}
	if p.Version != snmp.Version3 || p.Port != 1161 {
		t.Errorf("unexpected params %+v", p)
	}
	if p.V3 == nil {
		t.Fatal("v3 credentials not populated")
	}
	if p.V3.Username != "admin" || p.V3.Level != snmp.LevelAuthPriv ||
		p.V3.Integrity != "sha" || p.V3.Privacy != "aes" {
		t.Errorf("v3 credentials = %+v", p.V3)
	}
	if p.V2c != nil {
		t.Error("v3 entry must not populate v2c credentials")
	}
	if err := p.Validate(); err != nil {
		t.Errorf("entry should validate: %v", err)
	}
}

func TestParamsUnknownDevice(t *testing.T) {
	inv, err := Load(writeInventory(t, testInventory))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := inv.Params("missing"); err == nil {
		t.Error("expected an error for an unknown device")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	if _, err := Load(writeInventory(t, "devices: [not a map")); err == nil {
		t.Error("expected a parse error")
	}
}
