package snmp

import (
	"errors"
	"strings"
	"testing"

	"github.com/networklore/snmpctl/pkg/util"
)

func v3(mutate func(*V3Params)) ConnectParams {
	p := ConnectParams{
		Host:    "10.0.0.1",
		Version: Version3,
		V3: &V3Params{
			Username:  "admin",
			Level:     LevelAuthPriv,
			Integrity: "sha",
			AuthKey:   "authkey123",
			Privacy:   "aes",
			PrivKey:   "privkey123",
		},
	}
	if mutate != nil {
		mutate(p.V3)
	}
	return p
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		params  ConnectParams
		wantErr string // substring; empty means valid
	}{
		{
			name:   "valid v2c",
			params: ConnectParams{Host: "10.0.0.1", Version: Version2c, V2c: &V2cParams{Community: "private"}},
		},
		{
			name:    "v2c missing community",
			params:  ConnectParams{Host: "10.0.0.1", Version: Version2c, V2c: &V2cParams{}},
			wantErr: "community not set",
		},
		{
			name:    "v2c nil credentials",
			params:  ConnectParams{Host: "10.0.0.1", Version: Version2c},
			wantErr: "community not set",
		},
		{
			name:    "missing host",
			params:  ConnectParams{Version: Version2c, V2c: &V2cParams{Community: "private"}},
			wantErr: "host is required",
		},
		{
			name:   "valid v3 authPriv",
			params: v3(nil),
		},
		{
			name:   "valid v3 authNoPriv without privacy",
			params: v3(func(p *V3Params) { p.Level = LevelAuthNoPriv; p.Privacy = ""; p.PrivKey = "" }),
		},
		{
			name:    "v3 missing username",
			params:  v3(func(p *V3Params) { p.Username = "" }),
			wantErr: "username not set",
		},
		{
			name:    "v3 bad level",
			params:  v3(func(p *V3Params) { p.Level = "noAuthNoPriv" }),
			wantErr: "level must be",
		},
		{
			name:    "v3 bad integrity",
			params:  v3(func(p *V3Params) { p.Integrity = "sha512" }),
			wantErr: "integrity must be",
		},
		{
			name:    "v3 missing authkey",
			params:  v3(func(p *V3Params) { p.AuthKey = "" }),
			wantErr: "authkey not set",
		},
		{
			name:    "v3 authPriv missing privacy",
			params:  v3(func(p *V3Params) { p.Privacy = "" }),
			wantErr: "privacy algorithm not set",
		},
		{
			name:    "v3 3des rejected",
			params:  v3(func(p *V3Params) { p.Privacy = "3des" }),
			wantErr: "3des is not supported",
		},
		{
			name:    "v3 authPriv missing privkey",
			params:  v3(func(p *V3Params) { p.PrivKey = "" }),
			wantErr: "privkey not set",
		},
		{
			name:    "unknown version",
			params:  ConnectParams{Host: "10.0.0.1", Version: "1"},
			wantErr: "version must be 2c or 3",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate: %v", err)
				}
				return
			}
			if !errors.Is(err, util.ErrCredentials) {
				t.Fatalf("expected ErrCredentials, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateCollectsAllProblems(t *testing.T) {
	err := v3(func(p *V3Params) {
		p.Username = ""
		p.AuthKey = ""
		p.PrivKey = ""
	}).Validate()

	var credErr *util.CredentialError
	if !errors.As(err, &credErr) {
		t.Fatalf("expected CredentialError, got %v", err)
	}
	if len(credErr.Errors) != 3 {
		t.Errorf("got %d problems, want 3: %v", len(credErr.Errors), credErr.Errors)
	}
}
