package snmp

import (
	"time"

	"github.com/networklore/snmpctl/pkg/util"
)

// Version selects the SNMP protocol version for a session.
type Version string

const (
	Version2c Version = "2c"
	Version3  Version = "3"
)

// SNMPv3 security levels.
const (
	LevelAuthNoPriv = "authNoPriv"
	LevelAuthPriv   = "authPriv"
)

// Session defaults applied by Dial when the caller leaves them zero.
const (
	DefaultPort    uint16 = 161
	DefaultTimeout        = 5 * time.Second
	DefaultRetries        = 1
)

// V2cParams holds SNMPv2c credentials.
type V2cParams struct {
	Community string
}

// V3Params holds SNMPv3 USM credentials.
type V3Params struct {
	Username  string
	Level     string // authNoPriv or authPriv
	Integrity string // md5 or sha
	AuthKey   string
	Privacy   string // des, aes, aes192 or aes256; required for authPriv
	PrivKey   string
}

// ConnectParams is the connection-parameter bundle for one device session.
// It is a tagged union over the SNMP version: exactly one of V2c or V3 is
// populated, matching Version.
type ConnectParams struct {
	Host    string
	Port    uint16
	Timeout time.Duration
	Retries int

	Version Version
	V2c     *V2cParams
	V3      *V3Params
}

var (
	validIntegrity = map[string]bool{"md5": true, "sha": true}
	validPrivacy   = map[string]bool{"des": true, "aes": true, "aes192": true, "aes256": true}
)

// Validate enforces the internal consistency of the bundle: v2c requires a
// community, v3 requires username/level/integrity/authkey, and authPriv
// additionally requires a privacy algorithm and key.
func (p ConnectParams) Validate() error {
	b := &util.CredentialBuilder{}
	b.Require(p.Host != "", "host is required")

	switch p.Version {
	case Version2c:
		b.Require(p.V2c != nil && p.V2c.Community != "", "community not set when using snmp version 2c")
	case Version3:
		if p.V3 == nil {
			b.Addf("snmp version 3 credentials not set")
			break
		}
		b.Require(p.V3.Username != "", "username not set when using snmp version 3")
		b.Require(p.V3.Level == LevelAuthNoPriv || p.V3.Level == LevelAuthPriv,
			"level must be authNoPriv or authPriv")
		b.Require(validIntegrity[p.V3.Integrity], "integrity must be md5 or sha")
		b.Require(p.V3.AuthKey != "", "authkey not set when using snmp version 3")
		if p.V3.Level == LevelAuthPriv {
			if p.V3.Privacy == "3des" {
				b.Addf("privacy algorithm 3des is not supported")
			} else {
				b.Require(validPrivacy[p.V3.Privacy],
					"privacy algorithm not set when using authPriv (des, aes, aes192, aes256)")
			}
			b.Require(p.V3.PrivKey != "", "privkey not set when using authPriv")
		}
	default:
		b.Addf("snmp version must be 2c or 3, got %q", string(p.Version))
	}

	return b.Build()
}
