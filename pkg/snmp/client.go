// Package snmp wraps the gosnmp transport behind the narrow contract the
// reconciler needs: single GETs, GETNEXT walks over a subtree, and single
// SETs. Session construction, PDU encoding and v3 security processing stay
// inside gosnmp.
package snmp

import (
	"fmt"
	"strings"

	gsnmp "github.com/gosnmp/gosnmp"

	"github.com/networklore/snmpctl/pkg/util"
)

// Client is the transport contract consumed by the device layer.
type Client interface {
	// Get reads a single value. Missing objects are errors.
	Get(oid string) (Value, error)
	// Walk enumerates the subtree under base in lexicographic OID order,
	// invoking fn for every variable. A non-nil return from fn stops the
	// walk and is propagated.
	Walk(base string, fn func(oid string, v Value) error) error
	// Set writes a single value.
	Set(oid string, v Value) error
	Close() error
}

type client struct {
	g *gsnmp.GoSNMP
}

// Dial validates the connection parameters, builds a gosnmp session and
// opens the UDP socket.
func Dial(p ConnectParams) (Client, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	g := &gsnmp.GoSNMP{
		Target:  p.Host,
		Port:    p.Port,
		Timeout: p.Timeout,
		Retries: p.Retries,
	}
	if g.Port == 0 {
		g.Port = DefaultPort
	}
	if g.Timeout == 0 {
		g.Timeout = DefaultTimeout
	}
	if g.Retries == 0 {
		g.Retries = DefaultRetries
	}

	switch p.Version {
	case Version2c:
		g.Version = gsnmp.Version2c
		g.Community = p.V2c.Community
	case Version3:
		g.Version = gsnmp.Version3
		g.SecurityModel = gsnmp.UserSecurityModel
		usm := &gsnmp.UsmSecurityParameters{
			UserName:                 p.V3.Username,
			AuthenticationPassphrase: p.V3.AuthKey,
		}
		switch p.V3.Integrity {
		case "md5":
			usm.AuthenticationProtocol = gsnmp.MD5
		case "sha":
			usm.AuthenticationProtocol = gsnmp.SHA
		}
		if p.V3.Level == LevelAuthPriv {
			g.MsgFlags = gsnmp.AuthPriv
			usm.PrivacyPassphrase = p.V3.PrivKey
			switch p.V3.Privacy {
			case "des":
				usm.PrivacyProtocol = gsnmp.DES
			case "aes":
				usm.PrivacyProtocol = gsnmp.AES
			case "aes192":
				usm.PrivacyProtocol = gsnmp.AES192
			case "aes256":
				usm.PrivacyProtocol = gsnmp.AES256
			}
		} else {
			g.MsgFlags = gsnmp.AuthNoPriv
		}
		g.SecurityParameters = usm
	}

	if err := g.Connect(); err != nil {
		return nil, &util.CommunicationError{Host: p.Host, Cause: err}
	}
	return &client{g: g}, nil
}

func (c *client) Get(oid string) (Value, error) {
	resp, err := c.g.Get([]string{oid})
	if err != nil {
		return Value{}, err
	}
	if resp.Error != gsnmp.NoError {
		return Value{}, fmt.Errorf("snmp error status %v", resp.Error)
	}
	if len(resp.Variables) == 0 {
		return Value{}, fmt.Errorf("empty response for %s", oid)
	}
	pdu := resp.Variables[0]
	switch pdu.Type {
	case gsnmp.NoSuchObject, gsnmp.NoSuchInstance, gsnmp.Null:
		return Value{}, fmt.Errorf("no such object: %s", oid)
	}
	return decode(pdu), nil
}

func (c *client) Walk(base string, fn func(oid string, v Value) error) error {
	return c.g.Walk(base, func(pdu gsnmp.SnmpPDU) error {
		return fn(strings.TrimPrefix(pdu.Name, "."), decode(pdu))
	})
}

func (c *client) Set(oid string, v Value) error {
	pdu := gsnmp.SnmpPDU{Name: oid}
	switch v.Kind {
	case KindInteger:
		pdu.Type = gsnmp.Integer
		pdu.Value = v.Int
	case KindOctetString:
		pdu.Type = gsnmp.OctetString
		pdu.Value = v.Str
	case KindIPAddress:
		pdu.Type = gsnmp.IPAddress
		pdu.Value = v.Str
	default:
		return fmt.Errorf("cannot encode null value for %s", oid)
	}

	resp, err := c.g.Set([]gsnmp.SnmpPDU{pdu})
	if err != nil {
		return err
	}
	if resp.Error != gsnmp.NoError {
		return fmt.Errorf("snmp error status %v", resp.Error)
	}
	return nil
}

func (c *client) Close() error {
	if c.g.Conn != nil {
		return c.g.Conn.Close()
	}
	return nil
}

// decode maps a gosnmp PDU onto the Value domains the reconciler compares.
// Counter and gauge variants collapse into the integer domain.
func decode(pdu gsnmp.SnmpPDU) Value {
	switch pdu.Type {
	case gsnmp.OctetString:
		if b, ok := pdu.Value.([]byte); ok {
			return OctetString(string(b))
		}
		return OctetString(fmt.Sprintf("%v", pdu.Value))
	case gsnmp.IPAddress, gsnmp.ObjectIdentifier:
		return IPAddress(fmt.Sprintf("%v", pdu.Value))
	default:
		return Integer(int(gsnmp.ToBigInt(pdu.Value).Int64()))
	}
}
