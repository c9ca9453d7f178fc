package snmp

import "fmt"

// Kind identifies the decoded domain of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindInteger
	KindOctetString
	KindIPAddress
)

// Value is a decoded SNMP variable value. Only the domains this tool
// reads and writes are modeled: integers (enums, counters, VLAN ids),
// octet strings (names, descriptions) and IP addresses.
type Value struct {
	Kind Kind
	Int  int
	Str  string
}

// Integer returns an integer Value.
func Integer(n int) Value { return Value{Kind: KindInteger, Int: n} }

// OctetString returns an octet-string Value.
func OctetString(s string) Value { return Value{Kind: KindOctetString, Str: s} }

// IPAddress returns an IP-address Value.
func IPAddress(s string) Value { return Value{Kind: KindIPAddress, Str: s} }

// Equal reports exact equality on the decoded domain.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindInteger:
		return v.Int == o.Int
	case KindOctetString, KindIPAddress:
		return v.Str == o.Str
	}
	return true
}

func (v Value) String() string {
	switch v.Kind {
	case KindInteger:
		return fmt.Sprintf("%d", v.Int)
	case KindOctetString, KindIPAddress:
		return v.Str
	}
	return "null"
}
