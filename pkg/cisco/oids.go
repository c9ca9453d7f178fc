// Package cisco holds the vendor MIB objects and value encodings this tool
// manages. OIDs come from IF-MIB, CISCO-CDP-MIB, CISCO-VTP-MIB,
// CISCO-VLAN-MEMBERSHIP-MIB, CISCO-CONFIG-COPY-MIB and
// CISCO-PORT-SECURITY-MIB.
package cisco

import "fmt"

// Catalog maps symbolic setting names onto their MIB OIDs. It is immutable
// after construction; pass it explicitly to the device layer.
type Catalog struct {
	// IF-MIB
	IfIndex       string
	IfDescr       string
	IfAdminStatus string
	IfAlias       string

	// CISCO-CDP-MIB
	CdpGlobalRun       string
	CdpInterfaceEnable string

	// CISCO-VTP-MIB (trunking + VLAN edit buffer)
	VlanTrunkPortDynamicState string
	VlanTrunkPortNativeVlan   string
	VtpVlanState              string
	VtpVlanName               string
	VtpVlanEditOperation      string
	VtpVlanEditBufferOwner    string
	VtpVlanEditRowStatus      string
	VtpVlanEditType           string
	VtpVlanEditName           string

	// CISCO-VLAN-MEMBERSHIP-MIB
	VmVlan string

	// CISCO-CONFIG-COPY-MIB
	CcCopyProtocol       string
	CcCopySourceFileType string
	CcCopyDestFileType   string
	CcCopyServerAddress  string
	CcCopyFileName       string
	CcCopyState          string
	CcCopyEntryRowStatus string

	// CISCO-PORT-SECURITY-MIB
	CpsIfPortSecurityEnable       string
	CpsIfMaxSecureMacAddr         string
	CpsIfSecureMacAddrAgingTime   string
	CpsIfSecureMacAddrAgingType   string
	CpsIfStaticMacAddrAgingEnable string
	CpsIfViolationAction          string
	CpsIfStickyEnable             string
}

// DefaultCatalog returns the Cisco IOS object identifiers.
func DefaultCatalog() *Catalog {
	return &Catalog{
		IfIndex:       "1.3.6.1.2.1.2.2.1.1",
		IfDescr:       "1.3.6.1.2.1.2.2.1.2",
		IfAdminStatus: "1.3.6.1.2.1.2.2.1.7",
		IfAlias:       "1.3.6.1.2.1.31.1.1.1.18",

		CdpGlobalRun:       "1.3.6.1.4.1.9.9.23.1.3.1",
		CdpInterfaceEnable: "1.3.6.1.4.1.9.9.23.1.1.1.1.2",

		VlanTrunkPortDynamicState: "1.3.6.1.4.1.9.9.46.1.6.1.1.13",
		VlanTrunkPortNativeVlan:   "1.3.6.1.4.1.9.9.46.1.6.1.1.5",
		VtpVlanState:              "1.3.6.1.4.1.9.9.46.1.3.1.1.2",
		VtpVlanName:               "1.3.6.1.4.1.9.9.46.1.3.1.1.4",
		VtpVlanEditOperation:      "1.3.6.1.4.1.9.9.46.1.4.1.1.1",
		VtpVlanEditBufferOwner:    "1.3.6.1.4.1.9.9.46.1.4.1.1.3",
		VtpVlanEditRowStatus:      "1.3.6.1.4.1.9.9.46.1.4.2.1.11",
		VtpVlanEditType:           "1.3.6.1.4.1.9.9.46.1.4.2.1.3",
		VtpVlanEditName:           "1.3.6.1.4.1.9.9.46.1.4.2.1.4",

		VmVlan: "1.3.6.1.4.1.9.9.68.1.2.2.1.2",

		CcCopyProtocol:       "1.3.6.1.4.1.9.9.96.1.1.1.1.2",
		CcCopySourceFileType: "1.3.6.1.4.1.9.9.96.1.1.1.1.3",
		CcCopyDestFileType:   "1.3.6.1.4.1.9.9.96.1.1.1.1.4",
		CcCopyServerAddress:  "1.3.6.1.4.1.9.9.96.1.1.1.1.5",
		CcCopyFileName:       "1.3.6.1.4.1.9.9.96.1.1.1.1.6",
		CcCopyState:          "1.3.6.1.4.1.9.9.96.1.1.1.1.10",
		CcCopyEntryRowStatus: "1.3.6.1.4.1.9.9.96.1.1.1.1.14",

		CpsIfPortSecurityEnable:       "1.3.6.1.4.1.9.9.315.1.2.1.1.1",
		CpsIfMaxSecureMacAddr:         "1.3.6.1.4.1.9.9.315.1.2.1.1.3",
		CpsIfSecureMacAddrAgingTime:   "1.3.6.1.4.1.9.9.315.1.2.1.1.5",
		CpsIfSecureMacAddrAgingType:   "1.3.6.1.4.1.9.9.315.1.2.1.1.6",
		CpsIfStaticMacAddrAgingEnable: "1.3.6.1.4.1.9.9.315.1.2.1.1.7",
		CpsIfViolationAction:          "1.3.6.1.4.1.9.9.315.1.2.1.1.8",
		CpsIfStickyEnable:             "1.3.6.1.4.1.9.9.315.1.2.1.1.15",
	}
}

// Global addresses a scalar object (instance .0).
func Global(base string) string {
	return base + ".0"
}

// Indexed addresses a per-interface column by ifIndex.
func Indexed(base string, ifIndex int) string {
	return fmt.Sprintf("%s.%d", base, ifIndex)
}

// Instance addresses an arbitrary table instance, e.g. a ccCopy row or a
// VLAN edit buffer cell.
func Instance(base string, parts ...int) string {
	oid := base
	for _, p := range parts {
		oid = fmt.Sprintf("%s.%d", oid, p)
	}
	return oid
}
