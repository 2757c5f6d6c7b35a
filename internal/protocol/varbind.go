package protocol

import (
	"fmt"
)

// VarbindType is the 16-bit type tag carried by a varbind (RFC 2741 §5.4),
// using the same numbering as the SNMP SMI's ASN.1 application tags.
type VarbindType uint16

const (
	VarInteger32      VarbindType = 2
	VarOctetString    VarbindType = 4
	VarNull           VarbindType = 5
	VarOID            VarbindType = 6
	VarIPAddress      VarbindType = 64
	VarCounter32      VarbindType = 65
	VarGauge32        VarbindType = 66
	VarTimeTicks      VarbindType = 67
	VarOpaque         VarbindType = 68
	VarCounter64      VarbindType = 70
	VarNoSuchObject   VarbindType = 128
	VarNoSuchInstance VarbindType = 129
	VarEndOfMibView   VarbindType = 130
)

func (t VarbindType) String() string {
	switch t {
	case VarInteger32:
		return "Integer32"
	case VarOctetString:
		return "OctetString"
	case VarNull:
		return "Null"
	case VarOID:
		return "OID"
	case VarIPAddress:
		return "IpAddress"
	case VarCounter32:
		return "Counter32"
	case VarGauge32:
		return "Gauge32"
	case VarTimeTicks:
		return "TimeTicks"
	case VarOpaque:
		return "Opaque"
	case VarCounter64:
		return "Counter64"
	case VarNoSuchObject:
		return "noSuchObject"
	case VarNoSuchInstance:
		return "noSuchInstance"
	case VarEndOfMibView:
		return "endOfMibView"
	default:
		return "unknown"
	}
}

// Varbind is a tagged (name, value) pair (RFC 2741 §5.4).
type Varbind struct {
	Name OID
	Type VarbindType
	// exactly one of these is meaningful, selected by Type.
	uint32Value uint32
	uint64Value uint64
	octetValue  OctetString
	oidValue    OID
}

// NewIntegerVarbind builds a 32-bit-valued varbind (Integer32/Counter32/
// Gauge32/TimeTicks).
func NewIntegerVarbind(name OID, t VarbindType, v uint32) Varbind {
	return Varbind{Name: name, Type: t, uint32Value: v}
}

// NewCounter64Varbind builds a Counter64 varbind.
func NewCounter64Varbind(name OID, v uint64) Varbind {
	return Varbind{Name: name, Type: VarCounter64, uint64Value: v}
}

// NewOctetStringVarbind builds an OctetString/Opaque varbind.
func NewOctetStringVarbind(name OID, t VarbindType, v OctetString) Varbind {
	return Varbind{Name: name, Type: t, octetValue: v}
}

// NewIPAddressVarbind builds an IpAddress varbind; addr must be 4 bytes.
func NewIPAddressVarbind(name OID, addr [4]byte) Varbind {
	return Varbind{Name: name, Type: VarIPAddress, octetValue: NewOctetString(addr[:])}
}

// NewOIDVarbind builds an OID-valued varbind.
func NewOIDVarbind(name OID, v OID) Varbind {
	return Varbind{Name: name, Type: VarOID, oidValue: v}
}

// NewSentinelVarbind builds a Null/noSuchObject/noSuchInstance/endOfMibView
// varbind, none of which carry a value.
func NewSentinelVarbind(name OID, t VarbindType) Varbind {
	return Varbind{Name: name, Type: t}
}

// Uint32 returns the 32-bit integer value. Valid only when Type is
// Integer32, Counter32, Gauge32 or TimeTicks.
func (v Varbind) Uint32() uint32 { return v.uint32Value }

// Uint64 returns the 64-bit integer value. Valid only when Type is Counter64.
func (v Varbind) Uint64() uint64 { return v.uint64Value }

// OctetString returns the octet-string value. Valid only when Type is
// OctetString, IpAddress or Opaque.
func (v Varbind) OctetString() OctetString { return v.octetValue }

// OID returns the OID value. Valid only when Type is OID.
func (v Varbind) OID() OID { return v.oidValue }

func encodeVarbind(buf []byte, order ByteOrder, v Varbind) ([]byte, *Error) {
	out := appendUint16(buf, order, uint16(v.Type))
	out = append(out, 0, 0) // reserved
	var err *Error
	out, err = encodeOID(out, order, v.Name)
	if err != nil {
		return nil, err
	}

	switch v.Type {
	case VarInteger32, VarCounter32, VarGauge32, VarTimeTicks:
		out = appendUint32(out, order, v.uint32Value)
	case VarCounter64:
		out = appendUint64(out, order, v.uint64Value)
	case VarOctetString, VarIPAddress, VarOpaque:
		out = encodeOctetString(out, order, v.octetValue)
	case VarOID:
		out, err = encodeOID(out, order, v.oidValue)
		if err != nil {
			return nil, err
		}
	case VarNull, VarNoSuchObject, VarNoSuchInstance, VarEndOfMibView:
		// no value
	default:
		return nil, errf("encodeVarbind", InvalidArgument, "unsupported varbind type %d", v.Type)
	}
	return out, nil
}

func decodeVarbind(buf []byte, order ByteOrder) (Varbind, int, *Error) {
	if len(buf) < 4 {
		return Varbind{}, 0, errf("decodeVarbind", ProtocolError, "truncated varbind header: %d bytes", len(buf))
	}
	vtype := VarbindType(readUint16(buf[:2], order))
	off := 4

	name, n, err := decodeOID(buf[off:], order)
	if err != nil {
		return Varbind{}, 0, err
	}
	off += n

	vb := Varbind{Name: name, Type: vtype}

	switch vtype {
	case VarInteger32, VarCounter32, VarGauge32, VarTimeTicks:
		if len(buf) < off+4 {
			return Varbind{}, 0, errf("decodeVarbind", ProtocolError, "truncated 32-bit value")
		}
		vb.uint32Value = readUint32(buf[off:off+4], order)
		off += 4
	case VarCounter64:
		if len(buf) < off+8 {
			return Varbind{}, 0, errf("decodeVarbind", ProtocolError, "truncated 64-bit value")
		}
		vb.uint64Value = readUint64(buf[off:off+8], order)
		off += 8
	case VarOctetString, VarIPAddress, VarOpaque:
		os, n, err := decodeOctetString(buf[off:], order)
		if err != nil {
			return Varbind{}, 0, err
		}
		if vtype == VarIPAddress && os.Len() != 4 {
			return Varbind{}, 0, errf("decodeVarbind", ProtocolError, "ip-address length %d != 4", os.Len())
		}
		vb.octetValue = os
		off += n
	case VarOID:
		oidVal, n, err := decodeOID(buf[off:], order)
		if err != nil {
			return Varbind{}, 0, err
		}
		vb.oidValue = oidVal
		off += n
	case VarNull, VarNoSuchObject, VarNoSuchInstance, VarEndOfMibView:
		// no value
	default:
		return Varbind{}, 0, errf("decodeVarbind", ProtocolError, "unknown varbind type %d", vtype)
	}

	return vb, off, nil
}

// String renders the varbind as "OID: (type)value" for diagnostics.
func (v Varbind) String() string {
	return fmt.Sprintf("%s: (%s)%s", v.Name, v.Type, renderVarbindValue(v))
}
