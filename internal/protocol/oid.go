package protocol

import (
	"encoding/binary"
	"strconv"
	"strings"
)

// OID is an ordered sequence of sub-identifiers, plus an Include flag used
// by search ranges (RFC 2741 §5.1).
type OID struct {
	SubIDs  []uint32
	Include bool
}

// NewOID builds an OID from sub-identifiers, Include defaulting to false.
func NewOID(subIDs ...uint32) OID {
	return OID{SubIDs: subIDs}
}

// String renders the OID as dot-separated decimals.
func (o OID) String() string {
	parts := make([]string, len(o.SubIDs))
	for i, v := range o.SubIDs {
		parts[i] = strconv.FormatUint(uint64(v), 10)
	}
	return strings.Join(parts, ".")
}

// Equal reports whether two OIDs have identical sub-identifiers. Include is
// not considered, matching RFC 2741's equality semantics for names.
func (o OID) Equal(other OID) bool {
	return o.Compare(other) == 0
}

// Compare implements the two-valued "prefix" comparison the spec requires:
//
//	-2  o is a strict prefix of other
//	-1  o < other at the first differing sub-identifier
//	 0  equal
//	+1  o > other at the first differing sub-identifier
//	+2  other is a strict prefix of o
func (o OID) Compare(other OID) int {
	n := len(o.SubIDs)
	if len(other.SubIDs) < n {
		n = len(other.SubIDs)
	}
	for i := 0; i < n; i++ {
		if o.SubIDs[i] < other.SubIDs[i] {
			return -1
		}
		if o.SubIDs[i] > other.SubIDs[i] {
			return 1
		}
	}
	switch {
	case len(o.SubIDs) == len(other.SubIDs):
		return 0
	case len(o.SubIDs) < len(other.SubIDs):
		return -2
	default:
		return 2
	}
}

// ParseOID parses a dotted-decimal OID string such as "1.3.6.1.4.1.8072".
func ParseOID(s string) (OID, *Error) {
	parts := strings.Split(s, ".")
	subIDs := make([]uint32, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseUint(p, 10, 32)
		if err != nil {
			return OID{}, errf("ParseOID", InvalidArgument, "invalid sub-identifier %q in %q", p, s)
		}
		subIDs[i] = uint32(v)
	}
	return OID{SubIDs: subIDs}, nil
}

// agentxPrefixRoot is the 1.3.6.1 root eligible for prefix compression.
var agentxPrefixRoot = [4]uint32{1, 3, 6, 1}

// compressiblePrefix reports whether subIDs begins with 1.3.6.1.x where
// x <= 255, returning that x and true if so.
func compressiblePrefix(subIDs []uint32) (byte, bool) {
	if len(subIDs) < 5 {
		return 0, false
	}
	for i, want := range agentxPrefixRoot {
		if subIDs[i] != want {
			return 0, false
		}
	}
	if subIDs[4] > 255 {
		return 0, false
	}
	return byte(subIDs[4]), true
}

// encodeOID appends the wire encoding of o to buf using order.
func encodeOID(buf []byte, order ByteOrder, o OID) ([]byte, *Error) {
	if len(o.SubIDs) > OIDMaxLen {
		return nil, errf("encodeOID", InvalidArgument, "oid length %d exceeds max %d", len(o.SubIDs), OIDMaxLen)
	}

	tail := o.SubIDs
	var prefix byte
	if p, ok := compressiblePrefix(o.SubIDs); ok {
		prefix = p
		tail = o.SubIDs[5:]
	}

	out := append(buf, byte(len(tail)), prefix, boolByte(o.Include), 0)
	for _, sub := range tail {
		out = appendUint32(out, order, sub)
	}
	return out, nil
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

// decodeOID reads a wire-encoded OID from buf, returning the OID and the
// number of bytes consumed.
func decodeOID(buf []byte, order ByteOrder) (OID, int, *Error) {
	if len(buf) < 4 {
		return OID{}, 0, errf("decodeOID", ProtocolError, "truncated oid header: %d bytes", len(buf))
	}
	nsubid := int(buf[0])
	prefix := buf[1]
	include := buf[2] != 0
	need := 4 + nsubid*4
	if len(buf) < need {
		return OID{}, 0, errf("decodeOID", ProtocolError, "truncated oid body: need %d have %d", need, len(buf))
	}

	var subIDs []uint32
	if prefix != 0 {
		subIDs = make([]uint32, 0, 5+nsubid)
		subIDs = append(subIDs, agentxPrefixRoot[0], agentxPrefixRoot[1], agentxPrefixRoot[2], agentxPrefixRoot[3], uint32(prefix))
	} else {
		subIDs = make([]uint32, 0, nsubid)
	}
	off := 4
	for i := 0; i < nsubid; i++ {
		subIDs = append(subIDs, readUint32(buf[off:off+4], order))
		off += 4
	}
	return OID{SubIDs: subIDs, Include: include}, need, nil
}

func appendUint32(buf []byte, order ByteOrder, v uint32) []byte {
	var tmp [4]byte
	if order == BigEndian {
		binary.BigEndian.PutUint32(tmp[:], v)
	} else {
		binary.LittleEndian.PutUint32(tmp[:], v)
	}
	return append(buf, tmp[:]...)
}

func appendUint16(buf []byte, order ByteOrder, v uint16) []byte {
	var tmp [2]byte
	if order == BigEndian {
		binary.BigEndian.PutUint16(tmp[:], v)
	} else {
		binary.LittleEndian.PutUint16(tmp[:], v)
	}
	return append(buf, tmp[:]...)
}

func appendUint64(buf []byte, order ByteOrder, v uint64) []byte {
	var tmp [8]byte
	if order == BigEndian {
		binary.BigEndian.PutUint64(tmp[:], v)
	} else {
		binary.LittleEndian.PutUint64(tmp[:], v)
	}
	return append(buf, tmp[:]...)
}

func readUint32(b []byte, order ByteOrder) uint32 {
	if order == BigEndian {
		return binary.BigEndian.Uint32(b)
	}
	return binary.LittleEndian.Uint32(b)
}

func readUint16(b []byte, order ByteOrder) uint16 {
	if order == BigEndian {
		return binary.BigEndian.Uint16(b)
	}
	return binary.LittleEndian.Uint16(b)
}

func readUint64(b []byte, order ByteOrder) uint64 {
	if order == BigEndian {
		return binary.BigEndian.Uint64(b)
	}
	return binary.LittleEndian.Uint64(b)
}
