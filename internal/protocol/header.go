package protocol

// Header is the fixed 20-byte AgentX PDU header (RFC 2741 §6.1).
type Header struct {
	Version       uint8
	Type          PDUType
	Flags         Flags
	SessionID     uint32
	TransactionID uint32
	PacketID      uint32
	PayloadLength uint32
}

// order reports the byte order this header's PDU was/should be encoded in.
func (h Header) order() ByteOrder {
	if h.Flags.Has(FlagNetworkByteOrder) {
		return BigEndian
	}
	return LittleEndian
}

// encodeHeader writes h's fixed fields into a fresh 20-byte buffer, always
// using order (the session's chosen order for outbound PDUs).
func encodeHeader(order ByteOrder, h Header) []byte {
	buf := make([]byte, 0, HeaderLen)
	buf = append(buf, h.Version, byte(h.Type), byte(h.Flags), 0)
	buf = appendUint32(buf, order, h.SessionID)
	buf = appendUint32(buf, order, h.TransactionID)
	buf = appendUint32(buf, order, h.PacketID)
	buf = appendUint32(buf, order, h.PayloadLength)
	return buf
}

// decodeHeader reads a 20-byte header, decoding the length-bearing fields
// according to the header's own NETWORK_BYTE_ORDER flag.
func decodeHeader(buf []byte) (Header, *Error) {
	if len(buf) < HeaderLen {
		return Header{}, errf("decodeHeader", ProtocolError, "short header: %d bytes", len(buf))
	}
	h := Header{
		Version: buf[0],
		Type:    PDUType(buf[1]),
		Flags:   Flags(buf[2]),
	}
	order := h.order()
	h.SessionID = readUint32(buf[4:8], order)
	h.TransactionID = readUint32(buf[8:12], order)
	h.PacketID = readUint32(buf[12:16], order)
	h.PayloadLength = readUint32(buf[16:20], order)
	return h, nil
}

// patchPayloadLength rewrites the payload-length field of a previously
// encoded header in place, using order.
func patchPayloadLength(buf []byte, order ByteOrder, length uint32) {
	tmp := appendUint32(nil, order, length)
	copy(buf[16:20], tmp)
}
