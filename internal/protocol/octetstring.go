package protocol

// OctetString is a length-prefixed, 4-byte-padded byte run. Decoded values
// carry a trailing NUL beyond the reported length (not counted in Len), to
// ease downstream handling of textual values; the NUL is never emitted on
// the wire.
type OctetString struct {
	// data has length Len()+1; the last byte is always zero.
	data []byte
}

// NewOctetString wraps raw bytes into an OctetString.
func NewOctetString(b []byte) OctetString {
	data := make([]byte, len(b)+1)
	copy(data, b)
	return OctetString{data: data}
}

// NewOctetStringFromText wraps a string into an OctetString.
func NewOctetStringFromText(s string) OctetString {
	return NewOctetString([]byte(s))
}

// Len returns the logical (unpadded, NUL-excluded) length.
func (s OctetString) Len() int {
	if len(s.data) == 0 {
		return 0
	}
	return len(s.data) - 1
}

// Bytes returns the logical content, excluding the trailing NUL.
func (s OctetString) Bytes() []byte {
	if len(s.data) == 0 {
		return nil
	}
	return s.data[:len(s.data)-1]
}

// String returns the logical content as a string.
func (s OctetString) String() string {
	return string(s.Bytes())
}

func padLen(n int) int {
	return (4 - n%4) % 4
}

// encodeOctetString appends the wire encoding of s to buf using order.
func encodeOctetString(buf []byte, order ByteOrder, s OctetString) []byte {
	b := s.Bytes()
	out := appendUint32(buf, order, uint32(len(b)))
	out = append(out, b...)
	pad := padLen(len(b))
	for i := 0; i < pad; i++ {
		out = append(out, 0)
	}
	return out
}

// decodeOctetString reads a wire-encoded octet string from buf, returning
// the value and the number of bytes consumed.
func decodeOctetString(buf []byte, order ByteOrder) (OctetString, int, *Error) {
	if len(buf) < 4 {
		return OctetString{}, 0, errf("decodeOctetString", ProtocolError, "truncated length: %d bytes", len(buf))
	}
	length := int(readUint32(buf[:4], order))
	pad := padLen(length)
	need := 4 + length + pad
	if length < 0 || len(buf) < need {
		return OctetString{}, 0, errf("decodeOctetString", ProtocolError, "length %d exceeds remaining payload %d", length, len(buf)-4)
	}
	return NewOctetString(buf[4 : 4+length]), need, nil
}
