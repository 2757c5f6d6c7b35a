package protocol

import "testing"

// FuzzDecodePDU exercises decodePDU against arbitrary bytes. Malformed
// input must surface as a *Error, never a panic, since a subagent cannot
// let one bad PDU from the master take down the process.
func FuzzDecodePDU(f *testing.F) {
	seeds := [][]byte{
		nil,
		{1, 2, 3},
		make([]byte, HeaderLen),
		buildPDUBytesForFuzz(),
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("decodePDU panicked on %x: %v", data, r)
			}
		}()
		_, _, _ = decodePDU(data)
	})
}

func buildPDUBytesForFuzz() []byte {
	h := Header{Version: 1, Type: TypeOpen, SessionID: 1, TransactionID: 1, PacketID: 1}
	body := []byte{5, 0, 0, 0}
	buf := encodeHeader(LittleEndian, h)
	buf = append(buf, body...)
	patchPayloadLength(buf, LittleEndian, uint32(len(body)))
	return buf
}

// FuzzDecodeOID exercises decodeOID against arbitrary bytes for the same
// no-panic guarantee.
func FuzzDecodeOID(f *testing.F) {
	f.Add([]byte{0x01, 0x04, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01})
	f.Fuzz(func(t *testing.T, data []byte) {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("decodeOID panicked on %x: %v", data, r)
			}
		}()
		_, _, _ = decodeOID(data, LittleEndian)
	})
}
