package protocol

import (
	"strings"
	"testing"

	assert "github.com/stretchr/testify/assert"
)

func TestRenderOctetStringPrintable(t *testing.T) {
	s := NewOctetStringFromText("hello")
	assert.Equal(t, "hello", renderOctetString(s))
}

func TestRenderOctetStringBinary(t *testing.T) {
	s := NewOctetString([]byte{0x00, 0xff, 0x10})
	got := renderOctetString(s)
	assert.Equal(t, "00ff10", got)
}

func TestRenderOctetStringTruncates(t *testing.T) {
	s := NewOctetStringFromText(strings.Repeat("a", maxRenderLen+10))
	got := renderOctetString(s)
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.LessOrEqual(t, len(got), maxRenderLen+3)
}

func TestRenderIPAddress(t *testing.T) {
	s := NewOctetString([]byte{192, 0, 2, 1})
	assert.Equal(t, "192.0.2.1", renderIPAddress(s))
}

func TestSearchRangeString(t *testing.T) {
	incl := SearchRange{Start: OID{SubIDs: []uint32{1, 3, 6, 1}, Include: true}, Stop: NewOID(1, 3, 6, 2)}
	excl := SearchRange{Start: NewOID(1, 3, 6, 1), Stop: NewOID(1, 3, 6, 2)}

	assert.True(t, strings.HasPrefix(incl.String(), "["))
	assert.True(t, strings.HasPrefix(excl.String(), "("))
}

func TestRenderOIDRange(t *testing.T) {
	oid := NewOID(1, 3, 6, 1, 4, 1, 32473, 1, 5)

	assert.Equal(t, oid.String(), renderOIDRange(oid, 0, 0))
	assert.Equal(t, "1.3.6.1.4.1.32473.[1-20].5", renderOIDRange(oid, 8, 20))
}

func TestPDUStringRendersRegisterSubtreeRange(t *testing.T) {
	subtree := NewOID(1, 3, 6, 1, 4, 1, 32473, 1)
	var body []byte
	body = append(body, 5, 128, 8, 0)
	oidBytes, err := encodeOID(nil, LittleEndian, subtree)
	assert.Nil(t, err)
	body = append(body, oidBytes...)
	body = appendUint32(body, LittleEndian, 20)

	pdu := PDU{
		Header:  Header{Version: 1, Type: TypeRegister},
		Payload: RawPayload{Data: body},
	}
	got := pdu.String()
	assert.Contains(t, got, "timeout=5")
	assert.Contains(t, got, "priority=128")
	assert.Contains(t, got, "subtree=1.3.6.1.4.1.32473.[1-20]")
}
