package protocol

import (
	"testing"

	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
)

func buildPDUBytes(t *testing.T, order ByteOrder, h Header, body []byte) []byte {
	t.Helper()
	buf := encodeHeader(order, h)
	buf = append(buf, body...)
	patchPayloadLength(buf, order, uint32(len(body)))
	return buf
}

func TestDecodePDUGetBulk(t *testing.T) {
	r1 := SearchRange{Start: NewOID(1, 3, 6, 1, 2, 1, 2, 2), Stop: NewOID(1, 3, 6, 1, 2, 1, 2, 3)}

	var body []byte
	body = appendUint16(body, LittleEndian, 1)
	body = appendUint16(body, LittleEndian, 10)
	var err *Error
	body, err = encodeSearchRangeList(body, LittleEndian, []SearchRange{r1})
	require.Nil(t, err)

	h := Header{Version: 1, Type: TypeGetBulk, SessionID: 1, TransactionID: 1, PacketID: 1}
	raw := buildPDUBytes(t, LittleEndian, h, body)

	pdu, n, derr := decodePDU(raw)
	require.Nil(t, derr)
	assert.Equal(t, len(raw), n)

	payload, ok := pdu.Payload.(GetBulkPayload)
	require.True(t, ok)
	assert.Equal(t, uint16(1), payload.NonRepeaters)
	assert.Equal(t, uint16(10), payload.MaxRepetitions)
	require.Len(t, payload.Ranges, 1)
	assert.True(t, payload.Ranges[0].Start.Equal(r1.Start))
}

func TestDecodePDUResponseWithContext(t *testing.T) {
	vb := NewIntegerVarbind(NewOID(1, 3, 6, 1, 2, 1, 1, 3, 0), VarTimeTicks, 999)
	var body []byte
	body = appendUint32(body, BigEndian, 1234)
	body = appendUint16(body, BigEndian, uint16(ErrNone))
	body = appendUint16(body, BigEndian, 0)
	vbBuf, err := encodeVarbind(nil, BigEndian, vb)
	require.Nil(t, err)
	body = append(body, vbBuf...)

	context := NewOctetStringFromText("ctx")
	full := encodeOctetString(nil, BigEndian, context)
	full = append(full, body...)

	h := Header{Version: 1, Type: TypeResponse, Flags: FlagNetworkByteOrder | FlagNonDefaultContext, SessionID: 5, TransactionID: 6, PacketID: 7}
	raw := buildPDUBytes(t, BigEndian, h, full)

	pdu, n, derr := decodePDU(raw)
	require.Nil(t, derr)
	assert.Equal(t, len(raw), n)
	require.NotNil(t, pdu.Context)
	assert.Equal(t, "ctx", pdu.Context.String())

	payload, ok := pdu.Payload.(ResponsePayload)
	require.True(t, ok)
	assert.Equal(t, uint32(1234), payload.SysUpTime)
	assert.Equal(t, ErrNone, payload.Error)
	require.Len(t, payload.Varbinds, 1)
	assert.Equal(t, uint32(999), payload.Varbinds[0].Uint32())
}

func TestDecodePDURawPayloadForOpen(t *testing.T) {
	h := Header{Version: 1, Type: TypeOpen, SessionID: 0, TransactionID: 0, PacketID: 1}
	body := []byte{5, 0, 0, 0}
	raw := buildPDUBytes(t, LittleEndian, h, body)

	pdu, _, derr := decodePDU(raw)
	require.Nil(t, derr)
	payload, ok := pdu.Payload.(RawPayload)
	require.True(t, ok)
	assert.Equal(t, body, payload.Data)
}

func TestDecodePDUEmptyPayloadForCommitSet(t *testing.T) {
	h := Header{Version: 1, Type: TypeCommitSet, SessionID: 1, TransactionID: 1, PacketID: 1}
	raw := buildPDUBytes(t, LittleEndian, h, nil)

	pdu, _, derr := decodePDU(raw)
	require.Nil(t, derr)
	_, ok := pdu.Payload.(EmptyPayload)
	assert.True(t, ok)
}

func TestDecodePDUShort(t *testing.T) {
	_, _, err := decodePDU(make([]byte, HeaderLen-1))
	require.NotNil(t, err)
	assert.Equal(t, ProtocolError, err.Kind)
}

func TestPDUString(t *testing.T) {
	h := Header{Type: TypeResponse}
	pdu := PDU{Header: h, Payload: ResponsePayload{Error: ErrNone}}
	s := pdu.String()
	assert.Contains(t, s, "Response")
	assert.Contains(t, s, "noError")
}
