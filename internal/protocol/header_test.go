package protocol

import (
	"testing"

	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
)

func TestHeaderRoundTripLittleEndian(t *testing.T) {
	h := Header{Version: 1, Type: TypeOpen, Flags: 0, SessionID: 1, TransactionID: 2, PacketID: 3, PayloadLength: 10}
	buf := encodeHeader(LittleEndian, h)
	assert.Len(t, buf, HeaderLen)

	decoded, err := decodeHeader(buf)
	require.Nil(t, err)
	assert.Equal(t, h, decoded)
}

func TestHeaderRoundTripBigEndian(t *testing.T) {
	h := Header{Version: 1, Type: TypeResponse, Flags: FlagNetworkByteOrder, SessionID: 9, TransactionID: 8, PacketID: 7, PayloadLength: 20}
	buf := encodeHeader(BigEndian, h)

	decoded, err := decodeHeader(buf)
	require.Nil(t, err)
	assert.Equal(t, h, decoded)
}

// TestHeaderDecodesPerOwnByteOrder is the bi-endian invariant: a header
// decodes its length fields using its own NETWORK_BYTE_ORDER flag,
// independent of whatever order the caller happens to be using locally.
func TestHeaderDecodesPerOwnByteOrder(t *testing.T) {
	little := Header{Version: 1, Type: TypeOpen, Flags: 0, SessionID: 0x01020304, PacketID: 1}
	big := Header{Version: 1, Type: TypeOpen, Flags: FlagNetworkByteOrder, SessionID: 0x01020304, PacketID: 1}

	littleBuf := encodeHeader(LittleEndian, little)
	bigBuf := encodeHeader(BigEndian, big)

	decodedLittle, err := decodeHeader(littleBuf)
	require.Nil(t, err)
	assert.Equal(t, uint32(0x01020304), decodedLittle.SessionID)

	decodedBig, err := decodeHeader(bigBuf)
	require.Nil(t, err)
	assert.Equal(t, uint32(0x01020304), decodedBig.SessionID)

	assert.NotEqual(t, littleBuf[4:8], bigBuf[4:8])
}

func TestPatchPayloadLength(t *testing.T) {
	h := Header{Version: 1, Type: TypeOpen}
	buf := encodeHeader(LittleEndian, h)
	patchPayloadLength(buf, LittleEndian, 42)

	decoded, err := decodeHeader(buf)
	require.Nil(t, err)
	assert.Equal(t, uint32(42), decoded.PayloadLength)
}

func TestDecodeHeaderShort(t *testing.T) {
	_, err := decodeHeader(make([]byte, HeaderLen-1))
	require.NotNil(t, err)
	assert.Equal(t, ProtocolError, err.Kind)
}
