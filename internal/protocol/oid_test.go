package protocol

import (
	"testing"

	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
)

func TestOIDCompare(t *testing.T) {
	a := NewOID(1, 3, 6, 1, 2, 1)
	b := NewOID(1, 3, 6, 1, 2, 1)
	c := NewOID(1, 3, 6, 1, 2, 2)
	prefix := NewOID(1, 3, 6, 1, 2)

	assert.Equal(t, 0, a.Compare(b))
	assert.Equal(t, -1, a.Compare(c))
	assert.Equal(t, 1, c.Compare(a))
	assert.Equal(t, -2, prefix.Compare(a))
	assert.Equal(t, 2, a.Compare(prefix))
}

func TestOIDString(t *testing.T) {
	o := NewOID(1, 3, 6, 1, 4, 1)
	assert.Equal(t, "1.3.6.1.4.1", o.String())
}

func TestOIDRoundTripCompressible(t *testing.T) {
	o := NewOID(1, 3, 6, 1, 4, 1, 32473)
	buf, err := encodeOID(nil, LittleEndian, o)
	require.Nil(t, err)

	decoded, n, derr := decodeOID(buf, LittleEndian)
	require.Nil(t, derr)
	assert.Equal(t, len(buf), n)
	assert.Equal(t, o.SubIDs, decoded.SubIDs)
}

func TestOIDRoundTripNonCompressible(t *testing.T) {
	o := NewOID(1, 3, 6, 2, 1)
	buf, err := encodeOID(nil, BigEndian, o)
	require.Nil(t, err)

	decoded, n, derr := decodeOID(buf, BigEndian)
	require.Nil(t, derr)
	assert.Equal(t, len(buf), n)
	assert.Equal(t, o.SubIDs, decoded.SubIDs)
}

func TestOIDIncludeFlagPreserved(t *testing.T) {
	o := OID{SubIDs: []uint32{1, 3, 6, 1, 2, 1, 1}, Include: true}
	buf, err := encodeOID(nil, LittleEndian, o)
	require.Nil(t, err)

	decoded, _, derr := decodeOID(buf, LittleEndian)
	require.Nil(t, derr)
	assert.True(t, decoded.Include)
}

func TestEncodeOIDTooLong(t *testing.T) {
	subIDs := make([]uint32, OIDMaxLen+1)
	_, err := encodeOID(nil, LittleEndian, NewOID(subIDs...))
	require.NotNil(t, err)
	assert.Equal(t, InvalidArgument, err.Kind)
}

func TestDecodeOIDTruncated(t *testing.T) {
	_, _, err := decodeOID([]byte{0x02, 0x00, 0x00, 0x00, 0x00}, LittleEndian)
	require.NotNil(t, err)
	assert.Equal(t, ProtocolError, err.Kind)
}

func TestParseOID(t *testing.T) {
	o, err := ParseOID("1.3.6.1.4.1.8072")
	require.Nil(t, err)
	assert.Equal(t, []uint32{1, 3, 6, 1, 4, 1, 8072}, o.SubIDs)

	_, err = ParseOID("1.3.x.1")
	require.NotNil(t, err)
	assert.Equal(t, InvalidArgument, err.Kind)
}
