package protocol

import (
	"testing"

	assert "github.com/stretchr/testify/assert"
)

func TestPDUTypeString(t *testing.T) {
	assert.Equal(t, "Open", TypeOpen.String())
	assert.Equal(t, "Response", TypeResponse.String())
	assert.Equal(t, "Unknown", PDUType(99).String())
}

func TestFlagsHas(t *testing.T) {
	f := FlagNewIndex | FlagNetworkByteOrder
	assert.True(t, f.Has(FlagNewIndex))
	assert.True(t, f.Has(FlagNetworkByteOrder))
	assert.False(t, f.Has(FlagAnyIndex))
	assert.True(t, f.Has(FlagNewIndex|FlagNetworkByteOrder))
}

func TestCloseReasonString(t *testing.T) {
	assert.Equal(t, "shutdown", CloseShutdown.String())
	assert.Equal(t, "unknown", CloseReason(0).String())
}

func TestErrorCodeString(t *testing.T) {
	assert.Equal(t, "noError", ErrNone.String())
	assert.Equal(t, "duplicateRegistration", ErrDuplicateRegistration.String())
	assert.Equal(t, "unknown", ErrorCode(1000).String())
}
