// Package protocol implements the wire codec and per-connection session
// bookkeeping for the AgentX subagent protocol (RFC 2741). It assumes it is
// handed an already-connected full-duplex byte stream; dialing, accepting,
// retransmission and the MIB object registry are the caller's concern.
package protocol

// PDUType identifies the kind of PDU carried by a header.
type PDUType uint8

// PDU types, numbered exactly as RFC 2741 §6.1 defines them.
const (
	TypeOpen            PDUType = 1
	TypeClose           PDUType = 2
	TypeRegister        PDUType = 3
	TypeUnregister      PDUType = 4
	TypeGet             PDUType = 5
	TypeGetNext         PDUType = 6
	TypeGetBulk         PDUType = 7
	TypeTestSet         PDUType = 8
	TypeCommitSet       PDUType = 9
	TypeUndoSet         PDUType = 10
	TypeCleanupSet      PDUType = 11
	TypeNotify          PDUType = 12
	TypePing            PDUType = 13
	TypeIndexAllocate   PDUType = 14
	TypeIndexDeallocate PDUType = 15
	TypeAddAgentCaps    PDUType = 16
	TypeRemoveAgentCaps PDUType = 17
	TypeResponse        PDUType = 18
)

// String renders the PDU type name for diagnostics.
func (t PDUType) String() string {
	switch t {
	case TypeOpen:
		return "Open"
	case TypeClose:
		return "Close"
	case TypeRegister:
		return "Register"
	case TypeUnregister:
		return "Unregister"
	case TypeGet:
		return "Get"
	case TypeGetNext:
		return "GetNext"
	case TypeGetBulk:
		return "GetBulk"
	case TypeTestSet:
		return "TestSet"
	case TypeCommitSet:
		return "CommitSet"
	case TypeUndoSet:
		return "UndoSet"
	case TypeCleanupSet:
		return "CleanupSet"
	case TypeNotify:
		return "Notify"
	case TypePing:
		return "Ping"
	case TypeIndexAllocate:
		return "IndexAllocate"
	case TypeIndexDeallocate:
		return "IndexDeallocate"
	case TypeAddAgentCaps:
		return "AddAgentCaps"
	case TypeRemoveAgentCaps:
		return "RemoveAgentCaps"
	case TypeResponse:
		return "Response"
	default:
		return "Unknown"
	}
}

// Flags is the header flags bitset (RFC 2741 §6.1).
type Flags uint8

const (
	FlagInstanceRegistration Flags = 0x01
	FlagNewIndex             Flags = 0x02
	FlagAnyIndex             Flags = 0x04
	FlagNonDefaultContext    Flags = 0x08
	FlagNetworkByteOrder     Flags = 0x10
)

// Has reports whether all bits of mask are set.
func (f Flags) Has(mask Flags) bool { return f&mask == mask }

// CloseReason is the 1-byte reason code carried by a Close PDU.
type CloseReason uint8

const (
	CloseOther         CloseReason = 1
	CloseParseError    CloseReason = 2
	CloseProtocolError CloseReason = 3
	CloseTimeouts      CloseReason = 4
	CloseShutdown      CloseReason = 5
	CloseByManager     CloseReason = 6
)

// String renders the close reason name for diagnostics.
func (r CloseReason) String() string {
	switch r {
	case CloseOther:
		return "other"
	case CloseParseError:
		return "parseError"
	case CloseProtocolError:
		return "protocolError"
	case CloseTimeouts:
		return "timeouts"
	case CloseShutdown:
		return "shutdown"
	case CloseByManager:
		return "byManager"
	default:
		return "unknown"
	}
}

// ErrorCode is the 16-bit AgentX/SNMP error code carried by a Response PDU.
type ErrorCode uint16

// SNMP-derived and AgentX-specific error codes (RFC 2741 §7.2.4.1 / RFC 3416).
const (
	ErrNone ErrorCode = 0

	ErrGenErr              ErrorCode = 5
	ErrNoAccess            ErrorCode = 6
	ErrWrongType           ErrorCode = 7
	ErrWrongLength         ErrorCode = 8
	ErrWrongEncoding       ErrorCode = 9
	ErrWrongValue          ErrorCode = 10
	ErrNoCreation          ErrorCode = 11
	ErrInconsistentValue   ErrorCode = 12
	ErrResourceUnavailable ErrorCode = 13
	ErrCommitFailed        ErrorCode = 14
	ErrUndoFailed          ErrorCode = 15
	ErrNotWritable         ErrorCode = 17
	ErrInconsistentName    ErrorCode = 18

	ErrOpenFailed               ErrorCode = 256
	ErrNotOpen                  ErrorCode = 257
	ErrIndexWrong               ErrorCode = 258
	ErrIndexAlreadyAllocated    ErrorCode = 259
	ErrIndexNoneAvailable       ErrorCode = 260
	ErrIndexNotAllocated        ErrorCode = 261
	ErrUnsupportedContext       ErrorCode = 262
	ErrDuplicateRegistration    ErrorCode = 263
	ErrUnknownRegistration      ErrorCode = 264
	ErrUnknownAgentCaps         ErrorCode = 265
	ErrParseError               ErrorCode = 266
	ErrRequestDenied            ErrorCode = 267
	ErrProcessingError          ErrorCode = 268
)

// String renders the error code name for diagnostics.
func (e ErrorCode) String() string {
	switch e {
	case ErrNone:
		return "noError"
	case ErrGenErr:
		return "genErr"
	case ErrNoAccess:
		return "noAccess"
	case ErrWrongType:
		return "wrongType"
	case ErrWrongLength:
		return "wrongLength"
	case ErrWrongEncoding:
		return "wrongEncoding"
	case ErrWrongValue:
		return "wrongValue"
	case ErrNoCreation:
		return "noCreation"
	case ErrInconsistentValue:
		return "inconsistentValue"
	case ErrResourceUnavailable:
		return "resourceUnavailable"
	case ErrCommitFailed:
		return "commitFailed"
	case ErrUndoFailed:
		return "undoFailed"
	case ErrNotWritable:
		return "notWritable"
	case ErrInconsistentName:
		return "inconsistentName"
	case ErrOpenFailed:
		return "openFailed"
	case ErrNotOpen:
		return "notOpen"
	case ErrIndexWrong:
		return "indexWrong"
	case ErrIndexAlreadyAllocated:
		return "indexAlreadyAllocated"
	case ErrIndexNoneAvailable:
		return "indexNoneAvailable"
	case ErrIndexNotAllocated:
		return "indexNotAllocated"
	case ErrUnsupportedContext:
		return "unsupportedContext"
	case ErrDuplicateRegistration:
		return "duplicateRegistration"
	case ErrUnknownRegistration:
		return "unknownRegistration"
	case ErrUnknownAgentCaps:
		return "unknownAgentCaps"
	case ErrParseError:
		return "parseError"
	case ErrRequestDenied:
		return "requestDenied"
	case ErrProcessingError:
		return "processingError"
	default:
		return "unknown"
	}
}

// ByteOrder selects the wire byte order used by a session for PDUs it
// originates. Inbound PDUs are always decoded according to their own
// header's NETWORK_BYTE_ORDER flag, independent of this setting.
type ByteOrder bool

const (
	LittleEndian ByteOrder = false
	BigEndian    ByteOrder = true
)

const (
	// OIDMaxLen is the maximum number of sub-identifiers an OID may carry.
	OIDMaxLen = 128

	// HeaderLen is the size in bytes of the fixed PDU header.
	HeaderLen = 20

	// readChunk is the default growth increment for the read buffer.
	readChunk = 512

	// registryChunk is the default growth increment for the packet-id registry.
	registryChunk = 25
)
