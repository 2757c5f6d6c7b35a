// Package agentx is the public facade over internal/protocol: a
// client-side codec and session for the AgentX subagent protocol (RFC
// 2741). It re-exports the core types so importers never need to reach
// into internal/.
package agentx

import "agentx.example/subagent/internal/protocol"

type (
	// Session is a per-connection AgentX session: buffering, PDU
	// builders, and the outstanding-request packet id registry.
	Session = protocol.Session
	// SessionOption configures a Session at construction time.
	SessionOption = protocol.SessionOption
	// Conn is the byte-stream interface a Session wraps.
	Conn = protocol.Conn

	// OID is an AgentX object identifier.
	OID = protocol.OID
	// OctetString is a length-prefixed, padded byte run.
	OctetString = protocol.OctetString
	// Varbind is a tagged (name, value) pair.
	Varbind = protocol.Varbind
	// VarbindType is the wire type tag of a Varbind.
	VarbindType = protocol.VarbindType
	// SearchRange is a (start, stop) OID pair.
	SearchRange = protocol.SearchRange

	// Header is the fixed AgentX PDU header.
	Header = protocol.Header
	// PDU is a fully decoded AgentX PDU.
	PDU = protocol.PDU
	// PDUType identifies the kind of PDU carried by a header.
	PDUType = protocol.PDUType
	// Flags is the header flags bitset.
	Flags = protocol.Flags
	// CloseReason is the 1-byte reason code carried by a Close PDU.
	CloseReason = protocol.CloseReason
	// ErrorCode is the 16-bit AgentX/SNMP error code carried by a Response PDU.
	ErrorCode = protocol.ErrorCode
	// ByteOrder selects the wire byte order a session uses for outbound PDUs.
	ByteOrder = protocol.ByteOrder

	// Payload is the tagged-union body of a decoded PDU.
	Payload = protocol.Payload
	// SearchRangeListPayload carries the search ranges of a Get/GetNext PDU.
	SearchRangeListPayload = protocol.SearchRangeListPayload
	// GetBulkPayload carries the search ranges and repetition counts of a GetBulk PDU.
	GetBulkPayload = protocol.GetBulkPayload
	// VarbindListPayload carries the varbinds of a TestSet PDU.
	VarbindListPayload = protocol.VarbindListPayload
	// ResponsePayload carries the body of a Response PDU.
	ResponsePayload = protocol.ResponsePayload
	// EmptyPayload is the body of a PDU that carries none.
	EmptyPayload = protocol.EmptyPayload
	// RawPayload is the body of a PDU this package does not interpret structurally.
	RawPayload = protocol.RawPayload

	// Kind classifies an Error.
	Kind = protocol.Kind
	// Error is the error type returned by every exported operation.
	Error = protocol.Error

	// Hooks defines trace callbacks a Session invokes around sends and receives.
	Hooks = protocol.Hooks
)

// Re-exported constructors, session options, hook tiers and error sentinels.
var (
	NewSession             = protocol.NewSession
	NewOID                 = protocol.NewOID
	ParseOID               = protocol.ParseOID
	NewOctetString         = protocol.NewOctetString
	NewOctetStringFromText = protocol.NewOctetStringFromText
	NewIntegerVarbind      = protocol.NewIntegerVarbind
	NewCounter64Varbind    = protocol.NewCounter64Varbind
	NewOctetStringVarbind  = protocol.NewOctetStringVarbind
	NewIPAddressVarbind    = protocol.NewIPAddressVarbind
	NewOIDVarbind          = protocol.NewOIDVarbind
	NewSentinelVarbind     = protocol.NewSentinelVarbind

	WithByteOrder     = protocol.WithByteOrder
	WithHooks         = protocol.WithHooks
	WithReadChunk     = protocol.WithReadChunk
	WithPacketIDChunk = protocol.WithPacketIDChunk

	NoOpHooks       = protocol.NoOpHooks
	DefaultHooks    = protocol.DefaultHooks
	MetricHooks     = protocol.MetricHooks
	DiagnosticHooks = protocol.DiagnosticHooks

	ErrWouldBlock    = protocol.ErrWouldBlock
	ErrProtocolError = protocol.ErrProtocolError
)

const (
	LittleEndian = protocol.LittleEndian
	BigEndian    = protocol.BigEndian
)

// Error kinds, forwarded so callers never need to import internal/protocol
// to branch on (*Error).Kind.
const (
	InvalidArgument   = protocol.InvalidArgument
	AlreadyInProgress = protocol.AlreadyInProgress
	WouldBlock        = protocol.WouldBlock
	ConnectionReset   = protocol.ConnectionReset
	ProtocolError     = protocol.ProtocolError
	OutOfMemory       = protocol.OutOfMemory
	IOError           = protocol.IOError
)

const (
	TypeOpen            = protocol.TypeOpen
	TypeClose           = protocol.TypeClose
	TypeRegister        = protocol.TypeRegister
	TypeUnregister      = protocol.TypeUnregister
	TypeGet             = protocol.TypeGet
	TypeGetNext         = protocol.TypeGetNext
	TypeGetBulk         = protocol.TypeGetBulk
	TypeTestSet         = protocol.TypeTestSet
	TypeCommitSet       = protocol.TypeCommitSet
	TypeUndoSet         = protocol.TypeUndoSet
	TypeCleanupSet      = protocol.TypeCleanupSet
	TypeNotify          = protocol.TypeNotify
	TypePing            = protocol.TypePing
	TypeIndexAllocate   = protocol.TypeIndexAllocate
	TypeIndexDeallocate = protocol.TypeIndexDeallocate
	TypeAddAgentCaps    = protocol.TypeAddAgentCaps
	TypeRemoveAgentCaps = protocol.TypeRemoveAgentCaps
	TypeResponse        = protocol.TypeResponse
)

const (
	CloseOther         = protocol.CloseOther
	CloseParseError    = protocol.CloseParseError
	CloseProtocolError = protocol.CloseProtocolError
	CloseTimeouts      = protocol.CloseTimeouts
	CloseShutdown      = protocol.CloseShutdown
	CloseByManager     = protocol.CloseByManager
)
