package protocol

import (
	"io"
	"time"

	"github.com/google/uuid"
)

// Conn is the narrow byte-stream interface a Session needs. A net.Conn
// satisfies it; so does any other full-duplex, non-blocking byte stream.
// Non-blocking semantics are the caller's responsibility: Read/Write must
// return promptly, surfacing no-progress as an error satisfying
// isWouldBlock (see wouldblock.go).
type Conn interface {
	io.Reader
	io.Writer
}

// Session is per-connection AgentX state: read buffer, write buffer (split
// into committed and staged regions), the chosen byte order, and the set
// of outstanding request packet ids. It is single-owner, single-threaded:
// there is no internal locking (spec §5).
type Session struct {
	conn  Conn
	order ByteOrder
	hooks *Hooks
	tag   string

	sessionID     uint32
	nextTransID   uint32

	readBuf []byte
	readLen int

	writeBuf     []byte
	committedLen int
	stagedLen    int

	registry *packetIDRegistry

	readGrow int
}

// SessionID returns the session id last recorded with SetSessionID (zero
// until then). Receiving the master's Response to Open does not set it.
func (s *Session) SessionID() uint32 { return s.sessionID }

// SetSessionID records the session id the master assigned in its response
// to Open.
func (s *Session) SetSessionID(id uint32) { s.sessionID = id }

// ByteOrder reports the byte order this session uses for outbound PDUs.
func (s *Session) ByteOrder() ByteOrder { return s.order }

// Tag returns a short opaque string identifying this session in logs,
// generated once at construction (see SPEC_FULL.md §3.4). It is not part
// of the wire protocol.
func (s *Session) Tag() string { return s.tag }

// OutstandingRequests reports how many request packet ids are currently
// awaiting a Response.
func (s *Session) OutstandingRequests() int { return s.registry.len() }

// Shutdown releases the session's buffers and closes the underlying
// connection if it implements io.Closer. In-flight request packet ids are
// discarded silently, per spec §5; callers that care about timeouts must
// track them themselves. It does not send an AgentX Close PDU; callers
// that want a graceful shutdown stage one with Close before calling this.
func (s *Session) Shutdown() error {
	s.readBuf = nil
	s.writeBuf = nil
	s.registry = nil
	if closer, ok := s.conn.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func newSession(conn Conn, order ByteOrder, hooks *Hooks, readGrow, registryChunkSize int) *Session {
	return &Session{
		conn:        conn,
		order:       order,
		hooks:       hooks,
		tag:         uuid.New().String(),
		nextTransID: 1,
		readGrow:    readGrow,
		registry:    newPacketIDRegistryChunk(registryChunkSize),
	}
}

func newPacketIDRegistryChunk(chunk int) *packetIDRegistry {
	if chunk <= 0 {
		chunk = registryChunk
	}
	return &packetIDRegistry{ids: make([]uint32, 0, chunk)}
}

// --- write-side buffer management -----------------------------------------

func (s *Session) inProgress() bool { return s.stagedLen != s.committedLen }

func (s *Session) ensureWriteCapacity(extra int) {
	needed := s.stagedLen + extra
	if needed <= len(s.writeBuf) {
		return
	}
	grow := s.readGrow
	if grow <= 0 {
		grow = readChunk
	}
	newCap := len(s.writeBuf)
	for newCap < needed {
		newCap += grow
	}
	grown := make([]byte, newCap)
	copy(grown, s.writeBuf[:s.stagedLen])
	s.writeBuf = grown
}

func (s *Session) stageBytes(b []byte) {
	s.ensureWriteCapacity(len(b))
	copy(s.writeBuf[s.stagedLen:], b)
	s.stagedLen += len(b)
}

// rollback discards whatever has been staged since the last commit.
func (s *Session) rollback() {
	s.stagedLen = s.committedLen
}

// commit advances committedLen to stagedLen, making the staged PDU
// eligible for Transmit.
func (s *Session) commit() {
	s.committedLen = s.stagedLen
}

func (s *Session) nextTransactionID() uint32 {
	id := s.nextTransID
	s.nextTransID++
	return id
}

// beginBuild enforces the re-entry contract every builder shares: it fails
// with AlreadyInProgress if a previous build left the staged region
// non-empty relative to committed.
func (s *Session) beginBuild(op string) *Error {
	if s.inProgress() {
		return errf(op, AlreadyInProgress, "a PDU build is already in progress")
	}
	return nil
}

// buildRequest stages a full PDU for a request-originating type: header,
// optional context, body, and a freshly reserved packet id. On any failure
// the staged region and (if reserved) the packet id registry are rolled
// back, leaving no side effect.
func (s *Session) buildRequest(op string, pduType PDUType, flags Flags, context *OctetString, bodyFn func() *Error) (uint32, *Error) {
	if err := s.beginBuild(op); err != nil {
		return 0, err
	}

	packetID, err := s.registry.nextID()
	if err != nil {
		s.rollback()
		return 0, err
	}

	if err := s.stagePDU(op, pduType, flags, s.sessionID, s.nextTransactionID(), packetID, context, bodyFn); err != nil {
		s.registry.remove(packetID)
		s.nextTransID--
		return 0, err
	}
	return packetID, nil
}

// buildResponse stages a Response PDU using session/transaction/packet ids
// supplied by the caller (the request being answered), rather than
// reserving a fresh id.
func (s *Session) buildResponse(op string, sessionID, transactionID, packetID uint32, context *OctetString, bodyFn func() *Error) *Error {
	if err := s.beginBuild(op); err != nil {
		return err
	}
	return s.stagePDU(op, TypeResponse, 0, sessionID, transactionID, packetID, context, bodyFn)
}

func (s *Session) stagePDU(op string, pduType PDUType, flags Flags, sessionID, transactionID, packetID uint32, context *OctetString, bodyFn func() *Error) *Error {
	if context != nil {
		flags |= FlagNonDefaultContext
	}
	if s.order == BigEndian {
		flags |= FlagNetworkByteOrder
	}

	h := Header{
		Version:       1,
		Type:          pduType,
		Flags:         flags,
		SessionID:     sessionID,
		TransactionID: transactionID,
		PacketID:      packetID,
	}

	headerStart := s.stagedLen
	s.stageBytes(encodeHeader(s.order, h))

	if context != nil {
		s.stageBytes(encodeOctetString(nil, s.order, *context))
	}

	if err := bodyFn(); err != nil {
		s.rollback()
		return err
	}

	payloadLen := uint32(s.stagedLen - headerStart - HeaderLen)
	patchPayloadLength(s.writeBuf[headerStart:headerStart+HeaderLen], s.order, payloadLen)

	s.commit()
	return nil
}

// Open stages an Open PDU (RFC 2741 §6.2.1).
func (s *Session) Open(timeout uint8, agentOID OID, descr string, context *OctetString) (uint32, *Error) {
	return s.buildRequest("Open", TypeOpen, 0, context, func() *Error {
		s.stageBytes([]byte{timeout, 0, 0, 0})
		out, err := encodeOID(nil, s.order, agentOID)
		if err != nil {
			return err
		}
		s.stageBytes(out)
		s.stageBytes(encodeOctetString(nil, s.order, NewOctetStringFromText(descr)))
		return nil
	})
}

// Close stages a Close PDU (RFC 2741 §6.2.2).
func (s *Session) Close(reason CloseReason, context *OctetString) (uint32, *Error) {
	return s.buildRequest("Close", TypeClose, 0, context, func() *Error {
		s.stageBytes([]byte{byte(reason), 0, 0, 0})
		return nil
	})
}

// Register stages a Register PDU (RFC 2741 §6.2.3). flags may only
// contain FlagInstanceRegistration.
func (s *Session) Register(flags Flags, timeout, priority, rangeSubID uint8, subtree OID, upperBound uint32, context *OctetString) (uint32, *Error) {
	if flags&^FlagInstanceRegistration != 0 {
		return 0, errf("Register", InvalidArgument, "flags %#x outside {INSTANCE_REGISTRATION}", flags)
	}
	return s.buildRequest("Register", TypeRegister, flags, context, func() *Error {
		s.stageBytes([]byte{timeout, priority, rangeSubID, 0})
		out, err := encodeOID(nil, s.order, subtree)
		if err != nil {
			return err
		}
		s.stageBytes(out)
		if rangeSubID != 0 {
			s.stageBytes(appendUint32(nil, s.order, upperBound))
		}
		return nil
	})
}

// Unregister stages an Unregister PDU (RFC 2741 §6.2.4).
func (s *Session) Unregister(timeout, priority, rangeSubID uint8, subtree OID, upperBound uint32, context *OctetString) (uint32, *Error) {
	return s.buildRequest("Unregister", TypeUnregister, 0, context, func() *Error {
		s.stageBytes([]byte{timeout, priority, rangeSubID, 0})
		out, err := encodeOID(nil, s.order, subtree)
		if err != nil {
			return err
		}
		s.stageBytes(out)
		if rangeSubID != 0 {
			s.stageBytes(appendUint32(nil, s.order, upperBound))
		}
		return nil
	})
}

// IndexAllocate stages an IndexAllocate PDU (RFC 2741 §6.2.8). flags may
// only contain FlagNewIndex and/or FlagAnyIndex.
func (s *Session) IndexAllocate(flags Flags, varbinds []Varbind, context *OctetString) (uint32, *Error) {
	if flags&^(FlagNewIndex|FlagAnyIndex) != 0 {
		return 0, errf("IndexAllocate", InvalidArgument, "flags %#x outside {NEW_INDEX, ANY_INDEX}", flags)
	}
	return s.buildRequest("IndexAllocate", TypeIndexAllocate, flags, context, func() *Error {
		return s.stageVarbinds(varbinds)
	})
}

// IndexDeallocate stages an IndexDeallocate PDU (RFC 2741 §6.2.9).
func (s *Session) IndexDeallocate(varbinds []Varbind, context *OctetString) (uint32, *Error) {
	return s.buildRequest("IndexDeallocate", TypeIndexDeallocate, 0, context, func() *Error {
		return s.stageVarbinds(varbinds)
	})
}

// AddAgentCaps stages an AddAgentCaps PDU (RFC 2741 §6.2.13).
func (s *Session) AddAgentCaps(id OID, descr string, context *OctetString) (uint32, *Error) {
	return s.buildRequest("AddAgentCaps", TypeAddAgentCaps, 0, context, func() *Error {
		out, err := encodeOID(nil, s.order, id)
		if err != nil {
			return err
		}
		s.stageBytes(out)
		s.stageBytes(encodeOctetString(nil, s.order, NewOctetStringFromText(descr)))
		return nil
	})
}

// RemoveAgentCaps stages a RemoveAgentCaps PDU (RFC 2741 §6.2.14).
func (s *Session) RemoveAgentCaps(id OID, context *OctetString) (uint32, *Error) {
	return s.buildRequest("RemoveAgentCaps", TypeRemoveAgentCaps, 0, context, func() *Error {
		out, err := encodeOID(nil, s.order, id)
		if err != nil {
			return err
		}
		s.stageBytes(out)
		return nil
	})
}

// Response stages a Response PDU (RFC 2741 §6.2.14), using the
// session/transaction/packet ids of the request being answered rather
// than reserving a fresh id.
func (s *Session) Response(sessionID, transactionID, packetID uint32, sysUpTime uint32, errCode ErrorCode, errIndex uint16, varbinds []Varbind, context *OctetString) *Error {
	return s.buildResponse("Response", sessionID, transactionID, packetID, context, func() *Error {
		s.stageBytes(appendUint32(nil, s.order, sysUpTime))
		s.stageBytes(appendUint16(nil, s.order, uint16(errCode)))
		s.stageBytes(appendUint16(nil, s.order, errIndex))
		return s.stageVarbinds(varbinds)
	})
}

func (s *Session) stageVarbinds(varbinds []Varbind) *Error {
	for _, vb := range varbinds {
		out, err := encodeVarbind(nil, s.order, vb)
		if err != nil {
			return err
		}
		s.stageBytes(out)
	}
	return nil
}

// --- transmit (send path) --------------------------------------------------

// Transmit flushes as much of the committed write region as the
// connection accepts in one non-blocking write, preserving the unsent
// suffix for the next call. It refuses while a PDU build is in progress.
// On success it reports the number of bytes still unsent.
func (s *Session) Transmit() (int, *Error) {
	if s.inProgress() {
		return 0, errf("Transmit", AlreadyInProgress, "a PDU build is in progress")
	}
	if s.committedLen == 0 {
		return 0, nil
	}

	pending := s.writeBuf[:s.committedLen]
	s.hooks.BeforeSend(s.tag, pending)
	start := time.Now()
	n, err := s.conn.Write(pending)
	s.hooks.AfterSend(s.tag, n, err, time.Since(start))

	if n > 0 {
		copy(s.writeBuf, s.writeBuf[n:s.committedLen])
		s.committedLen -= n
		s.stagedLen -= n
	}

	if err != nil {
		if isWouldBlock(err) {
			return s.committedLen, newErr("Transmit", WouldBlock, err)
		}
		s.hooks.Error(s.tag, "Transmit", err)
		return s.committedLen, newErr("Transmit", IOError, err)
	}

	return s.committedLen, nil
}

// --- receive path -----------------------------------------------------

func (s *Session) ensureReadCapacity(extra int) {
	needed := s.readLen + extra
	if needed <= len(s.readBuf) {
		return
	}
	grow := s.readGrow
	if grow <= 0 {
		grow = readChunk
	}
	newCap := len(s.readBuf)
	for newCap < needed {
		newCap += grow
	}
	grown := make([]byte, newCap)
	copy(grown, s.readBuf[:s.readLen])
	s.readBuf = grown
}

// Receive issues a single non-blocking read and, if that read completes a
// full PDU already buffered, decodes and returns it. Each call makes at
// most one read syscall (spec §4.3: "one PDU per call, one read per
// call"); a caller wanting to drain everything available calls Receive in
// a loop until it gets WouldBlock. A decoded Response consumes its packet
// id from the outstanding-request registry.
func (s *Session) Receive() (*PDU, *Error) {
	s.hooks.BeforeReceive(s.tag)

	grow := s.readGrow
	if grow <= 0 {
		grow = readChunk
	}
	s.ensureReadCapacity(grow)

	start := time.Now()
	n, rerr := s.conn.Read(s.readBuf[s.readLen:])
	s.hooks.AfterReceive(s.tag, n, rerr, time.Since(start))
	if n > 0 {
		s.readLen += n
	}

	if rerr != nil && !isWouldBlock(rerr) {
		if isEOF(rerr) {
			return nil, newErr("Receive", ConnectionReset, rerr)
		}
		s.hooks.Error(s.tag, "Receive", rerr)
		return nil, newErr("Receive", IOError, rerr)
	}

	pdu, err := s.decodeBuffered()
	if err != nil {
		return nil, err
	}
	if pdu != nil {
		return pdu, nil
	}

	if rerr != nil {
		return nil, newErr("Receive", WouldBlock, rerr)
	}
	return nil, newErr("Receive", WouldBlock, nil)
}

// decodeBuffered attempts to decode one PDU from whatever has already
// been read into readBuf, without touching the connection. It returns a
// nil PDU (and nil error) if not enough bytes are buffered yet.
func (s *Session) decodeBuffered() (*PDU, *Error) {
	if s.readLen < HeaderLen {
		return nil, nil
	}
	h, herr := decodeHeader(s.readBuf[:HeaderLen])
	if herr != nil {
		return nil, herr
	}
	need := HeaderLen + int(h.PayloadLength)
	if s.readLen < need {
		s.ensureReadCapacity(need - s.readLen)
		return nil, nil
	}

	pdu, consumed, derr := decodePDU(s.readBuf[:need])
	if derr != nil {
		return nil, derr
	}

	if pdu.Header.Type == TypeResponse {
		if !s.registry.remove(pdu.Header.PacketID) {
			return nil, errf("decodeBuffered", ProtocolError, "response packet id %d not outstanding", pdu.Header.PacketID)
		}
	}

	copy(s.readBuf, s.readBuf[consumed:s.readLen])
	s.readLen -= consumed

	return &pdu, nil
}
