package protocol

// SearchRange is a (start, stop) OID pair used by Get/GetNext/GetBulk
// (RFC 2741 §5.2).
type SearchRange struct {
	Start OID
	Stop  OID
}

// Payload is the tagged-union body of a decoded PDU, discriminated by the
// PDU's Header.Type. Implementations are sealed to this package; callers
// switch on the concrete type via a type switch.
type Payload interface {
	payloadMarker()
}

// SearchRangeListPayload carries the search ranges of a Get/GetNext PDU.
type SearchRangeListPayload struct {
	Ranges []SearchRange
}

func (SearchRangeListPayload) payloadMarker() {}

// GetBulkPayload carries the search ranges and repetition counts of a
// GetBulk PDU.
type GetBulkPayload struct {
	NonRepeaters   uint16
	MaxRepetitions uint16
	Ranges         []SearchRange
}

func (GetBulkPayload) payloadMarker() {}

// VarbindListPayload carries the varbinds of a TestSet PDU.
type VarbindListPayload struct {
	Varbinds []Varbind
}

func (VarbindListPayload) payloadMarker() {}

// ResponsePayload carries the body of a Response PDU.
type ResponsePayload struct {
	SysUpTime  uint32
	Error      ErrorCode
	ErrorIndex uint16
	Varbinds   []Varbind
}

func (ResponsePayload) payloadMarker() {}

// EmptyPayload is the body of CommitSet/UndoSet/CleanupSet PDUs, which
// carry no payload.
type EmptyPayload struct{}

func (EmptyPayload) payloadMarker() {}

// RawPayload is the body of any PDU type this package does not interpret
// structurally (Open/Close/Register/Unregister/Notify/Ping/IndexAllocate/
// IndexDeallocate/AddAgentCaps/RemoveAgentCaps): the raw payload bytes,
// with any NON_DEFAULT_CONTEXT octet string already peeled off.
type RawPayload struct {
	Data []byte
}

func (RawPayload) payloadMarker() {}

// PDU is a fully decoded AgentX PDU: header, optional context, and a
// payload whose concrete type is determined by Header.Type.
type PDU struct {
	Header  Header
	Context *OctetString
	Payload Payload
}

// decodePDU decodes one complete PDU from the front of buf, which must
// hold at least HeaderLen+PayloadLength bytes (the caller, Session.Receive,
// is responsible for buffering that much before calling). It returns the
// decoded PDU and the number of bytes consumed.
func decodePDU(buf []byte) (PDU, int, *Error) {
	h, err := decodeHeader(buf)
	if err != nil {
		return PDU{}, 0, err
	}
	need := HeaderLen + int(h.PayloadLength)
	if len(buf) < need {
		return PDU{}, 0, errf("decodePDU", ProtocolError, "short PDU: need %d have %d", need, len(buf))
	}
	order := h.order()
	body := buf[HeaderLen:need]

	var context *OctetString
	if h.Flags.Has(FlagNonDefaultContext) {
		ctx, n, cerr := decodeOctetString(body, order)
		if cerr != nil {
			return PDU{}, 0, cerr
		}
		context = &ctx
		body = body[n:]
	}

	payload, perr := decodePayload(h.Type, body, order)
	if perr != nil {
		return PDU{}, 0, perr
	}

	return PDU{Header: h, Context: context, Payload: payload}, need, nil
}

func decodePayload(t PDUType, body []byte, order ByteOrder) (Payload, *Error) {
	switch t {
	case TypeGet, TypeGetNext:
		ranges, err := decodeSearchRangeList(body, order)
		if err != nil {
			return nil, err
		}
		return SearchRangeListPayload{Ranges: ranges}, nil

	case TypeGetBulk:
		if len(body) < 4 {
			return nil, errf("decodePayload", ProtocolError, "truncated GetBulk header")
		}
		nonRep := readUint16(body[0:2], order)
		maxRep := readUint16(body[2:4], order)
		ranges, err := decodeSearchRangeList(body[4:], order)
		if err != nil {
			return nil, err
		}
		return GetBulkPayload{NonRepeaters: nonRep, MaxRepetitions: maxRep, Ranges: ranges}, nil

	case TypeTestSet:
		varbinds, err := decodeVarbindList(body, order)
		if err != nil {
			return nil, err
		}
		return VarbindListPayload{Varbinds: varbinds}, nil

	case TypeCommitSet, TypeUndoSet, TypeCleanupSet:
		return EmptyPayload{}, nil

	case TypeResponse:
		if len(body) < 8 {
			return nil, errf("decodePayload", ProtocolError, "truncated Response header")
		}
		sysUpTime := readUint32(body[0:4], order)
		errCode := ErrorCode(readUint16(body[4:6], order))
		errIndex := readUint16(body[6:8], order)
		varbinds, err := decodeVarbindList(body[8:], order)
		if err != nil {
			return nil, err
		}
		return ResponsePayload{SysUpTime: sysUpTime, Error: errCode, ErrorIndex: errIndex, Varbinds: varbinds}, nil

	default:
		// Open, Close, Register, Unregister, Notify, Ping, IndexAllocate,
		// IndexDeallocate, AddAgentCaps, RemoveAgentCaps: this package does
		// not interpret their bodies structurally (spec Non-goals).
		return RawPayload{Data: body}, nil
	}
}

func decodeSearchRangeList(body []byte, order ByteOrder) ([]SearchRange, *Error) {
	var ranges []SearchRange
	for len(body) > 0 {
		start, n, err := decodeOID(body, order)
		if err != nil {
			return nil, err
		}
		body = body[n:]
		stop, n, err := decodeOID(body, order)
		if err != nil {
			return nil, err
		}
		body = body[n:]
		ranges = append(ranges, SearchRange{Start: start, Stop: stop})
	}
	return ranges, nil
}

func decodeVarbindList(body []byte, order ByteOrder) ([]Varbind, *Error) {
	var varbinds []Varbind
	for len(body) > 0 {
		vb, n, err := decodeVarbind(body, order)
		if err != nil {
			return nil, err
		}
		body = body[n:]
		varbinds = append(varbinds, vb)
	}
	return varbinds, nil
}

func encodeSearchRangeList(buf []byte, order ByteOrder, ranges []SearchRange) ([]byte, *Error) {
	out := buf
	for _, r := range ranges {
		var err *Error
		out, err = encodeOID(out, order, r.Start)
		if err != nil {
			return nil, err
		}
		out, err = encodeOID(out, order, r.Stop)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
