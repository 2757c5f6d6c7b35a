package protocol

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// maxRenderLen bounds how much of an octet-string value diagnostics will
// print before truncating with "...".
const maxRenderLen = 64

// renderVarbindValue renders the value half of a Varbind for String(),
// choosing a printable or hex representation for octet strings and a dotted
// form for IpAddress.
func renderVarbindValue(v Varbind) string {
	switch v.Type {
	case VarInteger32, VarCounter32, VarGauge32, VarTimeTicks:
		return fmt.Sprintf("%d", v.uint32Value)
	case VarCounter64:
		return fmt.Sprintf("%d", v.uint64Value)
	case VarOID:
		return v.oidValue.String()
	case VarIPAddress:
		return renderIPAddress(v.octetValue)
	case VarOctetString, VarOpaque:
		return renderOctetString(v.octetValue)
	case VarNull, VarNoSuchObject, VarNoSuchInstance, VarEndOfMibView:
		return ""
	default:
		return "?"
	}
}

func renderIPAddress(s OctetString) string {
	b := s.Bytes()
	if len(b) != 4 {
		return renderOctetString(s)
	}
	return fmt.Sprintf("%d.%d.%d.%d", b[0], b[1], b[2], b[3])
}

func renderOctetString(s OctetString) string {
	b := s.Bytes()
	if isPrintable(b) {
		return truncate(string(b))
	}
	return truncate(fmt.Sprintf("%x", b))
}

func isPrintable(b []byte) bool {
	for _, c := range b {
		if c > unicode.MaxASCII || (!unicode.IsPrint(rune(c)) && c != '\t') {
			return false
		}
	}
	return true
}

func truncate(s string) string {
	if len(s) <= maxRenderLen {
		return s
	}
	return s[:maxRenderLen] + "..."
}

// renderOIDRange renders oid dotted-decimal, the way Register/Unregister
// diagnostics do: the sub-identifier at position rangeSubID-1 is shown as
// "[x-upperBound]" instead of plain "x". rangeSubID of 0 means oid carries
// no range sub-identifier and renders exactly like oid.String().
func renderOIDRange(oid OID, rangeSubID uint8, upperBound uint32) string {
	if rangeSubID == 0 {
		return oid.String()
	}
	parts := make([]string, len(oid.SubIDs))
	for i, v := range oid.SubIDs {
		if i == int(rangeSubID)-1 {
			parts[i] = fmt.Sprintf("[%d-%d]", v, upperBound)
			continue
		}
		parts[i] = strconv.FormatUint(uint64(v), 10)
	}
	return strings.Join(parts, ".")
}

// String renders a SearchRange as "[start-stop]" when the start OID is
// included, or "(start-stop]" when it is excluded.
func (r SearchRange) String() string {
	if r.Start.Include {
		return fmt.Sprintf("[%s-%s]", r.Start, r.Stop)
	}
	return fmt.Sprintf("(%s-%s]", r.Start, r.Stop)
}

// String renders a PDU for diagnostics: header summary plus a
// type-appropriate rendering of the payload.
func (p PDU) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s sid=%d tid=%d pid=%d", p.Header.Type, p.Header.SessionID, p.Header.TransactionID, p.Header.PacketID)
	if p.Context != nil {
		fmt.Fprintf(&b, " context=%q", p.Context.String())
	}
	switch payload := p.Payload.(type) {
	case SearchRangeListPayload:
		b.WriteString(renderRanges(payload.Ranges))
	case GetBulkPayload:
		fmt.Fprintf(&b, " non-repeaters=%d max-repetitions=%d", payload.NonRepeaters, payload.MaxRepetitions)
		b.WriteString(renderRanges(payload.Ranges))
	case VarbindListPayload:
		b.WriteString(renderVarbinds(payload.Varbinds))
	case ResponsePayload:
		fmt.Fprintf(&b, " sysUpTime=%d error=%s errorIndex=%d", payload.SysUpTime, payload.Error, payload.ErrorIndex)
		b.WriteString(renderVarbinds(payload.Varbinds))
	case EmptyPayload:
	case RawPayload:
		if desc := renderRegisterUnregister(p.Header.Type, p.Header.order(), payload.Data); desc != "" {
			b.WriteString(desc)
		} else {
			fmt.Fprintf(&b, " raw=%d bytes", len(payload.Data))
		}
	}
	return b.String()
}

// renderRegisterUnregister decodes the body of a Register or Unregister
// PDU (RFC 2741 §6.2.3/§6.2.4) well enough for diagnostics: timeout,
// priority, and the subtree rendered with renderOIDRange. It returns ""
// for any other PDU type, or if the body is too short to parse.
func renderRegisterUnregister(t PDUType, order ByteOrder, body []byte) string {
	if t != TypeRegister && t != TypeUnregister {
		return ""
	}
	if len(body) < 4 {
		return ""
	}
	timeout, priority, rangeSubID := body[0], body[1], body[2]
	oid, consumed, err := decodeOID(body[4:], order)
	if err != nil {
		return ""
	}
	var upperBound uint32
	if rangeSubID != 0 {
		rest := body[4+consumed:]
		if len(rest) < 4 {
			return ""
		}
		upperBound = readUint32(rest, order)
	}
	return fmt.Sprintf(" timeout=%d priority=%d subtree=%s", timeout, priority, renderOIDRange(oid, rangeSubID, upperBound))
}

func renderRanges(ranges []SearchRange) string {
	if len(ranges) == 0 {
		return ""
	}
	parts := make([]string, len(ranges))
	for i, r := range ranges {
		parts[i] = r.String()
	}
	return " ranges=[" + strings.Join(parts, ", ") + "]"
}

func renderVarbinds(varbinds []Varbind) string {
	if len(varbinds) == 0 {
		return ""
	}
	parts := make([]string, len(varbinds))
	for i, vb := range varbinds {
		parts[i] = vb.String()
	}
	return " varbinds=[" + strings.Join(parts, ", ") + "]"
}
