package protocol

import (
	"log"
	"time"
)

// Hooks defines trace callbacks a Session invokes around sends and
// receives, mirroring the teacher's SessionTrace/ServerHooks ladder. All
// fields default to no-ops; a partially populated Hooks value is merged
// against NoOpHooks by NewSession so callers need only set the fields they
// care about.
type Hooks struct {
	// BeforeSend is called with the whole pending committed region (one or
	// more PDUs, or the unsent remainder of earlier ones) immediately
	// before Transmit attempts to write it.
	BeforeSend func(tag string, pdu []byte)

	// AfterSend is called after every write Transmit attempts, with the
	// number of bytes written, the write error (nil on success), and how
	// long the call took.
	AfterSend func(tag string, n int, err error, d time.Duration)

	// BeforeReceive is called before Receive attempts a read.
	BeforeReceive func(tag string)

	// AfterReceive is called once Receive has read (or failed to read)
	// bytes, with the number of bytes consumed and how long the call took.
	AfterReceive func(tag string, n int, err error, d time.Duration)

	// Error is called when Transmit or Receive gets an error from the
	// connection other than would-block or end of stream. Builder
	// failures, protocol errors and connection resets do not invoke it.
	Error func(tag string, op string, err error)
}

// NoOpHooks does nothing; it is the base every other tier and every
// caller-supplied Hooks value is merged against.
var NoOpHooks = &Hooks{
	BeforeSend:    func(string, []byte) {},
	AfterSend:     func(string, int, error, time.Duration) {},
	BeforeReceive: func(string) {},
	AfterReceive:  func(string, int, error, time.Duration) {},
	Error:         func(string, string, error) {},
}

// DefaultHooks logs only errors.
var DefaultHooks = &Hooks{
	BeforeSend:    func(string, []byte) {},
	AfterSend:     func(string, int, error, time.Duration) {},
	BeforeReceive: func(string) {},
	AfterReceive:  func(string, int, error, time.Duration) {},
	Error: func(tag, op string, err error) {
		log.Printf("agentx[%s] %s: %v", tag, op, err)
	},
}

// MetricHooks logs errors and per-call timing.
var MetricHooks = &Hooks{
	BeforeSend: func(string, []byte) {},
	AfterSend: func(tag string, n int, err error, d time.Duration) {
		log.Printf("agentx[%s] send n=%d err=%v took=%s", tag, n, err, d)
	},
	BeforeReceive: func(string) {},
	AfterReceive: func(tag string, n int, err error, d time.Duration) {
		log.Printf("agentx[%s] receive n=%d err=%v took=%s", tag, n, err, d)
	},
	Error: DefaultHooks.Error,
}

// DiagnosticHooks logs errors, timing, and a hex dump of every outbound
// write. Received bytes are not dumped: the receive hooks are not handed
// the data. The hex-dump body itself is gated behind the agentx_verbose
// build tag; see hexdump_on.go / hexdump_off.go.
var DiagnosticHooks = &Hooks{
	BeforeSend: func(tag string, pdu []byte) {
		debugHexDump(tag, "send", pdu)
	},
	AfterSend: MetricHooks.AfterSend,
	BeforeReceive: func(tag string) {
		debugHexDump(tag, "receive-start", nil)
	},
	AfterReceive: MetricHooks.AfterReceive,
	Error:        DefaultHooks.Error,
}
