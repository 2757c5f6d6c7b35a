package protocol

import (
	"github.com/imdario/mergo"
)

// sessionConfig holds the defaultable, caller-tunable knobs of a Session.
// Every field is fully populated by defaultSessionConfig before options
// run, so options mutate it directly; WithHooks is the exception, using
// mergo to fill in whichever Hooks fields the caller left nil (the same
// "merge partial config onto a default" idiom the teacher's
// sessionfactory/serverfactory use for their trace config).
type sessionConfig struct {
	order             ByteOrder
	hooks             *Hooks
	readGrowChunk     int
	packetIDChunkSize int
}

func defaultSessionConfig() sessionConfig {
	return sessionConfig{
		order:             LittleEndian,
		hooks:             NoOpHooks,
		readGrowChunk:     readChunk,
		packetIDChunkSize: registryChunk,
	}
}

// SessionOption configures a Session at construction time.
type SessionOption func(*sessionConfig)

// WithByteOrder selects the byte order this session uses for outbound
// PDUs. Inbound PDUs are always decoded per their own header flag,
// regardless of this setting.
func WithByteOrder(order ByteOrder) SessionOption {
	return func(c *sessionConfig) { c.order = order }
}

// WithHooks installs trace hooks. Any field left nil in h falls back to
// NoOpHooks's no-op, merged via mergo so callers only populate the
// callbacks they care about.
func WithHooks(h *Hooks) SessionOption {
	return func(c *sessionConfig) {
		merged := *NoOpHooks
		if h != nil {
			_ = mergo.Merge(&merged, h, mergo.WithOverride)
		}
		c.hooks = &merged
	}
}

// WithReadChunk sets the growth increment (in bytes) for the session's
// read buffer. The default is readChunk (512).
func WithReadChunk(n int) SessionOption {
	return func(c *sessionConfig) { c.readGrowChunk = n }
}

// WithPacketIDChunk sets the initial capacity of the outstanding-request
// packet id registry. The default is registryChunk (25). Later growth is
// always in registryChunk increments, whatever value is set here.
func WithPacketIDChunk(n int) SessionOption {
	return func(c *sessionConfig) { c.packetIDChunkSize = n }
}

// NewSession wraps conn in a Session, applying opts over the package
// defaults. conn is assumed already connected; dialing is the caller's
// concern (see internal/transport for helpers).
func NewSession(conn Conn, opts ...SessionOption) (*Session, error) {
	cfg := defaultSessionConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return newSession(conn, cfg.order, cfg.hooks, cfg.readGrowChunk, cfg.packetIDChunkSize), nil
}
