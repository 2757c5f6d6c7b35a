//go:build !agentx_verbose

package protocol

// debugHexDump is a no-op unless built with -tags agentx_verbose; see
// hexdump_on.go.
func debugHexDump(tag, op string, data []byte) {}
