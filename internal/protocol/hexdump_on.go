//go:build agentx_verbose

package protocol

import (
	"encoding/hex"
	"log"
)

// debugHexDump prints a labelled hex dump of data when the agentx_verbose
// build tag is set. With the tag unset, hexdump_off.go compiles this to a
// no-op instead, so production builds pay nothing for it.
func debugHexDump(tag, op string, data []byte) {
	if data == nil {
		return
	}
	log.Printf("agentx[%s] %s: %s", tag, op, hex.EncodeToString(data))
}
