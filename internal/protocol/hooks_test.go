package protocol

import (
	"testing"
	"time"

	assert "github.com/stretchr/testify/assert"
)

func TestHookTiersDoNotPanic(t *testing.T) {
	for _, h := range []*Hooks{NoOpHooks, DefaultHooks, MetricHooks, DiagnosticHooks} {
		assert.NotPanics(t, func() {
			h.BeforeSend("tag", []byte{1, 2, 3})
			h.AfterSend("tag", 3, nil, time.Millisecond)
			h.BeforeReceive("tag")
			h.AfterReceive("tag", 3, nil, time.Millisecond)
			h.Error("tag", "op", assertErr{})
		})
	}
}

type assertErr struct{}

func (assertErr) Error() string { return "boom" }
