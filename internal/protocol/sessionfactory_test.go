package protocol

import (
	"testing"

	gomock "github.com/golang/mock/gomock"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"

	"agentx.example/subagent/internal/protocol/protocolmock"
)

func TestNewSessionDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockConn := protocolmock.NewMockConn(ctrl)

	sess, err := NewSession(mockConn)
	require.NoError(t, err)
	assert.Equal(t, LittleEndian, sess.ByteOrder())
	assert.NotEmpty(t, sess.Tag())
}

func TestNewSessionWithOptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockConn := protocolmock.NewMockConn(ctrl)

	called := false
	hooks := &Hooks{Error: func(tag, op string, err error) { called = true }}

	sess, err := NewSession(mockConn,
		WithByteOrder(BigEndian),
		WithHooks(hooks),
		WithReadChunk(64),
		WithPacketIDChunk(4),
	)
	require.NoError(t, err)
	assert.Equal(t, BigEndian, sess.ByteOrder())

	sess.hooks.Error("t", "op", assertErr{})
	assert.True(t, called)
}

func TestSessionTagsAreUnique(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s1, err := NewSession(protocolmock.NewMockConn(ctrl))
	require.NoError(t, err)
	s2, err := NewSession(protocolmock.NewMockConn(ctrl))
	require.NoError(t, err)

	assert.NotEqual(t, s1.Tag(), s2.Tag())
}
