// Package transport dials the byte stream a protocol.Session wraps. None
// of this is part of the AgentX wire format; it exists because something
// has to open the connection before a Session can be constructed, and the
// teacher's cli package shows the idiom for doing that over SSH as well as
// plain sockets.
package transport

import (
	"context"
	"io"
	"net"

	"github.com/imdario/mergo"
	"github.com/pkg/errors"
	"golang.org/x/crypto/ssh"
)

// Conn is the byte stream a protocol.Session needs: a subset of net.Conn
// that also covers an SSH-piped stream, which has no local/remote address.
type Conn interface {
	io.Reader
	io.Writer
	io.Closer
}

// DialTCP opens a direct TCP connection to an AgentX master, the usual
// case for a subagent running on the same host as the master.
func DialTCP(ctx context.Context, addr string) (Conn, error) {
	d := net.Dialer{}
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, errors.Wrap(err, "dial tcp")
	}
	return conn, nil
}

// DialUnix opens a connection to an AgentX master listening on a Unix
// domain socket, the common case for net-snmp's AgentX master.
func DialUnix(ctx context.Context, path string) (Conn, error) {
	d := net.Dialer{}
	conn, err := d.DialContext(ctx, "unix", path)
	if err != nil {
		return nil, errors.Wrap(err, "dial unix")
	}
	return conn, nil
}

// PipedConfig configures DialSSHPiped. RemoteCommand is the command run on
// the remote host whose stdin/stdout become the AgentX byte stream, such
// as a proxy that bridges to the master's local socket.
type PipedConfig struct {
	RemoteCommand string
}

// DefaultPipedConfig supplies the fallback RemoteCommand DialSSHPiped uses
// when the caller leaves it unset.
var DefaultPipedConfig = PipedConfig{RemoteCommand: "cat"}

type sshPipedConn struct {
	client  *ssh.Client
	session *ssh.Session
	io.Reader
	io.WriteCloser
}

// DialSSHPiped opens an AgentX byte stream tunnelled over SSH: it dials
// target, starts cfg.RemoteCommand in a session, and wires that command's
// stdin/stdout as the connection's Write/Read sides. It does not request a
// pty, unlike the teacher's interactive-shell transport, because AgentX
// needs a clean binary pipe rather than a terminal.
func DialSSHPiped(ctx context.Context, sshcfg *ssh.ClientConfig, cfg *PipedConfig, target string) (Conn, error) {
	resolved := PipedConfig{}
	if cfg != nil {
		resolved = *cfg
	}
	if err := mergo.Merge(&resolved, DefaultPipedConfig); err != nil {
		return nil, errors.Wrap(err, "merge piped config")
	}

	client, err := ssh.Dial("tcp", target, sshcfg)
	if err != nil {
		return nil, errors.Wrap(err, "dial ssh")
	}

	t := &sshPipedConn{client: client}
	t.session, err = client.NewSession()
	if err != nil {
		_ = t.Close()
		return nil, errors.Wrap(err, "new ssh session")
	}

	t.Reader, err = t.session.StdoutPipe()
	if err != nil {
		_ = t.Close()
		return nil, errors.Wrap(err, "stdout pipe")
	}
	t.WriteCloser, err = t.session.StdinPipe()
	if err != nil {
		_ = t.Close()
		return nil, errors.Wrap(err, "stdin pipe")
	}

	if err := t.session.Start(resolved.RemoteCommand); err != nil {
		_ = t.Close()
		return nil, errors.Wrap(err, "start remote command")
	}

	go func() {
		<-ctx.Done()
		_ = t.Close()
	}()

	return t, nil
}

func (t *sshPipedConn) Close() error {
	if t.WriteCloser != nil {
		_ = t.WriteCloser.Close()
	}
	if t.session != nil {
		_ = t.session.Close()
	}
	if t.client != nil {
		_ = t.client.Close()
	}
	return nil
}
