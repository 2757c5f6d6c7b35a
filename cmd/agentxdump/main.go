// agentxdump dials an AgentX master, opens a session, and prints every
// PDU it receives until interrupted. It exists to exercise the whole
// core codec end to end, the way the teacher's small daemons wire
// config -> logger -> protocol.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"agentx.example/subagent/agentx"
	"agentx.example/subagent/internal/config"
	"agentx.example/subagent/internal/transport"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conn, err := dial(ctx, cfg)
	if err != nil {
		log.Fatalf("dial failed: %v", err)
	}
	defer conn.Close()

	hooks := agentx.DefaultHooks
	if cfg.Verbose {
		hooks = agentx.DiagnosticHooks
	}

	sess, err := agentx.NewSession(conn, agentx.WithHooks(hooks))
	if err != nil {
		log.Fatalf("new session failed: %v", err)
	}
	defer sess.Shutdown()

	agentOID, perr := agentx.ParseOID(cfg.AgentOID)
	if perr != nil {
		log.Fatalf("invalid agent OID %q: %v", cfg.AgentOID, perr)
	}
	if _, perr := sess.Open(0, agentOID, cfg.AgentDescr, nil); perr != nil {
		log.Fatalf("stage Open failed: %v", perr)
	}
	if err := flush(sess); err != nil {
		log.Fatalf("send Open failed: %v", err)
	}
	log.Printf("agentxdump[%s]: Open sent, waiting for PDUs", sess.Tag())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-sigCh:
			log.Printf("agentxdump[%s]: shutting down", sess.Tag())
			return
		default:
		}

		// Bound each read so Receive returns WouldBlock instead of
		// blocking, letting the loop notice a pending signal.
		if d, ok := conn.(interface{ SetReadDeadline(time.Time) error }); ok {
			_ = d.SetReadDeadline(time.Now().Add(100 * time.Millisecond))
		}
		pdu, rerr := sess.Receive()
		if rerr != nil {
			if rerr.Kind == agentx.WouldBlock {
				time.Sleep(50 * time.Millisecond)
				continue
			}
			log.Printf("agentxdump[%s]: receive error: %v", sess.Tag(), rerr)
			return
		}
		log.Printf("agentxdump[%s]: %s", sess.Tag(), pdu)
	}
}

func dial(ctx context.Context, cfg *config.Config) (transport.Conn, error) {
	switch cfg.Network {
	case "tcp":
		return transport.DialTCP(ctx, cfg.Address)
	default:
		return transport.DialUnix(ctx, cfg.Address)
	}
}

// flush drains the session's committed write region, retrying on
// WouldBlock, since Transmit makes exactly one non-blocking write per call.
func flush(sess *agentx.Session) error {
	for {
		remaining, err := sess.Transmit()
		if err != nil {
			if err.Kind == agentx.WouldBlock {
				time.Sleep(10 * time.Millisecond)
				continue
			}
			return err
		}
		if remaining == 0 {
			return nil
		}
	}
}
