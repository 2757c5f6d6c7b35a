// Package config holds the flag-parsed settings for the cmd/agentxdump
// example binary. It is not part of the protocol library.
package config

import "flag"

// Config is the settings cmd/agentxdump needs to dial a master and open
// a session.
type Config struct {
	Network    string // "tcp" or "unix"
	Address    string // host:port for tcp, path for unix
	AgentOID   string // dotted OID announced in the Open PDU
	AgentDescr string
	Verbose    bool
}

// Load reads Config from command-line flags, applying defaults matching
// net-snmp's AgentX master (a Unix socket at the well-known path).
func Load() (*Config, error) {
	cfg := &Config{
		Network:    "unix",
		Address:    "/var/agentx/master",
		AgentOID:   "1.3.6.1.4.1.8072.3.1",
		AgentDescr: "agentxdump",
	}

	network := flag.String("network", cfg.Network, "transport network: tcp or unix")
	address := flag.String("address", cfg.Address, "master address: host:port for tcp, path for unix")
	agentOID := flag.String("agent-oid", cfg.AgentOID, "agent OID to announce in the Open PDU")
	agentDescr := flag.String("agent-descr", cfg.AgentDescr, "agent description to announce in the Open PDU")
	verbose := flag.Bool("verbose", cfg.Verbose, "log every PDU sent and received")

	flag.Parse()

	cfg.Network = *network
	cfg.Address = *address
	cfg.AgentOID = *agentOID
	cfg.AgentDescr = *agentDescr
	cfg.Verbose = *verbose

	return cfg, nil
}
