package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-automata/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the automata SSH server",
	Long: `Start an SSH server that serves the interactive menu and viewer.

Each SSH connection gets its own session. Saved states go to the server's
library, shared by every user.

Host key handling:
  - Relative --host-key paths live under ~/.automata
  - The key is generated on first start

Examples:
  automata serve                           # Listen on the configured address
  automata serve --ssh :2222               # Listen on port 2222
  automata serve --host-key /etc/automata/host_key

Users can connect with:
  ssh localhost -p 2323`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, overrides config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (overrides config)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout before disconnecting (overrides config)")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagSSHAddr != "" {
		cfg.Server.Addr = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.Server.HostKey = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.Server.IdleTimeout = flagIdleTimeout
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return err
	}

	logger.Info("press Ctrl+C to stop", "address", server.Addr())
	return server.ListenAndServe()
}
