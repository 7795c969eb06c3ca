package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/numbermatch/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

// defaultSSHAddr is the --ssh default, taken from the environment.
var defaultSSHAddr = ":23234"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the number match SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with the mode picker menu.
All users share the leaderboard; coins and purchased power-ups are kept
per SSH user name.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.numbermatch/host_key

Examples:
  numbermatch serve                           # Listen on :23234 with auto-generated key
  numbermatch serve --ssh :2222               # Listen on port 2222
  numbermatch serve --host-key ./my_host_key  # Use specific host key
  numbermatch serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, default from NUMBERMATCH_SSH_ADDR or :23234)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	addr := flagSSHAddr
	if addr == "" {
		addr = defaultSSHAddr
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = addr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.Lang = flagLang
	cfg.TickRate = flagFPS
	cfg.ConfigPath = flagConfig

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "numbermatch-ssh",
	})

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		logger.Error("could not create server", "err", err)
		os.Exit(1)
	}

	logger.Info("connect with ssh", "command", fmt.Sprintf("ssh localhost -p %s", portOf(cfg.Address)))

	if err := server.ListenAndServe(); err != nil {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}

// portOf returns the port part of a host:port address.
func portOf(addr string) string {
	if _, port, err := net.SplitHostPort(addr); err == nil {
		return port
	}
	return addr
}
