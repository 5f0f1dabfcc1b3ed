package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/balloon-quiz/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the quiz SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own independent quiz session.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.balloons/host_key

Examples:
  balloons serve                           # Listen on the configured address
  balloons serve --ssh :2222               # Listen on port 2222
  balloons serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (empty = from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes (0 = from config)")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagSSHAddr != "" {
		cfg.Server.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.Server.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.Server.IdleTimeoutMin = flagIdleTimeout
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "balloons-ssh",
	})

	srvCfg := tui.SSHServerConfig{
		Address:     cfg.Server.Address,
		HostKeyPath: cfg.Server.HostKeyPath,
		IdleTimeout: cfg.Server.IdleTimeout(),
		TickRate:    cfg.TickRate,
	}

	server, err := tui.NewSSHServer(srvCfg, gameFactory(cfg), logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting balloon quiz SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
