package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mapgen/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the layout viewer SSH server",
	Long: `Start an SSH server that serves the layout viewer.

Each SSH connection gets its own viewer starting from a fresh seed.
Visited seeds are recorded in the server's history database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.mapgen/host_key

Examples:
  mapgen serve                           # Listen on :23234 with auto-generated key
  mapgen serve --ssh :2222               # Listen on port 2222
  mapgen serve --archetype sprawl        # Serve sprawl layouts
  mapgen serve --db ./history.db         # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	addGeneratorFlags(serveCmd)
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) {
	genCfg, err := loadGeneratorConfig(cmd)
	exitOnError("loading config", err)

	// Sessions pick their own seed unless one was asked for explicitly
	if flagSeed == 0 {
		genCfg.Seed = 0
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Generator:   genCfg,
	}

	server, err := tui.NewSSHServer(cfg, logger.WithPrefix("mapgen-ssh"))
	exitOnError("creating server", err)

	fmt.Printf("Starting mapgen SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
