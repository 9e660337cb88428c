package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/discs/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagServeDir    string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the viewer SSH server",
	Long: `Start an SSH server that lets users connect and explore scenarios in the
interactive viewer.

Each SSH connection gets its own session with a scenario picker. Passing a
scenario ID as the SSH command opens it directly. Saved runs go to the
server's history database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, uses server.host_key_path from config (~/.discs/host_key)

Examples:
  discs serve                           # Listen on :23235
  discs serve --ssh :2222               # Listen on port 2222
  discs serve --dir ./scenarios         # Offer extra scenario files

Users can connect with:
  ssh localhost -p 23235
  ssh localhost -p 23235 triple`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (default from config)")
	serveCmd.Flags().StringVar(&flagServeDir, "dir", "", "Directory of extra scenario files (default from config)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes (0 = from config)")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	srvCfg := tui.SSHServerConfig{
		Address:     cfg.Server.Address,
		HostKeyPath: cfg.Server.HostKeyPath,
		DBPath:      cfg.Storage.DBPath,
		ScenarioDir: cfg.Server.ScenarioDir,
		IdleTimeout: cfg.Server.IdleTimeout(),
		Epsilon:     cfg.Search.Epsilon,
		Margin:      cfg.Plot.Margin,
	}
	if flagSSHAddr != "" {
		srvCfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		srvCfg.HostKeyPath = flagHostKey
	}
	if flagServeDir != "" {
		srvCfg.ScenarioDir = flagServeDir
	}
	if flagIdleTimeout > 0 {
		srvCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}

	server, err := tui.NewSSHServer(srvCfg, newLogger("discs-ssh"))
	if err != nil {
		fatalf("creating server: %v", err)
	}

	fmt.Printf("Starting discs SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fatalf("server: %v", err)
	}
}
