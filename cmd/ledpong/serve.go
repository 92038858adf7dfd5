package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/ledpong/internal/bots"
	"github.com/vovakirdan/ledpong/internal/config"
	"github.com/vovakirdan/ledpong/internal/engine"
	"github.com/vovakirdan/ledpong/internal/platform/tui"
	"github.com/vovakirdan/ledpong/internal/platform/ws"
	"github.com/vovakirdan/ledpong/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagWSAddr      string
	flagNoDemo      bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the preview over SSH and stream games to spectators",
	Long: `Start an SSH server where each connection plays its own game, and a
websocket server streaming a bot-vs-bot demo game to spectators.

Spectator endpoints:
  /ws                 - live frames as JSON text messages
  /ws?format=proto    - live frames as binary protobuf Struct messages
  /snapshot           - latest frame as JSON
  /healthz            - liveness and spectator count

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.ledpong/host_key

Examples:
  ledpong serve                      # SSH on :23234, spectators on :8080
  ledpong serve --ssh :2222 --ws ""  # SSH only
  ledpong serve --ssh "" --ws :9000  # Spectator stream only

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	defaults := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", defaults.Address, "SSH server address (empty to disable)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", int(defaults.IdleTimeout/time.Minute), "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagWSAddr, "ws", ":8080", "Spectator server address (empty to disable)")
	serveCmd.Flags().BoolVar(&flagNoDemo, "no-demo", false, "Do not run the demo game for spectators")
}

func runServe(_ *cobra.Command, _ []string) {
	logger := newLogger("ledpong")
	if flagSSHAddr == "" && flagWSAddr == "" {
		exitf("nothing to serve: both --ssh and --ws are empty")
	}

	cfg, err := loadConfig("")
	if err != nil {
		exitf("%v", err)
	}

	if err := serve(cfg, logger); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

// serve runs the enabled servers until interrupted. Deferred cleanup runs
// before the caller exits.
func serve(cfg config.Config, logger *log.Logger) error {

	var recorder engine.MatchRecorder
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("match database unavailable, not recording", "err", err)
	} else {
		defer store.Close()
		recorder = store
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	if flagSSHAddr != "" {
		server, err := newSSHServer(cfg, recorder, logger)
		if err != nil {
			return fmt.Errorf("creating SSH server: %w", err)
		}
		fmt.Printf("Connect with: ssh localhost -p %s\n", portOf(flagSSHAddr))
		g.Go(func() error { return server.ListenAndServe(ctx) })
	}

	if flagWSAddr != "" {
		hub := ws.NewHub(logger.WithPrefix("ledpong-ws"))
		g.Go(func() error { return hub.ListenAndServe(ctx, flagWSAddr) })

		if !flagNoDemo {
			runner, err := newDemoRunner(cfg, hub, logger.WithPrefix("ledpong-demo"))
			if err != nil {
				return fmt.Errorf("creating demo game: %w", err)
			}
			g.Go(func() error {
				_, err := runner.Run(ctx)
				return err
			})
		}
	}

	fmt.Println("Press Ctrl+C to stop")
	return g.Wait()
}

func newSSHServer(cfg config.Config, recorder engine.MatchRecorder, logger *log.Logger) (*tui.SSHServer, error) {
	sshCfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}
	newOptions := func(user string) (tui.Options, error) {
		players, err := cfg.NewBots()
		if err != nil {
			return tui.Options{}, err
		}
		return tui.Options{
			NewSession: func() (*engine.Session, error) {
				return engine.NewSession(cfg.SessionOptions())
			},
			Bots:     players,
			Recorder: recorder,
			Title:    fmt.Sprintf("ledpong: %s", user),
		}, nil
	}
	return tui.NewSSHServer(sshCfg, newOptions, logger.WithPrefix("ledpong-ssh"))
}

// newDemoRunner creates the bot-vs-bot game shown to spectators. Its
// matches are not recorded.
func newDemoRunner(cfg config.Config, hub *ws.Hub, logger *log.Logger) (*engine.Runner, error) {
	if cfg.Bots.Player1 == "" {
		cfg.Bots.Player1 = bots.TrackerID
	}
	if cfg.Bots.Player2 == "" {
		cfg.Bots.Player2 = bots.TrackerID
	}
	session, err := engine.NewSession(cfg.SessionOptions())
	if err != nil {
		return nil, err
	}
	players, err := cfg.NewBots()
	if err != nil {
		return nil, err
	}
	return &engine.Runner{
		Session:  session,
		Input:    bots.NewSource(session, players, session.Inputs()),
		Logger:   logger,
		Realtime: true,
		OnStep:   hub.Publish,
	}, nil
}

// portOf returns the port of a host:port address.
func portOf(addr string) string {
	if _, port, err := net.SplitHostPort(addr); err == nil {
		return port
	}
	return addr
}
