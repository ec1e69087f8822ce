package commands

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/todozi/tdz-gateway/internal/binary"
	"github.com/todozi/tdz-gateway/internal/config"
	"github.com/todozi/tdz-gateway/internal/logging"
	"github.com/todozi/tdz-gateway/internal/server"
)

var (
	servePort     int
	serveHostname string
	serveBinary   string
	serveToken    string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the tdz gateway server",
	Long: `Start the HTTP server that relays REST requests to the tdz binary.

Configuration is layered: defaults, then ~/.tdz-gateway/gateway.jsonc,
then ./tdz-gateway.jsonc, then TDZ_GATEWAY_* environment variables,
then command-line flags.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on")
	serveCmd.Flags().StringVar(&serveHostname, "hostname", "", "Hostname to listen on")
	serveCmd.Flags().StringVar(&serveBinary, "binary", "", "Path to the tdz binary (probed first)")
	serveCmd.Flags().StringVar(&serveToken, "api-token", "", "Require this x-api-token header on requests")
}

func runServe(cmd *cobra.Command, args []string) error {
	// A local .env is optional; missing files are fine.
	godotenv.Load()

	workDir, err := os.Getwd()
	if err != nil {
		return err
	}

	cfg, err := config.Load(workDir)
	if err != nil {
		return err
	}

	// Flags override everything the config layers produced.
	if servePort != 0 {
		cfg.Port = servePort
	}
	if serveHostname != "" {
		cfg.Hostname = serveHostname
	}
	if serveBinary != "" {
		cfg.BinaryPath = serveBinary
	}
	if serveToken != "" {
		cfg.APIToken = serveToken
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	logging.Init(logging.Config{
		Level:  logging.ParseLevel(cfg.LogLevel),
		Output: os.Stderr,
		Pretty: prettyLogs || cfg.PrettyLogs,
	})

	log := logging.Component("serve")
	log.Info().Str("version", Version).Msg("starting tdz gateway")

	executor := binary.NewExecutor(cfg.BinaryPath, binary.WithTimeout(cfg.ExecTimeout()))
	defer executor.Close()

	serverConfig := server.DefaultConfig()
	serverConfig.Port = cfg.Port
	serverConfig.Hostname = cfg.Hostname
	serverConfig.APIToken = cfg.APIToken
	serverConfig.EnableCORS = cfg.CORSEnabled()

	srv := server.New(serverConfig, executor)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}

	log.Info().Msg("server stopped")
	return nil
}
