package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/todozi/tdz-gateway/internal/binary"
	"github.com/todozi/tdz-gateway/internal/config"
	"github.com/todozi/tdz-gateway/internal/logging"
)

var resolveBinary string

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Show which tdz binary the gateway would use",
	Long: `Probe the candidate paths in order and report the first one that
answers. Useful for diagnosing "all candidates failed" errors without
starting the server.`,
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringVar(&resolveBinary, "binary", "", "Path to the tdz binary (probed first)")
}

func runResolve(cmd *cobra.Command, args []string) error {
	godotenv.Load()

	workDir, err := os.Getwd()
	if err != nil {
		return err
	}

	cfg, err := config.Load(workDir)
	if err != nil {
		return err
	}
	if resolveBinary != "" {
		cfg.BinaryPath = resolveBinary
	}

	logging.Init(logging.Config{
		Level:  logging.ParseLevel(cfg.LogLevel),
		Output: os.Stderr,
		Pretty: true,
	})

	executor := binary.NewExecutor(cfg.BinaryPath, binary.WithTimeout(10*time.Second))
	defer executor.Close()

	fmt.Println("Probing candidates:")
	for _, candidate := range binary.Candidates(cfg.BinaryPath) {
		fmt.Printf("  %s\n", candidate)
	}

	out, err := executor.Run(context.Background(), "--version")
	if err != nil {
		var execErr *binary.ExecError
		if errors.As(err, &execErr) {
			return fmt.Errorf("no candidate answered: %w", execErr.Last)
		}
		return err
	}

	fmt.Printf("\nResolved: %s\n", executor.Resolved())
	fmt.Printf("Version:  %s\n", out)
	return nil
}
