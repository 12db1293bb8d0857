package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/turing/internal/config"
	"github.com/aretw0/turing/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "turing",
	Short: "Turing is a Turing machine definition editor",
	Long: `Turing builds and edits single-tape Turing machine definitions:
states, transitions, a single initial state and an unbounded tape.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
}

// settings is resolved once per invocation from the config file and flags.
var settings struct {
	cfg    config.Config
	logger *slog.Logger
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Path to the YAML config file")
	rootCmd.PersistentFlags().String("alphabet", "", "Alphabet symbols, e.g. \"abc\" (overrides config)")
	rootCmd.PersistentFlags().String("blank", "", "Blank symbol (overrides config)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides config)")
}

func loadSettings(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	overrides := map[string]any{}
	for _, name := range []string{"alphabet", "blank", "log-level"} {
		if !cmd.Flags().Changed(name) {
			continue
		}
		v, _ := cmd.Flags().GetString(name)
		overrides[strings.ReplaceAll(name, "-", "_")] = v
	}
	if err := cfg.Apply(overrides); err != nil {
		return err
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}

	settings.cfg = cfg
	settings.logger = logging.NewTo(cmd.ErrOrStderr(), level)
	settings.logger.Debug("config_loaded", "path", path,
		"alphabet", strings.Join(cfg.Alphabet, ""), "blank", cfg.Blank)
	return nil
}
