package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/screa/sui-address-grinder/internal/config"
	logpkg "github.com/screa/sui-address-grinder/internal/logger"
	"github.com/screa/sui-address-grinder/pkg/grinder"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	err := newRootCmd(config.NewConfig()).ExecuteContext(ctx)
	stop()
	if err != nil {
		slog.Error("sui-grinder failed", "err", err)
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sui-grinder",
		Short: "Grind Sui addresses matching a hex pattern",
		Long: `A command line utility that searches for a Sui keypair whose address starts
and/or ends with the given hex pattern. Keys are derived from fresh BIP39
mnemonics on every available core until one matches.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrinder(cmd, cfg)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&cfg.StartsWith, "starts-with", "", "Hex prefix the address must start with")
	flags.StringVar(&cfg.EndsWith, "ends-with", "", "Hex suffix the address must end with")
	flags.BoolVar(&cfg.IgnoreCase, "ignore-case", false, "Ignore case when matching")
	flags.IntVar(&cfg.Cores, "cores", 0, "Number of cores to use (0 = all available)")
	flags.Var(&cfg.Scheme, "scheme", "Signature scheme (ed25519, secp256k1, secp256r1)")
	flags.DurationVar(&cfg.ProgressInterval, "progress-interval", config.DefaultProgressInterval, "Progress refresh interval (0 disables)")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Verbose output")
	flags.BoolVar(&cfg.NoColor, "no-color", false, "Disable colorized output")
	flags.StringVar(&cfg.ConfigFile, "config", "", "YAML config file (default: ./sui-grinder.yaml if present)")
	flags.Uint64Var(&cfg.MaxAttempts, "max-attempts", 0, "Give up after this many attempts per core (0 = never)")
	_ = flags.MarkHidden("max-attempts")

	rootCmd.AddCommand(versionCmd)
	return rootCmd
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the sui-grinder version",
	Run: func(cmd *cobra.Command, args []string) {
		info, ok := debug.ReadBuildInfo()
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "sui-grinder: version unknown")
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "sui-grinder %s (%s)\n", info.Main.Version, info.GoVersion)
	},
}

func runGrinder(cmd *cobra.Command, cfg *config.Config) error {
	if err := applyConfigFile(cmd, cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logpkg.NewWriter(cmd.ErrOrStderr(), cfg.Verbose)
	ctx := logpkg.ContextAttrs(cmd.Context(), slog.String("run", uuid.NewString()))
	logger.InfoContext(ctx, "starting sui address grinder",
		"target", cfg.GetTargetDescription(),
		"scheme", cfg.Scheme)

	g := grinder.NewGrinder(cfg.SearchConfig(),
		grinder.WithLogger(logger.Logger),
		grinder.WithProgressWriter(cmd.ErrOrStderr()))

	solution, err := g.Run(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			logger.InfoContext(ctx, "grinding stopped by user", "attempts", g.Attempts())
		}
		return err
	}

	printSolution(cmd.OutOrStdout(), solution, !cfg.NoColor)

	rate := 0.0
	if solution.Duration.Seconds() > 0 {
		rate = float64(solution.Attempts) / solution.Duration.Seconds()
	}
	logger.InfoContext(ctx, "found match",
		"attempts", solution.Attempts,
		"duration", solution.Duration,
		"keys_per_sec", fmt.Sprintf("%.2f", rate),
		"core", solution.Core)
	return nil
}

func applyConfigFile(cmd *cobra.Command, cfg *config.Config) error {
	var (
		fc  config.FileConfig
		err error
	)
	if cfg.ConfigFile != "" {
		fc, err = config.LoadFile(cfg.ConfigFile)
	} else {
		fc, _, err = config.LoadLocal(".")
		if errors.Is(err, config.ErrNoConfigFile) {
			return nil
		}
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	return cfg.Apply(fc, cmd.Flags().Changed)
}
