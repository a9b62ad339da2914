package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/alvesdmateus/deploywatch/internal/monitor"
	"github.com/alvesdmateus/deploywatch/internal/vercel"
	"github.com/alvesdmateus/deploywatch/pkg/config"
)

var (
	flagTeamID   string
	flagInterval time.Duration
	flagMaxPolls int
	flagAPIURL   string
	flagLogLevel string
)

// exitCode is set by the root run and returned from Execute
var exitCode int

var rootCmd = &cobra.Command{
	Use:   "deploywatch [project-name]",
	Short: "deploywatch - monitor the status of the latest Vercel deployment",
	Long: `deploywatch polls the Vercel API and reports the status of the most
recent deployment until it reaches a terminal state or a poll budget runs out.

Without arguments it watches the team's latest deployment across all projects;
pass a project name to watch that project only.

Exit codes:
  0  deployment is READY
  1  deployment failed, was canceled, or an error occurred
  2  the poll budget ran out before the deployment finished`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		project := ""
		if len(args) > 0 {
			project = args[0]
		}
		exitCode = runWatch(project)
	},
}

// Execute runs the root command and returns the process exit code
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return exitCode
}

func init() {
	rootCmd.Flags().StringVar(&flagTeamID, "team-id", "", "Vercel team ID (overrides the configured default)")
	rootCmd.Flags().DurationVar(&flagInterval, "interval", 0, "Poll interval (default 30s)")
	rootCmd.Flags().IntVar(&flagMaxPolls, "max-polls", 0, "Maximum number of polls before timing out (default 10)")
	rootCmd.Flags().StringVar(&flagAPIURL, "api-url", "", "Vercel API base URL")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(versionCmd)
}

func runWatch(project string) int {
	// Human-readable progress goes to stdout; diagnostics go to stderr
	logger := zerolog.New(os.Stderr).With().
		Timestamp().
		Str("run_id", uuid.New().String()).
		Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return int(monitor.ExitFailure)
	}

	applyFlagOverrides(cfg)
	logger = logger.Level(parseLogLevel(cfg.Log.Level))

	if err := cfg.Validate(); err != nil {
		if errors.Is(err, config.ErrMissingToken) {
			fmt.Println("❌ Error: VERCEL_TOKEN is not set.")
			fmt.Println()
			fmt.Println("Set it in the environment:")
			fmt.Println("  export VERCEL_TOKEN=<your token>")
			fmt.Println()
			fmt.Println("or in config.yaml under vercel.token.")
		} else {
			fmt.Printf("❌ Configuration error: %v\n", err)
		}
		return int(monitor.ExitFailure)
	}

	client := vercel.New(cfg.Vercel.Token, cfg.Vercel.TeamID, logger,
		vercel.WithBaseURL(cfg.Vercel.APIURL),
		vercel.WithTimeout(cfg.Vercel.HTTPTimeout),
	)

	mon := monitor.New(client, os.Stdout, logger,
		cfg.Monitor.PollInterval, cfg.Monitor.MaxPolls)

	return int(mon.Run(context.Background(), project))
}

// applyFlagOverrides layers command-line flags on top of the loaded config
func applyFlagOverrides(cfg *config.Config) {
	if flagTeamID != "" {
		cfg.Vercel.TeamID = flagTeamID
	}
	if flagAPIURL != "" {
		cfg.Vercel.APIURL = flagAPIURL
	}
	if flagInterval > 0 {
		cfg.Monitor.PollInterval = flagInterval
	}
	if flagMaxPolls > 0 {
		cfg.Monitor.MaxPolls = flagMaxPolls
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
}

// parseLogLevel maps the configured level to a zerolog level
func parseLogLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
