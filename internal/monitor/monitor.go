package monitor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/alvesdmateus/deploywatch/internal/vercel"
	"github.com/alvesdmateus/deploywatch/pkg/models"
)

// ExitCode is the process exit code computed from a monitoring run
type ExitCode int

const (
	ExitSuccess ExitCode = 0
	ExitFailure ExitCode = 1
	ExitTimeout ExitCode = 2
)

// DeploymentAPI is the subset of the Vercel client the monitor depends on
type DeploymentAPI interface {
	LatestDeployment(ctx context.Context, project string) (models.Deployment, error)
	GetDeployment(ctx context.Context, deploymentID string) (models.Deployment, error)
}

// Monitor polls a deployment until it reaches a terminal state or the poll
// budget runs out. It holds no state across runs.
type Monitor struct {
	api      DeploymentAPI
	renderer *Renderer
	out      io.Writer
	logger   zerolog.Logger
	interval time.Duration
	maxPolls int

	// sleep is swapped out in tests
	sleep func(time.Duration)
}

// New creates a Monitor writing human-readable progress to out
func New(api DeploymentAPI, out io.Writer, logger zerolog.Logger, interval time.Duration, maxPolls int) *Monitor {
	return &Monitor{
		api:      api,
		renderer: NewRenderer(out),
		out:      out,
		logger:   logger.With().Str("component", "monitor").Logger(),
		interval: interval,
		maxPolls: maxPolls,
		sleep:    time.Sleep,
	}
}

// Run resolves the latest deployment (optionally filtered by project),
// polls it until it leaves the pending states, and returns the exit code
// for the run. Any API failure aborts the run; there is no in-place retry.
func (m *Monitor) Run(ctx context.Context, project string) ExitCode {
	if project != "" {
		fmt.Fprintf(m.out, "🔍 Looking up the latest deployment for project %q...\n", project)
	} else {
		fmt.Fprintln(m.out, "🔍 Looking up the team's latest deployment...")
	}

	deployment, err := m.api.LatestDeployment(ctx, project)
	if err != nil {
		m.reportError(err)
		return ExitFailure
	}

	m.logger.Info().
		Str("deployment_id", deployment.ID).
		Str("project", deployment.ProjectName).
		Str("state", string(deployment.State)).
		Msg("Resolved latest deployment")

	fmt.Fprintf(m.out, "📦 Deployment: %s\n", deployment.ID)
	fmt.Fprintf(m.out, "📂 Project: %s\n", deployment.ProjectName)
	fmt.Fprintf(m.out, "📊 Initial state: %s\n", deployment.State)

	pollCount := 0
	for deployment.State.Pending() {
		if pollCount >= m.maxPolls {
			budget := time.Duration(m.maxPolls) * m.interval
			fmt.Fprintf(m.out, "\n⏰ Timed out: deployment did not finish within %s.\n", budget)
			m.renderer.Deployment(deployment)
			return ExitTimeout
		}

		pollCount++
		fmt.Fprintf(m.out, "⏳ Deployment in progress... (%d/%d) - next check in %s\n",
			pollCount, m.maxPolls, m.interval)
		m.sleep(m.interval)

		deployment, err = m.api.GetDeployment(ctx, deployment.ID)
		if err != nil {
			m.reportError(err)
			return ExitFailure
		}

		m.logger.Debug().
			Int("poll", pollCount).
			Str("state", string(deployment.State)).
			Msg("Polled deployment state")
	}

	switch deployment.State {
	case models.StateReady:
		m.renderer.Banner("✅ Deployment succeeded!")
		m.renderer.Deployment(deployment)
		return ExitSuccess
	case models.StateError:
		m.renderer.Banner("❌ Deployment failed!")
		m.renderer.Deployment(deployment)
		return ExitFailure
	case models.StateCanceled:
		m.renderer.Banner("🚫 Deployment was canceled.")
		m.renderer.Deployment(deployment)
		return ExitFailure
	default:
		fmt.Fprintf(m.out, "\n❓ Unknown state: %s\n", deployment.State)
		m.renderer.Deployment(deployment)
		return ExitFailure
	}
}

// reportError prints a user-facing message matched to the error kind
func (m *Monitor) reportError(err error) {
	var authErr vercel.AuthError
	var notFoundErr vercel.NotFoundError
	var apiErr vercel.APIError

	switch {
	case errors.As(err, &authErr):
		fmt.Fprintln(m.out, "❌ Authentication failed: check your VERCEL_TOKEN.")
	case errors.As(err, &notFoundErr):
		fmt.Fprintf(m.out, "⚠️  %s.\n", notFoundErr.Error())
	case errors.As(err, &apiErr):
		fmt.Fprintf(m.out, "❌ API error: %v\n", err)
	default:
		fmt.Fprintf(m.out, "❌ Unexpected error: %v\n", err)
	}

	m.logger.Error().Err(err).Msg("Monitoring run aborted")
}
