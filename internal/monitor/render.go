package monitor

import (
	"fmt"
	"io"
	"strings"

	"github.com/alvesdmateus/deploywatch/pkg/models"
)

// glyph maps a deployment state to its display glyph. The default branch
// covers any state outside the known taxonomy.
func glyph(s models.DeploymentState) string {
	switch s {
	case models.StateReady:
		return "✅"
	case models.StateError:
		return "❌"
	case models.StateBuilding:
		return "🔨"
	case models.StateQueued:
		return "⏳"
	case models.StateCanceled:
		return "🚫"
	case models.StateInitializing:
		return "🔄"
	default:
		return "❓"
	}
}

// Renderer writes human-readable deployment reports to a single output
type Renderer struct {
	out io.Writer
}

// NewRenderer creates a renderer writing to out
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// Deployment prints the state, URL and commit summary of a deployment,
// plus the error message when the deployment failed with one.
func (r *Renderer) Deployment(d models.Deployment) {
	fmt.Fprintf(r.out, "\n%s State: %s\n", glyph(d.State), d.State)
	if d.URL != "" {
		fmt.Fprintf(r.out, "🔗 URL: https://%s\n", d.URL)
	} else {
		fmt.Fprintln(r.out, "🔗 URL: N/A")
	}
	fmt.Fprintf(r.out, "📝 Commit: %s\n", d.CommitSummary())

	if d.State == models.StateError && d.ErrorMessage != "" {
		fmt.Fprintf(r.out, "💥 Error: %s\n", d.ErrorMessage)
	}
}

// Banner prints a message between separator rules, used for final outcomes
func (r *Renderer) Banner(message string) {
	rule := strings.Repeat("=", 50)
	fmt.Fprintf(r.out, "\n%s\n%s\n%s\n", rule, message, rule)
}
