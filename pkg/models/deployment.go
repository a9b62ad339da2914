package models

import "fmt"

// DeploymentState represents the current state of a Vercel deployment
type DeploymentState string

const (
	StateQueued       DeploymentState = "QUEUED"
	StateInitializing DeploymentState = "INITIALIZING"
	StateBuilding     DeploymentState = "BUILDING"
	StateReady        DeploymentState = "READY"
	StateError        DeploymentState = "ERROR"
	StateCanceled     DeploymentState = "CANCELED"
	StateUnknown      DeploymentState = "UNKNOWN"
)

// ParseState maps a raw state string from the API to a DeploymentState.
// Anything outside the known taxonomy collapses to StateUnknown.
func ParseState(raw string) DeploymentState {
	switch s := DeploymentState(raw); s {
	case StateQueued, StateInitializing, StateBuilding,
		StateReady, StateError, StateCanceled:
		return s
	default:
		return StateUnknown
	}
}

// Pending reports whether the deployment is still in progress.
func (s DeploymentState) Pending() bool {
	switch s {
	case StateQueued, StateInitializing, StateBuilding:
		return true
	default:
		return false
	}
}

// Terminal reports whether the deployment has reached a final state.
func (s DeploymentState) Terminal() bool {
	switch s {
	case StateReady, StateError, StateCanceled:
		return true
	default:
		return false
	}
}

// Deployment represents a single Vercel deployment as reported by the API.
// It is read-only from this tool's perspective and fetched fresh on each poll.
type Deployment struct {
	ID            string
	State         DeploymentState
	URL           string
	ProjectName   string
	CommitMessage string
	CommitSha     string
	ErrorMessage  string
}

// CommitSummary returns the commit message with a 7-character abbreviated
// hash when one is available, e.g. `fix bug (abcdef1)`.
func (d Deployment) CommitSummary() string {
	message := d.CommitMessage
	if message == "" {
		message = "N/A"
	}
	if d.CommitSha == "" {
		return message
	}
	sha := d.CommitSha
	if len(sha) > 7 {
		sha = sha[:7]
	}
	return fmt.Sprintf("%s (%s)", message, sha)
}
