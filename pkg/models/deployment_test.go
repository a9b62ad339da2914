package models

import "testing"

func TestParseState_KnownStates(t *testing.T) {
	known := []string{"QUEUED", "INITIALIZING", "BUILDING", "READY", "ERROR", "CANCELED"}

	for _, raw := range known {
		state := ParseState(raw)
		if string(state) != raw {
			t.Errorf("Expected ParseState(%q) to round-trip, got %s", raw, state)
		}
	}
}

func TestParseState_UnknownStates(t *testing.T) {
	unknown := []string{"", "DEPLOYING", "ready", "queued", "SOMETHING_NEW"}

	for _, raw := range unknown {
		if state := ParseState(raw); state != StateUnknown {
			t.Errorf("Expected ParseState(%q) to be UNKNOWN, got %s", raw, state)
		}
	}
}

func TestDeploymentState_Pending(t *testing.T) {
	pending := []DeploymentState{StateQueued, StateInitializing, StateBuilding}
	for _, s := range pending {
		if !s.Pending() {
			t.Errorf("Expected %s to be pending", s)
		}
	}

	settled := []DeploymentState{StateReady, StateError, StateCanceled, StateUnknown}
	for _, s := range settled {
		if s.Pending() {
			t.Errorf("Expected %s not to be pending", s)
		}
	}
}

func TestDeploymentState_Terminal(t *testing.T) {
	terminal := []DeploymentState{StateReady, StateError, StateCanceled}
	for _, s := range terminal {
		if !s.Terminal() {
			t.Errorf("Expected %s to be terminal", s)
		}
	}

	if StateBuilding.Terminal() {
		t.Error("Expected BUILDING not to be terminal")
	}
	if StateUnknown.Terminal() {
		t.Error("Expected UNKNOWN not to be terminal")
	}
}

func TestCommitSummary_WithSha(t *testing.T) {
	d := Deployment{CommitMessage: "fix bug", CommitSha: "abcdef1234567"}

	if got := d.CommitSummary(); got != "fix bug (abcdef1)" {
		t.Errorf("Expected 'fix bug (abcdef1)', got %q", got)
	}
}

func TestCommitSummary_WithoutSha(t *testing.T) {
	d := Deployment{CommitMessage: "fix bug"}

	if got := d.CommitSummary(); got != "fix bug" {
		t.Errorf("Expected 'fix bug', got %q", got)
	}
}

func TestCommitSummary_ShortSha(t *testing.T) {
	d := Deployment{CommitMessage: "fix bug", CommitSha: "abc"}

	if got := d.CommitSummary(); got != "fix bug (abc)" {
		t.Errorf("Expected 'fix bug (abc)', got %q", got)
	}
}

func TestCommitSummary_NoMessage(t *testing.T) {
	d := Deployment{}

	if got := d.CommitSummary(); got != "N/A" {
		t.Errorf("Expected 'N/A', got %q", got)
	}
}
