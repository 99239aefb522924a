package job

import (
	"os"
	"path/filepath"

	"github.com/okseby/huntr/errors"
)

// Phase represents one of the fixed lifecycle stages a job folder can occupy.
type Phase string

const (
	PhaseQueued       Phase = "queued"
	PhaseDataReady    Phase = "data_ready"
	PhaseDocsReady    Phase = "docs_ready"
	PhaseReadyToApply Phase = "ready_to_apply"
	PhaseApplied      Phase = "applied"
	PhaseFollowUp     Phase = "follow_up"
	PhaseReplied      Phase = "replied"
	PhaseInterviewing Phase = "interviewing"
	PhaseNegotiating  Phase = "negotiating"
	PhaseOffer        Phase = "offer"
	PhaseAccepted     Phase = "accepted"

	// Absorbing side-phases, reachable from any working phase.
	PhaseSkipped Phase = "skipped"
	PhaseExpired Phase = "expired"
	PhaseErrored Phase = "errored"
)

// phaseOrder is the full transition space: eleven working phases in strict
// pipeline order followed by the three absorbing side-phases.
var phaseOrder = []Phase{
	PhaseQueued,
	PhaseDataReady,
	PhaseDocsReady,
	PhaseReadyToApply,
	PhaseApplied,
	PhaseFollowUp,
	PhaseReplied,
	PhaseInterviewing,
	PhaseNegotiating,
	PhaseOffer,
	PhaseAccepted,
	PhaseSkipped,
	PhaseExpired,
	PhaseErrored,
}

// phaseDirs maps each phase to its directory name under the jobs root.
// The numeric prefix keeps a plain directory listing in pipeline order.
var phaseDirs = map[Phase]string{
	PhaseQueued:       "00.queued",
	PhaseDataReady:    "10.data_ready",
	PhaseDocsReady:    "20.docs_ready",
	PhaseReadyToApply: "30.ready_to_apply",
	PhaseApplied:      "40.applied",
	PhaseFollowUp:     "50.follow_up",
	PhaseReplied:      "55.replied",
	PhaseInterviewing: "60.interviewing",
	PhaseNegotiating:  "70.negotiating",
	PhaseOffer:        "80.offer",
	PhaseAccepted:     "90.accepted",
	PhaseSkipped:      "95.skipped",
	PhaseExpired:      "96.expired",
	PhaseErrored:      "99.errored",
}

// Phases returns the fixed, ordered list of phases.
func Phases() []Phase {
	out := make([]Phase, len(phaseOrder))
	copy(out, phaseOrder)
	return out
}

// Valid returns true if p is in the fixed phase set.
func (p Phase) Valid() bool {
	_, ok := phaseDirs[p]
	return ok
}

func (p Phase) String() string {
	return string(p)
}

// DirName returns the phase's directory name under the jobs root.
func (p Phase) DirName() string {
	return phaseDirs[p]
}

// ParsePhase resolves a phase by name or by directory name.
func ParsePhase(s string) (Phase, bool) {
	if Phase(s).Valid() {
		return Phase(s), true
	}
	for p, dir := range phaseDirs {
		if dir == s {
			return p, true
		}
	}
	return "", false
}

// PhasePath returns the phase directory path without creating it.
// An unknown phase is a configuration error, never retried.
func PhasePath(jobsRoot string, p Phase) (string, error) {
	dir, ok := phaseDirs[p]
	if !ok {
		return "", errors.Wrapf(errors.ErrUnknownPhase, "%q", string(p))
	}
	return filepath.Join(jobsRoot, dir), nil
}

// Dir returns the phase directory path, creating it on first use.
func Dir(jobsRoot string, p Phase) (string, error) {
	path, err := PhasePath(jobsRoot, p)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return "", errors.Wrapf(err, "failed to create phase directory %s", path)
	}
	return path, nil
}

// PhaseOf reports which phase directory under jobsRoot currently owns jobPath.
func PhaseOf(jobPath, jobsRoot string) (Phase, bool) {
	parent := filepath.Dir(filepath.Clean(jobPath))
	p, ok := ParsePhase(filepath.Base(parent))
	if !ok {
		return "", false
	}
	expected, err := PhasePath(jobsRoot, p)
	if err != nil || filepath.Clean(expected) != parent {
		return "", false
	}
	return p, true
}

// Locate searches every phase directory for a job folder with the given
// base name. Used to re-find a job that a concurrent writer has moved.
func Locate(jobsRoot, baseName string) (string, bool) {
	for _, p := range phaseOrder {
		candidate := filepath.Join(jobsRoot, phaseDirs[p], baseName)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, true
		}
	}
	return "", false
}
