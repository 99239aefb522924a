package flow

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/okseby/huntr/errors"
	"github.com/okseby/huntr/job"
	"github.com/okseby/huntr/logger"
)

// EventCreateFolder is the folder creator's event name.
const EventCreateFolder = "create_folder"

// MoveEventName returns the name of the phase-transition event for a phase,
// e.g. "move.errored". One such event exists per phase; handlers advance a
// job by invoking them through the executor, never by renaming directories
// themselves.
func MoveEventName(p job.Phase) string {
	return "move." + string(p)
}

// NewDefaultRegistry returns a registry pre-loaded with the built-in
// events: one move event per phase and the folder creator. Content
// generation handlers are registered on top by the caller.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	for _, p := range job.Phases() {
		r.Register(&moveHandler{target: p})
	}
	r.Register(&createHandler{})
	return r
}

// moveHandler commits a phase transition through the move primitive.
type moveHandler struct {
	target job.Phase
}

func (h *moveHandler) Name() string {
	return MoveEventName(h.target)
}

func (h *moveHandler) Execute(ctx context.Context, jobPath string, ec *Context) Result {
	newPath, err := job.Move(jobPath, ec.JobsRoot, h.target)
	if err != nil {
		return Failure(jobPath, err.Error(), ErrorRecord{Stage: "move", Message: err.Error()})
	}
	if err := job.AppendLog(newPath, h.Name(), "moved to phase "+h.target.String()); err != nil {
		logger.Logger.Warnw("failed to append move to job log",
			logger.FieldJobPath, newPath,
			logger.FieldError, err)
	}
	return Success(newPath, fmt.Sprintf("moved to phase %s", h.target))
}

func (h *moveHandler) Test(ctx context.Context, jobPath string, ec *Context) Result {
	phaseDir, err := job.PhasePath(ec.JobsRoot, h.target)
	if err != nil {
		return Failure(jobPath, err.Error(), ErrorRecord{Stage: "move", Message: err.Error()})
	}
	dst := filepath.Join(phaseDir, filepath.Base(filepath.Clean(jobPath)))
	return Success(jobPath, fmt.Sprintf("dry run: would move to %s", dst))
}

// createHandler materializes a new job folder from the context's job
// description.
type createHandler struct{}

func (h *createHandler) Name() string {
	return EventCreateFolder
}

func (h *createHandler) Execute(ctx context.Context, jobPath string, ec *Context) Result {
	desc := ec.State.Description
	if desc == nil {
		return Failure(jobPath, "no job description in context state",
			ErrorRecord{Stage: "create", Message: "no job description in context state"})
	}
	path, err := job.Create(ec.JobsRoot, desc)
	if err != nil {
		if errors.Is(err, errors.ErrFolderExists) {
			// Point the caller at the existing folder; nothing was mutated.
			return Failure(path, err.Error(), ErrorRecord{Stage: "create", Message: err.Error()})
		}
		return Failure(jobPath, err.Error(), ErrorRecord{Stage: "create", Message: err.Error()})
	}
	return Success(path, "job folder created", filepath.Join(path, job.MetadataFile))
}

func (h *createHandler) Test(ctx context.Context, jobPath string, ec *Context) Result {
	desc := ec.State.Description
	if desc == nil {
		return Failure(jobPath, "no job description in context state",
			ErrorRecord{Stage: "create", Message: "no job description in context state"})
	}
	queuedDir, err := job.PhasePath(ec.JobsRoot, job.PhaseQueued)
	if err != nil {
		return Failure(jobPath, err.Error(), ErrorRecord{Stage: "create", Message: err.Error()})
	}
	name := job.FolderName(desc.Identity())
	return Success(jobPath, fmt.Sprintf("dry run: would create %s", filepath.Join(queuedDir, name)))
}
