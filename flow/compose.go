package flow

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/okseby/huntr/job"
)

// FanOut runs the named events concurrently against the same job path, then
// performs a single terminal phase transition based on aggregate success:
// all events succeeded → run the advance event; any failure → run the
// Errored-move event and report overall failure. Partial success is never
// treated as full success.
//
// Relative completion order of the fanned-out events is unspecified; the
// terminal event runs strictly after all of them have completed. Each event
// receives a branched context, so no two goroutines share a mutable state.
func FanOut(ctx context.Context, exec *Executor, events []string, advance string, jobPath string, ec *Context) Result {
	results := make([]Result, len(events))

	g := new(errgroup.Group)
	for i, name := range events {
		branch := ec.Branch()
		g.Go(func() error {
			results[i] = exec.Run(ctx, name, jobPath, branch)
			return nil
		})
	}
	g.Wait()

	currentPath := jobPath
	var failures []string
	var records []ErrorRecord
	for i, res := range results {
		if res.OK {
			// A successful branch may itself have moved the folder.
			if res.JobPath != "" && res.JobPath != jobPath {
				currentPath = res.JobPath
			}
			continue
		}
		failures = append(failures, fmt.Sprintf("%s: %s", events[i], res.Message))
		records = append(records, res.Errors...)
		// An escalated branch has already relocated the folder.
		if res.JobPath != jobPath {
			currentPath = res.JobPath
		}
	}

	if len(failures) > 0 {
		moved := exec.RunOnce(ctx, MoveEventName(job.PhaseErrored), currentPath, ec)
		if moved.OK {
			currentPath = moved.JobPath
		}
		return Failure(currentPath,
			fmt.Sprintf("%d of %d events failed: %s", len(failures), len(events), strings.Join(failures, "; ")),
			records...)
	}

	return exec.Run(ctx, advance, currentPath, ec)
}

// Sequence runs a fixed ordered list of events one at a time, stopping at
// the first failure; the advance event runs only after the full list has
// completed. The job path threads through each step, since a step may have
// relocated the folder.
func Sequence(ctx context.Context, exec *Executor, events []string, advance string, jobPath string, ec *Context) Result {
	path := jobPath
	for _, name := range events {
		res := exec.Run(ctx, name, path, ec)
		path = res.JobPath
		if !res.OK {
			// The executor already classified and escalated as needed.
			return res
		}
	}
	return exec.Run(ctx, advance, path, ec)
}
