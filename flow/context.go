// Package flow is the event layer of the orchestration core: a registry of
// named handlers, a retrying asynchronous executor with escalation, and the
// composers that fan events out before a single terminal phase transition.
package flow

import "github.com/okseby/huntr/job"

// State carries per-invocation parameters into handlers. Each known
// parameter is a typed field rather than an open string-keyed map, so the
// set of things an event can receive is statically knowable.
type State struct {
	// Description is the job description consumed by the folder creator.
	Description *job.Metadata
	// Resume overrides the context's default resume selector.
	Resume string
	// Force lets a handler skip freshness checks it would otherwise apply.
	Force bool
}

// Context is the immutable-by-convention bag of references passed to every
// handler. Concurrent executions for different jobs must never share a
// mutable State instance; composers branch the context per goroutine.
type Context struct {
	// JobsRoot is the directory whose phase subdirectories own all job folders.
	JobsRoot string
	// ResumesRoot is where source resumes live.
	ResumesRoot string
	// DefaultResume selects the resume used when State.Resume is empty.
	DefaultResume string
	// DryRun selects the Test entry point of every handler.
	DryRun bool

	State State
}

// Branch returns a deep copy for a concurrently executing event, so state
// mutations in one branch are never observed by another.
func (c *Context) Branch() *Context {
	out := *c
	if c.State.Description != nil {
		desc := *c.State.Description
		if c.State.Description.Tags != nil {
			desc.Tags = append([]string(nil), c.State.Description.Tags...)
		}
		if c.State.Description.Generators != nil {
			desc.Generators = make(map[string]string, len(c.State.Description.Generators))
			for k, v := range c.State.Description.Generators {
				desc.Generators[k] = v
			}
		}
		out.State.Description = &desc
	}
	return &out
}

// Resume returns the resume selected for this invocation.
func (c *Context) Resume() string {
	if c.State.Resume != "" {
		return c.State.Resume
	}
	return c.DefaultResume
}
