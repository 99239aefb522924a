// Package commands implements the huntr CLI subcommands.
package commands

import (
	"github.com/okseby/huntr/config"
	"github.com/okseby/huntr/flow"
)

// setup loads config and builds the executor over the default registry.
// Content-generation handlers are registered by whatever package embeds the
// core; the CLI itself ships the built-in move and create events.
func setup(dryRun bool) (*config.Config, *flow.Executor, *flow.Context, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}

	registry := flow.NewDefaultRegistry()
	exec := flow.NewExecutor(registry, flow.NewPatternClassifier(), cfg.ExecutorSettings())

	return cfg, exec, cfg.EventContext(dryRun), nil
}
