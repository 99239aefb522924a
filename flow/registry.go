package flow

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Handler is a named, independently invocable unit of work. Execute is the
// real entry point; Test is the dry-run entry point selected when the
// context's DryRun flag is set. The core never inspects handler internals.
type Handler interface {
	// Name returns the event name handlers register and callers invoke.
	Name() string

	Execute(ctx context.Context, jobPath string, ec *Context) Result
	Test(ctx context.Context, jobPath string, ec *Context) Result
}

// Registry maps event names to handlers. Registration is explicit and
// happens at startup, so the set of valid event names is statically
// knowable; there is no runtime namespace scanning.
// Thread-safe for concurrent registration and lookup.
type Registry struct {
	handlers map[string]Handler
	mu       sync.RWMutex
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// Register adds a handler under its name.
// Panics if a handler is already registered with that name.
func (r *Registry) Register(h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := h.Name()
	if _, exists := r.handlers[name]; exists {
		panic(fmt.Sprintf("handler already registered for event: %s", name))
	}
	r.handlers[name] = h
}

// Get retrieves the handler for an event name, or nil if none is registered.
// An unknown name at execution time is a well-defined failure, never a crash;
// the executor converts a nil handler into a failed Result.
func (r *Registry) Get(name string) Handler {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.handlers[name]
}

// Has checks if a handler is registered for an event name.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exists := r.handlers[name]
	return exists
}

// Names returns all registered event names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HandlerFunc adapts a pair of functions to the Handler interface. When the
// test function is nil, Test reports what Execute would do without running it.
type HandlerFunc struct {
	EventName string
	ExecuteFn func(ctx context.Context, jobPath string, ec *Context) Result
	TestFn    func(ctx context.Context, jobPath string, ec *Context) Result
}

func (h HandlerFunc) Name() string { return h.EventName }

func (h HandlerFunc) Execute(ctx context.Context, jobPath string, ec *Context) Result {
	return h.ExecuteFn(ctx, jobPath, ec)
}

func (h HandlerFunc) Test(ctx context.Context, jobPath string, ec *Context) Result {
	if h.TestFn == nil {
		return Success(jobPath, fmt.Sprintf("dry run: would execute %s", h.EventName))
	}
	return h.TestFn(ctx, jobPath, ec)
}
