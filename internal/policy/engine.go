// Package policy implements per-view resource policy: URL allow/deny
// filtering and header rewrite rule resolution. The host mutates an Engine
// synchronously and pushes snapshots to the worker, where the same Engine
// type evaluates requests inside the request pipeline.
package policy

import "sync"

// FilteringMode selects how URL filters are interpreted.
type FilteringMode int

const (
	// FilterNone allows every request.
	FilterNone FilteringMode = iota
	// FilterBlacklist denies requests whose URL matches any filter.
	FilterBlacklist
	// FilterWhitelist allows only requests whose URL matches a filter.
	FilterWhitelist
)

// String returns a human-readable representation of the mode.
func (m FilteringMode) String() string {
	switch m {
	case FilterNone:
		return "none"
	case FilterBlacklist:
		return "blacklist"
	case FilterWhitelist:
		return "whitelist"
	default:
		return "unknown"
	}
}

// RewriteRule pairs a URL pattern with the name of a header definition.
// Rules are kept in insertion order; the first matching rule wins.
type RewriteRule struct {
	Pattern    string
	Definition string
}

// Snapshot is a deep copy of an Engine's configuration, suitable for pushing
// to the worker as a fire-and-forget command.
type Snapshot struct {
	Mode        FilteringMode
	Filters     []string
	Definitions map[string]map[string]string
	Rules       []RewriteRule
}

// Engine holds the filtering and rewrite configuration for one view.
// All methods are safe for concurrent use.
type Engine struct {
	mu          sync.RWMutex
	mode        FilteringMode
	filters     []string
	definitions map[string]map[string]string
	rules       []RewriteRule
}

// New returns an Engine with filtering disabled and no rules.
func New() *Engine {
	return &Engine{definitions: make(map[string]map[string]string)}
}

// SetFilteringMode switches between none, blacklist and whitelist filtering.
func (e *Engine) SetFilteringMode(mode FilteringMode) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.mode = mode
}

// FilteringMode returns the current filtering mode.
func (e *Engine) FilteringMode() FilteringMode {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.mode
}

// AddFilter appends a URL filter pattern. Patterns may use the wildcards
// '*' and '?' and match the full URL string, including the local scheme.
func (e *Engine) AddFilter(pattern string) {
	if pattern == "" {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.filters = append(e.filters, pattern)
}

// ClearFilters removes every URL filter.
func (e *Engine) ClearFilters() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.filters = nil
}

// Filters returns a copy of the current filter list.
func (e *Engine) Filters() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]string, len(e.filters))
	copy(out, e.filters)
	return out
}

// Allows applies the filtering mode to a URL.
func (e *Engine) Allows(url string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	switch e.mode {
	case FilterBlacklist:
		return !e.matchesAnyLocked(url)
	case FilterWhitelist:
		return e.matchesAnyLocked(url)
	default:
		return true
	}
}

func (e *Engine) matchesAnyLocked(url string) bool {
	for _, f := range e.filters {
		if matchGlob(f, url) {
			return true
		}
	}
	return false
}

// SetHeaderDefinition creates or replaces the named header definition.
// Redefinition replaces the previous mapping wholesale. The empty name is
// reserved (RemoveRewriteRulesByDefinitionName uses it to mean "all rules")
// and is ignored here.
func (e *Engine) SetHeaderDefinition(name string, definition map[string]string) {
	if name == "" {
		return
	}
	def := make(map[string]string, len(definition))
	for k, v := range definition {
		def[k] = v
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.definitions[name] = def
}

// AddRewriteRule appends a (pattern, definition name) rewrite rule. When
// multiple rules match a URL only the first match, in insertion order, is
// applied.
func (e *Engine) AddRewriteRule(pattern, definition string) {
	if pattern == "" {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rules = append(e.rules, RewriteRule{Pattern: pattern, Definition: definition})
}

// RemoveRewriteRule removes every rule whose pattern matches exactly.
func (e *Engine) RemoveRewriteRule(pattern string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	kept := e.rules[:0]
	for _, r := range e.rules {
		if r.Pattern != pattern {
			kept = append(kept, r)
		}
	}
	e.rules = kept
}

// RemoveRewriteRulesByDefinitionName removes every rule referencing the
// named definition. The empty name removes ALL rules regardless of their
// definition.
func (e *Engine) RemoveRewriteRulesByDefinitionName(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if name == "" {
		e.rules = nil
		return
	}
	kept := e.rules[:0]
	for _, r := range e.rules {
		if r.Definition != name {
			kept = append(kept, r)
		}
	}
	e.rules = kept
}

// Rules returns a copy of the current rewrite rules in insertion order.
func (e *Engine) Rules() []RewriteRule {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]RewriteRule, len(e.rules))
	copy(out, e.rules)
	return out
}

// RewriteHeaders applies the header definition of the first rule matching
// url to headers, overwriting existing keys. Headers are left untouched when
// no rule matches or the matched rule names an unknown definition. Returns
// whether a definition was applied.
func (e *Engine) RewriteHeaders(url string, headers map[string]string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	for _, r := range e.rules {
		if !matchGlob(r.Pattern, url) {
			continue
		}
		def, ok := e.definitions[r.Definition]
		if !ok {
			return false
		}
		for k, v := range def {
			headers[k] = v
		}
		return true
	}
	return false
}

// Snapshot returns a deep copy of the engine's configuration.
func (e *Engine) Snapshot() Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()
	snap := Snapshot{
		Mode:        e.mode,
		Filters:     make([]string, len(e.filters)),
		Definitions: make(map[string]map[string]string, len(e.definitions)),
		Rules:       make([]RewriteRule, len(e.rules)),
	}
	copy(snap.Filters, e.filters)
	copy(snap.Rules, e.rules)
	for name, def := range e.definitions {
		cp := make(map[string]string, len(def))
		for k, v := range def {
			cp[k] = v
		}
		snap.Definitions[name] = cp
	}
	return snap
}

// Restore replaces the engine's configuration with a snapshot.
func (e *Engine) Restore(snap Snapshot) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.mode = snap.Mode
	e.filters = append([]string(nil), snap.Filters...)
	e.rules = append([]RewriteRule(nil), snap.Rules...)
	e.definitions = make(map[string]map[string]string, len(snap.Definitions))
	for name, def := range snap.Definitions {
		cp := make(map[string]string, len(def))
		for k, v := range def {
			cp[k] = v
		}
		e.definitions[name] = cp
	}
}
