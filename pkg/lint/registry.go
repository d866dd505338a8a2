package lint

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"
)

// ErrDuplicateRule is returned when a rule ID or name is registered twice.
var ErrDuplicateRule = errors.New("duplicate rule")

// Registry holds all registered lint rules.
type Registry struct {
	mu     sync.RWMutex
	byID   map[string]Rule
	byName map[string]Rule
}

// NewRegistry creates an empty rule registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:   make(map[string]Rule),
		byName: make(map[string]Rule),
	}
}

// Register adds a rule. Both its ID and name must be unused.
func (r *Registry) Register(rule Rule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[rule.ID()]; ok {
		return fmt.Errorf("%w: id %q", ErrDuplicateRule, rule.ID())
	}
	if _, ok := r.byName[rule.Name()]; ok {
		return fmt.Errorf("%w: name %q", ErrDuplicateRule, rule.Name())
	}
	r.byID[rule.ID()] = rule
	r.byName[rule.Name()] = rule
	return nil
}

// MustRegister is Register for init-time catalogs; it panics on duplicates.
func (r *Registry) MustRegister(rules ...Rule) {
	for _, rule := range rules {
		if err := r.Register(rule); err != nil {
			panic(err)
		}
	}
}

// Get retrieves a rule by ID, falling back to name.
func (r *Registry) Get(key string) (Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if rule, ok := r.byID[key]; ok {
		return rule, true
	}
	rule, ok := r.byName[key]
	return rule, ok
}

// GetByID retrieves a rule by its ID only.
func (r *Registry) GetByID(id string) (Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rule, ok := r.byID[id]
	return rule, ok
}

// ByTag returns the rules carrying tag, sorted by ID.
func (r *Registry) ByTag(tag string) []Rule {
	var result []Rule
	for _, rule := range r.Rules() {
		if slices.Contains(rule.Tags(), tag) {
			result = append(result, rule)
		}
	}
	return result
}

// Rules returns all registered rules sorted by ID.
func (r *Registry) Rules() []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Rule, 0, len(r.byID))
	for _, rule := range r.byID {
		result = append(result, rule)
	}
	slices.SortFunc(result, func(a, b Rule) int {
		return cmp.Compare(a.ID(), b.ID())
	})
	return result
}

// IDs returns all registered rule IDs in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]string, 0, len(r.byID))
	for id := range r.byID {
		result = append(result, id)
	}
	slices.Sort(result)
	return result
}

// Len returns the number of registered rules.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}

// DefaultRegistry is the global registry for built-in rules.
// The rules package registers the catalog during init().
//
//nolint:gochecknoglobals // Global registry is intentional for rule registration
var DefaultRegistry = NewRegistry()
