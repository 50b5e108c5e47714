package ir

import "sync"

// Registry is the CU-wide lookup from the compiler's node id to the
// concrete IR node built for it, keyed by the id space a single
// `solc --standard-json` invocation assigns (unique across every file
// compiled together, unlike resolver.Key which is keyed by file).
// internal/binder consults it to turn a `referencedDeclaration` int64
// into the Declaration it names.
type Registry struct {
	mu      sync.RWMutex
	byID    map[int64]Any
	unitsBy map[string]*SourceUnit
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:    make(map[int64]Any),
		unitsBy: make(map[string]*SourceUnit),
	}
}

// Register records that id built n. Safe to call from multiple
// goroutines ingesting different files of the same CU concurrently.
func (r *Registry) Register(id int64, n Any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[id] = n
}

// Lookup returns the node built for id, if any.
func (r *Registry) Lookup(id int64) (Any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n, ok := r.byID[id]
	return n, ok
}

// RegisterSourceUnit indexes su by its absolute path, for import
// resolution.
func (r *Registry) RegisterSourceUnit(su *SourceUnit) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.unitsBy[su.AbsolutePath] = su
}

// SourceUnitByPath returns the SourceUnit previously registered for
// path.
func (r *Registry) SourceUnitByPath(path string) (*SourceUnit, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	su, ok := r.unitsBy[path]
	return su, ok
}
