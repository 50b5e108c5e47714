package resolver

import "sync"

// NodeRef identifies an IR node by the file that owns it and the
// compiler-assigned id it carries within its own CU. It is a handle,
// not a pointer: the resolver never holds the node itself, only this
// pair, so declaration "back-reference" edges stay non-owning and a
// file can be evicted without chasing down live pointers into it.
type NodeRef struct {
	File string
	ID   int64
}

// DriftRecord captures one tolerated (or, if Fatal, untolerated)
// structural mismatch found while matching two traversals of the same
// file by Key, for later inspection (DESIGN.md's Open Question
// resolution calls for recording counter-examples rather than
// silently ignoring them).
type DriftRecord struct {
	Key   Key
	Kind  DriftKind
	Fatal bool
}

// Resolver is the single piece of mutable shared state in the system
// after IR construction: the (file, traversalIndex) identity map, the
// back-reference sets hanging off every declaration, and the
// per-file teardown callbacks that keep those sets consistent across
// file eviction. Safe for concurrent use during the CU-fan-out ingest
// phase described in SPEC_FULL.md §5; the post-process queue itself
// is expected to run single-threaded once ingest completes.
type Resolver struct {
	mu sync.Mutex

	identity    map[Key]NodeRef
	backrefs    map[NodeRef]map[NodeRef]struct{}
	globalRefs  map[GlobalSymbol]map[NodeRef]struct{}
	onEvict     map[string][]func()
	queue       *PostProcessQueue
	drift       []DriftRecord
	traces      map[string][]string
}

// New returns an empty Resolver with a ready post-process queue.
func New() *Resolver {
	return &Resolver{
		identity:   make(map[Key]NodeRef),
		backrefs:   make(map[NodeRef]map[NodeRef]struct{}),
		globalRefs: make(map[GlobalSymbol]map[NodeRef]struct{}),
		onEvict:    make(map[string][]func()),
		queue:      NewPostProcessQueue(),
		traces:     make(map[string][]string),
	}
}

// Queue exposes the post-process queue so IR construction can register
// binding callbacks as it builds nodes.
func (r *Resolver) Queue() *PostProcessQueue { return r.queue }

// BindIdentity records that the node traversed at key currently lives
// at ref, returning the ref previously recorded for key, if any (a
// second CU recompiling the same file). Whether the two traversals
// line up structurally is checked separately by ReconcileTrace.
func (r *Resolver) BindIdentity(key Key, ref NodeRef) (previous NodeRef, existed bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	previous, existed = r.identity[key]
	r.identity[key] = ref
	return previous, existed
}

// Lookup returns the NodeRef currently bound to key, if any.
func (r *Resolver) Lookup(key Key) (NodeRef, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ref, ok := r.identity[key]
	return ref, ok
}

// RecordDrift appends a structural-drift observation found while
// reconciling two traversals of the same Key.
func (r *Resolver) RecordDrift(rec DriftRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.drift = append(r.drift, rec)
}

// Drift returns every drift observation recorded so far, tolerated or
// not.
func (r *Resolver) Drift() []DriftRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]DriftRecord, len(r.drift))
	copy(out, r.drift)
	return out
}

// AddReference registers a non-owning edge: referrer refers to decl.
// It both adds referrer to decl's back-reference set and registers a
// teardown callback against referrer's own file, so that when
// referrer's file is evicted the dangling entry in decl's set is
// removed without decl itself needing to be touched or even still be
// alive in memory.
func (r *Resolver) AddReference(decl, referrer NodeRef) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.backrefs[decl]
	if !ok {
		set = make(map[NodeRef]struct{})
		r.backrefs[decl] = set
	}
	set[referrer] = struct{}{}

	r.onEvict[referrer.File] = append(r.onEvict[referrer.File], func() {
		delete(set, referrer)
	})
}

// References returns the set of nodes currently referring to decl.
func (r *Resolver) References(decl NodeRef) []NodeRef {
	r.mu.Lock()
	defer r.mu.Unlock()
	set := r.backrefs[decl]
	out := make([]NodeRef, 0, len(set))
	for ref := range set {
		out = append(out, ref)
	}
	return out
}

// AddGlobalReference registers referrer as a use of the built-in
// symbol g, per spec.md §4.3's "back-reference set per global symbol"
// so a detector can ask "all uses of msg.sender" the same way it asks
// for a declaration's References. Mirrors AddReference's teardown-on-
// evict wiring exactly, keyed by GlobalSymbol instead of NodeRef since
// a global symbol has no owning file of its own to evict.
func (r *Resolver) AddGlobalReference(g GlobalSymbol, referrer NodeRef) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.globalRefs[g]
	if !ok {
		set = make(map[NodeRef]struct{})
		r.globalRefs[g] = set
	}
	set[referrer] = struct{}{}

	r.onEvict[referrer.File] = append(r.onEvict[referrer.File], func() {
		delete(set, referrer)
	})
}

// GlobalReferences returns the set of nodes currently using global
// symbol g.
func (r *Resolver) GlobalReferences(g GlobalSymbol) []NodeRef {
	r.mu.Lock()
	defer r.mu.Unlock()
	set := r.globalRefs[g]
	out := make([]NodeRef, 0, len(set))
	for ref := range set {
		out = append(out, ref)
	}
	return out
}

// EvictFile fires every destroy-callback registered against file
// exactly once, detaching all outgoing reference edges originating
// from nodes in that file, then forgets the file's callbacks and
// identity bindings. It does not by itself free the declarations
// file's own nodes held; that's the caller's (internal/ir) concern.
func (r *Resolver) EvictFile(file string) {
	r.mu.Lock()
	callbacks := r.onEvict[file]
	delete(r.onEvict, file)
	delete(r.traces, file)
	for key, ref := range r.identity {
		if key.File == file {
			delete(r.identity, key)
		}
		_ = ref
	}
	r.mu.Unlock()

	// Destroy callbacks run in reverse of registration order per
	// spec.md §5, so a teardown that depends on a later one having
	// already detached its edge sees state unwound in the opposite
	// order it was built up.
	for i := len(callbacks) - 1; i >= 0; i-- {
		callbacks[i]()
	}
}
