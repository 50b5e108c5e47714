// Package pipeline fans a compilation unit's files out across a
// bounded worker pool, builds IR for each, enqueues declaration
// bindings, and drains the shared post-process queue once every file
// has been built — the concurrency shape SPEC_FULL.md §5 describes,
// grounded directly on engine.Engine.Run's
// pool.Submit+errgroup.Group+mutex shape (engine.go in the teacher).
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/solidity-ir/engine/internal/binder"
	"github.com/solidity-ir/engine/internal/ierrors"
	"github.com/solidity-ir/engine/internal/ir"
	"github.com/solidity-ir/engine/internal/resolver"
	"github.com/solidity-ir/engine/pool"
)

// CU describes one compilation unit per spec.md §3: an opaque content
// hash, a compiler version range, and the set of source files the
// compiler's standard-json output reports for it.
type CU struct {
	Hash            string
	SolidityVersion string
	Files           []FileInput
}

// FileInput is one source file's raw AST JSON plus its own UTF-8
// source bytes, keyed by absolute path.
type FileInput struct {
	Path   string
	AST    []byte
	Source []byte
}

// Build is the top-level, long-lived store: a shared resolver that
// accumulates identity/back-reference state across every CU ingested
// into it, plus the source units built so far keyed by absolute path.
// Mirrors "the Source Unit is owned by the top-level build" from
// spec.md §5.
//
// Unlike Resolver, an ir.Registry is scoped to a single CU (its own
// doc comment: "keyed by the id space a single `solc --standard-json`
// invocation assigns") — so Build does not hold one long-lived.
// Ingest mints a fresh Registry for every CU it ingests; two CUs that
// happen to both assign node id 7 to unrelated declarations never
// share a Registry, so neither can clobber the other's entry.
type Build struct {
	Resolver *resolver.Resolver

	log *zap.Logger

	mu    sync.Mutex
	Units map[string]*ir.SourceUnit
}

// NewBuild returns an empty Build ready to ingest CUs. A nil logger is
// replaced with zap.NewNop(), matching the teacher's tolerance for a
// caller that doesn't care about logging.
func NewBuild(log *zap.Logger) *Build {
	if log == nil {
		log = zap.NewNop()
	}
	return &Build{
		Resolver: resolver.New(),
		Units:    make(map[string]*ir.SourceUnit),
		log:      log,
	}
}

// Ingest builds IR for every file in cu concurrently, bounded by
// poolSize goroutines (0 or negative selects pool.DefaultAntsPoolSize,
// matching engine.NewEngine's "Default is 10" contract), then drains
// the post-process queue once every file's tree has been constructed
// and every binding callback enqueued. Per spec.md §4.3(c)/§5, the
// post-process drain itself runs single-threaded, after the
// concurrent ingest phase completes — this function is the boundary
// between the two.
func (b *Build) Ingest(ctx context.Context, cu CU, poolSize int) error {
	b.log.Info("ingesting compilation unit",
		zap.String("cu", cu.Hash), zap.Int("files", len(cu.Files)))

	workerPool, err := pool.NewPool(poolSize)
	if err != nil {
		return fmt.Errorf("pipeline: new worker pool: %w", err)
	}
	defer workerPool.Release()

	group, gctx := errgroup.WithContext(ctx)

	// reg is scoped to this one CU: every file below shares it so
	// cross-file referencedDeclaration ids resolve within the CU, but
	// it is discarded once Ingest returns rather than reused for the
	// next CU's (disjoint) id space.
	reg := ir.NewRegistry()

	built := make([]*ir.SourceUnit, len(cu.Files))
	for i, f := range cu.Files {
		i, f := i, f
		done := make(chan error, 1)
		submitErr := workerPool.Submit(func() {
			if gctx.Err() != nil {
				done <- gctx.Err()
				return
			}
			su, err := b.buildFile(cu, f, reg)
			built[i] = su
			done <- err
		})
		if submitErr != nil {
			return fmt.Errorf("pipeline: submit %s: %w", f.Path, submitErr)
		}
		group.Go(func() error { return <-done })
	}

	if err := group.Wait(); err != nil {
		return err
	}

	b.mu.Lock()
	for _, su := range built {
		if su != nil {
			b.Units[su.AbsolutePath] = su
		}
	}
	b.mu.Unlock()

	for _, su := range built {
		if su != nil {
			binder.Enqueue(su, b.Resolver, reg)
		}
	}

	if err := b.Resolver.Queue().Run(); err != nil {
		b.log.Error("post-process failed", zap.String("cu", cu.Hash), zap.Error(err))
		return err
	}

	b.log.Info("ingested compilation unit", zap.String("cu", cu.Hash))
	return nil
}

func (b *Build) buildFile(cu CU, f FileInput, reg *ir.Registry) (*ir.SourceUnit, error) {
	builder := ir.NewBuilder(b.Resolver, reg, cu.Hash, f.Path, f.Source)
	su, err := builder.BuildSourceUnit(f.AST)
	if err != nil {
		// A build step below (e.g. ReconcileTrace) may already have
		// classified its failure with a specific Kind, such as
		// StructuralDrift; preserve that instead of flattening every
		// failure into SchemaViolation, so callers can still branch on
		// Kind (e.g. ierrors.Kind.Fatal()) after it crosses this
		// boundary.
		var typed *ierrors.Error
		if errors.As(err, &typed) {
			return nil, ierrors.Wrap(typed.Kind, cu.Hash, fmt.Errorf("%s: %w", f.Path, err))
		}
		return nil, ierrors.Wrap(ierrors.SchemaViolation, cu.Hash, fmt.Errorf("%s: %w", f.Path, err))
	}
	return su, nil
}

// Evict drops a file's Source Unit from the build and runs its
// destroy callbacks, per spec.md §3's Lifecycle paragraph and §5's
// Resource lifecycle: every destroy callback registered against the
// file fires exactly once, unregistering one weak back-reference edge
// each, before the Source Unit itself is released.
func (b *Build) Evict(path string) {
	b.Resolver.EvictFile(path)
	b.mu.Lock()
	delete(b.Units, path)
	b.mu.Unlock()
}

// SourceUnit returns the built Source Unit for path, if any.
func (b *Build) SourceUnit(path string) (*ir.SourceUnit, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	su, ok := b.Units[path]
	return su, ok
}
