package cfg

import (
	"fmt"
	"sync"

	"github.com/solidity-ir/engine/internal/ir"
)

// Cache builds and memoizes one CFG per function/modifier/Yul function
// definition, per spec.md §4.6's "Lazy CFG" rule: a function that is
// never inspected should never pay for graph construction. Safe for
// concurrent use by multiple detectors.
type Cache struct {
	mu      sync.Mutex
	byDecl  map[*ir.Declaration]*CFG
	byYul   map[*ir.YulNode]*CFG
}

// NewCache returns an empty, ready-to-use Cache.
func NewCache() *Cache {
	return &Cache{
		byDecl: make(map[*ir.Declaration]*CFG),
		byYul:  make(map[*ir.YulNode]*CFG),
	}
}

// ForFunction returns the (possibly cached) CFG for fn, a
// FunctionDefinition or ModifierDefinition. Returns an error if fn is
// not implemented (no body to build a graph over).
func (c *Cache) ForFunction(fn *ir.Declaration) (*CFG, error) {
	if fn == nil || (fn.Kind != ir.KindFunctionDefinition && fn.Kind != ir.KindModifierDefinition) {
		return nil, fmt.Errorf("cfg: %v is not a function or modifier declaration", fn)
	}
	if !fn.Implemented || fn.Body == nil {
		return nil, fmt.Errorf("cfg: %s has no implementation to build a CFG over", fn.Name)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if cached, ok := c.byDecl[fn]; ok {
		return cached, nil
	}
	built := Build(fn)
	c.byDecl[fn] = built
	return built, nil
}

// ForYulFunction returns the (possibly cached) CFG for a Yul
// FunctionDefinition.
func (c *Cache) ForYulFunction(y *ir.YulNode) (*CFG, error) {
	if y == nil || y.Kind != ir.KindYulFunctionDefinition {
		return nil, fmt.Errorf("cfg: %v is not a yul function definition", y)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if cached, ok := c.byYul[y]; ok {
		return cached, nil
	}
	built := BuildYulFunction(y)
	c.byYul[y] = built
	return built, nil
}
