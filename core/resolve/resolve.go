// Package resolve validates the call graph of a block mapping before
// anything runs: every called directive must exist and the call relation
// must be acyclic. It hands nothing back to the engine, which looks call
// targets up by name at run time; this pass is purely an up-front guard.
package resolve

import (
	"fmt"

	"github.com/proj-sh/proj/core/parser"
)

// NotFoundError reports a call to a directive that is not in the mapping.
type NotFoundError struct {
	Directive string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("directive %q not found", e.Directive)
}

// CycleError reports a circular call dependency, naming the directive at
// which the cycle was detected.
type CycleError struct {
	Directive string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("circular dependency detected at directive %q", e.Directive)
}

// Check walks the dependency graph depth-first from entry. A directive seen
// again while still on the current path is a cycle; one absent from the
// mapping is a not-found failure.
func Check(blocks map[string]*parser.Block, entry string) error {
	w := &walker{
		blocks:   blocks,
		visiting: make(map[string]bool),
		finished: make(map[string]bool),
	}
	return w.visit(entry)
}

type walker struct {
	blocks   map[string]*parser.Block
	visiting map[string]bool
	finished map[string]bool
}

func (w *walker) visit(name string) error {
	if w.finished[name] {
		return nil
	}
	if w.visiting[name] {
		return &CycleError{Directive: name}
	}

	block, ok := w.blocks[name]
	if !ok {
		return &NotFoundError{Directive: name}
	}

	w.visiting[name] = true
	for _, dep := range block.Dependencies {
		if err := w.visit(dep); err != nil {
			return err
		}
	}
	delete(w.visiting, name)

	w.finished[name] = true
	return nil
}
