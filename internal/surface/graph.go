package surface

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
)

var (
	// ErrNilType is returned when a nil reflect.Type is declared.
	ErrNilType = errors.New("automap(surface): nil reflect.Type provided")
	// ErrNotInterface is returned when a non-interface type takes part in a declaration.
	ErrNotInterface = errors.New("automap(surface): type is not an interface")
	// ErrNotEmbedded is returned when a declared parent is not part of the child's method set.
	ErrNotEmbedded = errors.New("automap(surface): parent is not embedded in child")
)

// Graph records which interfaces an interface embeds directly.
// It is safe for concurrent use; declarations are expected at start-up.
type Graph struct {
	mu      sync.RWMutex
	parents map[reflect.Type][]reflect.Type
}

// NewGraph returns an empty Graph.
func NewGraph() *Graph {
	return &Graph{parents: make(map[reflect.Type][]reflect.Type)}
}

// Declare records that child directly embeds parents, in the given order.
// Declaring the same child again replaces its parent list.
func (g *Graph) Declare(child reflect.Type, parents ...reflect.Type) error {
	if err := checkInterface(child); err != nil {
		return err
	}

	edges := make([]reflect.Type, 0, len(parents))
	for _, p := range parents {
		if err := checkInterface(p); err != nil {
			return err
		}

		if p == child || !embeds(child, p) {
			return fmt.Errorf("%w: %s in %s", ErrNotEmbedded, p, child)
		}

		edges = append(edges, p)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.parents == nil {
		g.parents = make(map[reflect.Type][]reflect.Type)
	}

	g.parents[child] = edges

	return nil
}

// MustDeclare is Declare that panics on error. Meant for package-level setup.
func (g *Graph) MustDeclare(child reflect.Type, parents ...reflect.Type) *Graph {
	if err := g.Declare(child, parents...); err != nil {
		panic(err)
	}

	return g
}

// Parents returns the declared direct parents of t. A nil Graph has no edges.
func (g *Graph) Parents(t reflect.Type) []reflect.Type {
	if g == nil {
		return nil
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	edges := g.parents[t]
	if len(edges) == 0 {
		return nil
	}

	out := make([]reflect.Type, len(edges))
	copy(out, edges)

	return out
}

// Len returns the number of interfaces with declared parents.
func (g *Graph) Len() int {
	if g == nil {
		return 0
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.parents)
}

func checkInterface(t reflect.Type) error {
	if t == nil {
		return ErrNilType
	}

	if t.Kind() != reflect.Interface {
		return fmt.Errorf("%w: %s", ErrNotInterface, t)
	}

	return nil
}

// embeds reports whether every method of parent is present on child with the same signature.
func embeds(child, parent reflect.Type) bool {
	for i := 0; i < parent.NumMethod(); i++ {
		pm := parent.Method(i)

		cm, ok := child.MethodByName(pm.Name)
		if !ok || cm.Type != pm.Type {
			return false
		}
	}

	return true
}
