package surface

import (
	"reflect"
)

// Resolver builds property surfaces. Interface embedding is read from the Graph.
type Resolver struct {
	graph *Graph
}

// NewResolver creates a Resolver. A nil graph means no interface declares parents.
func NewResolver(graph *Graph) *Resolver {
	return &Resolver{graph: graph}
}

// Resolve returns a fresh surface for t. One level of pointer indirection is
// removed first, so *T and T resolve to the same members. Types that are neither
// structs nor interfaces have an empty surface.
func (r *Resolver) Resolve(t reflect.Type) *Surface {
	if t == nil {
		return newSurface(nil, 0)
	}

	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Struct:
		return structSurface(t)
	case reflect.Interface:
		return r.interfaceSurface(t)
	default:
		return newSurface(t, 0)
	}
}

// structSurface lists exported fields in declaration order, promoted fields in place.
func structSurface(t reflect.Type) *Surface {
	fields := reflect.VisibleFields(t)
	s := newSurface(t, len(fields))

	for _, f := range fields {
		if !f.IsExported() || f.Anonymous {
			continue
		}

		if !reachable(t, f.Index) {
			continue
		}

		index := make([]int, len(f.Index))
		copy(index, f.Index)

		s.add(Member{
			Name:  f.Name,
			Type:  f.Type,
			Kind:  MemberField,
			Index: index,
		})
	}

	return s
}

// reachable rejects promoted fields that sit behind an unexported embedded pointer:
// such a pointer cannot be allocated through reflection when nil.
func reachable(t reflect.Type, index []int) bool {
	for _, i := range index[:len(index)-1] {
		f := t.Field(i)
		if f.Type.Kind() == reflect.Pointer {
			if !f.IsExported() {
				return false
			}

			t = f.Type.Elem()

			continue
		}

		t = f.Type
	}

	return true
}

// interfaceSurface walks the declared embedding graph breadth first starting at t.
// Each interface contributes the properties it declares itself that were not
// collected yet, inserted ahead of everything collected so far, so properties of
// the deepest ancestors come first.
func (r *Resolver) interfaceSurface(t reflect.Type) *Surface {
	visited := map[reflect.Type]struct{}{t: {}}
	queue := []reflect.Type{t}
	collected := make(map[string]struct{})

	var ordered []Member

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		parents := r.graph.Parents(current)
		for _, p := range parents {
			if _, seen := visited[p]; seen {
				continue
			}

			visited[p] = struct{}{}
			queue = append(queue, p)
		}

		var fresh []Member

		for _, m := range declaredAccessors(current, parents) {
			if _, seen := collected[m.Name]; seen {
				continue
			}

			collected[m.Name] = struct{}{}
			fresh = append(fresh, m)
		}

		ordered = append(fresh, ordered...)
	}

	s := newSurface(t, len(ordered))
	for _, m := range ordered {
		s.add(m)
	}

	return s
}

// declaredAccessors returns the properties of iface that no parent provides.
func declaredAccessors(iface reflect.Type, parents []reflect.Type) []Member {
	all := accessors(iface)
	if len(parents) == 0 {
		return all
	}

	inherited := make(map[string]reflect.Type)

	for _, p := range parents {
		for _, m := range accessors(p) {
			inherited[m.Name] = m.Type
		}
	}

	own := make([]Member, 0, len(all))

	for _, m := range all {
		if t, ok := inherited[m.Name]; ok && t == m.Type {
			continue
		}

		own = append(own, m)
	}

	return own
}

// accessors finds P() T / SetP(T) pairs in the method set of an interface type,
// in method order.
func accessors(iface reflect.Type) []Member {
	var out []Member

	for i := 0; i < iface.NumMethod(); i++ {
		getter := iface.Method(i)
		if !getter.IsExported() {
			continue
		}

		gt := getter.Type
		if gt.NumIn() != 0 || gt.NumOut() != 1 {
			continue
		}

		setter, ok := iface.MethodByName(SetterPrefix + getter.Name)
		if !ok {
			continue
		}

		st := setter.Type
		if st.NumIn() != 1 || st.NumOut() != 0 || st.In(0) != gt.Out(0) {
			continue
		}

		out = append(out, Member{
			Name:   getter.Name,
			Type:   gt.Out(0),
			Kind:   MemberAccessor,
			Getter: getter.Name,
			Setter: setter.Name,
		})
	}

	return out
}
