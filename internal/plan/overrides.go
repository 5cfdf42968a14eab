package plan

import (
	"errors"
	"fmt"
	"reflect"

	"automap/internal/common"
)

// CurrentVersion is written by Export and assumed when a file omits it.
const CurrentVersion = "1"

var (
	// ErrInvalidOverride is returned for an override entry without source or target.
	ErrInvalidOverride = errors.New("automap(plan): override needs source and target")
	// ErrDuplicateOverride is returned when a type pair appears twice.
	ErrDuplicateOverride = errors.New("automap(plan): duplicate override")
)

// Overrides is the YAML document holding per-pair exclusions.
//
//	version: "1"
//	mappings:
//	  - source: api.OrderRequest
//	    target: domain.Order
//	    ignore: [Status]
type Overrides struct {
	Version  string     `yaml:"version"`
	Mappings []Override `yaml:"mappings"`
}

// Override lists extra exclusions for one type pair.
// Types are named either "alias.Name" (common.TypeName) or by full import path,
// "example.com/app/model.User" (common.QualifiedName). The short form is
// ambiguous when two packages share a base name; use the full form there.
type Override struct {
	Source string   `yaml:"source"`
	Target string   `yaml:"target"`
	Ignore []string `yaml:"ignore,omitempty"`
}

// Validate checks that every entry names a pair and that pairs are unique.
func (o *Overrides) Validate() error {
	seen := make(map[[2]string]int, len(o.Mappings))

	for i, m := range o.Mappings {
		if m.Source == "" || m.Target == "" {
			return fmt.Errorf("%w: mappings[%d]", ErrInvalidOverride, i)
		}

		key := [2]string{m.Source, m.Target}
		if prev, ok := seen[key]; ok {
			return fmt.Errorf("%w: %s->%s at mappings[%d] and mappings[%d]", ErrDuplicateOverride, m.Source, m.Target, prev, i)
		}

		seen[key] = i
	}

	return nil
}

// Len returns the number of entries. A nil Overrides has none.
func (o *Overrides) Len() int {
	if o == nil {
		return 0
	}

	return len(o.Mappings)
}

// Lookup finds the override for a type pair. A nil Overrides has none.
// An entry naming both types by full import path wins over one using short names.
func (o *Overrides) Lookup(src, dst reflect.Type) (Override, bool) {
	if o == nil {
		return Override{}, false
	}

	for _, name := range []func(reflect.Type) string{common.QualifiedName, common.TypeName} {
		srcName, dstName := name(src), name(dst)

		for _, m := range o.Mappings {
			if m.Source == srcName && m.Target == dstName {
				return m, true
			}
		}
	}

	return Override{}, false
}

// Apply narrows cfg with the matching override and reports whether one matched.
func (o *Overrides) Apply(cfg *Configuration) bool {
	m, ok := o.Lookup(cfg.Source(), cfg.Target())
	if !ok {
		return false
	}

	cfg.Ignore(m.Ignore...)

	return true
}
