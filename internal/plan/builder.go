package plan

import (
	"fmt"
	"reflect"

	"automap/internal/match"
	"automap/internal/surface"
)

// Builder produces configurations from type pairs.
type Builder struct {
	resolver *surface.Resolver
}

// NewBuilder creates a Builder. A nil resolver resolves without interface graph.
func NewBuilder(resolver *surface.Resolver) *Builder {
	if resolver == nil {
		resolver = surface.NewResolver(nil)
	}

	return &Builder{resolver: resolver}
}

// Build resolves both surfaces and decides every destination member.
// The result is always usable; exclusions are explained in Diagnostics.
func (b *Builder) Build(src, dst reflect.Type) *Configuration {
	sourceSurface := b.resolver.Resolve(src)
	targetSurface := b.resolver.Resolve(dst)

	cfg := newConfiguration(src, dst, targetSurface.Len())
	pair := cfg.Name()

	for _, target := range targetSurface.Members() {
		verdict := match.Analyze(target.Name, target.Type, sourceSurface)
		mp := MemberPlan{Target: target, Verdict: verdict}

		if verdict.Copy() {
			mp.Source, _ = sourceSurface.Lookup(target.Name)
		} else {
			cfg.Diagnostics.AddInfo(verdict.Reason, explain(verdict, sourceSurface.TypeOf(target.Name), target.Type), pair, target.Name)
		}

		cfg.add(mp)
	}

	return cfg
}

func explain(v match.Verdict, src, dst reflect.Type) string {
	switch v.Reason {
	case match.ReasonAbsent:
		return "source has no member with this name"
	case match.ReasonBothWrapped:
		return fmt.Sprintf("distinct optional types %s and %s", src, dst)
	case match.ReasonInnerMismatch:
		return fmt.Sprintf("optional value type does not match: %s vs %s", src, dst)
	default:
		return fmt.Sprintf("incompatible types %s and %s", src, dst)
	}
}
