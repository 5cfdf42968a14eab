package plan

import (
	"reflect"

	"automap/internal/common"
	"automap/internal/diagnostic"
	"automap/internal/match"
	"automap/internal/surface"
)

const (
	// ReasonExcluded marks a member excluded by the caller rather than by policy.
	ReasonExcluded = "excluded"
	// CodeUnknownMember flags an exclusion naming a member the destination lacks.
	CodeUnknownMember = "unknown_member"
)

// Configuration is the set of per-member directives for one type pair.
type Configuration struct {
	source  reflect.Type
	target  reflect.Type
	members []MemberPlan
	index   map[string]int

	// Diagnostics explains every exclusion.
	Diagnostics diagnostic.Diagnostics
}

// MemberPlan is the decision for one destination member.
type MemberPlan struct {
	// Target is the destination member.
	Target surface.Member
	// Source is the same-named source member; zero when absent.
	Source surface.Member
	// Verdict carries the directive and the conversion.
	Verdict match.Verdict
}

func newConfiguration(src, dst reflect.Type, capacity int) *Configuration {
	return &Configuration{
		source:  src,
		target:  dst,
		members: make([]MemberPlan, 0, capacity),
		index:   make(map[string]int, capacity),
	}
}

func (c *Configuration) add(mp MemberPlan) {
	c.index[mp.Target.Name] = len(c.members)
	c.members = append(c.members, mp)
}

// Source returns the source type the configuration is bound to.
func (c *Configuration) Source() reflect.Type {
	return c.source
}

// Target returns the destination type the configuration is bound to.
func (c *Configuration) Target() reflect.Type {
	return c.target
}

// Name returns "src->dst".
func (c *Configuration) Name() string {
	return common.PairName(c.source, c.target)
}

// Members returns the per-member plans in destination order. The slice is a copy.
func (c *Configuration) Members() []MemberPlan {
	out := make([]MemberPlan, len(c.members))
	copy(out, c.members)

	return out
}

// Directive returns the directive for a destination member.
// Names the destination does not have are reported as ignored.
func (c *Configuration) Directive(name string) match.Directive {
	i, ok := c.index[name]
	if !ok {
		return match.DirectiveIgnore
	}

	return c.members[i].Verdict.Directive
}

// Ignored returns the explicit exclusions in destination order.
func (c *Configuration) Ignored() []string {
	return c.names(match.DirectiveIgnore)
}

// Copied returns the members that will be copied, in destination order.
func (c *Configuration) Copied() []string {
	return c.names(match.DirectiveCopy)
}

func (c *Configuration) names(d match.Directive) []string {
	var out []string

	for _, m := range c.members {
		if m.Verdict.Directive == d {
			out = append(out, m.Target.Name)
		}
	}

	return out
}

// Ignore excludes the named destination members. Unknown names are recorded as
// warnings. A copy can only ever be narrowed, never forced.
func (c *Configuration) Ignore(names ...string) *Configuration {
	for _, name := range names {
		i, ok := c.index[name]
		if !ok {
			c.Diagnostics.AddWarning(CodeUnknownMember, "destination has no member to exclude", c.Name(), name)
			continue
		}

		m := &c.members[i]
		if m.Verdict.Directive == match.DirectiveIgnore {
			continue
		}

		m.Source = surface.Member{}
		m.Verdict = match.Verdict{Directive: match.DirectiveIgnore, Reason: ReasonExcluded}
		c.Diagnostics.AddInfo(ReasonExcluded, "excluded by caller", c.Name(), name)
	}

	return c
}

// Clone returns an independent copy.
func (c *Configuration) Clone() *Configuration {
	out := newConfiguration(c.source, c.target, len(c.members))
	for _, m := range c.members {
		out.add(m)
	}

	out.Diagnostics = c.Diagnostics.Clone()

	return out
}
