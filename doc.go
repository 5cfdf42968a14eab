// Package automap copies values between two independently defined Go types,
// member by member, without hand-written mapping code.
//
// For each (input type, output type) pair a plan is built once: every
// destination member is matched by name against the source, and copied only
// when the types are identical or differ by exactly one optional wrapper
// (*T or sql.Null[T]). The plan is compiled into a Mapper and cached for the
// life of the process.
//
//	m := automap.New(automap.WithLogger(logger))
//	order, err := automap.Map(m, req, &domain.Order{})
//
// Interfaces take part through accessor pairs (Name() T / SetName(T)). Go
// reflection does not expose interface embedding, so embedding edges are
// declared on a Graph passed with WithGraph.
//
// Per-pair exclusions can be added in code (Configure + MapWith) or loaded
// from a YAML overrides file (WithOverrides).
package automap
