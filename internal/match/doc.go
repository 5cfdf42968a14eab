// Package match decides, member by member, whether a destination property can
// be filled from a same-named source property.
//
// The policy is deliberately conservative. Identical types copy. A bare type
// and an optional wrapper around exactly that type (*T, sql.Null[T]) copy with
// a wrap or unwrap step. Everything else is ignored, including two distinct
// wrappers and two distinct bare types that merely share an underlying kind.
//
// Key functions:
//   - Decide: the directive for a destination member against a source surface
//   - Analyze: same decision with the conversion and the reason
//   - Classify: the type-level decision for a (source, destination) type pair
//   - WrapperOf: optional-value wrapper detection
package match
