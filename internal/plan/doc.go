// Package plan builds the mapping configuration for a (source, destination)
// type pair.
//
// Build pipeline:
//  1. Resolve both property surfaces
//  2. For each destination member, ask match for a verdict against the source surface
//  3. Record exclusions explicitly; every other destination member is copied
//
// Members that exist only on the source are never referenced. Configurations
// are plain values owned by the caller: they can be narrowed further with
// Ignore, exported to YAML for review, and re-applied from YAML overrides.
package plan
