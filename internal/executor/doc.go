// Package executor compiles a plan.Configuration into a Mapper: a fixed list of
// read/convert/write steps, one per copied member, bound to the configuration's
// source and destination types.
//
// Compilation does all the reflection lookups once. Apply then only walks the
// step list, so a Mapper is cheap to reuse and safe for concurrent use.
package executor
