// Package surface enumerates the property surface of a Go type: the ordered
// set of public members that can be both read and written.
//
// Struct types expose their exported fields, with promoted fields of embedded
// structs flattened in place. Interface types expose accessor pairs: a
// property P of type T exists when the interface has both P() T and SetP(T).
//
// Go reflection flattens the method set of an interface and does not record
// which interfaces it embeds, so the embedding edges are declared up front on
// a Graph. Resolving an interface walks that graph breadth first.
//
// Key types:
//   - Surface: ordered name -> Member table
//   - Graph: declared interface embedding edges
//   - Resolver: builds a fresh Surface for a reflect.Type
package surface
