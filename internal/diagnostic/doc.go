// Package diagnostic records why members of a mapping plan were left out.
//
// Exclusions are policy, not faults: a plan always builds. Diagnostics exist so
// callers and debug logs can explain an unexpected zero value on a destination.
package diagnostic
