package diagnostic

import (
	"fmt"
	"strings"

	"automap/internal/common"
)

// Diagnostics holds the notes collected while building one plan.
type Diagnostics struct {
	Infos    []Diagnostic
	Warnings []Diagnostic
}

// Diagnostic is a single note about one member of a type pair.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code identifies the kind of note, e.g. "absent" or "both_wrapped".
	Code string
	// Message is the human-readable description.
	Message string
	// TypePair identifies the mapping, "src->dst".
	TypePair string
	// Member is the destination member name (if any).
	Member string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	default:
		return common.UnknownStr
	}
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, typePair, member string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: SeverityInfo,
		Code:     code,
		Message:  message,
		TypePair: typePair,
		Member:   member,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, typePair, member string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  message,
		TypePair: typePair,
		Member:   member,
	})
}

// Len returns the total number of diagnostics.
func (d *Diagnostics) Len() int {
	return len(d.Infos) + len(d.Warnings)
}

// ByMember returns every diagnostic about the named member.
func (d *Diagnostics) ByMember(member string) []Diagnostic {
	var out []Diagnostic

	for _, group := range [][]Diagnostic{d.Infos, d.Warnings} {
		for _, x := range group {
			if x.Member == member {
				out = append(out, x)
			}
		}
	}

	return out
}

// Clone returns a deep copy.
func (d Diagnostics) Clone() Diagnostics {
	return Diagnostics{
		Infos:    append([]Diagnostic(nil), d.Infos...),
		Warnings: append([]Diagnostic(nil), d.Warnings...),
	}
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.TypePair != "" {
		prefix = append(prefix, "["+d.TypePair+"]")
	}

	if d.Member != "" {
		prefix = append(prefix, d.Member)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
